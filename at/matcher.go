package at

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoCaptureGroup is returned when a success pattern has no capturing
// group to extract a value from.
var ErrNoCaptureGroup = errors.New("pattern has no capturing group")

var (
	deviceErrorPattern  = regexp.MustCompile(regexp.QuoteMeta(CmeError) + ` (\d{1,3})`)
	networkErrorPattern = regexp.MustCompile(regexp.QuoteMeta(CmsError) + ` (\d{1,3})`)
)

// Match is a classified line: which pattern matched and the value of its
// first capturing group.
type Match struct {
	Class Class
	Value string
}

// LineMatcher decides where a line ends in a byte-at-a-time modem stream and
// classifies completed lines against a success pattern and the CME/CMS error
// patterns, in that order. It holds no per-line state; the caller owns the
// line buffer.
type LineMatcher struct {
	success *regexp.Regexp
}

// CompilePattern compiles a success pattern and checks that it carries at
// least one capturing group.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	if re.NumSubexp() < 1 {
		return nil, ErrNoCaptureGroup
	}
	return re, nil
}

// NewLineMatcher returns a LineMatcher for the given success pattern. The
// pattern must have at least one capturing group.
func NewLineMatcher(success *regexp.Regexp) (*LineMatcher, error) {
	if success == nil || success.NumSubexp() < 1 {
		return nil, ErrNoCaptureGroup
	}
	return &LineMatcher{success: success}, nil
}

// OnByte appends b to buf and reports whether b terminated the line. The
// returned slice must replace buf, as with append.
func (lm *LineMatcher) OnByte(buf []byte, b byte) ([]byte, LineEvent) {
	buf = append(buf, b)
	if b == CR || b == LF {
		return buf, Boundary
	}
	return buf, Continue
}

// Classify tests a completed line against the success pattern, then the
// device error pattern, then the network error pattern. Patterns are
// searched anywhere in the line. Blank lines never match.
func (lm *LineMatcher) Classify(line string) (Match, bool) {
	if strings.TrimSpace(line) == "" {
		return Match{}, false
	}
	if sub := lm.success.FindStringSubmatch(line); sub != nil {
		return Match{Class: ClassSuccess, Value: sub[1]}, true
	}
	if sub := deviceErrorPattern.FindStringSubmatch(line); sub != nil {
		return Match{Class: ClassDeviceError, Value: sub[1]}, true
	}
	if sub := networkErrorPattern.FindStringSubmatch(line); sub != nil {
		return Match{Class: ClassNetworkError, Value: sub[1]}, true
	}
	return Match{}, false
}
