package modem

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"i4.energy/across/gsmquery/at"
)

// Session owns an open Transport to a GSM modem and runs one AT command at a
// time against it. A Session is not safe for concurrent use: callers must
// wait for Fetch to return before issuing the next one.
type Session struct {
	// transport provides the physical connection to the modem
	transport Transport
	// timeout is the fetch deadline used when Fetch is given none
	timeout time.Duration
	logger  *slog.Logger
	now     func() time.Time
	// closed indicates if the session has been shut down
	closed bool
	// lastExecution is the elapsed time of the most recent Fetch
	lastExecution time.Duration
}

// Open dials the modem with the configured Dialer and returns a ready
// Session. The serial dialer discards stale buffered input and output while
// opening.
//
// Returns an error if the transport cannot be established.
func Open(ctx context.Context, config Config) (*Session, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	config.setDefaults()

	config.logger.Debug("Opening connection")
	transport, err := config.dialer.Dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("open transport: %w", err)
	}
	if transport == nil {
		return nil, ErrNotInitialized
	}

	return &Session{
		transport: transport,
		timeout:   config.timeout,
		logger:    config.logger,
		now:       config.now,
	}, nil
}

// Fetch writes command to the modem verbatim and reads the reply one byte at
// a time until a line matches pattern, a +CME ERROR or a +CMS ERROR line
// arrives, or timeout has elapsed since the call started. Lines that match
// nothing are dropped. The first capturing group of the matching pattern
// becomes Outcome.Value.
//
// The deadline is checked after every read, before the byte is looked at, so
// a byte that arrives after the deadline yields KindTimedOut even if it
// completes a matching line. A timeout <= 0 uses the session default.
//
// Device errors, network errors and timeouts are reported through the
// Outcome. The returned error is reserved for transport failures, context
// cancellation and invalid arguments.
func (s *Session) Fetch(ctx context.Context, command []byte, pattern *regexp.Regexp, timeout time.Duration) (Outcome, error) {
	if s.closed {
		return Outcome{}, ErrAlreadyClosed
	}
	if s.transport == nil {
		return Outcome{}, ErrNotInitialized
	}
	matcher, err := at.NewLineMatcher(pattern)
	if err != nil {
		return Outcome{}, err
	}
	if timeout <= 0 {
		timeout = s.timeout
	}

	start := s.now()
	var elapsed time.Duration
	defer func() {
		s.lastExecution = elapsed
	}()

	cmd := strings.TrimSpace(string(command))
	s.logger.Debug("Running command", "command", cmd)

	if _, err := s.transport.Write(command); err != nil {
		elapsed = s.now().Sub(start)
		return Outcome{Elapsed: elapsed}, fmt.Errorf("write command %q: %w", cmd, err)
	}
	if err := s.transport.Drain(); err != nil {
		elapsed = s.now().Sub(start)
		return Outcome{Elapsed: elapsed}, fmt.Errorf("flush command %q: %w", cmd, err)
	}

	var (
		line []byte
		b    [1]byte
		ev   at.LineEvent
	)
	for {
		if err := ctx.Err(); err != nil {
			elapsed = s.now().Sub(start)
			return Outcome{Elapsed: elapsed}, fmt.Errorf("command cancelled: %w", err)
		}

		n, err := s.transport.Read(b[:])
		elapsed = s.now().Sub(start)
		if err != nil {
			return Outcome{Elapsed: elapsed}, fmt.Errorf("read error: %w", err)
		}
		if elapsed >= timeout {
			s.logRaw(line)
			return Outcome{Kind: KindTimedOut, Elapsed: elapsed}, nil
		}
		if n == 0 {
			// Per-byte read timeout of the transport, no data.
			continue
		}

		if line, ev = matcher.OnByte(line, b[0]); ev == at.Continue {
			continue
		}

		s.logRaw(line)
		if m, ok := matcher.Classify(string(line)); ok {
			return s.outcome(m, elapsed), nil
		}
		line = line[:0]
	}
}

func (s *Session) outcome(m at.Match, elapsed time.Duration) Outcome {
	o := Outcome{Value: m.Value, Elapsed: elapsed}
	switch m.Class {
	case at.ClassSuccess:
		o.Kind = KindMatched
	case at.ClassDeviceError:
		o.Kind = KindDeviceError
		s.logger.Debug("Device error", "code", m.Value)
	case at.ClassNetworkError:
		o.Kind = KindNetworkError
		s.logger.Debug("Network error", "code", m.Value)
	}
	return o
}

func (s *Session) logRaw(line []byte) {
	if raw := strings.TrimSpace(string(line)); raw != "" {
		s.logger.Debug("Raw output", "line", raw)
	}
}

// LastExecutionTime returns how long the most recent Fetch took, whatever
// it returned.
func (s *Session) LastExecutionTime() time.Duration {
	return s.lastExecution
}

// Close releases the transport. Close failures are logged and otherwise
// ignored: the link is being dropped either way. Closing twice is a no-op.
// After Close the session cannot be reused.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true

	s.logger.Debug("Closing connection")
	if err := s.transport.Close(); err != nil {
		s.logger.Warn("Failed to close transport", "error", err)
	}
}
