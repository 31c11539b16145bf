package at

const (
	// Terminal Control
	CR = '\r'
	LF = '\n'

	// Commands
	CmdSignalQuality = "AT+CSQ"

	// Error Reports
	CmeError = "+CME ERROR:"
	CmsError = "+CMS ERROR:"
)

// LineEvent is what OnByte reports after appending a byte to a line buffer.
type LineEvent int

const (
	Continue LineEvent = iota // no terminator yet
	Boundary                  // CR or LF just completed a line
)

// Class is the classification of a completed line.
type Class int

const (
	ClassSuccess      Class = iota // caller supplied success pattern
	ClassDeviceError               // +CME ERROR: n
	ClassNetworkError              // +CMS ERROR: n
)

func (c Class) String() string {
	switch c {
	case ClassSuccess:
		return "success"
	case ClassDeviceError:
		return "device error"
	case ClassNetworkError:
		return "network error"
	}
	return "unknown"
}
