package modem

import (
	"fmt"
	"time"
)

// Kind tells which terminal state a Fetch ended in.
type Kind int

const (
	KindMatched Kind = iota
	KindDeviceError
	KindNetworkError
	KindTimedOut
)

func (k Kind) String() string {
	switch k {
	case KindMatched:
		return "matched"
	case KindDeviceError:
		return "device_error"
	case KindNetworkError:
		return "network_error"
	case KindTimedOut:
		return "timed_out"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Outcome is the result of one Fetch. Exactly one Kind is set per call.
// Value holds the captured value for KindMatched and the error code for
// KindDeviceError and KindNetworkError; it is empty for KindTimedOut.
type Outcome struct {
	Kind    Kind
	Value   string
	Elapsed time.Duration
}

// Err returns nil for KindMatched and the typed error for every other kind:
// *DeviceError, *NetworkError or *TimeoutError.
func (o Outcome) Err() error {
	switch o.Kind {
	case KindMatched:
		return nil
	case KindDeviceError:
		return &DeviceError{Code: o.Value}
	case KindNetworkError:
		return &NetworkError{Code: o.Value}
	default:
		return &TimeoutError{Elapsed: o.Elapsed}
	}
}

func (o Outcome) String() string {
	if err := o.Err(); err != nil {
		return err.Error()
	}
	return o.Value
}
