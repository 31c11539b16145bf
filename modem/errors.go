package modem

import (
	"errors"
	"fmt"
	"time"

	"i4.energy/across/gsmquery/at"
)

var (
	// ErrNoDialer is returned when a Session is opened without a Dialer.
	//
	// This indicates a configuration error. A Dialer is required in order to
	// establish a connection to the modem.
	ErrNoDialer = errors.New("no dialer configured")

	// ErrNotInitialized is returned when an operation is attempted on a Session
	// that has no transport, for example when the Dialer returned none.
	ErrNotInitialized = errors.New("modem not initialized")

	// ErrAlreadyClosed is returned when Fetch is called on a closed Session.
	ErrAlreadyClosed = errors.New("modem already closed")

	// ErrTimeout matches every *TimeoutError with errors.Is.
	ErrTimeout = errors.New("timed out")

	// ErrNoCaptureGroup is returned when the success pattern is missing or has
	// no capturing group.
	ErrNoCaptureGroup = at.ErrNoCaptureGroup
)

// DeviceError is a +CME ERROR reported by the modem equipment.
type DeviceError struct {
	Code string
}

// Description returns the table text for the code, or at.UnknownCode.
func (e *DeviceError) Description() string {
	desc, _ := at.DescribeCME(e.Code)
	return desc
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("GSM equipment error %s: %s", e.Code, e.Description())
}

// NetworkError is a +CMS ERROR reported by the network.
type NetworkError struct {
	Code string
}

// Description returns the table text for the code, or at.UnknownCode.
func (e *NetworkError) Description() string {
	desc, _ := at.DescribeCMS(e.Code)
	return desc
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("GSM network error %s: %s", e.Code, e.Description())
}

// TimeoutError reports that no terminal line arrived before the deadline.
type TimeoutError struct {
	Elapsed time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("GSM timed out after %s", e.Elapsed.Round(time.Millisecond))
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}
