package modem

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.bug.st/serial"
)

const (
	DefaultBaudRate    = 9600
	DefaultReadTimeout = 15 * time.Second
)

var _ Transport = serial.Port(nil)

// SerialDialer opens a GSM modem over a serial port using go.bug.st/serial.
type SerialDialer struct {
	// PortName is the serial device, e.g. "/dev/ttyS0" or "COM3".
	PortName string
	// BaudRate is used when Mode is nil. Defaults to DefaultBaudRate.
	BaudRate int
	// Mode overrides the whole line setting when set.
	Mode *serial.Mode
	// ReadTimeout bounds a single one-byte read. Defaults to DefaultReadTimeout.
	ReadTimeout time.Duration
}

// Dial opens the port, applies the read timeout and discards anything still
// sitting in the input and output buffers.
func (d SerialDialer) Dial(ctx context.Context) (Transport, error) {
	if d.PortName == "" {
		return nil, errors.New("gsm: serial port name is required")
	}
	if ctx == nil {
		return nil, errors.New("gsm: context is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mode := d.Mode
	if mode == nil {
		baud := d.BaudRate
		if baud <= 0 {
			baud = DefaultBaudRate
		}
		mode = &serial.Mode{
			BaudRate: baud,
			Parity:   serial.NoParity,
			DataBits: 8,
			StopBits: serial.OneStopBit,
		}
	}
	readTimeout := d.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = DefaultReadTimeout
	}

	port, err := serial.Open(d.PortName, mode)
	if err != nil {
		return nil, fmt.Errorf("gsm: open %s: %w", d.PortName, err)
	}

	if err := port.SetReadTimeout(readTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("gsm: set read timeout on %s: %w", d.PortName, err)
	}
	if err := port.ResetInputBuffer(); err != nil {
		port.Close()
		return nil, fmt.Errorf("gsm: flush input of %s: %w", d.PortName, err)
	}
	if err := port.ResetOutputBuffer(); err != nil {
		port.Close()
		return nil, fmt.Errorf("gsm: flush output of %s: %w", d.PortName, err)
	}

	return port, nil
}
