package modem

import (
	"context"
	"io"
)

//go:generate go tool mockgen -source=transport.go -destination=mock_transport_test.go -package=modem

// Transport represents an established, bidirectional byte stream to a GSM modem.
//
// A Transport is assumed to be already connected and ready for use. Reads are
// issued one byte at a time. A Read that returns no data and no error means the
// transport's per-byte read timeout elapsed; the session treats it as a tick
// and checks its own deadline. Drain blocks until written data has been sent.
// Typical implementations include serial ports or in-memory fakes used for
// testing.
type Transport interface {
	io.ReadWriteCloser
	Drain() error
}

// Dialer opens a Transport to a GSM modem.
//
// Dialer abstracts how the modem connection is created (for example, via a
// serial port or a test double) and is used when a Session is opened only.
type Dialer interface {
	// Dial is responsible for creating and returning a connected Transport. It
	// should respect cancellation provided by the context. Dial returns an error
	// if the transport cannot be established.
	Dial(ctx context.Context) (Transport, error)
}
