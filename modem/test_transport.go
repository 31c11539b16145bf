package modem

import (
	"context"
	"io"
	"sync"
	"time"
)

// TestTransport is a test helper that simulates a serial port in memory.
// Data queued with SendData is handed out by Read; when nothing is queued a
// Read blocks for ReadTimeout and then returns (0, nil), just like a serial
// port whose read timeout expired. Everything written is recorded.
type TestTransport struct {
	// ReadTimeout is how long an empty Read blocks before returning no data.
	ReadTimeout time.Duration

	mu      sync.Mutex
	pending []byte
	written []byte
	closed  bool
	notify  chan struct{}
}

// NewTestTransport creates a new test transport for testing.
// Exported for use in tests.
func NewTestTransport() *TestTransport {
	return &TestTransport{
		ReadTimeout: 10 * time.Millisecond,
		notify:      make(chan struct{}, 1),
	}
}

func (t *TestTransport) Write(p []byte) (n int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return 0, io.ErrClosedPipe
	}
	t.written = append(t.written, p...)
	return len(p), nil
}

func (t *TestTransport) Drain() error {
	return nil
}

func (t *TestTransport) Read(p []byte) (n int, err error) {
	if n, ready, err := t.take(p); ready {
		return n, err
	}

	timer := time.NewTimer(t.ReadTimeout)
	defer timer.Stop()
	select {
	case <-t.notify:
	case <-timer.C:
	}

	n, _, err = t.take(p)
	return n, err
}

// take reports ready when it produced data or an error without blocking.
func (t *TestTransport) take(p []byte) (int, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return 0, true, io.EOF
	}
	if len(t.pending) == 0 {
		return 0, false, nil
	}
	n := copy(p, t.pending)
	t.pending = t.pending[n:]
	return n, true, nil
}

func (t *TestTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	t.wake()
	return nil
}

// SendData queues data to be read by the transport.
// This simulates receiving data from the modem.
func (t *TestTransport) SendData(data string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.closed {
		t.pending = append(t.pending, data...)
		t.wake()
	}
}

// Written returns everything written to the transport so far.
func (t *TestTransport) Written() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.written)
}

// Pending returns the number of queued bytes not read yet.
func (t *TestTransport) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}

func (t *TestTransport) wake() {
	select {
	case t.notify <- struct{}{}:
	default:
	}
}

// TestDialer hands out a fixed Transport.
type TestDialer struct {
	Transport Transport
	Err       error
}

func (d TestDialer) Dial(ctx context.Context) (Transport, error) {
	if d.Err != nil {
		return nil, d.Err
	}
	return d.Transport, nil
}
