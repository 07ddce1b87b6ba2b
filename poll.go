package oledterm

import (
	"context"
	"time"
)

// PollInterval is the delay between two polls of the serial port.
const PollInterval = time.Millisecond

// Port is a serial link. *machine.UART implements it, as does the hosted
// port in the rawterm package.
type Port interface {
	// Buffered returns the number of bytes that can be read without
	// blocking.
	Buffered() int
	ReadByte() (byte, error)
	Write(p []byte) (n int, err error)
}

// Flusher is implemented by displays that buffer drawing operations and
// need to be told when to push them to the hardware.
type Flusher interface {
	Flush() error
}

// Poll reads at most one byte from port and processes it. It returns false
// when no byte was available.
func (c *Console) Poll(port Port) bool {
	if port.Buffered() <= 0 {
		return false
	}
	b, err := port.ReadByte()
	if err != nil {
		return false
	}
	c.WriteByte(b)
	c.flush()
	return true
}

// Run polls port until ctx is done, sleeping interval between polls. Zero
// selects PollInterval. It always returns the error of the context.
func (c *Console) Run(ctx context.Context, port Port, interval time.Duration) error {
	if interval <= 0 {
		interval = PollInterval
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		c.Poll(port)
		time.Sleep(interval)
	}
}
