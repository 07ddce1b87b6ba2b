//go:build !baremetal

// Package rawterm provides the serial link of the console, both on hosted
// systems and baremetal.
//
// On a hosted system the controlling terminal is put in raw mode and acts as
// the serial line: key presses are sent to the console unmodified (Enter
// arrives as CR) and the console output is written to stdout as is.
package rawterm

import (
	"errors"
	"io"
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

// ErrNoData is returned by ReadByte when no byte is buffered.
var ErrNoData = errors.New("rawterm: no data available")

var (
	terminalState *terminal.State
	stdio         *HostPort
)

// HostPort turns a blocking reader into a polled serial port. A background
// goroutine reads from the reader and buffers the bytes until the console
// polls them.
type HostPort struct {
	in     chan byte
	out    io.Writer
	err    error
	failed chan struct{} // closed once err is set
}

// NewPort starts reading from r. Output is written to w. Up to size bytes
// are buffered; when the buffer is full the reader blocks.
func NewPort(r io.Reader, w io.Writer, size int) *HostPort {
	p := &HostPort{
		in:     make(chan byte, size),
		out:    w,
		failed: make(chan struct{}),
	}
	go p.readLoop(r)
	return p
}

func (p *HostPort) readLoop(r io.Reader) {
	var b [1]byte
	for {
		n, err := r.Read(b[:])
		if n > 0 {
			p.in <- b[0]
		}
		if err != nil {
			p.err = err
			close(p.failed)
			close(p.in)
			return
		}
	}
}

// Buffered returns the number of bytes waiting to be read. Once the reader
// has failed and the buffer is drained it returns 1, so the next ReadByte
// reports the error.
func (p *HostPort) Buffered() int {
	if n := len(p.in); n > 0 {
		return n
	}
	select {
	case <-p.failed:
		return 1
	default:
		return 0
	}
}

// ReadByte returns the next buffered byte without blocking. When the reader
// has failed and all bytes have been consumed, its error is returned.
func (p *HostPort) ReadByte() (byte, error) {
	select {
	case b, ok := <-p.in:
		if !ok {
			return 0, p.err
		}
		return b, nil
	default:
		return 0, ErrNoData
	}
}

// Write writes console output.
func (p *HostPort) Write(buf []byte) (int, error) {
	return p.out.Write(buf)
}

// Configure puts the terminal in raw mode so it can be used as the serial
// link. It must be restored after use with Restore:
//
//	rawterm.Configure()
//	defer rawterm.Restore()
//	port := rawterm.Port()
func Configure() error {
	var err error
	terminalState, err = terminal.MakeRaw(int(os.Stdin.Fd()))
	return err
}

// Restore restores the state to before a call to Configure.
func Restore() {
	if terminalState != nil {
		terminal.Restore(int(os.Stdin.Fd()), terminalState)
		terminalState = nil
	}
}

// Port returns the serial port backed by stdin and stdout.
func Port() *HostPort {
	if stdio == nil {
		stdio = NewPort(os.Stdin, os.Stdout, 64)
	}
	return stdio
}
