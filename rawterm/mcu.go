//go:build baremetal

package rawterm

import (
	"machine"
)

// BaudRate is the speed of the serial link, with 8 data bits, no parity and
// one stop bit.
const BaudRate = 9600

var serial = machine.DefaultUART

// Configure sets up the UART used as the serial link.
func Configure() error {
	return serial.Configure(machine.UARTConfig{BaudRate: BaudRate})
}

// Restore is a no-op on baremetal systems.
func Restore() {
}

// Port returns the UART. It is polled with Buffered and ReadByte, which
// never block.
func Port() *machine.UART {
	return serial
}
