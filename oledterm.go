// Package oledterm implements a small serial console for devices with a
// monochrome page-addressed display such as the SSD1306.
//
// Bytes received over a serial link are echoed back, drawn onto the display
// as a scrolling buffer of text rows and, once a line is completed with a
// carriage return, interpreted as a command that controls the indicator LEDs
// of the board.
//
// The package has no dependency on a specific board: the display, the
// serial port and the indicators are passed in as interfaces. It works both
// on baremetal systems (with TinyGo) and on desktop operating systems, where
// it is used by the simulator in cmd/oledterm.
package oledterm // import "tinygo.org/x/oledterm"

const debug = false

// Default console geometry, matching a 128x32 SSD1306 panel with the
// built-in 5x7 font.
const (
	MaxRows    = 4   // number of text rows (display pages)
	BufferSize = 128 // bytes per row, including the terminator
	MaxColumn  = 128 // display width in pixels
	CharWidth  = 6   // average glyph advance, used for soft wrapping
)

const (
	// Banner is written on startup and by the restart command.
	Banner = "\r\nReady...\r\n"

	// Usage is written by the help command.
	Usage = "\r\nvalid commands:\r\nled (1|2|3) (0|1)\r\nrestart\r\nhelp\r\n"

	lineEnd = "\r\n"
)

// Config configures a Console. Zero fields are replaced by the defaults
// above.
type Config struct {
	// Rows is the number of text rows kept in the buffer and shown on the
	// display.
	Rows int

	// BufferSize is the storage capacity of each row. One byte is reserved
	// for the terminator, so a row holds at most BufferSize-1 characters.
	BufferSize int

	// MaxColumn is the display width in pixels.
	MaxColumn int

	// CharWidth is the average glyph advance. A row is wrapped once the
	// pixel column exceeds MaxColumn-CharWidth.
	CharWidth int

	// Font is the glyph table used to draw characters. Nil selects the
	// built-in 5x7 font.
	Font *Font
}

// DefaultConfig returns the configuration of the reference hardware.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.Rows <= 0 {
		c.Rows = MaxRows
	}
	if c.BufferSize <= 1 {
		c.BufferSize = BufferSize
	}
	if c.MaxColumn <= 0 {
		c.MaxColumn = MaxColumn
	}
	if c.CharWidth <= 0 {
		c.CharWidth = CharWidth
	}
	if c.Font == nil {
		c.Font = &font5x7
	}
	return c
}
