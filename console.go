package oledterm

import "io"

// Console is the terminal state: the text rows, the position of the next
// character and the collaborators it draws on and talks to. There is one
// Console per device; it is not safe for concurrent use.
type Console struct {
	cfg    Config
	rows   *RowBuffer
	render *Renderer
	out    io.Writer
	leds   Indicators

	activeRow   int // row receiving input
	writeOffset int // next free byte in the active row
	pixelColumn int // drawing position in the active row

	line []byte  // completed line, copied out before scrolling
	echo [1]byte // avoids an allocation per echoed byte
}

// New returns a console drawing on d, echoing to out and driving leds.
// A nil out discards all output and nil leds ignores the led command. Call
// Start before feeding input.
func New(d Display, out io.Writer, leds Indicators, cfg Config) *Console {
	cfg = cfg.withDefaults()
	if out == nil {
		out = io.Discard
	}
	if leds == nil {
		leds = noIndicators{}
	}
	return &Console{
		cfg:    cfg,
		rows:   NewRowBuffer(cfg.Rows, cfg.BufferSize),
		render: NewRenderer(d, cfg.Font),
		out:    out,
		leds:   leds,
		line:   make([]byte, 0, cfg.BufferSize),
	}
}

// Config returns the effective configuration, with defaults filled in.
func (c *Console) Config() Config {
	return c.cfg
}

// Start resets the console and writes the ready banner.
func (c *Console) Start() {
	c.Reset()
	c.writeString(Banner)
	c.flush()
}

// Reset empties all rows, moves the cursor to the top left corner and
// clears the display.
func (c *Console) Reset() {
	c.rows.Reset()
	c.activeRow = 0
	c.writeOffset = 0
	c.pixelColumn = 0
	c.render.Clear()
}

// WriteByte feeds one input byte to the console. It implements
// io.ByteWriter and never returns an error: bytes that cannot be handled are
// dropped and a full row resets the whole console.
func (c *Console) WriteByte(b byte) error {
	switch {
	case b == 0 || b > 127:
		// Not a valid single byte character.
	case b == '\r':
		c.line = append(c.line[:0], c.rows.Line(c.activeRow)...)
		c.advanceLine()
		c.Dispatch(ParseCommand(c.line))
		c.writeString(lineEnd)
	case b == '\f':
		c.Reset()
		c.writeString(lineEnd)
	case b < ' ' || b == 0x7f:
		// Other control characters are dropped.
	default:
		c.put(b)
	}
	return nil
}

// Write feeds every byte of p to the console.
func (c *Console) Write(p []byte) (int, error) {
	for _, b := range p {
		c.WriteByte(b)
	}
	return len(p), nil
}

// put echoes, stores and draws a printable character.
func (c *Console) put(b byte) {
	c.echo[0] = b
	c.out.Write(c.echo[:])

	c.rows.Append(c.activeRow, c.writeOffset, b)
	c.render.SetCursor(c.activeRow, c.pixelColumn)
	c.pixelColumn += c.render.DrawGlyph(b)

	c.writeOffset++
	if c.writeOffset >= c.cfg.BufferSize-1 {
		if debug {
			println("oledterm: row full, resetting")
		}
		c.Reset()
	}

	if c.pixelColumn > c.cfg.MaxColumn-c.cfg.CharWidth {
		c.advanceLine()
	}
}

// advanceLine moves input to the next row, scrolling all rows up when the
// last row is active.
func (c *Console) advanceLine() {
	if c.activeRow >= c.rows.Rows()-1 {
		c.scroll()
	} else {
		c.activeRow++
	}
	c.writeOffset = 0
	c.pixelColumn = 0
	c.render.SetCursor(c.activeRow, 0)
}

// scroll discards the first row. The display has no scroll support, so it
// is cleared and every remaining row is drawn again.
func (c *Console) scroll() {
	c.rows.Scroll()
	c.render.Clear()
	for i := 0; i < c.rows.Rows()-1; i++ {
		c.render.DrawText(i, c.rows.Line(i))
	}
	c.activeRow = c.rows.Rows() - 1
}

func (c *Console) writeString(s string) {
	io.WriteString(c.out, s)
}

func (c *Console) flush() {
	if f, ok := c.render.display.(Flusher); ok {
		if err := f.Flush(); err != nil && debug {
			println("oledterm: flush:", err.Error())
		}
	}
}

// ActiveRow returns the index of the row receiving input.
func (c *Console) ActiveRow() int {
	return c.activeRow
}

// WriteOffset returns the number of characters in the active row.
func (c *Console) WriteOffset() int {
	return c.writeOffset
}

// PixelColumn returns the drawing position in the active row.
func (c *Console) PixelColumn() int {
	return c.pixelColumn
}

// Line returns a copy of the text stored in a row.
func (c *Console) Line(row int) string {
	return string(c.rows.Line(row))
}

// Lines returns a copy of the text of all rows.
func (c *Console) Lines() []string {
	lines := make([]string, c.rows.Rows())
	for i := range lines {
		lines[i] = c.Line(i)
	}
	return lines
}
