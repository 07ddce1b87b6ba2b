package oledterm

// Display is a page-addressed monochrome framebuffer, like the SSD1306 in
// page addressing mode. SetCursor selects a page (text row) and a pixel
// column; every WriteColumn stores eight vertical pixels at the cursor and
// moves the cursor one column to the right.
type Display interface {
	Clear()
	SetCursor(row, column int)
	WriteColumn(b byte)
}

// Renderer draws characters onto a Display using a Font. It keeps no text
// of its own.
type Renderer struct {
	display Display
	font    *Font
}

// NewRenderer returns a renderer drawing on d with font f. A nil font
// selects the built-in 5x7 font.
func NewRenderer(d Display, f *Font) *Renderer {
	if f == nil {
		f = &font5x7
	}
	return &Renderer{display: d, font: f}
}

// Clear blanks the whole display.
func (r *Renderer) Clear() {
	r.display.Clear()
}

// SetCursor moves the drawing position to a text row and pixel column.
func (r *Renderer) SetCursor(row, column int) {
	r.display.SetCursor(row, column)
}

// DrawGlyph draws the glyph for c at the cursor followed by a blank spacer
// column. It returns the number of pixel columns drawn, which is the amount
// the caller has to advance its pixel column by. Characters without a glyph
// only get the spacer.
func (r *Renderer) DrawGlyph(c byte) int {
	g, ok := r.font.Glyph(c)
	if !ok {
		return r.DrawBlank()
	}
	for _, col := range g.Columns {
		r.display.WriteColumn(col)
	}
	r.display.WriteColumn(0x00)
	return int(g.Width) + 1
}

// DrawBlank draws a single blank column and returns its width.
func (r *Renderer) DrawBlank() int {
	r.display.WriteColumn(0x00)
	return 1
}

// DrawText draws a complete row of text starting at the left edge.
func (r *Renderer) DrawText(row int, text []byte) {
	r.display.SetCursor(row, 0)
	for _, c := range text {
		r.DrawGlyph(c)
	}
}
