package oledterm

const (
	firstGlyph = 0x20
	lastGlyph  = 0x7e
	glyphCount = lastGlyph - firstGlyph + 1
)

// Font is a variable-width glyph table indexed by character code minus 32.
// Every entry holds the glyph width w followed by w bitmap columns. Each
// column byte covers one display page, bit 0 being the top pixel.
type Font [glyphCount][]byte

// Glyph is a single character of a Font.
type Glyph struct {
	Width   uint8
	Columns []byte
}

// DefaultFont returns the built-in 5x7 font.
func DefaultFont() *Font {
	return &font5x7
}

// Printable reports whether c has a glyph slot: only the printable ASCII
// range 32..126 is drawable.
func Printable(c byte) bool {
	return c >= firstGlyph && c < 0x7f
}

// Glyph returns the glyph for c. It returns false when c is outside the
// printable range or the font has no usable entry for it.
func (f *Font) Glyph(c byte) (Glyph, bool) {
	if !Printable(c) {
		return Glyph{}, false
	}
	entry := f[c-firstGlyph]
	if len(entry) == 0 {
		return Glyph{}, false
	}
	w := int(entry[0])
	if w > len(entry)-1 {
		// Truncated entry, draw what is there.
		w = len(entry) - 1
	}
	return Glyph{Width: uint8(w), Columns: entry[1 : 1+w]}, true
}
