package oledterm

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// maxGlyphWidth bounds the width of glyphs converted from other fonts.
const maxGlyphWidth = 16

// FontFromFonter rasterizes the printable ASCII range of a tinyfont font
// into a glyph table. Glyphs are drawn with their baseline at the given
// row of the 8 pixel page; pixels falling outside the page are dropped.
//
// The glyph width is the horizontal advance of the tinyfont glyph minus the
// spacer column that the renderer adds after every glyph.
func FontFromFonter(f tinyfont.Fonter, baseline int16) *Font {
	font := new(Font)
	var canvas glyphCanvas
	for c := firstGlyph; c <= lastGlyph; c++ {
		g := f.GetGlyph(rune(c))
		canvas.reset()
		g.Draw(&canvas, 0, baseline, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

		w := int(g.Info().XAdvance) - 1
		if used := canvas.used(); used > w {
			w = used
		}
		if w < 1 {
			w = 1
		}
		if w > maxGlyphWidth {
			w = maxGlyphWidth
		}
		entry := make([]byte, 1+w)
		entry[0] = uint8(w)
		copy(entry[1:], canvas.cols[:w])
		font[c-firstGlyph] = entry
	}
	return font
}

// glyphCanvas records the pixels of a single glyph as page columns. It
// implements drivers.Displayer.
type glyphCanvas struct {
	cols [maxGlyphWidth]byte
}

func (c *glyphCanvas) Size() (x, y int16) {
	return maxGlyphWidth, 8
}

func (c *glyphCanvas) SetPixel(x, y int16, col color.RGBA) {
	if x < 0 || x >= maxGlyphWidth || y < 0 || y >= 8 {
		return
	}
	if col.R == 0 && col.G == 0 && col.B == 0 {
		c.cols[x] &^= 1 << uint(y)
		return
	}
	c.cols[x] |= 1 << uint(y)
}

func (c *glyphCanvas) Display() error {
	return nil
}

func (c *glyphCanvas) reset() {
	c.cols = [maxGlyphWidth]byte{}
}

// used returns the number of columns up to and including the rightmost
// column with a pixel set.
func (c *glyphCanvas) used() int {
	for x := maxGlyphWidth - 1; x >= 0; x-- {
		if c.cols[x] != 0 {
			return x + 1
		}
	}
	return 0
}
