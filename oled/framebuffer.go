// Package oled provides a page-addressed monochrome framebuffer that mirrors
// the memory layout of SSD1306 style OLED controllers.
//
// The framebuffer implements oledterm.Display. It can be pushed to any
// tinygo.org/x/drivers Displayer, which is how it reaches the real panel on
// a microcontroller and the simulator on a desktop system.
package oled // import "tinygo.org/x/oledterm/oled"

import (
	"image/color"
	"strings"

	"tinygo.org/x/drivers"
)

const pageHeight = 8

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
)

// Framebuffer holds width columns of pages display pages. Each byte is one
// column of eight pixels, bit 0 on top.
type Framebuffer struct {
	width  int
	pages  int
	buf    []byte
	page   int
	column int
	dirty  bool
	target drivers.Displayer
}

// New returns a blank framebuffer of the given size in pixels. The height is
// rounded up to a whole number of pages. Target may be nil for a framebuffer
// that is only inspected in memory.
func New(width, height int, target drivers.Displayer) *Framebuffer {
	pages := (height + pageHeight - 1) / pageHeight
	return &Framebuffer{
		width:  width,
		pages:  pages,
		buf:    make([]byte, width*pages),
		target: target,
	}
}

// Size returns the size of the framebuffer in pixels.
func (f *Framebuffer) Size() (width, height int) {
	return f.width, f.pages * pageHeight
}

// Clear blanks all pixels and moves the cursor to the top left corner.
func (f *Framebuffer) Clear() {
	for i := range f.buf {
		f.buf[i] = 0
	}
	f.page = 0
	f.column = 0
	f.dirty = true
}

// SetCursor selects the page and column for the next WriteColumn. Values out
// of range are wrapped the way the controller wraps its address counters.
func (f *Framebuffer) SetCursor(row, column int) {
	f.page = mod(row, f.pages)
	f.column = mod(column, f.width)
}

// WriteColumn stores eight pixels at the cursor and advances the column. At
// the right edge the column wraps to the start of the same page.
func (f *Framebuffer) WriteColumn(b byte) {
	f.buf[f.page*f.width+f.column] = b
	f.column++
	if f.column >= f.width {
		f.column = 0
	}
	f.dirty = true
}

// Cursor returns the current page and column.
func (f *Framebuffer) Cursor() (page, column int) {
	return f.page, f.column
}

// Column returns the pixel column byte stored at a page and column.
func (f *Framebuffer) Column(page, column int) byte {
	if page < 0 || page >= f.pages || column < 0 || column >= f.width {
		return 0
	}
	return f.buf[page*f.width+column]
}

// Pixel reports whether the pixel at x, y is lit.
func (f *Framebuffer) Pixel(x, y int) bool {
	return f.Column(y/pageHeight, x)&(1<<uint(y%pageHeight)) != 0
}

// Page returns a copy of a whole page.
func (f *Framebuffer) Page(page int) []byte {
	out := make([]byte, f.width)
	if page >= 0 && page < f.pages {
		copy(out, f.buf[page*f.width:(page+1)*f.width])
	}
	return out
}

// Dirty reports whether the framebuffer changed since the last Flush.
func (f *Framebuffer) Dirty() bool {
	return f.dirty
}

// Flush copies the framebuffer to the target display and tells it to update.
// Nothing is sent when the framebuffer did not change or has no target.
func (f *Framebuffer) Flush() error {
	if f.target == nil || !f.dirty {
		return nil
	}
	if err := f.DrawTo(f.target); err != nil {
		return err
	}
	f.dirty = false
	return nil
}

// DrawTo copies every pixel to d and calls its Display method.
func (f *Framebuffer) DrawTo(d drivers.Displayer) error {
	dw, dh := d.Size()
	w, h := f.Size()
	if int(dw) < w {
		w = int(dw)
	}
	if int(dh) < h {
		h = int(dh)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := black
			if f.Pixel(x, y) {
				c = white
			}
			d.SetPixel(int16(x), int16(y), c)
		}
	}
	return d.Display()
}

// String renders the framebuffer as text, one line per pixel row, using '#'
// for lit pixels and '.' for dark ones.
func (f *Framebuffer) String() string {
	w, h := f.Size()
	var sb strings.Builder
	sb.Grow((w + 1) * h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if f.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
