// Package sim is a terminal based simulator of the console hardware. It
// shows the OLED panel, the indicator LEDs and the serial transcript on a
// tcell screen, and turns key presses into serial input.
//
// A Simulator is a drivers.Displayer (the panel), an oledterm.Port (the
// serial link) and an oledterm.Indicators (the LEDs) at the same time.
package sim // import "tinygo.org/x/oledterm/sim"

import (
	"errors"
	"image/color"
	"strconv"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"tinygo.org/x/oledterm"
)

// Number of transcript lines kept in memory.
const maxTranscript = 256

// ErrNoData is returned by ReadByte when no key press is pending.
var ErrNoData = errors.New("sim: no input available")

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleText   = tcell.StyleDefault
	styleLEDOn  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleLEDOff = tcell.StyleDefault.Foreground(tcell.ColorGray)
	pixelOn     = tcell.NewRGBColor(0x80, 0xd0, 0xff)
	pixelOff    = tcell.ColorBlack
)

// Simulator draws the simulated device on a tcell screen.
type Simulator struct {
	screen tcell.Screen
	log    logrus.FieldLogger

	mu         sync.Mutex
	width      int
	height     int
	pixels     []bool
	shown      []bool // pixels as of the last Display call
	leds       [oledterm.NumIndicators]bool
	transcript []string
	partial    []byte

	in   chan byte
	quit chan struct{}
	once sync.Once
}

// New initializes screen and returns a simulator for a panel of width by
// height pixels. Call Start to begin processing key presses and Close to
// restore the terminal.
func New(screen tcell.Screen, width, height int, log logrus.FieldLogger) (*Simulator, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.Clear()
	s := &Simulator{
		screen: screen,
		log:    log,
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
		shown:  make([]bool, width*height),
		in:     make(chan byte, 64),
		quit:   make(chan struct{}),
	}
	s.draw()
	return s, nil
}

// Start processes screen events in the background until the user quits with
// Ctrl-X or Close is called.
func (s *Simulator) Start() {
	go s.eventLoop()
}

// Done is closed when the user asked to quit.
func (s *Simulator) Done() <-chan struct{} {
	return s.quit
}

// Close restores the terminal.
func (s *Simulator) Close() {
	s.stop()
	s.screen.Fini()
}

func (s *Simulator) stop() {
	s.once.Do(func() { close(s.quit) })
}

func (s *Simulator) eventLoop() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			// Screen finalized.
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			s.handleKey(ev)
		case *tcell.EventResize:
			s.screen.Sync()
			s.mu.Lock()
			s.draw()
			s.mu.Unlock()
		}
	}
}

func (s *Simulator) handleKey(ev *tcell.EventKey) {
	var b byte
	switch k := ev.Key(); {
	case k == tcell.KeyCtrlX, k == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'x' || ev.Rune() == 'X'):
		s.log.Debug("quit requested")
		s.stop()
		return
	case k == tcell.KeyRune:
		r := ev.Rune()
		if r <= 0 || r > 0x7f {
			return
		}
		b = byte(r)
	case k < 0x80:
		// Control keys carry their ASCII code, Enter is CR.
		b = byte(k)
	default:
		return
	}
	select {
	case s.in <- b:
	default:
		s.log.Warn("input buffer full, key dropped")
	}
}

// Size implements drivers.Displayer.
func (s *Simulator) Size() (x, y int16) {
	return int16(s.width), int16(s.height)
}

// SetPixel implements drivers.Displayer. Any color other than black lights
// the pixel.
func (s *Simulator) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || int(x) >= s.width || y < 0 || int(y) >= s.height {
		return
	}
	s.mu.Lock()
	s.pixels[int(y)*s.width+int(x)] = c.R != 0 || c.G != 0 || c.B != 0
	s.mu.Unlock()
}

// Display implements drivers.Displayer and shows the pixels set so far.
func (s *Simulator) Display() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(s.shown, s.pixels)
	s.draw()
	return nil
}

// Buffered returns the number of pending key presses.
func (s *Simulator) Buffered() int {
	return len(s.in)
}

// ReadByte returns the next key press without blocking.
func (s *Simulator) ReadByte() (byte, error) {
	select {
	case b := <-s.in:
		return b, nil
	default:
		return 0, ErrNoData
	}
}

// Write appends console output to the transcript pane.
func (s *Simulator) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range p {
		switch b {
		case '\r':
		case '\n':
			s.transcript = append(s.transcript, string(s.partial))
			s.partial = s.partial[:0]
		default:
			s.partial = append(s.partial, b)
		}
	}
	if over := len(s.transcript) - maxTranscript; over > 0 {
		s.transcript = append(s.transcript[:0], s.transcript[over:]...)
	}
	s.draw()
	return len(p), nil
}

// SetIndicator lights or darkens one of the LEDs.
func (s *Simulator) SetIndicator(index int, active bool) {
	if index < 1 || index > len(s.leds) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.leds[index-1] != active {
		s.log.WithFields(logrus.Fields{"led": index, "active": active}).Info("indicator changed")
	}
	s.leds[index-1] = active
	s.draw()
}

// Indicator returns the state of an LED.
func (s *Simulator) Indicator(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 1 || index > len(s.leds) {
		return false
	}
	return s.leds[index-1]
}

// Transcript returns the completed transcript lines followed by the line
// being written, if any.
func (s *Simulator) Transcript() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := append([]string(nil), s.transcript...)
	if len(s.partial) > 0 {
		lines = append(lines, string(s.partial))
	}
	return lines
}

// draw renders the whole device. The panel uses one cell per two pixel
// rows, the upper half block showing the top pixel. s.mu must be held.
func (s *Simulator) draw() {
	s.screen.Clear()
	cols, rows := s.screen.Size()

	panelRows := (s.height + 1) / 2
	s.box(0, 0, s.width+1, panelRows+1, "OLED")
	for cy := 0; cy < panelRows; cy++ {
		for x := 0; x < s.width; x++ {
			top := s.shown[2*cy*s.width+x]
			bottom := 2*cy+1 < s.height && s.shown[(2*cy+1)*s.width+x]
			st := tcell.StyleDefault.Foreground(pixelOff).Background(pixelOff)
			if top {
				st = st.Foreground(pixelOn)
			}
			if bottom {
				st = st.Background(pixelOn)
			}
			s.screen.SetContent(1+x, 1+cy, '▀', nil, st)
		}
	}

	y := panelRows + 2
	x := 1
	for i, on := range s.leds {
		x = s.text(x, y, "LED"+strconv.Itoa(i+1)+" ", styleText)
		if on {
			x = s.text(x, y, "●", styleLEDOn)
		} else {
			x = s.text(x, y, "○", styleLEDOff)
		}
		x = s.text(x, y, "   ", styleText)
	}
	s.text(x, y, "Ctrl-X quits", styleBorder)

	top := y + 2
	s.box(0, top-1, cols-1, rows-top, "serial")
	avail := rows - top - 1
	lines := s.transcript
	if len(s.partial) > 0 {
		lines = append(lines[:len(lines):len(lines)], string(s.partial))
	}
	if len(lines) > avail && avail >= 0 {
		lines = lines[len(lines)-avail:]
	}
	for i, line := range lines {
		s.text(1, top+i, line, styleText)
	}
	s.screen.Show()
}

// text draws str and returns the column after it.
func (s *Simulator) text(x, y int, str string, st tcell.Style) int {
	for _, r := range str {
		s.screen.SetContent(x, y, r, nil, st)
		x++
	}
	return x
}

// box draws a frame whose inner area starts at x+1, y+1.
func (s *Simulator) box(x, y, w, h int, title string) {
	for i := x; i <= x+w; i++ {
		s.screen.SetContent(i, y, '─', nil, styleBorder)
		s.screen.SetContent(i, y+h, '─', nil, styleBorder)
	}
	for j := y; j <= y+h; j++ {
		s.screen.SetContent(x, j, '│', nil, styleBorder)
		s.screen.SetContent(x+w, j, '│', nil, styleBorder)
	}
	s.screen.SetContent(x, y, '┌', nil, styleBorder)
	s.screen.SetContent(x+w, y, '┐', nil, styleBorder)
	s.screen.SetContent(x, y+h, '└', nil, styleBorder)
	s.screen.SetContent(x+w, y+h, '┘', nil, styleBorder)
	s.text(x+2, y, title, styleBorder)
}
