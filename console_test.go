package oledterm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDisplay is a page-addressed framebuffer that also counts clears.
type testDisplay struct {
	width  int
	pages  [][]byte
	page   int
	column int
	clears int
}

func newTestDisplay(width, pages int) *testDisplay {
	d := &testDisplay{width: width, pages: make([][]byte, pages)}
	for i := range d.pages {
		d.pages[i] = make([]byte, width)
	}
	return d
}

func (d *testDisplay) Clear() {
	for _, p := range d.pages {
		for i := range p {
			p[i] = 0
		}
	}
	d.page, d.column = 0, 0
	d.clears++
}

func (d *testDisplay) SetCursor(row, column int) {
	d.page = row % len(d.pages)
	d.column = column % d.width
}

func (d *testDisplay) WriteColumn(b byte) {
	d.pages[d.page][d.column] = b
	d.column = (d.column + 1) % d.width
}

type ledRecorder struct {
	state [NumIndicators + 1]bool
	calls int
}

func (l *ledRecorder) SetIndicator(index int, active bool) {
	l.state[index] = active
	l.calls++
}

type testConsole struct {
	*Console
	display *testDisplay
	out     *bytes.Buffer
	leds    *ledRecorder
}

func newTestConsole(t *testing.T, cfg Config) *testConsole {
	t.Helper()
	cfg = cfg.withDefaults()
	tc := &testConsole{
		display: newTestDisplay(MaxColumn, cfg.Rows),
		out:     new(bytes.Buffer),
		leds:    new(ledRecorder),
	}
	tc.Console = New(tc.display, tc.out, tc.leds, cfg)
	tc.Start()
	require.Equal(t, Banner, tc.out.String())
	tc.out.Reset()
	return tc
}

func (tc *testConsole) feed(s string) {
	tc.Write([]byte(s))
}

func TestConsoleStart(t *testing.T) {
	tc := newTestConsole(t, Config{})
	assert.Equal(t, 1, tc.display.clears)
	assert.Equal(t, []string{"", "", "", ""}, tc.Lines())
	assert.Zero(t, tc.ActiveRow())
	assert.Zero(t, tc.WriteOffset())
	assert.Zero(t, tc.PixelColumn())
}

func TestConsoleEcho(t *testing.T) {
	tc := newTestConsole(t, Config{})
	for i, c := range []byte("Hello, world") {
		tc.WriteByte(c)
		assert.Equal(t, i+1, tc.out.Len(), "one echoed byte per printable byte")
		assert.Equal(t, i+1, tc.WriteOffset(), "one append per printable byte")
	}
	assert.Equal(t, "Hello, world", tc.out.String())
	assert.Equal(t, "Hello, world", tc.Line(0))
	width := 0
	for _, c := range []byte("Hello, world") {
		g, _ := DefaultFont().Glyph(c)
		width += int(g.Width) + 1
	}
	assert.Equal(t, width, tc.PixelColumn())
}

func TestConsoleIgnoredBytes(t *testing.T) {
	tc := newTestConsole(t, Config{})
	tc.feed("ab")
	tc.out.Reset()
	clears := tc.display.clears

	for _, b := range []byte{0x00, 0x01, 0x08, '\n', '\t', 0x1b, 0x7f, 0x80, 0xc3, 0xff} {
		tc.WriteByte(b)
	}
	assert.Empty(t, tc.out.String())
	assert.Equal(t, "ab", tc.Line(0))
	assert.Equal(t, 2, tc.WriteOffset())
	assert.Equal(t, clears, tc.display.clears)
	assert.Zero(t, tc.leds.calls)
}

func TestConsoleDrawsGlyphs(t *testing.T) {
	tc := newTestConsole(t, Config{})
	tc.feed("Hi")

	// 'H' is five columns wide, 'i' three; each is followed by a spacer.
	want := []byte{0x7f, 0x08, 0x08, 0x08, 0x7f, 0x00, 0x44, 0x7d, 0x40, 0x00}
	assert.Equal(t, want, tc.display.pages[0][:len(want)])
	assert.Equal(t, 10, tc.PixelColumn())
}

func TestConsoleLEDCommand(t *testing.T) {
	tc := newTestConsole(t, Config{})
	tc.feed("led 1 1\r")

	assert.True(t, tc.leds.state[1])
	assert.Equal(t, 1, tc.leds.calls)
	assert.Equal(t, "led 1 1\r\n", tc.out.String())
	assert.Equal(t, 1, tc.ActiveRow())
	assert.Equal(t, "led 1 1", tc.Line(0))
	assert.Equal(t, "", tc.Line(1))
	assert.Zero(t, tc.WriteOffset())
	assert.Zero(t, tc.PixelColumn())

	tc.feed("led 1 0\r")
	assert.False(t, tc.leds.state[1])
	assert.Equal(t, 2, tc.ActiveRow())
}

func TestConsoleLEDMissingArgument(t *testing.T) {
	tc := newTestConsole(t, Config{})
	tc.feed("led 1\r")

	assert.Zero(t, tc.leds.calls)
	assert.Equal(t, "led 1\r\n", tc.out.String())
	assert.Equal(t, 1, tc.ActiveRow())
}

func TestConsoleHelp(t *testing.T) {
	tc := newTestConsole(t, Config{})
	tc.feed("help\r")

	assert.Equal(t, "help"+Usage+"\r\n", tc.out.String())
	assert.Equal(t, 1, tc.ActiveRow())
	assert.Equal(t, "help", tc.Line(0))
}

func TestConsoleRestart(t *testing.T) {
	tc := newTestConsole(t, Config{})
	tc.feed("led 2 1\rled 3 1\r")
	require.True(t, tc.leds.state[2])
	tc.out.Reset()

	tc.feed("restart\r")
	assert.Equal(t, "restart"+Banner+"\r\n", tc.out.String())
	assert.Equal(t, []string{"", "", "", ""}, tc.Lines())
	assert.Zero(t, tc.ActiveRow())
	for i := 1; i <= NumIndicators; i++ {
		assert.False(t, tc.leds.state[i], "led %d", i)
	}
}

func TestConsoleUnknownCommand(t *testing.T) {
	tc := newTestConsole(t, Config{})
	tc.feed("reboot now\r\r")

	assert.Equal(t, "reboot now\r\n\r\n", tc.out.String())
	assert.Zero(t, tc.leds.calls)
	assert.Equal(t, 2, tc.ActiveRow())
}

func TestConsoleFormFeed(t *testing.T) {
	tc := newTestConsole(t, Config{})
	tc.feed("one\rtwo")
	tc.out.Reset()
	clears := tc.display.clears

	tc.WriteByte('\f')
	assert.Equal(t, "\r\n", tc.out.String())
	assert.Equal(t, []string{"", "", "", ""}, tc.Lines())
	assert.Zero(t, tc.ActiveRow())
	assert.Zero(t, tc.WriteOffset())
	assert.Zero(t, tc.PixelColumn())
	assert.Equal(t, clears+1, tc.display.clears)
}

func TestConsoleScroll(t *testing.T) {
	tc := newTestConsole(t, Config{})
	tc.feed("a\rb\rc\rd")
	require.Equal(t, MaxRows-1, tc.ActiveRow())
	require.Equal(t, []string{"a", "b", "c", "d"}, tc.Lines())
	clears := tc.display.clears

	tc.feed("\r")
	assert.Equal(t, []string{"b", "c", "d", ""}, tc.Lines())
	assert.Equal(t, MaxRows-1, tc.ActiveRow())
	assert.Zero(t, tc.WriteOffset())
	assert.Zero(t, tc.PixelColumn())
	assert.Equal(t, clears+1, tc.display.clears, "scrolling redraws the display")

	// The shifted rows are drawn again at their new position.
	assert.Equal(t, []byte{0x7f, 0x48, 0x44, 0x44, 0x38, 0x00}, tc.display.pages[0][:6]) // 'b'
	assert.Equal(t, []byte{0x38, 0x44, 0x44, 0x44, 0x20, 0x00}, tc.display.pages[1][:6]) // 'c'
	assert.Equal(t, []byte{0x38, 0x44, 0x44, 0x48, 0x7f, 0x00}, tc.display.pages[2][:6]) // 'd'
	assert.Equal(t, make([]byte, MaxColumn), tc.display.pages[3])
}

func TestConsoleScrollKeepsOrder(t *testing.T) {
	tc := newTestConsole(t, Config{})
	var lines []string
	for i := 0; i < 20; i++ {
		line := strings.Repeat(string(rune('a'+i)), i%5+1)
		before := tc.Lines()
		wasLast := tc.ActiveRow() == MaxRows-1
		tc.feed(line + "\r")
		lines = append(lines, line)

		if wasLast {
			before[MaxRows-1] = line
			assert.Equal(t, append(before[1:], ""), tc.Lines(), "after line %d", i)
		}
	}
	assert.Equal(t, []string{lines[17], lines[18], lines[19], ""}, tc.Lines())
}

func TestConsoleSoftWrap(t *testing.T) {
	tc := newTestConsole(t, Config{})

	// 'M' advances six pixels. After 20 of them the column is 120, which
	// still leaves room; the 21st crosses MaxColumn-CharWidth.
	tc.feed(strings.Repeat("M", 20))
	assert.Zero(t, tc.ActiveRow())
	assert.Equal(t, 120, tc.PixelColumn())

	tc.feed("M")
	assert.Equal(t, 1, tc.ActiveRow(), "wrapped without a carriage return")
	assert.Equal(t, strings.Repeat("M", 21), tc.Line(0))
	assert.Zero(t, tc.PixelColumn())
	assert.Zero(t, tc.WriteOffset())

	tc.feed("N")
	assert.Equal(t, "N", tc.Line(1))
	assert.Equal(t, strings.Repeat("M", 21), tc.out.String()[:21])
}

func TestConsoleSoftWrapThreshold(t *testing.T) {
	// Narrow glyphs fit more characters per row; the threshold is the same.
	tc := newTestConsole(t, Config{})
	tc.feed(strings.Repeat("!", 61))
	assert.Zero(t, tc.ActiveRow())
	assert.Equal(t, 122, tc.PixelColumn())

	tc.feed("!")
	assert.Equal(t, 1, tc.ActiveRow())
}

func TestConsoleWrappedCommand(t *testing.T) {
	// A soft wrap ends the command line: only the last row is submitted.
	tc := newTestConsole(t, Config{})
	tc.feed(strings.Repeat("M", 21) + "help\r")
	assert.Contains(t, tc.out.String(), Usage)
	assert.Equal(t, 2, tc.ActiveRow())
}

func TestConsoleOverflow(t *testing.T) {
	// A display wide enough that soft wrap never triggers first.
	tc := newTestConsole(t, Config{MaxColumn: 100000})
	tc.feed("x\r")
	clears := tc.display.clears

	tc.feed(strings.Repeat("a", BufferSize-2))
	require.Equal(t, 1, tc.ActiveRow())
	require.Equal(t, BufferSize-2, tc.WriteOffset())

	// The byte that fills the last usable slot resets everything.
	tc.feed("a")
	assert.Equal(t, []string{"", "", "", ""}, tc.Lines())
	assert.Zero(t, tc.ActiveRow())
	assert.Zero(t, tc.WriteOffset())
	assert.Zero(t, tc.PixelColumn())
	assert.Equal(t, clears+1, tc.display.clears)
}

func TestConsoleOverflow130Bytes(t *testing.T) {
	tc := newTestConsole(t, Config{MaxColumn: 100000})
	for i := 0; i < 130; i++ {
		tc.WriteByte('z')
		if i == BufferSize-2 {
			assert.Equal(t, []string{"", "", "", ""}, tc.Lines(), "reset at byte %d", i+1)
			assert.Zero(t, tc.ActiveRow())
		}
	}
	assert.Equal(t, 130, tc.out.Len())
	assert.Equal(t, "zzz", tc.Line(0))
}

func TestConsoleCapacityInvariant(t *testing.T) {
	for _, cfg := range []Config{{}, {MaxColumn: 100000}, {BufferSize: 8, MaxColumn: 100000}} {
		tc := newTestConsole(t, cfg)
		limit := tc.Config().BufferSize - 1
		for i := 0; i < 1000; i++ {
			tc.WriteByte(byte(' ' + i%95))
			assert.LessOrEqual(t, tc.WriteOffset(), limit)
			assert.LessOrEqual(t, len(tc.Line(tc.ActiveRow())), limit)
		}
	}
}

func TestConsoleCustomGeometry(t *testing.T) {
	tc := newTestConsole(t, Config{Rows: 2})
	tc.feed("a\rb\rc\r")
	assert.Equal(t, []string{"c", ""}, tc.Lines())
	assert.Equal(t, 1, tc.ActiveRow())
}

func TestConsoleDispatch(t *testing.T) {
	tc := newTestConsole(t, Config{})
	tc.Dispatch(Command{Kind: CommandLED, Index: 3, Active: true})
	assert.True(t, tc.leds.state[3])
	tc.Dispatch(Command{})
	assert.Equal(t, 1, tc.leds.calls)
	assert.Empty(t, tc.out.String())
}

func TestConsoleNilCollaborators(t *testing.T) {
	c := New(newTestDisplay(MaxColumn, MaxRows), nil, nil, Config{})
	c.Start()
	c.Write([]byte("led 1 1\rhelp\rrestart\r"))
	assert.Zero(t, c.ActiveRow())
}

func TestConsoleIndicatorFunc(t *testing.T) {
	var calls []Command
	leds := IndicatorFunc(func(index int, active bool) {
		calls = append(calls, Command{Kind: CommandLED, Index: index, Active: active})
	})
	c := New(newTestDisplay(MaxColumn, MaxRows), nil, leds, Config{})
	c.Start()
	c.Write([]byte("led 2 1\rrestart\r"))
	assert.Equal(t, []Command{
		{Kind: CommandLED, Index: 2, Active: true},
		{Kind: CommandLED, Index: 1},
		{Kind: CommandLED, Index: 2},
		{Kind: CommandLED, Index: 3},
	}, calls)
}
