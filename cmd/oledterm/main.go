// Command oledterm runs the serial console.
//
// On a microcontroller it drives an SSD1306 panel and three indicator LEDs
// and reads from the board UART at 9600 baud:
//
//	tinygo flash -target pico ./cmd/oledterm
//
// On a desktop system it runs a simulator of the same hardware in the
// terminal:
//
//	go run ./cmd/oledterm -config oledterm.yaml
package main

import (
	"context"
	"time"

	"tinygo.org/x/oledterm"
)

// board is everything the console needs from the platform.
type board struct {
	display  oledterm.Display
	port     oledterm.Port
	leds     oledterm.Indicators
	config   oledterm.Config
	interval time.Duration
	ctx      context.Context
	close    func()
}

func main() {
	b, err := setup()
	must("set up board", err)
	defer b.close()

	console := oledterm.New(b.display, b.port, b.leds, b.config)
	console.Start()
	console.Run(b.ctx, b.port, b.interval)
}

func must(action string, err error) {
	if err != nil {
		panic("failed to " + action + ": " + err.Error())
	}
}
