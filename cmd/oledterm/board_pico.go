//go:build pico

package main

import (
	"context"
	"machine"
	"time"

	"tinygo.org/x/oledterm"
	"tinygo.org/x/oledterm/oled"
	"tinygo.org/x/oledterm/rawterm"
)

// Wiring of the reference board: an SSD1306 128x32 module on I2C0 and three
// LEDs sinking current into the pins, so they light when driven low.
const (
	screenWidth   = 128
	screenHeight  = 32
	ledActiveHigh = false
)

var (
	sdaPin  = machine.GPIO0
	sclPin  = machine.GPIO1
	ledPins = [oledterm.NumIndicators]machine.Pin{machine.GPIO18, machine.GPIO19, machine.GPIO20}
)

// pinIndicators drives LEDs connected to GPIO pins.
type pinIndicators struct {
	pins       [oledterm.NumIndicators]machine.Pin
	activeHigh bool
}

func (p *pinIndicators) SetIndicator(index int, active bool) {
	if index < 1 || index > len(p.pins) {
		return
	}
	p.pins[index-1].Set(active == p.activeHigh)
}

func setup() (*board, error) {
	if err := rawterm.Configure(); err != nil {
		return nil, err
	}

	leds := &pinIndicators{pins: ledPins, activeHigh: ledActiveHigh}
	for i, pin := range leds.pins {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		leds.SetIndicator(i+1, false)
	}

	if err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SCL:       sclPin,
		SDA:       sdaPin,
	}); err != nil {
		return nil, err
	}
	// Let the bus settle before talking to the panel.
	time.Sleep(10 * time.Millisecond)
	display := oled.NewSSD1306(machine.I2C0, oled.I2CAddress, screenWidth, screenHeight)

	return &board{
		display:  display,
		port:     rawterm.Port(),
		leds:     leds,
		config:   oledterm.Config{Rows: screenHeight / 8, MaxColumn: screenWidth},
		interval: oledterm.PollInterval,
		ctx:      context.Background(),
		close:    rawterm.Restore,
	}, nil
}
