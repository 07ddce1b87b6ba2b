//go:build tinygo

package oled

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"
)

// I2CAddress is the default bus address of SSD1306 modules.
const I2CAddress = 0x3C

// NewSSD1306 configures an SSD1306 panel on an I2C bus and returns a blank
// framebuffer backed by it. The bus must already be configured.
func NewSSD1306(bus drivers.I2C, address uint16, width, height int) *Framebuffer {
	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Address: address,
		Width:   int16(width),
		Height:  int16(height),
	})
	dev.ClearDisplay()
	return New(width, height, dev)
}
