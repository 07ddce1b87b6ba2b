//go:build !baremetal

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"tinygo.org/x/tinyfont"

	"tinygo.org/x/oledterm"
)

// config is the simulator configuration, read from a YAML file.
type config struct {
	// Panel size in pixels. The number of text rows is height/8.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	BufferSize int    `yaml:"buffer_size"`
	CharWidth  int    `yaml:"char_width"`
	Font       string `yaml:"font"`     // 5x7 or picopixel
	Frontend   string `yaml:"frontend"` // tcell or raw

	PollInterval time.Duration `yaml:"poll_interval"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

func defaultConfig() config {
	return config{
		Width:        oledterm.MaxColumn,
		Height:       oledterm.MaxRows * 8,
		BufferSize:   oledterm.BufferSize,
		CharWidth:    oledterm.CharWidth,
		Font:         "5x7",
		Frontend:     "tcell",
		PollInterval: oledterm.PollInterval,
		LogLevel:     "info",
		LogFile:      "oledterm.log",
	}
}

// loadConfig reads a configuration file on top of the defaults. An empty
// path returns the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	switch {
	case c.Width <= 0 || c.Height < 8:
		return fmt.Errorf("invalid panel size %dx%d", c.Width, c.Height)
	case c.BufferSize < 2:
		return fmt.Errorf("buffer_size must be at least 2, got %d", c.BufferSize)
	case c.CharWidth <= 0:
		return fmt.Errorf("char_width must be positive, got %d", c.CharWidth)
	}
	if _, ok := fonts[c.Font]; !ok {
		return fmt.Errorf("unknown font %q", c.Font)
	}
	if c.Frontend != "tcell" && c.Frontend != "raw" {
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// fonts maps the font names accepted in the configuration to their glyph
// tables. Converted fonts are rasterized on demand.
var fonts = map[string]func() *oledterm.Font{
	"":          oledterm.DefaultFont,
	"5x7":       oledterm.DefaultFont,
	"picopixel": picopixel,
}

func picopixel() *oledterm.Font {
	return oledterm.FontFromFonter(&tinyfont.Picopixel, 6)
}

// console returns the console configuration.
func (c config) console() (oledterm.Config, error) {
	font, ok := fonts[c.Font]
	if !ok {
		return oledterm.Config{}, fmt.Errorf("unknown font %q", c.Font)
	}
	return oledterm.Config{
		Rows:       c.Height / 8,
		BufferSize: c.BufferSize,
		MaxColumn:  c.Width,
		CharWidth:  c.CharWidth,
		Font:       font(),
	}, nil
}
