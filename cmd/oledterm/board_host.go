//go:build !baremetal

package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"tinygo.org/x/oledterm"
	"tinygo.org/x/oledterm/oled"
	"tinygo.org/x/oledterm/rawterm"
	"tinygo.org/x/oledterm/sim"
)

// exitKey ends the program with the raw frontend, where Ctrl-C is just
// another byte for the console.
const exitKey = 0x18 // Ctrl-X

func setup() (*board, error) {
	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv("OLEDTERM_CONFIG"), "path to the YAML configuration file")
	frontend := flag.String("frontend", "", "tcell (simulated panel) or raw (terminal as serial line)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	logFile := flag.String("log-file", "", "file to write logs to (use \"stderr\" to log to console)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return nil, err
	}
	if *frontend != "" {
		cfg.Frontend = *frontend
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	consoleConfig, err := cfg.console()
	if err != nil {
		return nil, err
	}

	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"frontend": cfg.Frontend,
		"font":     cfg.Font,
		"width":    cfg.Width,
		"height":   cfg.Height,
	}).Info("starting console")

	var b *board
	switch cfg.Frontend {
	case "raw":
		b, err = rawBoard(cfg, log)
	default:
		b, err = tcellBoard(cfg, log)
	}
	if err != nil {
		closeLog()
		return nil, err
	}
	b.config = consoleConfig
	closeBoard := b.close
	b.close = func() {
		closeBoard()
		log.Info("console stopped")
		closeLog()
	}
	return b, nil
}

// newLogger creates the logger. Logs go to a file by default so they do not
// mix with the console on the terminal.
func newLogger(cfg config) (*logrus.Logger, func(), error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	if cfg.LogFile == "" || cfg.LogFile == "stderr" {
		log.SetOutput(os.Stderr)
		return log, func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, func() { f.Close() }, nil
}

// tcellBoard simulates the panel, the LEDs and the serial line on a tcell
// screen.
func tcellBoard(cfg config, log *logrus.Logger) (*board, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	s, err := sim.New(screen, cfg.Width, cfg.Height, log.WithField("component", "sim"))
	if err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.Start()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-s.Done()
		cancel()
	}()

	return &board{
		display:  oled.New(cfg.Width, cfg.Height, s),
		port:     s,
		leds:     s,
		interval: cfg.PollInterval,
		ctx:      ctx,
		close: func() {
			cancel()
			s.Close()
		},
	}, nil
}

// rawBoard uses the terminal in raw mode as the serial line. The panel is
// only visible in the debug log.
func rawBoard(cfg config, log *logrus.Logger) (*board, error) {
	if err := rawterm.Configure(); err != nil {
		return nil, fmt.Errorf("configure terminal: %w", err)
	}
	fmt.Fprint(os.Stdout, "oledterm: raw terminal, use Ctrl-X to exit\r\n")

	ctx, cancel := context.WithCancel(context.Background())
	return &board{
		display:  newLogPanel(log.WithField("component", "panel"), cfg.Width, cfg.Height),
		port:     &exitPort{Port: rawterm.Port(), exit: cancel, log: log},
		leds:     logIndicators(log.WithField("component", "leds")),
		interval: cfg.PollInterval,
		ctx:      ctx,
		close: func() {
			cancel()
			rawterm.Restore()
		},
	}, nil
}

// exitPort cancels the console when the exit key is read. Read errors
// other than an empty buffer also stop the console: the terminal is gone.
type exitPort struct {
	oledterm.Port
	exit func()
	log  logrus.FieldLogger
}

func (p *exitPort) ReadByte() (byte, error) {
	b, err := p.Port.ReadByte()
	switch {
	case err == rawterm.ErrNoData:
	case err != nil:
		if err != io.EOF {
			p.log.WithError(err).Error("read terminal")
		}
		p.exit()
	case b == exitKey:
		p.exit()
	}
	return b, err
}

// logIndicators reports LED changes in the log.
func logIndicators(log logrus.FieldLogger) oledterm.IndicatorFunc {
	return func(index int, active bool) {
		log.WithFields(logrus.Fields{"led": index, "active": active}).Info("indicator changed")
	}
}

// logPanel is a drivers.Displayer that logs the framebuffer as text at
// debug level every time it is flushed.
type logPanel struct {
	log    *logrus.Entry
	fb     *oled.Framebuffer
	width  int
	height int
}

func newLogPanel(log *logrus.Entry, width, height int) *oled.Framebuffer {
	p := &logPanel{log: log, width: width, height: height}
	p.fb = oled.New(width, height, p)
	return p.fb
}

func (p *logPanel) Size() (x, y int16) {
	return int16(p.width), int16(p.height)
}

// SetPixel is a no-op, Display dumps the framebuffer itself.
func (p *logPanel) SetPixel(x, y int16, c color.RGBA) {}

func (p *logPanel) Display() error {
	if p.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		p.log.Debug("frame\n" + p.fb.String())
	}
	return nil
}
