package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"io"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/mandelbrot/audio"
	"github.com/lixenwraith/mandelbrot/config"
	"github.com/lixenwraith/mandelbrot/engine"
	"github.com/lixenwraith/mandelbrot/terminal"
	"github.com/lixenwraith/mandelbrot/view"
)

var (
	configFlag    = flag.String("config", "", "Path to a TOML config file")
	debugFlag     = flag.Bool("debug", false, "Write logs to logs/mandelbrot.log")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	err := run()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "mandelbrot: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	keys, err := cfg.KeyMap()
	if err != nil {
		return err
	}

	switch *colorModeFlag {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor", "true", "24bit":
		if os.Getenv("COLORTERM") == "" {
			os.Setenv("COLORTERM", "truecolor")
		}
	case "auto", "":
	default:
		return fmt.Errorf("unknown color mode %q", *colorModeFlag)
	}

	ctrl, err := view.New(cfg.ViewConfig())
	if err != nil {
		return err
	}

	host, err := terminal.Open(cfg.Display.FPS)
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer host.Close()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			err = crashError(r, host.Close, os.Stderr)
		}
	}()

	sound := audio.NewSoundManager(cfg.AudioConfig())
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the explorer runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	loop := engine.NewLoop(host, ctrl, engine.Options{
		Keys:        keys,
		Sound:       sound,
		SnapshotDir: cfg.Snapshot.Dir,
	})

	log.Printf("config %+v", cfg.ViewConfig())
	err = host.Run(loop.Tick)
	log.Printf("stats %s", loop.Stats().Summary())
	if err != nil && !errors.Is(err, engine.ErrClosed) {
		return err
	}
	return nil
}

// crashError restores the display, reports a recovered panic on out and in the log, and returns it as an error
func crashError(r any, restore func(), out io.Writer) error {
	restore()
	stack := debug.Stack()
	fmt.Fprintf(out, "\n\x1b[31mMANDELBROT CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(out, "Stack Trace:\n%s\n", stack)
	log.Printf("crash: %v\n%s", r, stack)
	return fmt.Errorf("crashed: %v", r)
}
