package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/mandelbrot/audio"
	"github.com/lixenwraith/mandelbrot/config"
	"github.com/lixenwraith/mandelbrot/constant"
	"github.com/lixenwraith/mandelbrot/engine"
	"github.com/lixenwraith/mandelbrot/view"
	"github.com/lixenwraith/mandelbrot/window"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	debugLog := flag.Bool("debug", false, "Log to stderr")
	scale := flag.Int("scale", 0, "Window magnification of the 320x200 base, overrides [display] scale")
	flag.Parse()

	// A window leaves the terminal free, so debug logs go to stderr
	if !*debugLog {
		log.SetOutput(io.Discard)
	}

	if err := run(*configPath, *scale); err != nil {
		fmt.Fprintf(os.Stderr, "mandelbrot-window: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, scale int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if scale != 0 {
		cfg.Display.Scale = scale
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	keys, err := cfg.KeyMap()
	if err != nil {
		return err
	}

	ctrl, err := view.New(cfg.ViewConfig())
	if err != nil {
		return err
	}

	sound := audio.NewSoundManager(cfg.AudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	host := window.New(constant.BaseWidth*cfg.Display.Scale, constant.BaseHeight*cfg.Display.Scale, cfg.Display.FPS, keys)
	loop := engine.NewLoop(host, ctrl, engine.Options{
		Keys:        keys,
		Sound:       sound,
		SnapshotDir: cfg.Snapshot.Dir,
	})

	err = host.Run(loop.Tick)
	log.Printf("stats %s", loop.Stats().Summary())
	if err != nil && !errors.Is(err, engine.ErrClosed) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
