// Package config loads explorer settings from compiled-in defaults, an optional TOML file and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/mandelbrot/audio"
	"github.com/lixenwraith/mandelbrot/constant"
	"github.com/lixenwraith/mandelbrot/fractal"
	"github.com/lixenwraith/mandelbrot/input"
	"github.com/lixenwraith/mandelbrot/view"
)

// Environment overrides
const (
	EnvAudioEnabled = "MANDEL_AUDIO_ENABLED"
	EnvMasterVolume = "MANDEL_MASTER_VOLUME" // 0-100
)

// View is the [view] section
type View struct {
	Detail     uint32  `toml:"detail"`
	ZoomFactor float32 `toml:"zoom_factor"`
	MoveFactor float32 `toml:"move_factor"`
}

// Render is the [render] section
type Render struct {
	Threshold  float64 `toml:"threshold"`
	ColorScale uint32  `toml:"color_scale"`
	Palette    string  `toml:"palette"`
}

// Display is the [display] section
type Display struct {
	Scale int `toml:"scale"`
	FPS   int `toml:"fps"`
}

// Audio is the [audio] section
type Audio struct {
	Enabled bool `toml:"enabled"`
	Volume  int  `toml:"volume"` // 0-100
}

// Snapshot is the [snapshot] section
type Snapshot struct {
	Dir string `toml:"dir"`
}

// Config is the complete explorer configuration
type Config struct {
	View     View                `toml:"view"`
	Render   Render              `toml:"render"`
	Display  Display             `toml:"display"`
	Audio    Audio               `toml:"audio"`
	Snapshot Snapshot            `toml:"snapshot"`
	Keys     map[string][]string `toml:"keys"`
}

// Default returns the compiled-in configuration
func Default() *Config {
	return &Config{
		View: View{
			Detail:     constant.DefaultDetail,
			ZoomFactor: constant.ZoomFactor,
			MoveFactor: constant.MoveFactor,
		},
		Render: Render{
			Threshold:  constant.EscapeThreshold,
			ColorScale: constant.ColorScale,
			Palette:    constant.DefaultPalette,
		},
		Display: Display{
			Scale: constant.Scale,
			FPS:   constant.FPS,
		},
		Audio: Audio{
			Enabled: false,
			Volume:  int(constant.AudioMasterVolume * 100),
		},
		Snapshot: Snapshot{
			Dir: constant.DefaultSnapshotDir,
		},
	}
}

// Load returns defaults overlaid with the TOML file at path and then the environment
// An empty path skips the file, a missing file at an explicit path is an error
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays environment overrides, malformed values are ignored
func (c *Config) applyEnv() {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.Volume = min(max(val, 0), 100)
		}
	}
}

// Validate checks every field, returning all problems joined
func (c *Config) Validate() error {
	var errs []error

	if c.View.Detail < 1 {
		errs = append(errs, errors.New("view.detail must be at least 1"))
	}
	if c.View.ZoomFactor <= 1 {
		errs = append(errs, fmt.Errorf("view.zoom_factor %v must exceed 1", c.View.ZoomFactor))
	}
	if c.View.MoveFactor <= 0 || c.View.MoveFactor > 1 {
		errs = append(errs, fmt.Errorf("view.move_factor %v must be in (0, 1]", c.View.MoveFactor))
	}
	if c.Render.Threshold < constant.MinEscapeThreshold {
		errs = append(errs, fmt.Errorf("render.threshold %v below divergence bound %v", c.Render.Threshold, constant.MinEscapeThreshold))
	}
	if c.Render.ColorScale < 1 {
		errs = append(errs, errors.New("render.color_scale must be at least 1"))
	}
	if _, err := fractal.PaletteByName(c.Render.Palette); err != nil {
		errs = append(errs, fmt.Errorf("render.palette: %w", err))
	}
	if c.Display.Scale < 1 || c.Display.Scale > constant.MaxScale {
		errs = append(errs, fmt.Errorf("display.scale %d must be in [1, %d]", c.Display.Scale, constant.MaxScale))
	}
	if c.Display.FPS <= 0 {
		errs = append(errs, fmt.Errorf("display.fps %d must be positive", c.Display.FPS))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		errs = append(errs, fmt.Errorf("audio.volume %d must be in [0, 100]", c.Audio.Volume))
	}
	if c.Snapshot.Dir == "" {
		errs = append(errs, errors.New("snapshot.dir must not be empty"))
	}
	if _, err := input.ParseBindings(c.Keys); err != nil {
		errs = append(errs, fmt.Errorf("keys: %w", err))
	}

	return errors.Join(errs...)
}

// ViewConfig returns the controller parameters
func (c *Config) ViewConfig() view.Config {
	return view.Config{
		Detail:     c.View.Detail,
		ZoomFactor: c.View.ZoomFactor,
		MoveFactor: c.View.MoveFactor,
		Threshold:  c.Render.Threshold,
		ColorScale: c.Render.ColorScale,
		Palette:    c.Render.Palette,
	}
}

// AudioConfig returns the sound manager parameters
func (c *Config) AudioConfig() *audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = float64(c.Audio.Volume) / 100.0
	return ac
}

// KeyMap returns the default bindings merged with the [keys] overrides
func (c *Config) KeyMap() (input.KeyMap, error) {
	override, err := input.ParseBindings(c.Keys)
	if err != nil {
		return nil, err
	}
	return input.DefaultKeyMap().Merge(override), nil
}
