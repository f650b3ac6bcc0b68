package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/mandelbrot/constant"
	"github.com/lixenwraith/mandelbrot/input"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mandelbrot.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.View.Detail != constant.DefaultDetail {
		t.Errorf("Detail = %d, want %d", cfg.View.Detail, constant.DefaultDetail)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[view]
detail = 512

[render]
threshold = 4.0
palette = "spectrum"

[display]
scale = 5

[keys]
snapshot = ["none"]
zoom_in = ["z"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.View.Detail != 512 {
		t.Errorf("Detail = %d, want 512", cfg.View.Detail)
	}
	if cfg.View.ZoomFactor != constant.ZoomFactor {
		t.Errorf("ZoomFactor = %v, want default %v", cfg.View.ZoomFactor, constant.ZoomFactor)
	}
	if cfg.Render.Threshold != 4.0 || cfg.Render.Palette != "spectrum" {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Display.Scale != 5 || cfg.Display.FPS != constant.FPS {
		t.Errorf("Display = %+v", cfg.Display)
	}

	km, err := cfg.KeyMap()
	if err != nil {
		t.Fatalf("KeyMap() error = %v", err)
	}
	if _, ok := km[input.ActionSnapshot]; ok {
		t.Error("snapshot should be unbound")
	}
	if got := km[input.ActionZoomIn]; len(got) != 1 || got[0] != "z" {
		t.Errorf("zoom_in = %v, want [z]", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "[view\ndetail = ", "config"},
		{"unknown key", "[view]\nspeed = 3\n", "unknown key"},
		{"threshold", "[render]\nthreshold = 2.0\n", "render.threshold"},
		{"palette", "[render]\npalette = \"plaid\"\n", "render.palette"},
		{"scale", "[display]\nscale = 9\n", "display.scale"},
		{"zoom factor", "[view]\nzoom_factor = 1.0\n", "view.zoom_factor"},
		{"detail", "[view]\ndetail = 0\n", "view.detail"},
		{"bad binding", "[keys]\nquit = [\"hyperspace\"]\n", "keys"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load(missing) error = nil")
	}
}

func TestEnvOverrides(t *testing.T) {
	tests := []struct {
		name        string
		enabled     string
		volume      string
		wantEnabled bool
		wantVolume  int
	}{
		{"unset", "", "", false, 50},
		{"enabled", "true", "80", true, 80},
		{"clamped high", "1", "250", true, 100},
		{"clamped low", "0", "-5", false, 0},
		{"malformed", "maybe", "loud", false, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvAudioEnabled, tt.enabled)
			t.Setenv(EnvMasterVolume, tt.volume)

			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Audio.Enabled != tt.wantEnabled {
				t.Errorf("Audio.Enabled = %v, want %v", cfg.Audio.Enabled, tt.wantEnabled)
			}
			if cfg.Audio.Volume != tt.wantVolume {
				t.Errorf("Audio.Volume = %d, want %d", cfg.Audio.Volume, tt.wantVolume)
			}
		})
	}
}

func TestDerivedConfigs(t *testing.T) {
	cfg := Default()
	cfg.Audio.Volume = 25
	cfg.Audio.Enabled = true

	ac := cfg.AudioConfig()
	if ac.MasterVolume != 0.25 || !ac.Enabled {
		t.Errorf("AudioConfig() = %+v", ac)
	}

	vc := cfg.ViewConfig()
	if vc.Detail != cfg.View.Detail || vc.Palette != cfg.Render.Palette || vc.Threshold != cfg.Render.Threshold {
		t.Errorf("ViewConfig() = %+v", vc)
	}
}
