package view

import (
	"fmt"
	"math"

	"github.com/lixenwraith/mandelbrot/constant"
	"github.com/lixenwraith/mandelbrot/fractal"
	"github.com/lixenwraith/mandelbrot/input"
)

// Config parameterizes a Controller
type Config struct {
	Detail     uint32
	ZoomFactor float32
	MoveFactor float32
	Threshold  float64
	ColorScale uint32
	Palette    string
}

// DefaultConfig returns the compiled-in view parameters
func DefaultConfig() Config {
	return Config{
		Detail:     constant.DefaultDetail,
		ZoomFactor: constant.ZoomFactor,
		MoveFactor: constant.MoveFactor,
		Threshold:  constant.EscapeThreshold,
		ColorScale: constant.ColorScale,
		Palette:    constant.DefaultPalette,
	}
}

// Outcome reports what one Apply call did
// Blocked lists transitions whose guard turned them into no-ops, these are not errors
type Outcome struct {
	Regenerated bool
	Applied     []input.Action
	Blocked     []input.Action
}

// Changed reports whether any transition took effect
func (o Outcome) Changed() bool {
	return len(o.Applied) > 0
}

// Controller owns the view state and runs regeneration passes
// Not safe for concurrent use; the tick loop is its only caller
type Controller struct {
	cfg         Config
	state       State
	params      fractal.Params
	paletteName string
}

// New creates a controller at the default view
func New(cfg Config) (*Controller, error) {
	if cfg.ZoomFactor <= 1 {
		return nil, fmt.Errorf("zoom factor %v must exceed 1", cfg.ZoomFactor)
	}
	if cfg.Threshold < constant.MinEscapeThreshold {
		return nil, fmt.Errorf("escape threshold %v below %v", cfg.Threshold, constant.MinEscapeThreshold)
	}
	name := cfg.Palette
	if name == "" {
		name = constant.DefaultPalette
	}
	palette, err := fractal.PaletteByName(name)
	if err != nil {
		return nil, err
	}

	return &Controller{
		cfg:   cfg,
		state: DefaultState(cfg.Detail),
		params: fractal.Params{
			Threshold: cfg.Threshold,
			Scale:     cfg.ColorScale,
			Palette:   palette,
		},
		paletteName: name,
	}, nil
}

// State returns a copy of the current view
func (c *Controller) State() State {
	return c.state
}

// PaletteName returns the active palette
func (c *Controller) PaletteName() string {
	return c.paletteName
}

// Params returns the active colorizer parameters
func (c *Controller) Params() fractal.Params {
	return c.params
}

// Apply runs the tick's transitions against the view, then one regeneration pass into buf if any took effect
// Order: detail up, else detail down, else plain regenerate; then pan; then zoom in; then zoom out
func (c *Controller) Apply(ev input.EventSet, buf []fractal.Color, width, height int) Outcome {
	var out Outcome
	s := &c.state

	incr, decr := ev.Has(input.ActionIncreaseDetail), ev.Has(input.ActionDecreaseDetail)
	switch {
	case incr:
		if s.Detail > math.MaxUint32/2 {
			out.block(input.ActionIncreaseDetail)
		} else {
			s.Detail *= 2
			out.apply(input.ActionIncreaseDetail)
		}
	case decr && s.Detail >= 2:
		s.Detail /= 2
		out.apply(input.ActionDecreaseDetail)
	case ev.Has(input.ActionRegenerate):
		out.apply(input.ActionRegenerate)
	}
	if decr && !incr && !out.has(input.ActionDecreaseDetail) {
		out.block(input.ActionDecreaseDetail)
	}

	if x, y, ok := ev.Pan(); ok && width > 0 && height > 0 {
		mx, my := fractal.MapScreen(x, y, width, height)
		inv := 1 / s.Zoom
		s.CenterX += (mx - s.CenterX) * inv
		s.CenterY += (my - s.CenterY) * inv
		out.apply(input.ActionPan)
	}

	step := c.cfg.MoveFactor * s.Span()
	for _, mv := range []struct {
		action input.Action
		dx, dy float32
	}{
		{input.ActionPanLeft, -step, 0},
		{input.ActionPanRight, step, 0},
		{input.ActionPanUp, 0, -step},
		{input.ActionPanDown, 0, step},
	} {
		if ev.Has(mv.action) && step > 0 {
			s.CenterX += mv.dx
			s.CenterY += mv.dy
			out.apply(mv.action)
		}
	}

	if ev.Has(input.ActionZoomIn) {
		next := s.Zoom * c.cfg.ZoomFactor
		if math.IsInf(float64(next), 0) {
			out.block(input.ActionZoomIn)
		} else {
			s.Zoom = next
			out.apply(input.ActionZoomIn)
		}
	}

	if ev.Has(input.ActionZoomOut) {
		if s.Zoom > constant.MinZoom {
			s.Zoom = max(s.Zoom/c.cfg.ZoomFactor, constant.MinZoom)
			out.apply(input.ActionZoomOut)
		} else {
			out.block(input.ActionZoomOut)
		}
	}

	if ev.Has(input.ActionCyclePalette) {
		c.setPalette(fractal.NextPalette(c.paletteName))
		out.apply(input.ActionCyclePalette)
	}

	if ev.Has(input.ActionResetView) {
		c.Reset()
		out.apply(input.ActionResetView)
	}

	if out.Changed() {
		c.Regenerate(buf, width, height)
		out.Regenerated = true
	}
	return out
}

// Regenerate recomputes every pixel of buf from the current view
func (c *Controller) Regenerate(buf []fractal.Color, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	n := min(width*height, len(buf))
	vp := c.state.Viewport()
	detail := c.state.Detail

	for p := 0; p < n; p++ {
		buf[p] = fractal.Colorize(fractal.Map(p, width, height, vp), detail, c.params)
	}
}

// Reset restores the default view without regenerating
func (c *Controller) Reset() {
	c.state = DefaultState(c.cfg.Detail)
}

func (c *Controller) setPalette(name string) {
	palette, err := fractal.PaletteByName(name)
	if err != nil {
		return
	}
	c.paletteName = name
	c.params.Palette = palette
}

func (o *Outcome) apply(a input.Action) { o.Applied = append(o.Applied, a) }
func (o *Outcome) block(a input.Action) { o.Blocked = append(o.Blocked, a) }

func (o *Outcome) has(a input.Action) bool {
	for _, x := range o.Applied {
		if x == a {
			return true
		}
	}
	return false
}
