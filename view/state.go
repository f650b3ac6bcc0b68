package view

import (
	"fmt"

	"github.com/lixenwraith/mandelbrot/constant"
	"github.com/lixenwraith/mandelbrot/fractal"
)

// State is the user-adjustable view: pan center, zoom and max iteration count
// Zoom never drops below constant.MinZoom and Detail never below 1
type State struct {
	CenterX, CenterY float32
	Zoom             float32
	Detail           uint32
}

// DefaultState returns the startup view with the given detail
func DefaultState(detail uint32) State {
	if detail == 0 {
		detail = constant.DefaultDetail
	}
	return State{
		Zoom:   constant.DefaultZoom,
		Detail: detail,
	}
}

// Viewport returns the mapping parameters of the state
func (s State) Viewport() fractal.Viewport {
	return fractal.Viewport{CenterX: s.CenterX, CenterY: s.CenterY, Zoom: s.Zoom}
}

// Span returns the visible width of the complex plane on each axis
func (s State) Span() float32 {
	return 2 * constant.ViewportExtent / s.Zoom
}

func (s State) String() string {
	return fmt.Sprintf("center %+.6f%+.6fi  zoom %.4g  detail %d", s.CenterX, s.CenterY, s.Zoom, s.Detail)
}
