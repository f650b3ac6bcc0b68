package engine

import (
	"errors"

	"github.com/lixenwraith/mandelbrot/fractal"
	"github.com/lixenwraith/mandelbrot/input"
)

// ErrClosed signals a normal exit: the host closed or quit was requested
var ErrClosed = errors.New("explorer closed")

// Host is a display surface that reports input once per tick and shows a pixel buffer
type Host interface {
	input.Source

	// IsOpen reports whether the surface is still alive
	IsOpen() bool
	// Size returns the drawable surface in pixels
	Size() (width, height int)
	// Present shows buf, a row-major width*height raster
	Present(buf []fractal.Color, width, height int) error
}

// StatusHost is implemented by hosts that can show a one-line status
type StatusHost interface {
	SetStatus(text string, alert bool)
}

// Runner is implemented by hosts that pace ticks themselves
// Run calls tick once per frame until it returns an error, which Run returns
type Runner interface {
	Run(tick func() error) error
}
