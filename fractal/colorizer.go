package fractal

import "github.com/lixenwraith/mandelbrot/constant"

// Params fixes the escape policy and color derivation for a colorizer pass
type Params struct {
	// Threshold is the squared escape radius, at least 4.0
	Threshold float64
	// Scale shapes the palette ramp
	Scale uint32
	// Palette derives the escape color, nil selects Classic
	Palette Palette
}

// DefaultParams returns the reference escape policy
func DefaultParams() Params {
	return Params{
		Threshold: constant.EscapeThreshold,
		Scale:     constant.ColorScale,
		Palette:   Classic,
	}
}

// Escape iterates c = c² + z from c = 0 and returns the 1-based iteration on which |c|² exceeded threshold
// escaped is false when the orbit stays bounded for detail iterations
func Escape(z Point, detail uint32, threshold float64) (n uint32, escaped bool) {
	start := z.Complex()
	var c complex128

	for i := uint32(0); i < detail; i++ {
		c = c*c + start
		re, im := real(c), imag(c)
		if re*re+im*im > threshold {
			return i + 1, true
		}
	}
	return 0, false
}

// Colorize returns the escape color of z, or InSet if it does not escape within detail iterations
func Colorize(z Point, detail uint32, p Params) Color {
	n, escaped := Escape(z, detail, p.Threshold)
	if !escaped {
		return InSet
	}
	palette := p.Palette
	if palette == nil {
		palette = Classic
	}
	return palette(n, p.Scale)
}
