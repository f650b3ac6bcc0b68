package fractal

import (
	"fmt"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps a 1-based escape iteration and a scale constant to a color
// Implementations must depend on n and scale only
type Palette func(n, scale uint32) Color

// Classic is rgb(n*scale, n, scale/n), saturated per channel
func Classic(n, scale uint32) Color {
	if n == 0 {
		n = 1
	}
	wn, ws := uint64(n), uint64(scale)
	return ClampedRGB(wn*ws, wn, ws/wn)
}

// Inverse is rgb(n/scale, n, scale*n), saturated per channel
func Inverse(n, scale uint32) Color {
	if scale == 0 {
		scale = 1
	}
	wn, ws := uint64(n), uint64(scale)
	return ClampedRGB(wn/ws, wn, ws*wn)
}

// Spectrum walks the HSV hue wheel once every scale iterations
func Spectrum(n, scale uint32) Color {
	if scale == 0 {
		scale = 1
	}
	hue := float64(n%scale) / float64(scale) * 360
	// Darker toward slow escapes so the boundary stays legible
	value := 0.55 + 0.45*math.Exp(-float64(n)/float64(scale*8))
	return fromColorful(colorful.Hsv(hue, 0.85, value))
}

var (
	blendFrom = colorful.Color{R: 0.05, G: 0.08, B: 0.30}
	blendTo   = colorful.Color{R: 1.00, G: 0.70, B: 0.10}
)

// Blend ping-pongs between two endpoint colors in HCL space with period 2*scale
func Blend(n, scale uint32) Color {
	if scale == 0 {
		scale = 1
	}
	phase := n % (2 * scale)
	if phase > scale {
		phase = 2*scale - phase
	}
	t := float64(phase) / float64(scale)
	return fromColorful(blendFrom.BlendHcl(blendTo, t).Clamped())
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.RGB255()
	return RGB(r, g, b)
}

var palettes = map[string]Palette{
	"classic":  Classic,
	"inverse":  Inverse,
	"spectrum": Spectrum,
	"blend":    Blend,
}

// PaletteNames lists registered palettes in a stable order, classic first
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		if name != "classic" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{"classic"}, names...)
}

// PaletteByName resolves a palette name
func PaletteByName(name string) (Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q", name)
	}
	return p, nil
}

// NextPalette returns the palette name following current in PaletteNames order
func NextPalette(current string) string {
	names := PaletteNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
