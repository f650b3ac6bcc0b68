package render

import "github.com/lixenwraith/mandelbrot/fractal"

// UpperHalf is the glyph that packs two vertical pixels into one cell
// Foreground paints the upper pixel, background the lower
const UpperHalf = '▀'

// Cell is one terminal character with packed RGB colors
type Cell struct {
	Rune rune
	Fg   fractal.Color
	Bg   fractal.Color
}

// Status bar colors
const (
	StatusFg fractal.Color = 0xC0CAF5
	StatusBg fractal.Color = 0x1A1B26
	AlertFg  fractal.Color = 0xF7768E
)

var emptyCell = Cell{Rune: ' ', Fg: StatusFg, Bg: 0}
