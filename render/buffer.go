package render

import "github.com/lixenwraith/mandelbrot/fractal"

// CellBuffer is a grid of cells composed from a pixel buffer plus overlay text
type CellBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewCellBuffer creates a buffer with the specified dimensions
func NewCellBuffer(width, height int) *CellBuffer {
	b := &CellBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *CellBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *CellBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns the buffer dimensions in cells
func (b *CellBuffer) Size() (width, height int) {
	return b.width, b.height
}

func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one cell, out of bounds writes are dropped
func (b *CellBuffer) Set(x, y int, r rune, fg, bg fractal.Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// Get returns the cell at (x, y), blank when out of bounds
func (b *CellBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// ComposePixels packs a pixel raster two rows per cell into the top rows of the buffer
// An odd final pixel row is drawn over black
func (b *CellBuffer) ComposePixels(buf []fractal.Color, pw, ph int) {
	rows := min((ph+1)/2, b.height)
	cols := min(pw, b.width)

	for cy := 0; cy < rows; cy++ {
		top := 2 * cy * pw
		bottom := top + pw
		hasBottom := 2*cy+1 < ph
		for cx := 0; cx < cols; cx++ {
			fg := buf[top+cx]
			var bg fractal.Color
			if hasBottom {
				bg = buf[bottom+cx]
			}
			b.cells[cy*b.width+cx] = Cell{Rune: UpperHalf, Fg: fg, Bg: bg}
		}
	}
}

// DrawText writes s left to right starting at (x, y) and fills the rest of the row with bg
// Returns the number of runes written
func (b *CellBuffer) DrawText(x, y int, s string, fg, bg fractal.Color) int {
	if y < 0 || y >= b.height {
		return 0
	}
	n := 0
	for _, r := range s {
		if x+n >= b.width {
			break
		}
		b.Set(x+n, y, r, fg, bg)
		n++
	}
	for fx := x + n; fx < b.width; fx++ {
		b.Set(fx, y, ' ', fg, bg)
	}
	return n
}

// ForEach visits every cell in row-major order
func (b *CellBuffer) ForEach(fn func(x, y int, c Cell)) {
	for i, c := range b.cells {
		fn(i%b.width, i/b.width, c)
	}
}
