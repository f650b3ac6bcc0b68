package fractal

// Point is a coordinate in the complex plane
type Point struct {
	Re, Im float64
}

// Complex returns the point as complex128
func (p Point) Complex() complex128 {
	return complex(p.Re, p.Im)
}

// Viewport is the pan/zoom part of the view state
// Zoom 2.0 with center (0,0) shows [-1, 1] on both axes, zoom 1.0 shows [-2, 2]
type Viewport struct {
	CenterX, CenterY float32
	Zoom             float32
}

// Map converts linear pixel index p of a width*height raster into a complex-plane point
// p must lie in [0, width*height); other values are a caller error
func Map(p, width, height int, vp Viewport) Point {
	x := p % width
	y := p / width

	xf := float32(x) / float32(width)
	yf := float32(y) / float32(height)

	xf = xf*4 - 2
	yf = yf*4 - 2

	return Point{
		Re: float64(vp.CenterX + xf/vp.Zoom),
		Im: float64(vp.CenterY + yf/vp.Zoom),
	}
}

// MapScreen maps a screen position onto the unscaled [-2, 2] viewport, ignoring pan and zoom
func MapScreen(x, y float32, width, height int) (float32, float32) {
	return x/float32(width)*4 - 2, y/float32(height)*4 - 2
}
