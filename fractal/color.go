package fractal

// Color is a packed 24-bit RGB value, 0xRRGGBB
type Color uint32

// InSet is the color of points that never escape
const InSet Color = 0xFFFFFF

// RGB packs channels as r*65536 + g*256 + b
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// ClampedRGB packs wide channel values, saturating each at 255
func ClampedRGB(r, g, b uint64) Color {
	return RGB(clampChannel(r), clampChannel(g), clampChannel(b))
}

// R returns the red channel
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel
func (c Color) B() uint8 { return uint8(c) }

// Components returns the three channels
func (c Color) Components() (r, g, b uint8) {
	return c.R(), c.G(), c.B()
}

func clampChannel(v uint64) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
