package constant

// View defaults and transition steps
const (
	// DefaultDetail is the initial max iteration count
	DefaultDetail uint32 = 255

	// DefaultZoom shows the unscaled [-2, 2] viewport on both axes
	DefaultZoom float32 = 2.0

	// MinZoom is the zoom-out floor, zoom never drops below it
	MinZoom float32 = 2.0

	// ZoomFactor is the multiplicative zoom step
	ZoomFactor float32 = 1.5

	// MoveFactor is the keyboard pan step as a fraction of the visible span
	MoveFactor float32 = 0.1

	// ViewportExtent is the half-width of the unscaled viewport
	ViewportExtent float32 = 2.0
)

// Escape-time coloring
const (
	// EscapeThreshold is the squared escape radius
	// Anything at or above 4.0 (the divergence bound) is valid, larger values reduce false early escape near the boundary
	EscapeThreshold = 32.0

	// MinEscapeThreshold is the divergence bound |c|² = 4
	MinEscapeThreshold = 4.0

	// ColorScale shapes the palette ramp
	ColorScale uint32 = 16

	// DefaultPalette is the reference escape color formula
	DefaultPalette = "classic"
)
