package constant

// Log and snapshot locations
const (
	LogDir      = "logs"
	LogFileName = "mandelbrot.log"
	MaxLogSize  = 10 * 1024 * 1024 // Rotate above 10MB

	DefaultSnapshotDir = "snapshots"
	SnapshotPrefix     = "mandelbrot"
)
