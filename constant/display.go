package constant

import "time"

// Display host defaults
const (
	// BaseWidth and BaseHeight are the unscaled window surface in pixels
	BaseWidth  = 320
	BaseHeight = 200

	// Scale is the window pixel magnification (reference variants use 3, 5 and 8)
	Scale = 3

	// MaxScale bounds the configurable magnification
	MaxScale = 8

	// FPS is the host tick rate
	FPS = 60

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256

	// StatusRows is the number of terminal rows reserved for the status bar
	StatusRows = 1

	// StatusMessageDuration is how long a transient status message stays visible
	StatusMessageDuration = 3 * time.Second
)

// TickInterval returns the host tick period for the given rate
func TickInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = FPS
	}
	return time.Second / time.Duration(fps)
}
