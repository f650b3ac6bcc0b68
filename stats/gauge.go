package stats

import (
	"math"
	"sync/atomic"
)

// Gauge holds a float64 behind an atomic bit pattern
// Zero value reads 0.0
type Gauge struct {
	bits atomic.Uint64
}

// Set stores val
func (g *Gauge) Set(val float64) {
	g.bits.Store(math.Float64bits(val))
}

// Get loads the current value
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Max raises the gauge to val if val is larger, returning the resulting value
func (g *Gauge) Max(val float64) float64 {
	for {
		old := g.bits.Load()
		cur := math.Float64frombits(old)
		if val <= cur {
			return cur
		}
		if g.bits.CompareAndSwap(old, math.Float64bits(val)) {
			return val
		}
	}
}
