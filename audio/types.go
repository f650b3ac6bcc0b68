package audio

import "github.com/lixenwraith/mandelbrot/constant"

// SoundType identifies a feedback sound
type SoundType int

const (
	SoundRender   SoundType = iota // Regeneration pass finished
	SoundBlocked                   // Guard turned a transition into a no-op
	SoundSnapshot                  // Snapshot written
	soundTypeCount
)

func (st SoundType) String() string {
	switch st {
	case SoundRender:
		return "render"
	case SoundBlocked:
		return "blocked"
	case SoundSnapshot:
		return "snapshot"
	default:
		return "unknown"
	}
}

// Config holds audio parameters
type Config struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultConfig returns the compiled-in audio parameters
// Audio starts disabled, a terminal explorer is silent unless asked
func DefaultConfig() *Config {
	return &Config{
		Enabled:      false,
		MasterVolume: constant.AudioMasterVolume,
		SampleRate:   constant.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundRender:   0.4,
			SoundBlocked:  0.6,
			SoundSnapshot: 0.5,
		},
	}
}
