package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Sound shapes
const (
	renderDuration  = 60 * time.Millisecond
	renderAttack    = 5 * time.Millisecond
	renderRelease   = 40 * time.Millisecond
	blockedDuration = 120 * time.Millisecond
	blockedAttack   = 5 * time.Millisecond
	blockedRelease  = 60 * time.Millisecond
	snapNoteLength  = 70 * time.Millisecond
	snapAttack      = 3 * time.Millisecond
	snapRelease     = 50 * time.Millisecond
)

// sawtooth generates a band-unlimited saw wave for the given duration
type sawtooth struct {
	freq     float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

func newSawtooth(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sawtooth{freq: freq, total: rate.N(duration), rate: rate}
}

func (o *sawtooth) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}
		val := 2.0 * (o.phase - 0.5)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sawtooth) Err() error { return nil }

// envelope applies linear attack/release to a stream and ends it after duration
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := e.total - e.position
	if remaining <= 0 {
		return 0, false
	}
	if len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := max(e.total-e.release, e.attack)

	for i := 0; i < n; i++ {
		gain := 1.0
		switch {
		case e.position < e.attack:
			gain = float64(e.position) / float64(e.attack)
		case e.position >= releaseStart && e.release > 0:
			gain = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s at linear gain vol, zero or below is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func sine(rate beep.SampleRate, freq float64) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(-1)
	}
	return s
}

// CreateRenderSound generates a soft tick played after each regeneration
func CreateRenderSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	shaped := newEnvelope(sine(rate, 660), renderDuration, renderAttack, renderRelease, rate)
	return newVolume(shaped, cfg.EffectVolumes[SoundRender]*cfg.MasterVolume)
}

// CreateBlockedSound generates a low buzz for a guarded transition
func CreateBlockedSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	saw := newSawtooth(110, blockedDuration, rate)
	shaped := newEnvelope(saw, blockedDuration, blockedAttack, blockedRelease, rate)
	return newVolume(shaped, cfg.EffectVolumes[SoundBlocked]*cfg.MasterVolume)
}

// CreateSnapshotSound generates a rising two-note chime
func CreateSnapshotSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	n1 := newEnvelope(sine(rate, 987.77), snapNoteLength, snapAttack, snapRelease, rate)
	n2 := newEnvelope(sine(rate, 1318.51), snapNoteLength, snapAttack, snapRelease, rate)
	return newVolume(beep.Seq(n1, n2), cfg.EffectVolumes[SoundSnapshot]*cfg.MasterVolume)
}

// SoundEffect returns the streamer for st, nil for unknown types
func SoundEffect(st SoundType, cfg *Config) beep.Streamer {
	switch st {
	case SoundRender:
		return CreateRenderSound(cfg)
	case SoundBlocked:
		return CreateBlockedSound(cfg)
	case SoundSnapshot:
		return CreateSnapshotSound(cfg)
	default:
		return nil
	}
}
