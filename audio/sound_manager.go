package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager plays feedback sounds through the speaker
// All methods are no-ops until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager, nil cfg selects defaults
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops playback and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play queues st, returns false when nothing was queued
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	s := SoundEffect(st, sm.cfg)
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// PlayRender plays the regeneration tick
func (sm *SoundManager) PlayRender() { sm.Play(SoundRender) }

// PlayBlocked plays the guard buzz
func (sm *SoundManager) PlayBlocked() { sm.Play(SoundBlocked) }

// PlaySnapshot plays the snapshot chime
func (sm *SoundManager) PlaySnapshot() { sm.Play(SoundSnapshot) }

// Toggle flips mute, returns true if sound is now on
func (sm *SoundManager) Toggle() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	return !sm.muted
}

// Enabled reports whether sounds will be heard
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}
