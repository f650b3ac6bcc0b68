package constant

// Audio defaults
const (
	AudioSampleRate   = 48000
	AudioMasterVolume = 0.5
)
