package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive sounds of the same kind
	MinSoundGap = 50 * time.Millisecond
)

// Select chime, two rising notes
const (
	SelectNoteDuration = 70 * time.Millisecond
	SelectAttack       = 3 * time.Millisecond
	SelectRelease      = 40 * time.Millisecond
	SelectFreqLow      = 659.25 // E5
	SelectFreqHigh     = 987.77 // B5
)

// Deselect chime, one falling note
const (
	DeselectDuration = 90 * time.Millisecond
	DeselectAttack   = 3 * time.Millisecond
	DeselectRelease  = 60 * time.Millisecond
	DeselectFreq     = 440.0

	// Noise burst fading out over the note onset
	DeselectNoiseDuration = 12 * time.Millisecond
	DeselectNoiseVolume   = 0.2
)

// Hover tick
const (
	HoverDuration = 25 * time.Millisecond
	HoverAttack   = 2 * time.Millisecond
	HoverRelease  = 15 * time.Millisecond
	HoverFreq     = 1318.51 // E6
)

// Default volumes
const (
	AudioMasterVolume   = 0.5
	AudioSelectVolume   = 0.6
	AudioDeselectVolume = 0.5
	AudioHoverVolume    = 0.15
)
