package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundSelect   SoundType = iota // Category selected
	SoundDeselect                  // Selection cleared
	SoundHover                     // Pointer entered a skill node
	soundTypeCount
)

// String returns the config key for the sound
func (s SoundType) String() string {
	switch s {
	case SoundSelect:
		return "select"
	case SoundDeselect:
		return "deselect"
	case SoundHover:
		return "hover"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio: speaker not initialized")
	ErrInvalidConfig  = errors.New("audio: invalid config")
)
