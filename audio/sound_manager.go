package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/folio-fx/parameter"
)

// SoundManager plays interaction sounds through a shared mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool

	now        func() time.Time
	lastPlayed [soundTypeCount]time.Time
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize sets up the speaker, a no-op when disabled or already initialized
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close, clearing the mixer silences output
	sm.initialized = false
}

// Initialized reports whether sounds reach the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues a sound unless the same sound played within MinSoundGap
// Returns true if the sound was queued
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.admit(st) {
		return false
	}

	s := GetSoundEffect(st, &sm.cfg)
	if s == nil {
		return false
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// admit applies the per-sound rate limit, caller holds mu
func (sm *SoundManager) admit(st SoundType) bool {
	if st < 0 || st >= soundTypeCount {
		return false
	}
	now := sm.now()
	if last := sm.lastPlayed[st]; !last.IsZero() && now.Sub(last) < parameter.MinSoundGap {
		return false
	}
	sm.lastPlayed[st] = now
	return true
}

// PlaySelect plays the category selection chime
func (sm *SoundManager) PlaySelect() { sm.Play(SoundSelect) }

// PlayDeselect plays the selection cleared chime
func (sm *SoundManager) PlayDeselect() { sm.Play(SoundDeselect) }

// PlayHover plays the node hover tick
func (sm *SoundManager) PlayHover() { sm.Play(SoundHover) }
