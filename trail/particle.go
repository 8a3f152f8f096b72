package trail

import (
	"math"
	"math/rand"
	"time"
)

// Particle is a short-lived point spawned at the pointer
type Particle struct {
	X, Y   float64 // Canvas logical px
	VX, VY float64 // px per frame
	Life   float64 // 1 at spawn, removed at <= 0
	Size   float64 // Radius px
}

// State is the trail simulation, owned by the effect and passed to the step functions
type State struct {
	Particles []Particle

	// Pointer tracking
	lastAccepted time.Time
	lastX, lastY float64
	tracking     bool
	speed        float64 // Smoothed px/ms
}

// Reset drops all particles and pointer history
func (s *State) Reset() {
	s.Particles = s.Particles[:0]
	s.tracking = false
	s.speed = 0
	s.lastAccepted = time.Time{}
}

// Speed returns the smoothed pointer speed in px/ms
func (s *State) Speed() float64 {
	return s.speed
}

// AcceptMove applies the throttle and updates the speed estimate
// Touch moves bypass the throttle but still refresh the last-accepted timestamp
func (s *State) AcceptMove(cfg *Config, x, y float64, at time.Time, touch bool) bool {
	if s.tracking && !touch && at.Sub(s.lastAccepted) < cfg.Throttle {
		return false
	}

	if s.tracking {
		if ms := float64(at.Sub(s.lastAccepted)) / float64(time.Millisecond); ms > 0 {
			instant := math.Hypot(x-s.lastX, y-s.lastY) / ms
			s.speed = s.speed*cfg.SpeedSmoothing + instant*(1-cfg.SpeedSmoothing)
		}
	}

	s.lastAccepted = at
	s.lastX, s.lastY = x, y
	s.tracking = true
	return true
}

// Intensity maps smoothed speed onto [0, 1]
func (s *State) Intensity(cfg *Config) float64 {
	if cfg.SpeedForMax <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, s.speed/cfg.SpeedForMax))
}

// SpawnCount returns the particles to emit for one accepted move, never above SpawnCap
func (s *State) SpawnCount(cfg *Config, rng *rand.Rand) int {
	n := cfg.SpawnMin
	if cfg.SpawnVariance > 0 {
		n += rng.Intn(cfg.SpawnVariance)
	}
	n += int(math.Round(s.Intensity(cfg) * float64(cfg.SpawnExtra)))
	if n > cfg.SpawnCap {
		n = cfg.SpawnCap
	}
	if n < 0 {
		n = 0
	}
	return n
}

// Spawn emits particles at (x, y) with random heading, speed and size, returns the count
func (s *State) Spawn(cfg *Config, rng *rand.Rand, x, y float64) int {
	n := s.SpawnCount(cfg, rng)
	for i := 0; i < n; i++ {
		angle := rng.Float64() * math.Pi * 2
		speed := cfg.SpeedMin + rng.Float64()*cfg.SpeedRange
		s.Particles = append(s.Particles, Particle{
			X:    x,
			Y:    y,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle) * speed,
			Life: 1.0,
			Size: cfg.SizeMin + rng.Float64()*cfg.SizeRange,
		})
	}
	return n
}
