package parameter

import "time"

// Pointer tracking
const (
	// TrailThrottle rejects pointer moves sooner than this after the last accepted one
	TrailThrottle = 10 * time.Millisecond

	// TrailSpeedSmoothing weights the previous smoothed speed, instant speed gets the remainder
	TrailSpeedSmoothing = 0.7

	// TrailSpeedForMax is the smoothed speed (px/ms) mapped to intensity 1
	TrailSpeedForMax = 3.0
)

// Spawning
const (
	TrailSpawnMin      = 2 // Particles per accepted move at rest
	TrailSpawnVariance = 2 // Random extra in [0, variance)
	TrailSpawnExtra    = 6 // Added at full intensity
	TrailSpawnCap      = 8 // Hard cap per move

	TrailSpeedMin   = 0.3 // Initial speed px/frame
	TrailSpeedRange = 1.1
	TrailSizeMin    = 0.7 // Radius px
	TrailSizeRange  = 1.2
)

// Simulation
const (
	TrailDamping = 0.98

	// TrailLifeDecay per frame, ~3s of life at 60Hz
	TrailLifeDecay = 0.0055
)

// Rendering
const (
	TrailFadeAlpha = 0.18

	TrailLinkDistanceSq = 1200.0
	TrailLinkFalloff    = 32.0 // Alpha reaches zero at this distance
	TrailLinkAlpha      = 0.32
	TrailLinkMinAlpha   = 0.01
	TrailLinkWidth      = 0.6

	TrailNodeAlpha = 0.7

	// Minimum logical canvas size
	TrailMinWidth  = 320
	TrailMinHeight = 240
)
