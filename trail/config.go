package trail

import (
	"time"

	"github.com/lixenwraith/folio-fx/parameter"
)

// Config holds trail tuning, decoded from the [trail] config section
// Fade and decay values shape the look only, any positive values are valid
type Config struct {
	Enabled bool `toml:"enabled"`

	Throttle       time.Duration `toml:"throttle"`
	SpeedSmoothing float64       `toml:"speed_smoothing"`
	SpeedForMax    float64       `toml:"speed_for_max"`

	SpawnMin      int `toml:"spawn_min"`
	SpawnVariance int `toml:"spawn_variance"`
	SpawnExtra    int `toml:"spawn_extra"`
	SpawnCap      int `toml:"spawn_cap"`

	SpeedMin   float64 `toml:"speed_min"`
	SpeedRange float64 `toml:"speed_range"`
	SizeMin    float64 `toml:"size_min"`
	SizeRange  float64 `toml:"size_range"`

	Damping   float64 `toml:"damping"`
	LifeDecay float64 `toml:"life_decay"`

	FadeAlpha      float64 `toml:"fade_alpha"`
	LinkDistanceSq float64 `toml:"link_distance_sq"`
	LinkFalloff    float64 `toml:"link_falloff"`
	LinkAlpha      float64 `toml:"link_alpha"`
	LinkMinAlpha   float64 `toml:"link_min_alpha"`
	LinkWidth      float64 `toml:"link_width"`
	NodeAlpha      float64 `toml:"node_alpha"`

	MinWidth  float64 `toml:"min_width"`
	MinHeight float64 `toml:"min_height"`
}

// DefaultConfig returns the stock tuning, effect disabled
func DefaultConfig() Config {
	return Config{
		Enabled: false,

		Throttle:       parameter.TrailThrottle,
		SpeedSmoothing: parameter.TrailSpeedSmoothing,
		SpeedForMax:    parameter.TrailSpeedForMax,

		SpawnMin:      parameter.TrailSpawnMin,
		SpawnVariance: parameter.TrailSpawnVariance,
		SpawnExtra:    parameter.TrailSpawnExtra,
		SpawnCap:      parameter.TrailSpawnCap,

		SpeedMin:   parameter.TrailSpeedMin,
		SpeedRange: parameter.TrailSpeedRange,
		SizeMin:    parameter.TrailSizeMin,
		SizeRange:  parameter.TrailSizeRange,

		Damping:   parameter.TrailDamping,
		LifeDecay: parameter.TrailLifeDecay,

		FadeAlpha:      parameter.TrailFadeAlpha,
		LinkDistanceSq: parameter.TrailLinkDistanceSq,
		LinkFalloff:    parameter.TrailLinkFalloff,
		LinkAlpha:      parameter.TrailLinkAlpha,
		LinkMinAlpha:   parameter.TrailLinkMinAlpha,
		LinkWidth:      parameter.TrailLinkWidth,
		NodeAlpha:      parameter.TrailNodeAlpha,

		MinWidth:  parameter.TrailMinWidth,
		MinHeight: parameter.TrailMinHeight,
	}
}
