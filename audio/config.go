package audio

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lixenwraith/folio-fx/parameter"
)

// Config is the [audio] config section
type Config struct {
	Enabled        bool    `toml:"enabled"`
	MasterVolume   float64 `toml:"master_volume"`
	SampleRate     int     `toml:"sample_rate"`
	SelectVolume   float64 `toml:"select_volume"`
	DeselectVolume float64 `toml:"deselect_volume"`
	HoverVolume    float64 `toml:"hover_volume"`
}

// DefaultConfig returns audio defaults, muted unless enabled by config or env
func DefaultConfig() Config {
	return Config{
		Enabled:        false,
		MasterVolume:   parameter.AudioMasterVolume,
		SampleRate:     parameter.AudioSampleRate,
		SelectVolume:   parameter.AudioSelectVolume,
		DeselectVolume: parameter.AudioDeselectVolume,
		HoverVolume:    parameter.AudioHoverVolume,
	}
}

// Volume returns the effective volume of a sound, master applied
func (c *Config) Volume(st SoundType) float64 {
	var v float64
	switch st {
	case SoundSelect:
		v = c.SelectVolume
	case SoundDeselect:
		v = c.DeselectVolume
	case SoundHover:
		v = c.HoverVolume
	}
	return v * c.MasterVolume
}

// Validate checks volumes are within [0, 1] and the sample rate is positive
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate %d", ErrInvalidConfig, c.SampleRate)
	}
	vols := map[string]float64{
		"master_volume":   c.MasterVolume,
		"select_volume":   c.SelectVolume,
		"deselect_volume": c.DeselectVolume,
		"hover_volume":    c.HoverVolume,
	}
	for name, v := range vols {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s %v out of [0,1]", ErrInvalidConfig, name, v)
		}
	}
	return nil
}

// ApplyEnv overrides the config from FOLIO_AUDIO_ENABLED and FOLIO_MASTER_VOLUME
// Unparseable values are ignored
func (c *Config) ApplyEnv() {
	if enabled := os.Getenv("FOLIO_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("FOLIO_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}
}
