// Package config loads folio tuning from TOML over built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/folio-fx/audio"
	"github.com/lixenwraith/folio-fx/network"
	"github.com/lixenwraith/folio-fx/parameter"
	"github.com/lixenwraith/folio-fx/trail"
)

// EnvConfig names the variable consulted when no path is given
const EnvConfig = "FOLIO_CONFIG"

// Sentinel errors
var (
	ErrInvalid    = errors.New("config: invalid value")
	ErrUnknownKey = errors.New("config: unknown key")
)

// Display is the [display] section
type Display struct {
	CellWidth     float64       `toml:"cell_width"`
	CellHeight    float64       `toml:"cell_height"`
	PixelRatio    float64       `toml:"pixel_ratio"`
	FrameInterval time.Duration `toml:"frame_interval"`
}

// Config is the complete file layout
type Config struct {
	// Skills is a TOML skill file or directory, empty uses the built-in list
	Skills string `toml:"skills"`

	Display Display        `toml:"display"`
	Trail   trail.Config   `toml:"trail"`
	Network network.Config `toml:"network"`
	Audio   audio.Config   `toml:"audio"`

	// Theme maps category variables (cat-<slug>) to hsl() colors
	Theme map[string]string `toml:"theme"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Display: Display{
			CellWidth:     parameter.CellWidth,
			CellHeight:    parameter.CellHeight,
			PixelRatio:    parameter.PixelRatio,
			FrameInterval: parameter.FrameInterval,
		},
		Trail:   trail.DefaultConfig(),
		Network: network.DefaultConfig(),
		Audio:   audio.DefaultConfig(),
		Theme:   map[string]string{},
	}
}

// Load decodes path over the defaults, falling back to $FOLIO_CONFIG when path is empty
// With neither set the defaults are returned
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
		}
		if cfg.Skills != "" && !filepath.IsAbs(cfg.Skills) {
			cfg.Skills = filepath.Join(filepath.Dir(path), cfg.Skills)
		}
	}

	cfg.Audio.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section, reporting the first bad value
func (c *Config) Validate() error {
	d := c.Display
	switch {
	case d.CellWidth <= 0 || d.CellHeight <= 0:
		return fmt.Errorf("%w: display cell size %vx%v", ErrInvalid, d.CellWidth, d.CellHeight)
	case d.PixelRatio <= 0:
		return fmt.Errorf("%w: display pixel_ratio %v", ErrInvalid, d.PixelRatio)
	case d.FrameInterval <= 0:
		return fmt.Errorf("%w: display frame_interval %v", ErrInvalid, d.FrameInterval)
	}

	t := c.Trail
	switch {
	case t.Throttle < 0:
		return fmt.Errorf("%w: trail throttle %v", ErrInvalid, t.Throttle)
	case t.SpawnMin < 1 || t.SpawnCap < t.SpawnMin || t.SpawnCap > parameter.TrailSpawnCap:
		return fmt.Errorf("%w: trail spawn range %d..%d", ErrInvalid, t.SpawnMin, t.SpawnCap)
	case t.SpawnVariance < 0 || t.SpawnExtra < 0:
		return fmt.Errorf("%w: trail spawn variance/extra", ErrInvalid)
	case t.SpeedSmoothing < 0 || t.SpeedSmoothing >= 1:
		return fmt.Errorf("%w: trail speed_smoothing %v", ErrInvalid, t.SpeedSmoothing)
	case t.SpeedForMax <= 0:
		return fmt.Errorf("%w: trail speed_for_max %v", ErrInvalid, t.SpeedForMax)
	case t.LifeDecay <= 0:
		return fmt.Errorf("%w: trail life_decay %v", ErrInvalid, t.LifeDecay)
	case t.Damping <= 0 || t.Damping > 1:
		return fmt.Errorf("%w: trail damping %v", ErrInvalid, t.Damping)
	case t.FadeAlpha < 0 || t.FadeAlpha > 1:
		return fmt.Errorf("%w: trail fade_alpha %v", ErrInvalid, t.FadeAlpha)
	case t.MinWidth <= 0 || t.MinHeight <= 0:
		return fmt.Errorf("%w: trail minimum size %vx%v", ErrInvalid, t.MinWidth, t.MinHeight)
	}

	n := c.Network
	switch {
	case n.Width <= 0 || n.Height <= 0 || n.NarrowWidth <= 0 || n.NarrowHeight <= 0:
		return fmt.Errorf("%w: network canvas sizes", ErrInvalid)
	case n.MarginX*2 >= float64(min(n.Width, n.NarrowWidth)) || n.MarginY*2 >= float64(min(n.Height, n.NarrowHeight)):
		return fmt.Errorf("%w: network margins exceed canvas", ErrInvalid)
	case n.PickRadius <= 0:
		return fmt.Errorf("%w: network pick_radius %v", ErrInvalid, n.PickRadius)
	case n.Easing <= 0 || n.Easing > 1:
		return fmt.Errorf("%w: network easing %v", ErrInvalid, n.Easing)
	case n.EdgesPerNode < 0:
		return fmt.Errorf("%w: network edges_per_node %d", ErrInvalid, n.EdgesPerNode)
	case n.HoverGrow < 0 || n.ActiveGrow < 0:
		return fmt.Errorf("%w: network grow %v/%v", ErrInvalid, n.HoverGrow, n.ActiveGrow)
	case !unit(n.HoverAlpha) || !unit(n.ActiveAlpha) || !unit(n.BaseAlpha):
		return fmt.Errorf("%w: network target alphas %v/%v/%v", ErrInvalid, n.HoverAlpha, n.ActiveAlpha, n.BaseAlpha)
	}

	if err := c.Audio.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// unit reports whether v lies in [0, 1]
func unit(v float64) bool {
	return v >= 0 && v <= 1
}
