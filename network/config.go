package network

import "github.com/lixenwraith/folio-fx/parameter"

// Config holds network sizing and interaction tuning, decoded from the [network] config section
type Config struct {
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	NarrowWidth  int     `toml:"narrow_width"`
	NarrowHeight int     `toml:"narrow_height"`
	Breakpoint   float64 `toml:"breakpoint"` // Viewport width below which the narrow size applies

	MarginX      float64 `toml:"margin_x"`
	MarginY      float64 `toml:"margin_y"`
	JitterX      float64 `toml:"jitter_x"`
	JitterY      float64 `toml:"jitter_y"`
	EdgesPerNode int     `toml:"edges_per_node"`

	PickRadius    float64 `toml:"pick_radius"`
	TooltipOffset float64 `toml:"tooltip_offset"`
	Easing        float64 `toml:"easing"`
	TimeStep      float64 `toml:"time_step"`

	// Eased targets, grow is added to the node's base size
	HoverGrow   float64 `toml:"hover_grow"`
	HoverAlpha  float64 `toml:"hover_alpha"`
	ActiveGrow  float64 `toml:"active_grow"`
	ActiveAlpha float64 `toml:"active_alpha"`
	BaseAlpha   float64 `toml:"base_alpha"`
}

// DefaultConfig returns the stock network tuning
func DefaultConfig() Config {
	return Config{
		Width:        parameter.NetworkWidth,
		Height:       parameter.NetworkHeight,
		NarrowWidth:  parameter.NetworkNarrowWidth,
		NarrowHeight: parameter.NetworkNarrowHeight,
		Breakpoint:   parameter.NarrowViewportWidth,

		MarginX:      parameter.NetworkMarginX,
		MarginY:      parameter.NetworkMarginY,
		JitterX:      parameter.NetworkJitterX,
		JitterY:      parameter.NetworkJitterY,
		EdgesPerNode: parameter.NetworkEdgesPerNode,

		PickRadius:    parameter.NetworkPickRadius,
		TooltipOffset: parameter.NetworkTooltipOffset,
		Easing:        parameter.NetworkEasing,
		TimeStep:      parameter.NetworkTimeStep,

		HoverGrow:   parameter.NetworkHoverGrow,
		HoverAlpha:  parameter.NetworkHoverAlpha,
		ActiveGrow:  parameter.NetworkActiveGrow,
		ActiveAlpha: parameter.NetworkActiveAlpha,
		BaseAlpha:   parameter.NetworkBaseAlpha,
	}
}

// CanvasSize returns the backing size for a viewport width
func (c *Config) CanvasSize(viewportWidth float64) (int, int) {
	if viewportWidth < c.Breakpoint {
		return c.NarrowWidth, c.NarrowHeight
	}
	return c.Width, c.Height
}
