package render

import (
	"math"
	"regexp"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// FallbackRGB is used wherever a color string cannot be parsed
var FallbackRGB = RGBWhite

// hslPattern matches the space-separated CSS form "hsl(H S% L%)"
var hslPattern = regexp.MustCompile(`^\s*hsl\(\s*(\d+(?:\.\d+)?)\s+(\d+(?:\.\d+)?)%\s+(\d+(?:\.\d+)?)%\s*\)\s*$`)

// HSL is a color in degrees / percent, as theme variables are written
type HSL struct {
	H float64 // 0-360
	S float64 // 0-100
	L float64 // 0-100
}

// ParseHSL parses "hsl(H S% L%)", false on malformed input
func ParseHSL(s string) (HSL, bool) {
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		return HSL{}, false
	}
	h, errH := strconv.ParseFloat(m[1], 64)
	sat, errS := strconv.ParseFloat(m[2], 64)
	l, errL := strconv.ParseFloat(m[3], 64)
	if errH != nil || errS != nil || errL != nil {
		return HSL{}, false
	}
	return HSL{H: h, S: math.Min(sat, 100), L: math.Min(l, 100)}, true
}

// Brighten raises lightness by delta percent, clamped to 100
func (c HSL) Brighten(delta float64) HSL {
	c.L = math.Min(100, c.L+delta)
	if c.L < 0 {
		c.L = 0
	}
	return c
}

// RGB converts to 8-bit channels
func (c HSL) RGB() RGB {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsl(h, c.S/100, c.L/100).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// String formats back to the theme variable syntax
func (c HSL) String() string {
	return "hsl(" + formatFloat(c.H) + " " + formatFloat(c.S) + "% " + formatFloat(c.L) + "%)"
}

// BrightenString brightens an hsl() string, returning it unchanged when malformed
func BrightenString(s string, delta float64) string {
	c, ok := ParseHSL(s)
	if !ok {
		return s
	}
	return c.Brighten(delta).String()
}

// ColorOf resolves an hsl() string to RGB, FallbackRGB when malformed
func ColorOf(s string) RGB {
	c, ok := ParseHSL(s)
	if !ok {
		return FallbackRGB
	}
	return c.RGB()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
