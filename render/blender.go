package render

// BlendMode selects how a source color is composited onto a destination pixel
type BlendMode uint8

const (
	BlendReplace BlendMode = iota // Dst = Src (opaque overwrite)
	BlendAlpha                    // Dst = Src*α + Dst*(1-α), canvas "source-over"
	BlendAdd                      // Dst = clamp(Dst + Src*α), canvas "lighter"
	BlendScreen                   // Dst = 1-(1-Dst)(1-Src), overlay element mix mode
)

// String returns the canvas-style name of the mode
func (m BlendMode) String() string {
	switch m {
	case BlendReplace:
		return "copy"
	case BlendAlpha:
		return "source-over"
	case BlendAdd:
		return "lighter"
	case BlendScreen:
		return "screen"
	default:
		return "unknown"
	}
}

// Apply composites src onto dst with the given coverage-scaled alpha
func (m BlendMode) Apply(dst, src RGB, alpha float64) RGB {
	switch m {
	case BlendReplace:
		return src
	case BlendAlpha:
		return Blend(dst, src, alpha)
	case BlendAdd:
		return Add(dst, src, alpha)
	case BlendScreen:
		return Screen(dst, src, alpha)
	default:
		return dst
	}
}
