package event

import "time"

// Type represents the kind of host input event
type Type int

const (
	// PointerMove is a mouse move without buttons held
	// Producer: host loop | Consumer: trail effect, network widget
	PointerMove Type = iota

	// TouchMove is a move while the primary button is held, the terminal stand-in for touch drag
	// Producer: host loop | Consumer: trail effect, network widget
	TouchMove

	// Click is a primary button press
	// Producer: host loop | Consumer: network widget
	Click

	// Resize reports a new viewport size in client pixels
	// Producer: host loop | Consumer: trail effect, network widget
	Resize

	// typeCount bounds the per-type handler table
	typeCount
)

// String returns the event name
func (t Type) String() string {
	switch t {
	case PointerMove:
		return "PointerMove"
	case TouchMove:
		return "TouchMove"
	case Click:
		return "Click"
	case Resize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// Event is a host input event in client pixel coordinates
type Event struct {
	Type Type
	X    float64
	Y    float64
	Time time.Time

	// Viewport size for Resize
	Width  float64
	Height float64
}
