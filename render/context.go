package render

import (
	"math"
	"time"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Time state
	FrameTime   time.Time
	FrameNumber uint64

	// Screen dimensions (terminal size in cells)
	ScreenWidth  int
	ScreenHeight int

	// Client pixels covered by one cell
	CellWidth  float64
	CellHeight float64
}

// ViewportSize returns the screen size in client pixels
func (rc *RenderContext) ViewportSize() (float64, float64) {
	return float64(rc.ScreenWidth) * rc.CellWidth, float64(rc.ScreenHeight) * rc.CellHeight
}

// ClientToCell converts client pixel coordinates to the containing cell
func (rc *RenderContext) ClientToCell(x, y float64) (int, int) {
	if rc.CellWidth <= 0 || rc.CellHeight <= 0 {
		return 0, 0
	}
	return int(math.Floor(x / rc.CellWidth)), int(math.Floor(y / rc.CellHeight))
}

// CellCenter returns the client pixel at the center of a cell
func (rc *RenderContext) CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * rc.CellWidth, (float64(row) + 0.5) * rc.CellHeight
}

// ClientRect converts a client-pixel rectangle to the covering cell rect
func (rc *RenderContext) ClientRect(x, y, w, h float64) Rect {
	if rc.CellWidth <= 0 || rc.CellHeight <= 0 {
		return Rect{}
	}
	cx := int(math.Floor(x / rc.CellWidth))
	cy := int(math.Floor(y / rc.CellHeight))
	cw := int(math.Ceil((x+w)/rc.CellWidth)) - cx
	ch := int(math.Ceil((y+h)/rc.CellHeight)) - cy
	return Rect{X: cx, Y: cy, W: cw, H: ch}
}
