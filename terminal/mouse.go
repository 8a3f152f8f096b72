package terminal

import "github.com/gdamore/tcell/v2"

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	case MouseBtnWheelUp:
		return "WheelUp"
	case MouseBtnWheelDown:
		return "WheelDown"
	default:
		return "None"
	}
}

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionMove:
		return "Move"
	case MouseActionDrag:
		return "Drag"
	default:
		return "None"
	}
}

// primaryButton reduces a tcell button mask to the single button reported
func primaryButton(mask tcell.ButtonMask) MouseButton {
	switch {
	case mask&tcell.Button1 != 0:
		return MouseBtnLeft
	case mask&tcell.Button3 != 0:
		return MouseBtnMiddle
	case mask&tcell.Button2 != 0:
		return MouseBtnRight
	case mask&tcell.WheelUp != 0:
		return MouseBtnWheelUp
	case mask&tcell.WheelDown != 0:
		return MouseBtnWheelDown
	default:
		return MouseBtnNone
	}
}

// mouseTracker derives press/release/drag from tcell's level-triggered button masks
type mouseTracker struct {
	held MouseButton
}

// classify returns the action for a mouse report given the previously held button
func (m *mouseTracker) classify(mask tcell.ButtonMask) (MouseButton, MouseAction) {
	btn := primaryButton(mask)
	prev := m.held

	switch {
	case btn == MouseBtnWheelUp || btn == MouseBtnWheelDown:
		return btn, MouseActionPress
	case btn != MouseBtnNone && prev == MouseBtnNone:
		m.held = btn
		return btn, MouseActionPress
	case btn != MouseBtnNone:
		return btn, MouseActionDrag
	case prev != MouseBtnNone:
		m.held = MouseBtnNone
		return prev, MouseActionRelease
	default:
		return MouseBtnNone, MouseActionMove
	}
}
