package terminal

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventMouse
	EventError  // Read error
	EventClosed // Input closed
)

var errQuit = errors.New("terminal: quit requested")

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       tcell.Key
	Rune      rune
	Modifiers tcell.ModMask
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError

	// Mouse event fields, cell coordinates
	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction
}

// convert maps a tcell event to an Event, false for ignored kinds
func (t *termImpl) convert(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{Type: EventKey, Key: e.Key(), Rune: e.Rune(), Modifiers: e.Modifiers()}, true
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	case *tcell.EventMouse:
		x, y := e.Position()
		btn, action := t.mouse.classify(e.Buttons())
		return Event{Type: EventMouse, MouseX: x, MouseY: y, MouseBtn: btn, MouseAction: action}, true
	case *tcell.EventError:
		return Event{Type: EventError, Err: e}, true
	case *tcell.EventInterrupt:
		if err, ok := e.Data().(error); ok && errors.Is(err, errQuit) {
			return Event{Type: EventClosed}, true
		}
	}
	return Event{}, false
}
