package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimTerminal(t *testing.T, w, h int) (Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(term.Fini)
	return term, screen
}

// TestFlushWritesCells verifies cells reach the screen with colors and glyphs
func TestFlushWritesCells(t *testing.T) {
	term, screen := newSimTerminal(t, 3, 2)

	cells := make([]Cell, 6)
	cells[0] = Cell{Rune: '▀', Fg: RGB{255, 0, 0}, Bg: RGB{0, 0, 255}}
	cells[4] = Cell{Rune: 'x', Fg: RGB{10, 20, 30}, Bg: RGB{40, 50, 60}, Attrs: AttrBold}
	term.Flush(cells, 3, 2)

	r, _, style, _ := screen.GetContent(0, 0)
	if r != '▀' {
		t.Errorf("Expected half block at (0,0), got %q", r)
	}
	fg, bg, _ := style.Decompose()
	if FromTcell(fg, RGBBlack) != (RGB{255, 0, 0}) || FromTcell(bg, RGBBlack) != (RGB{0, 0, 255}) {
		t.Errorf("Unexpected colors fg=%v bg=%v", fg, bg)
	}

	r, _, style, _ = screen.GetContent(1, 1)
	if r != 'x' {
		t.Errorf("Expected 'x' at (1,1), got %q", r)
	}
	_, _, attrs := style.Decompose()
	if attrs&tcell.AttrBold == 0 {
		t.Error("Expected bold attribute")
	}

	// Zero rune renders as space
	r, _, _, _ = screen.GetContent(2, 0)
	if r != ' ' {
		t.Errorf("Expected space for empty cell, got %q", r)
	}
}

// TestFlushShortBufferIgnored verifies undersized buffers are dropped
func TestFlushShortBufferIgnored(t *testing.T) {
	term, screen := newSimTerminal(t, 2, 2)
	term.Flush([]Cell{{Rune: 'a'}}, 2, 2)

	r, _, _, _ := screen.GetContent(0, 0)
	if r == 'a' {
		t.Error("Expected short buffer to be ignored")
	}
}

// TestPostQuitUnblocksPoll verifies PostQuit surfaces as EventClosed
func TestPostQuitUnblocksPoll(t *testing.T) {
	term, _ := newSimTerminal(t, 10, 5)

	term.PostQuit()
	for i := 0; i < 10; i++ {
		ev := term.PollEvent()
		if ev.Type == EventClosed {
			return
		}
	}
	t.Fatal("Expected EventClosed after PostQuit")
}

// TestConvertMouse verifies mouse events carry cell position and derived action
func TestConvertMouse(t *testing.T) {
	impl := &termImpl{}

	ev, ok := impl.convert(tcell.NewEventMouse(4, 7, tcell.Button1, tcell.ModNone))
	if !ok || ev.Type != EventMouse {
		t.Fatalf("Expected mouse event, got %+v", ev)
	}
	if ev.MouseX != 4 || ev.MouseY != 7 || ev.MouseAction != MouseActionPress {
		t.Errorf("Unexpected mouse event %+v", ev)
	}

	ev, _ = impl.convert(tcell.NewEventMouse(5, 7, tcell.Button1, tcell.ModNone))
	if ev.MouseAction != MouseActionDrag {
		t.Errorf("Expected drag, got %v", ev.MouseAction)
	}
}

// TestConvertResize verifies resize dimensions are forwarded
func TestConvertResize(t *testing.T) {
	impl := &termImpl{}
	ev, ok := impl.convert(tcell.NewEventResize(120, 40))
	if !ok || ev.Type != EventResize || ev.Width != 120 || ev.Height != 40 {
		t.Errorf("Unexpected resize event %+v", ev)
	}
}

// TestEmergencyReset verifies mouse tracking and alternate screen are disabled
func TestEmergencyReset(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)
	out := buf.String()
	for _, seq := range []string{"\x1b[?1003l", "\x1b[?1049l", "\x1b[?25h"} {
		if !strings.Contains(out, seq) {
			t.Errorf("Expected reset output to contain %q", seq)
		}
	}
}
