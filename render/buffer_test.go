package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio-fx/terminal"
)

// captureTerminal records the last flushed frame
type captureTerminal struct {
	cells  []terminal.Cell
	width  int
	height int
	syncs  int
}

func (c *captureTerminal) Init() error      { return nil }
func (c *captureTerminal) Fini()            {}
func (c *captureTerminal) Size() (int, int) { return c.width, c.height }
func (c *captureTerminal) Sync()            { c.syncs++ }
func (c *captureTerminal) PollEvent() terminal.Event {
	return terminal.Event{Type: terminal.EventClosed}
}
func (c *captureTerminal) PostQuit() {}
func (c *captureTerminal) Flush(cells []terminal.Cell, width, height int) {
	c.cells = append(c.cells[:0], cells...)
	c.width, c.height = width, height
}

func (c *captureTerminal) at(x, y int) terminal.Cell {
	return c.cells[y*c.width+x]
}

// TestRenderBufferHalfBlocks verifies each cell carries its top and bottom pixel
func TestRenderBufferHalfBlocks(t *testing.T) {
	buf := NewRenderBuffer(2, 1)
	red := RGB{R: 255, G: 0, B: 0}
	buf.FillRect(Rect{X: 0, Y: 0, W: 1, H: 1}, red, BlendReplace, 1.0)

	term := &captureTerminal{}
	buf.FlushToTerminal(term)

	cell := term.at(0, 0)
	if cell.Rune != HalfBlock {
		t.Errorf("Expected half block glyph, got %q", cell.Rune)
	}
	if cell.Fg != red || cell.Bg != red {
		t.Errorf("Expected both halves red, got fg=%v bg=%v", cell.Fg, cell.Bg)
	}
	if other := term.at(1, 0); other.Fg != RGBBlack {
		t.Errorf("Expected untouched cell black, got %v", other.Fg)
	}
}

// TestCompositeMaxPooling verifies a single bright backing pixel survives downscaling
func TestCompositeMaxPooling(t *testing.T) {
	c, _ := NewCanvas(16, 16)
	c.FillRect(13, 3, 1, 1, RGBWhite, 1.0) // one pixel in the top-right block

	buf := NewRenderBuffer(2, 1) // 2×2 display pixels, 8×8 backing block each
	buf.Composite(c, Rect{X: 0, Y: 0, W: 2, H: 1}, BlendReplace)

	if got := buf.Pixel(1, 0); got != RGBWhite {
		t.Errorf("Expected pooled white at (1,0), got %v", got)
	}
	for _, p := range [][2]int{{0, 0}, {0, 1}, {1, 1}} {
		if got := buf.Pixel(p[0], p[1]); got != RGBBlack {
			t.Errorf("Expected black at %v, got %v", p, got)
		}
	}
}

// TestCompositeScreenOverlay verifies screen mode only brightens the underlying frame
func TestCompositeScreenOverlay(t *testing.T) {
	c, _ := NewCanvas(2, 2)
	c.FillRect(0, 0, 1, 2, RGB{R: 0, G: 0, B: 200}, 1.0)

	buf := NewRenderBuffer(2, 1)
	base := RGB{R: 100, G: 50, B: 0}
	buf.Clear(base)
	buf.Composite(c, Rect{X: 0, Y: 0, W: 2, H: 1}, BlendScreen)

	if got := buf.Pixel(1, 0); got != base {
		t.Errorf("Expected black overlay pixel to leave base, got %v", got)
	}
	got := buf.Pixel(0, 0)
	if got.R != base.R || got.B < 200 {
		t.Errorf("Expected blue screened over base, got %v", got)
	}
}

// TestCompositeRegionClipped verifies destinations outside the buffer are ignored
func TestCompositeRegionClipped(t *testing.T) {
	c, _ := NewCanvas(4, 4)
	c.Clear(RGBWhite)

	buf := NewRenderBuffer(2, 2)
	buf.CompositeRegion(c, 0, 0, 4, 4, Rect{X: 1, Y: 1, W: 4, H: 4}, BlendReplace)

	if buf.Pixel(0, 0) != RGBBlack {
		t.Error("Expected pixel outside dst untouched")
	}
	if buf.Pixel(1, 2) != RGBWhite || buf.Pixel(1, 3) != RGBWhite {
		t.Error("Expected dst pixels inside the buffer painted")
	}

	buf.Composite(nil, Rect{W: 2, H: 2}, BlendReplace)
}

// TestSetTextClipsAndOverrides verifies text cells win over pixels and clip at edges
func TestSetTextClipsAndOverrides(t *testing.T) {
	buf := NewRenderBuffer(4, 2)
	buf.Clear(RGB{R: 9, G: 9, B: 9})

	n := buf.SetText(2, 0, "abc", RGBWhite, RGBBlack, terminal.AttrBold)
	if n != 3 {
		t.Errorf("Expected 3 runes consumed, got %d", n)
	}
	if buf.TextAt(2, 0) != 'a' || buf.TextAt(3, 0) != 'b' {
		t.Error("Expected text written at (2,0) and (3,0)")
	}
	if buf.TextAt(0, 0) != 0 {
		t.Error("Expected no text at (0,0)")
	}
	if buf.SetText(0, 5, "x", RGBWhite, RGBBlack, 0) != 0 {
		t.Error("Expected off-screen row to write nothing")
	}

	term := &captureTerminal{}
	buf.FlushToTerminal(term)
	cell := term.at(2, 0)
	if cell.Rune != 'a' || cell.Attrs != terminal.AttrBold || cell.Bg != RGBBlack {
		t.Errorf("Unexpected text cell %+v", cell)
	}

	buf.Clear(RGBBlack)
	if buf.TextAt(2, 0) != 0 {
		t.Error("Expected Clear to drop text")
	}
}

// TestSetLabelBackground verifies labels take the mean of the pixels beneath
func TestSetLabelBackground(t *testing.T) {
	buf := NewRenderBuffer(1, 1)
	buf.Clear(RGB{R: 100, G: 100, B: 100})
	buf.SetLabel(0, 0, "z", RGBWhite, terminal.AttrNone)

	term := &captureTerminal{}
	buf.FlushToTerminal(term)
	if got := term.at(0, 0).Bg; got != (RGB{R: 100, G: 100, B: 100}) {
		t.Errorf("Expected label bg from pixels, got %v", got)
	}
}

// TestFlushToSimulationScreen verifies the full path into a tcell screen
func TestFlushToSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := terminal.NewWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatal(err)
	}
	defer term.Fini()
	screen.SetSize(3, 1)

	buf := NewRenderBuffer(3, 1)
	buf.FillRect(Rect{X: 1, Y: 0, W: 1, H: 1}, RGB{R: 0, G: 200, B: 0}, BlendReplace, 1.0)
	buf.FlushToTerminal(term)

	r, _, style, _ := screen.GetContent(1, 0)
	if r != HalfBlock {
		t.Errorf("Expected half block, got %q", r)
	}
	fg, _, _ := style.Decompose()
	if terminal.FromTcell(fg, RGBBlack) != (RGB{R: 0, G: 200, B: 0}) {
		t.Errorf("Expected green foreground, got %v", fg)
	}
}

// TestResizeKeepsCapacity verifies shrinking reuses storage and clears content
func TestResizeKeepsCapacity(t *testing.T) {
	buf := NewRenderBuffer(10, 10)
	buf.Clear(RGBWhite)
	buf.Resize(4, 3)

	w, h := buf.Bounds()
	if w != 4 || h != 3 {
		t.Fatalf("Expected 4x3, got %dx%d", w, h)
	}
	if buf.Pixel(3, 5) != RGBBlack {
		t.Error("Expected cleared pixels after resize")
	}
	if buf.Pixel(4, 0) != RGBBlack || buf.Pixel(0, 6) != RGBBlack {
		t.Error("Expected out-of-range pixels reported black")
	}
}
