package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrReverse   Attr = 1 << 5
)

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Terminal provides frame-level terminal access
type Terminal interface {
	// Init enters the alternate screen and enables mouse reporting
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions in cells
	Size() (width, height int)

	// Flush writes cell buffer to terminal
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int)

	// Sync forces full redraw
	Sync()

	// PollEvent blocks until next input event
	PollEvent() Event

	// PostQuit unblocks PollEvent with EventClosed
	PostQuit()
}

// termImpl implements Terminal on top of a tcell screen
type termImpl struct {
	screen tcell.Screen
	mouse  mouseTracker

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal backed by the process tty
func New() (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: create screen: %w", err)
	}
	return &termImpl{screen: screen}, nil
}

// NewWithScreen wraps an existing tcell screen, used with tcell.NewSimulationScreen in tests
func NewWithScreen(screen tcell.Screen) Terminal {
	return &termImpl{screen: screen}
}

// Init initializes the screen, hides the cursor and enables motion reporting
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal: init: %w", err)
	}
	t.screen.HideCursor()
	t.screen.EnableMouse(tcell.MouseMotionEvents)
	t.initialized = true
	return nil
}

// Fini restores the terminal, idempotent
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.DisableMouse()
	t.screen.Fini()
	t.finalized = true
}

func (t *termImpl) Size() (int, int) {
	return t.screen.Size()
}

// Flush translates cells into tcell content and shows the frame
func (t *termImpl) Flush(cells []Cell, width, height int) {
	if len(cells) < width*height {
		return
	}
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			c := &cells[row+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, styleFor(c))
		}
	}
	t.screen.Show()
}

func (t *termImpl) Sync() {
	t.screen.Sync()
}

// PollEvent converts the next tcell event, skipping event kinds callers never consume
func (t *termImpl) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}
		if out, ok := t.convert(ev); ok {
			return out
		}
	}
}

// PostQuit wakes PollEvent so the poller goroutine can exit
func (t *termImpl) PostQuit() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(errQuit))
}

// styleFor maps a cell to a tcell style
func styleFor(c *Cell) tcell.Style {
	style := tcell.StyleDefault.Foreground(c.Fg.Tcell()).Background(c.Bg.Tcell())
	if c.Attrs&AttrBold != 0 {
		style = style.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		style = style.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		style = style.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if c.Attrs&AttrReverse != 0 {
		style = style.Reverse(true)
	}
	return style
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	// Mouse tracking off (motion, drag, click, SGR)
	io.WriteString(w, "\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l")
	// Cursor on, leave alternate screen, reset attributes
	io.WriteString(w, "\x1b[?25h\x1b[?1049l\x1b[0m")

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
