package network

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/folio-fx/content"
	"github.com/lixenwraith/folio-fx/engine"
	"github.com/lixenwraith/folio-fx/event"
	"github.com/lixenwraith/folio-fx/palette"
	"github.com/lixenwraith/folio-fx/parameter/visual"
	"github.com/lixenwraith/folio-fx/render"
)

// ErrNotMounted is returned by operations that need a mounted widget
var ErrNotMounted = errors.New("network: widget not mounted")

// Callbacks notify the hosting view of hover and selection changes
// Each fires only when its value changes
type Callbacks struct {
	// OnSkillHover receives the hovered skill and its category, both nil when hover ends
	OnSkillHover func(name, category *string)
	// OnCategorySelect receives the toggled selection, nil when cleared
	OnCategorySelect func(category *string)
}

// Widget is the skill-network visualization
type Widget struct {
	host      engine.Host
	cfg       Config
	rng       *rand.Rand
	cats      []content.SkillCategory
	theme     map[string]string
	callbacks Callbacks

	table     *palette.Table
	state     *State
	canvas    *render.Canvas
	listeners *event.Group
	frame     engine.FrameHandle

	mounted bool
	laidOut bool
	warned  bool

	// Displayed box in client px, zero size shows the canvas 1:1
	originX, originY   float64
	displayW, displayH float64

	// Last hover reported through OnSkillHover
	notified             bool
	notifiedName, notCat string

	background render.RGB
}

// New creates an unmounted widget; a nil rng is seeded from the clock
func New(host engine.Host, cats []content.SkillCategory, cfg Config, theme map[string]string, cb Callbacks, rng *rand.Rand) *Widget {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Widget{
		host:       host,
		cfg:        cfg,
		rng:        rng,
		cats:       content.Clone(cats),
		theme:      theme,
		callbacks:  cb,
		listeners:  event.NewGroup(host.Bus()),
		state:      NewState(nil, nil),
		background: visual.RgbPanelBackground,
	}
}

// Mount sizes the canvas, lays out nodes, attaches listeners and starts the frame loop
// Without a canvas the widget stays idle until a later resize succeeds
func (w *Widget) Mount() {
	if w.mounted {
		return
	}
	w.mounted = true

	names := content.Names(w.cats)
	w.table = palette.Build(names, w.theme)
	if err := w.table.Validate(names); err != nil {
		log.Printf("network: style table: %v", err)
	}

	w.listeners.On(event.PointerMove, w.onMove)
	w.listeners.On(event.TouchMove, w.onMove)
	w.listeners.On(event.Click, w.onClick)
	w.listeners.On(event.Resize, func(event.Event) { w.Resize() })

	w.Resize()
}

// Unmount cancels the frame, detaches listeners and drops nodes and interaction state
func (w *Widget) Unmount() {
	w.host.Scheduler().CancelFrame(w.frame)
	w.frame = 0
	w.listeners.DetachAll()
	w.state = NewState(nil, nil)
	w.canvas = nil
	w.notified = false
	w.laidOut = false
	w.mounted = false
}

// SetCategories replaces the input list and rebuilds the layout and styles
func (w *Widget) SetCategories(cats []content.SkillCategory) {
	w.cats = content.Clone(cats)
	if !w.mounted {
		return
	}
	names := content.Names(w.cats)
	w.table = palette.Build(names, w.theme)
	if err := w.table.Validate(names); err != nil {
		log.Printf("network: style table: %v", err)
	}
	w.notifyHover(NoNode)

	// Old nodes never outlive their categories, a missing canvas defers the layout to Resize
	w.laidOut = false
	prev := w.state
	w.state = NewState(nil, nil)
	w.state.ExternalCategory = prev.ExternalCategory
	w.state.SelectedCategory = prev.SelectedCategory
	w.layout()
}

// SetHoveredCategory sets the category hovered outside the widget, "" to clear
func (w *Widget) SetHoveredCategory(category string) {
	w.state.ExternalCategory = category
}

// SetSelectedCategory sets the selection from outside without firing OnCategorySelect
func (w *Widget) SetSelectedCategory(category string) {
	w.state.SelectedCategory = category
}

// SetDisplayRect places the widget in client px
func (w *Widget) SetDisplayRect(x, y, width, height float64) {
	w.originX, w.originY = x, y
	w.displayW, w.displayH = width, height
}

// DisplayRect returns the placed box in client px
func (w *Widget) DisplayRect() (x, y, width, height float64) {
	dw, dh := w.displaySize()
	return w.originX, w.originY, dw, dh
}

// Resize sets the backing size from the viewport breakpoint; placed nodes keep their positions
func (w *Widget) Resize() bool {
	bw, bh := w.cfg.CanvasSize(w.host.Viewport().Width)

	var err error
	if w.canvas == nil {
		w.canvas, err = w.host.NewCanvas(bw, bh)
	} else if w.canvas.Width() != bw || w.canvas.Height() != bh {
		err = w.canvas.Resize(bw, bh)
	}
	if err != nil {
		if !w.warned {
			log.Printf("network: canvas unavailable, widget disabled: %v", err)
			w.warned = true
		}
		w.canvas = nil
		return false
	}

	if !w.mounted {
		return true
	}
	if !w.laidOut {
		w.layout()
	}
	if w.frame == 0 {
		w.frame = w.host.Scheduler().RequestFrame(w.tick)
	}
	return true
}

// State exposes the simulation for inspection
func (w *Widget) State() *State {
	return w.state
}

// Canvas returns the backing surface
func (w *Widget) Canvas() *render.Canvas {
	return w.canvas
}

// Table returns the category style table built at mount
func (w *Widget) Table() *palette.Table {
	return w.table
}

// Tooltip returns the current tooltip payload
func (w *Widget) Tooltip() Tooltip {
	return w.state.Tooltip
}

func (w *Widget) layout() {
	if w.canvas == nil {
		return
	}
	opts := LayoutOptionsFrom(&w.cfg, w.canvas.Width(), w.canvas.Height(), w.rng)
	nodes, edges := Layout(w.cats, opts)

	w.laidOut = true
	prev := w.state
	w.state = NewState(nodes, edges)
	w.state.ExternalCategory = prev.ExternalCategory
	w.state.SelectedCategory = prev.SelectedCategory
}

func (w *Widget) displaySize() (float64, float64) {
	dw, dh := w.displayW, w.displayH
	if w.canvas != nil {
		if dw <= 0 {
			dw = float64(w.canvas.Width())
		}
		if dh <= 0 {
			dh = float64(w.canvas.Height())
		}
	}
	return dw, dh
}

// toCanvas converts client px to display-local and canvas px, false when outside the box
func (w *Widget) toCanvas(x, y float64) (lx, ly, cx, cy float64, ok bool) {
	if w.canvas == nil {
		return 0, 0, 0, 0, false
	}
	dw, dh := w.displaySize()
	lx, ly = x-w.originX, y-w.originY
	if lx < 0 || ly < 0 || lx >= dw || ly >= dh {
		return lx, ly, 0, 0, false
	}
	cx = lx * float64(w.canvas.Width()) / dw
	cy = ly * float64(w.canvas.Height()) / dh
	return lx, ly, cx, cy, true
}

func (w *Widget) onMove(ev event.Event) {
	lx, ly, cx, cy, ok := w.toCanvas(ev.X, ev.Y)
	if !ok {
		ClearHover(w.state)
		w.notifyHover(NoNode)
		return
	}
	Hover(&w.cfg, w.state, cx, cy, lx, ly)
	w.notifyHover(w.state.Hovered)
}

func (w *Widget) onClick(ev event.Event) {
	_, _, cx, cy, ok := w.toCanvas(ev.X, ev.Y)
	if !ok {
		return
	}
	i := Pick(w.state.Nodes, cx, cy, w.cfg.PickRadius)
	if i == NoNode {
		return
	}
	next := ToggleCategory(w.state.SelectedCategory, w.state.Nodes[i].Category)
	w.state.SelectedCategory = next
	if w.callbacks.OnCategorySelect != nil {
		if next == "" {
			w.callbacks.OnCategorySelect(nil)
		} else {
			w.callbacks.OnCategorySelect(&next)
		}
	}
}

// notifyHover reports hover transitions, deduplicated by name and category
func (w *Widget) notifyHover(i int) {
	if i == NoNode || i >= len(w.state.Nodes) {
		if w.notified {
			w.notified = false
			w.notifiedName, w.notCat = "", ""
			if w.callbacks.OnSkillHover != nil {
				w.callbacks.OnSkillHover(nil, nil)
			}
		}
		return
	}

	n := &w.state.Nodes[i]
	if w.notified && n.Name == w.notifiedName && n.Category == w.notCat {
		return
	}
	w.notified = true
	w.notifiedName, w.notCat = n.Name, n.Category
	if w.callbacks.OnSkillHover != nil {
		name, cat := n.Name, n.Category
		w.callbacks.OnSkillHover(&name, &cat)
	}
}

// tick runs one frame: ease, draw, reschedule
func (w *Widget) tick(time.Time) {
	if !w.mounted {
		return
	}
	if w.canvas == nil {
		w.frame = 0
		return
	}
	Update(&w.cfg, w.state)
	Draw(w.canvas, w.state, w.table, w.background)
	w.frame = w.host.Scheduler().RequestFrame(w.tick)
}

// IsVisible implements render.VisibilityToggle
func (w *Widget) IsVisible() bool {
	return w.mounted && w.canvas != nil
}

// Render pools the canvas into the cells covering the display box
func (w *Widget) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if w.canvas == nil {
		return
	}
	x, y, dw, dh := w.DisplayRect()
	buf.Composite(w.canvas, ctx.ClientRect(x, y, dw, dh), render.BlendReplace)
}

// Snapshot draws the current state once and returns the canvas, for headless export
func (w *Widget) Snapshot() (*render.Canvas, error) {
	if !w.mounted || w.canvas == nil {
		return nil, ErrNotMounted
	}
	Draw(w.canvas, w.state, w.table, w.background)
	return w.canvas, nil
}
