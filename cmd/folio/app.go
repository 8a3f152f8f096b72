package main

import (
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/folio-fx/audio"
	"github.com/lixenwraith/folio-fx/config"
	"github.com/lixenwraith/folio-fx/content"
	"github.com/lixenwraith/folio-fx/engine"
	"github.com/lixenwraith/folio-fx/event"
	"github.com/lixenwraith/folio-fx/network"
	"github.com/lixenwraith/folio-fx/parameter"
	"github.com/lixenwraith/folio-fx/parameter/visual"
	"github.com/lixenwraith/folio-fx/render"
	"github.com/lixenwraith/folio-fx/status"
	"github.com/lixenwraith/folio-fx/terminal"
	"github.com/lixenwraith/folio-fx/trail"
)

// minNetworkCols keeps the legend from squeezing the network below this width
const minNetworkCols = 24

// App wires the host, both effects and the demo view to one terminal
type App struct {
	term   terminal.Terminal
	cfg    *config.Config
	cats   []content.SkillCategory
	clock  engine.TimeProvider
	host   *engine.BaseHost
	sounds *audio.SoundManager

	trail   *trail.Effect
	network *network.Widget
	view    *view
	orch    *render.RenderOrchestrator

	stats     *status.Registry
	frames    *atomic.Int64
	callbacks *atomic.Int64
	particles *atomic.Int64
	frameMS   *status.Gauge
	showStats bool

	width, height int // Cells
}

func newApp(term terminal.Terminal, cfg *config.Config, cats []content.SkillCategory, sounds *audio.SoundManager,
	clock engine.TimeProvider, rng *rand.Rand, width, height int) *App {
	a := &App{
		term:   term,
		cfg:    cfg,
		cats:   cats,
		clock:  clock,
		sounds: sounds,
		width:  width,
		height: height,
	}

	a.stats = status.NewRegistry()
	a.frames = a.stats.Counters.Get("frames")
	a.callbacks = a.stats.Counters.Get("callbacks")
	a.particles = a.stats.Counters.Get("particles")
	a.frameMS = a.stats.Gauges.Get("frame_ms")

	a.host = engine.NewBaseHost(clock, a.viewport())
	a.trail = trail.New(a.host, cfg.Trail, rng)
	a.view = newView(cats)
	a.network = network.New(a.host, cats, cfg.Network, cfg.Theme, network.Callbacks{
		OnSkillHover:     a.onSkillHover,
		OnCategorySelect: a.onCategorySelect,
	}, rng)

	a.orch = render.NewRenderOrchestrator(term, width, height, visual.RgbBackground)
	a.orch.Register(a.network, render.PriorityWidget)
	a.orch.Register(a.view, render.PriorityUI)
	a.orch.Register(a.trail, render.PriorityOverlay)
	a.orch.Register(&tooltipRenderer{widget: a.network}, render.PriorityTooltip)
	a.orch.Register(&statsRenderer{app: a}, render.PriorityDebug)
	return a
}

func (a *App) viewport() engine.Viewport {
	return engine.Viewport{
		Width:      float64(a.width) * a.cfg.Display.CellWidth,
		Height:     float64(a.height) * a.cfg.Display.CellHeight,
		PixelRatio: a.cfg.Display.PixelRatio,
	}
}

// Mount attaches both effects and lays out the view
func (a *App) Mount() {
	a.network.Mount()
	a.trail.Mount()
	a.view.table = a.network.Table()
	a.view.trailOn = a.trail.Enabled()
	a.layout()
}

// Unmount detaches both effects
func (a *App) Unmount() {
	a.trail.Unmount()
	a.network.Unmount()
}

// layout places the network panel, legend and status row for the current size
func (a *App) layout() {
	cw, ch := a.cfg.Display.CellWidth, a.cfg.Display.CellHeight
	avail := render.Rect{W: a.width, H: a.height - parameter.StatusRows}

	a.view.legend = render.Rect{}
	if a.width-parameter.LegendWidth >= minNetworkCols {
		rows := min(len(a.cats)+4, avail.H)
		a.view.legend = render.Rect{X: a.width - parameter.LegendWidth, Y: 0, W: parameter.LegendWidth, H: rows}
		avail.W -= parameter.LegendWidth
	}
	a.view.status = a.height - parameter.StatusRows
	a.view.width = a.width

	inner := render.Rect{X: avail.X + 1, Y: avail.Y + 1, W: avail.W - 2, H: avail.H - 2}
	if inner.Empty() {
		a.network.SetDisplayRect(0, 0, 0, 0)
		a.view.panel = render.Rect{}
		return
	}

	bw, bh := a.cfg.Network.CanvasSize(a.host.Viewport().Width)
	if c := a.network.Canvas(); c != nil {
		bw, bh = c.Width(), c.Height()
	}
	innerW, innerH := float64(inner.W)*cw, float64(inner.H)*ch
	scale := math.Min(1, math.Min(innerW/float64(bw), innerH/float64(bh)))
	dw, dh := float64(bw)*scale, float64(bh)*scale

	x := float64(inner.X)*cw + (innerW-dw)/2
	y := float64(inner.Y)*ch + (innerH-dh)/2
	a.network.SetDisplayRect(x, y, dw, dh)

	ctx := a.renderContext()
	r := ctx.ClientRect(x, y, dw, dh)
	a.view.panel = render.Rect{X: r.X - 1, Y: r.Y - 1, W: r.W + 2, H: r.H + 2}
}

func (a *App) renderContext() render.RenderContext {
	return render.RenderContext{
		FrameTime:    a.clock.Now(),
		FrameNumber:  a.host.Scheduler().FrameNumber(),
		ScreenWidth:  a.width,
		ScreenHeight: a.height,
		CellWidth:    a.cfg.Display.CellWidth,
		CellHeight:   a.cfg.Display.CellHeight,
	}
}

// Frame runs queued input, the scheduled frame callbacks, then renders
func (a *App) Frame() {
	start := a.clock.Now()
	ran := a.host.Frame()
	a.frames.Add(1)
	a.callbacks.Add(int64(ran))
	a.particles.Store(int64(len(a.trail.State().Particles)))

	a.orch.RenderFrame(a.renderContext())
	a.frameMS.Smooth(float64(a.clock.Now().Sub(start).Microseconds())/1000, 0.1)
}

// Resize adopts a new terminal size; both effects follow through the resize event
func (a *App) Resize(width, height int) {
	a.width, a.height = width, height
	a.orch.Resize(width, height)
	vp := a.viewport()
	a.host.Resize(vp.Width, vp.Height)
	a.layout()
}

// HandleEvent applies one terminal event, false requests exit
func (a *App) HandleEvent(ev terminal.Event) bool {
	switch ev.Type {
	case terminal.EventKey:
		return a.handleKey(ev)
	case terminal.EventResize:
		a.Resize(ev.Width, ev.Height)
	case terminal.EventMouse:
		a.handleMouse(ev)
	}
	return true
}

func (a *App) handleKey(ev terminal.Event) bool {
	switch ev.Key {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		a.view.focus = ""
		a.setSelected("")
		a.syncExternal()
		return true
	case tcell.KeyEnter:
		if a.view.focus != "" {
			a.setSelected(network.ToggleCategory(a.view.selected, a.view.focus))
		}
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := ev.Rune; {
	case r == 'q':
		return false
	case r == 't':
		a.trail.SetEnabled(!a.trail.Enabled())
		a.view.trailOn = a.trail.Enabled()
	case r == 'd':
		a.showStats = !a.showStats
	case r == ' ':
		if a.view.focus != "" {
			a.setSelected(network.ToggleCategory(a.view.selected, a.view.focus))
		}
	case r >= '1' && r <= '9':
		idx := int(r - '1')
		if idx < len(a.cats) {
			cat := a.cats[idx].Category
			if a.view.focus == cat {
				cat = ""
			}
			a.view.focus = cat
			a.syncExternal()
		}
	}
	return true
}

// handleMouse feeds the bus in client px at the cell center and drives legend hover and clicks
func (a *App) handleMouse(ev terminal.Event) {
	x := (float64(ev.MouseX) + 0.5) * a.cfg.Display.CellWidth
	y := (float64(ev.MouseY) + 0.5) * a.cfg.Display.CellHeight
	now := a.clock.Now()
	bus := a.host.Bus()

	row := a.view.legendAt(ev.MouseX, ev.MouseY)
	if row != a.view.legendHover {
		a.view.legendHover = row
		a.syncExternal()
	}

	switch ev.MouseAction {
	case terminal.MouseActionMove:
		bus.Push(event.Event{Type: event.PointerMove, X: x, Y: y, Time: now})
	case terminal.MouseActionDrag:
		bus.Push(event.Event{Type: event.TouchMove, X: x, Y: y, Time: now})
	case terminal.MouseActionPress:
		if ev.MouseBtn != terminal.MouseBtnLeft {
			return
		}
		if row != "" {
			a.setSelected(network.ToggleCategory(a.view.selected, row))
			return
		}
		bus.Push(event.Event{Type: event.Click, X: x, Y: y, Time: now})
	}

	// Dispatch input immediately instead of waiting for the next frame
	bus.DispatchAll()
}

// syncExternal pushes legend hover, falling back to the keyboard focus, into the widget
func (a *App) syncExternal() {
	cat := a.view.legendHover
	if cat == "" {
		cat = a.view.focus
	}
	a.network.SetHoveredCategory(cat)
}

// setSelected applies a selection made outside the widget
func (a *App) setSelected(cat string) {
	if cat == a.view.selected {
		return
	}
	a.network.SetSelectedCategory(cat)
	a.onCategorySelect(strPtr(cat))
}

func (a *App) onSkillHover(name, category *string) {
	if name == nil || category == nil {
		a.view.hoverSkill, a.view.hoverCategory = "", ""
		return
	}
	a.view.hoverSkill, a.view.hoverCategory = *name, *category
	a.sounds.PlayHover()
}

func (a *App) onCategorySelect(category *string) {
	if category == nil {
		a.view.selected = ""
		a.sounds.PlayDeselect()
		return
	}
	a.view.selected = *category
	a.sounds.PlaySelect()
}

// strPtr maps "" to nil, the callbacks' cleared value
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
