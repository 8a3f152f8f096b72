package trail

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/folio-fx/engine"
	"github.com/lixenwraith/folio-fx/event"
	"github.com/lixenwraith/folio-fx/parameter/visual"
	"github.com/lixenwraith/folio-fx/render"
)

// Effect is the full-viewport pointer-trail overlay
// Mounted and enabled it listens for pointer moves, spawns particles and redraws every frame
// It never consumes input, other subscribers see the same events
type Effect struct {
	host engine.Host
	cfg  Config
	rng  *rand.Rand

	state     State
	canvas    *render.Canvas
	listeners *event.Group
	frame     engine.FrameHandle

	mounted bool
	running bool
	warned  bool // Canvas failure logged

	// Canvas logical size and origin in client px
	width, height    float64
	originX, originY float64
	color            render.RGB
}

// New creates an unmounted effect, enabled state taken from cfg
// A nil rng is seeded from the clock
func New(host engine.Host, cfg Config, rng *rand.Rand) *Effect {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Effect{
		host:      host,
		cfg:       cfg,
		rng:       rng,
		listeners: event.NewGroup(host.Bus()),
		color:     visual.RgbTrail,
	}
}

// Mount attaches the effect to the host, starting it when enabled
func (e *Effect) Mount() {
	if e.mounted {
		return
	}
	e.mounted = true
	if e.cfg.Enabled {
		e.start()
	}
}

// Unmount stops the effect and detaches all listeners
func (e *Effect) Unmount() {
	e.stop()
	e.mounted = false
}

// SetEnabled updates the enabled flag, starting or stopping a mounted effect
// Disabling drops all particles immediately
func (e *Effect) SetEnabled(enabled bool) {
	if e.cfg.Enabled == enabled {
		return
	}
	e.cfg.Enabled = enabled
	if !e.mounted {
		return
	}
	if enabled {
		e.start()
	} else {
		e.stop()
	}
}

// Enabled returns the current flag
func (e *Effect) Enabled() bool {
	return e.cfg.Enabled
}

// Running reports whether frames are being scheduled
func (e *Effect) Running() bool {
	return e.running
}

// State exposes the simulation for inspection
func (e *Effect) State() *State {
	return &e.state
}

// Canvas returns the backing surface, nil while stopped
func (e *Effect) Canvas() *render.Canvas {
	return e.canvas
}

// SetOrigin moves the canvas origin in client px, zero for a full-viewport overlay
func (e *Effect) SetOrigin(x, y float64) {
	e.originX, e.originY = x, y
}

func (e *Effect) start() {
	if e.running {
		return
	}
	if !e.resize() {
		// Decorative only: without a surface the effect stays idle
		return
	}

	e.listeners.On(event.PointerMove, func(ev event.Event) { e.onMove(ev, false) })
	e.listeners.On(event.TouchMove, func(ev event.Event) { e.onMove(ev, true) })
	e.listeners.On(event.Resize, func(event.Event) {
		if e.resize() && e.frame == 0 {
			e.frame = e.host.Scheduler().RequestFrame(e.tick)
		}
	})

	e.running = true
	e.frame = e.host.Scheduler().RequestFrame(e.tick)
}

func (e *Effect) stop() {
	e.host.Scheduler().CancelFrame(e.frame)
	e.frame = 0
	e.listeners.DetachAll()
	e.state.Reset()
	e.canvas = nil
	e.running = false
}

// resize sizes the backing store to the viewport times the pixel ratio, with a logical minimum
func (e *Effect) resize() bool {
	vp := e.host.Viewport()
	e.width = math.Max(e.cfg.MinWidth, vp.Width)
	e.height = math.Max(e.cfg.MinHeight, vp.Height)

	dpr := vp.PixelRatio
	if dpr <= 0 {
		dpr = 1
	}
	bw := int(math.Ceil(e.width * dpr))
	bh := int(math.Ceil(e.height * dpr))

	var err error
	if e.canvas == nil {
		e.canvas, err = e.host.NewCanvas(bw, bh)
	} else {
		err = e.canvas.Resize(bw, bh)
	}
	if err != nil {
		if !e.warned {
			log.Printf("trail: canvas unavailable, effect disabled: %v", err)
			e.warned = true
		}
		e.canvas = nil
		return false
	}
	e.canvas.SetTransform(dpr)
	return true
}

func (e *Effect) onMove(ev event.Event, touch bool) {
	x := ev.X - e.originX
	y := ev.Y - e.originY
	if !e.state.AcceptMove(&e.cfg, x, y, ev.Time, touch) {
		return
	}
	e.state.Spawn(&e.cfg, e.rng, x, y)
}

// tick runs one frame: update, draw, reschedule
// A tick dequeued before stop finds no canvas and returns
func (e *Effect) tick(time.Time) {
	if !e.running {
		return
	}
	if e.canvas == nil {
		e.frame = 0
		return
	}
	Update(&e.cfg, &e.state)
	Draw(&e.cfg, e.canvas, &e.state, e.color)
	e.frame = e.host.Scheduler().RequestFrame(e.tick)
}

// IsVisible implements render.VisibilityToggle
func (e *Effect) IsVisible() bool {
	return e.running && e.canvas != nil
}

// Render screens the visible part of the canvas over the whole frame
func (e *Effect) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if e.canvas == nil {
		return
	}
	vw, vh := ctx.ViewportSize()
	scale := e.canvas.Scale()
	sw := int(math.Min(vw*scale, float64(e.canvas.Width())))
	sh := int(math.Min(vh*scale, float64(e.canvas.Height())))
	buf.CompositeRegion(e.canvas, 0, 0, sw, sh,
		render.Rect{X: 0, Y: 0, W: ctx.ScreenWidth, H: ctx.ScreenHeight}, render.BlendScreen)
}
