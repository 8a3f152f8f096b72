package engine

import (
	"github.com/lixenwraith/folio-fx/event"
	"github.com/lixenwraith/folio-fx/render"
)

// Viewport is the host's visible area in client pixels
type Viewport struct {
	Width      float64
	Height     float64
	PixelRatio float64 // Backing pixels per client pixel
}

// Host is the environment components mount into
type Host interface {
	Bus() *event.Bus
	Scheduler() *FrameScheduler
	Viewport() Viewport
	NewCanvas(width, height int) (*render.Canvas, error)
	Clock() TimeProvider
}

// CanvasFactory allocates a backing surface
type CanvasFactory func(width, height int) (*render.Canvas, error)

// BaseHost is the in-process Host used by the TUI, the snapshot command and tests
type BaseHost struct {
	bus       *event.Bus
	scheduler *FrameScheduler
	clock     TimeProvider
	viewport  Viewport

	// CanvasFactory overrides canvas allocation, nil uses render.NewCanvas
	CanvasFactory CanvasFactory
}

// NewBaseHost creates a host with a fresh bus and scheduler
func NewBaseHost(clock TimeProvider, vp Viewport) *BaseHost {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if vp.PixelRatio <= 0 {
		vp.PixelRatio = 1
	}
	return &BaseHost{
		bus:       event.NewBus(),
		scheduler: NewFrameScheduler(),
		clock:     clock,
		viewport:  vp,
	}
}

func (h *BaseHost) Bus() *event.Bus            { return h.bus }
func (h *BaseHost) Scheduler() *FrameScheduler { return h.scheduler }
func (h *BaseHost) Viewport() Viewport         { return h.viewport }
func (h *BaseHost) Clock() TimeProvider        { return h.clock }

// SetViewport updates the viewport, callers publish event.Resize separately
func (h *BaseHost) SetViewport(vp Viewport) {
	if vp.PixelRatio <= 0 {
		vp.PixelRatio = h.viewport.PixelRatio
	}
	h.viewport = vp
}

// NewCanvas allocates a canvas through the factory
func (h *BaseHost) NewCanvas(width, height int) (*render.Canvas, error) {
	if h.CanvasFactory != nil {
		return h.CanvasFactory(width, height)
	}
	return render.NewCanvas(width, height)
}

// Resize updates the viewport and publishes the resize to subscribers
func (h *BaseHost) Resize(width, height float64) {
	h.SetViewport(Viewport{Width: width, Height: height, PixelRatio: h.viewport.PixelRatio})
	h.bus.Publish(event.Event{
		Type:   event.Resize,
		Time:   h.clock.Now(),
		Width:  width,
		Height: height,
	})
}

// Frame dispatches queued input then runs one scheduler tick
func (h *BaseHost) Frame() int {
	h.bus.DispatchAll()
	return h.scheduler.Tick(h.clock.Now())
}
