package render

import (
	"github.com/lixenwraith/folio-fx/terminal"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	term       terminal.Terminal
	buffer     *RenderBuffer
	renderers  []rendererEntry
	regCount   int
	background RGB
}

// NewRenderOrchestrator creates an orchestrator with the given terminal and dimensions
func NewRenderOrchestrator(term terminal.Terminal, width, height int, background RGB) *RenderOrchestrator {
	return &RenderOrchestrator{
		term:       term,
		buffer:     NewRenderBuffer(width, height),
		renderers:  make([]rendererEntry, 0, 8),
		background: background,
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs terminal
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.term.Sync()
}

// Buffer exposes the compositor, used by tests and headless export
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// RenderFrame executes the render pipeline: clear, render all, flush
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear(o.background)

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	o.buffer.FlushToTerminal(o.term)
}
