package render

import (
	"github.com/gdamore/tcell/v2"
)

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the terminal render pipeline
type Orchestrator struct {
	screen   tcell.Screen
	buffer   *Buffer
	layers   []layerEntry
	regCount int
}

// NewOrchestrator creates an orchestrator drawing to screen with the given dimensions
func NewOrchestrator(screen tcell.Screen, width, height int) *Orchestrator {
	return &Orchestrator{
		screen: screen,
		buffer: NewBuffer(width, height),
		layers: make([]layerEntry, 0, 8),
	}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Resize updates buffer dimensions and forces a full terminal redraw
func (o *Orchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// Buffer exposes the compositor for inspection
func (o *Orchestrator) Buffer() *Buffer {
	return o.buffer
}

// RenderFrame executes the pipeline: clear, render all layers, flush, show
func (o *Orchestrator) RenderFrame(f Frame) {
	w, h := o.buffer.Size()
	o.buffer.Clear(f.Background)

	p := NewProjector(f, w, h)
	for _, entry := range o.layers {
		entry.layer.Render(f, p, o.buffer)
	}

	o.buffer.Flush(o.screen)
}
