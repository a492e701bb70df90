// Package compose turns the scene graph into render frames
package compose

import (
	"math"

	"github.com/lixenwraith/templewalk/overlay"
	"github.com/lixenwraith/templewalk/render"
	"github.com/lixenwraith/templewalk/scene"
)

// Composer renders the current scene from the active camera once per call
// Runs on the loop goroutine, reads scene state and never mutates input state
type Composer struct {
	graph  *scene.Graph
	layout *overlay.Layout
	target render.Target

	camera *scene.Camera
	status func() string

	frames uint64
}

// New creates a composer drawing into target, layout may be nil
func New(g *scene.Graph, layout *overlay.Layout, target render.Target) *Composer {
	return &Composer{graph: g, layout: layout, target: target}
}

// SetCamera selects the active camera
func (c *Composer) SetCamera(cam *scene.Camera) {
	c.camera = cam
}

// Camera returns the active camera, nil before SetCamera
func (c *Composer) Camera() *scene.Camera {
	return c.camera
}

// SetStatus installs the HUD line provider
func (c *Composer) SetStatus(fn func() string) {
	c.status = fn
}

// Compose updates overlay layout then draws one frame
// Returns false without drawing when no camera is set
func (c *Composer) Compose() bool {
	if c.camera == nil || c.target == nil {
		return false
	}
	if c.layout != nil {
		c.layout.Update()
	}
	c.target.Draw(c.Snapshot())
	c.frames++
	return true
}

// Snapshot builds the frame for the current state without drawing it
func (c *Composer) Snapshot() render.Frame {
	f := render.Frame{
		View:            c.camera.View(),
		Projection:      c.camera.Projection(),
		CameraPosition:  c.camera.WorldPosition(),
		CameraDirection: c.camera.WorldDirection(),
		Background:      c.graph.Background,
	}
	c.graph.Walk(func(n *scene.Node, _ int) bool {
		if it, ok := itemFor(n); ok {
			f.Items = append(f.Items, it)
		}
		return true
	})
	if c.layout != nil {
		f.Blocks = c.layout.Blocks()
	}
	if c.status != nil {
		f.Status = c.status()
	}
	return f
}

// Frames returns the number of frames drawn
func (c *Composer) Frames() uint64 {
	return c.frames
}

// itemFor resolves a drawable node, structural nodes and panels are skipped
func itemFor(n *scene.Node) (render.Item, bool) {
	switch n.Kind {
	case scene.KindRoot, scene.KindGroup, scene.KindCamera, scene.KindPanel, scene.KindText:
		return render.Item{}, false
	}
	m := n.WorldMatrix()
	scale := math.Max(m.Col(0).Vec3().Len(), math.Max(m.Col(1).Vec3().Len(), m.Col(2).Vec3().Len()))
	return render.Item{
		Name:     n.Name,
		Kind:     n.Kind,
		Shape:    n.Shape,
		Position: m.Col(3).Vec3(),
		Extent:   n.Extent * scale,
		Color:    n.Color,
	}, true
}
