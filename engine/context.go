package engine

import (
	"fmt"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/templewalk/asset"
	"github.com/lixenwraith/templewalk/compose"
	"github.com/lixenwraith/templewalk/config"
	"github.com/lixenwraith/templewalk/event"
	"github.com/lixenwraith/templewalk/input"
	"github.com/lixenwraith/templewalk/locomotion"
	"github.com/lixenwraith/templewalk/orbit"
	"github.com/lixenwraith/templewalk/overlay"
	"github.com/lixenwraith/templewalk/render"
	"github.com/lixenwraith/templewalk/rig"
	"github.com/lixenwraith/templewalk/scene"
	"github.com/lixenwraith/templewalk/session"
	"github.com/lixenwraith/templewalk/status"
	"github.com/lixenwraith/templewalk/viewport"
)

// GlideCue is notified when continuous motion starts or stops
type GlideCue interface {
	SetGliding(active bool)
}

// Context holds every collaborator of one running scene
// All fields are owned by the loop goroutine except Queue, which producers push into
type Context struct {
	Config config.Config
	Queue  *event.Queue
	Time   *TimeProvider
	Stats  *status.Registry

	Graph  *scene.Graph
	Camera *scene.Camera
	Rig    *rig.Rig

	Keys    *input.KeyTable
	Tracker *input.Tracker
	Glider  *locomotion.Glider
	Orbit   *orbit.Controls
	Session *session.Emulated

	Target   render.Target
	Layout   *overlay.Layout
	Panel    *overlay.Panel
	Composer *compose.Composer
	Viewport *viewport.Reconciler

	Placement asset.Placement
	// Model is the loaded model root, nil until the asset arrives
	Model *scene.Node
	// Cue is optional, set before Build
	Cue GlideCue

	built bool
}

// NewContext creates the collaborators with nothing bound
// Events dispatched before Build are safe no-ops
func NewContext(cfg config.Config, target render.Target) *Context {
	g := scene.NewGraph()
	g.Background = cfg.Scene.Background

	tracker := input.NewTracker(cfg.Locomotion.KeyStep)
	layout := overlay.NewLayout()
	composer := compose.New(g, layout, target)

	return &Context{
		Config:   cfg,
		Queue:    event.NewQueue(),
		Time:     NewTimeProvider(),
		Stats:    status.NewRegistry(),
		Graph:    g,
		Keys:     input.DefaultKeyTable(),
		Tracker:  tracker,
		Glider:   locomotion.NewGlider(tracker, cfg.Locomotion.GlideStep),
		Session:  session.NewEmulated(1),
		Target:   target,
		Layout:   layout,
		Composer: composer,
		Viewport: viewport.New(nil, target, composer),
		Placement: asset.Placement{
			Name:   cfg.Model.Name,
			Scale:  cfg.Model.Scale,
			Offset: mgl64.Vec3(cfg.Model.Offset),
		},
	}
}

// Build assembles the scene in startup order
// The camera exists before the viewport starts reconciling, the rig exists before input is bound
func (c *Context) Build() error {
	if c.built {
		return nil
	}

	if err := c.buildCamera(); err != nil {
		return err
	}
	if err := c.buildEnvironment(); err != nil {
		return err
	}
	c.buildOrbit()
	if err := c.buildControllers(); err != nil {
		return err
	}
	if err := c.buildRig(); err != nil {
		return err
	}
	if err := c.buildPanel(); err != nil {
		return err
	}

	if c.Cue != nil {
		c.Tracker.OnMotionChange(c.Cue.SetGliding)
	}
	c.Composer.SetStatus(c.Status)
	c.built = true
	log.Printf("engine: scene built with %d nodes", c.Graph.Len())
	return nil
}

func (c *Context) buildCamera() error {
	cc := c.Config.Camera
	aspect := 1.0
	if w, h := c.Target.Size(); w > 0 && h > 0 {
		aspect = float64(w) / float64(h)
	}
	cam := scene.NewCamera("camera", cc.FOV, aspect, cc.Near, cc.Far)
	cam.Position = mgl64.Vec3(cc.Position)
	if err := c.Graph.AddNode(nil, cam.Node); err != nil {
		return fmt.Errorf("add camera: %w", err)
	}
	c.Camera = cam
	c.Composer.SetCamera(cam)
	c.Viewport.SetCamera(cam)
	return nil
}

func (c *Context) buildEnvironment() error {
	sc := c.Config.Scene

	hemi := scene.NewNode("hemisphere-light", scene.KindLight)
	hemi.Position = mgl64.Vec3{0, 100, 0}
	hemi.Color = render.ColorLight

	dir := scene.NewNode("directional-light", scene.KindLight)
	dir.Position = mgl64.Vec3{0, 40, 50}
	dir.Color = render.ColorLight

	ground := scene.NewNode("ground", scene.KindMesh)
	ground.Shape = scene.ShapePlane
	ground.Rotation = mgl64.QuatRotate(-math.Pi/2, mgl64.Vec3{1, 0, 0})
	ground.Position = mgl64.Vec3{0, sc.GroundY, 0}
	ground.Extent = sc.GroundSize / 2
	ground.Color = sc.GroundColor

	for _, n := range []*scene.Node{hemi, dir, ground} {
		if err := c.Graph.AddNode(nil, n); err != nil {
			return fmt.Errorf("add %s: %w", n.Name, err)
		}
	}
	return nil
}

func (c *Context) buildOrbit() {
	if !c.Config.Camera.OrbitEnabled {
		return
	}
	c.Orbit = orbit.New(c.Camera, mgl64.Vec3(c.Config.Camera.OrbitTarget))
	c.Orbit.OnChange(func() { c.Composer.Compose() })
	c.Orbit.Update()
}

func (c *Context) buildControllers() error {
	for _, ctrl := range c.Session.Controllers() {
		if err := c.Graph.AddNode(nil, ctrl.Grip); err != nil {
			return fmt.Errorf("add controller grip: %w", err)
		}
		if err := c.Graph.AddNode(nil, ctrl.Node); err != nil {
			return fmt.Errorf("add controller: %w", err)
		}
		ctrl.OnSelectStart(c.Tracker.SelectStart)
		ctrl.OnSelectEnd(c.Tracker.SelectEnd)
	}
	c.Session.OnActiveChange(func(active bool) {
		log.Printf("engine: display session active=%v", active)
	})
	return nil
}

func (c *Context) buildRig() error {
	r, err := rig.New(c.Graph, mgl64.Vec3(c.Config.Camera.RigPosition))
	if err != nil {
		return err
	}
	if err := r.AttachCamera(c.Camera); err != nil {
		return err
	}
	c.Rig = r
	c.Tracker.Bind(r)
	c.Glider.Bind(r)
	return nil
}

func (c *Context) buildPanel() error {
	pc := c.Config.Panel
	p, err := overlay.Build(c.Graph, overlay.PanelDef{
		Width:     pc.Width,
		Height:    pc.Height,
		Padding:   pc.Padding,
		Position:  mgl64.Vec3(pc.Position),
		RotationX: pc.RotationX,
		Text:      pc.Text,
		FontSize:  pc.FontSize,
	})
	if err != nil {
		return err
	}
	c.Panel = p
	c.Layout.Track(p)
	return nil
}

// InsertModel places a loaded model root and adds it to the scene, only the first model is kept
func (c *Context) InsertModel(node *scene.Node) bool {
	if node == nil {
		return false
	}
	if c.Model != nil {
		log.Printf("engine: model already loaded, ignoring %q", node.Name)
		return false
	}
	c.Placement.Apply(node)
	if err := c.Graph.AddNode(nil, node); err != nil {
		log.Printf("engine: insert model: %v", err)
		return false
	}
	c.Model = node
	log.Printf("engine: model %q inserted", node.Name)
	return true
}

// Status is the HUD line
func (c *Context) Status() string {
	pos := "-"
	if c.Rig != nil {
		p := c.Rig.Position()
		pos = fmt.Sprintf("%.1f %.1f %.1f", p.X(), p.Y(), p.Z())
	}
	glide := "off"
	if c.Tracker.ContinuousMotion() {
		glide = "on"
	}
	sess := "off"
	if c.Session.Active() {
		sess = "on"
	}
	return fmt.Sprintf(" rig %s | glide %s | session %s | arrows step  v session  esc quit", pos, glide, sess)
}
