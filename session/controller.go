// Package session models the display session and its hand controllers
package session

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/templewalk/scene"
)

// Controller is one tracked hand controller
// Node is the pointing ray space, Grip the held space
type Controller struct {
	Index int
	Node  *scene.Node
	Grip  *scene.Node

	selecting bool
	onStart   []func()
	onEnd     []func()
}

// NewController creates the controller and grip nodes, both detached
func NewController(index int) *Controller {
	node := scene.NewNode(fmt.Sprintf("controller-%d", index), scene.KindController)
	node.Color = 0x3090ff
	grip := scene.NewNode(fmt.Sprintf("controller-grip-%d", index), scene.KindController)
	grip.Color = 0x2060c0
	// held at waist height, slightly off center per hand
	offset := mgl64.Vec3{0.2 - 0.4*float64(index%2), 1, -0.3}
	node.Position = offset
	grip.Position = offset
	return &Controller{Index: index, Node: node, Grip: grip}
}

// OnSelectStart registers a listener for trigger press
func (c *Controller) OnSelectStart(fn func()) {
	c.onStart = append(c.onStart, fn)
}

// OnSelectEnd registers a listener for trigger release
func (c *Controller) OnSelectEnd(fn func()) {
	c.onEnd = append(c.onEnd, fn)
}

// SelectStart emits select-start to listeners
func (c *Controller) SelectStart() {
	c.selecting = true
	for _, fn := range c.onStart {
		fn()
	}
}

// SelectEnd emits select-end to listeners
func (c *Controller) SelectEnd() {
	c.selecting = false
	for _, fn := range c.onEnd {
		fn()
	}
}

// Selecting reports whether the trigger is held
func (c *Controller) Selecting() bool {
	return c.selecting
}

func (c *Controller) WorldPosition() mgl64.Vec3 {
	return c.Node.WorldPosition()
}

func (c *Controller) WorldDirection() mgl64.Vec3 {
	return c.Node.WorldDirection()
}

var _ scene.Facing = (*Controller)(nil)
