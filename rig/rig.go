// Package rig provides the movable anchor that carries the camera
// Where the viewer is lives on the rig, where the viewer looks lives on the camera
package rig

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/templewalk/scene"
)

// NodeName is the name the rig node is registered under
const NodeName = "dolly"

var ErrNilCamera = errors.New("rig: nil camera")

// Rig is a position anchor owning the camera node
// Mutated only by locomotion ticks and discrete key steps
type Rig struct {
	graph  *scene.Graph
	node   *scene.Node
	camera *scene.Camera
}

// New creates the rig node at initialPosition and inserts it under the root
func New(g *scene.Graph, initialPosition mgl64.Vec3) (*Rig, error) {
	node := scene.NewNode(NodeName, scene.KindGroup)
	node.Position = initialPosition
	if err := g.AddNode(nil, node); err != nil {
		return nil, fmt.Errorf("add rig node: %w", err)
	}
	return &Rig{graph: g, node: node}, nil
}

// AttachCamera makes the rig the sole parent of the camera
// The camera keeps its local transform, now relative to the rig
func (r *Rig) AttachCamera(cam *scene.Camera) error {
	if cam == nil {
		return ErrNilCamera
	}
	if err := r.graph.Reparent(cam.Node, r.node); err != nil {
		return fmt.Errorf("attach camera: %w", err)
	}
	r.camera = cam
	return nil
}

// Translate adds delta to the rig position, orientation is never touched
func (r *Rig) Translate(delta mgl64.Vec3) {
	r.node.Position = r.node.Position.Add(delta)
}

// Position returns the rig position in parent space
func (r *Rig) Position() mgl64.Vec3 {
	return r.node.Position
}

// Camera returns the attached camera, nil before AttachCamera
func (r *Rig) Camera() *scene.Camera {
	return r.camera
}

// Node returns the underlying scene node
func (r *Rig) Node() *scene.Node {
	return r.node
}

func (r *Rig) WorldPosition() mgl64.Vec3 {
	return r.node.WorldPosition()
}

// WorldDirection is the attached camera's facing, the rig's own -Z before AttachCamera
func (r *Rig) WorldDirection() mgl64.Vec3 {
	if r.camera != nil {
		return r.camera.WorldDirection()
	}
	return r.node.WorldDirection()
}

var _ scene.Facing = (*Rig)(nil)
