package scene

import "github.com/go-gl/mathgl/mgl64"

// Camera is a perspective camera node
// The projection is cached and only refreshed by UpdateProjection
type Camera struct {
	*Node

	FOV    float64 // vertical field of view, degrees
	Aspect float64
	Near   float64
	Far    float64

	projection mgl64.Mat4
}

// NewCamera creates a detached camera with an up to date projection
func NewCamera(name string, fov, aspect, near, far float64) *Camera {
	c := &Camera{
		Node:   NewNode(name, KindCamera),
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
	c.UpdateProjection()
	return c
}

// UpdateProjection recomputes the projection matrix from FOV, aspect and clip planes
func (c *Camera) UpdateProjection() {
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// Projection returns the cached projection matrix
func (c *Camera) Projection() mgl64.Mat4 {
	return c.projection
}

// View returns the world-to-camera matrix
func (c *Camera) View() mgl64.Mat4 {
	return c.WorldMatrix().Inv()
}
