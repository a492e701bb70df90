// Package orbit rotates and zooms a camera around a target point from pointer drags
package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/templewalk/scene"
)

// eps keeps the polar angle off the poles where the up vector degenerates
const eps = 1e-6

// settle is the absolute tolerance below which Update treats the transform as unchanged
const settle = 1e-9

// Controls orbits a camera in its parent's space
// Every effective change notifies listeners, which render synchronously
type Controls struct {
	camera *scene.Camera
	Target mgl64.Vec3

	// RotateSpeed is radians per pointer cell
	RotateSpeed float64
	ZoomStep    float64
	MinDistance float64
	MaxDistance float64

	pendingTheta float64
	pendingPhi   float64
	pendingScale float64

	dragging     bool
	lastX, lastY int

	onChange []func()
}

// New creates controls for cam looking at target
func New(cam *scene.Camera, target mgl64.Vec3) *Controls {
	return &Controls{
		camera:       cam,
		Target:       target,
		RotateSpeed:  0.02,
		ZoomStep:     0.95,
		MinDistance:  0,
		MaxDistance:  math.Inf(1),
		pendingScale: 1,
	}
}

// OnChange registers fn to run after Update moves the camera
func (c *Controls) OnChange(fn func()) {
	c.onChange = append(c.onChange, fn)
}

// Rotate queues an azimuth and polar change, applied by Update
func (c *Controls) Rotate(dTheta, dPhi float64) {
	c.pendingTheta += dTheta
	c.pendingPhi += dPhi
}

// Zoom queues a distance scale, below 1 moves closer
func (c *Controls) Zoom(scale float64) {
	if scale > 0 {
		c.pendingScale *= scale
	}
}

// Update applies pending rotation and zoom, then aims the camera at Target
// Returns true and notifies listeners when the camera transform changed
func (c *Controls) Update() bool {
	if c.camera == nil {
		return false
	}
	offset := c.camera.Position.Sub(c.Target)
	radius := offset.Len()
	theta := math.Atan2(offset.X(), offset.Z())
	// atan2 keeps precision near the poles where acos(y/r) does not
	phi := math.Atan2(math.Hypot(offset.X(), offset.Z()), offset.Y())

	theta += c.pendingTheta
	phi = mgl64.Clamp(phi+c.pendingPhi, eps, math.Pi-eps)
	radius = mgl64.Clamp(radius*c.pendingScale, c.MinDistance, c.MaxDistance)
	c.pendingTheta, c.pendingPhi, c.pendingScale = 0, 0, 1

	sinPhi := math.Sin(phi)
	pos := c.Target.Add(mgl64.Vec3{
		radius * sinPhi * math.Sin(theta),
		radius * math.Cos(phi),
		radius * sinPhi * math.Cos(theta),
	})
	rot := lookAt(pos, c.Target, mgl64.Vec3{0, 1, 0})

	if settled(pos, c.camera.Position) && settledQuat(rot, c.camera.Rotation) {
		return false
	}
	c.camera.Position = pos
	c.camera.Rotation = rot
	for _, fn := range c.onChange {
		fn()
	}
	return true
}

// HandlePointer turns primary-button drags into rotation and wheel into zoom
func (c *Controls) HandlePointer(x, y int, primary bool, wheel int) bool {
	moved := false
	switch {
	case primary && c.dragging:
		dx, dy := x-c.lastX, y-c.lastY
		if dx != 0 || dy != 0 {
			c.Rotate(-float64(dx)*c.RotateSpeed, -float64(dy)*c.RotateSpeed)
			moved = true
		}
	case primary:
		c.dragging = true
	default:
		c.dragging = false
	}
	c.lastX, c.lastY = x, y

	switch {
	case wheel < 0:
		c.Zoom(c.ZoomStep)
		moved = true
	case wheel > 0:
		c.Zoom(1 / c.ZoomStep)
		moved = true
	}
	if !moved {
		return false
	}
	return c.Update()
}

func settled(a, b mgl64.Vec3) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > settle {
			return false
		}
	}
	return true
}

// settledQuat treats q and -q as the same rotation
func settledQuat(a, b mgl64.Quat) bool {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return math.Abs(a.W-b.W) <= settle && settled(a.V, b.V)
}

// lookAt returns the rotation whose -Z axis points from eye to target
func lookAt(eye, target, up mgl64.Vec3) mgl64.Quat {
	z := eye.Sub(target)
	if z.Len() == 0 {
		z = mgl64.Vec3{0, 0, 1}
	}
	z = z.Normalize()
	x := up.Cross(z)
	if x.Len() == 0 {
		// up parallel to view, nudge z
		z = mgl64.Vec3{z.X() + 1e-4, z.Y(), z.Z()}.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)
	basis := mgl64.Mat4FromCols(x.Vec4(0), y.Vec4(0), z.Vec4(0), mgl64.Vec4{0, 0, 0, 1})
	return mgl64.Mat4ToQuat(basis).Normalize()
}
