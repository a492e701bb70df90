// Package viewport keeps camera projection and render target in step with the host surface
package viewport

import (
	"github.com/lixenwraith/templewalk/render"
	"github.com/lixenwraith/templewalk/scene"
)

// Composer is the frame composition entry point
type Composer interface {
	Compose() bool
}

// Reconciler applies surface size changes
// The camera must exist before the resize listener is registered
type Reconciler struct {
	camera   *scene.Camera
	target   render.Target
	composer Composer

	width, height int
}

// New creates a reconciler, camera may be nil until SetCamera
func New(cam *scene.Camera, target render.Target, composer Composer) *Reconciler {
	return &Reconciler{camera: cam, target: target, composer: composer}
}

// SetCamera replaces the camera whose projection follows the surface
func (r *Reconciler) SetCamera(cam *scene.Camera) {
	r.camera = cam
}

// Resize sets aspect to width/height, refreshes projection, resizes the target
// and renders once so the new size is visible without waiting for the next frame
// Ignored with no camera or a non-positive size, leaving all state untouched
func (r *Reconciler) Resize(width, height int) bool {
	if r.camera == nil || r.target == nil {
		return false
	}
	if width <= 0 || height <= 0 {
		return false
	}
	r.camera.Aspect = float64(width) / float64(height)
	r.camera.UpdateProjection()
	r.target.Resize(width, height)
	r.width, r.height = width, height
	if r.composer != nil {
		r.composer.Compose()
	}
	return true
}

// Size returns the last applied dimensions
func (r *Reconciler) Size() (int, int) {
	return r.width, r.height
}
