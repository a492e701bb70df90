package render

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Projector maps world points to cell coordinates for one frame
type Projector struct {
	viewProj mgl64.Mat4
	width    int
	height   int
}

// NewProjector precomputes projection * view for the frame
func NewProjector(f Frame, width, height int) Projector {
	return Projector{
		viewProj: f.Projection.Mul4(f.View),
		width:    width,
		height:   height,
	}
}

// Project returns the cell for a world point and its NDC depth in [-1, 1]
// ok is false for points behind the camera or outside the clip depth range
// x/y may fall outside the surface, callers clip
func (p Projector) Project(world mgl64.Vec3) (x, y int, depth float64, ok bool) {
	clip := p.viewProj.Mul4x1(world.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, 0, false
	}
	x = int((ndc.X() + 1) / 2 * float64(p.width))
	y = int((1 - ndc.Y()) / 2 * float64(p.height))
	return x, y, ndc.Z(), true
}

// Inside reports whether a cell is on the surface
func (p Projector) Inside(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}
