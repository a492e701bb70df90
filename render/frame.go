package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/templewalk/scene"
)

// Frame is an immutable snapshot of everything drawn in one refresh, passed by value
// Two frames composed from the same state compare equal with reflect.DeepEqual
type Frame struct {
	View       mgl64.Mat4
	Projection mgl64.Mat4

	// CameraPosition and CameraDirection are in world space
	CameraPosition  mgl64.Vec3
	CameraDirection mgl64.Vec3

	Background uint32 // 0xRRGGBB

	Items  []Item
	Blocks []TextBlock

	// Status is the single-line HUD text, empty hides the line
	Status string
}

// Item is one drawable node resolved to world space
type Item struct {
	Name     string
	Kind     scene.Kind
	Shape    scene.Shape
	Position mgl64.Vec3
	Extent   float64 // world half-size, scale applied
	Color    uint32
}

// TextBlock is a laid out world-anchored panel
type TextBlock struct {
	// Corners in world space: top-left, top-right, bottom-right, bottom-left
	Corners [4]mgl64.Vec3
	Lines   []string
	Color   uint32
}
