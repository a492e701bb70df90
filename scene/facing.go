package scene

import "github.com/go-gl/mathgl/mgl64"

// Facing is anything with a world position and a forward direction
// Implemented by Node and by types embedding or wrapping one
type Facing interface {
	WorldPosition() mgl64.Vec3
	WorldDirection() mgl64.Vec3
}

var (
	_ Facing = (*Node)(nil)
	_ Facing = (*Camera)(nil)
)
