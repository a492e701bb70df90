// Package locomotion moves the rig along the camera's facing while continuous motion is held
package locomotion

import (
	"github.com/lixenwraith/templewalk/rig"
)

// MotionSource exposes the continuous-motion flag
type MotionSource interface {
	ContinuousMotion() bool
}

// Glider applies one fixed step per tick
// Steps are piecewise linear, no interpolation between ticks
type Glider struct {
	motion MotionSource
	rig    *rig.Rig
	step   float64

	moves uint64
}

// NewGlider creates a glider reading motion from src
func NewGlider(src MotionSource, step float64) *Glider {
	return &Glider{motion: src, step: step}
}

// Bind attaches the rig to move
func (g *Glider) Bind(r *rig.Rig) {
	g.rig = r
}

// Tick advances the rig by step along the camera's world facing
// No-op when idle or when rig/camera are not yet initialized
func (g *Glider) Tick() bool {
	if g.motion == nil || !g.motion.ContinuousMotion() {
		return false
	}
	if g.rig == nil {
		return false
	}
	cam := g.rig.Camera()
	if cam == nil {
		return false
	}
	dir := cam.WorldDirection()
	if dir.Len() == 0 {
		return false
	}
	g.rig.Translate(dir.Mul(g.step))
	g.moves++
	return true
}

// Moves returns the number of ticks that changed the rig position
func (g *Glider) Moves() uint64 {
	return g.moves
}
