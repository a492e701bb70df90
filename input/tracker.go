package input

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Mover receives discrete steps
type Mover interface {
	Translate(delta mgl64.Vec3)
}

// directionAxes are unit steps on the rig's X and Z axes
var directionAxes = map[Direction]mgl64.Vec3{
	DirLeft:  {-1, 0, 0},
	DirUp:    {0, 0, -1},
	DirRight: {1, 0, 0},
	DirDown:  {0, 0, 1},
}

// Tracker turns key presses and controller select events into movement intent
// Sole writer of the continuous-motion flag
type Tracker struct {
	mover    Mover
	stepSize float64

	continuous bool
	observers  []func(active bool)
}

// NewTracker creates a tracker with the given key step length
func NewTracker(stepSize float64) *Tracker {
	return &Tracker{stepSize: stepSize}
}

// Bind attaches the rig; events before Bind are dropped
func (t *Tracker) Bind(m Mover) {
	t.mover = m
}

// Bound reports whether a mover is attached
func (t *Tracker) Bound() bool {
	return t.mover != nil
}

// Step applies one discrete step synchronously
// Returns false for DirNone or when no rig is bound
func (t *Tracker) Step(d Direction) bool {
	axis, ok := directionAxes[d]
	if !ok || t.mover == nil {
		return false
	}
	t.mover.Translate(axis.Mul(t.stepSize))
	return true
}

// SelectStart sets continuous motion on, last event wins
func (t *Tracker) SelectStart() {
	t.setContinuous(true)
}

// SelectEnd sets continuous motion off
func (t *Tracker) SelectEnd() {
	t.setContinuous(false)
}

func (t *Tracker) setContinuous(active bool) {
	if t.mover == nil {
		return
	}
	if t.continuous == active {
		return
	}
	t.continuous = active
	for _, fn := range t.observers {
		fn(active)
	}
}

// ContinuousMotion is read by the locomotion tick
func (t *Tracker) ContinuousMotion() bool {
	return t.continuous
}

// OnMotionChange registers fn for continuous-motion transitions
func (t *Tracker) OnMotionChange(fn func(active bool)) {
	t.observers = append(t.observers, fn)
}
