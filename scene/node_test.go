package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func TestWorldPositionComposesParents(t *testing.T) {
	g := NewGraph()
	rig := NewNode("dolly", KindGroup)
	rig.Position = mgl64.Vec3{1, 2, 3}
	cam := NewNode("camera", KindCamera)
	cam.Position = mgl64.Vec3{0, 40, 0}
	_ = g.AddNode(nil, rig)
	_ = g.AddNode(rig, cam)

	got := cam.WorldPosition()
	want := mgl64.Vec3{1, 42, 3}
	if !vecNear(got, want, eps) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWorldDirection(t *testing.T) {
	tests := []struct {
		name     string
		rotation mgl64.Quat
		scale    mgl64.Vec3
		want     mgl64.Vec3
	}{
		{"identity looks down -Z", mgl64.QuatIdent(), mgl64.Vec3{1, 1, 1}, mgl64.Vec3{0, 0, -1}},
		{"yaw left", mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}), mgl64.Vec3{1, 1, 1}, mgl64.Vec3{-1, 0, 0}},
		{"scale does not change length", mgl64.QuatIdent(), mgl64.Vec3{0.01, 0.01, 0.01}, mgl64.Vec3{0, 0, -1}},
		{"collapsed axis", mgl64.QuatIdent(), mgl64.Vec3{1, 1, 0}, mgl64.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNode("n", KindCamera)
			n.Rotation = tt.rotation
			n.Scale = tt.scale
			got := n.WorldDirection()
			if !vecNear(got, tt.want, eps) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirectionIgnoresTranslation(t *testing.T) {
	rig := NewNode("dolly", KindGroup)
	cam := NewNode("camera", KindCamera)
	_ = Attach(rig, cam)
	before := cam.WorldDirection()
	rig.Position = rig.Position.Add(mgl64.Vec3{5, -3, 7})
	after := cam.WorldDirection()
	if !vecNear(before, after, eps) {
		t.Errorf("direction changed with translation: %v -> %v", before, after)
	}
}

func TestCameraProjectionCached(t *testing.T) {
	c := NewCamera("camera", 35, 800.0/600.0, 1, 500)
	p := c.Projection()
	c.Aspect = 1920.0 / 1080.0
	if c.Projection() != p {
		t.Fatal("projection changed before UpdateProjection")
	}
	c.UpdateProjection()
	want := mgl64.Perspective(mgl64.DegToRad(35), 1920.0/1080.0, 1, 500)
	if !c.Projection().ApproxEqualThreshold(want, eps) {
		t.Errorf("got %v, want %v", c.Projection(), want)
	}
}

func TestKindString(t *testing.T) {
	if KindController.String() != "controller" {
		t.Errorf("got %q", KindController.String())
	}
	if Kind(200).String() != "unknown" {
		t.Errorf("got %q", Kind(200).String())
	}
}

// vecNear compares componentwise with an absolute tolerance
func vecNear(a, b mgl64.Vec3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}
