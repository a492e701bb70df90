package orbit

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pixil98/go-testutil"

	"github.com/lixenwraith/templewalk/scene"
)

func near(a, b mgl64.Vec3) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-4 {
			return false
		}
	}
	return true
}

func TestUpdateAimsAtTarget(t *testing.T) {
	cam := scene.NewCamera("camera", 35, 1, 1, 500)
	cam.Position = mgl64.Vec3{0, 40, 0}
	c := New(cam, mgl64.Vec3{0, 20, 0})

	if !c.Update() {
		t.Fatal("initial Update reported no change")
	}
	if !near(cam.Position, mgl64.Vec3{0, 40, 0}) {
		t.Errorf("position %v", cam.Position)
	}
	if !near(cam.WorldDirection(), mgl64.Vec3{0, -1, 0}) {
		t.Errorf("direction %v, want straight down", cam.WorldDirection())
	}
	if c.Update() {
		t.Error("second Update reported a change")
	}
}

func TestUpdateIsStableAtPole(t *testing.T) {
	cam := scene.NewCamera("camera", 35, 1, 1, 500)
	cam.Position = mgl64.Vec3{0, 40, 0}
	c := New(cam, mgl64.Vec3{0, 20, 0})
	c.Update()
	settledAt := cam.Position

	changes := 0
	c.OnChange(func() { changes++ })
	for i := 0; i < 10; i++ {
		c.Update()
	}
	testutil.AssertEqual(t, "changes without input", changes, 0)
	testutil.AssertEqual(t, "position", cam.Position, settledAt)
}

func TestRotateAzimuth(t *testing.T) {
	cam := scene.NewCamera("camera", 35, 1, 1, 500)
	cam.Position = mgl64.Vec3{0, 20, 20}
	c := New(cam, mgl64.Vec3{0, 20, 0})
	c.Update()
	if !near(cam.WorldDirection(), mgl64.Vec3{0, 0, -1}) {
		t.Fatalf("direction %v", cam.WorldDirection())
	}

	changes := 0
	c.OnChange(func() { changes++ })
	c.Rotate(math.Pi/2, 0)
	c.Update()

	if !near(cam.Position, mgl64.Vec3{20, 20, 0}) {
		t.Errorf("position %v", cam.Position)
	}
	if !near(cam.WorldDirection(), mgl64.Vec3{-1, 0, 0}) {
		t.Errorf("direction %v", cam.WorldDirection())
	}
	testutil.AssertEqual(t, "changes", changes, 1)
}

func TestPolarClamp(t *testing.T) {
	cam := scene.NewCamera("camera", 35, 1, 1, 500)
	cam.Position = mgl64.Vec3{0, 0, 10}
	c := New(cam, mgl64.Vec3{})
	c.Rotate(0, -10)
	c.Update()
	if cam.Position.Y() <= 9.99 || cam.Position.Y() > 10 {
		t.Errorf("position %v not clamped near pole", cam.Position)
	}
}

func TestZoomAndDrag(t *testing.T) {
	cam := scene.NewCamera("camera", 35, 1, 1, 500)
	cam.Position = mgl64.Vec3{0, 0, 10}
	c := New(cam, mgl64.Vec3{})
	c.Update()

	if !c.HandlePointer(0, 0, false, -1) {
		t.Fatal("wheel ignored")
	}
	if d := cam.Position.Len(); math.Abs(d-9.5) > 1e-9 {
		t.Errorf("distance %v after zoom in", d)
	}

	if c.HandlePointer(10, 10, true, 0) {
		t.Error("press without motion moved the camera")
	}
	if !c.HandlePointer(15, 10, true, 0) {
		t.Error("drag ignored")
	}
	if c.HandlePointer(20, 10, false, 0) {
		t.Error("hover moved the camera")
	}
}

func TestNilCamera(t *testing.T) {
	if New(nil, mgl64.Vec3{}).Update() {
		t.Error("Update without camera")
	}
}
