package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/templewalk/scene"
)

// lookingForward returns a frame with the camera at the origin facing -Z
func lookingForward(width, height int) Frame {
	return Frame{
		View:            mgl64.Ident4(),
		Projection:      mgl64.Perspective(mgl64.DegToRad(35), float64(width)/float64(height), 1, 500),
		CameraDirection: mgl64.Vec3{0, 0, -1},
		Background:      0xa0a0a0,
	}
}

func TestProjectCenterAndBehind(t *testing.T) {
	f := lookingForward(80, 24)
	p := NewProjector(f, 80, 24)

	x, y, _, ok := p.Project(mgl64.Vec3{0, 0, -10})
	if !ok {
		t.Fatal("point in front not projected")
	}
	if x != 40 || y != 12 {
		t.Errorf("center projected to %d,%d, want 40,12", x, y)
	}
	if _, _, _, ok := p.Project(mgl64.Vec3{0, 0, 10}); ok {
		t.Error("point behind camera projected")
	}
	if _, _, _, ok := p.Project(mgl64.Vec3{0, 0, -1000}); ok {
		t.Error("point beyond far plane projected")
	}
}

func TestProjectAxes(t *testing.T) {
	p := NewProjector(lookingForward(80, 24), 80, 24)
	rx, _, _, _ := p.Project(mgl64.Vec3{2, 0, -10})
	_, uy, _, _ := p.Project(mgl64.Vec3{0, 2, -10})
	if rx <= 40 {
		t.Errorf("+X projected left of center: %d", rx)
	}
	if uy >= 12 {
		t.Errorf("+Y projected below center: %d", uy)
	}
}

func TestBufferClipsAndClears(t *testing.T) {
	b := NewBuffer(4, 2)
	b.Set(-1, 0, 'x', 1)
	b.Set(4, 0, 'x', 1)
	b.Text(2, 1, "abcd", 1, 2)
	if got := b.Get(3, 1).Rune; got != 'b' {
		t.Errorf("clipped text cell = %q, want 'b'", got)
	}
	b.Clear(0xa0a0a0)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			c := b.Get(x, y)
			if c.Rune != ' ' || c.Bg != 0xa0a0a0 {
				t.Fatalf("cell %d,%d not cleared: %+v", x, y, c)
			}
		}
	}
	b.Resize(10, 3)
	if w, h := b.Size(); w != 10 || h != 3 {
		t.Errorf("size %dx%d", w, h)
	}
}

type markLayer struct {
	r     rune
	order *[]rune
}

func (m markLayer) Render(f Frame, p Projector, buf *Buffer) {
	*m.order = append(*m.order, m.r)
	buf.Set(0, 0, m.r, 0xffffff)
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(10, 5)

	var order []rune
	o := NewOrchestrator(screen, 10, 5)
	o.Register(markLayer{'c', &order}, PriorityUI)
	o.Register(markLayer{'a', &order}, PriorityGround)
	o.Register(markLayer{'b', &order}, PriorityGround)
	o.RenderFrame(Frame{})

	if string(order) != "abc" {
		t.Errorf("render order %q, want \"abc\"", string(order))
	}
	if got := o.Buffer().Get(0, 0).Rune; got != 'c' {
		t.Errorf("top cell %q, want 'c'", got)
	}
}

func TestTerminalTargetDrawsScene(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	target := NewTerminalTarget(screen)
	if w, h := target.Size(); w != 80 || h != 24 {
		t.Fatalf("initial size %dx%d", w, h)
	}

	f := lookingForward(80, 24)
	f.Items = []Item{
		{Name: "model", Kind: scene.KindMesh, Shape: scene.ShapeBox, Position: mgl64.Vec3{0, 0, -30}, Extent: 3, Color: 0xc08040},
	}
	f.Status = "pos 0,0,0"
	target.Draw(f)

	cells, w, _ := screen.GetContents()
	center := cells[12*w+40]
	if len(center.Runes) == 0 || center.Runes[0] != '▓' {
		t.Errorf("center cell %q, want box glyph", string(center.Runes))
	}
	status := cells[23*w]
	if len(status.Runes) == 0 || status.Runes[0] != 'p' {
		t.Errorf("status cell %q, want 'p'", string(status.Runes))
	}

	target.Resize(100, 30)
	if w, h := target.Size(); w != 100 || h != 30 {
		t.Errorf("resized to %dx%d", w, h)
	}
}

func TestPanelLayerWritesLines(t *testing.T) {
	buf := NewBuffer(80, 24)
	f := lookingForward(80, 24)
	f.Blocks = []TextBlock{{
		Corners: [4]mgl64.Vec3{
			{-3, 1, -10}, {3, 1, -10}, {3, -1, -10}, {-3, -1, -10},
		},
		Lines: []string{"Please Take off your", "shoes."},
		Color: ColorText,
	}}
	PanelLayer{}.Render(f, NewProjector(f, 80, 24), buf)

	found := false
	for y := 0; y < 24 && !found; y++ {
		for x := 0; x < 80; x++ {
			if buf.Get(x, y).Rune == 'P' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("panel text not drawn")
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(800, 600)
	if _, ok := r.Last(); ok {
		t.Error("Last on empty recorder")
	}
	r.Resize(1920, 1080)
	r.Draw(Frame{Status: "a"})
	f, ok := r.Last()
	if !ok || f.Status != "a" {
		t.Errorf("Last = %+v, %v", f, ok)
	}
	if w, h := r.Size(); w != 1920 || h != 1080 {
		t.Errorf("size %dx%d", w, h)
	}
}

func TestShade(t *testing.T) {
	if got := Shade(0xffffff, 0.5); got != 0x7f7f7f {
		t.Errorf("Shade = %06x", got)
	}
	if got := Shade(0x102030, 2); got != 0x102030 {
		t.Errorf("clamped Shade = %06x", got)
	}
}
