package render

import (
	"github.com/gdamore/tcell/v2"
)

// TerminalTarget rasterizes frames onto a tcell screen
type TerminalTarget struct {
	orch          *Orchestrator
	width, height int
}

// NewTerminalTarget creates a target sized to the screen with the default layers
func NewTerminalTarget(screen tcell.Screen) *TerminalTarget {
	w, h := screen.Size()
	orch := NewOrchestrator(screen, w, h)
	orch.Register(PlaneLayer{}, PriorityGround)
	orch.Register(SolidLayer{}, PriorityEntities)
	orch.Register(PanelLayer{}, PriorityPanels)
	orch.Register(StatusLayer{}, PriorityUI)
	return &TerminalTarget{orch: orch, width: w, height: h}
}

func (t *TerminalTarget) Resize(width, height int) {
	t.width, t.height = width, height
	t.orch.Resize(width, height)
}

func (t *TerminalTarget) Size() (int, int) {
	return t.width, t.height
}

func (t *TerminalTarget) Draw(f Frame) {
	t.orch.RenderFrame(f)
}

var _ Target = (*TerminalTarget)(nil)
