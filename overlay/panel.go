// Package overlay builds the static world-anchored information panel and lays out its text
package overlay

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/templewalk/render"
	"github.com/lixenwraith/templewalk/scene"
)

const (
	PanelName = "panel"
	TextName  = "panel-text"
)

// PanelDef is the fixed geometry and content of a panel
type PanelDef struct {
	Width     float64
	Height    float64
	Padding   float64
	Position  mgl64.Vec3
	RotationX float64 // radians about the X axis
	Text      string
	FontSize  float64
}

// DefaultPanel returns the shoe notice panel
func DefaultPanel() PanelDef {
	return PanelDef{
		Width:     1.2,
		Height:    0.5,
		Padding:   0.05,
		Position:  mgl64.Vec3{0, 2, -2},
		RotationX: -0.3,
		Text:      "Please Take off your shoes.",
		FontSize:  0.099,
	}
}

// Panel is a built panel node and its single text child
// Never mutated after Build
type Panel struct {
	Node *scene.Node
	Text *scene.Node
	def  PanelDef
}

// Def returns the panel definition
func (p *Panel) Def() PanelDef {
	return p.def
}

// Build assembles the panel subtree and inserts it under the root
// Insertion is the only side effect
func Build(g *scene.Graph, def PanelDef) (*Panel, error) {
	node := scene.NewNode(PanelName, scene.KindPanel)
	node.Position = def.Position
	node.Rotation = mgl64.QuatRotate(def.RotationX, mgl64.Vec3{1, 0, 0})
	node.Extent = def.Width / 2
	node.Color = render.ColorPanel

	text := scene.NewNode(TextName, scene.KindText)
	if err := scene.Attach(node, text); err != nil {
		return nil, fmt.Errorf("attach panel text: %w", err)
	}
	if err := g.AddNode(nil, node); err != nil {
		return nil, fmt.Errorf("add panel: %w", err)
	}
	return &Panel{Node: node, Text: text, def: def}, nil
}
