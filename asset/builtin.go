package asset

import (
	"context"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/templewalk/scene"
)

// Builtin produces a small colonnade in model units, used when no model file is configured
type Builtin struct{}

func (Builtin) Load(ctx context.Context, _ string) (*scene.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	root := scene.NewNode("temple", scene.KindGroup)

	hall := scene.NewNode("hall", scene.KindMesh)
	hall.Shape = scene.ShapeBox
	hall.Extent = 600
	hall.Position = mgl64.Vec3{0, 1200, 0}
	hall.Color = 0xb04030
	if err := scene.Attach(root, hall); err != nil {
		return nil, err
	}

	for i, x := range []float64{-1500, -500, 500, 1500} {
		for _, z := range []float64{-800, 800} {
			p := scene.NewNode("pillar", scene.KindMesh)
			p.Shape = scene.ShapeBox
			p.Extent = 150
			p.Position = mgl64.Vec3{x, 1300, z}
			p.Color = 0xd8d0c0
			if i%2 == 1 {
				p.Color = 0xc8c0b0
			}
			if err := scene.Attach(root, p); err != nil {
				return nil, err
			}
		}
	}
	return root, nil
}
