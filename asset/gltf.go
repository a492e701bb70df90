package asset

import (
	"context"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"

	"github.com/lixenwraith/templewalk/scene"
)

const meshColor uint32 = 0xc8b89a

// GLTFProvider reads .gltf and .glb files
// The model root is the first node of the default scene
type GLTFProvider struct{}

func NewGLTFProvider() *GLTFProvider {
	return &GLTFProvider{}
}

func (GLTFProvider) Load(ctx context.Context, path string) (*scene.Node, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, wrapLoad(path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sceneIdx := 0
	if doc.Scene != nil {
		sceneIdx = int(*doc.Scene)
	}
	if sceneIdx >= len(doc.Scenes) || len(doc.Scenes[sceneIdx].Nodes) == 0 {
		return nil, wrapLoad(path, ErrEmptyModel)
	}
	rootIdx := int(doc.Scenes[sceneIdx].Nodes[0])
	root, err := convertNode(doc, rootIdx, 0)
	if err != nil {
		return nil, wrapLoad(path, err)
	}
	return root, nil
}

// maxDepth bounds recursion on malformed documents with child cycles
const maxDepth = 64

func convertNode(doc *gltf.Document, idx, depth int) (*scene.Node, error) {
	if idx < 0 || idx >= len(doc.Nodes) || depth > maxDepth {
		return nil, ErrEmptyModel
	}
	src := doc.Nodes[idx]

	kind := scene.KindGroup
	if src.Mesh != nil {
		kind = scene.KindMesh
	}
	n := scene.NewNode(src.Name, kind)
	n.Position = vec3(src.TranslationOrDefault())

	// Rotation is xyzw in the file
	r := src.RotationOrDefault()
	n.Rotation = mgl64.Quat{W: float64(r[3]), V: mgl64.Vec3{float64(r[0]), float64(r[1]), float64(r[2])}}.Normalize()
	n.Scale = vec3(src.ScaleOrDefault())

	if src.Mesh != nil {
		n.Shape = scene.ShapeBox
		n.Extent = meshExtent(doc, int(*src.Mesh))
		n.Color = meshColor
	}

	for _, ci := range src.Children {
		child, err := convertNode(doc, int(ci), depth+1)
		if err != nil {
			return nil, err
		}
		if err := scene.Attach(n, child); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// meshExtent is the largest half-size of the POSITION bounds over all primitives
func meshExtent(doc *gltf.Document, meshIdx int) float64 {
	if meshIdx < 0 || meshIdx >= len(doc.Meshes) {
		return 0
	}
	extent := 0.0
	for _, prim := range doc.Meshes[meshIdx].Primitives {
		ai, ok := prim.Attributes[gltf.POSITION]
		if !ok || int(ai) >= len(doc.Accessors) {
			continue
		}
		acc := doc.Accessors[ai]
		if len(acc.Min) < 3 || len(acc.Max) < 3 {
			continue
		}
		for i := 0; i < 3; i++ {
			extent = math.Max(extent, float64(acc.Max[i]-acc.Min[i])/2)
		}
	}
	return extent
}

func vec3(v [3]float32) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}
