package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Kind classifies a node for rendering and lookup
type Kind uint8

const (
	KindGroup Kind = iota
	KindRoot
	KindCamera
	KindLight
	KindMesh
	KindPanel
	KindText
	KindController
)

var kindNames = [...]string{
	KindGroup:      "group",
	KindRoot:       "root",
	KindCamera:     "camera",
	KindLight:      "light",
	KindMesh:       "mesh",
	KindPanel:      "panel",
	KindText:       "text",
	KindController: "controller",
}

// Shape hints how a renderer draws a node
type Shape uint8

const (
	ShapePoint Shape = iota
	ShapeBox
	ShapePlane
)

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Node is a transform in the scene tree
// Position, Rotation and Scale are relative to the parent
type Node struct {
	ID   uuid.UUID
	Name string
	Kind Kind

	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3

	// Shape and Extent (half-size, before scale) are renderer hints
	Shape  Shape
	Extent float64
	// Color is a 0xRRGGBB hint used by renderers
	Color uint32

	parent   *Node
	children []*Node
}

// NewNode creates a detached node with identity transform
func NewNode(name string, kind Kind) *Node {
	return &Node{
		ID:       uuid.New(),
		Name:     name,
		Kind:     kind,
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// Parent returns the owning node, nil when detached or root
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the child list in insertion order
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount returns number of direct children
func (n *Node) ChildCount() int {
	return len(n.children)
}

// LocalMatrix composes translate * rotate * scale
func (n *Node) LocalMatrix() mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	s := mgl64.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z())
	return t.Mul4(n.Rotation.Mat4()).Mul4(s)
}

// WorldMatrix walks parents up to the root
func (n *Node) WorldMatrix() mgl64.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// WorldPosition returns the node origin in world space
func (n *Node) WorldPosition() mgl64.Vec3 {
	return n.WorldMatrix().Col(3).Vec3()
}

// WorldDirection returns the world-space unit vector of the node's local -Z axis
// Zero vector if the transform collapses the axis
func (n *Node) WorldDirection() mgl64.Vec3 {
	d := n.WorldMatrix().Mul4x1(mgl64.Vec4{0, 0, -1, 0}).Vec3()
	if d.Len() == 0 {
		return mgl64.Vec3{}
	}
	return d.Normalize()
}

// hasAncestor reports whether a is n or one of its parents
func (n *Node) hasAncestor(a *Node) bool {
	for p := n; p != nil; p = p.parent {
		if p == a {
			return true
		}
	}
	return false
}

// Attach links child under parent without a graph, used to assemble detached subtrees
func Attach(parent, child *Node) error {
	if parent == nil || child == nil {
		return ErrNilNode
	}
	if child.parent != nil {
		return ErrAlreadyAttached
	}
	if parent.hasAncestor(child) {
		return ErrCycle
	}
	child.parent = parent
	parent.children = append(parent.children, child)
	return nil
}

// detach unlinks n from its parent preserving sibling order
func (n *Node) detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			copy(p.children[i:], p.children[i+1:])
			p.children[len(p.children)-1] = nil
			p.children = p.children[:len(p.children)-1]
			break
		}
	}
	n.parent = nil
}
