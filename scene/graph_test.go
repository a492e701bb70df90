package scene

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestAddNodeDefaultsToRoot(t *testing.T) {
	g := NewGraph()
	a := NewNode("a", KindMesh)
	if err := g.AddNode(nil, a); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if a.Parent() != g.Root() {
		t.Errorf("parent = %v, want root", a.Parent())
	}
	testutil.AssertEqual(t, "len", g.Len(), 2)
}

func TestAddNodeKeepsInsertionOrder(t *testing.T) {
	g := NewGraph()
	names := []string{"camera", "hemi", "dir", "ground", "dolly"}
	for _, n := range names {
		if err := g.AddNode(nil, NewNode(n, KindGroup)); err != nil {
			t.Fatalf("AddNode(%s): %v", n, err)
		}
	}
	children := g.Root().Children()
	if len(children) != len(names) {
		t.Fatalf("got %d children, want %d", len(children), len(names))
	}
	for i, c := range children {
		if c.Name != names[i] {
			t.Errorf("child %d: got %q, want %q", i, c.Name, names[i])
		}
	}
}

func TestAddNodeRejectsDuplicates(t *testing.T) {
	g := NewGraph()
	a := NewNode("a", KindMesh)
	if err := g.AddNode(nil, a); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	err := g.AddNode(nil, a)
	if !errors.Is(err, ErrAlreadyAttached) {
		t.Fatalf("second AddNode: got %v, want ErrAlreadyAttached", err)
	}
	testutil.AssertEqual(t, "root children", g.Root().ChildCount(), 1)
}

func TestAddNodeErrors(t *testing.T) {
	g := NewGraph()
	parent := NewNode("parent", KindGroup)
	child := NewNode("child", KindGroup)
	if err := g.AddNode(parent, child); err != nil {
		t.Fatalf("detached subtree: %v", err)
	}

	tests := []struct {
		name   string
		parent *Node
		child  *Node
		want   error
	}{
		{"nil child", nil, nil, ErrNilNode},
		{"root as child", nil, g.Root(), ErrRoot},
		{"cycle", child, parent, ErrCycle},
		{"self", parent, parent, ErrCycle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.AddNode(tt.parent, tt.child); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRemoveNode(t *testing.T) {
	g := NewGraph()
	a, b, c := NewNode("a", KindMesh), NewNode("b", KindMesh), NewNode("c", KindMesh)
	for _, n := range []*Node{a, b, c} {
		if err := g.AddNode(nil, n); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.RemoveNode(b); err != nil {
		t.Fatalf("RemoveNode: %v", err)
	}
	children := g.Root().Children()
	testutil.AssertEqual(t, "count", len(children), 2)
	testutil.AssertEqual(t, "first", children[0].Name, "a")
	testutil.AssertEqual(t, "second", children[1].Name, "c")
	if b.Parent() != nil {
		t.Error("removed node still has a parent")
	}
	if err := g.RemoveNode(b); !errors.Is(err, ErrNotAttached) {
		t.Errorf("remove twice: got %v, want ErrNotAttached", err)
	}
	if err := g.RemoveNode(g.Root()); !errors.Is(err, ErrRoot) {
		t.Errorf("remove root: got %v, want ErrRoot", err)
	}
	// removed node can be added again
	if err := g.AddNode(nil, b); err != nil {
		t.Errorf("re-add: %v", err)
	}
}

func TestReparentMovesSoleOwnership(t *testing.T) {
	g := NewGraph()
	cam := NewNode("camera", KindCamera)
	rig := NewNode("dolly", KindGroup)
	if err := g.AddNode(nil, cam); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode(nil, rig); err != nil {
		t.Fatal(err)
	}
	if err := g.Reparent(cam, rig); err != nil {
		t.Fatalf("Reparent: %v", err)
	}
	if cam.Parent() != rig {
		t.Errorf("parent = %v, want rig", cam.Parent())
	}
	for _, c := range g.Root().Children() {
		if c == cam {
			t.Error("camera still parented to root")
		}
	}
	if err := g.Reparent(rig, cam); !errors.Is(err, ErrCycle) {
		t.Errorf("cyclic reparent: got %v, want ErrCycle", err)
	}
}

func TestFindByName(t *testing.T) {
	g := NewGraph()
	rig := NewNode("dolly", KindGroup)
	cam := NewNode("camera", KindCamera)
	if err := g.AddNode(nil, rig); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode(rig, cam); err != nil {
		t.Fatal(err)
	}
	if g.FindByName("camera") != cam {
		t.Error("nested camera not found")
	}
	if g.FindByName("scene") != g.Root() {
		t.Error("root not found by name")
	}
	if g.FindByName("model") != nil {
		t.Error("expected nil for missing name")
	}
}

func TestWalkDepthAndStop(t *testing.T) {
	g := NewGraph()
	a := NewNode("a", KindGroup)
	b := NewNode("b", KindGroup)
	c := NewNode("c", KindGroup)
	_ = g.AddNode(nil, a)
	_ = g.AddNode(a, b)
	_ = g.AddNode(nil, c)

	var visited []string
	var depths []int
	g.Walk(func(n *Node, depth int) bool {
		visited = append(visited, n.Name)
		depths = append(depths, depth)
		return n.Name != "b"
	})
	if !reflect.DeepEqual(visited, []string{"scene", "a", "b"}) {
		t.Errorf("visited %v", visited)
	}
	if !reflect.DeepEqual(depths, []int{0, 1, 2}) {
		t.Errorf("depths %v", depths)
	}
}
