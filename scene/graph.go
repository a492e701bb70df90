package scene

import "errors"

var (
	ErrNilNode         = errors.New("scene: nil node")
	ErrAlreadyAttached = errors.New("scene: node already has a parent")
	ErrNotAttached     = errors.New("scene: node is not in the graph")
	ErrCycle           = errors.New("scene: parent is inside the child subtree")
	ErrRoot            = errors.New("scene: root cannot be moved")
)

// Graph owns the node tree rooted at a single scene node
// Not safe for concurrent use, all mutation happens on the loop goroutine
type Graph struct {
	root *Node
	// Background is the clear color as 0xRRGGBB
	Background uint32
}

// NewGraph creates an empty graph with a root node named "scene"
func NewGraph() *Graph {
	return &Graph{root: NewNode("scene", KindRoot)}
}

// Root returns the root node
func (g *Graph) Root() *Node {
	return g.root
}

// AddNode appends child under parent, nil parent means root
// Children keep insertion order. Adding an owned node is rejected, never deduplicated
func (g *Graph) AddNode(parent, child *Node) error {
	if child == g.root {
		return ErrRoot
	}
	if parent == nil {
		parent = g.root
	}
	return Attach(parent, child)
}

// RemoveNode detaches node and its subtree from the graph
func (g *Graph) RemoveNode(node *Node) error {
	if node == nil {
		return ErrNilNode
	}
	if node == g.root {
		return ErrRoot
	}
	if !g.Contains(node) {
		return ErrNotAttached
	}
	node.detach()
	return nil
}

// Reparent moves node under parent, detaching it first if needed
// The local transform is kept as is
func (g *Graph) Reparent(node, parent *Node) error {
	if node == nil {
		return ErrNilNode
	}
	if node == g.root {
		return ErrRoot
	}
	if parent == nil {
		parent = g.root
	}
	if parent.hasAncestor(node) {
		return ErrCycle
	}
	node.detach()
	return Attach(parent, node)
}

// Contains reports whether node is reachable from the root
func (g *Graph) Contains(node *Node) bool {
	if node == nil {
		return false
	}
	return node.hasAncestor(g.root)
}

// FindByName returns the first node in depth-first insertion order with the given name
func (g *Graph) FindByName(name string) *Node {
	var found *Node
	g.Walk(func(n *Node, _ int) bool {
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// Walk visits nodes depth-first in insertion order, root first at depth 0
// Returning false from fn stops the walk
func (g *Graph) Walk(fn func(n *Node, depth int) bool) {
	walk(g.root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) bool {
	if !fn(n, depth) {
		return false
	}
	for _, c := range n.children {
		if !walk(c, depth+1, fn) {
			return false
		}
	}
	return true
}

// Len returns the number of nodes including root
func (g *Graph) Len() int {
	count := 0
	g.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}
