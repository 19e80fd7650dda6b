// Package tree implements an ordered ownership tree. Each node has at most
// one parent, ever, and knows its index among its parent's children.
package tree

// A Node is anything that owns a Links value.
type Node interface {
	Links() *Links
}

// Links holds the tree structure of a node. The zero value is a node with
// no parent and no children.
type Links struct {
	parent   Node
	index    int
	children []Node
}

// A HierarchyError is the panic value for misuse of the tree structure. It
// indicates a programming error, not bad input.
type HierarchyError struct {
	Msg string
}

func (e *HierarchyError) Error() string {
	return "tree: " + e.Msg
}

// Append adds child as the last child of parent. It panics if child already
// has a parent.
func Append(parent, child Node) {
	cl := child.Links()
	if cl.parent != nil {
		panic(&HierarchyError{"child already has a parent"})
	}
	pl := parent.Links()
	cl.parent = parent
	cl.index = len(pl.children)
	pl.children = append(pl.children, child)
}

// Parent returns the parent of n, or nil.
func Parent(n Node) Node {
	return n.Links().parent
}

// Index returns the position of n among its siblings. It panics if n has no
// parent.
func Index(n Node) int {
	l := n.Links()
	if l.parent == nil {
		panic(&HierarchyError{"node has no index because it has no parent"})
	}
	return l.index
}

// Len returns the number of children of n.
func Len(n Node) int {
	return len(n.Links().children)
}

// Child returns the child of n at index i.
func Child(n Node, i int) Node {
	return n.Links().children[i]
}

// Previous returns the node before n in document order at the same depth:
// the previous sibling, or else the last child of the nearest earlier
// cousin. It returns nil at the start of the tree.
func Previous(n Node) Node {
	l := n.Links()
	if l.parent == nil {
		return nil
	}
	if l.index > 0 {
		return Child(l.parent, l.index-1)
	}
	for p := Previous(l.parent); p != nil; p = Previous(p) {
		if k := Len(p); k > 0 {
			return Child(p, k-1)
		}
	}
	return nil
}

// Next returns the node after n in document order at the same depth. It
// returns nil at the end of the tree.
func Next(n Node) Node {
	l := n.Links()
	if l.parent == nil {
		return nil
	}
	if i := l.index + 1; i < Len(l.parent) {
		return Child(l.parent, i)
	}
	for p := Next(l.parent); p != nil; p = Next(p) {
		if Len(p) > 0 {
			return Child(p, 0)
		}
	}
	return nil
}
