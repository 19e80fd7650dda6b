package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type node struct {
	links Links
	name  string
}

func (n *node) Links() *Links { return &n.links }

func newNode(name string, children ...*node) *node {
	n := &node{name: name}
	for _, c := range children {
		Append(n, c)
	}
	return n
}

// build returns a tree with leaves a..f where the middle group is empty.
//
//	root
//	  p1: a b
//	  p2: (empty)
//	  p3: c
//	root2
//	  p4: d e f
func build() (*node, map[string]*node) {
	m := make(map[string]*node)
	leaf := func(s string) *node {
		n := newNode(s)
		m[s] = n
		return n
	}
	top := newNode("top",
		newNode("root",
			newNode("p1", leaf("a"), leaf("b")),
			newNode("p2"),
			newNode("p3", leaf("c")),
		),
		newNode("root2",
			newNode("p4", leaf("d"), leaf("e"), leaf("f")),
		),
	)
	return top, m
}

func walk(start Node, step func(Node) Node) []string {
	var r []string
	for n := start; n != nil; n = step(n) {
		r = append(r, n.(*node).name)
	}
	return r
}

func TestTraversal(t *testing.T) {
	_, m := build()
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e", "f"}, walk(m["a"], Next)); diff != "" {
		t.Errorf("Next walk (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"f", "e", "d", "c", "b", "a"}, walk(m["f"], Previous)); diff != "" {
		t.Errorf("Previous walk (-want +got):\n%s", diff)
	}
}

func TestIndex(t *testing.T) {
	top, _ := build()
	var check func(n Node)
	check = func(n Node) {
		for i := 0; i < Len(n); i++ {
			c := Child(n, i)
			if Index(c) != i {
				t.Errorf("%s: Index = %d, expect %d", c.(*node).name, Index(c), i)
			}
			if Parent(c) != n {
				t.Errorf("%s: wrong parent", c.(*node).name)
			}
			if Child(Parent(c), Index(c)) != c {
				t.Errorf("%s: parent.Child(index) != node", c.(*node).name)
			}
			check(c)
		}
	}
	check(top)
	if Previous(top) != nil || Next(top) != nil {
		t.Error("root has neighbors")
	}
}

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if _, ok := r.(*HierarchyError); !ok {
			t.Errorf("%s: recovered %v, expect *HierarchyError", name, r)
		}
	}()
	f()
}

func TestMisuse(t *testing.T) {
	a, b, c := newNode("a"), newNode("b"), newNode("c")
	Append(a, c)
	expectPanic(t, "second parent", func() { Append(b, c) })
	expectPanic(t, "root index", func() { Index(a) })
	if Len(b) != 0 {
		t.Errorf("failed append left %d children", Len(b))
	}
}
