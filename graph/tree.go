package graph

import "fmt"

// Tree is a node in a rooted tree of values. Branches keep insertion order.
type Tree[T any] struct {
	Value T

	branches []*Tree[T]
	parent   *Tree[T]
	depth    int
}

// From returns a new root holding value.
func From[T any](value T) *Tree[T] {
	return &Tree[T]{Value: value}
}

// GrowBranch appends a child holding value and returns it.
func (t *Tree[T]) GrowBranch(value T) *Tree[T] {
	b := &Tree[T]{Value: value, parent: t, depth: t.depth + 1}
	t.branches = append(t.branches, b)
	return b
}

// PruneBranch removes a direct child. It reports whether branch was found.
func (t *Tree[T]) PruneBranch(branch *Tree[T]) bool {
	for i, b := range t.branches {
		if b == branch {
			t.branches = append(t.branches[:i], t.branches[i+1:]...)
			branch.parent = nil
			return true
		}
	}
	return false
}

// Branches returns the children. The slice must not be modified.
func (t *Tree[T]) Branches() []*Tree[T] { return t.branches }

func (t *Tree[T]) Parent() *Tree[T] { return t.parent }

// Depth is zero for the root.
func (t *Tree[T]) Depth() int { return t.depth }

// Path returns the branch indices leading from the root to t.
func (t *Tree[T]) Path() []int {
	var path []int
	for n := t; n.parent != nil; n = n.parent {
		for i, b := range n.parent.branches {
			if b == n {
				path = append(path, i)
				break
			}
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// At follows path from t.
func (t *Tree[T]) At(path []int) (*Tree[T], error) {
	n := t
	for depth, i := range path {
		if i < 0 || i >= len(n.branches) {
			return nil, fmt.Errorf("no branch %d at depth %d", i, depth)
		}
		n = n.branches[i]
	}
	return n, nil
}

// Walk visits t and its descendants depth-first, parents before children.
// Returning false from fn skips the node's subtree.
func (t *Tree[T]) Walk(fn func(*Tree[T]) bool) {
	if !fn(t) {
		return
	}
	for _, b := range t.branches {
		b.Walk(fn)
	}
}

// Len counts t and all descendants.
func (t *Tree[T]) Len() int {
	n := 0
	t.Walk(func(*Tree[T]) bool {
		n++
		return true
	})
	return n
}
