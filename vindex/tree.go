package vindex

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/mazegraph/grid"
)

// ErrCellNotFound indicates no entry exists for the requested cell.
var ErrCellNotFound = errors.New("vindex: cell not found")

// Key returns the bucket key of c: the sum of its coordinates.
func Key(c grid.Cell) int {
	return c.Row + c.Col
}

type entry[V any] struct {
	cell  grid.Cell
	value V
}

// node is one bucket of the tree. Every key in left is strictly less than
// key, every key in right strictly greater.
type node[V any] struct {
	key         int
	entries     []entry[V]
	left, right *node[V]
}

// Tree maps cells to values through the coordinate-sum key.
// The zero value is an empty tree ready to use.
type Tree[V any] struct {
	root    *node[V]
	size    int
	buckets int
}

// New returns an empty tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{}
}

// Insert stores v under c. If c is already present the tree is left unchanged
// and Insert returns false.
func (t *Tree[V]) Insert(c grid.Cell, v V) bool {
	key := Key(c)
	link := &t.root
	for *link != nil {
		n := *link
		switch {
		case key < n.key:
			link = &n.left
		case key > n.key:
			link = &n.right
		default:
			for _, e := range n.entries {
				if e.cell == c {
					return false
				}
			}
			n.entries = append(n.entries, entry[V]{cell: c, value: v})
			t.size++

			return true
		}
	}
	*link = &node[V]{key: key, entries: []entry[V]{{cell: c, value: v}}}
	t.size++
	t.buckets++

	return true
}

// Find returns the value stored for c and whether it was found.
func (t *Tree[V]) Find(c grid.Cell) (V, bool) {
	if n := t.bucket(Key(c)); n != nil {
		for _, e := range n.entries {
			if e.cell == c {
				return e.value, true
			}
		}
	}
	var zero V

	return zero, false
}

// Get is Find with an error: ErrCellNotFound on a miss.
func (t *Tree[V]) Get(c grid.Cell) (V, error) {
	v, ok := t.Find(c)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrCellNotFound, c)
	}

	return v, nil
}

// Contains reports whether c has been inserted.
func (t *Tree[V]) Contains(c grid.Cell) bool {
	_, ok := t.Find(c)
	return ok
}

// Len returns the number of stored entries.
func (t *Tree[V]) Len() int { return t.size }

// Buckets returns the number of distinct keys (tree nodes).
func (t *Tree[V]) Buckets() int { return t.buckets }

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[V]) Height() int {
	type frame struct {
		n     *node[V]
		depth int
	}
	if t.root == nil {
		return 0
	}
	best := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > best {
			best = f.depth
		}
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}

	return best
}

// All yields every entry in ascending key order; entries sharing a key come
// out in insertion order.
func (t *Tree[V]) All() iter.Seq2[grid.Cell, V] {
	return func(yield func(grid.Cell, V) bool) {
		var stack []*node[V]
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, e := range n.entries {
				if !yield(e.cell, e.value) {
					return
				}
			}
			n = n.right
		}
	}
}

// bucket descends to the node holding key, or nil.
func (t *Tree[V]) bucket(key int) *node[V] {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n
		}
	}

	return nil
}
