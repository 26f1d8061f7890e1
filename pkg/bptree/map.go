// Package bptree implements an in-memory, generic, ordered associative
// container keyed by a user-supplied total order, as a B+ tree: a packed-
// style node layout (pkg/layout), a recycling node allocator (pkg/arena),
// binary-search descent, split/merge mutation, and a lazy bidirectional
// range cursor over the leaf linked list. See DESIGN.md for how each
// piece is put together.
package bptree

import (
	"cmp"

	"github.com/flier/bptreemap/internal/debug"
	"github.com/flier/bptreemap/pkg/arena"
	"github.com/flier/bptreemap/pkg/layout"
)

// Map is an ordered associative container backed by a B+ tree. The zero
// Map is not usable; construct one with New or NewFunc.
//
// A *Map is safe for any number of concurrent readers provided no mutator
// runs concurrently with them — the same discipline as any other in-memory
// Go container with no internal locking.
type Map[K, V any] struct {
	cmp      compareFunc[K]
	capacity int

	root  node[K, V]
	count int

	head, tail *leafNode[K, V]

	leafLayout   layout.Leaf
	branchLayout layout.Branch

	leafArena   *arena.Recycled[leafNode[K, V]]
	branchArena *arena.Recycled[branchNode[K, V]]
}

// New creates an empty Map over a naturally-ordered key type K (any type
// satisfying cmp.Ordered), with the given node capacity. capacity must be
// at least 4.
func New[K cmp.Ordered, V any](capacity int) (*Map[K, V], error) {
	return NewFunc[K, V](capacity, cmp.Compare[K])
}

// NewFunc creates an empty Map using an explicit comparator, for key types
// that do not satisfy cmp.Ordered but do define a total order. compare
// must behave like a three-way comparison (negative/zero/positive).
func NewFunc[K, V any](capacity int, compare func(a, b K) int) (*Map[K, V], error) {
	leafLayout, err := layout.NewLeaf[K, V](capacity)
	if err != nil {
		return nil, translateLayoutErr(err)
	}
	branchLayout, err := layout.NewBranch[K](capacity)
	if err != nil {
		return nil, translateLayoutErr(err)
	}

	m := &Map[K, V]{
		cmp:          compare,
		capacity:     capacity,
		leafLayout:   leafLayout,
		branchLayout: branchLayout,
	}
	m.leafArena = arena.NewRecycled[leafNode[K, V]](func(n *leafNode[K, V]) { n.reset() })
	m.branchArena = arena.NewRecycled[branchNode[K, V]](func(n *branchNode[K, V]) { n.reset() })

	root := m.allocLeaf()
	m.root = root
	m.head = root
	m.tail = root

	return m, nil
}

func translateLayoutErr(err error) error {
	switch err {
	case layout.ErrCapacityTooSmall:
		return ErrCapacityTooSmall
	case layout.ErrLayoutOverflow:
		return ErrLayoutOverflow
	default:
		return err
	}
}

func (m *Map[K, V]) allocLeaf() *leafNode[K, V] {
	n := m.leafArena.Alloc()
	if n.keys == nil {
		n.tag = tagLeaf
		n.keys = make([]K, 0, m.capacity)
		n.vals = make([]V, 0, m.capacity)
	}
	return n
}

func (m *Map[K, V]) allocBranch() *branchNode[K, V] {
	n := m.branchArena.Alloc()
	if n.keys == nil {
		n.tag = tagBranch
		n.keys = make([]K, 0, m.capacity)
		n.children = make([]node[K, V], 0, m.capacity+1)
	}
	return n
}

func (m *Map[K, V]) minOccupancy() int {
	return (m.capacity + 1) / 2
}

// Len returns the number of live keys in the map, in O(1). The count is
// kept as a field on the map rather than recomputed by walking the leaf
// list, which would make Len linear in the size of the map.
func (m *Map[K, V]) Len() int { return m.count }

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.count == 0 }

// Get returns the value stored for k, and whether it was present.
func (m *Map[K, V]) Get(k K) (V, bool) {
	leaf := leafForKey[K, V](m.root, k, m.cmp)
	if leaf == nil {
		var zero V
		return zero, false
	}
	idx, found := binarySearch(leaf.keys, k, m.cmp)
	if !found {
		var zero V
		return zero, false
	}
	return leaf.vals[idx], true
}

// First returns the leftmost (key, value) pair, or false if the map is
// empty.
func (m *Map[K, V]) First() (k K, v V, ok bool) {
	if m.head == nil || m.head.length() == 0 {
		return k, v, false
	}
	return m.head.keys[0], m.head.vals[0], true
}

// Last returns the rightmost (key, value) pair, or false if the map is
// empty.
func (m *Map[K, V]) Last() (k K, v V, ok bool) {
	if m.tail == nil || m.tail.length() == 0 {
		return k, v, false
	}
	i := m.tail.length() - 1
	return m.tail.keys[i], m.tail.vals[i], true
}

// LeafCount returns the number of leaves in the tree. It is O(n) and
// intended only as a diagnostic/test aid.
func (m *Map[K, V]) LeafCount() int {
	n := 0
	for l := m.head; l != nil; l = l.next {
		n++
	}
	return n
}

// Height returns the number of levels in the tree (1 for a leaf-only
// tree). It is O(height) and intended only as a diagnostic/test aid.
func (m *Map[K, V]) Height() int {
	h := 1
	n := m.root
	for {
		b, ok := n.(*branchNode[K, V])
		if !ok {
			return h
		}
		h++
		n = b.children[0]
	}
}

// Close tears the map down: it walks every reachable node in post-order,
// destructing keys/values and releasing node storage back to the arenas,
// then resets the map to a fresh empty root. Every key and value is
// dropped exactly once.
//
// Close is not required for correctness under Go's garbage collector —
// simply discarding the *Map is always safe — but it lets callers release
// large trees deterministically and recover arena capacity for reuse.
func (m *Map[K, V]) Close() {
	m.teardown(m.root)
	m.root = nil
	m.count = 0
	m.head = nil
	m.tail = nil

	root := m.allocLeaf()
	m.root = root
	m.head = root
	m.tail = root
}

func (m *Map[K, V]) teardown(n node[K, V]) {
	switch t := n.(type) {
	case *leafNode[K, V]:
		if t == nil {
			return
		}
		m.leafArena.Free(t)
	case *branchNode[K, V]:
		if t == nil {
			return
		}
		for _, c := range t.children {
			m.teardown(c)
		}
		m.branchArena.Free(t)
	}
}

func (m *Map[K, V]) logf(op, format string, args ...any) {
	debug.Log([]any{"count=%d", m.count}, op, format, args...)
}
