package bptree

import "iter"

// Cursor is a lazy, bidirectional view over a contiguous span of a Map's
// entries, ordered by key. It borrows the map for its lifetime: any
// mutation of the map while a Cursor is in use invalidates the Cursor.
//
// Construction is O(1); descending to the first/last qualifying leaf is
// deferred until the first Next or Prev call, so building and discarding
// an unused Cursor costs nothing beyond the struct itself.
type Cursor[K, V any] struct {
	m          *Map[K, V]
	start, end Bound[K]

	frontLeaf  *leafNode[K, V]
	frontIdx   int
	frontReady bool

	backLeaf  *leafNode[K, V]
	backIdx   int
	backReady bool

	remaining int
	sized     bool
}

// Items returns a cursor over every entry in the map, in ascending key
// order. Because the full extent is known up front, Remaining reports an
// exact count.
func (m *Map[K, V]) Items() *Cursor[K, V] {
	return m.Range(Unbounded[K](), Unbounded[K]())
}

// Range returns a cursor over the entries whose keys fall within
// [start, end) (inclusivity per each Bound's kind). Pass Unbounded[K]()
// for an open end.
func (m *Map[K, V]) Range(start, end Bound[K]) *Cursor[K, V] {
	c := &Cursor[K, V]{m: m, start: start, end: end}
	if start.kind == boundUnbounded && end.kind == boundUnbounded {
		c.remaining = m.count
		c.sized = true
	}
	return c
}

// Keys returns a forward sequence of every key in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		c := m.Items()
		for {
			k, _, ok := c.Next()
			if !ok || !yield(k) {
				return
			}
		}
	}
}

// Values returns a forward sequence of every value, ordered by key.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		c := m.Items()
		for {
			_, v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// All returns a forward iter.Seq2 over the cursor's remaining entries,
// for use with range-over-func (`for k, v := range c.All() { ... }`).
func (c *Cursor[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for {
			k, v, ok := c.Next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}

// Backward returns a reverse iter.Seq2 over the cursor's remaining
// entries, from the end of the span to its start.
func (c *Cursor[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for {
			k, v, ok := c.Prev()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}

// Remaining reports a count that starts at the map's length and drops by
// one for every entry yielded by Next or Prev, and whether that count is
// known at all. Because Next and Prev are tracked independently, the
// count is the number of entries left in one direction only while the
// cursor is used in that direction alone. A full-map cursor
// (Items) knows its count without descending; a bounded Range does not,
// since the end bound's position is only discovered by descending to it.
func (c *Cursor[K, V]) Remaining() (int, bool) {
	return c.remaining, c.sized
}

func (c *Cursor[K, V]) initFront() {
	c.frontReady = true

	if c.start.kind == boundUnbounded {
		c.frontLeaf = c.m.head
		c.frontIdx = 0
		return
	}

	leaf := leafForKey(c.m.root, c.start.key, c.m.cmp)
	if leaf == nil {
		c.frontLeaf = nil
		return
	}

	idx, found := binarySearch(leaf.keys, c.start.key, c.m.cmp)
	if found && c.start.kind == boundExcluded {
		idx++
	}

	if idx >= leaf.length() {
		c.frontLeaf = leaf.next
		c.frontIdx = 0
	} else {
		c.frontLeaf = leaf
		c.frontIdx = idx
	}
}

func (c *Cursor[K, V]) initBack() {
	c.backReady = true

	if c.end.kind == boundUnbounded {
		c.backLeaf = c.m.tail
		if c.m.tail != nil {
			c.backIdx = c.m.tail.length()
		}
		return
	}

	leaf := leafForKey(c.m.root, c.end.key, c.m.cmp)
	if leaf == nil {
		c.backLeaf = nil
		return
	}

	idx, found := binarySearch(leaf.keys, c.end.key, c.m.cmp)
	if found && c.end.kind == boundIncluded {
		idx++
	}

	c.backLeaf = leaf
	c.backIdx = idx
}

func (c *Cursor[K, V]) withinEnd(k K) bool {
	switch c.end.kind {
	case boundIncluded:
		return c.m.cmp(k, c.end.key) <= 0
	case boundExcluded:
		return c.m.cmp(k, c.end.key) < 0
	default:
		return true
	}
}

func (c *Cursor[K, V]) withinStart(k K) bool {
	switch c.start.kind {
	case boundIncluded:
		return c.m.cmp(k, c.start.key) >= 0
	case boundExcluded:
		return c.m.cmp(k, c.start.key) > 0
	default:
		return true
	}
}

// Next returns the next (key, value) pair in ascending order, or
// ok=false once the span is exhausted. Crossing from one leaf to the
// next is handled by the outer loop, never by recursion.
func (c *Cursor[K, V]) Next() (k K, v V, ok bool) {
	if !c.frontReady {
		c.initFront()
	}

	for {
		leaf := c.frontLeaf
		if leaf == nil {
			return k, v, false
		}

		if c.frontIdx < leaf.length() {
			k = leaf.keys[c.frontIdx]
			if !c.withinEnd(k) {
				c.frontLeaf = nil
				c.remaining = 0
				return k, v, false
			}
			v = leaf.vals[c.frontIdx]
			c.frontIdx++
			if c.remaining > 0 {
				c.remaining--
			}
			return k, v, true
		}

		c.frontLeaf = leaf.next
		c.frontIdx = 0
	}
}

// Prev returns the next (key, value) pair in descending order, or
// ok=false once the span is exhausted. Front and back positions are
// tracked independently: Prev does not check where Next has reached, and
// vice versa.
func (c *Cursor[K, V]) Prev() (k K, v V, ok bool) {
	if !c.backReady {
		c.initBack()
	}

	for {
		leaf := c.backLeaf
		if leaf == nil {
			return k, v, false
		}

		if c.backIdx > 0 {
			c.backIdx--
			k = leaf.keys[c.backIdx]
			if !c.withinStart(k) {
				c.backLeaf = nil
				c.remaining = 0
				return k, v, false
			}
			v = leaf.vals[c.backIdx]
			if c.remaining > 0 {
				c.remaining--
			}
			return k, v, true
		}

		if leaf.prev == nil {
			c.backLeaf = nil
			return k, v, false
		}
		c.backLeaf = leaf.prev
		c.backIdx = leaf.prev.length()
	}
}
