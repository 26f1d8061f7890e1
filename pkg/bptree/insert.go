package bptree

import "github.com/flier/bptreemap/internal/debug"

// Insert inserts (k, v). If k was already present, its value is
// overwritten and the previous value is returned with ok=true; the map's
// length is unchanged. Otherwise the pair is inserted, the map grows by
// one, and ok is false.
func (m *Map[K, V]) Insert(k K, v V) (old V, ok bool) {
	var path []pathStep[K, V]
	leaf := descend(m.root, k, m.cmp, &path)

	idx, found := binarySearch(leaf.keys, k, m.cmp)
	if found {
		old = leaf.vals[idx]
		leaf.vals[idx] = v
		return old, true
	}

	leaf.keys = insertAt(leaf.keys, idx, k)
	leaf.vals = insertAt(leaf.vals, idx, v)
	m.count++
	m.logf("insert", "leaf len=%d cap=%d", leaf.length(), m.capacity)

	if leaf.length() <= m.capacity {
		return old, false
	}

	sepKey, right := m.splitLeaf(leaf)
	m.propagateSplit(path, sepKey, node[K, V](right))

	return old, false
}

// splitLeaf splits an overfull leaf (length == capacity+1) into a left
// half (the same *leafNode, truncated in place) and a new right leaf,
// splicing the right leaf into the sibling list. It returns the separator
// to copy up to the parent: the right leaf's first key.
//
// mid is deliberately length/2 rather than a ceiling division: giving the
// smaller half to the left leaf and the larger to the right is what keeps
// split and borrow-from-right behavior aligned for even and odd capacities
// alike (see DESIGN.md).
func (m *Map[K, V]) splitLeaf(left *leafNode[K, V]) (K, *leafNode[K, V]) {
	debug.Assert(left.length() == m.capacity+1, "splitLeaf called on a non-overfull leaf")

	mid := left.length() / 2

	right := m.allocLeaf()
	right.keys = append(right.keys, left.keys[mid:]...)
	right.vals = append(right.vals, left.vals[mid:]...)

	var zeroK K
	var zeroV V
	for i := mid; i < len(left.keys); i++ {
		left.keys[i] = zeroK
	}
	for i := mid; i < len(left.vals); i++ {
		left.vals[i] = zeroV
	}
	left.keys = left.keys[:mid]
	left.vals = left.vals[:mid]

	right.next = left.next
	right.prev = left
	if left.next != nil {
		left.next.prev = right
	}
	left.next = right
	if m.tail == left {
		m.tail = right
	}

	m.logf("split", "leaf mid=%d left=%d right=%d", mid, left.length(), right.length())

	return right.keys[0], right
}

// splitBranch splits an overfull branch (length == capacity+1) into a left
// half (truncated in place) and a new right branch, lifting (not copying)
// the middle separator.
func (m *Map[K, V]) splitBranch(left *branchNode[K, V]) (K, *branchNode[K, V]) {
	debug.Assert(left.length() == m.capacity+1, "splitBranch called on a non-overfull branch")
	debug.Assert(len(left.children) == left.length()+1, "branch children must outnumber keys by one")

	mid := left.length() / 2
	sep := left.keys[mid]

	right := m.allocBranch()
	right.keys = append(right.keys, left.keys[mid+1:]...)
	right.children = append(right.children, left.children[mid+1:]...)

	var zeroK K
	for i := mid; i < len(left.keys); i++ {
		left.keys[i] = zeroK
	}
	for i := mid + 1; i < len(left.children); i++ {
		left.children[i] = nil
	}
	left.keys = left.keys[:mid]
	left.children = left.children[:mid+1]

	m.logf("split", "branch mid=%d left=%d right=%d", mid, left.length(), right.length())

	return sep, right
}

// propagateSplit walks path from the leaf's immediate parent back to the
// root, installing the new separator/right-child pair at each level and
// splitting again wherever that insertion overflows the node. If the split
// reaches above the root, a new branch root is allocated.
func (m *Map[K, V]) propagateSplit(path []pathStep[K, V], sepKey K, right node[K, V]) {
	for i := len(path) - 1; i >= 0; i-- {
		parent := path[i].branch
		idx := path[i].index

		parent.keys = insertAt(parent.keys, idx, sepKey)
		parent.children = insertAt(parent.children, idx+1, right)

		if parent.length() <= m.capacity {
			return
		}

		var rightBranch *branchNode[K, V]
		sepKey, rightBranch = m.splitBranch(parent)
		right = rightBranch
	}

	newRoot := m.allocBranch()
	newRoot.keys = append(newRoot.keys, sepKey)
	newRoot.children = append(newRoot.children, m.root, right)
	m.root = newRoot

	m.logf("split", "new root, height=%d", m.Height())
}
