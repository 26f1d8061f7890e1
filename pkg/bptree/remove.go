package bptree

import "github.com/flier/bptreemap/internal/debug"

// Remove deletes k, returning its value and true if it was present.
func (m *Map[K, V]) Remove(k K) (old V, ok bool) {
	var path []pathStep[K, V]
	leaf := descend(m.root, k, m.cmp, &path)

	idx, found := binarySearch(leaf.keys, k, m.cmp)
	if !found {
		return old, false
	}

	old = leaf.vals[idx]
	leaf.keys = removeAt(leaf.keys, idx)
	leaf.vals = removeAt(leaf.vals, idx)
	m.count--
	m.logf("remove", "leaf len=%d cap=%d", leaf.length(), m.capacity)

	if len(path) == 0 {
		// leaf is the root: no minimum occupancy applies. An empty root
		// leaf is retained as-is rather than freed.
		return old, true
	}

	if leaf.length() >= m.minOccupancy() {
		return old, true
	}

	m.repairUnderflow(path)

	return old, true
}

// repairUnderflow walks path from the underflowing node's parent back
// toward the root, borrowing from a sibling (which needs no further
// propagation) or merging with one (which removes a separator from the
// parent and may cause it to underflow in turn).
func (m *Map[K, V]) repairUnderflow(path []pathStep[K, V]) {
	for len(path) > 0 {
		step := path[len(path)-1]
		parent := step.branch
		idx := step.index

		merged := m.rebalanceAt(parent, idx)
		if !merged {
			return
		}

		path = path[:len(path)-1]

		if len(path) == 0 {
			m.collapseRootIfNeeded(parent)
			return
		}

		if parent.length() >= m.minOccupancy() {
			return
		}
	}
}

// collapseRootIfNeeded replaces a branch root holding zero separators
// (i.e. exactly one child) with that child, freeing the old root.
func (m *Map[K, V]) collapseRootIfNeeded(root *branchNode[K, V]) {
	if root.length() != 0 {
		return
	}
	debug.Assert(len(root.children) == 1, "a root with zero keys must have exactly one child")
	m.root = root.children[0]
	m.branchArena.Free(root)
	m.logf("collapse", "root replaced, height=%d", m.Height())
}

// rebalanceAt repairs an underflowing child of parent at idx: borrow from
// the left sibling, else the right, else merge with the left, else merge
// with the right. It returns true iff a merge occurred (parent lost a
// separator and must itself be checked for underflow by the caller).
func (m *Map[K, V]) rebalanceAt(parent *branchNode[K, V], idx int) bool {
	switch child := parent.children[idx].(type) {
	case *leafNode[K, V]:
		return m.rebalanceLeaf(parent, idx, child)
	case *branchNode[K, V]:
		return m.rebalanceBranch(parent, idx, child)
	default:
		return false
	}
}

func (m *Map[K, V]) rebalanceLeaf(parent *branchNode[K, V], idx int, leaf *leafNode[K, V]) bool {
	min := m.minOccupancy()

	if idx > 0 {
		if left := parent.children[idx-1].(*leafNode[K, V]); left.length() > min {
			n := len(left.keys) - 1
			k, v := left.keys[n], left.vals[n]
			var zk K
			var zv V
			left.keys[n], left.vals[n] = zk, zv
			left.keys = left.keys[:n]
			left.vals = left.vals[:n]

			leaf.keys = insertAt(leaf.keys, 0, k)
			leaf.vals = insertAt(leaf.vals, 0, v)
			parent.keys[idx-1] = leaf.keys[0]

			m.logf("borrow", "leaf<-left idx=%d", idx)
			return false
		}
	}

	if idx < len(parent.children)-1 {
		if right := parent.children[idx+1].(*leafNode[K, V]); right.length() > min {
			k, v := right.keys[0], right.vals[0]
			right.keys = removeAt(right.keys, 0)
			right.vals = removeAt(right.vals, 0)

			leaf.keys = append(leaf.keys, k)
			leaf.vals = append(leaf.vals, v)
			parent.keys[idx] = right.keys[0]

			m.logf("borrow", "leaf<-right idx=%d", idx)
			return false
		}
	}

	if idx > 0 {
		left := parent.children[idx-1].(*leafNode[K, V])
		m.mergeLeaves(left, leaf)
		parent.keys = removeAt(parent.keys, idx-1)
		parent.children = removeAt(parent.children, idx)
		m.leafArena.Free(leaf)
		m.logf("merge", "leaf<-left idx=%d", idx)
		return true
	}

	right := parent.children[idx+1].(*leafNode[K, V])
	m.mergeLeaves(leaf, right)
	parent.keys = removeAt(parent.keys, idx)
	parent.children = removeAt(parent.children, idx+1)
	m.leafArena.Free(right)
	m.logf("merge", "leaf<-right idx=%d", idx)
	return true
}

// mergeLeaves absorbs right's entries into left and splices right out of
// the sibling list. The caller frees right.
func (m *Map[K, V]) mergeLeaves(left, right *leafNode[K, V]) {
	left.keys = append(left.keys, right.keys...)
	left.vals = append(left.vals, right.vals...)

	left.next = right.next
	if right.next != nil {
		right.next.prev = left
	}
	if m.tail == right {
		m.tail = left
	}
}

func (m *Map[K, V]) rebalanceBranch(parent *branchNode[K, V], idx int, branch *branchNode[K, V]) bool {
	min := m.minOccupancy()

	if idx > 0 {
		if left := parent.children[idx-1].(*branchNode[K, V]); left.length() > min {
			n := len(left.keys) - 1
			lastKey := left.keys[n]
			lastChild := left.children[len(left.children)-1]

			var zk K
			left.keys[n] = zk
			left.keys = left.keys[:n]
			left.children[len(left.children)-1] = nil
			left.children = left.children[:len(left.children)-1]

			branch.keys = insertAt(branch.keys, 0, parent.keys[idx-1])
			branch.children = insertAt(branch.children, 0, lastChild)
			parent.keys[idx-1] = lastKey

			m.logf("borrow", "branch<-left idx=%d", idx)
			return false
		}
	}

	if idx < len(parent.children)-1 {
		if right := parent.children[idx+1].(*branchNode[K, V]); right.length() > min {
			firstKey := right.keys[0]
			firstChild := right.children[0]

			right.keys = removeAt(right.keys, 0)
			right.children = removeAt(right.children, 0)

			branch.keys = append(branch.keys, parent.keys[idx])
			branch.children = append(branch.children, firstChild)
			parent.keys[idx] = firstKey

			m.logf("borrow", "branch<-right idx=%d", idx)
			return false
		}
	}

	if idx > 0 {
		left := parent.children[idx-1].(*branchNode[K, V])
		m.mergeBranches(left, branch, parent.keys[idx-1])
		parent.keys = removeAt(parent.keys, idx-1)
		parent.children = removeAt(parent.children, idx)
		m.branchArena.Free(branch)
		m.logf("merge", "branch<-left idx=%d", idx)
		return true
	}

	right := parent.children[idx+1].(*branchNode[K, V])
	m.mergeBranches(branch, right, parent.keys[idx])
	parent.keys = removeAt(parent.keys, idx)
	parent.children = removeAt(parent.children, idx+1)
	m.branchArena.Free(right)
	m.logf("merge", "branch<-right idx=%d", idx)
	return true
}

// mergeBranches absorbs right's separators/children into left, pulling
// sep (the separator between them in their former parent) down as the
// joining key. The caller frees right.
func (m *Map[K, V]) mergeBranches(left, right *branchNode[K, V], sep K) {
	left.keys = append(left.keys, sep)
	left.keys = append(left.keys, right.keys...)
	left.children = append(left.children, right.children...)
}
