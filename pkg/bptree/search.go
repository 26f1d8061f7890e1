package bptree

// compareFunc is a user-supplied total order over K: negative if a < b,
// zero if a == b, positive if a > b.
type compareFunc[K any] func(a, b K) int

// binarySearch looks for k within the sorted slice keys using cmp.
// It returns (index, true) if k was found at that index, or (insertion
// index, false) if not — the insertion index is where k would need to go
// to keep keys sorted.
func binarySearch[K any](keys []K, k K, cmp compareFunc[K]) (int, bool) {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := cmp(keys[mid], k); {
		case c == 0:
			return mid, true
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}

// pathStep records the branch descended through and the index of the
// child taken, so that insert/remove can walk back up to propagate splits
// or repair underflow without a second descent.
type pathStep[K any, V any] struct {
	branch *branchNode[K, V]
	index  int
}

// descend walks from n to the leaf that would contain k, recording the
// path of branches taken. It returns that leaf (nil only if n is nil).
func descend[K any, V any](n node[K, V], k K, cmp compareFunc[K], path *[]pathStep[K, V]) *leafNode[K, V] {
	for {
		if n == nil {
			return nil
		}
		leaf, ok := n.(*leafNode[K, V])
		if ok {
			return leaf
		}

		branch := n.(*branchNode[K, V])
		idx, found := binarySearch(branch.keys, k, cmp)
		childIdx := idx
		if found {
			childIdx = idx + 1
		}

		if path != nil {
			*path = append(*path, pathStep[K, V]{branch: branch, index: childIdx})
		}

		n = branch.children[childIdx]
	}
}

// leafForKey is descend without path tracking, for read-only operations
// (Get, and lazy iterator initialization).
func leafForKey[K any, V any](root node[K, V], k K, cmp compareFunc[K]) *leafNode[K, V] {
	return descend(root, k, cmp, nil)
}
