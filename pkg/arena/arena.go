// Package arena provides a recycling node allocator for the B+ tree
// engine, generalizing flier-goutil's pkg/arena (Arena/Recycled bump-and-
// recycle byte allocation) to a typed free list of *N node structs.
//
// The source package's Arena/Recycled allocate raw, pointer-free byte
// blocks and reinterpret them as T via unsafe.Pointer casts; that is sound
// only for pointer-free T. Here N is always a concrete leaf/branch node
// struct the caller defines (never an arbitrary generic K/V reinterpreted
// from bytes), so ordinary Go allocation plus a typed free list is both
// safe under the garbage collector and captures the same benefit the
// source docs describe: "Recycling Benefits: ... provides additional
// performance improvements through memory reuse" by avoiding repeated
// calls into the runtime allocator during split/merge-heavy workloads.
package arena

// Recycled is a typed, single-threaded free-list allocator for node
// structs of type N. A zero Recycled is empty and ready to use, mirroring
// the source's "a zero Arena is empty and ready to use" contract.
type Recycled[N any] struct {
	free  []*N
	clear func(*N)
}

// NewRecycled creates a Recycled allocator. clear is invoked on a node
// when Free puts it on the free list; it should zero any fields that must not leak stale references (key/value
// slots, child/sibling pointers), the same role the source's Arena.Reset
// plays when it clears a reused block.
func NewRecycled[N any](clear func(*N)) *Recycled[N] {
	return &Recycled[N]{clear: clear}
}

// Alloc returns a node ready for the caller to initialize: either a fresh
// zero-valued *N, or a recycled one that was cleared when it was freed.
func (r *Recycled[N]) Alloc() *N {
	if n := len(r.free); n > 0 {
		node := r.free[n-1]
		r.free[n-1] = nil
		r.free = r.free[:n-1]
		return node
	}
	return new(N)
}

// Free clears a node with the clear function and keeps its storage for
// future reuse by Alloc. The arena does not recurse into children or
// follow sibling pointers; the caller is responsible for recursive
// teardown.
func (r *Recycled[N]) Free(n *N) {
	if n == nil {
		return
	}
	if r.clear != nil {
		r.clear(n)
	}
	r.free = append(r.free, n)
}

// Len reports how many nodes are currently sitting in the free list,
// available for diagnostics and tests.
func (r *Recycled[N]) Len() int {
	return len(r.free)
}
