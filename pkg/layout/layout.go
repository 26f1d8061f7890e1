// Package layout computes byte-level size, alignment, and offset
// information for B+ tree nodes.
//
// It generalizes the single-type layout helpers of flier-goutil's
// pkg/xunsafe/layout (Size, Align, Of, RoundUp, Padding) to whole-node
// layout descriptors: the packed offsets a leaf or branch node would use
// if its keys, values, children, and sibling pointers were carved out of
// one contiguous allocation. The numbers this package computes are real
// and are used for construction-time validation and the capacity-
// selection heuristic (SuggestCapacity); actual node storage uses typed
// Go slices rather than raw bytes, since K and V are arbitrary generic
// types that may contain pointers.
package layout

import (
	"unsafe"

	"github.com/flier/bptreemap/internal/debug"
)

// Int is any integer type, mirroring flier-goutil's layout.Int constraint.
type Int interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// MinCapacity is the smallest capacity a node layout may be computed for;
// below it the minimum-occupancy rule that keeps the tree balanced has
// no room to operate.
const MinCapacity = 4

// Of is the size and alignment of a single value of type T, mirroring
// flier-goutil's layout.Of[T]().
type Of struct {
	Size, Align int
}

// OfType returns the size and alignment of T.
func OfType[T any]() Of {
	var z T
	return Of{int(unsafe.Sizeof(z)), int(unsafe.Alignof(z))}
}

// Max returns a layout whose size and alignment are each the larger of the
// two inputs.
func (o Of) Max(other Of) Of {
	return Of{max(o.Size, other.Size), max(o.Align, other.Align)}
}

// RoundUp rounds v up to the nearest multiple of align, which must be a
// power of two.
func RoundUp[T Int](v, align T) T {
	debug.Assert(v >= 0, "v must not be negative")
	debug.Assert(align > 0, "align must be greater than 0")

	if align <= 0 {
		return v
	}
	return (v + align - 1) &^ (align - 1)
}

// Padding returns RoundUp(v, align) - v.
func Padding[T Int](v, align T) T {
	debug.Assert(v >= 0, "v must not be negative")
	debug.Assert(align > 0, "align must be greater than 0")

	if align <= 0 {
		return 0
	}
	return (align - v%align) % align
}
