package layout

import "unsafe"

// Header is the fixed node header shared by leaves and branches: a tag
// discriminating leaf from branch, and a length counting live entries
// (leaf) or live separator keys (branch).
type Header struct {
	Tag    uint8
	Length uint32
}

// pointerLayout describes the size/align of a bare pointer, used to cost
// out the sibling-pointer and child-pointer slots of the packed layout
// even though real node storage keeps them as typed Go pointers/slices.
var pointerLayout = OfType[unsafe.Pointer]()

var headerLayout = OfType[Header]()

// Leaf is the computed packed layout of a leaf node holding up to Capacity
// (K, V) pairs plus forward/backward sibling pointers.
type Leaf struct {
	Capacity              int
	Key, Val               Of
	TotalSize, TotalAlign int
	KeysOffset            int
	ValsOffset            int
	NextOffset            int
	PrevOffset            int
}

// NewLeaf computes the packed layout for a leaf node of the given capacity
// holding keys of type K and values of type V.
func NewLeaf[K any, V any](capacity int) (Leaf, error) {
	if capacity < MinCapacity {
		return Leaf{}, ErrCapacityTooSmall
	}

	keyOf := OfType[K]()
	valOf := OfType[V]()

	offset := headerLayout.Size

	offset = RoundUp(offset, keyOf.Align)
	keysOff := offset
	size, ok := checkedMul(capacity, keyOf.Size)
	if !ok {
		return Leaf{}, ErrLayoutOverflow
	}
	offset, ok = checkedAdd(offset, size)
	if !ok {
		return Leaf{}, ErrLayoutOverflow
	}

	offset = RoundUp(offset, valOf.Align)
	valsOff := offset
	size, ok = checkedMul(capacity, valOf.Size)
	if !ok {
		return Leaf{}, ErrLayoutOverflow
	}
	offset, ok = checkedAdd(offset, size)
	if !ok {
		return Leaf{}, ErrLayoutOverflow
	}

	offset = RoundUp(offset, pointerLayout.Align)
	nextOff := offset
	offset, ok = checkedAdd(offset, pointerLayout.Size)
	if !ok {
		return Leaf{}, ErrLayoutOverflow
	}
	prevOff := offset
	offset, ok = checkedAdd(offset, pointerLayout.Size)
	if !ok {
		return Leaf{}, ErrLayoutOverflow
	}

	totalAlign := headerLayout.Max(keyOf).Max(valOf).Max(pointerLayout).Align
	total := RoundUp(offset, totalAlign)
	if total > maxNodeBytes {
		return Leaf{}, ErrLayoutOverflow
	}

	return Leaf{
		Capacity:   capacity,
		Key:        keyOf,
		Val:        valOf,
		TotalSize:  total,
		TotalAlign: totalAlign,
		KeysOffset: keysOff,
		ValsOffset: valsOff,
		NextOffset: nextOff,
		PrevOffset: prevOff,
	}, nil
}

func checkedMul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	if r/b != a || r < 0 {
		return 0, false
	}
	return r, true
}

func checkedAdd(a, b int) (int, bool) {
	r := a + b
	if r < a || r < b {
		return 0, false
	}
	return r, true
}
