package layout

// Branch is the computed packed layout of a branch node holding up to
// Capacity separator keys and Capacity+1 child references.
type Branch struct {
	Capacity      int
	Key           Of
	TotalSize     int
	TotalAlign    int
	KeysOffset    int
	ChildrenOffset int
}

// NewBranch computes the packed layout for a branch node of the given
// capacity holding separator keys of type K.
func NewBranch[K any](capacity int) (Branch, error) {
	if capacity < MinCapacity {
		return Branch{}, ErrCapacityTooSmall
	}

	keyOf := OfType[K]()

	offset := headerLayout.Size

	offset = RoundUp(offset, keyOf.Align)
	keysOff := offset
	size, ok := checkedMul(capacity, keyOf.Size)
	if !ok {
		return Branch{}, ErrLayoutOverflow
	}
	offset, ok = checkedAdd(offset, size)
	if !ok {
		return Branch{}, ErrLayoutOverflow
	}

	offset = RoundUp(offset, pointerLayout.Align)
	childrenOff := offset
	size, ok = checkedMul(capacity+1, pointerLayout.Size)
	if !ok {
		return Branch{}, ErrLayoutOverflow
	}
	offset, ok = checkedAdd(offset, size)
	if !ok {
		return Branch{}, ErrLayoutOverflow
	}

	totalAlign := headerLayout.Max(keyOf).Max(pointerLayout).Align
	total := RoundUp(offset, totalAlign)
	if total > maxNodeBytes {
		return Branch{}, ErrLayoutOverflow
	}

	return Branch{
		Capacity:       capacity,
		Key:            keyOf,
		TotalSize:      total,
		TotalAlign:     totalAlign,
		KeysOffset:     keysOff,
		ChildrenOffset: childrenOff,
	}, nil
}
