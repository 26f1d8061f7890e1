package layout

import "errors"

// ErrCapacityTooSmall is returned when a requested capacity is below
// MinCapacity.
var ErrCapacityTooSmall = errors.New("layout: capacity must be at least 4")

// ErrLayoutOverflow is returned when the computed total size of a node
// would overflow platform address arithmetic (the packed key, value, and
// child storage for the requested capacity and types is too large to
// offset within an int), or when it exceeds maxNodeBytes.
var ErrLayoutOverflow = errors.New("layout: node size overflows address arithmetic")

// maxNodeBytes is a sanity ceiling on the total packed size of one node:
// layouts above it are rejected with ErrLayoutOverflow even when their size
// still fits in an int. Arithmetic that would overflow an int is caught
// separately by checkedMul and checkedAdd. The ceiling is far above any
// realistic cache-conscious capacity.
const maxNodeBytes = 1 << 40
