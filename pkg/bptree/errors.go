package bptree

import "errors"

// ErrCapacityTooSmall is returned by New/NewFunc when capacity < 4.
var ErrCapacityTooSmall = errors.New("bptree: capacity must be at least 4")

// ErrLayoutOverflow is returned by New/NewFunc when the node layout for K
// and V at the requested capacity would overflow address arithmetic.
var ErrLayoutOverflow = errors.New("bptree: node layout overflows address arithmetic")
