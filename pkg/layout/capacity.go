package layout

// SuggestCapacity picks a leaf capacity so that a leaf's packed key+value
// storage fills approximately lines cache lines of cacheLineBytes each,
// given the sizes of K and V. The result is always at least MinCapacity.
func SuggestCapacity[K, V any](cacheLineBytes, lines int) int {
	if cacheLineBytes <= 0 {
		cacheLineBytes = 64
	}
	if lines <= 0 {
		lines = 1
	}

	keyOf := OfType[K]()
	valOf := OfType[V]()

	perEntry := keyOf.Size + valOf.Size
	if perEntry <= 0 {
		return MinCapacity
	}

	budget := cacheLineBytes * lines
	capacity := budget / perEntry

	if capacity < MinCapacity {
		return MinCapacity
	}
	return capacity
}
