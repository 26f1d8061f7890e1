package bptree

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinarySearchFindsExistingKey(t *testing.T) {
	idx, found := binarySearch([]int{1, 3, 5, 7, 9}, 5, cmp.Compare[int])
	assert.True(t, found)
	assert.Equal(t, 2, idx)
}

func TestBinarySearchReturnsInsertionPoint(t *testing.T) {
	idx, found := binarySearch([]int{1, 3, 5, 7, 9}, 4, cmp.Compare[int])
	assert.False(t, found)
	assert.Equal(t, 2, idx)
}

func TestBinarySearchEmptySlice(t *testing.T) {
	idx, found := binarySearch([]int(nil), 1, cmp.Compare[int])
	assert.False(t, found)
	assert.Equal(t, 0, idx)
}

func TestBinarySearchBeforeAndAfterRange(t *testing.T) {
	keys := []int{2, 4, 6}

	idx, found := binarySearch(keys, 0, cmp.Compare[int])
	assert.False(t, found)
	assert.Equal(t, 0, idx)

	idx, found = binarySearch(keys, 10, cmp.Compare[int])
	assert.False(t, found)
	assert.Equal(t, 3, idx)
}

func TestDescendRecordsPath(t *testing.T) {
	left := newLeaf[int, string](4)
	left.keys = append(left.keys, 1, 2)
	left.vals = append(left.vals, "a", "b")

	right := newLeaf[int, string](4)
	right.keys = append(right.keys, 3, 4)
	right.vals = append(right.vals, "c", "d")

	left.next = right
	right.prev = left

	root := newBranch[int, string](4)
	root.keys = append(root.keys, 3)
	root.children = append(root.children, node[int, string](left), node[int, string](right))

	var path []pathStep[int, string]
	leaf := descend[int, string](root, 3, cmp.Compare[int], &path)

	assert.Same(t, right, leaf)
	if assert.Len(t, path, 1) {
		assert.Same(t, root, path[0].branch)
		assert.Equal(t, 1, path[0].index)
	}
}

func TestLeafForKeyDoesNotTrackPath(t *testing.T) {
	leaf := newLeaf[int, string](4)
	leaf.keys = append(leaf.keys, 1)
	leaf.vals = append(leaf.vals, "a")

	found := leafForKey[int, string](leaf, 1, cmp.Compare[int])
	assert.Same(t, leaf, found)
}
