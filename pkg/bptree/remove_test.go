package bptree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flier/bptreemap/pkg/bptree"
)

func TestRemoveMissingKeyIsNoop(t *testing.T) {
	m, err := bptree.New[int, string](4)
	require.NoError(t, err)

	m.Insert(1, "a")

	_, ok := m.Remove(2)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
}

func TestRemoveLastKeyLeavesEmptyRootLeaf(t *testing.T) {
	m, err := bptree.New[int, string](4)
	require.NoError(t, err)

	m.Insert(1, "a")
	old, ok := m.Remove(1)
	assert.True(t, ok)
	assert.Equal(t, "a", old)
	assert.Equal(t, 0, m.Len())
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 1, m.LeafCount())
}

func TestRemoveTriggersMergeAndRootCollapse(t *testing.T) {
	m, err := bptree.New[int, int](4)
	require.NoError(t, err)

	for _, k := range []int{1, 2, 3, 4, 5} {
		m.Insert(k, k)
	}
	require.Equal(t, 2, m.LeafCount())
	require.Equal(t, 2, m.Height())

	m.Remove(1)
	m.Remove(2)
	m.Remove(3)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 1, m.LeafCount())
	assert.Equal(t, 1, m.Height())

	k, _, ok := m.First()
	assert.True(t, ok)
	assert.Equal(t, 4, k)
	k, _, ok = m.Last()
	assert.True(t, ok)
	assert.Equal(t, 5, k)
}

func TestInsertRemoveAlternatingStaysConsistent(t *testing.T) {
	m, err := bptree.New[int, int](4)
	require.NoError(t, err)

	const n = 300
	for i := 0; i < n; i++ {
		m.Insert(i, i)
		if i%3 == 0 {
			m.Remove(i / 3)
		}
	}

	prev := -1
	c := m.Items()
	for {
		k, _, ok := c.Next()
		if !ok {
			break
		}
		assert.Greater(t, k, prev)
		prev = k
	}

	for i := 0; i < n; i++ {
		m.Remove(i)
	}
	assert.Equal(t, 0, m.Len())
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 1, m.LeafCount())
	assert.Equal(t, 1, m.Height())
}

func TestRemoveAllThenReinsertWorks(t *testing.T) {
	m, err := bptree.New[int, int](4)
	require.NoError(t, err)

	const n = 100
	for i := 0; i < n; i++ {
		m.Insert(i, i)
	}
	for i := 0; i < n; i++ {
		_, ok := m.Remove(i)
		assert.True(t, ok)
	}
	assert.Equal(t, 0, m.Len())

	m.Insert(42, 42)
	v, ok := m.Get(42)
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}
