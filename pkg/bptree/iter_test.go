package bptree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flier/bptreemap/pkg/bptree"
)

func seeded(t *testing.T, n int) *bptree.Map[int, int] {
	t.Helper()
	m, err := bptree.New[int, int](4)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		m.Insert(i, i*10)
	}
	return m
}

func TestItemsForwardOrderAndRemaining(t *testing.T) {
	m := seeded(t, 20)

	c := m.Items()
	n, sized := c.Remaining()
	assert.True(t, sized)
	assert.Equal(t, 20, n)

	var got []int
	for {
		k, v, ok := c.Next()
		if !ok {
			break
		}
		assert.Equal(t, k*10, v)
		got = append(got, k)
	}
	assert.Len(t, got, 20)
	for i, k := range got {
		assert.Equal(t, i, k)
	}
}

func TestItemsBackwardOrder(t *testing.T) {
	m := seeded(t, 20)

	c := m.Items()
	var got []int
	for {
		k, _, ok := c.Prev()
		if !ok {
			break
		}
		got = append(got, k)
	}
	require.Len(t, got, 20)
	for i, k := range got {
		assert.Equal(t, 19-i, k)
	}
}

func TestBoundedRangeHasNoSizeHintAndYieldsSpan(t *testing.T) {
	m := seeded(t, 1000)

	c := m.Range(bptree.Included(500), bptree.Excluded(600))
	_, sized := c.Remaining()
	assert.False(t, sized, "a bounded range has no O(1) size hint")

	var got []int
	for {
		k, _, ok := c.Next()
		if !ok {
			break
		}
		got = append(got, k)
	}
	require.Len(t, got, 100)
	assert.Equal(t, 500, got[0])
	assert.Equal(t, 599, got[len(got)-1])
}

func TestRangeReverse(t *testing.T) {
	m := seeded(t, 1000)

	c := m.Range(bptree.Included(100), bptree.Included(200))
	var got []int
	for {
		k, _, ok := c.Prev()
		if !ok {
			break
		}
		got = append(got, k)
	}
	require.Len(t, got, 101)
	assert.Equal(t, 200, got[0])
	assert.Equal(t, 100, got[len(got)-1])
}

func TestRangeExcludedBounds(t *testing.T) {
	m := seeded(t, 50)

	c := m.Range(bptree.Excluded(10), bptree.Excluded(15))
	var got []int
	for {
		k, _, ok := c.Next()
		if !ok {
			break
		}
		got = append(got, k)
	}
	assert.Equal(t, []int{11, 12, 13, 14}, got)
}

func TestKeysAndValuesSeq(t *testing.T) {
	m := seeded(t, 10)

	var keys []int
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	assert.Len(t, keys, 10)

	var values []int
	for v := range m.Values() {
		values = append(values, v)
	}
	assert.Len(t, values, 10)
	assert.Equal(t, keys[0]*10, values[0])
}

func TestCursorAllAndBackwardSeq(t *testing.T) {
	m := seeded(t, 5)

	var forward []int
	for k, v := range m.Items().All() {
		forward = append(forward, k)
		assert.Equal(t, k*10, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, forward)

	var backward []int
	for k := range m.Items().Backward() {
		backward = append(backward, k)
	}
	assert.Equal(t, []int{4, 3, 2, 1, 0}, backward)
}

func TestRangeOnEmptyMap(t *testing.T) {
	m, err := bptree.New[int, int](4)
	require.NoError(t, err)

	c := m.Range(bptree.Unbounded[int](), bptree.Unbounded[int]())
	_, _, ok := c.Next()
	assert.False(t, ok)
	_, _, ok = c.Prev()
	assert.False(t, ok)
}
