package hoptable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrowthPreservesAllItems(t *testing.T) {
	tb := newIntTable(8)
	const n = 2000
	for i := 0; i < n; i++ {
		require.NoError(t, tb.Insert(hashInt(i), i, eqInt(i)))
	}
	require.Equal(t, n, tb.Len())
	for i := 0; i < n; i++ {
		v, ok := tb.Find(hashInt(i), eqInt(i))
		require.True(t, ok, "missing %d after growth", i)
		require.Equal(t, i, v)
	}
}

func TestReserveAvoidsMidSequenceMiss(t *testing.T) {
	tb := newIntTable(4)
	before := tb.Capacity()
	tb.Reserve(500)
	require.GreaterOrEqual(t, tb.Capacity(), before+500)

	for i := 0; i < 500; i++ {
		require.NoError(t, tb.Insert(hashInt(i), i, eqInt(i)))
	}
	require.Equal(t, 500, tb.Len())
}

func TestShrinkToFit(t *testing.T) {
	tb := newIntTable(4096)
	for i := 0; i < 10; i++ {
		require.NoError(t, tb.Insert(hashInt(i), i, eqInt(i)))
	}
	bigCap := tb.Capacity()
	tb.ShrinkToFit()
	require.Less(t, tb.Capacity(), bigCap)
	require.Equal(t, 10, tb.Len())
	for i := 0; i < 10; i++ {
		_, ok := tb.Find(hashInt(i), eqInt(i))
		require.True(t, ok)
	}
}

func TestClone(t *testing.T) {
	tb := newIntTable(64)
	for i := 0; i < 30; i++ {
		require.NoError(t, tb.Insert(hashInt(i), i, eqInt(i)))
	}

	clone := tb.Clone(func(v int) int { return v })
	require.NoError(t, tb.Insert(hashInt(999), 999, eqInt(999)))

	_, ok := clone.Find(hashInt(999), eqInt(999))
	require.False(t, ok, "clone should not see mutations made after it was taken")

	for i := 0; i < 30; i++ {
		v, ok := clone.Find(hashInt(i), eqInt(i))
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestDrainEmptiesTable(t *testing.T) {
	tb := newIntTable(32)
	for i := 0; i < 20; i++ {
		require.NoError(t, tb.Insert(hashInt(i), i, eqInt(i)))
	}
	drained := tb.Drain()
	require.Len(t, drained, 20)
	require.Equal(t, 0, tb.Len())
	require.True(t, tb.IsEmpty())
}
