package hoptable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntryOrInsert(t *testing.T) {
	tb := newIntTable(16)
	p := tb.Entry(hashInt(1), eqInt(1)).OrInsert(10)
	require.Equal(t, 10, *p)
	require.Equal(t, 1, tb.Len())

	p2 := tb.Entry(hashInt(1), eqInt(10)).OrInsert(999)
	require.Equal(t, 10, *p2)
	require.Equal(t, 1, tb.Len())
}

func TestEntryAndModify(t *testing.T) {
	tb := newIntTable(16)
	tb.Entry(hashInt(1), eqInt(1)).OrInsert(1)
	tb.Entry(hashInt(1), eqInt(1)).AndModify(func(v *int) { *v += 41 }).OrInsert(0)

	v, ok := tb.Find(hashInt(1), eqInt(42))
	require.True(t, ok)
	require.Equal(t, 42, v)
}

func TestEntryOccupiedRemove(t *testing.T) {
	tb := newIntTable(16)
	require.NoError(t, tb.Insert(hashInt(5), 5, eqInt(5)))

	e := tb.Entry(hashInt(5), eqInt(5))
	occ, ok := e.Occupied()
	require.True(t, ok)
	require.Equal(t, 5, occ.Remove())

	_, ok = tb.Find(hashInt(5), eqInt(5))
	require.False(t, ok)
}

func TestTryInsertRefusesToDisplace(t *testing.T) {
	tb := newIntTable(16)
	// Fill the table enough that some insert will require displacement.
	inserted := 0
	for i := 0; i < 64; i++ {
		if err := tb.TryInsert(hashInt(i), i, eqInt(i)); err == nil {
			inserted++
		} else {
			require.ErrorIs(t, err, ErrWouldDisplace)
		}
	}
	require.Greater(t, inserted, 0)
}

func TestOverflowAcceptsWhenGrowthExhausted(t *testing.T) {
	// A constant hash forces every item to the same root bucket and
	// neighborhood, which a bounded number of growths cannot resolve for a
	// large enough item count: some must land in overflow.
	constHash := func(int) uint64 { return 0 }
	tb := New[int](0, constHash, WithOverflow[int](), WithNeighborhood[int](8))
	for i := 0; i < 5000; i++ {
		require.NoError(t, tb.Insert(constHash(i), i, eqInt(i)))
	}
	require.Equal(t, 5000, tb.Len())
	for i := 0; i < 5000; i++ {
		v, ok := tb.Find(constHash(i), eqInt(i))
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestWithoutOverflowReturnsGrowthExhausted(t *testing.T) {
	constHash := func(int) uint64 { return 0 }
	tb := New[int](0, constHash, WithNeighborhood[int](8))
	var sawErr bool
	for i := 0; i < 5000 && !sawErr; i++ {
		if err := tb.Insert(constHash(i), i, eqInt(i)); err != nil {
			require.ErrorIs(t, err, ErrGrowthExhausted)
			sawErr = true
		}
	}
	require.True(t, sawErr)
}
