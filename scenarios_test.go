package hoptable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScenarioEmptyTableLookupMiss(t *testing.T) {
	tb := newIntTable(16)
	_, ok := tb.Find(hashInt(1), eqInt(1))
	require.False(t, ok)
	_, ok = tb.Remove(hashInt(1), eqInt(1))
	require.False(t, ok)
}

func TestScenarioSingleInsertIsFoundInRootBucket(t *testing.T) {
	tb := newIntTable(16)
	hash := hashInt(7)
	require.NoError(t, tb.Insert(hash, 7, eqInt(7)))

	root := tb.rootOf(hash)
	require.Greater(t, hopCount(tb.hopinfo, root, 0), uint8(0), "a fresh insert into an empty table should land in its own root bucket")
}

func TestScenarioGrowthTriggersExactlyAtLoadFactorBoundary(t *testing.T) {
	tb := newIntTable(0, WithLoadFactor875[int]())
	capBefore := tb.Capacity()

	for i := 0; i < capBefore; i++ {
		require.NoError(t, tb.Insert(hashInt(i), i, eqInt(i)))
	}
	require.Equal(t, capBefore, tb.Capacity(), "reaching capacity should not itself force growth")

	require.NoError(t, tb.Insert(hashInt(capBefore), capBefore, eqInt(capBefore)))
	require.Greater(t, tb.Capacity(), capBefore, "the insert that exceeds capacity must grow the table")
}

func TestScenarioRemovalLeavesNoTombstone(t *testing.T) {
	tb := newIntTable(16)
	hash := hashInt(3)
	require.NoError(t, tb.Insert(hash, 3, eqInt(3)))
	root := tb.rootOf(hash)
	require.NotZero(t, hopCount(tb.hopinfo, root, 0))

	_, ok := tb.Remove(hash, eqInt(3))
	require.True(t, ok)
	require.Zero(t, hopCount(tb.hopinfo, root, 0), "removal must clear the hop bit directly, no tombstone state")

	base := tb.bucketBase(root)
	require.Equal(t, uint8(emptyTag), tb.tags[base])
}

func TestScenarioBubbleBackRelocatesAnExistingItem(t *testing.T) {
	// A small neighborhood and a run of inserts sharing buckets forces at
	// least one bubble-back relocation before the table needs to grow.
	tb := newIntTable(256, WithNeighborhood[int](8))
	for i := 0; i < 120; i++ {
		require.NoError(t, tb.Insert(hashInt(i), i, eqInt(i)))
	}
	checkNeighborhoodInvariant(t, tb)
	for i := 0; i < 120; i++ {
		v, ok := tb.Find(hashInt(i), eqInt(i))
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestScenarioDuplicateInsertUpdatesInPlace(t *testing.T) {
	tb := newIntTable(16)
	require.NoError(t, tb.Insert(hashInt(9), 9, eqInt(9)))
	before := tb.Len()
	require.NoError(t, tb.Insert(hashInt(9), 900, eqInt(9)))
	require.Equal(t, before, tb.Len())
	v, _ := tb.Find(hashInt(9), eqInt(900))
	require.Equal(t, 900, v)
}
