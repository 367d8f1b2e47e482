package hoptable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatsReflectPopulation(t *testing.T) {
	tb := newIntTable(128)
	for i := 0; i < 50; i++ {
		require.NoError(t, tb.Insert(hashInt(i), i, eqInt(i)))
	}

	s := tb.Stats()
	require.Equal(t, 50, s.Populated)
	require.Equal(t, 0, s.OverflowCount)
	require.Equal(t, 50, s.OccupiedSlots)
	require.InDelta(t, float64(50)/float64(s.Capacity), s.LoadFactor, 1e-9)
}

func TestProbeHistogramSumsToPopulation(t *testing.T) {
	tb := newIntTable(256)
	for i := 0; i < 150; i++ {
		require.NoError(t, tb.Insert(hashInt(i), i, eqInt(i)))
	}

	h := tb.ProbeHistogram()
	total := 0
	for _, c := range h.ProbeLengthCounts {
		total += c
	}
	require.Equal(t, 150, total)
	require.Less(t, h.MaxProbeLength(), int(tb.neighborhood()))
}
