package hoptable

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkNeighborhoodInvariant verifies, for every root bucket, that each
// non-zero HopInfo count lies at a distance below the neighborhood width H
// and that the bucket at that distance holds at least one occupied slot.
func checkNeighborhoodInvariant[V any](t *testing.T, tb *Table[V]) {
	h := uintptr(tb.neighborhood())
	for root := uintptr(0); root < tb.cap.numBuckets; root++ {
		hopIter(tb.hopinfo, root, h, func(d uint32) bool {
			require.Less(t, int(d), int(h), "hop bit set beyond neighborhood width")
			bucket := root + uintptr(d)
			base := tb.bucketBase(bucket)
			occ := matchOccupied(tb.tags, base, tb.be)
			require.NotZero(t, uint16(occ), "hop bit set for bucket %d but no occupied slot found", bucket)
			return true
		})
	}
}

func TestNeighborhoodInvariantUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tb := newIntTable(8)
	reference := map[int]bool{}

	for iter := 0; iter < 3000; iter++ {
		key := rng.Intn(400)
		if rng.Intn(3) == 0 && reference[key] {
			_, ok := tb.Remove(hashInt(key), eqInt(key))
			require.True(t, ok)
			delete(reference, key)
		} else {
			require.NoError(t, tb.Insert(hashInt(key), key, eqInt(key)))
			reference[key] = true
		}

		if iter%200 == 0 {
			checkNeighborhoodInvariant(t, tb)
		}
	}

	checkNeighborhoodInvariant(t, tb)
	require.Equal(t, len(reference), tb.Len())
	for key := range reference {
		v, ok := tb.Find(hashInt(key), eqInt(key))
		require.True(t, ok)
		require.Equal(t, key, v)
	}
}

func TestRemoveThenReinsertRoundTrips(t *testing.T) {
	tb := newIntTable(128)
	for i := 0; i < 100; i++ {
		require.NoError(t, tb.Insert(hashInt(i), i, eqInt(i)))
	}
	for i := 0; i < 100; i += 2 {
		_, ok := tb.Remove(hashInt(i), eqInt(i))
		require.True(t, ok)
	}
	for i := 0; i < 100; i += 2 {
		require.NoError(t, tb.Insert(hashInt(i), i*10, eqInt(i)))
	}
	for i := 0; i < 100; i++ {
		want := i
		if i%2 == 0 {
			want = i * 10
		}
		v, ok := tb.Find(hashInt(i), eqInt(want))
		require.True(t, ok)
		if i%2 == 0 {
			require.Equal(t, i*10, v)
		} else {
			require.Equal(t, i, v)
		}
	}
}
