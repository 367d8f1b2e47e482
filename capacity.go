package hoptable

import "math/bits"

// lanes is the number of slots per bucket. Fixed at 16 to match the width of
// the tag scan (see tags.go); unlike the neighborhood size H this is not
// configurable.
const lanes = 16

// emptyTag marks an empty slot. The top bit is reserved so empty slots never
// match a lookup tag, which always has its top bit clear (tags.go).
const emptyTag = 0x80

// neighborhood is the configured hop range H, 8 or 16.
type neighborhood uint8

const (
	neighborhood8  neighborhood = 8
	neighborhood16 neighborhood = 16
)

// loadFactor is one of the three load-factor targets spec.md permits,
// expressed as a fraction to avoid floating point in the growth hot path.
type loadFactor struct {
	num, den uint32
}

var (
	loadFactor875 = loadFactor{7, 8}    // 87.5%
	loadFactor92  = loadFactor{23, 25}  // 92%
	loadFactor97  = loadFactor{31, 32}  // ~97%
)

// capacity describes the bucket geometry of a table: numBuckets root buckets
// (always a power of two, at least the configured minimum), plus H padding
// buckets appended so the last root's neighborhood never wraps.
type capacity struct {
	numBuckets uintptr // B
	h          neighborhood
}

// minBuckets is the smallest legal B for the given neighborhood size
// (spec.md §3, Invariants/Capacity): large enough that the padding and SIMD
// scans over a bucket remain meaningful.
func minBuckets(h neighborhood) uintptr {
	return uintptr(h)
}

// newCapacity computes the smallest power-of-two bucket count B such that
// lanes*B*lf.num/lf.den >= n, floored to minBuckets(h).
func newCapacity(n int, h neighborhood, lf loadFactor) capacity {
	if n < 0 {
		n = 0
	}
	min := minBuckets(h)
	if n == 0 {
		return capacity{numBuckets: min, h: h}
	}

	// Smallest B (power of two) with lanes*B*lf.num/lf.den >= n, i.e.
	// B >= n*lf.den / (lanes*lf.num).
	need := (uint64(n)*uint64(lf.den) + uint64(lanes)*uint64(lf.num) - 1) / (uint64(lanes) * uint64(lf.num))
	b := uintptr(1) << bits.Len64(need-1)
	if need <= 1 {
		b = 1
	}
	if b < min {
		b = min
	}
	return capacity{numBuckets: b, h: h}
}

// grow doubles the bucket count, respecting the configured minimum.
func (c capacity) grow() capacity {
	b := c.numBuckets * 2
	if b < minBuckets(c.h) {
		b = minBuckets(c.h)
	}
	return capacity{numBuckets: b, h: c.h}
}

// mask is the bitmask used to derive a root bucket index from a hash
// (root = hash & mask), valid because numBuckets is a power of two.
func (c capacity) mask() uintptr {
	return c.numBuckets - 1
}

// totalBuckets is B+H: the root buckets plus the trailing padding buckets
// that let the neighborhood of root B-1 extend without wraparound.
func (c capacity) totalBuckets() uintptr {
	return c.numBuckets + uintptr(c.h)
}

// totalSlots is the number of (tag, value) slots backing the table.
func (c capacity) totalSlots() uintptr {
	return c.totalBuckets() * lanes
}

// maxPop is the item count at which the table must grow under the given load
// factor target (spec.md Testable Properties: "insert at exactly L*16*B
// triggers growth on the next insert, not this one").
func (c capacity) maxPop(lf loadFactor) int {
	return int(uint64(c.numBuckets) * lanes * uint64(lf.num) / uint64(lf.den))
}
