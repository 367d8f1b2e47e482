package hoptable

import (
	"unsafe"

	"github.com/hoptable/hoptable/internal/stats"
)

// Stats computes a snapshot of the table's current storage utilization.
// Purely diagnostic: nothing here is maintained incrementally, so calling it
// costs a full scan of the table's tags.
func (t *Table[V]) Stats() stats.DebugStats {
	totalSlots := len(t.tags)
	occupied := 0
	for _, tag := range t.tags {
		if tag&emptyTag == 0 {
			occupied++
		}
	}

	var loadFactor, slotUtil float64
	if t.maxPop > 0 {
		loadFactor = float64(t.len) / float64(t.maxPop)
	}
	if totalSlots > 0 {
		slotUtil = float64(occupied) / float64(totalSlots)
	}

	var zero V
	valueSize := sizeOfApprox(zero)
	totalBytes := len(t.hopinfo) + len(t.tags) + totalSlots*valueSize
	wastedBytes := (totalSlots - occupied) * (1 + valueSize)

	return stats.DebugStats{
		Populated:       t.len,
		OverflowCount:   len(t.overflow),
		Capacity:        t.maxPop,
		TotalSlots:      totalSlots,
		OccupiedSlots:   occupied,
		LoadFactor:      loadFactor,
		SlotUtilization: slotUtil,
		TotalBytes:      totalBytes,
		WastedBytes:     wastedBytes,
	}
}

// ProbeHistogram computes the distribution of item probe lengths (distance
// in buckets from root) and of per-root-bucket population.
func (t *Table[V]) ProbeHistogram() stats.ProbeHistogram {
	h := uintptr(t.neighborhood())
	probeLengths := make([]int, h)
	bucketPop := make([]int, lanes+1)

	for root := uintptr(0); root < t.cap.numBuckets; root++ {
		pop := 0
		for d := uintptr(0); d < h; d++ {
			c := int(hopCount(t.hopinfo, root, uint32(d)))
			probeLengths[d] += c
			pop += c
		}
		if pop < len(bucketPop) {
			bucketPop[pop]++
		} else {
			bucketPop[len(bucketPop)-1]++
		}
	}

	return stats.ProbeHistogram{
		ProbeLengthCounts: probeLengths,
		BucketPopulation:  bucketPop,
	}
}

// sizeOfApprox estimates the in-memory footprint of a single V for
// reporting purposes. It is intentionally approximate (unsafe.Sizeof
// undercounts values containing pointers to external allocations); good
// enough for a diagnostic, never used on a correctness path.
func sizeOfApprox[V any](zero V) int {
	return int(unsafe.Sizeof(zero))
}
