// Package stats holds the diagnostic snapshots a Table can report about
// itself: overall occupancy/utilization (DebugStats) and the distribution of
// how far items sit from their root bucket (ProbeHistogram). Ported from
// original_source's cfg(feature = "stats") DebugStats/ProbeHistogram, which
// the distillation into spec.md dropped as out of scope for the core data
// structure but which a complete implementation still carries as a
// caller-invoked diagnostic, never maintained incrementally on the hot path.
package stats

import "fmt"

// DebugStats summarizes a table's storage utilization at the moment it was
// computed.
type DebugStats struct {
	Populated      int     // number of items stored in-table
	OverflowCount  int     // number of items parked in the overflow vector
	Capacity       int     // items the table can hold before its next growth
	TotalSlots     int     // total (tag, value) slots allocated
	OccupiedSlots  int     // slots currently holding an item
	LoadFactor     float64 // Populated / Capacity
	SlotUtilization float64 // OccupiedSlots / TotalSlots
	TotalBytes     int     // approximate bytes backing hopinfo+tags+slots
	WastedBytes    int     // approximate bytes in unoccupied slots
}

// String renders the stats the way original_source's DebugStats::print did,
// as a short single-line report of key=value pairs.
func (s DebugStats) String() string {
	return fmt.Sprintf(
		"populated=%d overflow=%d capacity=%d slots=%d/%d load=%.3f util=%.3f bytes=%d wasted=%d",
		s.Populated, s.OverflowCount, s.Capacity, s.OccupiedSlots, s.TotalSlots,
		s.LoadFactor, s.SlotUtilization, s.TotalBytes, s.WastedBytes)
}

// ProbeHistogram buckets items by how many buckets their slot sits from
// their root bucket, and separately records how many root buckets ended up
// with each population count. A hopscotch table in good health has almost
// all mass at probe length 0, a long thin tail out to H-1, and nothing
// beyond.
type ProbeHistogram struct {
	// ProbeLengthCounts[d] is the number of items found d buckets from their
	// root (ProbeLengthCounts[0] is items in their own root bucket).
	ProbeLengthCounts []int
	// BucketPopulation[n] is the number of root buckets with exactly n items
	// rooted there; the last entry also counts every root with more.
	BucketPopulation []int
}

// MaxProbeLength returns the farthest any item sits from its root bucket.
func (h ProbeHistogram) MaxProbeLength() int {
	max := 0
	for d, n := range h.ProbeLengthCounts {
		if n > 0 && d > max {
			max = d
		}
	}
	return max
}

func (h ProbeHistogram) String() string {
	return fmt.Sprintf("probe lengths=%v bucket population=%v", h.ProbeLengthCounts, h.BucketPopulation)
}
