package hoptable

// Table is an open-addressed hash table built on 16-way hopscotch hashing.
// It stores values of type V and requires the caller to supply a hash and an
// equality predicate for every operation; see the hashmap/hashset packages
// for a conventional keyed interface.
//
// A Table is NOT goroutine-safe: it is single-owner.
type Table[V any] struct {
	hopinfo []uint8 // 16 count bytes per root bucket (see tags.go)
	tags    []byte  // (B+H)*16 tag bytes, emptyTag for vacant slots
	slots   []V     // (B+H)*16 value slots, parallel to tags

	overflow []V // used only when withOverflow is set

	hashOf func(V) uint64 // rehashes a stored value during growth and bubble-back

	cap capacity
	lf  loadFactor
	be  backend

	len          int
	maxPop       int
	withOverflow bool

	// bubbleWindow is the number of extra buckets beyond H that the
	// empty-slot scan is willing to walk before giving up and reporting
	// needsGrow.
	bubbleWindow uintptr
}

// defaultBubbleWindow is the suggested default search window, K=4.
const defaultBubbleWindow = 4

// New creates a table ready to hold roughly n items before its first growth.
// hashOf must return the same hash used by the caller for find/insert/remove
// calls on any given value; the table uses it only to recompute hashes for
// stored values, during growth and when bubble-back looks for an item to
// move.
func New[V any](n int, hashOf func(V) uint64, opts ...Option[V]) *Table[V] {
	t := &Table[V]{
		hashOf:       hashOf,
		lf:           loadFactor92,
		be:           backendAuto,
		bubbleWindow: defaultBubbleWindow,
	}
	h := neighborhood16
	for _, o := range opts {
		o.apply(t, &h)
	}

	t.cap = newCapacity(n, h, t.lf)
	t.allocate()
	return t
}

func (t *Table[V]) neighborhood() neighborhood {
	return t.cap.h
}

// allocate (re)builds the backing slices for the table's current capacity,
// all slots empty, as three parallel Go slices rather than one hand-laid-out
// byte allocation; see DESIGN.md for the reasoning.
func (t *Table[V]) allocate() {
	t.hopinfo = make([]uint8, t.cap.numBuckets*hopWidth)
	n := t.cap.totalSlots()
	t.tags = make([]byte, n)
	for i := range t.tags {
		t.tags[i] = emptyTag
	}
	t.slots = make([]V, n)
	t.maxPop = t.cap.maxPop(t.lf)
}

// Len returns the number of items in the table, including any parked in the
// overflow vector.
func (t *Table[V]) Len() int { return t.len + len(t.overflow) }

// IsEmpty reports whether the table holds no items.
func (t *Table[V]) IsEmpty() bool { return t.Len() == 0 }

// Capacity returns the number of items the table can hold before its next
// growth.
func (t *Table[V]) Capacity() int { return t.maxPop }

// Clear removes all items from the table without releasing its backing
// storage.
func (t *Table[V]) Clear() {
	for i := range t.hopinfo {
		t.hopinfo[i] = 0
	}
	for i := range t.tags {
		t.tags[i] = emptyTag
	}
	var zero V
	for i := range t.slots {
		t.slots[i] = zero
	}
	t.overflow = t.overflow[:0]
	t.len = 0
}

func (t *Table[V]) rootOf(hash uint64) uintptr {
	return uintptr(hash) & t.cap.mask()
}

func tagOf(hash uint64) uint8 {
	return uint8(hash>>57) & 0x7f
}

func (t *Table[V]) bucketBase(bucket uintptr) uintptr {
	return bucket * lanes
}
