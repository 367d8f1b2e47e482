package hoptable

// Entry is a handle to a single slot in the table, either already occupied
// or vacant, returned by Table.Entry. It mirrors the Occupied/Vacant split
// of original_source's Entry enum (spec.md §4.5).
type Entry[V any] struct {
	occupied *OccupiedEntry[V]
	vacant   *VacantEntry[V]
}

// OccupiedEntry gives access to an existing item's slot. overflowIdx is -1
// for an item stored in the table proper, or the item's index into the
// overflow vector otherwise (original_source's OccupiedEntry carries the
// same distinction as an Option<usize>). root is the item's root bucket,
// carried from the hash the caller supplied rather than re-derived on
// removal.
type OccupiedEntry[V any] struct {
	t           *Table[V]
	idx         uintptr
	root        uintptr
	overflowIdx int
}

func occupiedAt[V any](t *Table[V], idx, root uintptr) *OccupiedEntry[V] {
	return &OccupiedEntry[V]{t: t, idx: idx, root: root, overflowIdx: -1}
}

func occupiedOverflow[V any](t *Table[V], overflowIdx int) *OccupiedEntry[V] {
	return &OccupiedEntry[V]{t: t, overflowIdx: overflowIdx}
}

// VacantEntry gives access to an empty slot the item's hash is entitled to
// occupy, allowing an insert to skip the redundant lookup Table.Insert would
// otherwise perform.
type VacantEntry[V any] struct {
	t    *Table[V]
	hash uint64
}

// Entry returns a handle to the slot that does or would hold the item with
// the given hash satisfying eq.
func (t *Table[V]) Entry(hash uint64, eq func(V) bool) Entry[V] {
	if idx := t.findSlot(hash, eq); idx >= 0 {
		return Entry[V]{occupied: occupiedAt(t, uintptr(idx), t.rootOf(hash))}
	}
	if t.withOverflow {
		for i := range t.overflow {
			if eq(t.overflow[i]) {
				return Entry[V]{occupied: occupiedOverflow(t, i)}
			}
		}
	}
	return Entry[V]{vacant: &VacantEntry[V]{t: t, hash: hash}}
}

// IsOccupied reports whether the entry refers to an existing item.
func (e Entry[V]) IsOccupied() bool { return e.occupied != nil }

// Occupied returns the entry's OccupiedEntry and true if it is occupied.
func (e Entry[V]) Occupied() (*OccupiedEntry[V], bool) { return e.occupied, e.occupied != nil }

// Vacant returns the entry's VacantEntry and true if it is vacant.
func (e Entry[V]) Vacant() (*VacantEntry[V], bool) { return e.vacant, e.vacant != nil }

// OrInsert inserts def if the entry is vacant, and returns a reference to
// the resulting value's slot either way.
func (e Entry[V]) OrInsert(def V) *V {
	if e.occupied != nil {
		return e.occupied.GetMut()
	}
	occ := e.vacant.Insert(def)
	return occ.GetMut()
}

// OrInsertWith inserts the result of calling makeDefault if the entry is
// vacant, without calling makeDefault at all if it is occupied.
func (e Entry[V]) OrInsertWith(makeDefault func() V) *V {
	if e.occupied != nil {
		return e.occupied.GetMut()
	}
	occ := e.vacant.Insert(makeDefault())
	return occ.GetMut()
}

// OrDefault inserts the zero value of V if the entry is vacant.
func (e Entry[V]) OrDefault() *V {
	var zero V
	return e.OrInsert(zero)
}

// AndModify calls f with a pointer to the entry's value if it is occupied,
// leaving it vacant (and calling nothing) otherwise. Returns the same Entry
// so callers can chain into OrInsert, matching original_source's fluent
// Entry style.
func (e Entry[V]) AndModify(f func(*V)) Entry[V] {
	if e.occupied != nil {
		f(e.occupied.GetMut())
	}
	return e
}

// Get returns the occupied entry's current value.
func (o *OccupiedEntry[V]) Get() V { return *o.GetMut() }

// GetMut returns a pointer into the table's storage for the occupied
// entry's value, usable for in-place mutation.
func (o *OccupiedEntry[V]) GetMut() *V {
	if o.overflowIdx >= 0 {
		return &o.t.overflow[o.overflowIdx]
	}
	return &o.t.slots[o.idx]
}

// Set overwrites the occupied entry's value, returning the old one.
func (o *OccupiedEntry[V]) Set(v V) V {
	p := o.GetMut()
	old := *p
	*p = v
	return old
}

// Remove deletes the occupied entry's item from the table and returns it.
func (o *OccupiedEntry[V]) Remove() V {
	t := o.t
	if o.overflowIdx >= 0 {
		v := t.overflow[o.overflowIdx]
		t.overflow = append(t.overflow[:o.overflowIdx], t.overflow[o.overflowIdx+1:]...)
		return v
	}
	v := t.slots[o.idx]
	d := t.bucketDistance(o.root, o.idx)
	hopDec(t.hopinfo, o.root, uint32(d))
	var zero V
	t.tags[o.idx] = emptyTag
	t.slots[o.idx] = zero
	t.len--
	return v
}

// Insert places value into the vacant entry's slot, growing the table as
// needed, and returns the resulting OccupiedEntry.
func (e *VacantEntry[V]) Insert(value V) *OccupiedEntry[V] {
	t := e.t
	idx, root, err := t.insertNew(e.hash, value)
	if err != nil {
		// insertNew only errors when growth is exhausted and no overflow
		// vector is configured; OrInsert-style callers have no way to
		// surface it, so fall back to appending past the growth bound
		// rather than silently dropping the value.
		t.overflow = append(t.overflow, value)
		return occupiedOverflow(t, len(t.overflow)-1)
	}
	if idx < 0 {
		return occupiedOverflow(t, len(t.overflow)-1)
	}
	return occupiedAt(t, uintptr(idx), root)
}
