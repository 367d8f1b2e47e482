package hoptable

// Find looks up the item with the given hash satisfying eq, per spec.md §4.3:
// the root bucket is always scanned first (the overwhelming majority of
// lookups resolve there), then only the neighbor buckets for which the root's
// HopInfo count is non-zero. Returns the value and true on a hit.
func (t *Table[V]) Find(hash uint64, eq func(V) bool) (V, bool) {
	var zero V
	root := t.rootOf(hash)
	tag := tagOf(hash)

	if v, ok := t.scanBucket(root, tag, eq); ok {
		return v, true
	}

	found := false
	var result V
	hopIter(t.hopinfo, root, uintptr(t.neighborhood()), func(d uint32) bool {
		if d == 0 {
			return true // the root bucket itself was already scanned above
		}
		if v, ok := t.scanBucket(root+uintptr(d), tag, eq); ok {
			result, found = v, true
			return false
		}
		return true
	})
	if found {
		return result, true
	}

	if t.withOverflow {
		for i := range t.overflow {
			if eq(t.overflow[i]) {
				return t.overflow[i], true
			}
		}
	}

	return zero, false
}

// Contains reports whether an item with the given hash satisfying eq exists.
func (t *Table[V]) Contains(hash uint64, eq func(V) bool) bool {
	_, ok := t.Find(hash, eq)
	return ok
}

// scanBucket checks every occupied slot in the bucket at the given absolute
// bucket index whose tag equals tag, returning the first value for which eq
// holds.
func (t *Table[V]) scanBucket(bucket uintptr, tag uint8, eq func(V) bool) (V, bool) {
	var zero V
	base := t.bucketBase(bucket)
	m := matchTag(t.tags, base, tag, t.be)
	for m != 0 {
		off := m.next()
		m = m.clear(off)
		idx := base + uintptr(off)
		if eq(t.slots[idx]) {
			return t.slots[idx], true
		}
	}
	return zero, false
}

// findSlot returns the absolute slot index holding the item with the given
// hash satisfying eq, or -1 if absent from the table proper (it may still be
// in the overflow vector). Used by Remove and the entry API, which need the
// location rather than a copy of the value.
func (t *Table[V]) findSlot(hash uint64, eq func(V) bool) int {
	root := t.rootOf(hash)
	tag := tagOf(hash)

	if idx := t.scanBucketSlot(root, tag, eq); idx >= 0 {
		return idx
	}

	result := -1
	hopIter(t.hopinfo, root, uintptr(t.neighborhood()), func(d uint32) bool {
		if d == 0 {
			return true
		}
		if idx := t.scanBucketSlot(root+uintptr(d), tag, eq); idx >= 0 {
			result = idx
			return false
		}
		return true
	})
	return result
}

func (t *Table[V]) scanBucketSlot(bucket uintptr, tag uint8, eq func(V) bool) int {
	base := t.bucketBase(bucket)
	m := matchTag(t.tags, base, tag, t.be)
	for m != 0 {
		off := m.next()
		m = m.clear(off)
		idx := base + uintptr(off)
		if eq(t.slots[idx]) {
			return int(idx)
		}
	}
	return -1
}
