package hoptable

// Remove deletes the item with the given hash satisfying eq, returning the
// removed value and true, or the zero value and false if no such item
// exists. Unlike a Swiss table, no tombstone is left behind: clearing the
// slot and decrementing its root's HopInfo count is always safe because the
// neighborhood invariant,
// not an unbroken probe chain, is what keeps future lookups bounded.
func (t *Table[V]) Remove(hash uint64, eq func(V) bool) (V, bool) {
	var zero V
	if idx := t.findSlot(hash, eq); idx >= 0 {
		v := t.slots[idx]
		root := t.rootOf(hash)
		d := t.bucketDistance(root, uintptr(idx))
		hopDec(t.hopinfo, root, uint32(d))
		t.tags[idx] = emptyTag
		t.slots[idx] = zero
		t.len--
		return v, true
	}

	if t.withOverflow {
		for i := range t.overflow {
			if eq(t.overflow[i]) {
				v := t.overflow[i]
				t.overflow = append(t.overflow[:i], t.overflow[i+1:]...)
				return v, true
			}
		}
	}

	return zero, false
}
