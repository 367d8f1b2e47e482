package hoptable

// Insert places value, keyed by hash, into the table, replacing any existing
// item for which eq holds. It grows the table as needed and returns
// ErrGrowthExhausted if no placement could be found within the bounded
// number of growth attempts and no overflow vector is configured.
func (t *Table[V]) Insert(hash uint64, value V, eq func(V) bool) error {
	if idx := t.findSlot(hash, eq); idx >= 0 {
		t.slots[idx] = value
		return nil
	}
	if t.withOverflow {
		for i := range t.overflow {
			if eq(t.overflow[i]) {
				t.overflow[i] = value
				return nil
			}
		}
	}
	_, _, err := t.insertNew(hash, value)
	return err
}

// TryInsert is the strict worst-case variant: it places
// value only if an empty slot already exists within the item's neighborhood,
// never bubbling an existing item out of the way. It returns ErrWouldDisplace if
// placement would require displacing another item.
func (t *Table[V]) TryInsert(hash uint64, value V, eq func(V) bool) error {
	if idx := t.findSlot(hash, eq); idx >= 0 {
		t.slots[idx] = value
		return nil
	}

	root := t.rootOf(hash)
	tag := tagOf(hash)
	h := uintptr(t.neighborhood())
	base := t.bucketBase(root)
	window := h * lanes
	off := findEmpty(t.tags, base, window, t.be)
	if off < 0 {
		return ErrWouldDisplace
	}
	idx := base + uintptr(off)
	t.place(root, idx, tag, value)
	t.len++
	return nil
}

// insertNew places a brand-new item (the caller has already established no
// equal item exists), growing the table as many times as necessary. idx is
// the slot the item landed in (with root its root bucket), or -1 if it was
// appended to the overflow vector (its index there is len(t.overflow)-1).
func (t *Table[V]) insertNew(hash uint64, value V) (idx int, root uintptr, err error) {
	for attempt := 0; ; attempt++ {
		if t.len >= t.maxPop {
			if attempt >= maxGrowthAttempts {
				break
			}
			t.growAndRehash()
			hash = t.hashOf(value)
		}

		root = t.rootOf(hash)
		tag := tagOf(hash)
		if slot, ok := t.tryPlace(root, tag); ok {
			t.place(root, slot, tag, value)
			t.len++
			return int(slot), root, nil
		}
		// A fully-occupied neighborhood (every one of its H buckets already
		// holds an item rooted there) cannot be helped by growing: growth
		// only redistributes items across more roots, and a degenerate hash
		// that keeps landing on this same root will saturate it again
		// immediately after rehashing. Short-circuiting here keeps a run of
		// adversarial-hash inserts from paying a full rehash each.
		if t.hopFull(root) {
			break
		}
		if attempt >= maxGrowthAttempts {
			break
		}
		t.growAndRehash()
		hash = t.hashOf(value)
	}

	if t.withOverflow {
		t.overflow = append(t.overflow, value)
		return -1, 0, nil
	}
	return -1, 0, ErrGrowthExhausted
}

// tryPlace finds a slot for a new item rooted at root, bubbling existing
// items backward as needed to bring an empty slot within the neighborhood.
// It never grows the table itself; ok is false if no
// placement could be found within the configured bubble window, in which
// case the caller should grow and retry.
func (t *Table[V]) tryPlace(root uintptr, tag uint8) (idx uintptr, ok bool) {
	h := uintptr(t.neighborhood())
	base := t.bucketBase(root)
	searchWindow := h*lanes + t.bubbleWindow*lanes
	off := findEmpty(t.tags, base, searchWindow, t.be)
	if off < 0 {
		return 0, false
	}
	empty := base + uintptr(off)

	for t.bucketDistance(root, empty) >= h {
		mover, moverRoot, moverTag, found := t.findMover(root, empty, h)
		if !found {
			return 0, false
		}
		// Move the occupant at mover into empty, then reopen mover as the
		// new hole to close — the classic bubble-back swap.
		t.slots[empty] = t.slots[mover]
		t.tags[empty] = moverTag
		d := t.bucketDistance(moverRoot, empty)
		hopInc(t.hopinfo, moverRoot, uint32(d))
		oldD := t.bucketDistance(moverRoot, mover)
		hopDec(t.hopinfo, moverRoot, uint32(oldD))

		t.tags[mover] = emptyTag
		var zero V
		t.slots[mover] = zero
		empty = mover
	}

	return empty, true
}

// findMover scans backward from empty for an occupied slot whose root bucket
// is close enough that relocating it to empty would still land within that
// root's neighborhood. It only considers slots within h buckets behind
// empty, since nothing further back could ever qualify. A candidate's root
// is recomputed exactly via hashOf/rootOf, the same way original_source's
// find_next_movable_index calls rehash on the candidate rather than
// inferring its root from HopInfo and tag alone — a slot's own tag always
// matches itself, so tag-gated HopInfo lookup can misattribute a mover to a
// nearer co-resident root sharing the same bucket, corrupting HopInfo counts.
func (t *Table[V]) findMover(forRoot, empty uintptr, h uintptr) (idx, root uintptr, tag uint8, ok bool) {
	emptyBucket := empty / lanes
	var lowBucket uintptr
	if emptyBucket >= h-1 {
		lowBucket = emptyBucket - (h - 1)
	}
	if lowBucket < forRoot {
		lowBucket = forRoot
	}

	// Start one bucket behind empty: a mover sharing empty's own bucket
	// would not change its bucket distance from any root, so it can never
	// help close the gap.
	for b := emptyBucket - 1; ; b-- {
		base := t.bucketBase(b)
		m := matchOccupied(t.tags, base, t.be)
		for m != 0 {
			o := m.next()
			m = m.clear(o)
			cand := base + uintptr(o)
			candRoot := t.rootOf(t.hashOf(t.slots[cand]))
			if t.bucketDistance(candRoot, empty) < h {
				return cand, candRoot, t.tags[cand], true
			}
		}
		if b == lowBucket {
			break
		}
	}
	return 0, 0, 0, false
}

// matchOccupied returns a mask of the non-empty slots in the bucket
// starting at base.
func matchOccupied(tags []byte, base uintptr, be backend) bitset16 {
	return ^matchEmpty(tags, base, be)
}

// bucketDistance returns the number of buckets between root and the bucket
// containing slot idx (idx must be at or after root's bucket).
func (t *Table[V]) bucketDistance(root, idx uintptr) uintptr {
	return idx/lanes - root
}

// hopFull reports whether every bucket in root's neighborhood already holds
// at least one item rooted there.
func (t *Table[V]) hopFull(root uintptr) bool {
	return hopIsFull(t.hopinfo, root, uintptr(t.neighborhood()))
}

// place writes value's tag and payload into idx and increments root's
// HopInfo count for idx's bucket distance.
func (t *Table[V]) place(root, idx uintptr, tag uint8, value V) {
	d := t.bucketDistance(root, idx)
	t.tags[idx] = tag
	t.slots[idx] = value
	hopInc(t.hopinfo, root, uint32(d))
}
