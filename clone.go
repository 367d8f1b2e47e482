package hoptable

// Clone returns a deep copy of the table, using cloneValue to copy each
// stored value (Go has no Clone trait, so the caller supplies the copy
// function; for a V with no internal sharing, passing the identity function
// is sufficient). Ported from original_source's Clone impl.
func (t *Table[V]) Clone(cloneValue func(V) V) *Table[V] {
	c := &Table[V]{
		hashOf:       t.hashOf,
		cap:          t.cap,
		lf:           t.lf,
		be:           t.be,
		len:          t.len,
		maxPop:       t.maxPop,
		withOverflow: t.withOverflow,
		bubbleWindow: t.bubbleWindow,
	}

	c.hopinfo = append([]uint8(nil), t.hopinfo...)
	c.tags = append([]byte(nil), t.tags...)
	c.slots = make([]V, len(t.slots))
	for i, tag := range t.tags {
		if tag&emptyTag != 0 {
			continue
		}
		c.slots[i] = cloneValue(t.slots[i])
	}

	if len(t.overflow) > 0 {
		c.overflow = make([]V, len(t.overflow))
		for i, v := range t.overflow {
			c.overflow[i] = cloneValue(v)
		}
	}

	return c
}
