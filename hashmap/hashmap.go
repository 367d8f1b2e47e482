// Package hashmap is a conventional keyed map built on top of hoptable.Table,
// grounded on original_source's hash_map.rs — the thin wrapper the Rust
// crate provides over its raw hash table. Key hashing defaults to
// github.com/dolthub/maphash's generic Hasher, the same library
// gophc-swiss's Map8 uses for its own generic key hashing.
package hashmap

import (
	"github.com/dolthub/maphash"

	"github.com/hoptable/hoptable"
)

type entry[K comparable, V any] struct {
	key K
	val V
}

// Map is a hash map keyed by K, storing values of type V.
type Map[K comparable, V any] struct {
	t      *hoptable.Table[entry[K, V]]
	hasher maphash.Hasher[K]
}

// New creates an empty Map, sized for roughly n entries before its first
// growth.
func New[K comparable, V any](n int) *Map[K, V] {
	m := &Map[K, V]{hasher: maphash.NewHasher[K]()}
	hashOf := func(e entry[K, V]) uint64 { return m.hasher.Hash(e.key) }
	m.t = hoptable.New(n, hashOf)
	return m
}

func (m *Map[K, V]) hashKey(k K) uint64 { return m.hasher.Hash(k) }

func eqKey[K comparable, V any](k K) func(entry[K, V]) bool {
	return func(e entry[K, V]) bool { return e.key == k }
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// Get returns the value stored for key, and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	e, ok := m.t.Find(m.hashKey(key), eqKey[K, V](key))
	return e.val, ok
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.t.Contains(m.hashKey(key), eqKey[K, V](key))
}

// Insert associates value with key, returning the previous value (if any)
// and whether one existed.
func (m *Map[K, V]) Insert(key K, value V) (V, bool) {
	e := m.t.Entry(m.hashKey(key), eqKey[K, V](key))
	if occ, ok := e.Occupied(); ok {
		old := occ.Set(entry[K, V]{key: key, val: value})
		return old.val, true
	}
	vac, _ := e.Vacant()
	vac.Insert(entry[K, V]{key: key, val: value})
	var zero V
	return zero, false
}

// Remove deletes key from the map, returning its value and whether it was
// present.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	e, ok := m.t.Remove(m.hashKey(key), eqKey[K, V](key))
	return e.val, ok
}

// Clear removes every entry from the map without releasing its backing
// storage.
func (m *Map[K, V]) Clear() { m.t.Clear() }

// Reserve grows the map, if necessary, so at least n more entries can be
// inserted without a mid-sequence resize.
func (m *Map[K, V]) Reserve(n int) { m.t.Reserve(n) }

// ShrinkToFit shrinks the map's capacity to fit its current size.
func (m *Map[K, V]) ShrinkToFit() { m.t.ShrinkToFit() }

// Keys returns every key currently in the map, in an unspecified order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	for e := range m.t.All() {
		keys = append(keys, e.key)
	}
	return keys
}

// Values returns every value currently in the map, in an unspecified order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.Len())
	for e := range m.t.All() {
		values = append(values, e.val)
	}
	return values
}

// All returns a range-over-func iterator over the map's key/value pairs.
func (m *Map[K, V]) All() func(yield func(K, V) bool) {
	return func(yield func(K, V) bool) {
		for e := range m.t.All() {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// Entry returns a handle to key's slot for insert-or-update workflows, e.g.
// m.Entry(k).OrInsertWith(func() V { return newDefault() }).
func (m *Map[K, V]) Entry(key K) MapEntry[K, V] {
	return MapEntry[K, V]{e: m.t.Entry(m.hashKey(key), eqKey[K, V](key)), key: key}
}

// MapEntry wraps hoptable.Entry to work in terms of a key/value pair rather
// than the raw entry struct hoptable stores.
type MapEntry[K comparable, V any] struct {
	e   hoptable.Entry[entry[K, V]]
	key K
}

// OrInsert inserts def under the entry's key if it is vacant, and returns a
// pointer to the resulting value.
func (m MapEntry[K, V]) OrInsert(def V) *V {
	p := m.e.OrInsert(entry[K, V]{key: m.key, val: def})
	return &p.val
}

// OrInsertWith inserts the result of makeDefault under the entry's key if it
// is vacant, without calling makeDefault if it is occupied.
func (m MapEntry[K, V]) OrInsertWith(makeDefault func() V) *V {
	p := m.e.OrInsertWith(func() entry[K, V] { return entry[K, V]{key: m.key, val: makeDefault()} })
	return &p.val
}

// OrDefault inserts the zero value of V under the entry's key if it is
// vacant.
func (m MapEntry[K, V]) OrDefault() *V {
	var zero V
	return m.OrInsert(zero)
}

// AndModify calls f with a pointer to the entry's value if it is occupied.
func (m MapEntry[K, V]) AndModify(f func(*V)) MapEntry[K, V] {
	m.e = m.e.AndModify(func(e *entry[K, V]) { f(&e.val) })
	return m
}
