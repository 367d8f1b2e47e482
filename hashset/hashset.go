// Package hashset is a conventional keyed set built on top of hoptable.Table,
// grounded on original_source's hash_set.rs — a thin wrapper storing keys
// with no associated value, distinct from hashmap only in that the stored
// item and the key are the same value.
package hashset

import (
	"github.com/dolthub/maphash"

	"github.com/hoptable/hoptable"
)

// Set is a hash set of values of type T.
type Set[T comparable] struct {
	t      *hoptable.Table[T]
	hasher maphash.Hasher[T]
}

// New creates an empty Set, sized for roughly n elements before its first
// growth.
func New[T comparable](n int) *Set[T] {
	s := &Set[T]{hasher: maphash.NewHasher[T]()}
	s.t = hoptable.New(n, s.hasher.Hash)
	return s
}

func eqVal[T comparable](v T) func(T) bool {
	return func(x T) bool { return x == v }
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int { return s.t.Len() }

// Contains reports whether v is a member of the set.
func (s *Set[T]) Contains(v T) bool {
	return s.t.Contains(s.hasher.Hash(v), eqVal(v))
}

// Insert adds v to the set, returning true if it was newly inserted (false
// if it was already present).
func (s *Set[T]) Insert(v T) bool {
	hash := s.hasher.Hash(v)
	eq := eqVal(v)
	e := s.t.Entry(hash, eq)
	if e.IsOccupied() {
		return false
	}
	vac, _ := e.Vacant()
	vac.Insert(v)
	return true
}

// Remove deletes v from the set, returning true if it was present.
func (s *Set[T]) Remove(v T) bool {
	_, ok := s.t.Remove(s.hasher.Hash(v), eqVal(v))
	return ok
}

// Clear removes every element from the set without releasing its backing
// storage.
func (s *Set[T]) Clear() { s.t.Clear() }

// Reserve grows the set, if necessary, so at least n more elements can be
// inserted without a mid-sequence resize.
func (s *Set[T]) Reserve(n int) { s.t.Reserve(n) }

// ShrinkToFit shrinks the set's capacity to fit its current size.
func (s *Set[T]) ShrinkToFit() { s.t.ShrinkToFit() }

// Values returns every element currently in the set, in an unspecified
// order.
func (s *Set[T]) Values() []T {
	out := make([]T, 0, s.Len())
	for v := range s.t.All() {
		out = append(out, v)
	}
	return out
}

// All returns a range-over-func iterator over the set's elements.
func (s *Set[T]) All() func(yield func(T) bool) {
	return s.t.All()
}

// Union returns a new set containing every element of s and other.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	out := New[T](s.Len() + other.Len())
	for v := range s.All() {
		out.Insert(v)
	}
	for v := range other.All() {
		out.Insert(v)
	}
	return out
}

// Intersection returns a new set containing only elements present in both s
// and other.
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	out := New[T](s.Len())
	small, big := s, other
	if big.Len() < small.Len() {
		small, big = big, small
	}
	for v := range small.All() {
		if big.Contains(v) {
			out.Insert(v)
		}
	}
	return out
}
