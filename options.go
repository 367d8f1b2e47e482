package hoptable

// Option configures a Table at construction time. This generalizes the
// teacher's option[K,V]/apply pattern (cockroachdb/swiss options.go), which
// only carried a hash function and an allocator, to the full configuration
// surface spec.md §6 names: neighborhood size, load factor, SIMD backend and
// whether an overflow vector backs pathological insertions.
type Option[V any] interface {
	apply(t *Table[V], h *neighborhood)
}

// WithNeighborhood sets the neighborhood size H (8 or 16). Values other than
// 8 default to 16. Must be set before any insert; it has no effect once the
// table has been constructed.
func WithNeighborhood[V any](h int) Option[V] {
	n := neighborhood16
	if h == 8 {
		n = neighborhood8
	}
	return neighborhoodOptionT[V]{h: n}
}

type neighborhoodOptionT[V any] struct{ h neighborhood }

func (o neighborhoodOptionT[V]) apply(t *Table[V], h *neighborhood) { *h = o.h }

// loadFactorOption sets the target load factor.
type loadFactorOption[V any] struct{ lf loadFactor }

func (o loadFactorOption[V]) apply(t *Table[V], h *neighborhood) { t.lf = o.lf }

// WithLoadFactor875 targets 87.5% (7/8), the most conservative of the three
// load factors spec.md §6 permits — leaves the most headroom before growth.
func WithLoadFactor875[V any]() Option[V] { return loadFactorOption[V]{lf: loadFactor875} }

// WithLoadFactor92 targets 92% (23/25), the default.
func WithLoadFactor92[V any]() Option[V] { return loadFactorOption[V]{lf: loadFactor92} }

// WithLoadFactor97 targets roughly 97% (31/32), the most aggressive of the
// three — maximizes memory utilization at the cost of more frequent
// bubble-back chains during insertion.
func WithLoadFactor97[V any]() Option[V] { return loadFactorOption[V]{lf: loadFactor97} }

// backendOption pins the tag-scanning strategy, mainly for tests that need
// to exercise both the SWAR and scalar paths against the same inputs
// (spec.md Testable Properties: "SIMD/scalar equivalence").
type backendOption[V any] struct{ be backend }

func (o backendOption[V]) apply(t *Table[V], h *neighborhood) { t.be = o.be }

// WithScalarBackend forces the plain byte-loop tag scan instead of the
// default SWAR implementation.
func WithScalarBackend[V any]() Option[V] { return backendOption[V]{be: backendScalar} }

// overflowOption enables the overflow vector escape hatch.
type overflowOption[V any] struct{}

func (overflowOption[V]) apply(t *Table[V], h *neighborhood) { t.withOverflow = true }

// WithOverflow enables an overflow vector (spec.md §4.4, §9): when growth is
// exhausted (see ErrGrowthExhausted) without WithOverflow, insert returns an
// error; with it, the item is instead appended to an unordered side list
// searched only as a last resort, trading worst-case lookup time for the
// guarantee that insert never fails. Grounded on original_source's
// HashTable.overflow field and its rationale against looping forever on
// adversarial hash inputs.
func WithOverflow[V any]() Option[V] { return overflowOption[V]{} }

// bubbleWindowOption overrides the bubble-back search window K (spec.md
// §4.4); mainly useful in tests that want to force growth at a small N.
type bubbleWindowOption[V any] struct{ k uintptr }

func (o bubbleWindowOption[V]) apply(t *Table[V], h *neighborhood) { t.bubbleWindow = o.k }

// WithBubbleWindow overrides the default bubble-back search window.
func WithBubbleWindow[V any](k int) Option[V] {
	if k < 0 {
		k = 0
	}
	return bubbleWindowOption[V]{k: uintptr(k)}
}
