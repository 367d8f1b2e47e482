package hoptable

import "errors"

// ErrGrowthExhausted is returned by Insert when the table could not place an
// item even after exhausting its bounded number of growth attempts
// (spec.md §7) and no overflow vector is configured (see WithOverflow).
var ErrGrowthExhausted = errors.New("hoptable: growth exhausted, item could not be placed")

// ErrWouldDisplace is returned by TryInsert when placing the item would
// require bubbling an existing item out of the way (spec.md §4.4).
var ErrWouldDisplace = errors.New("hoptable: insert would displace an existing item")

// maxGrowthAttempts bounds the number of doublings Insert will try before
// giving up (spec.md §7's "growth exhaustion" is only reachable through
// pathological, attacker-controlled hash distributions; a small bound keeps
// that failure mode from looping forever while still tolerating ordinary
// resize churn).
const maxGrowthAttempts = 4
