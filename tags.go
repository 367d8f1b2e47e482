package hoptable

import (
	"math/bits"
	"unsafe"
)

// bitset16 is a 16-bit mask over a bucket's slots, one bit per slot offset.
type bitset16 uint16

// next returns the offset of the lowest set bit.
func (b bitset16) next() uint32 {
	return uint32(bits.TrailingZeros16(uint16(b)))
}

func (b bitset16) clear(i uint32) bitset16 {
	return b &^ (1 << i)
}

const (
	loBits64 uint64 = 0x0101010101010101
	hiBits64 uint64 = 0x8080808080808080
)

// backend selects the tag-scanning strategy. Both must produce identical
// masks. The swar backend is a SIMD-within-a-register trick that processes
// 8 tag bytes per machine word compare, a portable stand-in for SSE2
// pcmpeqb/pmovmskb since cgo/asm is off the table for a pure-Go module;
// scalar is a plain byte loop used for testing and on platforms/builds where
// unsafe word loads are undesirable.
type backend uint8

const (
	backendAuto backend = iota
	backendScalar
)

// matchTag returns a mask of the 16 slots in tags[base:base+16] whose tag
// equals t. t must have its top bit clear (t < 0x80); no occupied tag ever
// equals emptyTag so this never spuriously matches an empty slot.
func matchTag(tags []byte, base uintptr, t uint8, be backend) bitset16 {
	if be == backendScalar {
		return matchTagScalar(tags, base, t)
	}
	return matchTagSWAR(tags, base, t)
}

func matchTagScalar(tags []byte, base uintptr, t uint8) bitset16 {
	var m bitset16
	for i := uintptr(0); i < lanes; i++ {
		if tags[base+i] == t {
			m |= 1 << i
		}
	}
	return m
}

// matchTagSWAR implements an exact per-byte variant of the "has zero byte"
// bit trick (https://graphics.stanford.edu/~seander/bithacks.html##ValueInWord)
// over two 8-byte words to cover a 16-byte bucket in two word compares,
// reading the bucket via an unaligned unsafe load.
func matchTagSWAR(tags []byte, base uintptr, t uint8) bitset16 {
	lo := *(*uint64)(unsafe.Pointer(&tags[base]))
	hi := *(*uint64)(unsafe.Pointer(&tags[base+8]))
	want := loBits64 * uint64(t)
	loMatch := hasZeroByte(lo ^ want)
	hiMatch := hasZeroByte(hi ^ want)
	return bitset16(compressMatch(loMatch)) | bitset16(compressMatch(hiMatch))<<8
}

// hasZeroByte sets 0x80 in exactly the bytes of x that are zero. The
// subtraction form ((x - lo) &^ x) & hi can also flag a byte above a zero
// byte through the borrow, which would make the SWAR mask differ from the
// scalar one; masking off the top bits first keeps each byte's sum from
// carrying into its neighbor.
func hasZeroByte(x uint64) uint64 {
	const lo7 = ^hiBits64
	return ^(((x & lo7) + lo7) | x | lo7)
}

// compressMatch turns the hasZeroByte result (0x80 in each matching byte)
// into a compact 8-bit mask, one bit per byte — the portable substitute for
// pmovmskb.
func compressMatch(v uint64) uint8 {
	var out uint8
	for i := 0; i < 8; i++ {
		if (v>>(uint(i)*8))&0x80 != 0 {
			out |= 1 << i
		}
	}
	return out
}

// matchEmpty returns a mask of the empty slots in tags[base:base+16].
func matchEmpty(tags []byte, base uintptr, be backend) bitset16 {
	if be == backendScalar {
		var m bitset16
		for i := uintptr(0); i < lanes; i++ {
			if tags[base+i]&emptyTag != 0 {
				m |= 1 << i
			}
		}
		return m
	}
	lo := *(*uint64)(unsafe.Pointer(&tags[base]))
	hi := *(*uint64)(unsafe.Pointer(&tags[base+8]))
	return bitset16(compressMatch(lo&hiBits64)) | bitset16(compressMatch(hi&hiBits64))<<8
}

// findEmpty returns the offset of the first empty slot at or after
// tags[base], scanning forward up to window bytes, or -1 if none exists in
// the window.
func findEmpty(tags []byte, base uintptr, window uintptr, be backend) int {
	end := base + window
	if end > uintptr(len(tags)) {
		end = uintptr(len(tags))
	}
	for i := base; i < end; i++ {
		if tags[i]&emptyTag != 0 {
			return int(i - base)
		}
	}
	return -1
}

// hopWidth is the fixed width of a root bucket's HopInfo record: one count
// byte per distance, 0..15, always allocated regardless of the configured
// neighborhood size H.
//
// Each byte counts how many items rooted at this bucket currently live in
// the bucket at that distance, not just whether any do, because a single
// bucket holds 16 slots and can hold more than one item sharing the same
// root; a bare presence bit can't tell "last item just left this bucket"
// from "one of several left."
const hopWidth = 16

// hopCount returns how many items rooted at root live in the bucket at
// distance d from it.
func hopCount(hopinfo []uint8, root uintptr, d uint32) uint8 {
	return hopinfo[root*hopWidth+uintptr(d)]
}

// hopInc records one more item rooted at root landing in the bucket at
// distance d.
func hopInc(hopinfo []uint8, root uintptr, d uint32) {
	hopinfo[root*hopWidth+uintptr(d)]++
}

// hopDec records one fewer item rooted at root in the bucket at distance d.
func hopDec(hopinfo []uint8, root uintptr, d uint32) {
	hopinfo[root*hopWidth+uintptr(d)]--
}

// hopCandidates returns a mask of the distances in [0, h) at which root has
// at least one item.
func hopCandidates(hopinfo []uint8, root uintptr, h uintptr) bitset16 {
	var m bitset16
	base := root * hopWidth
	for d := uintptr(0); d < h; d++ {
		if hopinfo[base+d] != 0 {
			m |= 1 << d
		}
	}
	return m
}

// hopIsFull reports whether every one of root's H candidate distances
// already holds at least one item.
func hopIsFull(hopinfo []uint8, root uintptr, h uintptr) bool {
	base := root * hopWidth
	for d := uintptr(0); d < h; d++ {
		if hopinfo[base+d] == 0 {
			return false
		}
	}
	return true
}

// hopIter calls yield for each distance at which root has at least one item,
// in ascending order, up to width h.
func hopIter(hopinfo []uint8, root uintptr, h uintptr, yield func(d uint32) bool) {
	m := hopCandidates(hopinfo, root, h)
	for m != 0 {
		d := m.next()
		m = m.clear(d)
		if !yield(d) {
			return
		}
	}
}
