// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

import (
	"github.com/psanse/bitgraph-go/internal/must"
)

// Dense is a fixed-universe bitset backed by an array of packed uint64
// words, one bit per integer in [0, N). Bits at positions >= N within
// the last word are always 0.
type Dense struct {
	words []uint64
	n     int
	cur   denseCursor
}

type denseCursor struct {
	bbi int // current block index
	pos int // last yielded in-block position, or sentinel
	set bool
}

// NewDense returns an empty Dense bitset over the universe [0, n).
// n must be >= 0.
func NewDense(n int) *Dense {
	must.True(n >= 0, "bitset: negative capacity")
	return &Dense{words: make([]uint64, numWords(n)), n: n}
}

// NewDenseFromSlice returns a Dense bitset over [0, n) containing
// exactly the positions in ps. Duplicates are tolerated silently.
func NewDenseFromSlice(n int, ps []int) *Dense {
	d := NewDense(n)
	for _, p := range ps {
		d.Set(p)
	}
	return d
}

// Capacity returns N.
func (d *Dense) Capacity() int { return d.n }

func (d *Dense) checkRange(p int) {
	must.True(p >= 0 && p < d.n, "bitset: position out of range")
}

// Set adds p to the set. p must be in [0, N).
func (d *Dense) Set(p int) {
	d.checkRange(p)
	d.words[blockOf(p)] |= MaskSingle(offsetOf(p))
}

// Clear removes p from the set. p must be in [0, N).
func (d *Dense) Clear(p int) {
	d.checkRange(p)
	d.words[blockOf(p)] &^= MaskSingle(offsetOf(p))
}

// IsSet reports whether p is a member. p must be in [0, N).
func (d *Dense) IsSet(p int) bool {
	d.checkRange(p)
	return d.words[blockOf(p)]&MaskSingle(offsetOf(p)) != 0
}

// SetRange adds every p in [a, b] (inclusive) to the set, touching at
// most b/64 - a/64 + 1 words.
func (d *Dense) SetRange(a, b int) {
	must.True(a <= b, "bitset: SetRange with a > b")
	d.checkRange(a)
	d.checkRange(b)
	first, last := blockOf(a), blockOf(b)
	if first == last {
		d.words[first] |= MaskHigh(offsetOf(a)) & MaskLow(offsetOf(b)+1)
		return
	}
	d.words[first] |= MaskHigh(offsetOf(a))
	for i := first + 1; i < last; i++ {
		d.words[i] = ^uint64(0)
	}
	d.words[last] |= MaskLow(offsetOf(b) + 1)
}

// ClearRange removes every p in [a, b] (inclusive) from the set.
func (d *Dense) ClearRange(a, b int) {
	must.True(a <= b, "bitset: ClearRange with a > b")
	d.checkRange(a)
	d.checkRange(b)
	first, last := blockOf(a), blockOf(b)
	if first == last {
		d.words[first] &^= MaskHigh(offsetOf(a)) & MaskLow(offsetOf(b)+1)
		return
	}
	d.words[first] &^= MaskHigh(offsetOf(a))
	for i := first + 1; i < last; i++ {
		d.words[i] = 0
	}
	d.words[last] &^= MaskLow(offsetOf(b) + 1)
}

// ClearAll removes every member.
func (d *Dense) ClearAll() {
	for i := range d.words {
		d.words[i] = 0
	}
}

// Size returns the number of members, computed by popcount over every
// word.
func (d *Dense) Size() int {
	total := 0
	for _, w := range d.words {
		total += PopCount(w)
	}
	return total
}

// SizeRange returns the number of members in [from, to]. to == -1 means
// "to the end of the universe".
func (d *Dense) SizeRange(from, to int) int {
	if to == NoBit {
		to = d.n - 1
	}
	must.True(from <= to, "bitset: SizeRange with from > to")
	first, last := blockOf(from), blockOf(to)
	if first == last {
		return PopCount(d.words[first] & MaskHigh(offsetOf(from)) & MaskLow(offsetOf(to)+1))
	}
	total := PopCount(d.words[first] & MaskHigh(offsetOf(from)))
	for i := first + 1; i < last; i++ {
		total += PopCount(d.words[i])
	}
	total += PopCount(d.words[last] & MaskLow(offsetOf(to)+1))
	return total
}

// IsEmpty reports whether the set has no members.
func (d *Dense) IsEmpty() bool {
	for _, w := range d.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// IsDisjoint reports whether d and other, which must share a universe,
// have no member in common.
func (d *Dense) IsDisjoint(other *Dense) bool {
	must.True(d.n == other.n, "bitset: IsDisjoint requires same universe")
	for i := range d.words {
		if d.words[i]&other.words[i] != 0 {
			return false
		}
	}
	return true
}

// ToSlice returns the members in ascending order.
func (d *Dense) ToSlice() []int {
	out := make([]int, 0, d.Size())
	for i, w := range d.words {
		for w != 0 {
			t := TrailingZeros(w)
			out = append(out, i*WordBits+t)
			w &^= MaskSingle(t)
		}
	}
	return out
}

// Msb returns the highest member, or NoBit if empty.
func (d *Dense) Msb() int {
	for i := len(d.words) - 1; i >= 0; i-- {
		if d.words[i] != 0 {
			return i*WordBits + LeadingZeroComplement(d.words[i])
		}
	}
	return NoBit
}

// Lsb returns the lowest member, or NoBit if empty.
func (d *Dense) Lsb() int {
	for i, w := range d.words {
		if w != 0 {
			return i*WordBits + TrailingZeros(w)
		}
	}
	return NoBit
}

// Clone returns an independent copy.
func (d *Dense) Clone() BitsetLike {
	cp := &Dense{words: make([]uint64, len(d.words)), n: d.n}
	copy(cp.words, d.words)
	return cp
}

// NumberOfBlocks returns the number of backing words.
func (d *Dense) NumberOfBlocks() int { return len(d.words) }

func checkSameUniverse(a, b, out *Dense) {
	must.True(a.n == b.n && a.n == out.n, "bitset: operands must share a universe")
}

// DenseAND writes a & b into out. a, b and out must share a universe.
func DenseAND(a, b, out *Dense) {
	checkSameUniverse(a, b, out)
	for i := range out.words {
		out.words[i] = a.words[i] & b.words[i]
	}
}

// DenseOR writes a | b into out. a, b and out must share a universe.
func DenseOR(a, b, out *Dense) {
	checkSameUniverse(a, b, out)
	for i := range out.words {
		out.words[i] = a.words[i] | b.words[i]
	}
}

// DenseXOR writes a ^ b into out. a, b and out must share a universe.
func DenseXOR(a, b, out *Dense) {
	checkSameUniverse(a, b, out)
	for i := range out.words {
		out.words[i] = a.words[i] ^ b.words[i]
	}
}

// DenseERASE writes a &^ b (a minus b) into out. a, b and out must share
// a universe.
func DenseERASE(a, b, out *Dense) {
	checkSameUniverse(a, b, out)
	for i := range out.words {
		out.words[i] = a.words[i] &^ b.words[i]
	}
}

var _ BitsetLike = (*Dense)(nil)
