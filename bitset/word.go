// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

import "math/bits"

// WordBits is the number of bits in the packed word type used
// throughout the bitset package.
const WordBits = 64

// NoBit is the sentinel position returned in place of a bit index when
// no bit satisfies a query: scan exhaustion, an empty bitset's msb/lsb,
// or "not found".
const NoBit = -1

// PopCount returns the number of set bits in w.
func PopCount(w uint64) int {
	return bits.OnesCount64(w)
}

// TrailingZeros returns the index of the lowest set bit of w. w must be
// non-zero; callers scan for w != 0 before calling.
func TrailingZeros(w uint64) int {
	return bits.TrailingZeros64(w)
}

// LeadingZeroComplement returns the index of the highest set bit of w,
// i.e. 63 - leading zero count. w must be non-zero.
func LeadingZeroComplement(w uint64) int {
	return WordBits - 1 - bits.LeadingZeros64(w)
}

// MaskLow returns a word with bits [0, k) set. MaskLow(0) is 0 and
// MaskLow(64) is all ones; both are legal inputs from scan code paths.
func MaskLow(k int) uint64 {
	if k <= 0 {
		return 0
	}
	if k >= WordBits {
		return ^uint64(0)
	}
	return (uint64(1) << uint(k)) - 1
}

// MaskHigh returns a word with bits [k, 64) set. MaskHigh(64) is 0 and
// MaskHigh(0) is all ones.
func MaskHigh(k int) uint64 {
	if k <= 0 {
		return ^uint64(0)
	}
	if k >= WordBits {
		return 0
	}
	return ^uint64(0) << uint(k)
}

// MaskSingle returns a word with only bit k set, for k in [0, 64).
func MaskSingle(k int) uint64 {
	return uint64(1) << uint(k)
}

// blockOf returns the block index holding bit position p.
func blockOf(p int) int {
	return p / WordBits
}

// offsetOf returns the in-block offset of bit position p.
func offsetOf(p int) int {
	return p % WordBits
}

// numWords returns the number of 64-bit words needed to hold n bits.
func numWords(n int) int {
	return (n + WordBits - 1) / WordBits
}
