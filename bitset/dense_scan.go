// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

// ScanInit initializes the cached cursor for kind at the natural
// starting position for that direction: before the first bit for
// forward kinds, after the last bit for reverse kinds.
func (d *Dense) ScanInit(kind ScanKind) {
	switch kind {
	case ScanForward, ScanForwardDestructive:
		d.cur = denseCursor{bbi: 0, pos: NoBit, set: true}
	case ScanReverse, ScanReverseDestructive:
		d.cur = denseCursor{bbi: len(d.words) - 1, pos: WordBits, set: true}
	}
}

// ScanInitFrom initializes the cached cursor so the next yielded
// position is strictly after p (forward kinds) or strictly before p
// (reverse kinds). p == NoBit means "from the natural end".
func (d *Dense) ScanInitFrom(p int, kind ScanKind) {
	if p == NoBit {
		d.ScanInit(kind)
		return
	}
	d.cur = denseCursor{bbi: blockOf(p), pos: offsetOf(p), set: true}
}

// NextBit advances a cursor set up with ScanForward and returns the
// next position in increasing order, or NoBit on exhaustion.
func (d *Dense) NextBit() int {
	if len(d.words) == 0 || d.cur.bbi < 0 || d.cur.bbi >= len(d.words) {
		return NoBit
	}
	if w := d.words[d.cur.bbi] & MaskHigh(d.cur.pos+1); w != 0 {
		d.cur.pos = TrailingZeros(w)
		return d.cur.bbi*WordBits + d.cur.pos
	}
	for i := d.cur.bbi + 1; i < len(d.words); i++ {
		if d.words[i] != 0 {
			d.cur.bbi = i
			d.cur.pos = TrailingZeros(d.words[i])
			return i*WordBits + d.cur.pos
		}
	}
	return NoBit
}

// PrevBit advances a cursor set up with ScanReverse and returns the
// next position in decreasing order, or NoBit on exhaustion.
func (d *Dense) PrevBit() int {
	if len(d.words) == 0 || d.cur.bbi < 0 || d.cur.bbi >= len(d.words) {
		return NoBit
	}
	if w := d.words[d.cur.bbi] & MaskLow(d.cur.pos); w != 0 {
		d.cur.pos = LeadingZeroComplement(w)
		return d.cur.bbi*WordBits + d.cur.pos
	}
	for i := d.cur.bbi - 1; i >= 0; i-- {
		if d.words[i] != 0 {
			d.cur.bbi = i
			d.cur.pos = LeadingZeroComplement(d.words[i])
			return i*WordBits + d.cur.pos
		}
	}
	return NoBit
}

// NextBitDel advances a cursor set up with ScanForwardDestructive,
// clearing and returning the next position in increasing order, or
// NoBit on exhaustion.
func (d *Dense) NextBitDel() int {
	p := d.NextBit()
	if p == NoBit {
		return NoBit
	}
	d.words[d.cur.bbi] &^= MaskSingle(d.cur.pos)
	return p
}

// PrevBitDel advances a cursor set up with ScanReverseDestructive,
// clearing and returning the next position in decreasing order, or
// NoBit on exhaustion.
func (d *Dense) PrevBitDel() int {
	p := d.PrevBit()
	if p == NoBit {
		return NoBit
	}
	d.words[d.cur.bbi] &^= MaskSingle(d.cur.pos)
	return p
}
