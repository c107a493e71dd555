// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

// BoundedDense is a Dense bitset augmented with a (lowBlock, highBlock)
// pair demarcating the known-non-empty block range. It is purely an
// optimization over Dense: semantics are identical to a Dense bitset
// restricted to the range [lowBlock*64, highBlock*64+63], and every
// operation falls back to the full Dense behavior when in doubt. Set and
// SetRange widen the sentinels; Clear narrows them when it empties a
// block sitting at the current boundary. ClearRange and the destructive
// scans (NextBitDel, PrevBitDel), inherited from Dense, leave the
// sentinels unchanged, so afterwards they may still cover blocks that
// are now empty.
type BoundedDense struct {
	*Dense
	lowBlock, highBlock int
}

// NewBoundedDense returns an empty BoundedDense bitset over [0, n).
func NewBoundedDense(n int) *BoundedDense {
	d := NewDense(n)
	return &BoundedDense{Dense: d, lowBlock: len(d.words), highBlock: -1}
}

// recomputeBounds rescans the backing words for the first and last
// non-zero block. Called only when a mutation might have invalidated a
// boundary sentinel.
func (b *BoundedDense) recomputeBounds() {
	b.lowBlock, b.highBlock = len(b.words), -1
	for i, w := range b.words {
		if w != 0 {
			b.lowBlock = i
			break
		}
	}
	for i := len(b.words) - 1; i >= 0; i-- {
		if b.words[i] != 0 {
			b.highBlock = i
			break
		}
	}
}

// Set adds p to the set, widening the sentinels if necessary.
func (b *BoundedDense) Set(p int) {
	b.Dense.Set(p)
	blk := blockOf(p)
	if blk < b.lowBlock {
		b.lowBlock = blk
	}
	if blk > b.highBlock {
		b.highBlock = blk
	}
}

// SetRange adds every p in [a, b] (inclusive) to the set, widening the
// sentinels if necessary.
func (b *BoundedDense) SetRange(a, c int) {
	b.Dense.SetRange(a, c)
	if blk := blockOf(a); blk < b.lowBlock {
		b.lowBlock = blk
	}
	if blk := blockOf(c); blk > b.highBlock {
		b.highBlock = blk
	}
}

// Clear removes p from the set, narrowing the sentinels if this emptied
// a boundary block.
func (b *BoundedDense) Clear(p int) {
	b.Dense.Clear(p)
	blk := blockOf(p)
	if (blk == b.lowBlock || blk == b.highBlock) && b.words[blk] == 0 {
		b.recomputeBounds()
	}
}

// ClearAll removes every member and resets the sentinels to empty.
func (b *BoundedDense) ClearAll() {
	b.Dense.ClearAll()
	b.lowBlock, b.highBlock = len(b.words), -1
}

// Bounds returns the current (lowBlock, highBlock) sentinel pair. When
// the bitset is empty, lowBlock > highBlock.
func (b *BoundedDense) Bounds() (lowBlock, highBlock int) {
	return b.lowBlock, b.highBlock
}

// ScanInit initializes the cached cursor restricted to the known
// non-empty block range.
func (b *BoundedDense) ScanInit(kind ScanKind) {
	if b.lowBlock > b.highBlock {
		b.Dense.ScanInit(kind)
		return
	}
	switch kind {
	case ScanForward, ScanForwardDestructive:
		b.cur = denseCursor{bbi: b.lowBlock, pos: NoBit, set: true}
	case ScanReverse, ScanReverseDestructive:
		b.cur = denseCursor{bbi: b.highBlock, pos: WordBits, set: true}
	}
}

// Clone returns an independent copy, preserving the current sentinels.
func (b *BoundedDense) Clone() BitsetLike {
	cp := b.Dense.Clone().(*Dense)
	return &BoundedDense{Dense: cp, lowBlock: b.lowBlock, highBlock: b.highBlock}
}

var _ BitsetLike = (*BoundedDense)(nil)
