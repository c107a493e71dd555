// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

// ForwardCursor is a first-class, non-destructive forward scan over a
// BitsetLike. It is an alternative surface over the same algorithm as
// the bitset's own cached cursor (ScanInit(ScanForward)/NextBit), not a
// distinct one, and a bitset has at most one active cursor of any kind
// at a time: constructing a new cursor reinitializes the bitset's
// cached scan state.
type ForwardCursor struct {
	bs   BitsetLike
	last int
}

// NewForwardCursor returns a cursor that yields every member of bs in
// ascending order.
func NewForwardCursor(bs BitsetLike) *ForwardCursor {
	bs.ScanInit(ScanForward)
	return &ForwardCursor{bs: bs, last: NoBit}
}

// NewForwardCursorFrom returns a cursor that yields every member of bs
// strictly after p, in ascending order. p == NoBit scans from the start.
func NewForwardCursorFrom(bs BitsetLike, p int) *ForwardCursor {
	bs.ScanInitFrom(p, ScanForward)
	return &ForwardCursor{bs: bs, last: NoBit}
}

// NextBit returns the next position, or NoBit on exhaustion.
func (c *ForwardCursor) NextBit() int {
	c.last = c.bs.NextBit()
	return c.last
}

// CurrentBlock returns the block index of the last bit NextBit
// returned, or NoBit if NextBit has not yet been called or is
// exhausted.
func (c *ForwardCursor) CurrentBlock() int {
	if c.last == NoBit {
		return NoBit
	}
	return c.last / WordBits
}

// ReverseCursor is a first-class, non-destructive reverse scan over a
// BitsetLike.
type ReverseCursor struct {
	bs   BitsetLike
	last int
}

// NewReverseCursor returns a cursor that yields every member of bs in
// descending order.
func NewReverseCursor(bs BitsetLike) *ReverseCursor {
	bs.ScanInit(ScanReverse)
	return &ReverseCursor{bs: bs, last: NoBit}
}

// NewReverseCursorFrom returns a cursor that yields every member of bs
// strictly before p, in descending order. p == NoBit scans from the end.
func NewReverseCursorFrom(bs BitsetLike, p int) *ReverseCursor {
	bs.ScanInitFrom(p, ScanReverse)
	return &ReverseCursor{bs: bs, last: NoBit}
}

// NextBit returns the next position, or NoBit on exhaustion.
func (c *ReverseCursor) NextBit() int {
	c.last = c.bs.PrevBit()
	return c.last
}

// CurrentBlock returns the block index of the last bit NextBit
// returned, or NoBit if NextBit has not yet been called or is
// exhausted.
func (c *ReverseCursor) CurrentBlock() int {
	if c.last == NoBit {
		return NoBit
	}
	return c.last / WordBits
}

// ForwardDestructiveCursor is a first-class forward scan over a
// BitsetLike that clears each bit as it is yielded.
type ForwardDestructiveCursor struct {
	bs    BitsetLike
	last  int
	empty bool
}

// NewForwardDestructiveCursor returns a destructive cursor that yields,
// and clears, every member of bs in ascending order. If bs is empty at
// construction, Empty reports true and NextBit must not be called.
func NewForwardDestructiveCursor(bs BitsetLike) *ForwardDestructiveCursor {
	empty := bs.IsEmpty()
	bs.ScanInit(ScanForwardDestructive)
	return &ForwardDestructiveCursor{bs: bs, last: NoBit, empty: empty}
}

// Empty reports whether the bitset was already empty at cursor
// construction; if true, callers must not call NextBit.
func (c *ForwardDestructiveCursor) Empty() bool { return c.empty }

// NextBit clears and returns the next position, or NoBit on exhaustion.
func (c *ForwardDestructiveCursor) NextBit() int {
	c.last = c.bs.NextBitDel()
	return c.last
}

// CurrentBlock returns the block index of the last bit NextBit
// returned, or NoBit if NextBit has not yet been called or is
// exhausted.
func (c *ForwardDestructiveCursor) CurrentBlock() int {
	if c.last == NoBit {
		return NoBit
	}
	return c.last / WordBits
}

// ReverseDestructiveCursor is a first-class reverse scan over a
// BitsetLike that clears each bit as it is yielded.
type ReverseDestructiveCursor struct {
	bs    BitsetLike
	last  int
	empty bool
}

// NewReverseDestructiveCursor returns a destructive cursor that yields,
// and clears, every member of bs in descending order. If bs is empty at
// construction, Empty reports true and NextBit must not be called.
func NewReverseDestructiveCursor(bs BitsetLike) *ReverseDestructiveCursor {
	empty := bs.IsEmpty()
	bs.ScanInit(ScanReverseDestructive)
	return &ReverseDestructiveCursor{bs: bs, last: NoBit, empty: empty}
}

// Empty reports whether the bitset was already empty at cursor
// construction; if true, callers must not call NextBit.
func (c *ReverseDestructiveCursor) Empty() bool { return c.empty }

// NextBit clears and returns the next position, or NoBit on exhaustion.
func (c *ReverseDestructiveCursor) NextBit() int {
	c.last = c.bs.PrevBitDel()
	return c.last
}

// CurrentBlock returns the block index of the last bit NextBit
// returned, or NoBit if NextBit has not yet been called or is
// exhausted.
func (c *ReverseDestructiveCursor) CurrentBlock() int {
	if c.last == NoBit {
		return NoBit
	}
	return c.last / WordBits
}
