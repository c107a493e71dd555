// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

// ScanInit initializes the cached cursor for kind at the natural
// starting position for that direction. Cursor state is (idx, pos)
// where idx is the index into the entry vector, not the block index.
func (s *Sparse) ScanInit(kind ScanKind) {
	switch kind {
	case ScanForward, ScanForwardDestructive:
		s.cur = sparseCursor{idx: 0, pos: NoBit, set: true}
	case ScanReverse, ScanReverseDestructive:
		s.cur = sparseCursor{idx: len(s.entries) - 1, pos: WordBits, set: true}
	}
}

// ScanInitFrom initializes the cached cursor so the next yielded
// position is strictly after p (forward kinds) or strictly before p
// (reverse kinds). p == NoBit means "from the natural end".
func (s *Sparse) ScanInitFrom(p int, kind ScanKind) {
	if p == NoBit {
		s.ScanInit(kind)
		return
	}
	found, i := s.find(uint32(blockOf(p)))
	switch kind {
	case ScanForward, ScanForwardDestructive:
		if found {
			s.cur = sparseCursor{idx: i, pos: offsetOf(p), set: true}
		} else {
			s.cur = sparseCursor{idx: i, pos: NoBit, set: true}
		}
	case ScanReverse, ScanReverseDestructive:
		if found {
			s.cur = sparseCursor{idx: i, pos: offsetOf(p), set: true}
		} else {
			s.cur = sparseCursor{idx: i - 1, pos: WordBits, set: true}
		}
	}
}

// NextBit advances a cursor set up with ScanForward and returns the
// next position in increasing order, or NoBit on exhaustion.
func (s *Sparse) NextBit() int {
	p, _ := s.nextBitEntry()
	return p
}

// nextBitEntry is NextBit, additionally reporting the entry-vector
// index the yielded bit was found in (or NoBit if exhausted).
func (s *Sparse) nextBitEntry() (int, int) {
	for s.cur.idx < len(s.entries) {
		if w := s.entries[s.cur.idx].word & MaskHigh(s.cur.pos+1); w != 0 {
			s.cur.pos = TrailingZeros(w)
			return int(s.entries[s.cur.idx].block)*WordBits + s.cur.pos, s.cur.idx
		}
		s.cur.idx++
		s.cur.pos = NoBit
	}
	return NoBit, NoBit
}

// PrevBit advances a cursor set up with ScanReverse and returns the
// next position in decreasing order, or NoBit on exhaustion.
func (s *Sparse) PrevBit() int {
	p, _ := s.prevBitEntry()
	return p
}

// prevBitEntry is PrevBit, additionally reporting the entry-vector
// index the yielded bit was found in (or NoBit if exhausted).
func (s *Sparse) prevBitEntry() (int, int) {
	for s.cur.idx >= 0 {
		if w := s.entries[s.cur.idx].word & MaskLow(s.cur.pos); w != 0 {
			s.cur.pos = LeadingZeroComplement(w)
			return int(s.entries[s.cur.idx].block)*WordBits + s.cur.pos, s.cur.idx
		}
		s.cur.idx--
		s.cur.pos = WordBits
	}
	return NoBit, NoBit
}

// NextBitDel advances a cursor set up with ScanForwardDestructive,
// clearing and returning the next position in increasing order, or
// NoBit on exhaustion.
func (s *Sparse) NextBitDel() int {
	p, _ := s.NextBitDelBlock()
	return p
}

// NextBitDelBlock is NextBitDel, additionally reporting the logical
// block index the yielded bit belonged to.
func (s *Sparse) NextBitDelBlock() (pos int, block int) {
	p, idx := s.nextBitEntry()
	if p == NoBit {
		return NoBit, NoBit
	}
	block = int(s.entries[idx].block)
	s.entries[idx].word &^= MaskSingle(offsetOf(p))
	return p, block
}

// NextBitDelEntry is NextBitDel, additionally reporting the
// entry-vector index the yielded bit belonged to; callers typically use
// this to batch-erase entries after the scan.
func (s *Sparse) NextBitDelEntry() (pos int, entryIdx int) {
	p, idx := s.nextBitEntry()
	if p == NoBit {
		return NoBit, NoBit
	}
	s.entries[idx].word &^= MaskSingle(offsetOf(p))
	return p, idx
}

// PrevBitDel advances a cursor set up with ScanReverseDestructive,
// clearing and returning the next position in decreasing order, or
// NoBit on exhaustion.
func (s *Sparse) PrevBitDel() int {
	p, _ := s.PrevBitDelBlock()
	return p
}

// PrevBitDelBlock is PrevBitDel, additionally reporting the logical
// block index the yielded bit belonged to.
func (s *Sparse) PrevBitDelBlock() (pos int, block int) {
	p, idx := s.prevBitEntry()
	if p == NoBit {
		return NoBit, NoBit
	}
	block = int(s.entries[idx].block)
	s.entries[idx].word &^= MaskSingle(offsetOf(p))
	return p, block
}

// PrevBitDelEntry is PrevBitDel, additionally reporting the
// entry-vector index the yielded bit belonged to.
func (s *Sparse) PrevBitDelEntry() (pos int, entryIdx int) {
	p, idx := s.prevBitEntry()
	if p == NoBit {
		return NoBit, NoBit
	}
	s.entries[idx].word &^= MaskSingle(offsetOf(p))
	return p, idx
}
