// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

import (
	"sort"

	"github.com/psanse/bitgraph-go/internal/must"
)

// sparseEntry is one non-absent block of a Sparse bitset. By
// convention word != 0 except transiently between a mutation and a
// ShrinkToFit.
type sparseEntry struct {
	block uint32
	word  uint64
}

// Sparse is a fixed-universe bitset backed by a sorted slice of
// (block, word) entries. It trades dense's O(words) footprint for
// O(log entries) lookup, and is preferable when the expected
// occupancy is low relative to the universe size.
type Sparse struct {
	entries []sparseEntry
	n       int
	cur     sparseCursor
}

type sparseCursor struct {
	idx int // index within entries, not the block index
	pos int // last yielded in-block position, or sentinel
	set bool
}

// NewSparse returns an empty Sparse bitset over the universe [0, n).
func NewSparse(n int) *Sparse {
	must.True(n >= 0, "bitset: negative capacity")
	return &Sparse{n: n}
}

// NewSparseFromSlice returns a Sparse bitset over [0, n) containing
// exactly the positions in ps. Duplicates are tolerated silently.
func NewSparseFromSlice(n int, ps []int) *Sparse {
	s := NewSparse(n)
	for _, p := range ps {
		s.Set(p)
	}
	return s
}

// Capacity returns N.
func (s *Sparse) Capacity() int { return s.n }

func (s *Sparse) checkRange(p int) {
	must.True(p >= 0 && p < s.n, "bitset: position out of range")
}

// find returns (found, index) for block k: if found, entries[index].block
// == k; otherwise index is where an entry for k would be inserted to
// keep entries sorted.
func (s *Sparse) find(k uint32) (bool, int) {
	i := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].block >= k })
	if i < len(s.entries) && s.entries[i].block == k {
		return true, i
	}
	return false, i
}

// wordAt returns the word stored for block k, or 0 if k has no entry.
func (s *Sparse) wordAt(k uint32) uint64 {
	found, i := s.find(k)
	if !found {
		return 0
	}
	return s.entries[i].word
}

// Set adds p to the set. p must be in [0, N).
func (s *Sparse) Set(p int) {
	s.checkRange(p)
	k := uint32(blockOf(p))
	mask := MaskSingle(offsetOf(p))
	found, i := s.find(k)
	if found {
		s.entries[i].word |= mask
		return
	}
	s.entries = append(s.entries, sparseEntry{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = sparseEntry{block: k, word: mask}
}

// Clear removes p from the set. p must be in [0, N).
func (s *Sparse) Clear(p int) {
	s.checkRange(p)
	k := uint32(blockOf(p))
	found, i := s.find(k)
	if !found {
		return
	}
	s.entries[i].word &^= MaskSingle(offsetOf(p))
}

// IsSet reports whether p is a member. p must be in [0, N).
func (s *Sparse) IsSet(p int) bool {
	s.checkRange(p)
	return s.wordAt(uint32(blockOf(p)))&MaskSingle(offsetOf(p)) != 0
}

// upsert ORs mask into the entry for block k, inserting a new entry in
// sort order if k is absent.
func (s *Sparse) upsert(k uint32, mask uint64) {
	found, i := s.find(k)
	if found {
		s.entries[i].word |= mask
		return
	}
	s.entries = append(s.entries, sparseEntry{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = sparseEntry{block: k, word: mask}
}

// SetRange adds every p in [a, b] (inclusive) to the set, upserting one
// entry per block in a/64..b/64.
func (s *Sparse) SetRange(a, b int) {
	must.True(a <= b, "bitset: SetRange with a > b")
	s.checkRange(a)
	s.checkRange(b)
	first, last := blockOf(a), blockOf(b)
	if first == last {
		s.upsert(uint32(first), MaskHigh(offsetOf(a))&MaskLow(offsetOf(b)+1))
		return
	}
	s.upsert(uint32(first), MaskHigh(offsetOf(a)))
	for i := first + 1; i < last; i++ {
		s.upsert(uint32(i), ^uint64(0))
	}
	s.upsert(uint32(last), MaskLow(offsetOf(b)+1))
}

// ClearRange removes every p in [a, b] (inclusive) from the set.
func (s *Sparse) ClearRange(a, b int) {
	must.True(a <= b, "bitset: ClearRange with a > b")
	s.checkRange(a)
	s.checkRange(b)
	first, last := blockOf(a), blockOf(b)
	if first == last {
		if found, i := s.find(uint32(first)); found {
			s.entries[i].word &^= MaskHigh(offsetOf(a)) & MaskLow(offsetOf(b)+1)
		}
		return
	}
	if found, i := s.find(uint32(first)); found {
		s.entries[i].word &^= MaskHigh(offsetOf(a))
	}
	for i := first + 1; i < last; i++ {
		if found, j := s.find(uint32(i)); found {
			s.entries[j].word = 0
		}
	}
	if found, i := s.find(uint32(last)); found {
		s.entries[i].word &^= MaskLow(offsetOf(b) + 1)
	}
}

// ClearAll removes every member.
func (s *Sparse) ClearAll() {
	s.entries = s.entries[:0]
}

// Size returns the number of members. Absent blocks are never scanned.
func (s *Sparse) Size() int {
	total := 0
	for _, e := range s.entries {
		total += PopCount(e.word)
	}
	return total
}

// SizeRange returns the number of members in [from, to]. to == -1 means
// "to the end of the universe".
func (s *Sparse) SizeRange(from, to int) int {
	if to == NoBit {
		to = s.n - 1
	}
	must.True(from <= to, "bitset: SizeRange with from > to")
	first, last := blockOf(from), blockOf(to)
	total := 0
	for _, e := range s.entries {
		b := int(e.block)
		if b < first || b > last {
			continue
		}
		w := e.word
		if b == first {
			w &= MaskHigh(offsetOf(from))
		}
		if b == last {
			w &= MaskLow(offsetOf(to) + 1)
		}
		total += PopCount(w)
	}
	return total
}

// IsEmpty reports whether the set has no members (after accounting for
// possible zero-valued entries left by prior mutations).
func (s *Sparse) IsEmpty() bool {
	for _, e := range s.entries {
		if e.word != 0 {
			return false
		}
	}
	return true
}

// ToSlice returns the members in ascending order.
func (s *Sparse) ToSlice() []int {
	out := make([]int, 0, s.Size())
	for _, e := range s.entries {
		w := e.word
		for w != 0 {
			t := TrailingZeros(w)
			out = append(out, int(e.block)*WordBits+t)
			w &^= MaskSingle(t)
		}
	}
	return out
}

// Msb returns the highest member, or NoBit if empty.
func (s *Sparse) Msb() int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].word != 0 {
			return int(s.entries[i].block)*WordBits + LeadingZeroComplement(s.entries[i].word)
		}
	}
	return NoBit
}

// Lsb returns the lowest member, or NoBit if empty.
func (s *Sparse) Lsb() int {
	for _, e := range s.entries {
		if e.word != 0 {
			return int(e.block)*WordBits + TrailingZeros(e.word)
		}
	}
	return NoBit
}

// Clone returns an independent copy.
func (s *Sparse) Clone() BitsetLike {
	cp := &Sparse{n: s.n, entries: make([]sparseEntry, len(s.entries))}
	copy(cp.entries, s.entries)
	return cp
}

// NumberOfEntries returns the number of (possibly zero-valued) entries
// currently held.
func (s *Sparse) NumberOfEntries() int { return len(s.entries) }

// ShrinkToFit removes entries whose word has become zero.
func (s *Sparse) ShrinkToFit() {
	out := s.entries[:0]
	for _, e := range s.entries {
		if e.word != 0 {
			out = append(out, e)
		}
	}
	s.entries = out
}

var _ BitsetLike = (*Sparse)(nil)
