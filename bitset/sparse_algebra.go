// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

import "github.com/psanse/bitgraph-go/internal/must"

func checkSameSparseUniverse(a, b *Sparse) {
	must.True(a.n == b.n, "bitset: operands must share a universe")
}

// SparseAND returns the intersection of a and b: a block appears in the
// result only when both operands have it, with word a.word & b.word.
func SparseAND(a, b *Sparse) *Sparse {
	checkSameSparseUniverse(a, b)
	out := NewSparse(a.n)
	i, j := 0, 0
	for i < len(a.entries) && j < len(b.entries) {
		switch {
		case a.entries[i].block < b.entries[j].block:
			i++
		case a.entries[i].block > b.entries[j].block:
			j++
		default:
			if w := a.entries[i].word & b.entries[j].word; w != 0 {
				out.entries = append(out.entries, sparseEntry{block: a.entries[i].block, word: w})
			}
			i++
			j++
		}
	}
	return out
}

// SparseOR returns the union of a and b: every block from either side
// appears; blocks present in both emit a.word | b.word.
func SparseOR(a, b *Sparse) *Sparse {
	checkSameSparseUniverse(a, b)
	out := NewSparse(a.n)
	i, j := 0, 0
	for i < len(a.entries) || j < len(b.entries) {
		switch {
		case j >= len(b.entries) || (i < len(a.entries) && a.entries[i].block < b.entries[j].block):
			out.entries = append(out.entries, a.entries[i])
			i++
		case i >= len(a.entries) || a.entries[i].block > b.entries[j].block:
			out.entries = append(out.entries, b.entries[j])
			j++
		default:
			out.entries = append(out.entries, sparseEntry{block: a.entries[i].block, word: a.entries[i].word | b.entries[j].word})
			i++
			j++
		}
	}
	return out
}

// SparseXOR returns the symmetric difference of a and b: identical
// blocks emit a.word ^ b.word (omitted if zero); singleton blocks pass
// through unchanged.
func SparseXOR(a, b *Sparse) *Sparse {
	checkSameSparseUniverse(a, b)
	out := NewSparse(a.n)
	i, j := 0, 0
	for i < len(a.entries) || j < len(b.entries) {
		switch {
		case j >= len(b.entries) || (i < len(a.entries) && a.entries[i].block < b.entries[j].block):
			out.entries = append(out.entries, a.entries[i])
			i++
		case i >= len(a.entries) || a.entries[i].block > b.entries[j].block:
			out.entries = append(out.entries, b.entries[j])
			j++
		default:
			if w := a.entries[i].word ^ b.entries[j].word; w != 0 {
				out.entries = append(out.entries, sparseEntry{block: a.entries[i].block, word: w})
			}
			i++
			j++
		}
	}
	return out
}

// SparseERASE returns a minus b: for every block of a, if b also has it,
// emit a.word &^ b.word when non-zero; otherwise emit a's entry as is.
func SparseERASE(a, b *Sparse) *Sparse {
	checkSameSparseUniverse(a, b)
	out := NewSparse(a.n)
	i, j := 0, 0
	for i < len(a.entries) {
		for j < len(b.entries) && b.entries[j].block < a.entries[i].block {
			j++
		}
		if j < len(b.entries) && b.entries[j].block == a.entries[i].block {
			if w := a.entries[i].word &^ b.entries[j].word; w != 0 {
				out.entries = append(out.entries, sparseEntry{block: a.entries[i].block, word: w})
			}
		} else {
			out.entries = append(out.entries, a.entries[i])
		}
		i++
	}
	return out
}

func inBlockRange(b, first, last uint32) bool { return b >= first && b <= last }

func sliceInBlockRange(s *Sparse, first, last int) []sparseEntry {
	lo := uint32(first)
	hi := uint32(last)
	var out []sparseEntry
	for _, e := range s.entries {
		if inBlockRange(e.block, lo, hi) {
			out = append(out, e)
		}
	}
	return out
}

// SparseANDBlock is SparseAND restricted to the inclusive block range
// [firstBlock, lastBlock].
func SparseANDBlock(a, b *Sparse, firstBlock, lastBlock int) *Sparse {
	ra, rb := &Sparse{n: a.n, entries: sliceInBlockRange(a, firstBlock, lastBlock)}, &Sparse{n: b.n, entries: sliceInBlockRange(b, firstBlock, lastBlock)}
	return SparseAND(ra, rb)
}

// SparseORBlock is SparseOR restricted to the inclusive block range
// [firstBlock, lastBlock].
func SparseORBlock(a, b *Sparse, firstBlock, lastBlock int) *Sparse {
	ra, rb := &Sparse{n: a.n, entries: sliceInBlockRange(a, firstBlock, lastBlock)}, &Sparse{n: b.n, entries: sliceInBlockRange(b, firstBlock, lastBlock)}
	return SparseOR(ra, rb)
}

// SparseXORBlock is SparseXOR restricted to the inclusive block range
// [firstBlock, lastBlock].
func SparseXORBlock(a, b *Sparse, firstBlock, lastBlock int) *Sparse {
	ra, rb := &Sparse{n: a.n, entries: sliceInBlockRange(a, firstBlock, lastBlock)}, &Sparse{n: b.n, entries: sliceInBlockRange(b, firstBlock, lastBlock)}
	return SparseXOR(ra, rb)
}

// SparseERASEBlock is SparseERASE restricted to the inclusive block
// range [firstBlock, lastBlock].
func SparseERASEBlock(a, b *Sparse, firstBlock, lastBlock int) *Sparse {
	ra, rb := &Sparse{n: a.n, entries: sliceInBlockRange(a, firstBlock, lastBlock)}, &Sparse{n: b.n, entries: sliceInBlockRange(b, firstBlock, lastBlock)}
	return SparseERASE(ra, rb)
}
