// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset_test

import (
	"testing"

	"github.com/psanse/bitgraph-go/bitset"
	"github.com/stretchr/testify/require"
)

func TestSparseRangeSetSpanningBlocks(t *testing.T) {
	s := bitset.NewSparse(10000)
	s.SetRange(3, 27)
	s.Set(1002)
	s.SetRange(29, 125)

	require.Equal(t, 25+1+97, s.Size())
	require.False(t, s.IsSet(28))
	require.True(t, s.IsSet(125))

	entries := s.ToSlice()
	require.NotEmpty(t, entries)
}

func TestSparseEntriesStaySorted(t *testing.T) {
	s := bitset.NewSparse(1000)
	s.Set(900)
	s.Set(5)
	s.Set(500)
	s.Set(64)

	// ToSlice returns positions in ascending order regardless of
	// insertion order, which only holds if the backing entries are kept
	// sorted by block.
	require.Equal(t, []int{5, 64, 500, 900}, s.ToSlice())
}

func TestSparseShrinkToFit(t *testing.T) {
	s := bitset.NewSparse(128)
	s.Set(10)
	s.Set(70)
	s.Clear(10)
	require.Equal(t, 2, s.NumberOfEntries())
	s.ShrinkToFit()
	require.Equal(t, 1, s.NumberOfEntries())
}

func TestSparseAlgebra(t *testing.T) {
	a := bitset.NewSparseFromSlice(256, []int{1, 130, 200})
	b := bitset.NewSparseFromSlice(256, []int{1, 131, 200})

	require.Equal(t, []int{1, 200}, bitset.SparseAND(a, b).ToSlice())
	require.Equal(t, []int{1, 130, 131, 200}, bitset.SparseOR(a, b).ToSlice())
	require.Equal(t, []int{130, 131}, bitset.SparseXOR(a, b).ToSlice())
	require.Equal(t, []int{130}, bitset.SparseERASE(a, b).ToSlice())
}

func TestSparseAlgebraBlockRestricted(t *testing.T) {
	a := bitset.NewSparseFromSlice(512, []int{1, 70, 200, 400})
	b := bitset.NewSparseFromSlice(512, []int{1, 70, 400})

	require.Equal(t, []int{1, 70}, bitset.SparseANDBlock(a, b, 0, 1).ToSlice())
}

func TestSparseScanMatchesToSlice(t *testing.T) {
	s := bitset.NewSparseFromSlice(1000, []int{3, 70, 900})
	s.ScanInit(bitset.ScanForward)
	var got []int
	for {
		p := s.NextBit()
		if p == bitset.NoBit {
			break
		}
		got = append(got, p)
	}
	require.Equal(t, s.ToSlice(), got)
}

func TestSparseDestructiveReverseScanEmptiesSet(t *testing.T) {
	s := bitset.NewSparseFromSlice(1000, []int{3, 70, 900})
	s.ScanInit(bitset.ScanReverseDestructive)
	var got []int
	for {
		p := s.PrevBitDel()
		if p == bitset.NoBit {
			break
		}
		got = append(got, p)
	}
	require.Equal(t, []int{900, 70, 3}, got)
	require.True(t, s.IsEmpty())
}
