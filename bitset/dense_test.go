// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset_test

import (
	"testing"

	"github.com/psanse/bitgraph-go/bitset"
	"github.com/stretchr/testify/require"
)

func multiplesOf50(d *bitset.Dense) {
	for p := 0; p <= 300; p += 50 {
		d.Set(p)
	}
}

func TestDense301BitMultiplesOf50(t *testing.T) {
	d := bitset.NewDense(301)
	multiplesOf50(d)

	require.Equal(t, 7, d.Size())
	for p := 0; p <= 300; p += 50 {
		require.Truef(t, d.IsSet(p), "expected bit %d set", p)
	}
	require.Equal(t, 5, d.NumberOfBlocks())
	require.Equal(t, 300, d.Msb())
	require.Equal(t, 0, d.Lsb())
}

func TestDenseDestructiveReverseScan(t *testing.T) {
	d := bitset.NewDense(301)
	multiplesOf50(d)

	d.ScanInit(bitset.ScanReverseDestructive)
	var got []int
	for {
		p := d.PrevBitDel()
		if p == bitset.NoBit {
			break
		}
		got = append(got, p)
	}
	require.Equal(t, []int{300, 250, 200, 150, 100, 50, 0}, got)
	require.Equal(t, 0, d.Size())
	require.True(t, d.IsEmpty())
}

func TestDenseForwardScanMatchesToSlice(t *testing.T) {
	d := bitset.NewDense(301)
	multiplesOf50(d)

	d.ScanInit(bitset.ScanForward)
	var got []int
	for {
		p := d.NextBit()
		if p == bitset.NoBit {
			break
		}
		got = append(got, p)
	}
	require.Equal(t, d.ToSlice(), got)
}

func TestDenseSetRangeAndClearRange(t *testing.T) {
	d := bitset.NewDense(200)
	d.SetRange(10, 70)
	require.Equal(t, 61, d.Size())
	for p := 10; p <= 70; p++ {
		require.Truef(t, d.IsSet(p), "bit %d should be set", p)
	}
	require.False(t, d.IsSet(9))
	require.False(t, d.IsSet(71))

	d.ClearRange(20, 30)
	require.Equal(t, 61-11, d.Size())
	for p := 20; p <= 30; p++ {
		require.Falsef(t, d.IsSet(p), "bit %d should be cleared", p)
	}
}

func TestDenseSingleBitRange(t *testing.T) {
	d := bitset.NewDense(128)
	d.SetRange(64, 64)
	require.Equal(t, 1, d.Size())
	require.True(t, d.IsSet(64))
}

func TestDenseSizeRange(t *testing.T) {
	d := bitset.NewDense(200)
	multiplesOf50testUpTo200(d)
	require.Equal(t, 4, d.SizeRange(0, 150))
	require.Equal(t, 3, d.SizeRange(0, 140))
	require.Equal(t, 4, d.SizeRange(0, bitset.NoBit))
}

func multiplesOf50testUpTo200(d *bitset.Dense) {
	for p := 0; p <= 150; p += 50 {
		d.Set(p)
	}
}

func TestDenseAlgebra(t *testing.T) {
	a := bitset.NewDenseFromSlice(64, []int{1, 2, 3})
	b := bitset.NewDenseFromSlice(64, []int{2, 3, 4})
	out := bitset.NewDense(64)

	bitset.DenseAND(a, b, out)
	require.Equal(t, []int{2, 3}, out.ToSlice())

	bitset.DenseOR(a, b, out)
	require.Equal(t, []int{1, 2, 3, 4}, out.ToSlice())

	bitset.DenseXOR(a, b, out)
	require.Equal(t, []int{1, 4}, out.ToSlice())

	bitset.DenseERASE(a, b, out)
	require.Equal(t, []int{1}, out.ToSlice())
}

func TestDenseIsDisjoint(t *testing.T) {
	a := bitset.NewDenseFromSlice(64, []int{1, 2})
	b := bitset.NewDenseFromSlice(64, []int{3, 4})
	c := bitset.NewDenseFromSlice(64, []int{2, 5})
	require.True(t, a.IsDisjoint(b))
	require.False(t, a.IsDisjoint(c))
}

func TestDenseEmptyUniverse(t *testing.T) {
	d := bitset.NewDense(0)
	require.True(t, d.IsEmpty())
	require.Equal(t, bitset.NoBit, d.Msb())
	require.Equal(t, bitset.NoBit, d.Lsb())
}

func TestDenseDuplicateSetTolerated(t *testing.T) {
	d := bitset.NewDenseFromSlice(64, []int{3, 3, 3, 5})
	require.Equal(t, 2, d.Size())
}
