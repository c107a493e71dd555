// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset_test

import (
	"testing"

	"github.com/psanse/bitgraph-go/bitset"
	"github.com/stretchr/testify/require"
)

func TestForwardCursorDense(t *testing.T) {
	d := bitset.NewDenseFromSlice(200, []int{5, 64, 199})
	c := bitset.NewForwardCursor(d)
	var got []int
	for {
		p := c.NextBit()
		if p == bitset.NoBit {
			break
		}
		got = append(got, p)
	}
	require.Equal(t, []int{5, 64, 199}, got)
	require.Equal(t, bitset.NoBit, c.CurrentBlock())
}

func TestReverseCursorSparse(t *testing.T) {
	s := bitset.NewSparseFromSlice(200, []int{5, 64, 199})
	c := bitset.NewReverseCursor(s)
	require.Equal(t, 199, c.NextBit())
	require.Equal(t, 3, c.CurrentBlock())
	require.Equal(t, 64, c.NextBit())
	require.Equal(t, 1, c.CurrentBlock())
	require.Equal(t, 5, c.NextBit())
	require.Equal(t, bitset.NoBit, c.NextBit())
}

func TestForwardDestructiveCursorEmptiesBitset(t *testing.T) {
	d := bitset.NewDenseFromSlice(128, []int{1, 2, 3})
	c := bitset.NewForwardDestructiveCursor(d)
	require.False(t, c.Empty())
	for c.NextBit() != bitset.NoBit {
	}
	require.True(t, d.IsEmpty())
}

func TestForwardDestructiveCursorSignalsEmptyAtInit(t *testing.T) {
	s := bitset.NewSparse(128)
	c := bitset.NewForwardDestructiveCursor(s)
	require.True(t, c.Empty())
}

func TestForwardCursorFromPosition(t *testing.T) {
	d := bitset.NewDenseFromSlice(128, []int{1, 2, 3, 100})
	c := bitset.NewForwardCursorFrom(d, 2)
	require.Equal(t, 3, c.NextBit())
	require.Equal(t, 100, c.NextBit())
}
