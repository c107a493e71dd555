// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset_test

import (
	"testing"

	"github.com/psanse/bitgraph-go/bitset"
	"github.com/stretchr/testify/require"
)

func TestBoundedDenseTracksSentinels(t *testing.T) {
	b := bitset.NewBoundedDense(300)
	low, high := b.Bounds()
	require.Greater(t, low, high) // empty

	b.Set(70)
	b.Set(200)
	low, high = b.Bounds()
	require.Equal(t, 1, low)
	require.Equal(t, 3, high)

	b.Clear(200)
	low, high = b.Bounds()
	require.Equal(t, 1, low)
	require.Equal(t, 1, high)
}

func TestBoundedDenseScanRestrictedToRange(t *testing.T) {
	b := bitset.NewBoundedDense(300)
	b.Set(70)
	b.Set(200)
	b.ScanInit(bitset.ScanForward)
	var got []int
	for {
		p := b.NextBit()
		if p == bitset.NoBit {
			break
		}
		got = append(got, p)
	}
	require.Equal(t, []int{70, 200}, got)
}
