// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset_test

import (
	"testing"

	"github.com/psanse/bitgraph-go/bitset"
	"github.com/stretchr/testify/require"
)

func TestMasksEdgeBehavior(t *testing.T) {
	require.Equal(t, uint64(0), bitset.MaskLow(0))
	require.Equal(t, ^uint64(0), bitset.MaskLow(64))
	require.Equal(t, ^uint64(0), bitset.MaskHigh(0))
	require.Equal(t, uint64(0), bitset.MaskHigh(64))
	require.Equal(t, uint64(1), bitset.MaskSingle(0))
	require.Equal(t, uint64(1)<<63, bitset.MaskSingle(63))
}

func TestPopCountTrailingLeading(t *testing.T) {
	w := uint64(0b10110)
	require.Equal(t, 3, bitset.PopCount(w))
	require.Equal(t, 1, bitset.TrailingZeros(w))
	require.Equal(t, 4, bitset.LeadingZeroComplement(w))
}
