// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bitset implements fixed-universe bit-parallel sets over packed
// uint64 words, in both dense (array-of-words) and sparse
// (sorted-entry-list) representations. Both representations satisfy
// BitsetLike and back the adjacency rows of the graph package.
//
// Bit positions are non-negative integers; NoBit (-1) is the universal
// sentinel for "no such position". A bit's block index is p/64, its
// in-block offset is p%64.
package bitset
