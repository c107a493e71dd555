// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

// ScanKind selects the direction and destructiveness of a cached
// in-bitset scan started by ScanInit / ScanInitFrom, and which of
// NextBit / PrevBit / NextBitDel / PrevBitDel a caller may legally call
// afterwards.
type ScanKind int

const (
	// ScanForward pairs with NextBit: positions in increasing order,
	// bitset unmodified.
	ScanForward ScanKind = iota
	// ScanReverse pairs with PrevBit: positions in decreasing order,
	// bitset unmodified.
	ScanReverse
	// ScanForwardDestructive pairs with NextBitDel: positions in
	// increasing order, each bit cleared as it is yielded.
	ScanForwardDestructive
	// ScanReverseDestructive pairs with PrevBitDel: positions in
	// decreasing order, each bit cleared as it is yielded.
	ScanReverseDestructive
)

// BitsetLike is satisfied by both Dense and Sparse, and is the type
// graph adjacency rows are held as. It captures the semantic operations
// common to both representations; cursor construction, merge operators
// (AND/OR/XOR/ERASE) and representation-specific extras live on the
// concrete types because their signatures — and, for merges, the
// requirement that both operands share a representation — differ.
type BitsetLike interface {
	// Capacity returns the universe size N fixed at construction.
	Capacity() int

	// Set adds p to the set. p must be in [0, Capacity()).
	Set(p int)

	// Clear removes p from the set. p must be in [0, Capacity()).
	Clear(p int)

	// IsSet reports whether p is a member. p must be in [0, Capacity()).
	IsSet(p int) bool

	// Size returns the number of members.
	Size() int

	// SizeRange returns the number of members in [from, to]. to == -1
	// means "to the end of the universe".
	SizeRange(from, to int) int

	// IsEmpty reports whether the set has no members.
	IsEmpty() bool

	// ClearAll removes every member.
	ClearAll()

	// ToSlice returns the members in ascending order.
	ToSlice() []int

	// Msb returns the highest member, or NoBit if empty.
	Msb() int

	// Lsb returns the lowest member, or NoBit if empty.
	Lsb() int

	// Clone returns an independent copy of the same representation.
	Clone() BitsetLike

	// ScanInit initializes the cached cursor for kind at the natural
	// starting position for that direction.
	ScanInit(kind ScanKind)

	// ScanInitFrom initializes the cached cursor so the next yielded
	// position is strictly after p (forward kinds) or strictly before p
	// (reverse kinds). p == NoBit means "from the natural end".
	ScanInitFrom(p int, kind ScanKind)

	// NextBit advances a cursor set up with ScanForward and returns the
	// next position in increasing order, or NoBit on exhaustion.
	NextBit() int

	// PrevBit advances a cursor set up with ScanReverse and returns the
	// next position in decreasing order, or NoBit on exhaustion.
	PrevBit() int

	// NextBitDel advances a cursor set up with ScanForwardDestructive,
	// clearing and returning the next position in increasing order, or
	// NoBit on exhaustion.
	NextBitDel() int

	// PrevBitDel advances a cursor set up with ScanReverseDestructive,
	// clearing and returning the next position in decreasing order, or
	// NoBit on exhaustion.
	PrevBitDel() int
}
