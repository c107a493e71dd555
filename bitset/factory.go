// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

// RowFactory constructs a fresh, empty BitsetLike of capacity n. Graph
// containers take a RowFactory at construction so callers choose the
// dense or sparse representation for adjacency rows without the graph
// package depending on either concrete type.
type RowFactory func(n int) BitsetLike

// NewDenseFactory returns a RowFactory that builds Dense rows.
func NewDenseFactory() RowFactory {
	return func(n int) BitsetLike { return NewDense(n) }
}

// NewSparseFactory returns a RowFactory that builds Sparse rows.
func NewSparseFactory() RowFactory {
	return func(n int) BitsetLike { return NewSparse(n) }
}
