// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package graph_test

import (
	"testing"

	"github.com/psanse/bitgraph-go/bitset"
	"github.com/psanse/bitgraph-go/graph"
	"github.com/stretchr/testify/require"
)

func TestDirectedAddRemoveEdge(t *testing.T) {
	g := graph.NewDirected(5, bitset.NewDenseFactory())
	g.AddEdge(0, 1)
	require.True(t, g.IsEdge(0, 1))
	require.False(t, g.IsEdge(1, 0))
	require.Equal(t, 1, g.NumberOfEdges(true))

	g.RemoveEdge(0, 1)
	require.False(t, g.IsEdge(0, 1))
	require.Equal(t, 0, g.NumberOfEdges(true))
}

func TestDirectedSelfLoopNoOp(t *testing.T) {
	g := graph.NewDirected(4, bitset.NewSparseFactory())
	g.AddEdge(1, 1)
	require.False(t, g.IsEdge(1, 1))
	require.False(t, g.IsSelfLoopPresent())
}

func TestDirectedDegreeInOut(t *testing.T) {
	g := graph.NewDirected(4, bitset.NewDenseFactory())
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(3, 1)

	require.Equal(t, 2, g.DegreeOut(0))
	require.Equal(t, 2, g.DegreeIn(1))
	require.Equal(t, 0, g.DegreeIn(0))
}

func TestDirectedComplement(t *testing.T) {
	g := graph.NewDirected(3, bitset.NewDenseFactory())
	g.AddEdge(0, 1)
	c := g.Complement()
	require.False(t, c.IsEdge(0, 1))
	require.True(t, c.IsEdge(1, 0))
	require.True(t, c.IsEdge(0, 2))
	require.True(t, c.IsEdge(2, 0))
}

func TestDirectedSubgraphFirstK(t *testing.T) {
	g := graph.NewDirected(6, bitset.NewDenseFactory())
	g.AddEdge(0, 1)
	g.AddEdge(1, 5)
	g.AddEdge(2, 0)

	out := graph.NewDirected(3, bitset.NewDenseFactory())
	g.SubgraphFirstK(3, out)
	require.True(t, out.IsEdge(0, 1))
	require.True(t, out.IsEdge(2, 0))
	require.Equal(t, 0, out.DegreeOut(1)) // 1->5 lies outside [0,3), excluded
}

func TestDirectedRemoveEdgesResetsCache(t *testing.T) {
	g := graph.NewDirected(4, bitset.NewDenseFactory())
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(2, 1)
	g.RemoveEdges(1)
	require.False(t, g.IsEdge(0, 1))
	require.False(t, g.IsEdge(1, 0))
	require.False(t, g.IsEdge(2, 1))
	require.Equal(t, 0, g.NumberOfEdges(false))
}
