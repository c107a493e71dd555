// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package weighted

import (
	"github.com/psanse/bitgraph-go/graph"
	"github.com/psanse/bitgraph-go/internal/xlog"
)

// WeightKind selects which diagonal/off-diagonal cells
// ComplementWeights negates.
type WeightKind int

const (
	// EdgeWeights negates only off-diagonal cells.
	EdgeWeights WeightKind = iota
	// VertexWeights negates only the diagonal.
	VertexWeights
	// BothWeights negates every cell.
	BothWeights
)

// EdgeWeighted overlays an N x N weight matrix onto a graph: cell
// we[v][w] holds the weight of edge v->w (or v<->w for an undirected
// overlay); the diagonal we[v][v] holds vertex weights, independent of
// topology.
type EdgeWeighted struct {
	G        graph.GraphLike
	we       [][]float64
	directed bool
}

// NewEdgeWeighted returns an EdgeWeighted overlay over g, every cell
// initialized to NoWeight.
func NewEdgeWeighted(g graph.GraphLike) *EdgeWeighted {
	n := g.N()
	we := make([][]float64, n)
	for i := range we {
		we[i] = make([]float64, n)
		for j := range we[i] {
			we[i][j] = NoWeight
		}
	}
	_, directed := g.(*graph.Directed)
	return &EdgeWeighted{G: g, we: we, directed: directed}
}

// Weight returns the weight of cell (v,w).
func (ew *EdgeWeighted) Weight(v, w int) float64 {
	return ew.we[v][w]
}

// AddEdge adds the edge (v,w) to the underlying graph and assigns its
// weight, mirroring both directions for an undirected overlay.
func (ew *EdgeWeighted) AddEdge(v, w int, weight float64) {
	ew.G.AddEdge(v, w)
	ew.we[v][w] = weight
	if !ew.directed {
		ew.we[w][v] = weight
	}
}

// SetEdgeWeight sets the weight of edge (v,w). This is only valid if
// the graph already has the edge, or if x == NoWeight (clearing a
// weight is always permitted); otherwise the call is logged and
// ignored.
func (ew *EdgeWeighted) SetEdgeWeight(v, w int, x float64) {
	if !ew.G.IsEdge(v, w) && x != NoWeight {
		xlog.Warning.Printf("weighted: SetEdgeWeight(%d,%d,%v) ignored: no such edge", v, w, x)
		return
	}
	ew.we[v][w] = x
	if !ew.directed {
		ew.we[w][v] = x
	}
}

// SetVertexWeight writes x to the diagonal cell for v.
func (ew *EdgeWeighted) SetVertexWeight(v int, x float64) {
	ew.we[v][v] = x
}

// VertexWeight reads the diagonal cell for v.
func (ew *EdgeWeighted) VertexWeight(v int) float64 {
	return ew.we[v][v]
}

// ComplementWeights negates the weights selected by kind, skipping any
// cell currently holding NoWeight.
func (ew *EdgeWeighted) ComplementWeights(kind WeightKind) {
	n := len(ew.we)
	for v := 0; v < n; v++ {
		for w := 0; w < n; w++ {
			diag := v == w
			if diag && kind == EdgeWeights {
				continue
			}
			if !diag && kind == VertexWeights {
				continue
			}
			if ew.we[v][w] != NoWeight {
				ew.we[v][w] = -ew.we[v][w]
			}
		}
	}
}

// EraseNonEdgeWeights sets to NoWeight every off-diagonal cell (v,w)
// for which the underlying graph has no edge.
func (ew *EdgeWeighted) EraseNonEdgeWeights() {
	n := len(ew.we)
	for v := 0; v < n; v++ {
		for w := 0; w < n; w++ {
			if v != w && !ew.G.IsEdge(v, w) {
				ew.we[v][w] = NoWeight
			}
		}
	}
}

// MakeEdgeWeighted clears every diagonal cell to NoWeight (discarding
// vertex weights), optionally also erasing non-edge weights.
func (ew *EdgeWeighted) MakeEdgeWeighted(eraseNonEdges bool) {
	for v := range ew.we {
		ew.we[v][v] = NoWeight
	}
	if eraseNonEdges {
		ew.EraseNonEdgeWeights()
	}
}
