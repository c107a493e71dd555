// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package graph implements directed and undirected graph containers
// whose adjacency rows are bitgraph-go/bitset bitsets, plus readers and
// writers for the DIMACS, Matrix Market, edge-list and 0/1 matrix file
// formats.
package graph

import (
	"github.com/psanse/bitgraph-go/bitset"
	"github.com/psanse/bitgraph-go/internal/must"
)

// GraphLike is satisfied by both Directed and Undirected. It is the
// minimal surface the I/O readers/writers and the weighted overlays
// need, independent of edge-direction semantics.
type GraphLike interface {
	N() int
	Name() string
	SetName(name string)
	Row(v int) bitset.BitsetLike
	IsEdge(v, w int) bool
	AddEdge(v, w int)
}

// graphCore is the shared representation for Directed and Undirected:
// N adjacency rows plus a lazily-computed, explicitly-invalidated edge
// count. Row i holds vertex i's out-neighbors (directed) or neighbors
// (undirected).
type graphCore struct {
	rows           []bitset.BitsetLike
	n              int
	name           string
	path           string
	edgeCount      int
	edgeCountValid bool
	factory        bitset.RowFactory
}

func newGraphCore(n int, factory bitset.RowFactory) *graphCore {
	must.True(n >= 0, "graph: negative vertex count")
	rows := make([]bitset.BitsetLike, n)
	for i := range rows {
		rows[i] = factory(n)
	}
	return &graphCore{rows: rows, n: n, factory: factory, edgeCountValid: true}
}

// N returns the number of vertices.
func (g *graphCore) N() int { return g.n }

// Name returns the graph's display name (e.g. for file-format headers).
func (g *graphCore) Name() string { return g.name }

// SetName sets the graph's display name.
func (g *graphCore) SetName(name string) { g.name = name }

// Path returns the file path the graph was last read from or written
// to, or "" if none.
func (g *graphCore) Path() string { return g.path }

// SetPath sets the last-known file path.
func (g *graphCore) SetPath(path string) { g.path = path }

// Row returns the adjacency bitset for vertex v.
func (g *graphCore) Row(v int) bitset.BitsetLike {
	must.True(v >= 0 && v < g.n, "graph: vertex out of range")
	return g.rows[v]
}

func (g *graphCore) checkVertex(v int) {
	must.True(v >= 0 && v < g.n, "graph: vertex out of range")
}

func (g *graphCore) invalidateEdgeCount() {
	g.edgeCountValid = false
	g.edgeCount = 0
}

// clearAllRows empties every adjacency row and invalidates the cache.
func (g *graphCore) clearAllRows() {
	for _, r := range g.rows {
		r.ClearAll()
	}
	g.invalidateEdgeCount()
}
