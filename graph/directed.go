// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package graph

import (
	"github.com/psanse/bitgraph-go/bitset"
	"github.com/psanse/bitgraph-go/rng"
)

// Directed is a directed graph: row v holds the out-neighbors of
// vertex v. Self-loops are rejected at insertion.
type Directed struct {
	*graphCore
}

// NewDirected allocates an empty directed graph of n vertices, with
// adjacency rows built by factory (bitset.NewDenseFactory() or
// bitset.NewSparseFactory()).
func NewDirected(n int, factory bitset.RowFactory) *Directed {
	return &Directed{graphCore: newGraphCore(n, factory)}
}

// AddEdge adds the directed edge v->w. A self-loop (v==w) is a no-op.
func (d *Directed) AddEdge(v, w int) {
	d.checkVertex(v)
	d.checkVertex(w)
	if v == w {
		return
	}
	if d.rows[v].IsSet(w) {
		return
	}
	d.rows[v].Set(w)
	if d.edgeCountValid {
		d.edgeCount++
	}
}

// RemoveEdge removes the directed edge v->w, if present.
func (d *Directed) RemoveEdge(v, w int) {
	d.checkVertex(v)
	d.checkVertex(w)
	if !d.rows[v].IsSet(w) {
		return
	}
	d.rows[v].Clear(w)
	if d.edgeCountValid {
		d.edgeCount--
	}
}

// RemoveEdges removes every edge incident to v, in either direction.
func (d *Directed) RemoveEdges(v int) {
	d.checkVertex(v)
	d.rows[v].ClearAll()
	for i, r := range d.rows {
		if i != v {
			r.Clear(v)
		}
	}
	d.invalidateEdgeCount()
}

// RemoveAllEdges removes every edge in the graph.
func (d *Directed) RemoveAllEdges() {
	d.clearAllRows()
}

// IsEdge reports whether the directed edge v->w exists.
func (d *Directed) IsEdge(v, w int) bool {
	d.checkVertex(v)
	d.checkVertex(w)
	return d.rows[v].IsSet(w)
}

// DegreeOut returns the number of out-neighbors of v.
func (d *Directed) DegreeOut(v int) int {
	d.checkVertex(v)
	return d.rows[v].Size()
}

// DegreeIn returns the number of vertices i != v with an edge i->v.
func (d *Directed) DegreeIn(v int) int {
	d.checkVertex(v)
	count := 0
	for i, r := range d.rows {
		if i != v && r.IsSet(v) {
			count++
		}
	}
	return count
}

// NumberOfEdges returns the edge count. If lazy is true and a cached
// value is valid, the cache is returned directly; otherwise it is
// recomputed (as the sum of row sizes) and cached.
func (d *Directed) NumberOfEdges(lazy bool) int {
	if lazy && d.edgeCountValid {
		return d.edgeCount
	}
	total := 0
	for _, r := range d.rows {
		total += r.Size()
	}
	d.edgeCount = total
	d.edgeCountValid = true
	return total
}

// NumberOfEdgesSubset counts ordered pairs (i,j), both in subset, with
// an edge i->j.
func (d *Directed) NumberOfEdgesSubset(subset []int) int {
	in := make(map[int]bool, len(subset))
	for _, v := range subset {
		in[v] = true
	}
	count := 0
	for _, i := range subset {
		for _, j := range subset {
			if i != j && in[j] && d.rows[i].IsSet(j) {
				count++
			}
		}
	}
	return count
}

// Density returns E / (N*(N-1)) for the directed graph.
func (d *Directed) Density(lazy bool) float64 {
	if d.n <= 1 {
		return 0
	}
	e := d.NumberOfEdges(lazy)
	return float64(e) / float64(d.n*(d.n-1))
}

// SubgraphFirstK copies the principal K x K submatrix (vertices
// [0, K)) into out, which must already be allocated with capacity K.
func (d *Directed) SubgraphFirstK(k int, out *Directed) {
	for v := 0; v < k; v++ {
		for w := 0; w < k; w++ {
			if v != w && d.rows[v].IsSet(w) {
				out.AddEdge(v, w)
			}
		}
	}
}

// Complement returns a new directed graph over the same N in which
// (i,j), i!=j, is an edge iff it is not an edge in d.
func (d *Directed) Complement() *Directed {
	out := NewDirected(d.n, d.factory)
	for i := 0; i < d.n; i++ {
		for j := 0; j < d.n; j++ {
			if i != j && !d.rows[i].IsSet(j) {
				out.AddEdge(i, j)
			}
		}
	}
	return out
}

// IsSelfLoopPresent reports whether any row has its own index set,
// possible only via direct matrix injection since AddEdge rejects
// self-loops.
func (d *Directed) IsSelfLoopPresent() bool {
	for i, r := range d.rows {
		if r.IsSet(i) {
			return true
		}
	}
	return false
}

// RandomDirected builds a directed Erdos-Renyi graph of n vertices
// where each ordered pair (i,j), i != j, is an edge independently with
// probability p, using r for the Bernoulli draws.
func RandomDirected(n int, p float64, factory bitset.RowFactory, r rng.RNG) *Directed {
	g := NewDirected(n, factory)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && r.Bernoulli(p) {
				g.AddEdge(i, j)
			}
		}
	}
	return g
}

var _ GraphLike = (*Directed)(nil)
