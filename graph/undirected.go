// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package graph

import (
	"github.com/psanse/bitgraph-go/bitset"
	"github.com/psanse/bitgraph-go/internal/must"
	"github.com/psanse/bitgraph-go/rng"
)

// Undirected is an undirected graph: row v holds v's neighbors. An
// edge (v,w) is represented by both row[v][w] and row[w][v] being set.
// Self-loops are rejected at insertion.
type Undirected struct {
	*graphCore
}

// NewUndirected allocates an empty undirected graph of n vertices, with
// adjacency rows built by factory.
func NewUndirected(n int, factory bitset.RowFactory) *Undirected {
	return &Undirected{graphCore: newGraphCore(n, factory)}
}

// AddEdge adds the undirected edge (v,w), setting both directions. A
// self-loop (v==w) is a no-op. The edge cache increments by one
// (not two), representing undirected edges rather than directed arcs.
func (u *Undirected) AddEdge(v, w int) {
	u.checkVertex(v)
	u.checkVertex(w)
	if v == w {
		return
	}
	if u.rows[v].IsSet(w) {
		return
	}
	u.rows[v].Set(w)
	u.rows[w].Set(v)
	if u.edgeCountValid {
		u.edgeCount++
	}
}

// RemoveEdge removes the undirected edge (v,w), if present.
func (u *Undirected) RemoveEdge(v, w int) {
	u.checkVertex(v)
	u.checkVertex(w)
	if !u.rows[v].IsSet(w) {
		return
	}
	u.rows[v].Clear(w)
	u.rows[w].Clear(v)
	if u.edgeCountValid {
		u.edgeCount--
	}
}

// RemoveEdges removes every edge incident to v.
func (u *Undirected) RemoveEdges(v int) {
	u.checkVertex(v)
	for _, w := range u.rows[v].ToSlice() {
		u.rows[w].Clear(v)
	}
	u.rows[v].ClearAll()
	u.invalidateEdgeCount()
}

// RemoveAllEdges removes every edge in the graph.
func (u *Undirected) RemoveAllEdges() {
	u.clearAllRows()
}

// IsEdge reports whether the undirected edge (v,w) exists.
func (u *Undirected) IsEdge(v, w int) bool {
	u.checkVertex(v)
	u.checkVertex(w)
	return u.rows[v].IsSet(w)
}

// Degree returns the number of neighbors of v.
func (u *Undirected) Degree(v int) int {
	u.checkVertex(v)
	return u.rows[v].Size()
}

// DegreeWithMask returns the popcount of row[v] AND mask.
func (u *Undirected) DegreeWithMask(v int, mask bitset.BitsetLike) int {
	u.checkVertex(v)
	count := 0
	for _, w := range u.rows[v].ToSlice() {
		if mask.IsSet(w) {
			count++
		}
	}
	return count
}

// DegreeWithUpperBound is DegreeWithMask(v, mask), short-circuiting and
// returning ub as soon as the running count reaches ub.
func (u *Undirected) DegreeWithUpperBound(v int, ub int, mask bitset.BitsetLike) int {
	u.checkVertex(v)
	count := 0
	for _, w := range u.rows[v].ToSlice() {
		if mask.IsSet(w) {
			count++
			if count >= ub {
				return ub
			}
		}
	}
	return count
}

// DegreeUp returns the count of neighbors of v with index strictly
// greater than v; used by elimination-order algorithms built on top of
// this container.
func (u *Undirected) DegreeUp(v int) int {
	u.checkVertex(v)
	if v+1 >= u.n {
		return 0
	}
	return u.rows[v].SizeRange(v+1, bitset.NoBit)
}

// NumberOfEdges returns the edge count: the sum of row sizes divided by
// two. If lazy is true and the cache is valid, it is returned directly.
// An odd row-size sum is an InvariantViolation and is fatal.
func (u *Undirected) NumberOfEdges(lazy bool) int {
	if lazy && u.edgeCountValid {
		return u.edgeCount
	}
	total := 0
	for _, r := range u.rows {
		total += r.Size()
	}
	must.True(total%2 == 0, "graph: undirected edge count sum is odd")
	e := total / 2
	u.edgeCount = e
	u.edgeCountValid = true
	return e
}

// NumberOfEdgesSubset counts upper-triangle pairs (i<j), both in
// subset, with an edge between them.
func (u *Undirected) NumberOfEdgesSubset(subset []int) int {
	in := make(map[int]bool, len(subset))
	for _, v := range subset {
		in[v] = true
	}
	count := 0
	for _, i := range subset {
		for _, j := range subset {
			if i < j && in[j] && u.rows[i].IsSet(j) {
				count++
			}
		}
	}
	return count
}

// Density returns E / (N*(N-1)/2).
func (u *Undirected) Density(lazy bool) float64 {
	if u.n <= 1 {
		return 0
	}
	e := u.NumberOfEdges(lazy)
	return float64(e) / (float64(u.n*(u.n-1)) / 2)
}

// Complement returns a new undirected graph over the same N in which
// (i,j), i<j, is an edge iff it is not an edge in u.
func (u *Undirected) Complement() *Undirected {
	out := NewUndirected(u.n, u.factory)
	for i := 0; i < u.n; i++ {
		for j := i + 1; j < u.n; j++ {
			if !u.rows[i].IsSet(j) {
				out.AddEdge(i, j)
			}
		}
	}
	return out
}

// InducedSubgraphBy returns the subgraph induced by vertices, whose
// vertex i in the result corresponds to vertices[i] in u.
func (u *Undirected) InducedSubgraphBy(vertices []int) *Undirected {
	out := NewUndirected(len(vertices), u.factory)
	for i := range vertices {
		for j := i + 1; j < len(vertices); j++ {
			if u.rows[vertices[i]].IsSet(vertices[j]) {
				out.AddEdge(i, j)
			}
		}
	}
	return out
}

// SubgraphFirstK copies the principal K x K submatrix (vertices
// [0, K)) into out, which must already be allocated with capacity K.
func (u *Undirected) SubgraphFirstK(k int, out *Undirected) {
	for v := 0; v < k; v++ {
		for w := v + 1; w < k; w++ {
			if u.rows[v].IsSet(w) {
				out.AddEdge(v, w)
			}
		}
	}
}

// RandomUndirected builds an undirected Erdos-Renyi graph of n vertices
// where each unordered pair (i,j), i<j, is an edge independently with
// probability p, using r for the Bernoulli draws.
func RandomUndirected(n int, p float64, factory bitset.RowFactory, r rng.RNG) *Undirected {
	g := NewUndirected(n, factory)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Bernoulli(p) {
				g.AddEdge(i, j)
			}
		}
	}
	return g
}

var _ GraphLike = (*Undirected)(nil)
