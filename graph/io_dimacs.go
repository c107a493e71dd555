// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/psanse/bitgraph-go/bitset"
	"github.com/psanse/bitgraph-go/internal/xerrors"
	"github.com/psanse/bitgraph-go/internal/xlog"
	"github.com/psanse/bitgraph-go/internal/xtimer"
)

// DimacsEdge is one parsed "e" line: 0-based endpoints, with an
// optional weight for the 4-token dialect.
type DimacsEdge struct {
	U, W      int
	Weight    float64
	HasWeight bool
}

// DimacsGraph is the intermediate representation produced by ParseDimacs:
// enough to build a plain Directed/Undirected graph, or, in the
// weighted package, a vertex- or edge-weighted overlay.
type DimacsGraph struct {
	N             int
	Name          string
	Edges         []DimacsEdge
	VertexWeights map[int]float64 // 0-based vertex -> weight
}

// ParseDimacs reads a DIMACS-format graph from r. It tolerates comment
// ("c") and blank lines anywhere before the edge block, an optional
// vertex-weight block using "n" or "v" lines (the "v" spelling is the
// Zavalnij dialect), and either the 3-token or 4-token (weighted) form
// of edge lines — the form is decided from the first edge line
// encountered and enforced for the rest of the file.
func ParseDimacs(r io.Reader) (*DimacsGraph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	g := &DimacsGraph{VertexWeights: map[int]float64{}}
	haveHeader := false
	m := 0
	weighted := false
	edgeFormDecided := false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line[0] {
		case 'c':
			if g.Name == "" {
				g.Name = strings.TrimSpace(strings.TrimPrefix(line, "c"))
			}
			continue
		case 'p':
			if haveHeader {
				return nil, xerrors.E(xerrors.FormatError, fmt.Sprintf("dimacs: duplicate header at line %d", lineNo))
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "edge" {
				return nil, xerrors.E(xerrors.FormatError, fmt.Sprintf("dimacs: malformed header at line %d", lineNo))
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, xerrors.E(xerrors.FormatError, "dimacs: non-numeric vertex count", err)
			}
			mDecl, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, xerrors.E(xerrors.FormatError, "dimacs: non-numeric edge count", err)
			}
			g.N = n
			m = mDecl
			haveHeader = true
		case 'n', 'v':
			if !haveHeader {
				return nil, xerrors.E(xerrors.FormatError, fmt.Sprintf("dimacs: vertex-weight line before header at line %d", lineNo))
			}
			fields := strings.Fields(line)
			if len(fields) != 3 {
				return nil, xerrors.E(xerrors.FormatError, fmt.Sprintf("dimacs: malformed vertex-weight line at line %d", lineNo))
			}
			v, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, xerrors.E(xerrors.FormatError, "dimacs: non-numeric vertex id", err)
			}
			w, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, xerrors.E(xerrors.FormatError, "dimacs: non-numeric vertex weight", err)
			}
			if v < 1 || v > g.N {
				return nil, xerrors.E(xerrors.FormatError, fmt.Sprintf("dimacs: vertex id %d out of range at line %d", v, lineNo))
			}
			g.VertexWeights[v-1] = w
		case 'e':
			if !haveHeader {
				return nil, xerrors.E(xerrors.FormatError, fmt.Sprintf("dimacs: edge line before header at line %d", lineNo))
			}
			fields := strings.Fields(line)
			if !edgeFormDecided {
				weighted = len(fields) == 4
				edgeFormDecided = true
			}
			wantLen := 3
			if weighted {
				wantLen = 4
			}
			if len(fields) != wantLen {
				return nil, xerrors.E(xerrors.FormatError, fmt.Sprintf("dimacs: inconsistent edge line token count at line %d", lineNo))
			}
			v, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, xerrors.E(xerrors.FormatError, "dimacs: non-numeric edge endpoint", err)
			}
			w, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, xerrors.E(xerrors.FormatError, "dimacs: non-numeric edge endpoint", err)
			}
			if v < 1 || v > g.N || w < 1 || w > g.N {
				return nil, xerrors.E(xerrors.FormatError, fmt.Sprintf("dimacs: edge endpoint out of range at line %d", lineNo))
			}
			e := DimacsEdge{U: v - 1, W: w - 1}
			if weighted {
				wt, err := strconv.ParseFloat(fields[3], 64)
				if err != nil {
					return nil, xerrors.E(xerrors.FormatError, "dimacs: non-numeric edge weight", err)
				}
				e.Weight, e.HasWeight = wt, true
			}
			if e.U == e.W {
				xlog.Warning.Printf("dimacs: ignoring self-loop at vertex %d (line %d)", v, lineNo)
				continue
			}
			g.Edges = append(g.Edges, e)
		default:
			return nil, xerrors.E(xerrors.FormatError, fmt.Sprintf("dimacs: unrecognized line at line %d: %q", lineNo, line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.E(xerrors.IoError, "dimacs: read failed", err)
	}
	if !haveHeader {
		return nil, xerrors.E(xerrors.FormatError, "dimacs: missing header")
	}
	_ = m // M is advisory; the edge block length is authoritative.
	return g, nil
}

// ReadDimacsDirected reads path as DIMACS and builds a Directed graph,
// discarding any weight information. On failure the returned graph is
// nil, never partially populated.
func ReadDimacsDirected(path string, factory bitset.RowFactory) (*Directed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.E(xerrors.IoError, "dimacs: open failed", err)
	}
	defer f.Close()
	dg, err := ParseDimacs(f)
	if err != nil {
		return nil, err
	}
	g := NewDirected(dg.N, factory)
	g.SetName(dg.Name)
	g.SetPath(path)
	for _, e := range dg.Edges {
		g.AddEdge(e.U, e.W)
	}
	return g, nil
}

// ReadDimacsUndirected reads path as DIMACS and builds an Undirected
// graph, discarding any weight information.
func ReadDimacsUndirected(path string, factory bitset.RowFactory) (*Undirected, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.E(xerrors.IoError, "dimacs: open failed", err)
	}
	defer f.Close()
	dg, err := ParseDimacs(f)
	if err != nil {
		return nil, err
	}
	g := NewUndirected(dg.N, factory)
	g.SetName(dg.Name)
	g.SetPath(path)
	for _, e := range dg.Edges {
		g.AddEdge(e.U, e.W)
	}
	return g, nil
}

// WriteDimacsDirected writes g to w in DIMACS form, emitting every
// directed edge.
func WriteDimacsDirected(w io.Writer, g *Directed) error {
	return writeDimacs(w, g.graphCore, true)
}

// WriteDimacsUndirected writes g to w in DIMACS form, emitting only the
// upper triangle (one line per unordered edge).
func WriteDimacsUndirected(w io.Writer, g *Undirected) error {
	return writeDimacs(w, g.graphCore, false)
}

func writeDimacs(w io.Writer, g *graphCore, directed bool) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "c produced by bitgraph-go at %s\n", xtimer.NowString())
	if g.name != "" {
		fmt.Fprintf(bw, "c %s\n", g.name)
	}
	edges := collectEdges(g, directed)
	fmt.Fprintf(bw, "p edge %d %d\n", g.n, len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "e %d %d\n", e.U+1, e.W+1)
	}
	if err := bw.Flush(); err != nil {
		return xerrors.E(xerrors.IoError, "dimacs: write failed", err)
	}
	return nil
}

func collectEdges(g *graphCore, directed bool) []DimacsEdge {
	var edges []DimacsEdge
	for v := 0; v < g.n; v++ {
		for _, w := range g.rows[v].ToSlice() {
			if directed || v < w {
				edges = append(edges, DimacsEdge{U: v, W: w})
			}
		}
	}
	return edges
}
