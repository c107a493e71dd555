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
)

// ReadMTXUndirected reads path as a Matrix Market
// "matrix coordinate pattern symmetric" (or "general") file and builds
// an Undirected graph. Floating-point matrices are rejected, as is any
// non-square size line.
func ReadMTXUndirected(path string, factory bitset.RowFactory) (*Undirected, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.E(xerrors.IoError, "mtx: open failed", err)
	}
	defer f.Close()
	return parseMTXUndirected(f, factory)
}

func parseMTXUndirected(r io.Reader, factory bitset.RowFactory) (*Undirected, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	if !scanner.Scan() {
		return nil, xerrors.E(xerrors.FormatError, "mtx: empty file")
	}
	banner := strings.Fields(strings.ToLower(scanner.Text()))
	if len(banner) < 5 || banner[0] != "%%matrixmarket" || banner[1] != "matrix" || banner[2] != "coordinate" {
		return nil, xerrors.E(xerrors.FormatError, "mtx: unrecognized banner")
	}
	if banner[3] != "pattern" {
		return nil, xerrors.E(xerrors.FormatError, "mtx: only pattern matrices are supported, got "+banner[3])
	}
	if banner[4] != "symmetric" && banner[4] != "general" {
		return nil, xerrors.E(xerrors.FormatError, "mtx: unsupported symmetry "+banner[4])
	}

	var g *Undirected
	sizeSeen := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if !sizeSeen {
			if len(fields) != 3 {
				return nil, xerrors.E(xerrors.FormatError, "mtx: malformed size line")
			}
			m, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, xerrors.E(xerrors.FormatError, "mtx: non-numeric row count", err)
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, xerrors.E(xerrors.FormatError, "mtx: non-numeric column count", err)
			}
			if m != n {
				return nil, xerrors.E(xerrors.FormatError, "mtx: non-square matrix")
			}
			g = NewUndirected(n, factory)
			sizeSeen = true
			continue
		}
		if len(fields) < 2 {
			return nil, xerrors.E(xerrors.FormatError, "mtx: malformed coordinate line")
		}
		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, xerrors.E(xerrors.FormatError, "mtx: non-numeric row index", err)
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, xerrors.E(xerrors.FormatError, "mtx: non-numeric column index", err)
		}
		if row < 1 || row > g.N() || col < 1 || col > g.N() {
			return nil, xerrors.E(xerrors.FormatError, "mtx: coordinate out of range")
		}
		if row == col {
			continue // self-loops ignored
		}
		g.AddEdge(row-1, col-1)
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.E(xerrors.IoError, "mtx: read failed", err)
	}
	if !sizeSeen {
		return nil, xerrors.E(xerrors.FormatError, "mtx: missing size line")
	}
	return g, nil
}

// WriteMTXUndirected writes g to w as a Matrix Market
// "matrix coordinate pattern symmetric" file, one line per unordered
// edge.
func WriteMTXUndirected(w io.Writer, g *Undirected) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "%%MatrixMarket matrix coordinate pattern symmetric")
	edges := collectEdges(g.graphCore, false)
	fmt.Fprintf(bw, "%d %d %d\n", g.N(), g.N(), len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "%d %d\n", e.U+1, e.W+1)
	}
	if err := bw.Flush(); err != nil {
		return xerrors.E(xerrors.IoError, "mtx: write failed", err)
	}
	return nil
}
