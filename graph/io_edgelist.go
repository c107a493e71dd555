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

// ReadEdgeListUndirected reads path as an edge-list file (one "u v"
// pair per line, 1-based, "%"-prefixed comments ignored) and builds an
// Undirected graph of n vertices.
func ReadEdgeListUndirected(path string, n int, factory bitset.RowFactory) (*Undirected, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.E(xerrors.IoError, "edgelist: open failed", err)
	}
	defer f.Close()
	return parseEdgeListUndirected(f, n, factory)
}

func parseEdgeListUndirected(r io.Reader, n int, factory bitset.RowFactory) (*Undirected, error) {
	g := NewUndirected(n, factory)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, xerrors.E(xerrors.FormatError, "edgelist: malformed line: "+line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, xerrors.E(xerrors.FormatError, "edgelist: non-numeric endpoint", err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, xerrors.E(xerrors.FormatError, "edgelist: non-numeric endpoint", err)
		}
		if u < 1 || u > n || v < 1 || v > n {
			return nil, xerrors.E(xerrors.FormatError, "edgelist: endpoint out of range")
		}
		if u == v {
			continue
		}
		g.AddEdge(u-1, v-1)
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.E(xerrors.IoError, "edgelist: read failed", err)
	}
	return g, nil
}

// WriteEdgeListUndirected writes g to w as an edge-list file, emitting
// a leading "N E" header line followed by one "u v" line per unordered
// edge.
func WriteEdgeListUndirected(w io.Writer, g *Undirected) error {
	bw := bufio.NewWriter(w)
	edges := collectEdges(g.graphCore, false)
	fmt.Fprintf(bw, "%d %d\n", g.N(), len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "%d %d\n", e.U+1, e.W+1)
	}
	if err := bw.Flush(); err != nil {
		return xerrors.E(xerrors.IoError, "edgelist: write failed", err)
	}
	return nil
}
