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

// Read01MatrixUndirected reads path as an N x N 0/1 adjacency matrix
// (a first line holding N, followed by N lines of N characters, each
// '0' or '1') and builds an Undirected graph, reading only the upper
// triangle.
func Read01MatrixUndirected(path string, factory bitset.RowFactory) (*Undirected, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.E(xerrors.IoError, "01matrix: open failed", err)
	}
	defer f.Close()
	return parse01MatrixUndirected(f, factory)
}

func parse01MatrixUndirected(r io.Reader, factory bitset.RowFactory) (*Undirected, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	if !scanner.Scan() {
		return nil, xerrors.E(xerrors.FormatError, "01matrix: empty file")
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, xerrors.E(xerrors.FormatError, "01matrix: non-numeric size", err)
	}
	g := NewUndirected(n, factory)
	for r := 0; r < n; r++ {
		if !scanner.Scan() {
			return nil, xerrors.E(xerrors.FormatError, "01matrix: short matrix")
		}
		row := strings.TrimSpace(scanner.Text())
		if len(row) != n {
			return nil, xerrors.E(xerrors.FormatError, fmt.Sprintf("01matrix: row %d has wrong width", r))
		}
		for c := r + 1; c < n; c++ {
			switch row[c] {
			case '1':
				g.AddEdge(r, c)
			case '0':
			default:
				return nil, xerrors.E(xerrors.FormatError, fmt.Sprintf("01matrix: bad character at row %d col %d", r, c))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.E(xerrors.IoError, "01matrix: read failed", err)
	}
	return g, nil
}

// Write01MatrixUndirected writes g to w as an N x N 0/1 adjacency
// matrix.
func Write01MatrixUndirected(w io.Writer, g *Undirected) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, g.N())
	for r := 0; r < g.N(); r++ {
		row := make([]byte, g.N())
		for c := 0; c < g.N(); c++ {
			if g.IsEdge(r, c) {
				row[c] = '1'
			} else {
				row[c] = '0'
			}
		}
		bw.Write(row)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return xerrors.E(xerrors.IoError, "01matrix: write failed", err)
	}
	return nil
}
