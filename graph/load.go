// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package graph

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/psanse/bitgraph-go/bitset"
	"github.com/psanse/bitgraph-go/internal/xerrors"
)

// LoadUndirected builds an Undirected graph from path, trying DIMACS,
// then Matrix Market, then the 0/1 adjacency matrix format, then the
// edge-list format (sized from its largest endpoint); the first format
// that parses without error wins.
func LoadUndirected(path string, factory bitset.RowFactory) (*Undirected, error) {
	if g, err := ReadDimacsUndirected(path, factory); err == nil {
		return g, nil
	}
	if g, err := ReadMTXUndirected(path, factory); err == nil {
		return g, nil
	}
	if g, err := Read01MatrixUndirected(path, factory); err == nil {
		return g, nil
	}
	n, err := inferEdgeListSize(path)
	if err != nil {
		return nil, xerrors.E(xerrors.FormatError, "load: no supported format recognized for "+path, err)
	}
	return ReadEdgeListUndirected(path, n, factory)
}

// inferEdgeListSize scans an edge-list file for its largest 1-based
// endpoint, returning the minimal N that covers every edge.
func inferEdgeListSize(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	max := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		for _, tok := range strings.Fields(line) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return 0, err
			}
			if v > max {
				max = v
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return max, nil
}
