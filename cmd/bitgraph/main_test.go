// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatOfDetectsExtension(t *testing.T) {
	require.Equal(t, formatDimacs, formatOf("g.dimacs"))
	require.Equal(t, formatDimacs, formatOf("g.col"))
	require.Equal(t, formatMTX, formatOf("g.mtx"))
	require.Equal(t, formatEdgeList, formatOf("g.edges"))
	require.Equal(t, format01Matrix, formatOf("g.mat"))
}

func TestRunGenAndStats(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "g.dimacs")

	err := runGen([]string{"-n", "20", "-p", "0.3", "-seed", "5", "-out", out})
	require.NoError(t, err)

	_, err = os.Stat(out)
	require.NoError(t, err)

	err = runStats([]string{"-in", out})
	require.NoError(t, err)
}

func TestRunConvertDimacsToMTX(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "g.dimacs")
	out := filepath.Join(dir, "g.mtx")

	require.NoError(t, runGen([]string{"-n", "10", "-p", "0.5", "-seed", "3", "-out", in}))
	require.NoError(t, runConvert([]string{"-in", in, "-out", out}))

	_, err := os.Stat(out)
	require.NoError(t, err)
}

func TestRunConvertRequiresBothFlags(t *testing.T) {
	require.Error(t, runConvert([]string{"-in", "x.dimacs"}))
	require.Error(t, runConvert(nil))
}

func TestRunGenRequiresPositiveN(t *testing.T) {
	require.Error(t, runGen([]string{"-n", "0", "-out", "x.dimacs"}))
}
