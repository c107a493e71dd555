// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset_test

import (
	"math/rand"
	"testing"

	gbitset "github.com/psanse/bitgraph-go/bitset"
	"github.com/willf/bitset"
)

// Benchmark_ForwardScanLowDensity and Benchmark_ForwardScanHighDensity
// compare Dense's cached-cursor forward scan
// against github.com/willf/bitset.NextSet() over the same bit pattern,
// mirroring the teacher's own Dense-vs-willf scan comparison in
// grailbio-base/bitset/bitset_test.go.

func denseForwardScanSubtask(d *gbitset.Dense, nIter int) int {
	tot := 0
	for iter := 0; iter < nIter; iter++ {
		d.ScanInit(gbitset.ScanForward)
		for i := d.NextBit(); i != gbitset.NoBit; i = d.NextBit() {
			tot += i
		}
	}
	return tot
}

func willfForwardScanSubtask(bs *bitset.BitSet, nIter int) int {
	tot := uint(0)
	for iter := 0; iter < nIter; iter++ {
		for i, e := bs.NextSet(0); e; i, e = bs.NextSet(i + 1) {
			tot += i
		}
	}
	return int(tot)
}

func benchmarkForwardScan(nBit, spacing int, b *testing.B) {
	d := gbitset.NewDense(nBit)
	bs := bitset.New(uint(nBit))
	for i := spacing - 1; i < nBit; i += spacing {
		d.Set(i)
		bs.Set(uint(i))
	}
	b.Run("Dense", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			denseForwardScanSubtask(d, 1)
		}
	})
	b.Run("willf", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			willfForwardScanSubtask(bs, 1)
		}
	})
}

func Benchmark_ForwardScanLowDensity(b *testing.B) {
	benchmarkForwardScan(16*gbitset.WordBits, 369, b)
}

func Benchmark_ForwardScanHighDensity(b *testing.B) {
	benchmarkForwardScan(16*gbitset.WordBits, 1, b)
}

// TestDenseMatchesWillfScanOrder cross-checks Dense's forward scan
// against willf/bitset.NextSet() over random bit patterns, the same
// differential check the teacher runs for its own scanner in
// TestNonzeroWord.
func TestDenseMatchesWillfScanOrder(t *testing.T) {
	nIter := 200
	maxSize := 500
	for iter := 0; iter < nIter; iter++ {
		n := rand.Intn(maxSize) + 1
		d := gbitset.NewDense(n)
		bs := bitset.New(uint(n))
		for i := 0; i < n; i++ {
			if rand.Intn(4) == 0 {
				d.Set(i)
				bs.Set(uint(i))
			}
		}

		var gotDense []int
		d.ScanInit(gbitset.ScanForward)
		for i := d.NextBit(); i != gbitset.NoBit; i = d.NextBit() {
			gotDense = append(gotDense, i)
		}

		var gotWillf []int
		for i, e := bs.NextSet(0); e; i, e = bs.NextSet(i + 1) {
			gotWillf = append(gotWillf, int(i))
		}

		if len(gotDense) != len(gotWillf) {
			t.Fatalf("length mismatch: dense=%v willf=%v", gotDense, gotWillf)
		}
		for i := range gotDense {
			if gotDense[i] != gotWillf[i] {
				t.Fatalf("scan order mismatch at %d: dense=%d willf=%d", i, gotDense[i], gotWillf[i])
			}
		}
	}
}
