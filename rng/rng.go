// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package rng provides the random-number collaborator consumed by the
// graph package's random-generation operations (SPEC_FULL.md §6.5).
// The core never reaches for the process-global math/rand source: an
// RNG is always injected, and its seed is caller-controlled so runs are
// reproducible.
package rng

import "math/rand"

// RNG is the randomness interface the graph package depends on:
// uniform floats in [0,1) and Bernoulli-p decisions.
type RNG interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
	// Bernoulli reports true with probability p (p in [0,1]).
	Bernoulli(p float64) bool
}

// mathRandRNG implements RNG on top of a privately-owned *rand.Rand.
type mathRandRNG struct {
	r *rand.Rand
}

// New returns an RNG seeded with seed. Two RNGs constructed with the
// same seed produce the same sequence of decisions.
func New(seed int64) RNG {
	return &mathRandRNG{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (m *mathRandRNG) Float64() float64 { return m.r.Float64() }

// Bernoulli reports true with probability p.
func (m *mathRandRNG) Bernoulli(p float64) bool { return m.r.Float64() < p }
