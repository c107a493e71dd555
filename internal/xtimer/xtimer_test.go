// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package xtimer_test

import (
	"testing"
	"time"

	"github.com/psanse/bitgraph-go/internal/xtimer"
	"github.com/stretchr/testify/require"
)

type fixedTimer struct{ at time.Time }

func (f fixedTimer) Now() string { return f.at.Format(xtimer.Layout) }

func TestNowStringUsesDefaultByDefault(t *testing.T) {
	s := xtimer.NowString()
	require.NotEmpty(t, s)
	_, err := time.Parse(xtimer.Layout, s)
	require.NoError(t, err)
}

func TestInjectedTimerOverridesDefault(t *testing.T) {
	prev := xtimer.Default
	defer func() { xtimer.Default = prev }()

	fixed := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	xtimer.Default = fixedTimer{at: fixed}

	require.Equal(t, fixed.Format(xtimer.Layout), xtimer.NowString())
}
