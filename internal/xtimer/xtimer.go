// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package xtimer provides the "local timestamp as string" collaborator
// consumed by the graph package's file writers (SPEC_FULL.md §6.5): the
// core only ever needs a timestamp to stamp into a comment line, never
// a scheduling or cancellation capability.
package xtimer

import "time"

// Timer is the timestamp capability the core depends on. The default
// implementation (the package-level functions below) wraps the
// standard library's time package; tests inject a fixed Timer to keep
// golden-file comparisons stable.
type Timer interface {
	// Now returns the current local time formatted as a string suitable
	// for a file-format comment line.
	Now() string
}

// Layout is the format used to render timestamps in file headers.
const Layout = "2006-01-02 15:04:05 MST"

// systemTimer is the default Timer, backed by time.Now.
type systemTimer struct{}

// Now returns time.Now(), formatted with Layout.
func (systemTimer) Now() string {
	return time.Now().Format(Layout)
}

// Default is the Timer used when no Timer is injected.
var Default Timer = systemTimer{}

// NowString returns Default.Now(). It is the convenience entry point
// used by file writers that have no reason to take a Timer parameter
// of their own.
func NowString() string {
	return Default.Now()
}
