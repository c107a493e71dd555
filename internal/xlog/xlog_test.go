// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package xlog_test

import (
	"os"
	"testing"

	"github.com/psanse/bitgraph-go/internal/xlog"
)

type testOutputter struct {
	level    xlog.Level
	messages map[xlog.Level][]string
}

func newTestOutputter(level xlog.Level) *testOutputter {
	return &testOutputter{level, make(map[xlog.Level][]string)}
}

func (t *testOutputter) Empty() bool {
	for _, m := range t.messages {
		if len(m) != 0 {
			return false
		}
	}
	return true
}

func (t *testOutputter) Next(level xlog.Level) string {
	if len(t.messages[level]) == 0 {
		return ""
	}
	var m string
	m, t.messages[level] = t.messages[level][0], t.messages[level][1:]
	return m
}

func (t *testOutputter) Level() xlog.Level {
	return t.level
}

func (t *testOutputter) Output(calldepth int, level xlog.Level, s string) error {
	t.messages[level] = append(t.messages[level], s)
	return nil
}

func TestLog(t *testing.T) {
	out := newTestOutputter(xlog.Info)
	defer xlog.SetOutputter(xlog.SetOutputter(out))
	xlog.Printf("hello %q", "world")
	if got, want := out.Next(xlog.Info), `hello "world"`; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	xlog.Error.Print(1, 2, 3)
	if got, want := out.Next(xlog.Error), "1 2 3"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	xlog.Warning.Print("careful")
	if got, want := out.Next(xlog.Warning), "careful"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	xlog.Debug.Print("x")
	if got, want := out.Next(xlog.Debug), ""; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !out.Empty() {
		t.Error("extra messages")
	}
}

func Example_default() {
	xlog.SetOutput(os.Stdout)
	xlog.SetFlags(0)
	xlog.Print("hello, world!")
	xlog.Error.Print("hello from error")
	xlog.Debug.Print("invisible")

	// Output:
	// hello, world!
	// hello from error
}
