// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package xerrors_test

import (
	"bytes"
	"encoding/gob"
	goerrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psanse/bitgraph-go/internal/xerrors"
)

func TestError(t *testing.T) {
	_, err := os.Open("/dev/notexist")
	e1 := xerrors.E(xerrors.IoError, "opening file", err)
	require.Equal(t, "opening file: I/O error: open /dev/notexist: no such file or directory", e1.Error())

	e2 := xerrors.E(err)
	require.Equal(t, "I/O error: open /dev/notexist: no such file or directory", e2.Error())

	for _, e := range []error{e1, e2} {
		require.True(t, xerrors.Is(xerrors.IoError, e))
	}
}

func TestErrorChaining(t *testing.T) {
	_, err := os.Open("/dev/notexist")
	err = xerrors.E("failed to open file", err)
	err = xerrors.E(xerrors.Retriable, "cannot proceed", err)
	require.Equal(t,
		"cannot proceed: I/O error (retriable):\n\tfailed to open file: open /dev/notexist: no such file or directory",
		err.Error())
}

type temporaryError string

func (t temporaryError) Error() string   { return string(t) }
func (t temporaryError) Temporary() bool { return true }

func TestIsTemporary(t *testing.T) {
	for _, c := range []struct {
		err       error
		temporary bool
	}{
		{goerrors.New("no idea"), false},
		{temporaryError(""), true},
		{xerrors.E(temporaryError(""), xerrors.FormatError), true},
		{xerrors.E(xerrors.Temporary, "failed to open socket"), true},
		{xerrors.E("no idea"), false},
		{xerrors.E(xerrors.Fatal, "fatal error"), false},
		{xerrors.E(xerrors.Retriable, "this one you can retry"), true},
		{xerrors.E(fmt.Errorf("test")), false},
	} {
		require.Equal(t, c.temporary, xerrors.IsTemporary(c.err), "error %v", c.err)
		if c.temporary {
			continue
		}
		require.True(t, xerrors.IsTemporary(xerrors.E(c.err, xerrors.Temporary)), "error %v", c.err)
	}
}

func TestGobEncoding(t *testing.T) {
	_, err := os.Open("/dev/notexist")
	err = xerrors.E("failed to open file", err)
	err = xerrors.E(xerrors.Fatal, "cannot proceed", err)

	var b bytes.Buffer
	require.NoError(t, gob.NewEncoder(&b).Encode(xerrors.Recover(err)))
	e2 := new(xerrors.Error)
	require.NoError(t, gob.NewDecoder(&b).Decode(e2))
	require.True(t, xerrors.Match(err, e2))
}

func TestGobEncodingTable(t *testing.T) {
	for _, e := range []*xerrors.Error{
		{Kind: xerrors.Other},
		{Kind: xerrors.InvalidArgument, Message: "bad capacity"},
		{Kind: xerrors.OutOfRange, Severity: xerrors.Fatal},
		{Kind: xerrors.FormatError, Message: "bad header", Err: goerrors.New("want 'edge'")},
		{Kind: xerrors.InvariantViolation, Severity: xerrors.Fatal, Message: "odd edge count"},
	} {
		var b bytes.Buffer
		require.NoError(t, gob.NewEncoder(&b).Encode(e))
		e2 := new(xerrors.Error)
		require.NoError(t, gob.NewDecoder(&b).Decode(e2))
		require.True(t, xerrors.Match(e, e2), "%v vs %v", e, e2)
	}
}

func TestMessage(t *testing.T) {
	for _, c := range []struct {
		err     error
		message string
	}{
		{xerrors.E("hello"), "hello"},
		{xerrors.E("hello", "world"), "hello world"},
	} {
		require.Equal(t, c.message, c.err.Error())
	}
}

func TestStdInterop(t *testing.T) {
	_, err := os.Open("/dev/notexist")
	require.True(t, xerrors.Is(xerrors.IoError, err))
	require.True(t, xerrors.Is(xerrors.IoError, xerrors.E(err)))
	require.True(t, xerrors.Is(xerrors.IoError, xerrors.E(err, "wrapped", xerrors.Fatal)))
	require.True(t, goerrors.Is(xerrors.E(err), os.ErrNotExist))
}

// TestEKindDeterminism ensures that xerrors.E's Kind detection is
// deterministic when more than one std-error mapping could apply.
func TestEKindDeterminism(t *testing.T) {
	const n = 100
	numKind := make(map[xerrors.Kind]int)
	for i := 0; i < n; i++ {
		_, ioErr := os.Open("/dev/notexist")
		err := xerrors.E(ioErr)
		numKind[err.(*xerrors.Error).Kind]++
	}
	require.Len(t, numKind, 1)
	require.Equal(t, n, numKind[xerrors.IoError])
}
