// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package syncx

import (
	"errors"
	"testing"

	"go.astrophena.name/tldrr/internal/testutil"
)

func TestLazy(t *testing.T) {
	t.Parallel()

	var (
		l     Lazy[string]
		calls int
	)
	f := func() string {
		calls++
		return "value"
	}
	testutil.AssertEqual(t, l.Get(f), "value")
	testutil.AssertEqual(t, l.Get(f), "value")
	testutil.AssertEqual(t, calls, 1)
}

func TestLazyErr(t *testing.T) {
	t.Parallel()

	var (
		l     Lazy[int]
		calls int
	)
	errBoom := errors.New("boom")
	f := func() (int, error) {
		calls++
		return 0, errBoom
	}
	if _, err := l.GetErr(f); !errors.Is(err, errBoom) {
		t.Fatalf("want %v, got %v", errBoom, err)
	}
	if _, err := l.GetErr(f); !errors.Is(err, errBoom) {
		t.Fatalf("want %v, got %v", errBoom, err)
	}
	testutil.AssertEqual(t, calls, 1)
}
