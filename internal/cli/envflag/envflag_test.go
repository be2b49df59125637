// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package envflag

import (
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	"go.astrophena.name/tldrr/internal/testutil"
)

func getenv(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	fs := newFlagSet()
	env := getenv(nil)
	s := Value(fs, env, "s", "S", "def", "String.")
	n := Value(fs, env, "n", "N", 3, "Int.")
	b := Value(fs, env, "b", "B", false, "Bool.")
	d := Value(fs, env, "d", "D", time.Minute, "Duration.")
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, *s, "def")
	testutil.AssertEqual(t, *n, 3)
	testutil.AssertEqual(t, *b, false)
	testutil.AssertEqual(t, *d, time.Minute)
}

func TestEnvOverrides(t *testing.T) {
	t.Parallel()

	fs := newFlagSet()
	env := getenv(map[string]string{
		"S": "env",
		"N": "7",
		"B": "true",
		"D": "90s",
	})
	s := Value(fs, env, "s", "S", "def", "String.")
	n := Value(fs, env, "n", "N", 3, "Int.")
	b := Value(fs, env, "b", "B", false, "Bool.")
	d := Value(fs, env, "d", "D", time.Minute, "Duration.")
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, *s, "env")
	testutil.AssertEqual(t, *n, 7)
	testutil.AssertEqual(t, *b, true)
	testutil.AssertEqual(t, *d, 90*time.Second)
}

func TestInvalidEnvKeepsDefault(t *testing.T) {
	t.Parallel()

	fs := newFlagSet()
	env := getenv(map[string]string{"N": "many", "D": "soon"})
	n := Value(fs, env, "n", "N", 3, "Int.")
	d := Value(fs, env, "d", "D", time.Minute, "Duration.")
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, *n, 3)
	testutil.AssertEqual(t, *d, time.Minute)
}

func TestFlagsWinOverEnv(t *testing.T) {
	t.Parallel()

	fs := newFlagSet()
	env := getenv(map[string]string{"S": "env", "B": "false"})
	s := Value(fs, env, "s", "S", "def", "String.")
	b := Value(fs, env, "b", "B", false, "Bool.")
	if err := fs.Parse([]string{"-s", "flag", "-b"}); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, *s, "flag")
	testutil.AssertEqual(t, *b, true)
}

func TestUsageMentionsEnv(t *testing.T) {
	t.Parallel()

	fs := newFlagSet()
	Value(fs, getenv(nil), "s", "TLDRR_S", "def", "String.")
	if u := fs.Lookup("s").Usage; !strings.Contains(u, "TLDRR_S") {
		t.Fatalf("usage %q must mention TLDRR_S", u)
	}
}
