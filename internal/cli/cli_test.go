// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"testing"

	"go.astrophena.name/tldrr/internal/testutil"
)

type flagApp struct {
	name  string
	greet *string
}

func (a *flagApp) Flags(fs *flag.FlagSet, getenv func(string) string) {
	def := getenv("GREETING")
	if def == "" {
		def = "hello"
	}
	a.greet = fs.String("greet", def, "Greeting to use.")
}

func (a *flagApp) Run(ctx context.Context, env *Env) error {
	if len(env.Args) != 1 {
		return fmt.Errorf("%w: want one name", ErrInvalidArgs)
	}
	a.name = env.Args[0]
	fmt.Fprintf(env.Stdout, "%s, %s", *a.greet, a.name)
	return nil
}

func testEnv(args []string, vars map[string]string) (*Env, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Env{
		Args:   args,
		Getenv: func(k string) string { return vars[k] },
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func TestRunFlags(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv([]string{"-greet", "hi", "world"}, nil)
	if err := Run(context.Background(), &flagApp{}, env); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, stdout.String(), "hi, world")
}

func TestRunFlagsFromEnv(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv([]string{"world"}, map[string]string{"GREETING": "hey"})
	if err := Run(context.Background(), &flagApp{}, env); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, stdout.String(), "hey, world")
}

func TestRunInvalidArgs(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv(nil, nil)
	err := Run(context.Background(), &flagApp{}, env)
	if !errors.Is(err, ErrInvalidArgs) {
		t.Fatalf("want %v, got %v", ErrInvalidArgs, err)
	}
	if !isPrintableError(err) {
		t.Fatal("invalid arguments error must be printable")
	}
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv([]string{"-version"}, nil)
	err := Run(context.Background(), AppFunc(func(context.Context, *Env) error {
		t.Fatal("app must not run")
		return nil
	}), env)
	if !errors.Is(err, ErrExitVersion) {
		t.Fatalf("want %v, got %v", ErrExitVersion, err)
	}
	if stderr.Len() == 0 {
		t.Fatal("version must be printed to stderr")
	}
}

func TestRunUnknownFlag(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv([]string{"-nope"}, nil)
	err := Run(context.Background(), &flagApp{}, env)
	if err == nil {
		t.Fatal("must fail")
	}
	if isPrintableError(err) {
		t.Fatal("flag parsing error is already printed by the flag package")
	}
	if !strings.Contains(stderr.String(), "Available flags") {
		t.Fatalf("usage must be printed, got %q", stderr.String())
	}
}

func TestSilent(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	err := Silent(errBoom)
	if !errors.Is(err, errBoom) {
		t.Fatalf("Silent must wrap the original error")
	}
	if isPrintableError(err) {
		t.Fatal("Silent error must not be printable")
	}
	if Silent(nil) != nil {
		t.Fatal("Silent(nil) must be nil")
	}
}

func TestEnvLogf(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv(nil, nil)
	env.Logf("cache: %s", "miss")
	testutil.AssertEqual(t, stderr.String(), "cache: miss\n")
}

func TestParseDocComment(t *testing.T) {
	docSrc = []byte("// header\n\n/*\nTool does things.\n\n\t$ tool\n*/\npackage main\n")
	t.Cleanup(func() { docSrc = nil })
	testutil.AssertEqual(t, parseDocComment(), "Tool does things.\n\n\t$ tool\n")
}
