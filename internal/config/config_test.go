// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/tldrr/internal/testutil"
)

func getenv(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestEnvFile(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		vars map[string]string
		want string
	}{
		"explicit": {
			vars: map[string]string{"TLDRR_ENV_FILE": "/etc/tldrr.env", "HOME": "/home/u"},
			want: "/etc/tldrr.env",
		},
		"xdg": {
			vars: map[string]string{"XDG_CONFIG_HOME": "/xdg", "HOME": "/home/u"},
			want: filepath.Join("/xdg", "tldrr", "env"),
		},
		"home": {
			vars: map[string]string{"HOME": "/home/u"},
			want: filepath.Join("/home/u", ".config", "tldrr", "env"),
		},
		"nothing": {},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertEqual(t, EnvFile(getenv(tc.vars)), tc.want)
		})
	}
}

func TestOverlay(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "env")
	if err := os.WriteFile(path, []byte("# keys\nOPENAI_API_KEY=from-file\nTLDRR_PROVIDER=gemini\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	get, err := Overlay(getenv(map[string]string{
		"TLDRR_ENV_FILE": path,
		"TLDRR_PROVIDER": "openai",
	}))
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, get("OPENAI_API_KEY"), "from-file")
	// Real environment wins.
	testutil.AssertEqual(t, get("TLDRR_PROVIDER"), "openai")
	testutil.AssertEqual(t, get("UNSET"), "")
}

func TestOverlayMissingFile(t *testing.T) {
	t.Parallel()

	get, err := Overlay(getenv(map[string]string{
		"TLDRR_ENV_FILE": filepath.Join(t.TempDir(), "nope"),
		"A":              "a",
	}))
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, get("A"), "a")
}

func TestOverlayUnreadable(t *testing.T) {
	t.Parallel()

	// A directory can be opened but not read.
	get, err := Overlay(getenv(map[string]string{
		"TLDRR_ENV_FILE": t.TempDir(),
		"A":              "a",
	}))
	if err == nil {
		t.Fatal("unreadable file must be reported")
	}
	testutil.AssertEqual(t, get("A"), "a")
}
