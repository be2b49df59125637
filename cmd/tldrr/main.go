// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.astrophena.name/tldrr/internal/api/openai"
	"go.astrophena.name/tldrr/internal/assist"
	"go.astrophena.name/tldrr/internal/cache"
	"go.astrophena.name/tldrr/internal/cli"
	"go.astrophena.name/tldrr/internal/cli/envflag"
	"go.astrophena.name/tldrr/internal/config"
	"go.astrophena.name/tldrr/internal/session"
	"go.astrophena.name/tldrr/internal/store"
	"go.astrophena.name/tldrr/internal/tldr"
)

func main() { cli.Main(new(app)) }

const usage = `Usage: tldrr <command>
Example: tldrr ls`

type app struct {
	install      *bool
	cachePath    *string
	cacheBackend *string
	tldrPath     *string
	provider     *string
	model        *string
	timeout      *time.Duration
	verbose      *bool

	getenv    func(string) string
	configErr error

	// for tests
	linkPath   string
	executable func() (string, error)
	looker     session.Looker
	generator  session.Generator
}

func (a *app) Flags(fs *flag.FlagSet, getenv func(string) string) {
	a.getenv, a.configErr = config.Overlay(getenv)

	a.install = fs.Bool("install", false, "Symlink tldrr to "+defaultLinkPath+" and exit.")
	a.cachePath = envflag.Value(fs, a.getenv, "cache", "TLDRR_CACHE",
		filepath.Join(os.TempDir(), "tldrr_cache"), "Cache `file`.")
	a.cacheBackend = envflag.Value(fs, a.getenv, "cache-backend", "TLDRR_CACHE_BACKEND",
		store.BackendSQLite, "Cache file format: sqlite or json.")
	a.tldrPath = envflag.Value(fs, a.getenv, "tldr", "TLDRR_TLDR",
		"tldr", "tldr client `executable`.")
	a.provider = envflag.Value(fs, a.getenv, "provider", "TLDRR_PROVIDER",
		"openai", "Generative provider: openai or gemini.")
	a.model = envflag.Value(fs, a.getenv, "model", "TLDRR_MODEL",
		"", "Model `name`. Defaults to "+assist.DefaultOpenAIModel+" for openai and "+assist.DefaultGeminiModel+" for gemini.")
	a.timeout = envflag.Value(fs, a.getenv, "timeout", "TLDRR_TIMEOUT",
		assist.DefaultTimeout, "Timeout of a single request to the generative provider.")
	a.verbose = envflag.Value(fs, a.getenv, "v", "TLDRR_VERBOSE",
		false, "Log cache hits and misses.")
}

func (a *app) Run(ctx context.Context, env *cli.Env) error {
	if a.configErr != nil {
		env.Logf("config: ignoring %s: %v", config.EnvFile(a.getenv), a.configErr)
	}

	if *a.install {
		link := a.linkPath
		if link == "" {
			link = defaultLinkPath
		}
		executable := a.executable
		if executable == nil {
			executable = os.Executable
		}
		installLink(env.Stdout, link, executable)
		return nil
	}

	if len(env.Args) != 1 {
		fmt.Fprintln(env.Stderr, usage)
		return cli.Silent(fmt.Errorf("%w: expected exactly one command, got %d arguments", cli.ErrInvalidArgs, len(env.Args)))
	}

	gen := a.generator
	if gen == nil {
		b, err := a.backend()
		if err != nil {
			return err
		}
		gen = &assist.Generator{Backend: b, Timeout: *a.timeout}
	}

	looker := a.looker
	if looker == nil {
		c := cache.New(*a.cacheBackend, *a.cachePath, env.Logf)
		if *a.verbose {
			c.Debugf = env.Logf
		}
		looker = &tldr.Client{Path: *a.tldrPath, Cache: c}
	}

	s := &session.Session{
		Looker:    looker,
		Generator: gen,
		Stdin:     env.Stdin,
		Stdout:    env.Stdout,
		Logf:      env.Logf,
	}
	return s.Run(ctx, env.Args[0])
}

func (a *app) backend() (assist.Backend, error) {
	switch *a.provider {
	case "openai":
		return &assist.OpenAI{
			Client: &openai.Client{
				APIKey:  a.getenv("OPENAI_API_KEY"),
				BaseURL: a.getenv("OPENAI_BASE_URL"),
			},
			Model: *a.model,
		}, nil
	case "gemini":
		return &assist.Gemini{
			APIKey: a.getenv("GEMINI_API_KEY"),
			Model:  *a.model,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", cli.ErrInvalidArgs, *a.provider)
	}
}
