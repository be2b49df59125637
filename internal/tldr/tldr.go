// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package tldr looks up command pages with a local tldr client.
package tldr

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"go.astrophena.name/tldrr/internal/cache"
)

// DefaultTimeout bounds a single run of the tldr client.
const DefaultTimeout = 10 * time.Second

// ToolMissingMessage is shown in place of a page when the tldr client is not
// installed.
const ToolMissingMessage = "tldr not found. Please install tldr."

var (
	// ErrNotFound means the tldr client has no page for the command.
	ErrNotFound = errors.New("no tldr page")
	// ErrToolMissing means the tldr client itself can't be found.
	ErrToolMissing = errors.New("tldr client not found")
)

// Client runs a local tldr client and caches the pages it prints.
type Client struct {
	// Path is the tldr client executable. Defaults to "tldr", looked up in
	// PATH.
	Path string
	// Timeout bounds every run of the client. Defaults to DefaultTimeout.
	Timeout time.Duration
	// Cache stores successful lookups. It may be nil.
	Cache *cache.Cache

	run func(ctx context.Context, name string, args ...string) ([]byte, error) // for tests
}

// Lookup returns the tldr page for command.
//
// A cached page is returned without running the client. Only successful
// lookups are cached. If the client exits with an error, Lookup returns
// [ErrNotFound]; if it's not installed, an error wrapping [ErrToolMissing].
func (c *Client) Lookup(ctx context.Context, command string) (string, error) {
	key := cache.Key(command, cache.KindTLDR)
	if page, ok := c.Cache.Get(ctx, key); ok {
		return page, nil
	}

	path := c.Path
	if path == "" {
		path = "tldr"
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	run := c.run
	if run == nil {
		run = execOutput
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := run(runCtx, path, command)
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("%w: %v", ErrToolMissing, err)
		case runCtx.Err() != nil:
			return "", fmt.Errorf("running %s %s: %w", path, command, runCtx.Err())
		case errors.As(err, &exitErr):
			return "", ErrNotFound
		default:
			return "", fmt.Errorf("running %s %s: %w", path, command, err)
		}
	}

	page := string(out)
	if strings.TrimSpace(page) == "" {
		return "", ErrNotFound
	}
	c.Cache.Put(ctx, key, page)
	return page, nil
}

func execOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	// Don't wait forever for children that inherited stdout.
	cmd.WaitDelay = time.Second
	return cmd.Output()
}
