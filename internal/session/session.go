// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package session runs an interactive help session for a single command: the
// local tldr page first, then generated examples, then more generated examples
// for as long as the user asks for them.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.astrophena.name/tldrr/internal/logger"
	"go.astrophena.name/tldrr/internal/tldr"
)

// Looker finds the local help page for a command. It returns an error
// wrapping [tldr.ErrNotFound] or [tldr.ErrToolMissing] when there is none.
type Looker interface {
	Lookup(ctx context.Context, command string) (string, error)
}

// Generator produces examples for a prompt. It never fails; errors come back
// as text.
type Generator interface {
	Generate(ctx context.Context, prompt string) string
}

// Session is an interactive help session.
type Session struct {
	Looker    Looker
	Generator Generator
	Stdin     io.Reader
	Stdout    io.Writer
	// Logf logs lookup failures other than a missing page or tool.
	Logf logger.Logf
	// MaxHistory caps how many responses are sent back in follow-up prompts.
	// Defaults to DefaultMaxHistory.
	MaxHistory int
}

// Run runs the session for command. It returns when the user answers "n",
// stdin is exhausted or ctx is done.
func (s *Session) Run(ctx context.Context, command string) error {
	page := s.lookup(ctx, command)

	hist := NewHistory(s.MaxHistory)
	fmt.Fprint(s.Stdout, "\n--- Enhanced Examples ---\n\n")
	resp := s.Generator.Generate(ctx, InitialPrompt(command, page))
	fmt.Fprintln(s.Stdout, resp)
	hist.Add(resp)

	done := make(chan struct{})
	defer close(done)
	lines := readLines(s.Stdin, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.Stdout, "\nWould you like more examples? (y/n): ")

		var l line
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l = <-lines:
		}
		if l.err != nil {
			if !errors.Is(l.err, io.EOF) {
				logger.Or(s.Logf)("reading answer: %v", l.err)
			}
			// Closed stdin means no.
			fmt.Fprintln(s.Stdout, "\nExiting.")
			return nil
		}

		switch strings.ToLower(strings.TrimSpace(l.text)) {
		case "y":
			fmt.Fprint(s.Stdout, "\n--- Additional Examples ---\n\n")
			resp := s.Generator.Generate(ctx, MorePrompt(command, hist.Entries()))
			fmt.Fprintln(s.Stdout, resp)
			hist.Add(resp)
		case "n":
			fmt.Fprintln(s.Stdout, "Exiting.")
			return nil
		default:
			fmt.Fprintln(s.Stdout, "Invalid input. Please enter 'y' or 'n'.")
		}
	}
}

type line struct {
	text string
	err  error
}

// readLines sends lines read from r until r fails or done is closed. The
// final value carries the read error, io.EOF included. A pending read can't be
// interrupted, so the goroutine outlives a cancelled session until r returns.
func readLines(r io.Reader, done <-chan struct{}) <-chan line {
	ch := make(chan line)
	go func() {
		br := bufio.NewReader(r)
		for {
			text, err := br.ReadString('\n')
			if text != "" {
				select {
				case ch <- line{text: text}:
				case <-done:
					return
				}
			}
			if err != nil {
				select {
				case ch <- line{err: err}:
				case <-done:
				}
				return
			}
		}
	}()
	return ch
}

// lookup prints the local page for command and returns it, or "" if there is
// none.
func (s *Session) lookup(ctx context.Context, command string) string {
	page, err := s.Looker.Lookup(ctx, command)

	fmt.Fprint(s.Stdout, "\n--- TLDR Output ---\n\n")
	switch {
	case err == nil:
		fmt.Fprintln(s.Stdout, page)
		return page
	case errors.Is(err, tldr.ErrToolMissing):
		fmt.Fprintln(s.Stdout, tldr.ToolMissingMessage)
	default:
		if !errors.Is(err, tldr.ErrNotFound) {
			logger.Or(s.Logf)("tldr lookup for %q failed: %v", command, err)
		}
		fmt.Fprintf(s.Stdout, "No TLDR entry found for '%s'. Fetching generated examples instead...\n", command)
	}
	return ""
}
