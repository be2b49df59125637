// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package assist asks a generative text service for command usage examples
// and lays them out like a tldr page.
//
// Generated examples are never cached: every call reaches the service.
package assist

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// SystemInstruction is sent with every request.
const SystemInstruction = "You are a helpful Linux terminal assistant. Format your responses like tldr pages."

// MaxTokens caps the length of every response.
const MaxTokens = 500

// DefaultTimeout bounds a single request when Generator.Timeout is zero.
const DefaultTimeout = 60 * time.Second

// Request is a single completion request.
type Request struct {
	System    string
	Prompt    string
	MaxTokens int
}

// Backend is a generative text service.
type Backend interface {
	// Name is the human-readable name of the service, used in error messages.
	Name() string
	// Complete returns the raw text generated for r.
	Complete(ctx context.Context, r Request) (string, error)
}

// Generator turns prompts into tldr-style examples.
type Generator struct {
	Backend Backend
	// Timeout bounds every request. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// Generate sends prompt to the backend and returns the formatted response.
//
// Generate never fails: any error is returned as a message starting with
// "Error querying", so it can be shown in place of the examples.
func (g *Generator) Generate(ctx context.Context, prompt string) string {
	if g == nil || g.Backend == nil {
		return "Error querying generative API: no backend configured"
	}

	timeout := g.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := g.Backend.Complete(ctx, Request{
		System:    SystemInstruction,
		Prompt:    prompt,
		MaxTokens: MaxTokens,
	})
	if err != nil {
		return fmt.Sprintf("Error querying %s API: %v", g.Backend.Name(), err)
	}
	return Format(strings.TrimSpace(text))
}

// Format lays out free-form model output like a tldr page.
//
// Lines starting with "- " are descriptions and get a blank line before them.
// Other non-empty lines that don't start with "-" are commands and are
// indented by two spaces. Everything else is dropped.
func Format(response string) string {
	if response == "" {
		return "No response provided."
	}

	var lines []string
	for line := range strings.SplitSeq(response, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "- "):
			lines = append(lines, "\n"+line)
		case line != "" && !strings.HasPrefix(line, "-"):
			lines = append(lines, "  "+line)
		}
	}
	return strings.Join(lines, "\n")
}
