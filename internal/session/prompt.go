// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package session

import (
	"fmt"
	"strings"
)

// DefaultMaxHistory is how many responses are kept for follow-up prompts.
const DefaultMaxHistory = 10

// noPage replaces the tldr page in the first prompt when there is none.
const noPage = "No TLDR entry available."

// InitialPrompt asks for examples of command, building on its tldr page.
// An empty page is replaced by a placeholder.
func InitialPrompt(command, page string) string {
	if strings.TrimSpace(page) == "" {
		page = noPage
	}
	return fmt.Sprintf(`The following is the TLDR result for the command '%s':
%s

Provide more helpful and detailed examples of how to use this command with different options and scenarios.
Format the output concisely in the tldr style, avoiding long explanations.
`, command, strings.TrimSpace(page))
}

// MorePrompt asks for examples of command that aren't in shown.
func MorePrompt(command string, shown []string) string {
	return fmt.Sprintf(`Here are the examples for the command '%s' provided so far:
%s

Provide new and unique examples not already listed above. Keep the response in the tldr style.
`, command, strings.Join(shown, "\n"))
}

// History holds the most recent responses, oldest first.
type History struct {
	max     int
	entries []string
}

// NewHistory returns a History that keeps at most max entries. A max below one
// means DefaultMaxHistory.
func NewHistory(max int) *History {
	if max < 1 {
		max = DefaultMaxHistory
	}
	return &History{max: max}
}

// Add appends s, dropping the oldest entry when the history is full.
func (h *History) Add(s string) {
	h.entries = append(h.entries, s)
	if over := len(h.entries) - h.max; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
}

// Entries returns the kept entries, oldest first.
func (h *History) Entries() []string {
	return h.entries
}
