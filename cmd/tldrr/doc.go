// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Tldrr shows the tldr page for a command, then asks a language model for more
examples in the same style.

# Usage

	$ tldrr <command>

For example:

	$ tldrr ls

After the first batch of generated examples tldrr asks whether you want more.
Answer y to get new examples that don't repeat the ones already shown, or n
(or press Ctrl-D) to quit.

To make tldrr available as /usr/local/bin/tldrr:

	$ sudo tldrr -install

# Lookups

Pages come from the local tldr client (set -tldr to use a different one). Found
pages are cached for 30 days in a single file, /tmp/tldrr_cache by default.
Generated examples are never cached.

# Providers

By default examples come from OpenAI (gpt-4) and need OPENAI_API_KEY. Use
-provider gemini and GEMINI_API_KEY for Gemini. Every flag can also be set
through the environment variable named in its description, and variables can be
kept in $XDG_CONFIG_HOME/tldrr/env (or $TLDRR_ENV_FILE):

	OPENAI_API_KEY=sk-...
	TLDRR_PROVIDER=openai
*/
package main

import (
	_ "embed"

	"go.astrophena.name/tldrr/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
