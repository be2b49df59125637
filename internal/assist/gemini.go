// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package assist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when Gemini.Model is empty.
const DefaultGeminiModel = "gemini-1.5-flash"

// Gemini is a [Backend] backed by the Gemini API.
//
// A client is created for every request and closed when it completes.
type Gemini struct {
	APIKey string
	Model  string

	opts []option.ClientOption // for tests
}

// Name implements [Backend].
func (g *Gemini) Name() string { return "Gemini" }

// Complete implements [Backend].
func (g *Gemini) Complete(ctx context.Context, r Request) (string, error) {
	if g.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is not set")
	}
	model := g.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	opts := append([]option.ClientOption{option.WithAPIKey(g.APIKey)}, g.opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return "", err
	}
	defer client.Close()

	m := client.GenerativeModel(model)
	if r.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(r.MaxTokens))
	}
	if r.System != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(r.System)}}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(r.Prompt))
	if err != nil {
		return "", err
	}
	return responseText(resp)
}

var errNoCandidates = errors.New("no candidates in response")

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", errNoCandidates
	}
	c := resp.Candidates[0]
	if c.Content == nil {
		return "", fmt.Errorf("empty candidate (finish reason: %v)", c.FinishReason)
	}

	var sb strings.Builder
	for _, p := range c.Content.Parts {
		if t, ok := p.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text in response (finish reason: %v)", c.FinishReason)
	}
	return sb.String(), nil
}
