// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package assist

import (
	"context"
	"errors"

	"go.astrophena.name/tldrr/internal/api/openai"
)

// DefaultOpenAIModel is used when OpenAI.Model is empty.
const DefaultOpenAIModel = "gpt-4"

// OpenAI is a [Backend] backed by the OpenAI chat completions API.
type OpenAI struct {
	Client *openai.Client
	Model  string
}

// Name implements [Backend].
func (o *OpenAI) Name() string { return "OpenAI" }

// Complete implements [Backend].
func (o *OpenAI) Complete(ctx context.Context, r Request) (string, error) {
	if o.Client == nil || o.Client.APIKey == "" {
		return "", errors.New("OPENAI_API_KEY is not set")
	}
	model := o.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	var msgs []openai.Message
	if r.System != "" {
		msgs = append(msgs, openai.Message{Role: "system", Content: r.System})
	}
	msgs = append(msgs, openai.Message{Role: "user", Content: r.Prompt})

	resp, err := o.Client.CreateChatCompletion(ctx, openai.ChatCompletionParams{
		Model:     model,
		Messages:  msgs,
		MaxTokens: r.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Message.Content, nil
}
