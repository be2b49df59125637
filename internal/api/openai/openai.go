// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package openai provides a very minimal client for the OpenAI chat
// completions API.
package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.astrophena.name/tldrr/internal/request"
)

// DefaultBaseURL is the base URL of the OpenAI API.
const DefaultBaseURL = "https://api.openai.com/v1"

// Client holds configuration for interacting with the OpenAI API.
type Client struct {
	// APIKey is the API key used for authentication.
	APIKey string
	// BaseURL overrides DefaultBaseURL.
	BaseURL string
	// HTTPClient is an optional HTTP client to use for requests. Defaults to
	// request.DefaultClient.
	HTTPClient *http.Client
}

// ChatCompletionParams defines the request body of the chat completions API.
type ChatCompletionParams struct {
	// Model is the ID of the model to use.
	Model string `json:"model"`
	// Messages is the conversation so far.
	Messages []Message `json:"messages"`
	// MaxTokens caps the number of tokens generated.
	MaxTokens int `json:"max_tokens,omitempty"`
}

// Message is a single message of a conversation.
type Message struct {
	// Role is one of "system", "user" or "assistant".
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletion is the response of the chat completions API.
type ChatCompletion struct {
	Choices []Choice `json:"choices"`
}

// Choice is one generated alternative.
type Choice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// ErrNoChoices is returned when the API responds without any choices.
var ErrNoChoices = errors.New("no choices in response")

// CreateChatCompletion sends a request to the chat completions API.
func (c *Client) CreateChatCompletion(ctx context.Context, params ChatCompletionParams) (*ChatCompletion, error) {
	if params.Model == "" {
		return nil, errors.New("model shouldn't be empty")
	}
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	var scrubber *strings.Replacer
	if c.APIKey != "" {
		scrubber = strings.NewReplacer(c.APIKey, "[EXPUNGED]")
	}
	resp, err := request.MakeJSON[*ChatCompletion](ctx, request.Params{
		Method: http.MethodPost,
		URL:    strings.TrimSuffix(base, "/") + "/chat/completions",
		Headers: map[string]string{
			"Authorization": "Bearer " + c.APIKey,
		},
		Body:       params,
		HTTPClient: c.HTTPClient,
		Scrubber:   scrubber,
	})
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.Choices) == 0 {
		return nil, ErrNoChoices
	}
	return resp, nil
}
