// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm wraps chat-completion APIs behind a small interface used to
// turn prompt messages into a single generated string.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/pdiddy/paper-md/pkg/types"
)

// Sampling parameters sent with every request. They request deterministic
// output and are kept as-is so repeated runs stay comparable.
const (
	samplingTopP             = 1.0
	samplingTemperature      = 0.0
	samplingFrequencyPenalty = 0.0
	samplingPresencePenalty  = 0.0
)

// Default model identifiers per provider.
const (
	DefaultOpenAIModel    = "gpt-4o"
	DefaultAnthropicModel = "claude-sonnet-4-5"
)

// Chat sends prompt messages to a model and returns the first completion.
// Each call makes exactly one request and is never retried.
type Chat interface {
	// Vision sends messages that may contain image parts to the vision model.
	Vision(ctx context.Context, messages []types.Message, maxTokens int) (string, error)

	// Text sends text-only messages to model, or to the configured text
	// model when model is empty.
	Text(ctx context.Context, messages []types.Message, model string, maxTokens int) (string, error)
}

// ErrMultipart is returned by Text when a message carries content parts.
var ErrMultipart = errors.New("text request contains multipart message")

// New builds the Chat backend selected by cfg.Provider. An empty provider
// selects OpenAI.
func New(cfg types.ChatConfig, client *http.Client) (Chat, error) {
	switch cfg.Provider {
	case "", types.ProviderOpenAI:
		return NewOpenAI(cfg, client), nil
	case types.ProviderAnthropic:
		return NewAnthropic(cfg, client), nil
	}
	return nil, fmt.Errorf("unknown chat provider %q (want %s or %s)", cfg.Provider, types.ProviderOpenAI, types.ProviderAnthropic)
}

// DefaultModel returns the model used for provider when none is configured.
func DefaultModel(provider string) string {
	if provider == types.ProviderAnthropic {
		return DefaultAnthropicModel
	}
	return DefaultOpenAIModel
}

func maxTokensOrDefault(n int) int64 {
	if n <= 0 {
		return types.DefaultMaxTokens
	}
	return int64(n)
}

func checkTextOnly(messages []types.Message) error {
	for i, m := range messages {
		if m.IsMultipart() {
			return fmt.Errorf("message %d (%s): %w", i, m.Role, ErrMultipart)
		}
	}
	return nil
}
