// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/pdiddy/paper-md/pkg/types"
)

var _ Chat = (*Anthropic)(nil)

// Anthropic talks to the Anthropic Messages API. The Messages API has no
// frequency or presence penalties and rejects top_p alongside temperature
// on current models, so only temperature=0 is sent.
type Anthropic struct {
	client      anthropic.Client
	visionModel string
	textModel   string
}

// NewAnthropic creates an Anthropic backend. A nil client uses http.DefaultClient.
func NewAnthropic(cfg types.ChatConfig, client *http.Client) *Anthropic {
	if client == nil {
		client = http.DefaultClient
	}

	opts := []option.RequestOption{
		option.WithHTTPClient(client),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	return &Anthropic{
		client:      anthropic.NewClient(opts...),
		visionModel: orDefault(cfg.VisionModel, DefaultAnthropicModel),
		textModel:   orDefault(cfg.TextModel, DefaultAnthropicModel),
	}
}

// Vision sends messages, images included, to the vision model.
func (c *Anthropic) Vision(ctx context.Context, messages []types.Message, maxTokens int) (string, error) {
	return c.complete(ctx, c.visionModel, messages, maxTokens)
}

// Text sends text-only messages to model (or the configured text model).
func (c *Anthropic) Text(ctx context.Context, messages []types.Message, model string, maxTokens int) (string, error) {
	if err := checkTextOnly(messages); err != nil {
		return "", err
	}
	return c.complete(ctx, orDefault(model, c.textModel), messages, maxTokens)
}

func (c *Anthropic) complete(ctx context.Context, model string, messages []types.Message, maxTokens int) (string, error) {
	system, converted := convertAnthropicMessages(messages)

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   maxTokensOrDefault(maxTokens),
		System:      system,
		Messages:    converted,
		Temperature: anthropic.Float(samplingTemperature),
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", convertAnthropicError(err)
	}

	var b strings.Builder
	found := false
	for _, block := range message.Content {
		if block.Type != "text" {
			continue
		}
		b.WriteString(block.Text)
		found = true
	}
	if !found {
		return "", &APIError{Provider: types.ProviderAnthropic, Err: errors.New("response contains no text content")}
	}
	return b.String(), nil
}

func convertAnthropicMessages(messages []types.Message) ([]anthropic.TextBlockParam, []anthropic.MessageParam) {
	var system []anthropic.TextBlockParam
	var result []anthropic.MessageParam

	for _, m := range messages {
		if m.Role == types.RoleSystem {
			system = append(system, anthropic.TextBlockParam{Text: m.Text})
			continue
		}

		if !m.IsMultipart() {
			result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Text)))
			continue
		}

		blocks := make([]anthropic.ContentBlockParamUnion, 0, len(m.Parts))
		for _, p := range m.Parts {
			switch p.Type {
			case types.PartText:
				blocks = append(blocks, anthropic.NewTextBlock(p.Text))
			case types.PartImage:
				blocks = append(blocks, anthropic.NewImageBlock(anthropic.Base64ImageSourceParam{
					Data:      p.Data,
					MediaType: anthropic.Base64ImageSourceMediaType(p.MIMEType),
				}))
			}
		}
		result = append(result, anthropic.NewUserMessage(blocks...))
	}

	return system, result
}

func convertAnthropicError(err error) error {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		return &APIError{Provider: types.ProviderAnthropic, StatusCode: apierr.StatusCode, Err: err}
	}
	return &APIError{Provider: types.ProviderAnthropic, Err: fmt.Errorf("request failed: %w", err)}
}
