// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/pdiddy/paper-md/pkg/types"
)

var _ Chat = (*OpenAI)(nil)

// OpenAI talks to the OpenAI chat-completions API or any compatible
// endpoint configured through BaseURL.
type OpenAI struct {
	client      openai.Client
	visionModel string
	textModel   string
}

// NewOpenAI creates an OpenAI backend. A nil client uses http.DefaultClient.
func NewOpenAI(cfg types.ChatConfig, client *http.Client) *OpenAI {
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

	return &OpenAI{
		client:      openai.NewClient(opts...),
		visionModel: orDefault(cfg.VisionModel, DefaultOpenAIModel),
		textModel:   orDefault(cfg.TextModel, DefaultOpenAIModel),
	}
}

// Vision sends messages, images included, to the vision model.
func (c *OpenAI) Vision(ctx context.Context, messages []types.Message, maxTokens int) (string, error) {
	return c.complete(ctx, c.visionModel, messages, maxTokens)
}

// Text sends text-only messages to model (or the configured text model).
func (c *OpenAI) Text(ctx context.Context, messages []types.Message, model string, maxTokens int) (string, error) {
	if err := checkTextOnly(messages); err != nil {
		return "", err
	}
	return c.complete(ctx, orDefault(model, c.textModel), messages, maxTokens)
}

func (c *OpenAI) complete(ctx context.Context, model string, messages []types.Message, maxTokens int) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:            openai.ChatModel(model),
		Messages:         convertOpenAIMessages(messages),
		MaxTokens:        openai.Int(maxTokensOrDefault(maxTokens)),
		TopP:             openai.Float(samplingTopP),
		FrequencyPenalty: openai.Float(samplingFrequencyPenalty),
		PresencePenalty:  openai.Float(samplingPresencePenalty),
		Temperature:      openai.Float(samplingTemperature),
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", convertOpenAIError(err)
	}

	if len(completion.Choices) == 0 {
		return "", &APIError{Provider: types.ProviderOpenAI, Err: errors.New("response contains no choices")}
	}
	return completion.Choices[0].Message.Content, nil
}

func convertOpenAIMessages(messages []types.Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))

	for _, m := range messages {
		if m.Role == types.RoleSystem {
			result = append(result, openai.SystemMessage(m.Text))
			continue
		}

		if !m.IsMultipart() {
			result = append(result, openai.UserMessage(m.Text))
			continue
		}

		parts := make([]openai.ChatCompletionContentPartUnionParam, 0, len(m.Parts))
		for _, p := range m.Parts {
			switch p.Type {
			case types.PartText:
				parts = append(parts, openai.TextContentPart(p.Text))
			case types.PartImage:
				parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: p.DataURI(),
				}))
			}
		}
		result = append(result, openai.UserMessage(parts))
	}

	return result
}

func convertOpenAIError(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return &APIError{Provider: types.ProviderOpenAI, StatusCode: apierr.StatusCode, Err: err}
	}
	return &APIError{Provider: types.ProviderOpenAI, Err: fmt.Errorf("request failed: %w", err)}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
