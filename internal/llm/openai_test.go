// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-md/pkg/types"
)

const openAICompletion = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4o",
  "choices": [
    {"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "# ResNet\n\nA summary."}}
  ]
}`

func newTestOpenAI(t *testing.T, api *fakeAPI) *OpenAI {
	t.Helper()
	srv := api.start(t)
	return NewOpenAI(types.ChatConfig{
		APIKey:      "test-key",
		BaseURL:     srv.URL + "/",
		VisionModel: "vision-model",
		TextModel:   "text-model",
	}, srv.Client())
}

func TestOpenAI_Vision(t *testing.T) {
	api := &fakeAPI{status: http.StatusOK, body: openAICompletion}
	c := newTestOpenAI(t, api)

	got, err := c.Vision(context.Background(), visionMessages(), 0)
	require.NoError(t, err)
	assert.Equal(t, "# ResNet\n\nA summary.", got)

	assert.EqualValues(t, 1, api.calls.Load())
	assert.Equal(t, "/chat/completions", api.lastPath())

	req := api.lastRequest()
	assert.Equal(t, "vision-model", req["model"])
	assert.EqualValues(t, 4000, req["max_tokens"])
	assert.EqualValues(t, 1, req["top_p"])
	assert.EqualValues(t, 0, req["temperature"])
	assert.EqualValues(t, 0, req["frequency_penalty"])
	assert.EqualValues(t, 0, req["presence_penalty"])

	messages, ok := req["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)

	system := messages[0].(map[string]any)
	assert.Equal(t, "system", system["role"])
	assert.Equal(t, "You write project descriptions.", system["content"])

	user := messages[1].(map[string]any)
	assert.Equal(t, "user", user["role"])
	parts, ok := user["content"].([]any)
	require.True(t, ok)
	require.Len(t, parts, 2)

	textPart := parts[0].(map[string]any)
	assert.Equal(t, "text", textPart["type"])

	imagePart := parts[1].(map[string]any)
	assert.Equal(t, "image_url", imagePart["type"])
	imageURL := imagePart["image_url"].(map[string]any)
	assert.Equal(t, "data:image/png;base64,aW1hZ2U=", imageURL["url"])
}

func TestOpenAI_Text(t *testing.T) {
	api := &fakeAPI{status: http.StatusOK, body: openAICompletion}
	c := newTestOpenAI(t, api)

	_, err := c.Text(context.Background(), textMessages(), "", 1500)
	require.NoError(t, err)
	assert.Equal(t, "text-model", api.lastRequest()["model"])
	assert.EqualValues(t, 1500, api.lastRequest()["max_tokens"])

	messages := api.lastRequest()["messages"].([]any)
	user := messages[1].(map[string]any)
	assert.Equal(t, "PDF Text\n--- Page 1 ---\nhello", user["content"])

	_, err = c.Text(context.Background(), textMessages(), "gpt-4.1", 0)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1", api.lastRequest()["model"])
}

func TestOpenAI_TextRejectsImages(t *testing.T) {
	api := &fakeAPI{status: http.StatusOK, body: openAICompletion}
	c := newTestOpenAI(t, api)

	_, err := c.Text(context.Background(), visionMessages(), "", 0)
	assert.ErrorIs(t, err, ErrMultipart)
	assert.EqualValues(t, 0, api.calls.Load())
}

func TestOpenAI_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{
			name:       "authentication failure",
			status:     http.StatusUnauthorized,
			body:       `{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "rate limited",
			status:     http.StatusTooManyRequests,
			body:       `{"error": {"message": "Rate limit reached", "type": "requests"}}`,
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "server error",
			status:     http.StatusInternalServerError,
			body:       `{"error": {"message": "boom", "type": "server_error"}}`,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "no choices",
			status: http.StatusOK,
			body:   `{"id": "chatcmpl-2", "object": "chat.completion", "created": 1, "model": "gpt-4o", "choices": []}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{status: tt.status, body: tt.body}
			c := newTestOpenAI(t, api)

			_, err := c.Vision(context.Background(), visionMessages(), 0)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr), "want *APIError, got %v", err)
			assert.Equal(t, types.ProviderOpenAI, apiErr.Provider)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.EqualValues(t, 1, api.calls.Load(), "requests must not be retried")
		})
	}
}

func TestOpenAI_TransportError(t *testing.T) {
	api := &fakeAPI{status: http.StatusOK, body: openAICompletion}
	srv := api.start(t)
	c := NewOpenAI(types.ChatConfig{APIKey: "test-key", BaseURL: srv.URL + "/"}, srv.Client())
	srv.Close()

	_, err := c.Vision(context.Background(), visionMessages(), 0)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "want *APIError, got %v", err)
	assert.Zero(t, apiErr.StatusCode)
}
