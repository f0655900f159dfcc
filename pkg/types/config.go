// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "path/filepath"

// Chat providers understood by the chat client factory.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// DefaultMaxTokens is the completion budget used when none is configured.
const DefaultMaxTokens = 4000

// ChatConfig holds settings for the chat-completion backend.
type ChatConfig struct {
	// Provider selects the backend: "openai" or "anthropic".
	Provider string `json:"provider" yaml:"provider" mapstructure:"provider"`

	// APIKey authenticates against the provider. When empty the SDK falls
	// back to its own environment variable.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// BaseURL overrides the provider endpoint (e.g. an OpenAI-compatible proxy).
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base_url"`

	// VisionModel is the model used for image+text requests.
	VisionModel string `json:"vision_model" yaml:"vision_model" mapstructure:"vision_model"`

	// TextModel is the model used for text-only requests.
	TextModel string `json:"text_model" yaml:"text_model" mapstructure:"text_model"`

	// MaxTokens caps the completion length (default 4000).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens" mapstructure:"max_tokens"`
}

// ExtractionConfig holds settings for PDF text and image extraction.
type ExtractionConfig struct {
	// ImageDPI is the rasterization resolution for page images (default 72).
	ImageDPI float64 `json:"image_dpi" yaml:"image_dpi" mapstructure:"image_dpi"`

	// DebugImages writes every rendered page to DebugImagesDir/<document>/.
	DebugImages bool `json:"debug_images" yaml:"debug_images" mapstructure:"debug_images"`

	// DebugImagesDir is the scratch root for debug page images.
	DebugImagesDir string `json:"debug_images_dir" yaml:"debug_images_dir" mapstructure:"debug_images_dir"`
}

// Config groups all settings for a batch run.
type Config struct {
	// BaseDir anchors relative paths. Defaults to the executable's directory.
	BaseDir string `json:"base_dir" yaml:"base_dir" mapstructure:"base_dir"`

	// InputDir holds the source PDFs (flat, non-recursive).
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// OutputDir receives the generated markdown files.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// LogLevel is the zap level for diagnostics (debug, info, warn, error).
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`

	Chat       ChatConfig       `json:"chat" yaml:"chat" mapstructure:"chat"`
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction" mapstructure:"extraction"`
}

// Resolve returns path anchored at BaseDir unless it is already absolute.
func (c Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.BaseDir == "" {
		return path
	}
	return filepath.Join(c.BaseDir, path)
}

// Redacted returns a copy of c with credentials masked, for display.
func (c Config) Redacted() Config {
	if c.Chat.APIKey != "" {
		c.Chat.APIKey = "********"
	}
	return c
}
