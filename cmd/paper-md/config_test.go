// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-md/internal/llm"
	"github.com/pdiddy/paper-md/internal/secrets"
	"github.com/pdiddy/paper-md/pkg/types"
)

func resetViper(t *testing.T, baseDir string) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	setDefaults(baseDir)
	bindEnv()
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetViper(t, "/opt/paper-md")

	cfg, err := loadConfig(secrets.Secrets{secrets.KeyOpenAI: "sk-file"})
	require.NoError(t, err)

	assert.Equal(t, "/opt/paper-md", cfg.BaseDir)
	assert.Equal(t, filepath.Join("/opt/paper-md", "papers_pdf"), cfg.Resolve(cfg.InputDir))
	assert.Equal(t, filepath.Join("/opt/paper-md", "outputs", "pdf_mds"), cfg.Resolve(cfg.OutputDir))
	assert.Equal(t, types.ProviderOpenAI, cfg.Chat.Provider)
	assert.Equal(t, "sk-file", cfg.Chat.APIKey)
	assert.Equal(t, llm.DefaultOpenAIModel, cfg.Chat.VisionModel)
	assert.Equal(t, llm.DefaultOpenAIModel, cfg.Chat.TextModel)
	assert.Equal(t, types.DefaultMaxTokens, cfg.Chat.MaxTokens)
	assert.EqualValues(t, 72, cfg.Extraction.ImageDPI)
	assert.False(t, cfg.Extraction.DebugImages)
}

func TestLoadConfig_Environment(t *testing.T) {
	resetViper(t, "/opt/paper-md")
	t.Setenv("PAPER_MD_CHAT_PROVIDER", "anthropic")
	t.Setenv("PAPER_MD_CHAT_MAX_TOKENS", "2048")
	t.Setenv("PAPER_MD_OUTPUT_DIR", "/tmp/descriptions")
	t.Setenv("PAPER_MD_EXTRACTION_DEBUG_IMAGES", "true")

	cfg, err := loadConfig(secrets.Secrets{secrets.KeyAnthropic: "sk-ant"})
	require.NoError(t, err)

	assert.Equal(t, types.ProviderAnthropic, cfg.Chat.Provider)
	assert.Equal(t, "sk-ant", cfg.Chat.APIKey)
	assert.Equal(t, llm.DefaultAnthropicModel, cfg.Chat.VisionModel)
	assert.Equal(t, 2048, cfg.Chat.MaxTokens)
	assert.Equal(t, "/tmp/descriptions", cfg.Resolve(cfg.OutputDir))
	assert.True(t, cfg.Extraction.DebugImages)
}

func TestLoadConfig_File(t *testing.T) {
	resetViper(t, "/opt/paper-md")

	path := filepath.Join(t.TempDir(), "paper-md.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input_dir: /data/papers
chat:
  api_key: sk-config
  text_model: gpt-4.1
extraction:
  image_dpi: 150
`), 0o644))
	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := loadConfig(secrets.Secrets{secrets.KeyOpenAI: "sk-file"})
	require.NoError(t, err)

	assert.Equal(t, "/data/papers", cfg.Resolve(cfg.InputDir))
	assert.Equal(t, "sk-config", cfg.Chat.APIKey, "config file wins over secrets")
	assert.Equal(t, "gpt-4.1", cfg.Chat.TextModel)
	assert.EqualValues(t, 150, cfg.Extraction.ImageDPI)
}

func TestConfigCommand_RedactsKey(t *testing.T) {
	resetViper(t, "/opt/paper-md")
	loadedSecrets = secrets.Secrets{secrets.KeyOpenAI: "sk-very-secret"}
	t.Cleanup(func() { loadedSecrets = nil })

	var out bytes.Buffer
	configCmd.SetOut(&out)
	t.Cleanup(func() { configCmd.SetOut(nil) })
	require.NoError(t, configCmd.RunE(configCmd, nil))

	assert.NotContains(t, out.String(), "sk-very-secret")

	var printed types.Config
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &printed))
	assert.Equal(t, "********", printed.Chat.APIKey)
	assert.Equal(t, "papers_pdf", printed.InputDir)
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = newLogger("loud")
	assert.Error(t, err)
}
