// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument(filepath.Join("papers_pdf", "attention.v2.pdf"))

	assert.Equal(t, "attention.v2", doc.Name)
	assert.Equal(t, "attention.v2.pdf", doc.FileName())
}

func TestMode(t *testing.T) {
	tests := []struct {
		mode   Mode
		name   string
		label  string
		suffix string
	}{
		{ModeVision, "vision", "Vision-based", "_vision_desc.md"},
		{ModeText, "text", "Text-based", "_text_desc.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.mode.Valid())
			assert.Equal(t, tt.name, tt.mode.String())
			assert.Equal(t, tt.label, tt.mode.Label())
			assert.Equal(t, tt.suffix, tt.mode.Suffix())
		})
	}

	assert.False(t, Mode(9).Valid())
	assert.Equal(t, "Mode(9)", Mode(9).String())
	assert.Equal(t, []Mode{ModeVision, ModeText}, Modes)
}

func TestMessage(t *testing.T) {
	plain := Message{Role: RoleUser, Text: "hello"}
	assert.False(t, plain.IsMultipart())
	assert.False(t, plain.HasImages())

	multi := Message{Role: RoleUser, Parts: []ContentPart{TextPart("hello"), ImagePart("image/png", "AAAA")}}
	assert.True(t, multi.IsMultipart())
	assert.True(t, multi.HasImages())
	assert.Equal(t, "data:image/png;base64,AAAA", multi.Parts[1].DataURI())
}

func TestConfigResolve(t *testing.T) {
	cfg := Config{BaseDir: "/opt/paper-md"}

	assert.Equal(t, filepath.Join("/opt/paper-md", "papers_pdf"), cfg.Resolve("papers_pdf"))
	assert.Equal(t, "/data/in", cfg.Resolve("/data/in"))
	assert.Equal(t, "", cfg.Resolve(""))
	assert.Equal(t, "papers_pdf", Config{}.Resolve("papers_pdf"))
}

func TestConfigRedacted(t *testing.T) {
	cfg := Config{Chat: ChatConfig{APIKey: "sk-secret", Provider: ProviderOpenAI}}

	red := cfg.Redacted()
	assert.Equal(t, "********", red.Chat.APIKey)
	assert.Equal(t, "sk-secret", cfg.Chat.APIKey)
	assert.Equal(t, "", Config{}.Redacted().Chat.APIKey)
}
