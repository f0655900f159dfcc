// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate turns one research-paper PDF into a markdown project
// description by extracting its content, prompting a chat model and writing
// the response to disk.
package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/paper-md/internal/llm"
	"github.com/pdiddy/paper-md/internal/pdf"
	"github.com/pdiddy/paper-md/internal/prompt"
	"github.com/pdiddy/paper-md/pkg/types"
)

// Extractor reads page text and page images from a PDF. *pdf.Extractor
// implements it; tests supply fakes.
type Extractor interface {
	ExtractText(path string) ([]types.PageText, error)
	RenderPages(path string) ([][]byte, error)
	DumpPages(path, dir string) (int, error)
}

var _ Extractor = (*pdf.Extractor)(nil)

// Config holds the generation settings that do not belong to a single call.
type Config struct {
	// MaxTokens caps the completion length; 0 selects the client default.
	MaxTokens int

	// TextModel is passed to Chat.Text; empty selects the client default.
	TextModel string

	// DebugImages writes rendered pages to DebugImagesDir/<document>/ on
	// every vision attempt.
	DebugImages    bool
	DebugImagesDir string
}

// Generator composes extraction, prompting and the chat client.
type Generator struct {
	extractor Extractor
	chat      llm.Chat
	cfg       Config
	logger    *zap.Logger
}

// handler produces the markdown for one document in one mode.
type handler func(ctx context.Context, doc types.Document) (string, error)

// New creates a Generator. A nil logger disables diagnostics.
func New(extractor Extractor, chat llm.Chat, cfg Config, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		extractor: extractor,
		chat:      chat,
		cfg:       cfg,
		logger:    logger,
	}
}

// OutputPath returns the markdown path for doc generated in mode.
func OutputPath(outputDir string, doc types.Document, mode types.Mode) string {
	return filepath.Join(outputDir, doc.Name+mode.Suffix())
}

// Generate writes the model's description of doc to outputPath, replacing
// any existing file. Nothing is written when extraction or the model call
// fails; their errors are returned wrapped.
func (g *Generator) Generate(ctx context.Context, doc types.Document, outputPath string, mode types.Mode) error {
	h, ok := g.handler(mode)
	if !ok {
		return fmt.Errorf("unsupported generation mode %v", mode)
	}

	start := time.Now()
	markdown, err := h(ctx, doc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	g.logger.Debug("Wrote markdown",
		zap.String("document", doc.FileName()),
		zap.Stringer("mode", mode),
		zap.String("output", outputPath),
		zap.Int("bytes", len(markdown)),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

func (g *Generator) handler(mode types.Mode) (handler, bool) {
	switch mode {
	case types.ModeVision:
		return g.vision, true
	case types.ModeText:
		return g.text, true
	}
	return nil, false
}

func (g *Generator) vision(ctx context.Context, doc types.Document) (string, error) {
	pages, err := g.extractor.ExtractText(doc.Path)
	if err != nil {
		return "", fmt.Errorf("extracting text: %w", err)
	}

	images, err := g.extractor.RenderPages(doc.Path)
	if err != nil {
		return "", fmt.Errorf("rendering pages: %w", err)
	}

	if g.cfg.DebugImages {
		g.dumpPages(doc)
	}

	messages, err := prompt.Build(pdf.FormatPages(pages), pdf.EncodeBase64(images))
	if err != nil {
		return "", fmt.Errorf("building prompt: %w", err)
	}

	g.logger.Debug("Requesting vision completion",
		zap.String("document", doc.FileName()),
		zap.Int("pages", len(pages)),
		zap.Int("images", len(images)))

	return g.chat.Vision(ctx, messages, g.cfg.MaxTokens)
}

func (g *Generator) text(ctx context.Context, doc types.Document) (string, error) {
	pages, err := g.extractor.ExtractText(doc.Path)
	if err != nil {
		return "", fmt.Errorf("extracting text: %w", err)
	}

	messages, err := prompt.Build(pdf.FormatPages(pages), nil)
	if err != nil {
		return "", fmt.Errorf("building prompt: %w", err)
	}

	g.logger.Debug("Requesting text completion",
		zap.String("document", doc.FileName()),
		zap.Int("pages", len(pages)),
		zap.String("model", g.cfg.TextModel))

	return g.chat.Text(ctx, messages, g.cfg.TextModel, g.cfg.MaxTokens)
}

// dumpPages writes debug page images. Failures are logged, never returned.
func (g *Generator) dumpPages(doc types.Document) {
	dir := filepath.Join(g.cfg.DebugImagesDir, doc.Name)
	n, err := g.extractor.DumpPages(doc.Path, dir)
	if err != nil {
		g.logger.Warn("Failed to dump page images", zap.String("dir", dir), zap.Error(err))
		return
	}
	g.logger.Debug("Dumped page images", zap.String("dir", dir), zap.Int("pages", n))
}
