// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/paper-md/internal/batch"
	"github.com/pdiddy/paper-md/internal/generate"
	"github.com/pdiddy/paper-md/internal/llm"
	"github.com/pdiddy/paper-md/internal/pdf"
)

// runBatch wires the extractor, chat client and generator together and
// converts the whole input directory. Per-paper failures are printed and do
// not affect the exit status.
func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(loadedSecrets)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	chat, err := llm.New(cfg.Chat, http.DefaultClient)
	if err != nil {
		return err
	}

	gen := generate.New(pdf.NewExtractor(cfg.Extraction), chat, generate.Config{
		MaxTokens:      cfg.Chat.MaxTokens,
		TextModel:      cfg.Chat.TextModel,
		DebugImages:    cfg.Extraction.DebugImages,
		DebugImagesDir: cfg.Resolve(cfg.Extraction.DebugImagesDir),
	}, logger)

	logger.Debug("Configured chat backend",
		zap.String("provider", cfg.Chat.Provider),
		zap.String("vision_model", cfg.Chat.VisionModel),
		zap.String("text_model", cfg.Chat.TextModel))

	driver := batch.NewDriver(gen, cmd.OutOrStdout(), logger)
	_, err = driver.Run(cmd.Context(), cfg.Resolve(cfg.InputDir), cfg.Resolve(cfg.OutputDir))
	return err
}
