// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-md/internal/llm"
	"github.com/pdiddy/paper-md/internal/pdf"
	"github.com/pdiddy/paper-md/internal/secrets"
	"github.com/pdiddy/paper-md/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config prints the configuration a batch run would use after merging
defaults, the config file and PAPER_MD_* environment variables. API keys
are masked.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(loadedSecrets)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg.Redacted())
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// setDefaults registers every config key so that environment variables
// are honoured by viper.Unmarshal.
func setDefaults(baseDir string) {
	viper.SetDefault("base_dir", baseDir)
	viper.SetDefault("input_dir", "papers_pdf")
	viper.SetDefault("output_dir", "outputs/pdf_mds")
	viper.SetDefault("log_level", "info")

	viper.SetDefault("chat.provider", types.ProviderOpenAI)
	viper.SetDefault("chat.api_key", "")
	viper.SetDefault("chat.base_url", "")
	viper.SetDefault("chat.vision_model", "")
	viper.SetDefault("chat.text_model", "")
	viper.SetDefault("chat.max_tokens", types.DefaultMaxTokens)

	viper.SetDefault("extraction.image_dpi", pdf.DefaultDPI)
	viper.SetDefault("extraction.debug_images", false)
	viper.SetDefault("extraction.debug_images_dir", "pdf_images")
}

// loadConfig decodes the merged viper settings. A missing API key is taken
// from the secrets directory and missing models from the provider defaults.
func loadConfig(s secrets.Secrets) (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Chat.APIKey == "" {
		cfg.Chat.APIKey = s.APIKey(cfg.Chat.Provider)
	}
	if cfg.Chat.VisionModel == "" {
		cfg.Chat.VisionModel = llm.DefaultModel(cfg.Chat.Provider)
	}
	if cfg.Chat.TextModel == "" {
		cfg.Chat.TextModel = llm.DefaultModel(cfg.Chat.Provider)
	}
	return cfg, nil
}

// newLogger builds the diagnostics logger. Outcome lines are printed
// separately on stdout.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level %q: %w", level, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = lvl
	zc.Encoding = "console"
	zc.Sampling = nil
	zc.EncoderConfig.TimeKey = "time"
	return zc.Build()
}
