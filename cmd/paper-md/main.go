// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-md CLI. Run without
// arguments it turns every PDF in the input directory into a markdown
// project description.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-md/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from <base_dir>/.secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd converts the input directory when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "paper-md",
	Short: "Generate markdown project descriptions from research-paper PDFs",
	Long: `paper-md reads every PDF in the input directory (papers_pdf/ next to the
binary by default), sends its text and page images to a vision-capable chat
model and writes the reply to <name>_vision_desc.md in the output directory
(outputs/pdf_mds/). When the vision request fails the paper is retried once
with its text only and written to <name>_text_desc.md.

A failed paper is reported and skipped; it never stops the batch.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir := filepath.Join(viper.GetString("base_dir"), ".secrets")
		s, err := secrets.Load(dir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := s.Keys()
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
	RunE:         runBatch,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-md.yaml or ~/.config/paper-md/config.yaml)")
}

func initConfig() {
	setDefaults(executableDir())
	bindEnv()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-md"))
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// bindEnv maps PAPER_MD_<KEY> variables onto config keys, with dots in
// nested keys replaced by underscores (chat.provider → PAPER_MD_CHAT_PROVIDER).
func bindEnv() {
	viper.SetEnvPrefix("PAPER_MD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// executableDir returns the directory holding the running binary, or "."
// when it cannot be determined.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
