// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the notegen CLI. It turns a pasted
// study-document excerpt into a structured note: keywords, five Q&A
// pairs, takeaways, and a summary paragraph.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/notegen/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the notegen CLI.
var rootCmd = &cobra.Command{
	Use:   "notegen",
	Short: "Generate structured study notes from pasted excerpts",
	Long: `notegen ingests a block of prose from a study document and produces a
structured note: keywords, five question/answer pairs, takeaway statements,
and a summary paragraph.

The generate subcommand runs the full extraction pipeline. The takeaways
subcommand drives strict mode's deferred takeaway selection: it proposes
scored candidates and finalizes a user-chosen subset.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./notegen.yaml or ~/.config/notegen/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("notegen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "notegen"))
		}
	}

	viper.SetEnvPrefix("NOTEGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// engineConfig builds the engine thresholds from viper, letting the
// config file or environment override the defaults.
func engineConfig() types.EngineConfig {
	return types.EngineConfig{
		MinWordCount:       viper.GetInt("min_word_count"),
		StrictMinWordCount: viper.GetInt("strict_min_word_count"),
		MinSuggestions:     viper.GetInt("min_suggestions"),
	}.WithDefaults()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
