// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the clear-corpus CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/clear-corpus/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the clear-corpus CLI.
var rootCmd = &cobra.Command{
	Use:   "clear-corpus",
	Short: "Convert and count CoNLL semantic-role corpora",
	Long: `clear-corpus works on CoNLL-style corpus files: one token per line,
whitespace-separated columns, a blank line after every sentence.

convert rewrites the dependency + semantic-role format into the reduced CLEAR
format, keeping semantic roles only for predicates whose part-of-speech tag
starts with a given prefix. count reports sentence and word counts for a
directory of corpus files, and history shows counts recorded earlier.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./clear-corpus.yaml or ~/.config/clear-corpus/clear-corpus.yaml)")
	rootCmd.PersistentFlags().String("db", types.DefaultDBPath, "count history database")
	viper.BindPFlag("history.db_path", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("clear-corpus")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "clear-corpus"))
		}
	}

	viper.SetDefault("convert.pos_prefix", types.DefaultPOSPrefix)

	viper.SetEnvPrefix("CLEAR_CORPUS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig merges flags, environment, config file, and defaults.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
