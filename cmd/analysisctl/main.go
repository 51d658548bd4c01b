// main.go: analysisctl inspects analysis extension bindings and runs text
// through delegating analysis chains.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// CLI flags
var (
	configFile   string
	logLevel     string
	development  bool
	withoutExt   bool
	tokenizerID  string
	charFilters  []string
	tokenFilters []string
	settingPairs []string
	indexName    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "analysisctl",
	Short: "Inspect and exercise delegating analysis extensions",
	Long: `analysisctl builds the analysis plugin over the modules linked into this
binary, seals the capability registry and reports how each extension point
resolved. Extension points without an available implementation fall back to
passthrough filters or a tokenizer that yields no terms.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the modules captured by the capability registry",
	Args:  cobra.NoArgs,
	RunE:  runModules,
}

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "Resolve every extension point and print its binding",
	Long: `Resolve every extension point and print its binding.

Examples:
  analysisctl bindings
  analysisctl bindings --config analysis.yaml
  analysisctl bindings --without-ext`,
	Args: cobra.NoArgs,
	RunE: runBindings,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <text>",
	Short: "Run text through an analysis chain",
	Long: `Run text through char filters, a tokenizer and token filters.

Examples:
  analysisctl analyze --tokenizer fess_japanese_tokenizer "hello world"
  analysisctl analyze -c analysis.yaml --tokenizer fess_korean_tokenizer \
      --token-filter fess_japanese_baseform --set language=tr "İstanbul"`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "configuration file (yaml, json, toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&development, "dev", false, "human readable console logging")
	rootCmd.PersistentFlags().BoolVar(&withoutExt, "without-ext", false, "do not hand the bundled unicode-text module to the registry")
	rootCmd.PersistentFlags().StringVar(&indexName, "index", "analysisctl", "index name passed to constructors")

	analyzeCmd.Flags().StringVar(&tokenizerID, "tokenizer", "fess_japanese_tokenizer", "tokenizer extension point")
	analyzeCmd.Flags().StringSliceVar(&charFilters, "char-filter", nil, "char filter extension points, in order")
	analyzeCmd.Flags().StringSliceVar(&tokenFilters, "token-filter", nil, "token filter extension points, in order")
	analyzeCmd.Flags().StringArrayVar(&settingPairs, "set", nil, "component setting as key=value (repeatable)")

	rootCmd.AddCommand(modulesCmd, bindingsCmd, analyzeCmd)
}
