// commands.go: analysisctl command implementations
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	goanalysis "github.com/agilira/go-analysis"
	"github.com/agilira/go-analysis/ext/unicodetext"
	"github.com/spf13/cobra"
)

// host bundles a started plugin with the logger it was built with.
type host struct {
	plugin *goanalysis.AnalysisPlugin
	logger *goanalysis.ZapAdapter
	index  goanalysis.IndexSettings
	env    goanalysis.Environment
}

func (h *host) close() {
	_ = h.plugin.Stop()
	_ = h.plugin.Close()
	_ = h.logger.Sync()
}

// newHost loads configuration, builds the module inventory and starts the
// plugin.
func newHost() (*host, error) {
	config := goanalysis.DefaultConfig()
	if configFile != "" {
		loaded, err := goanalysis.LoadConfigFromFile(configFile)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	if logLevel != "" {
		config.LogLevel = logLevel
	}

	logger, err := goanalysis.NewZapLogger(config.LogLevel, development)
	if err != nil {
		return nil, err
	}

	var modules goanalysis.ModuleList
	if !withoutExt {
		m, err := unicodetext.NewModule()
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}

	plugin, err := goanalysis.NewAnalysisPlugin(modules, config, logger)
	if err != nil {
		return nil, err
	}
	if err := plugin.Start(); err != nil {
		return nil, err
	}

	home, _ := os.Getwd()
	return &host{
		plugin: plugin,
		logger: logger,
		index:  goanalysis.IndexSettings{Index: indexName},
		env:    goanalysis.Environment{HomeDir: home},
	}, nil
}

func runModules(cmd *cobra.Command, _ []string) error {
	h, err := newHost()
	if err != nil {
		return err
	}
	defer h.close()

	names, err := h.plugin.Registry().Modules()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "no modules captured")
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}

func runBindings(cmd *cobra.Command, _ []string) error {
	h, err := newHost()
	if err != nil {
		return err
	}
	defer h.close()

	bindings, err := h.plugin.Bindings(h.index, h.env)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EXTENSION\tKIND\tBOUND TO\tMODULE")
	for _, b := range bindings {
		target, module := "fallback", "-"
		if !b.Fallback {
			target, module = b.Candidate, b.Module
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.Extension, b.Kind, target, module)
	}
	return w.Flush()
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	settings, err := parseSettings(settingPairs)
	if err != nil {
		return err
	}

	h, err := newHost()
	if err != nil {
		return err
	}
	defer h.close()

	analyzer, err := h.plugin.NewAnalyzer(h.index, h.env, tokenizerID, charFilters, tokenFilters, settings)
	if err != nil {
		return err
	}
	tokens, err := analyzer.Analyze(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(tokens) == 0 {
		fmt.Fprintln(out, "no tokens")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tTERM\tSTART\tEND\tTYPE")
	for _, t := range tokens {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n", t.Position, t.Term, t.StartOffset, t.EndOffset, t.Type)
	}
	return w.Flush()
}

// parseSettings turns key=value pairs into a settings bag. Values stay
// strings.
func parseSettings(pairs []string) (goanalysis.Settings, error) {
	settings := goanalysis.Settings{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid setting %q, expected key=value", pair)
		}
		settings[key] = value
	}
	return settings, nil
}
