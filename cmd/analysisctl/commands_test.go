// commands_test.go: analysisctl command tests
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		configFile, logLevel, withoutExt = "", "", false
		charFilters, tokenFilters, settingPairs = nil, nil, nil
		tokenizerID = "fess_japanese_tokenizer"
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseSettings(t *testing.T) {
	settings, err := parseSettings([]string{"form=nfkc", "language=tr", "empty="})
	require.NoError(t, err)
	assert.Equal(t, "nfkc", settings["form"])
	assert.Equal(t, "tr", settings["language"])
	assert.Equal(t, "", settings["empty"])

	_, err = parseSettings([]string{"novalue"})
	assert.Error(t, err)
	_, err = parseSettings([]string{"=x"})
	assert.Error(t, err)
}

func TestModulesCommand(t *testing.T) {
	out, err := execute(t, "modules", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "unicode-text")

	out, err = execute(t, "modules", "--log-level", "error", "--without-ext")
	require.NoError(t, err)
	assert.Contains(t, out, "no modules captured")
}

func TestBindingsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: error
extension_points:
  fess_korean_tokenizer:
    extra_candidates: [unicodetext.LetterTokenizerFactory]
`), 0600))

	out, err := execute(t, "bindings", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "fess_korean_tokenizer")
	assert.Contains(t, out, "unicodetext.LetterTokenizerFactory")
	assert.Contains(t, out, "fallback")
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := execute(t, "analyze", "--log-level", "error", "hello world")
	require.NoError(t, err)
	assert.Contains(t, out, "no tokens")
}

func TestAnalyzeCommand_NumericSetting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: error
extension_points:
  fess_korean_tokenizer:
    extra_candidates: [unicodetext.LetterTokenizerFactory]
`), 0600))

	out, err := execute(t, "analyze", "-c", path, "--tokenizer", "fess_korean_tokenizer",
		"--set", "max_token_length=3", "hello world")
	require.NoError(t, err)

	var terms []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n")[1:] {
		fields := strings.Fields(line)
		require.GreaterOrEqual(t, len(fields), 2)
		terms = append(terms, fields[1])
	}
	assert.Equal(t, []string{"hel", "lo", "wor", "ld"}, terms)

	_, err = execute(t, "analyze", "-c", path, "--tokenizer", "fess_korean_tokenizer",
		"--set", "max_token_length=zero", "hello world")
	require.Error(t, err)
}
