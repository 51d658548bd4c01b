// unicodetext_test.go: unicode-text module tests
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package unicodetext

import (
	"io"
	"strings"
	"testing"

	goanalysis "github.com/agilira/go-analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	noIndex goanalysis.IndexSettings
	noEnv   goanalysis.Environment
)

func TestNewModule_Exports(t *testing.T) {
	m, err := NewModule()
	require.NoError(t, err)
	assert.Equal(t, ModuleName, m.Name())
	assert.Equal(t, []string{LetterTokenizerName, LowerCaseFilterName, NormalizeCharFilterName}, m.Exports())
}

func TestNormalizeCharFilter(t *testing.T) {
	tests := []struct {
		form  string
		input string
		want  string
	}{
		{"nfkc", "ｈｅｌｌｏ　ﾜｰﾙﾄﾞ", "hello ワールド"},
		{"nfc", "e\u0301", "\u00e9"},
		{"nfd", "\u00e9", "e\u0301"},
		{"width", "ＡＢＣ", "ABC"},
	}

	for _, tt := range tests {
		t.Run(tt.form, func(t *testing.T) {
			f, err := NewNormalizeCharFilterFactory(noIndex, noEnv, "norm", goanalysis.Settings{"form": tt.form})
			require.NoError(t, err)
			assert.Equal(t, "norm", f.Name())

			out, err := io.ReadAll(f.Create(strings.NewReader(tt.input)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}

	t.Run("default_form", func(t *testing.T) {
		f, err := NewNormalizeCharFilterFactory(noIndex, noEnv, "norm", nil)
		require.NoError(t, err)
		assert.Equal(t, "nfkc", f.(*NormalizeCharFilterFactory).Form())
	})

	t.Run("unknown_form", func(t *testing.T) {
		_, err := NewNormalizeCharFilterFactory(noIndex, noEnv, "norm", goanalysis.Settings{"form": "nfx"})
		assert.Error(t, err)
	})
}

func TestLetterTokenizer(t *testing.T) {
	f, err := NewLetterTokenizerFactory(noIndex, noEnv, "letters", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxTokenLength, f.(*LetterTokenizerFactory).MaxTokenLength())

	tok := f.Create()
	tok.SetReader(strings.NewReader("Hello, w\u00f6rld 42!"))
	tokens, err := goanalysis.CollectTokens(tok)
	require.NoError(t, err)

	require.Len(t, tokens, 3)
	assert.Equal(t, []string{"Hello", "w\u00f6rld", "42"}, goanalysis.Terms(tokens))
	assert.Equal(t, goanalysis.Token{Term: "w\u00f6rld", StartOffset: 7, EndOffset: 13, Position: 1, Type: "word"}, tokens[1])

	require.NoError(t, tok.Reset())
	again, err := goanalysis.CollectTokens(tok)
	require.NoError(t, err)
	assert.Equal(t, tokens, again)
	require.NoError(t, tok.Close())
}

func TestLetterTokenizer_MaxTokenLength(t *testing.T) {
	f, err := NewLetterTokenizerFactory(noIndex, noEnv, "letters", goanalysis.Settings{"max_token_length": 3})
	require.NoError(t, err)

	tok := f.Create()
	tok.SetReader(strings.NewReader("abcdefg"))
	tokens, err := goanalysis.CollectTokens(tok)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "def", "g"}, goanalysis.Terms(tokens))

	for _, bad := range []any{0, -1, 2.5, "three", "-2", true} {
		_, err := NewLetterTokenizerFactory(noIndex, noEnv, "letters", goanalysis.Settings{"max_token_length": bad})
		assert.Error(t, err, "value %v", bad)
	}
	for _, good := range []any{float64(8), int64(8), "8", " 8 "} {
		f, err := NewLetterTokenizerFactory(noIndex, noEnv, "letters", goanalysis.Settings{"max_token_length": good})
		require.NoError(t, err, "value %v", good)
		assert.Equal(t, 8, f.(*LetterTokenizerFactory).MaxTokenLength())
	}
}

func TestLetterTokenizer_NoInput(t *testing.T) {
	f, err := NewLetterTokenizerFactory(noIndex, noEnv, "letters", nil)
	require.NoError(t, err)

	ok, err := f.Create().IncrementToken()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLowerCaseFilter(t *testing.T) {
	t.Run("turkish", func(t *testing.T) {
		tf, err := NewLowerCaseFilterFactory(noIndex, noEnv, "lower", goanalysis.Settings{"language": "tr"})
		require.NoError(t, err)

		tokenizer := &LetterTokenizer{maxLen: DefaultMaxTokenLength, position: -1}
		tokenizer.SetReader(strings.NewReader("İSTANBUL"))
		tokens, err := goanalysis.CollectTokens(tf.Create(tokenizer))
		require.NoError(t, err)
		assert.Equal(t, []string{"istanbul"}, goanalysis.Terms(tokens))
	})

	t.Run("invalid_language", func(t *testing.T) {
		_, err := NewLowerCaseFilterFactory(noIndex, noEnv, "lower", goanalysis.Settings{"language": "not a tag!"})
		assert.Error(t, err)
	})
}

// TestModuleBindsThroughPlugin wires the module into the plugin the way a
// host does and checks the extra candidates bind.
func TestModuleBindsThroughPlugin(t *testing.T) {
	m, err := NewModule()
	require.NoError(t, err)

	config := goanalysis.DefaultConfig()
	config.ExtensionPoints["fess_japanese_iteration_mark"] = goanalysis.ExtensionPointConfig{ExtraCandidates: []string{NormalizeCharFilterName}}
	config.ExtensionPoints["fess_japanese_baseform"] = goanalysis.ExtensionPointConfig{ExtraCandidates: []string{LowerCaseFilterName}}
	config.ExtensionPoints["fess_korean_tokenizer"] = goanalysis.ExtensionPointConfig{ExtraCandidates: []string{LetterTokenizerName}}

	plugin, err := goanalysis.NewAnalysisPlugin(goanalysis.ModuleList{m}, config, goanalysis.NewTestLogger())
	require.NoError(t, err)
	require.NoError(t, plugin.Start())
	defer plugin.Close()

	analyzer, err := plugin.NewAnalyzer(noIndex, noEnv, "fess_korean_tokenizer",
		[]string{"fess_japanese_iteration_mark"}, []string{"fess_japanese_baseform"}, goanalysis.Settings{})
	require.NoError(t, err)

	tokens, err := analyzer.Analyze("ＨＥＬＬＯ 안녕")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "안녕"}, goanalysis.Terms(tokens))
}
