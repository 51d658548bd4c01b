// analyzer.go: Analysis chain of char filters, a tokenizer and token filters
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package goanalysis

import (
	"io"
	"strings"
)

// Analyzer runs text through char filters, a tokenizer and token filters,
// in that order.
type Analyzer struct {
	charFilters  []CharFilterFactory
	tokenizer    TokenizerFactory
	tokenFilters []TokenFilterFactory
}

// NewAnalyzer builds an analysis chain. The tokenizer is required.
func NewAnalyzer(tokenizer TokenizerFactory, charFilters []CharFilterFactory, tokenFilters []TokenFilterFactory) (*Analyzer, error) {
	if tokenizer == nil {
		return nil, NewConfigValidationError("analyzer requires a tokenizer", nil)
	}
	return &Analyzer{
		charFilters:  charFilters,
		tokenizer:    tokenizer,
		tokenFilters: tokenFilters,
	}, nil
}

// TokenStream returns the filtered token stream for r. The caller owns the
// stream and must close it.
func (a *Analyzer) TokenStream(r io.Reader) TokenStream {
	for _, cf := range a.charFilters {
		r = cf.Create(r)
	}

	tokenizer := a.tokenizer.Create()
	tokenizer.SetReader(r)

	var ts TokenStream = tokenizer
	for _, tf := range a.tokenFilters {
		ts = tf.Create(ts)
	}
	return ts
}

// Analyze returns every token produced for text.
func (a *Analyzer) Analyze(text string) ([]Token, error) {
	ts := a.TokenStream(strings.NewReader(text))
	defer ts.Close()

	return CollectTokens(ts)
}

// CollectTokens drains ts from its current position.
func CollectTokens(ts TokenStream) ([]Token, error) {
	tokens := make([]Token, 0)
	for {
		ok, err := ts.IncrementToken()
		if err != nil {
			return tokens, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, ts.Token())
	}
}

// Terms returns the term text of each token.
func Terms(tokens []Token) []string {
	terms := make([]string, len(tokens))
	for i, t := range tokens {
		terms[i] = t.Term
	}
	return terms
}

// NewAnalyzer builds an analyzer from the plugin's extension points.
// Every named component is constructed with the given settings.
func (p *AnalysisPlugin) NewAnalyzer(index IndexSettings, env Environment, tokenizer string, charFilters, tokenFilters []string, settings Settings) (*Analyzer, error) {
	tokenizers := p.Tokenizers()
	tp, ok := tokenizers[tokenizer]
	if !ok {
		return nil, NewUnknownExtensionPointError(tokenizer)
	}
	tf, err := tp(index, env, tokenizer, settings)
	if err != nil {
		return nil, err
	}

	cfProviders := p.CharFilters()
	cfs := make([]CharFilterFactory, 0, len(charFilters))
	for _, id := range charFilters {
		provider, ok := cfProviders[id]
		if !ok {
			return nil, NewUnknownExtensionPointError(id)
		}
		cf, err := provider(index, env, id, settings)
		if err != nil {
			return nil, err
		}
		cfs = append(cfs, cf)
	}

	tfProviders := p.TokenFilters()
	tfs := make([]TokenFilterFactory, 0, len(tokenFilters))
	for _, id := range tokenFilters {
		provider, ok := tfProviders[id]
		if !ok {
			return nil, NewUnknownExtensionPointError(id)
		}
		f, err := provider(index, env, id, settings)
		if err != nil {
			return nil, err
		}
		tfs = append(tfs, f)
	}

	return NewAnalyzer(tf, cfs, tfs)
}
