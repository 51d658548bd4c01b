// unicodetext.go: Optional analysis module built on golang.org/x/text
//
// Package unicodetext is an independently built analysis module. It exports
// a normalizing char filter, a case-folding token filter and a letter/digit
// tokenizer under fully-qualified names, so a host can list them as
// candidates for its extension points without importing this package.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package unicodetext

import (
	"fmt"
	"io"
	"strings"

	goanalysis "github.com/agilira/go-analysis"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// ModuleName identifies this module in a capability registry.
const ModuleName = "unicode-text"

// Exported implementation names.
const (
	NormalizeCharFilterName = "unicodetext.NormalizeCharFilterFactory"
	LowerCaseFilterName     = "unicodetext.LowerCaseFilterFactory"
	LetterTokenizerName     = "unicodetext.LetterTokenizerFactory"
)

// NewModule returns the module table with every implementation provided.
func NewModule() (*goanalysis.StaticModule, error) {
	m := goanalysis.NewModule(ModuleName)
	if err := m.ProvideCharFilter(NormalizeCharFilterName, NewNormalizeCharFilterFactory); err != nil {
		return nil, err
	}
	if err := m.ProvideTokenFilter(LowerCaseFilterName, NewLowerCaseFilterFactory); err != nil {
		return nil, err
	}
	if err := m.ProvideTokenizer(LetterTokenizerName, NewLetterTokenizerFactory); err != nil {
		return nil, err
	}
	return m, nil
}

// NormalizeCharFilterFactory applies a Unicode normalization form or width
// folding to the character stream.
//
// Settings:
//
//	form: nfc | nfd | nfkc | nfkd | width   (default nfkc)
type NormalizeCharFilterFactory struct {
	name           string
	form           string
	newTransformer func() transform.Transformer
}

// NewNormalizeCharFilterFactory implements the construction contract.
func NewNormalizeCharFilterFactory(_ goanalysis.IndexSettings, _ goanalysis.Environment, name string, settings goanalysis.Settings) (goanalysis.CharFilterFactory, error) {
	form := strings.ToLower(settings.GetString("form", "nfkc"))

	var mk func() transform.Transformer
	switch form {
	case "nfc":
		mk = func() transform.Transformer { return norm.NFC }
	case "nfd":
		mk = func() transform.Transformer { return norm.NFD }
	case "nfkc":
		mk = func() transform.Transformer { return norm.NFKC }
	case "nfkd":
		mk = func() transform.Transformer { return norm.NFKD }
	case "width":
		mk = func() transform.Transformer { return width.Fold }
	default:
		return nil, fmt.Errorf("unsupported normalization form %q", form)
	}

	return &NormalizeCharFilterFactory{name: name, form: form, newTransformer: mk}, nil
}

// Name implements goanalysis.CharFilterFactory.
func (f *NormalizeCharFilterFactory) Name() string { return f.name }

// Form returns the configured normalization form.
func (f *NormalizeCharFilterFactory) Form() string { return f.form }

// Create implements goanalysis.CharFilterFactory.
func (f *NormalizeCharFilterFactory) Create(r io.Reader) io.Reader {
	return transform.NewReader(r, f.newTransformer())
}

// LowerCaseFilterFactory lower-cases token terms using language-specific
// case mapping rules.
//
// Settings:
//
//	language: BCP 47 tag (default und)
type LowerCaseFilterFactory struct {
	name string
	tag  language.Tag
}

// NewLowerCaseFilterFactory implements the construction contract.
func NewLowerCaseFilterFactory(_ goanalysis.IndexSettings, _ goanalysis.Environment, name string, settings goanalysis.Settings) (goanalysis.TokenFilterFactory, error) {
	tag, err := language.Parse(settings.GetString("language", "und"))
	if err != nil {
		return nil, fmt.Errorf("invalid language setting: %w", err)
	}
	return &LowerCaseFilterFactory{name: name, tag: tag}, nil
}

// Name implements goanalysis.TokenFilterFactory.
func (f *LowerCaseFilterFactory) Name() string { return f.name }

// Create implements goanalysis.TokenFilterFactory. Each stream gets its own
// Caser since a Caser is not safe for concurrent use.
func (f *LowerCaseFilterFactory) Create(ts goanalysis.TokenStream) goanalysis.TokenStream {
	return &lowerCaseFilter{input: ts, caser: cases.Lower(f.tag)}
}

type lowerCaseFilter struct {
	input goanalysis.TokenStream
	caser cases.Caser
	token goanalysis.Token
}

func (l *lowerCaseFilter) IncrementToken() (bool, error) {
	ok, err := l.input.IncrementToken()
	if err != nil || !ok {
		l.token = goanalysis.Token{}
		return ok, err
	}
	l.token = l.input.Token()
	l.token.Term = l.caser.String(l.token.Term)
	return true, nil
}

func (l *lowerCaseFilter) Token() goanalysis.Token { return l.token }

func (l *lowerCaseFilter) Reset() error {
	l.token = goanalysis.Token{}
	l.caser.Reset()
	return l.input.Reset()
}

func (l *lowerCaseFilter) Close() error { return l.input.Close() }
