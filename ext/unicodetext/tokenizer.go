// tokenizer.go: Letter and digit run tokenizer
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package unicodetext

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	goanalysis "github.com/agilira/go-analysis"
)

// DefaultMaxTokenLength is the longest token, in runes, emitted before a run
// is split.
const DefaultMaxTokenLength = 255

// LetterTokenizerFactory creates tokenizers that emit maximal runs of
// letters, marks and digits. Offsets are byte offsets into the filtered
// input.
//
// Settings:
//
//	max_token_length: positive integer, numeric string accepted (default 255)
type LetterTokenizerFactory struct {
	name   string
	maxLen int
}

// NewLetterTokenizerFactory implements the construction contract.
func NewLetterTokenizerFactory(_ goanalysis.IndexSettings, _ goanalysis.Environment, name string, settings goanalysis.Settings) (goanalysis.TokenizerFactory, error) {
	maxLen := DefaultMaxTokenLength
	if raw, ok := settings.Get("max_token_length"); ok {
		n, err := toInt(raw)
		if err != nil {
			return nil, fmt.Errorf("max_token_length: %w", err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("max_token_length must be positive, got %d", n)
		}
		maxLen = n
	}
	return &LetterTokenizerFactory{name: name, maxLen: maxLen}, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("not an integer: %v", n)
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

// Name implements goanalysis.TokenizerFactory.
func (f *LetterTokenizerFactory) Name() string { return f.name }

// MaxTokenLength returns the configured maximum token length in runes.
func (f *LetterTokenizerFactory) MaxTokenLength() int { return f.maxLen }

// Create implements goanalysis.TokenizerFactory.
func (f *LetterTokenizerFactory) Create() goanalysis.Tokenizer {
	return &LetterTokenizer{maxLen: f.maxLen, position: -1}
}

// LetterTokenizer is the tokenizer produced by LetterTokenizerFactory. The
// input is read fully on the first IncrementToken.
type LetterTokenizer struct {
	maxLen int

	input  io.Reader
	text   string
	loaded bool

	offset   int
	position int
	token    goanalysis.Token
}

// SetReader implements goanalysis.Tokenizer.
func (t *LetterTokenizer) SetReader(r io.Reader) {
	t.input = r
	t.text = ""
	t.loaded = false
	t.offset = 0
	t.position = -1
	t.token = goanalysis.Token{}
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// IncrementToken implements goanalysis.TokenStream.
func (t *LetterTokenizer) IncrementToken() (bool, error) {
	if !t.loaded {
		if t.input == nil {
			return false, nil
		}
		data, err := io.ReadAll(t.input)
		if err != nil {
			return false, err
		}
		t.text = string(data)
		t.loaded = true
	}

	// skip separators
	for t.offset < len(t.text) {
		r, size := utf8.DecodeRuneInString(t.text[t.offset:])
		if isTokenRune(r) {
			break
		}
		t.offset += size
	}
	if t.offset >= len(t.text) {
		t.token = goanalysis.Token{}
		return false, nil
	}

	start := t.offset
	runes := 0
	for t.offset < len(t.text) && runes < t.maxLen {
		r, size := utf8.DecodeRuneInString(t.text[t.offset:])
		if !isTokenRune(r) {
			break
		}
		t.offset += size
		runes++
	}

	t.position++
	t.token = goanalysis.Token{
		Term:        t.text[start:t.offset],
		StartOffset: start,
		EndOffset:   t.offset,
		Position:    t.position,
		Type:        "word",
	}
	return true, nil
}

// Token implements goanalysis.TokenStream.
func (t *LetterTokenizer) Token() goanalysis.Token { return t.token }

// Reset rewinds to the start of the input already read.
func (t *LetterTokenizer) Reset() error {
	t.offset = 0
	t.position = -1
	t.token = goanalysis.Token{}
	return nil
}

// Close releases the input, closing it when it is an io.Closer.
func (t *LetterTokenizer) Close() error {
	input := t.input
	t.input = nil
	t.text = ""
	t.loaded = false
	if c, ok := input.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
