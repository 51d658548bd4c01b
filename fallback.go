// fallback.go: Inert default behaviors bound when no delegate is available
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package goanalysis

import (
	"io"
)

// passthroughCharFilter returns the reader it is given.
type passthroughCharFilter struct {
	name string
}

func (p passthroughCharFilter) Name() string { return p.name }

func (p passthroughCharFilter) Create(r io.Reader) io.Reader { return r }

// passthroughTokenFilter returns the stream it is given.
type passthroughTokenFilter struct {
	name string
}

func (p passthroughTokenFilter) Name() string { return p.name }

func (p passthroughTokenFilter) Create(ts TokenStream) TokenStream { return ts }

// emptyTokenizerFactory hands out EmptyTokenizer instances.
type emptyTokenizerFactory struct {
	name string
}

func (e emptyTokenizerFactory) Name() string { return e.name }

func (e emptyTokenizerFactory) Create() Tokenizer { return NewEmptyTokenizer() }

// EmptyTokenizer is the fallback tokenizer. It has a single state,
// exhausted: IncrementToken never yields a token, whatever the input.
// A field analyzed with it produces zero terms instead of failing.
type EmptyTokenizer struct {
	input io.Reader
}

// NewEmptyTokenizer creates an exhausted tokenizer.
func NewEmptyTokenizer() *EmptyTokenizer {
	return &EmptyTokenizer{}
}

// SetReader records the input source. The tokenizer never reads from it.
func (e *EmptyTokenizer) SetReader(r io.Reader) {
	e.input = r
}

// IncrementToken always reports that no token is available.
func (e *EmptyTokenizer) IncrementToken() (bool, error) {
	return false, nil
}

// Token returns the zero token.
func (e *EmptyTokenizer) Token() Token {
	return Token{}
}

// Reset is a no-op.
func (e *EmptyTokenizer) Reset() error {
	return nil
}

// Close releases the input source, closing it when it is an io.Closer.
func (e *EmptyTokenizer) Close() error {
	input := e.input
	e.input = nil
	if c, ok := input.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
