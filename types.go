// types.go: Core analysis types shared by registry, factories and modules
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package goanalysis

import (
	"fmt"
	"io"
)

// Kind identifies the pipeline stage an extension point plugs into.
type Kind int

const (
	// KindCharFilter rewrites the character stream before tokenization.
	KindCharFilter Kind = iota
	// KindTokenFilter rewrites the token stream produced by a tokenizer.
	KindTokenFilter
	// KindTokenizer splits a character stream into tokens.
	KindTokenizer
)

// String returns the string representation of the extension kind.
func (k Kind) String() string {
	switch k {
	case KindCharFilter:
		return "char_filter"
	case KindTokenFilter:
		return "token_filter"
	case KindTokenizer:
		return "tokenizer"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Settings is an untyped key-value bag. The core forwards it to delegate
// constructors as-is and never validates its contents.
type Settings map[string]any

// Get returns the raw value stored under key.
func (s Settings) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s[key]
	return v, ok
}

// GetString returns the string stored under key, or def when the key is
// missing or not a string.
func (s Settings) GetString(key, def string) string {
	if v, ok := s.Get(key); ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return def
}

// GetBool returns the bool stored under key, or def.
func (s Settings) GetBool(key string, def bool) bool {
	if v, ok := s.Get(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// IndexSettings is the index-level configuration handed to constructors.
type IndexSettings struct {
	Index    string   `json:"index" yaml:"index"`
	UUID     string   `json:"uuid" yaml:"uuid"`
	Settings Settings `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// Environment is the node-level environment handed to constructors.
type Environment struct {
	HomeDir   string   `json:"home_dir" yaml:"home_dir"`
	ConfigDir string   `json:"config_dir" yaml:"config_dir"`
	Settings  Settings `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// ConstructionArgs is the opaque argument tuple forwarded verbatim to
// whichever constructor a delegating factory invokes.
type ConstructionArgs struct {
	Index    IndexSettings
	Env      Environment
	Name     string
	Settings Settings
}

// Token is the attribute set of the current position of a TokenStream.
type Token struct {
	Term        string `json:"term"`
	StartOffset int    `json:"start_offset"`
	EndOffset   int    `json:"end_offset"`
	Position    int    `json:"position"`
	Type        string `json:"type,omitempty"`
}

// TokenStream enumerates tokens. IncrementToken advances to the next token
// and reports whether one is available; Token returns its attributes.
type TokenStream interface {
	IncrementToken() (bool, error)
	Token() Token
	Reset() error
	io.Closer
}

// Tokenizer is a TokenStream whose input is a character stream.
type Tokenizer interface {
	TokenStream
	SetReader(r io.Reader)
}

// CharFilterFactory wraps a character stream with a filtering reader.
type CharFilterFactory interface {
	Name() string
	Create(r io.Reader) io.Reader
}

// TokenFilterFactory wraps a token stream with a filtering stream.
type TokenFilterFactory interface {
	Name() string
	Create(ts TokenStream) TokenStream
}

// TokenizerFactory creates fresh tokenizer instances.
type TokenizerFactory interface {
	Name() string
	Create() Tokenizer
}

// Constructor is the fixed four-parameter construction contract every
// delegate implementation must satisfy: index configuration, environment
// configuration, instance name and raw settings, in that order.
type Constructor[T any] func(index IndexSettings, env Environment, name string, settings Settings) (T, error)

// CharFilterConstructor constructs a CharFilterFactory delegate.
type CharFilterConstructor = Constructor[CharFilterFactory]

// TokenFilterConstructor constructs a TokenFilterFactory delegate.
type TokenFilterConstructor = Constructor[TokenFilterFactory]

// TokenizerConstructor constructs a TokenizerFactory delegate.
type TokenizerConstructor = Constructor[TokenizerFactory]
