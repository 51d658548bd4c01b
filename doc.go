// Package goanalysis provides delegating text-analysis factories for search
// hosts whose language-specific analyzers live in optional modules.
//
// A host exposes stable extension points such as "fess_japanese_tokenizer"
// or "fess_traditional_chinese_convert". Each extension point carries an
// ordered list of fully-qualified implementation names. When the host builds
// a component, a delegating factory asks the capability registry for each
// name in turn, constructs the first one it finds and forwards every later
// call to it. If no candidate is available the factory binds an inert
// fallback: char and token filters pass their input through unchanged, and
// the tokenizer yields no tokens. Index creation never fails because an
// optional module is missing.
//
// Key Features:
//   - Typed registration tables for independently built modules
//   - Two-phase capability registry: sealed at Start, lock-free afterwards
//   - Generic delegating factories for char filters, token filters and tokenizers
//   - Deterministic fallbacks with structured diagnostics
//   - Multi-format configuration (YAML, JSON, TOML) with ${VAR} expansion
//   - Pluggable logging with a zap adapter
//
// Basic Usage:
//
//	// A module registers the constructors it exports
//	kuromoji := goanalysis.NewModule("analysis-kuromoji")
//	_ = kuromoji.ProvideTokenizer("opensearch.KuromojiTokenizerFactory", newKuromojiTokenizer)
//
//	// The host hands its loaded modules to the plugin and seals the inventory
//	plugin, err := goanalysis.NewAnalysisPlugin(goanalysis.ModuleList{kuromoji}, goanalysis.DefaultConfig(), logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := plugin.Start(); err != nil {
//		log.Fatal(err)
//	}
//
//	// Providers are invoked when an index is created
//	factory, err := plugin.Tokenizers()["fess_japanese_tokenizer"](index, env, "ja", settings)
//
// Errors:
// A candidate that is located but cannot be constructed fails with a
// delegation failure; it is never masked by the fallback. Querying the
// registry before Start is an ordering violation. Both are reported as
// *errors.Error values from github.com/agilira/go-errors and can be
// classified with IsDelegationFailure and IsOrderingViolation.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package goanalysis
