// types_test.go: core type tests
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package goanalysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "char_filter", KindCharFilter.String())
	assert.Equal(t, "token_filter", KindTokenFilter.String())
	assert.Equal(t, "tokenizer", KindTokenizer.String())
	assert.Equal(t, "kind(7)", Kind(7).String())
}

func TestSettingsAccessors(t *testing.T) {
	var empty Settings
	_, ok := empty.Get("x")
	assert.False(t, ok)
	assert.Equal(t, "def", empty.GetString("x", "def"))

	s := Settings{"mode": "search", "discard_punctuation": true, "count": 3}
	assert.Equal(t, "search", s.GetString("mode", "normal"))
	assert.Equal(t, "normal", s.GetString("count", "normal"), "non-string values use the default")
	assert.True(t, s.GetBool("discard_punctuation", false))
	assert.False(t, s.GetBool("mode", false))

	v, ok := s.Get("count")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestDefaultExtensionPoints(t *testing.T) {
	points := DefaultExtensionPoints()
	kinds := map[Kind]int{}
	ids := map[string]bool{}
	for _, p := range points {
		kinds[p.Kind]++
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		ids[p.ID] = true
		assert.NotEmpty(t, p.Candidates)
	}
	assert.Equal(t, 2, kinds[KindCharFilter])
	assert.Equal(t, 4, kinds[KindTokenFilter])
	assert.Equal(t, 5, kinds[KindTokenizer])

	for _, p := range points {
		if p.ID == "fess_japanese_stemmer" {
			assert.Equal(t, CandidateList{
				"codelibs.kuromoji.KuromojiKatakanaStemmerFactory",
				"opensearch.KuromojiKatakanaStemmerFactory",
			}, p.Candidates)
		}
	}
}
