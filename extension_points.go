// extension_points.go: Built-in analysis extension points and their candidates
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package goanalysis

// ExtensionPoint is a named slot in the analysis pipeline together with the
// implementations that may fill it, in priority order.
type ExtensionPoint struct {
	ID         string
	Kind       Kind
	Candidates CandidateList
	Deprecated bool
}

// Candidate names exported by the Japanese (kuromoji) analysis modules.
const (
	kuromojiExtPrefix  = "codelibs.kuromoji."
	kuromojiCorePrefix = "opensearch."
)

func kuromoji(factory string) CandidateList {
	return CandidateList{kuromojiExtPrefix + factory, kuromojiCorePrefix + factory}
}

// DefaultExtensionPoints returns the extension points exposed by the
// analysis plugin.
func DefaultExtensionPoints() []ExtensionPoint {
	return []ExtensionPoint{
		// char filters
		{
			ID:         "fess_japanese_iteration_mark",
			Kind:       KindCharFilter,
			Candidates: CandidateList{kuromojiExtPrefix + "KuromojiIterationMarkCharFilterFactory"},
		},
		{
			ID:         "fess_traditional_chinese_convert",
			Kind:       KindCharFilter,
			Candidates: CandidateList{"opensearch.STConvertCharFilterFactory"},
		},

		// token filters
		{ID: "fess_japanese_baseform", Kind: KindTokenFilter, Candidates: kuromoji("KuromojiBaseFormFilterFactory")},
		{ID: "fess_japanese_part_of_speech", Kind: KindTokenFilter, Candidates: kuromoji("KuromojiPartOfSpeechFilterFactory")},
		{ID: "fess_japanese_readingform", Kind: KindTokenFilter, Candidates: kuromoji("KuromojiReadingFormFilterFactory")},
		{ID: "fess_japanese_stemmer", Kind: KindTokenFilter, Candidates: kuromoji("KuromojiKatakanaStemmerFactory")},

		// tokenizers
		{ID: "fess_japanese_tokenizer", Kind: KindTokenizer, Candidates: kuromoji("KuromojiTokenizerFactory")},
		{ID: "fess_japanese_reloadable_tokenizer", Kind: KindTokenizer, Candidates: kuromoji("KuromojiTokenizerFactory"), Deprecated: true},
		{ID: "fess_korean_tokenizer", Kind: KindTokenizer, Candidates: CandidateList{"opensearch.NoriTokenizerFactory"}},
		{ID: "fess_vietnamese_tokenizer", Kind: KindTokenizer, Candidates: CandidateList{"opensearch.VietnameseTokenizerFactory"}},
		{ID: "fess_simplified_chinese_tokenizer", Kind: KindTokenizer, Candidates: CandidateList{"opensearch.SmartChineseTokenizerFactory"}},
	}
}

// SystemIndexDescriptor declares an index pattern reserved for the system.
type SystemIndexDescriptor struct {
	IndexPattern string `json:"index_pattern" yaml:"index_pattern"`
	Description  string `json:"description" yaml:"description"`
}

// DefaultSystemIndexDescriptors returns the system indices the plugin declares.
func DefaultSystemIndexDescriptors() []SystemIndexDescriptor {
	return []SystemIndexDescriptor{
		{IndexPattern: ".crawler.*", Description: "Contains crawler data"},
		{IndexPattern: ".suggest", Description: "Contains suggest setting data"},
		{IndexPattern: ".suggest_analyzer", Description: "Contains suggest analyzer data"},
		{IndexPattern: ".suggest_array.*", Description: "Contains suggest setting data"},
		{IndexPattern: ".suggest_badword.*", Description: "Contains suggest badword data"},
		{IndexPattern: ".suggest_elevate.*", Description: "Contains suggest elevate data"},
		{IndexPattern: ".fess_config.*", Description: "Contains config data for Fess"},
		{IndexPattern: ".fess_user.*", Description: "Contains user data for Fess"},
	}
}
