// Package botok provides a dictionary-based Tibetan word tokenizer.
//
// botok segments Tibetan Unicode text into typed word tokens carrying
// part-of-speech, lemma, frequency, and morphological metadata:
//   - Character-level classification over the Tibetan block
//   - Deterministic chunking that survives stray spaces and missing tseks
//   - Longest-match segmentation against a syllable trie
//   - Auto-inflection of dictionary entries over the closed particle table,
//     with the particle split back out of matched words
//
// Basic usage:
//
//	// Build a trie from TSV data (form, pos, lemma, sense, freq)
//	tsv := "བཀྲ་ཤིས\tNOUN\t\t\t1000\nབདེ་ལེགས\tNOUN\t\t\t500"
//	tk := botok.FromTSV(tsv)
//
//	tokens := tk.Tokenize("བཀྲ་ཤིས་བདེ་ལེགས།")
//	for _, t := range tokens {
//	    fmt.Println(t.Text, t.POS)
//	}
//
// Dictionary-free syllable segmentation:
//
//	tokens := botok.SimpleTokenize("བཀྲ་ཤིས་བདེ་ལེགས།")
//
// A Tokenizer only reads its trie, so one trie — built once — can back
// any number of tokenizers and goroutines concurrently. Input is
// NFC-normalized before chunking; token byte offsets refer to the
// normalized form, and concatenating token texts in order reproduces it
// exactly, apart from leading whitespace, which is dropped.
package botok

import (
	"github.com/OpenPecha/botok-go/token"
	"github.com/OpenPecha/botok-go/tokenizer"
	"github.com/OpenPecha/botok-go/trie"
)

// Re-exported pipeline types. The subpackages hold the implementations;
// most callers only ever need these names.
type (
	// Token is a single tokenized unit of text.
	Token = token.Token
	// Sense is one dictionary reading of a word.
	Sense = token.Sense
	// ChunkType classifies tokens by script content.
	ChunkType = token.ChunkType
	// Config controls tokenization behavior.
	Config = tokenizer.Config
	// Sentence is a token range judged to form one sentence.
	Sentence = tokenizer.Sentence
	// Paragraph aggregates consecutive sentences.
	Paragraph = tokenizer.Paragraph
)

// Chunk types carried on tokens.
const (
	Text  = token.Text
	Punct = token.Punct
	Num   = token.Num
	Sym   = token.Sym
	Latin = token.Latin
	Cjk   = token.Cjk
	Other = token.Other
)

// NoPOS tags syllables not found in the dictionary.
const NoPOS = tokenizer.NoPOS

// DefaultConfig returns the default tokenization configuration:
// affix splitting on, spaces-as-punct off.
func DefaultConfig() Config {
	return tokenizer.DefaultConfig()
}

// Tokenizer segments Tibetan text against a dictionary trie.
//
// A Tokenizer is safe for concurrent use as long as its trie is not
// mutated.
type Tokenizer struct {
	inner *tokenizer.Tokenizer
}

// NewTokenizer returns a tokenizer reading from t. The trie is shared by
// reference, never copied.
func NewTokenizer(t *trie.Trie) *Tokenizer {
	return &Tokenizer{inner: tokenizer.New(t)}
}

// FromTSV builds a trie from one dictionary TSV blob and returns a
// tokenizer over it. Inflection is enabled, so affixed surface forms
// match and split.
//
// Example:
//
//	tk := botok.FromTSV("བཀྲ་ཤིས\tNOUN\t\t\t1000")
//	tokens := tk.Tokenize("བཀྲ་ཤིསར་")
func FromTSV(tsv string) *Tokenizer {
	builder := trie.NewInflectingBuilder()
	builder.LoadTSV(tsv)
	return NewTokenizer(builder.Build())
}

// Trie returns the dictionary trie backing the tokenizer, for sharing
// with further tokenizers.
func (t *Tokenizer) Trie() *trie.Trie {
	return t.inner.Trie()
}

// Tokenize segments text with the default configuration.
func (t *Tokenizer) Tokenize(text string) []Token {
	return t.inner.Tokenize(text)
}

// TokenizeWithConfig segments text with explicit options.
func (t *Tokenizer) TokenizeWithConfig(text string, cfg Config) []Token {
	return t.inner.TokenizeWithConfig(text, cfg)
}

// TokenizeRaw segments text without the post-processing passes (no affix
// split, dagdra merge, or lemma/sense defaulting).
func (t *Tokenizer) TokenizeRaw(text string) []Token {
	return t.inner.TokenizeRaw(text)
}

// SimpleTokenize segments text into syllables without a dictionary.
func SimpleTokenize(text string) []Token {
	return tokenizer.SimpleTokenize(text)
}

// Sentences groups tokens into sentences using the lexical boundary
// heuristics.
func Sentences(tokens []Token) []Sentence {
	return tokenizer.Sentences(tokens)
}

// Paragraphs groups tokens into paragraphs of sentences.
func Paragraphs(tokens []Token) []Paragraph {
	return tokenizer.Paragraphs(tokens)
}
