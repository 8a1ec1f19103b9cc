// Package tokenizer turns Tibetan text into word tokens.
//
// The pipeline is: NFC-normalize the input, chunk it by character
// category, walk the syllable chunks against the dictionary trie choosing
// the longest match at each position, then run the modifier passes (affix
// split, dagdra merge, lemma and sense defaulting).
//
// A Tokenizer holds a reference to an immutable trie and carries no other
// state, so a single Tokenizer — or several sharing one trie — may be used
// from any number of goroutines concurrently.
package tokenizer

import (
	"golang.org/x/text/unicode/norm"

	"github.com/OpenPecha/botok-go/chunk"
	"github.com/OpenPecha/botok-go/token"
	"github.com/OpenPecha/botok-go/trie"
)

// NoPOS is the part-of-speech tag given to syllables not found in the
// dictionary.
const NoPOS = "NO_POS"

// Config controls tokenization behavior.
type Config struct {
	// SplitAffixes splits fused grammatical particles into their own
	// tokens. Default: true.
	SplitAffixes bool

	// SpacesAsPunct re-emits whitespace inside text tokens as separate
	// punctuation tokens. Default: false.
	SpacesAsPunct bool
}

// DefaultConfig returns the default tokenization configuration.
func DefaultConfig() Config {
	return Config{SplitAffixes: true}
}

// Tokenizer segments text against a dictionary trie.
type Tokenizer struct {
	trie *trie.Trie
}

// New returns a tokenizer reading from t. The trie is shared, not copied;
// it must not be mutated while the tokenizer is in use.
func New(t *trie.Trie) *Tokenizer {
	return &Tokenizer{trie: t}
}

// Trie returns the dictionary trie backing the tokenizer.
func (tk *Tokenizer) Trie() *trie.Trie {
	return tk.trie
}

// Tokenize segments text with the default configuration.
func (tk *Tokenizer) Tokenize(text string) []token.Token {
	return tk.TokenizeWithConfig(text, DefaultConfig())
}

// TokenizeWithConfig segments text.
//
// Byte positions in the returned tokens refer to the NFC-normalized form
// of text; concatenating the token texts in order reproduces it exactly,
// except for leading whitespace, which the chunker drops.
func (tk *Tokenizer) TokenizeWithConfig(text string, cfg Config) []token.Token {
	normalized := norm.NFC.String(text)
	chunks := chunk.New(normalized).Chunks()
	tokens := tk.tokenizeChunks(chunks, normalized)

	if cfg.SpacesAsPunct {
		tokens = splitSpaces(tokens)
	}
	return ApplyModifiers(tokens, cfg.SplitAffixes)
}

// TokenizeRaw segments text without running the modifier pipeline.
func (tk *Tokenizer) TokenizeRaw(text string) []token.Token {
	normalized := norm.NFC.String(text)
	chunks := chunk.New(normalized).Chunks()
	return tk.tokenizeChunks(chunks, normalized)
}

func (tk *Tokenizer) tokenizeChunks(chunks []chunk.Chunk, text string) []token.Token {
	var tokens []token.Token
	i := 0
	for i < len(chunks) {
		c := &chunks[i]
		if c.Syl == "" {
			tokens = append(tokens, token.New(
				text[c.Start:c.Start+c.Len], c.Start, c.Len, c.Type))
			i++
			continue
		}
		tok, next := tk.longestMatch(chunks, text, i)
		tokens = append(tokens, tok)
		i = next
	}
	return tokens
}

// longestMatch walks the trie from chunk i, remembering the deepest match
// node seen, and emits one token for the longest dictionary word starting
// there. With no match at all, the first syllable becomes an unknown-word
// token tagged NoPOS; there is no backtracking past it.
func (tk *Tokenizer) longestMatch(chunks []chunk.Chunk, text string, start int) (token.Token, int) {
	var node *trie.Node
	var syls []string
	matchIdx := -1
	var matchNode *trie.Node

	walker := start
	for walker < len(chunks) {
		c := &chunks[walker]
		if c.Syl == "" {
			break
		}
		next := tk.trie.Walk(c.Syl, node)
		if next == nil {
			break
		}
		node = next
		syls = append(syls, c.Syl)
		if next.IsMatch() {
			matchIdx = walker
			matchNode = next
		}
		walker++
	}

	if matchIdx < 0 {
		c := &chunks[start]
		tok := token.New(text[c.Start:c.Start+c.Len], c.Start, c.Len, token.Text)
		tok.Syls = []string{c.Syl}
		tok.POS = NoPOS
		return tok, start + 1
	}

	first := &chunks[start]
	last := &chunks[matchIdx]
	end := last.Start + last.Len
	tok := token.New(text[first.Start:end], first.Start, end-first.Start, token.Text)
	tok.Syls = syls[:matchIdx-start+1]

	if data := matchNode.Data; data != nil {
		tok.POS = data.POS
		tok.Lemma = data.Lemma
		tok.Freq = data.Freq
		tok.IsSkrt = data.Skrt
		tok.Senses = append([]token.Sense(nil), data.Senses...)
		if data.Affixation != nil {
			a := *data.Affixation
			tok.Affixation = &a
		}
	}
	return tok, matchIdx + 1
}

// SimpleTokenize segments text into syllables without a dictionary: every
// chunk becomes one token.
func SimpleTokenize(text string) []token.Token {
	normalized := norm.NFC.String(text)
	chunks := chunk.New(normalized).Chunks()

	tokens := make([]token.Token, 0, len(chunks))
	for _, c := range chunks {
		tok := token.New(normalized[c.Start:c.Start+c.Len], c.Start, c.Len, c.Type)
		if c.Syl != "" {
			tok.Syls = []string{c.Syl}
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
