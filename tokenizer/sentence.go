package tokenizer

import (
	"strings"

	"github.com/OpenPecha/botok-go/syllable"
	"github.com/OpenPecha/botok-go/token"
)

// The sentence grouper is lexical: these constant sets are the
// specification, and changing them changes observable output.
var (
	// endingParticles close a sentence when followed by punctuation.
	endingParticles = []string{
		"གོ་", "ངོ་", "དོ་", "ནོ་", "བོ་", "མོ་", "འོ་", "རོ་", "ལོ་", "སོ་", "ཏོ་",
	}

	// endingWords close a sentence like ending particles do.
	endingWords = []string{"ཅིག་", "ཤོག་"}

	// endingVerbs mark a likely sentence end before punctuation or a
	// clause boundary.
	endingVerbs = []string{
		"ཡིན་", "ཡོད་", "མིན་", "མེད་", "འགྱུར་", "ལྡན་", "བགྱི་", "བྱ་", "བཞུགས་", "འདུག་", "སོང་",
	}

	// clauseBoundaries split clauses inside long sentences.
	clauseBoundaries = []string{"སྟེ་", "ཏེ་", "དེ་", "ནས་", "ན་", "ལ་", "ཞིང་"}
)

// Sentence is a contiguous range of tokens judged to form one sentence.
type Sentence struct {
	// Tokens are the tokens of the sentence.
	Tokens []token.Token
	// WordCount is the number of TEXT tokens.
	WordCount int
	// StartIdx and EndIdx delimit the sentence in the original token
	// list; EndIdx is inclusive.
	StartIdx, EndIdx int
}

// Text concatenates the sentence's token texts.
func (s *Sentence) Text() string {
	var sb strings.Builder
	for i := range s.Tokens {
		sb.WriteString(s.Tokens[i].Text)
	}
	return sb.String()
}

// NormalizedText returns the sentence text with the archaic shad ༑
// replaced by ། and runs of whitespace collapsed to single spaces.
func (s *Sentence) NormalizedText() string {
	text := strings.ReplaceAll(s.Text(), "༑", "།")
	return strings.Join(strings.Fields(text), " ")
}

// Paragraph aggregates consecutive sentences.
type Paragraph struct {
	Sentences []Sentence
	WordCount int
}

// Text concatenates the paragraph's sentence texts.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for i := range p.Sentences {
		sb.WriteString(p.Sentences[i].Text())
	}
	return sb.String()
}

// Sentences groups a token list into sentences using the lexical boundary
// heuristics: ending particle + punctuation, clause boundary + punctuation,
// ending verb + punctuation, and — inside long segments — verb + clause
// boundary. Short verb-less sentences are joined to a neighbor.
func Sentences(tokens []token.Token) []Sentence {
	if len(tokens) == 0 {
		return nil
	}

	indices := sentenceIndices(tokens)
	sentences := make([]Sentence, 0, len(indices))
	for _, r := range indices {
		sent := Sentence{
			Tokens:   append([]token.Token(nil), tokens[r.start:r.end+1]...),
			StartIdx: r.start,
			EndIdx:   r.end,
		}
		for i := range sent.Tokens {
			if sent.Tokens[i].Type == token.Text {
				sent.WordCount++
			}
		}
		sentences = append(sentences, sent)
	}
	return sentences
}

// Paragraph thresholds: a paragraph closes once it holds this many words,
// and is force-closed before it would exceed the max.
const (
	paragraphThreshold = 70
	paragraphMax       = 150
)

// Paragraphs groups a token list into paragraphs of sentences.
func Paragraphs(tokens []token.Token) []Paragraph {
	sentences := Sentences(tokens)
	if len(sentences) == 0 {
		return nil
	}

	var paragraphs []Paragraph
	var current []Sentence
	words := 0

	for _, sent := range sentences {
		if words+sent.WordCount > paragraphMax && len(current) > 0 {
			paragraphs = append(paragraphs, Paragraph{Sentences: current, WordCount: words})
			current, words = nil, 0
		}
		words += sent.WordCount
		current = append(current, sent)
		if words >= paragraphThreshold {
			paragraphs = append(paragraphs, Paragraph{Sentences: current, WordCount: words})
			current, words = nil, 0
		}
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, Paragraph{Sentences: current, WordCount: words})
	}
	return paragraphs
}

type tokenRange struct {
	start, end int // inclusive
}

func sentenceIndices(tokens []token.Token) []tokenRange {
	boundaries := findBoundaries(tokens, isEndingParticleAndPunct)
	boundaries = refineBoundaries(tokens, boundaries, isClauseBoundaryAndPunct)
	boundaries = refineBoundaries(tokens, boundaries, isVerbAndPunct)
	boundaries = refineLongSentences(tokens, boundaries, isVerbAndClauseBoundary, 30)
	return joinNoVerbSentences(tokens, boundaries, 4)
}

// findBoundaries cuts the token list wherever test holds for a
// neighboring pair.
func findBoundaries(tokens []token.Token, test func(a, b *token.Token) bool) []tokenRange {
	var ranges []tokenRange
	start := 0
	for i := 1; i < len(tokens); i++ {
		if test(&tokens[i-1], &tokens[i]) {
			ranges = append(ranges, tokenRange{start, i})
			start = i + 1
		}
	}
	if start < len(tokens) {
		ranges = append(ranges, tokenRange{start, len(tokens) - 1})
	}
	if len(ranges) == 0 {
		ranges = append(ranges, tokenRange{0, len(tokens) - 1})
	}
	return ranges
}

// refineBoundaries re-cuts every range at pairs where test holds.
func refineBoundaries(tokens []token.Token, ranges []tokenRange, test func(a, b *token.Token) bool) []tokenRange {
	var out []tokenRange
	for _, r := range ranges {
		segStart := r.start
		for i := r.start + 1; i <= r.end && i < len(tokens); i++ {
			if test(&tokens[i-1], &tokens[i]) {
				out = append(out, tokenRange{segStart, i})
				segStart = i + 1
			}
		}
		if segStart <= r.end {
			out = append(out, tokenRange{segStart, r.end})
		}
	}
	return out
}

// refineLongSentences applies refineBoundaries only to ranges longer than
// threshold tokens.
func refineLongSentences(tokens []token.Token, ranges []tokenRange, test func(a, b *token.Token) bool, threshold int) []tokenRange {
	var out []tokenRange
	for _, r := range ranges {
		if r.end-r.start+1 <= threshold {
			out = append(out, r)
			continue
		}
		out = append(out, refineBoundaries(tokens, []tokenRange{r}, test)...)
	}
	return out
}

// joinNoVerbSentences merges every verb-less range of at most threshold
// tokens into an adjacent range: forward when the range ends on a clause
// boundary, otherwise backward unless the last token of the previous range
// itself ends in an ending particle. A range closed by particle +
// punctuation ends on the punctuation token, so it still takes the join.
func joinNoVerbSentences(tokens []token.Token, ranges []tokenRange, threshold int) []tokenRange {
	out := append([]tokenRange(nil), ranges...)
	i := 0
	for i < len(out) {
		r := out[i]
		if r.end-r.start+1 > threshold {
			i++
			continue
		}

		hasVerb := false
		for j := r.start; j <= r.end; j++ {
			t := &tokens[j]
			if t.POS == "VERB" && !hasLastSyl(t, syllable.Dagdra) {
				hasVerb = true
				break
			}
		}
		if hasVerb {
			i++
			continue
		}

		if i+1 < len(out) && hasLastSyl(&tokens[r.end], clauseBoundaries) {
			out[i+1].start = r.start
			out = append(out[:i], out[i+1:]...)
			continue
		}
		if i > 0 {
			prevEnd := out[i-1].end
			if !hasLastSyl(&tokens[prevEnd], endingParticles) {
				out[i-1].end = r.end
				out = append(out[:i], out[i+1:]...)
				continue
			}
		}
		i++
	}
	return out
}

// hasLastSyl reports whether the token's final syllable (with its tsek)
// is one of the given patterns.
func hasLastSyl(t *token.Token, patterns []string) bool {
	if len(t.Syls) == 0 {
		return false
	}
	last := t.Syls[len(t.Syls)-1] + string(token.Tsek)
	for _, p := range patterns {
		if last == p {
			return true
		}
	}
	return false
}

func isEndingParticleAndPunct(a, b *token.Token) bool {
	return a.POS == "PART" && hasLastSyl(a, endingParticles) && b.Type == token.Punct
}

func isClauseBoundaryAndPunct(a, b *token.Token) bool {
	return (hasLastSyl(a, clauseBoundaries) || hasLastSyl(a, endingWords)) &&
		b.Type == token.Punct
}

func isVerb(t *token.Token) bool {
	return (t.POS == "VERB" && !hasLastSyl(t, syllable.Dagdra)) ||
		hasLastSyl(t, endingVerbs)
}

func isVerbAndPunct(a, b *token.Token) bool {
	return isVerb(a) && b.Type == token.Punct
}

func isVerbAndClauseBoundary(a, b *token.Token) bool {
	return isVerb(a) && hasLastSyl(b, clauseBoundaries)
}
