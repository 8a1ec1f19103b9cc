package tokenizer

import (
	"sort"
	"strings"

	"github.com/OpenPecha/botok-go/syllable"
	"github.com/OpenPecha/botok-go/token"
)

// ApplyModifiers runs the post-processing passes over tokens and returns
// the modified list.
//
// Order matters: the affix split runs before the dagdra merge so that the
// merge scan sees particle-free hosts, and lemma defaulting runs after
// both so that it sees final syllable lists.
func ApplyModifiers(tokens []token.Token, splitAffixes bool) []token.Token {
	if splitAffixes {
		tokens = SplitAffixed(tokens)
	}
	tokens = MergeDagdra(tokens)
	DefaultLemmas(tokens)
	DefaultSenses(tokens)
	return tokens
}

// SplitAffixed splits every token carrying affixation data into a host
// token and a particle token.
//
// A token is split when its dictionary entry records an affixation, no
// sense suppresses the split (a sense with Affixed=false means the same
// surface form is also a plain word), it has at least two syllables, and
// the final syllable is at least as long as the particle.
func SplitAffixed(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		host, particle, ok := splitAtAffix(&t)
		if !ok {
			out = append(out, t)
			continue
		}
		out = append(out, host, particle)
	}
	return out
}

func splitAtAffix(t *token.Token) (host, particle token.Token, ok bool) {
	if t.Affixation == nil || len(t.Syls) < 2 {
		return token.Token{}, token.Token{}, false
	}
	for _, s := range t.Senses {
		if !s.Affixed {
			return token.Token{}, token.Token{}, false
		}
	}

	affixLen := t.Affixation.Len
	last := []rune(t.Syls[len(t.Syls)-1])
	if len(last) < affixLen {
		return token.Token{}, token.Token{}, false
	}

	hostSyl := string(last[:len(last)-affixLen])
	particleSyl := string(last[len(last)-affixLen:])

	hostSyls := append([]string(nil), t.Syls[:len(t.Syls)-1]...)
	if hostSyl != "" {
		hostSyls = append(hostSyls, hostSyl)
	}

	// The particle ends the final syllable; only its tsek and transparent
	// characters can follow it in the token text, so its last occurrence
	// marks the cut. Cutting the token text itself keeps both halves exact
	// byte ranges of the input.
	cut := strings.LastIndex(t.Text, particleSyl)
	if cut < 0 {
		return token.Token{}, token.Token{}, false
	}
	hostText := t.Text[:cut]

	host = token.New(hostText, t.Start, len(hostText), token.Text)
	host.Syls = hostSyls
	host.POS = t.POS
	host.Lemma = t.Lemma
	host.Freq = t.Freq
	host.IsAffixHost = true
	host.Senses = t.Senses

	particleText := t.Text[cut:]
	particle = token.New(particleText, t.Start+cut, len(particleText), token.Text)
	particle.Syls = []string{particleSyl}
	particle.POS = "PART"
	particle.IsAffix = true

	return host, particle, true
}

// MergeDagdra merges dagdra particle tokens (པ་ པོ་ བ་ བོ་) into the
// preceding text token. After a merge the new token is checked against
// its next neighbor again, so chains of particles collapse in one pass.
func MergeDagdra(tokens []token.Token) []token.Token {
	if len(tokens) <= 1 {
		return tokens
	}
	i := 0
	for i < len(tokens)-1 {
		cur, next := &tokens[i], &tokens[i+1]
		if cur.Type == token.Text && next.Type == token.Text &&
			syllable.IsDagdra(next.TextCleaned()) {
			tokens[i] = mergeTokens(cur, next)
			tokens = append(tokens[:i+1], tokens[i+2:]...)
			continue
		}
		i++
	}
	return tokens
}

func mergeTokens(first, second *token.Token) token.Token {
	merged := token.New(first.Text+second.Text, first.Start,
		first.Len+second.Len, token.Text)
	merged.Syls = append(append([]string(nil), first.Syls...), second.Syls...)
	merged.POS = first.POS
	merged.Freq = first.Freq
	merged.HasMergedDagdra = true
	merged.Lemma = merged.TextCleaned()
	return merged
}

// DefaultLemmas fills in the lemma of every token that has syllables but
// no dictionary lemma, using the cleaned text.
func DefaultLemmas(tokens []token.Token) {
	for i := range tokens {
		t := &tokens[i]
		if t.Lemma == "" && len(t.Syls) > 0 {
			t.Lemma = t.TextCleaned()
		}
	}
}

// DefaultSenses sorts multi-sense tokens by descending frequency and
// adopts the best sense's POS when the token has none.
func DefaultSenses(tokens []token.Token) {
	for i := range tokens {
		t := &tokens[i]
		if len(t.Senses) < 2 {
			continue
		}
		sort.SliceStable(t.Senses, func(a, b int) bool {
			return t.Senses[a].Freq > t.Senses[b].Freq
		})
		if t.POS == "" {
			t.POS = t.Senses[0].POS
		}
	}
}
