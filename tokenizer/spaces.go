package tokenizer

import (
	"strings"

	"github.com/OpenPecha/botok-go/token"
)

// splitSpaces re-emits whitespace buried inside text tokens as separate
// punctuation tokens. Chunking attaches stray spaces to the syllable they
// follow; some callers want them back out as their own tokens.
func splitSpaces(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Type == token.Text && strings.ContainsAny(t.Text, " \t\n\r") {
			out = append(out, splitTokenOnSpaces(&t)...)
			continue
		}
		out = append(out, t)
	}
	return out
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// splitTokenOnSpaces cuts one token into alternating text and whitespace
// tokens. Byte offsets stay consistent with the original token's range.
func splitTokenOnSpaces(t *token.Token) []token.Token {
	var out []token.Token
	text := t.Text

	emitText := func(lo, hi int) {
		part := text[lo:hi]
		tok := token.New(part, t.Start+lo, hi-lo, token.Text)
		// Keep the syllables that survived into this fragment.
		for _, syl := range t.Syls {
			if strings.Contains(part, syl) {
				tok.Syls = append(tok.Syls, syl)
			}
		}
		out = append(out, tok)
	}
	emitSpace := func(lo, hi int) {
		out = append(out, token.New(text[lo:hi], t.Start+lo, hi-lo, token.Punct))
	}

	segStart := 0
	inSpace := false
	for i := 0; i < len(text); i++ {
		if isSpaceByte(text[i]) != inSpace {
			if i > segStart {
				if inSpace {
					emitSpace(segStart, i)
				} else {
					emitText(segStart, i)
				}
			}
			segStart = i
			inSpace = !inSpace
		}
	}
	if segStart < len(text) {
		if inSpace {
			emitSpace(segStart, len(text))
		} else {
			emitText(segStart, len(text))
		}
	}
	return out
}
