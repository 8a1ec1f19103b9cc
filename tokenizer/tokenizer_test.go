package tokenizer

import (
	"strings"
	"testing"

	"golang.org/x/text/unicode/norm"

	"github.com/OpenPecha/botok-go/token"
	"github.com/OpenPecha/botok-go/trie"
)

func buildTrie(t *testing.T, tsv string, inflect bool) *trie.Trie {
	t.Helper()
	b := trie.NewBuilder().SetInflection(inflect)
	b.LoadTSV(tsv)
	return b.Build()
}

const testDict = "བཀྲ་ཤིས\tNOUN\t\t\t1000\n" +
	"བདེ་ལེགས\tNOUN\t\t\t500\n" +
	"བཀྲ་ཤིས་བདེ་ལེགས\tPHRASE\t\t\t2000"

func TestLongestMatchWins(t *testing.T) {
	tk := New(buildTrie(t, testDict, false))
	tokens := tk.Tokenize("བཀྲ་ཤིས་བདེ་ལེགས།")

	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2: %v", len(tokens), tokens)
	}
	if tokens[0].Text != "བཀྲ་ཤིས་བདེ་ལེགས" {
		t.Errorf("token 0 text = %q", tokens[0].Text)
	}
	if tokens[0].POS != "PHRASE" {
		t.Errorf("token 0 POS = %q, want PHRASE", tokens[0].POS)
	}
	if len(tokens[0].Syls) != 4 {
		t.Errorf("token 0 has %d syls, want 4", len(tokens[0].Syls))
	}
	if tokens[1].Type != token.Punct {
		t.Errorf("token 1 type = %v, want PUNCT", tokens[1].Type)
	}
}

func TestUnknownWord(t *testing.T) {
	tk := New(buildTrie(t, testDict, false))
	tokens := tk.Tokenize("ཀཀ་")

	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1", len(tokens))
	}
	if tokens[0].POS != NoPOS {
		t.Errorf("POS = %q, want %q", tokens[0].POS, NoPOS)
	}
}

func TestMixedKnownUnknown(t *testing.T) {
	tk := New(buildTrie(t, "བཀྲ་ཤིས\tNOUN", false))
	tokens := tk.Tokenize("བཀྲ་ཤིས་ཀཀ་")

	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2: %v", len(tokens), tokens)
	}
	if tokens[0].Text != "བཀྲ་ཤིས་" || tokens[0].POS != "NOUN" {
		t.Errorf("token 0 = %q/%q, want བཀྲ་ཤིས་/NOUN", tokens[0].Text, tokens[0].POS)
	}
	if tokens[1].Text != "ཀཀ་" || tokens[1].POS != NoPOS {
		t.Errorf("token 1 = %q/%q, want ཀཀ་/NO_POS", tokens[1].Text, tokens[1].POS)
	}
}

func TestRepeatedPhrase(t *testing.T) {
	tk := New(buildTrie(t, "ལ་པོ\tNOUN", false))
	tokens := tk.Tokenize("ལ་པོ་ལ་པོ་ལ་པོ་")

	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(tokens), tokens)
	}
	for i, tok := range tokens {
		if tok.Text != "ལ་པོ་" || tok.POS != "NOUN" {
			t.Errorf("token %d = %q/%q, want ལ་པོ་/NOUN", i, tok.Text, tok.POS)
		}
	}
}

func TestMixedScripts(t *testing.T) {
	tk := New(buildTrie(t, "བཀྲ་ཤིས\tNOUN", false))
	tokens := tk.Tokenize("བཀྲ་ཤིས། Hello 你好")

	var order []token.ChunkType
	for _, tok := range tokens {
		order = append(order, tok.Type)
	}
	want := []token.ChunkType{token.Text, token.Punct, token.Latin, token.Cjk}
	if len(order) != len(want) {
		t.Fatalf("got %d tokens (%v), want %d", len(order), order, len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("token %d type = %v, want %v", i, order[i], want[i])
		}
	}
}

func TestAffixSplit(t *testing.T) {
	tk := New(buildTrie(t, "བཀྲ་ཤིས\tNOUN", true))
	tokens := tk.Tokenize("བཀྲ་ཤིསར་")

	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2: %v", len(tokens), tokens)
	}
	host, particle := tokens[0], tokens[1]

	if host.Text != "བཀྲ་ཤིས" || !host.IsAffixHost || host.POS != "NOUN" {
		t.Errorf("host = %q POS=%q affixHost=%v", host.Text, host.POS, host.IsAffixHost)
	}
	if particle.Text != "ར་" || !particle.IsAffix || particle.POS != "PART" {
		t.Errorf("particle = %q POS=%q affix=%v", particle.Text, particle.POS, particle.IsAffix)
	}
	if host.Text+particle.Text != "བཀྲ་ཤིསར་" {
		t.Errorf("split does not round-trip: %q + %q", host.Text, particle.Text)
	}
	if host.Start != 0 || particle.Start != host.Len {
		t.Errorf("positions host=(%d,%d) particle=(%d,%d)",
			host.Start, host.Len, particle.Start, particle.Len)
	}
	if host.Lemma != "བཀྲ་ཤིས" {
		t.Errorf("host lemma = %q, want tsek-less cleaned text", host.Lemma)
	}
}

func TestAffixSplitDisabled(t *testing.T) {
	tk := New(buildTrie(t, "བཀྲ་ཤིས\tNOUN", true))
	tokens := tk.TokenizeWithConfig("བཀྲ་ཤིསར་", Config{SplitAffixes: false})

	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1: %v", len(tokens), tokens)
	}
	if tokens[0].Text != "བཀྲ་ཤིསར་" {
		t.Errorf("token text = %q", tokens[0].Text)
	}
}

// Tokens concatenate back to the NFC input, and every token's byte range
// matches its text.
func TestTokensReconstructInput(t *testing.T) {
	tk := New(buildTrie(t, testDict, true))

	inputs := []string{
		"བཀྲ་ཤིས་བདེ་ལེགས།",
		"བཀྲ་ཤིས། Hello 你好",
		"བཀྲ་ཤིསར་ཀཀ་༡༢༣",
		"བོད་ ཡིག །གཉིས།",
	}
	for _, input := range inputs {
		nfc := norm.NFC.String(input)
		tokens := tk.Tokenize(input)

		var sb strings.Builder
		for _, tok := range tokens {
			sb.WriteString(tok.Text)
			if got := nfc[tok.Start : tok.Start+tok.Len]; got != tok.Text {
				t.Errorf("%q: token range %q != text %q", input, got, tok.Text)
			}
		}
		if sb.String() != nfc {
			t.Errorf("%q: concatenated tokens = %q", input, sb.String())
		}
	}
}

func TestTokenizeRawSkipsModifiers(t *testing.T) {
	tk := New(buildTrie(t, "བཀྲ་ཤིས\tNOUN", true))
	tokens := tk.TokenizeRaw("བཀྲ་ཤིསར་")

	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1 (no affix split): %v", len(tokens), tokens)
	}
	if tokens[0].Affixation == nil {
		t.Error("raw token should keep its affixation data")
	}
	if tokens[0].Lemma != "" {
		t.Error("raw token should have no defaulted lemma")
	}
}

func TestSimpleTokenize(t *testing.T) {
	tokens := SimpleTokenize("བཀྲ་ཤིས་བདེ་ལེགས།")

	if len(tokens) != 5 {
		t.Fatalf("got %d tokens, want 5: %v", len(tokens), tokens)
	}
	wantSyls := []string{"བཀྲ", "ཤིས", "བདེ", "ལེགས"}
	for i, syl := range wantSyls {
		if len(tokens[i].Syls) != 1 || tokens[i].Syls[0] != syl {
			t.Errorf("token %d syls = %v, want [%s]", i, tokens[i].Syls, syl)
		}
	}
	if tokens[4].Type != token.Punct {
		t.Errorf("token 4 type = %v, want PUNCT", tokens[4].Type)
	}
}

func TestSpacesAsPunct(t *testing.T) {
	tk := New(buildTrie(t, "བཀྲ་ཤིས\tNOUN\nབདེ་ལེགས\tNOUN", false))

	cfg := DefaultConfig()
	cfg.SpacesAsPunct = true
	tokens := tk.TokenizeWithConfig("བཀྲ་ཤིས་ བདེ་ལེགས།", cfg)

	var spaceTokens []token.Token
	for _, tok := range tokens {
		if tok.Type == token.Punct && strings.TrimSpace(tok.Text) == "" {
			spaceTokens = append(spaceTokens, tok)
		}
	}
	if len(spaceTokens) == 0 {
		t.Fatalf("no whitespace punct token: %v", tokens)
	}

	// Offsets stay consistent after the split.
	nfc := norm.NFC.String("བཀྲ་ཤིས་ བདེ་ལེགས།")
	var sb strings.Builder
	for _, tok := range tokens {
		if nfc[tok.Start:tok.Start+tok.Len] != tok.Text {
			t.Errorf("token %q misplaced", tok.Text)
		}
		sb.WriteString(tok.Text)
	}
	if sb.String() != nfc {
		t.Errorf("concatenation = %q, want %q", sb.String(), nfc)
	}
}

func TestSpacesAsPunctNewline(t *testing.T) {
	tk := New(buildTrie(t, "བཀྲ་ཤིས\tNOUN\nབདེ་ལེགས\tNOUN", false))

	cfg := DefaultConfig()
	cfg.SpacesAsPunct = true
	tokens := tk.TokenizeWithConfig("བཀྲ་ཤིས་ \nབདེ་ལེགས།", cfg)

	found := false
	for _, tok := range tokens {
		if tok.Type == token.Punct && strings.Contains(tok.Text, "\n") {
			found = true
		}
	}
	if !found {
		t.Errorf("no newline punct token: %v", tokens)
	}
}

func TestEmptyInput(t *testing.T) {
	tk := New(buildTrie(t, testDict, false))
	if tokens := tk.Tokenize(""); len(tokens) != 0 {
		t.Errorf("got %d tokens for empty input", len(tokens))
	}
}

func TestTrieSharing(t *testing.T) {
	tr := buildTrie(t, testDict, false)
	tk1 := New(tr)
	tk2 := New(tk1.Trie())

	tokens1 := tk1.Tokenize("བཀྲ་ཤིས།")
	tokens2 := tk2.Tokenize("བཀྲ་ཤིས།")
	if len(tokens1) != len(tokens2) {
		t.Errorf("shared trie gave %d vs %d tokens", len(tokens1), len(tokens2))
	}
}
