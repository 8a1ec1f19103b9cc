package botok

import (
	"strings"
	"sync"
	"testing"
)

const demoDict = "བཀྲ་ཤིས\tNOUN\t\t\t1000\n" +
	"བདེ་ལེགས\tNOUN\t\t\t500\n" +
	"བཀྲ་ཤིས་བདེ་ལེགས\tPHRASE\t\t\t2000"

func TestFullPipeline(t *testing.T) {
	tk := FromTSV(demoDict)
	tokens := tk.Tokenize("བཀྲ་ཤིས་བདེ་ལེགས། བཀྲ་ཤིས།")

	if len(tokens) == 0 {
		t.Fatal("no tokens")
	}
	// Longest match: the full phrase wins over its two halves.
	if len(tokens[0].Syls) != 4 {
		t.Errorf("token 0 has %d syls, want 4", len(tokens[0].Syls))
	}
	if tokens[0].POS != "PHRASE" {
		t.Errorf("token 0 POS = %q, want PHRASE", tokens[0].POS)
	}

	havePunct := false
	for _, tok := range tokens {
		if tok.Type == Punct {
			havePunct = true
		}
	}
	if !havePunct {
		t.Error("no punctuation token")
	}
}

func TestSimpleTokenizeFacade(t *testing.T) {
	tokens := SimpleTokenize("བཀྲ་ཤིས་བདེ་ལེགས།")
	if len(tokens) != 5 {
		t.Fatalf("got %d tokens, want 5", len(tokens))
	}
}

func TestAffixSplitRoundTrip(t *testing.T) {
	tk := FromTSV("བཀྲ་ཤིས\tNOUN\t\t\t1000")
	input := "བཀྲ་ཤིསར་"
	tokens := tk.Tokenize(input)

	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want host+particle: %v", len(tokens), tokens)
	}
	host, particle := tokens[0], tokens[1]
	if !host.IsAffixHost || !particle.IsAffix {
		t.Errorf("flags: host=%v particle=%v", host.IsAffixHost, particle.IsAffix)
	}
	if host.Text+particle.Text != input {
		t.Errorf("round trip broken: %q + %q != %q", host.Text, particle.Text, input)
	}
	if host.Start != 0 || particle.Start+particle.Len != len(input) {
		t.Error("split positions do not cover the original range")
	}
}

// One trie, many goroutines: tokenization only reads the trie.
func TestConcurrentTokenize(t *testing.T) {
	tk := FromTSV(demoDict)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			shared := NewTokenizer(tk.Trie())
			for j := 0; j < 50; j++ {
				tokens := shared.Tokenize("བཀྲ་ཤིས་བདེ་ལེགས། བཀྲ་ཤིསར་")
				if len(tokens) == 0 {
					t.Error("empty result")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestSentenceGrouping(t *testing.T) {
	tk := FromTSV("ཡིན\tVERB\t\t\t100\nབཀྲ་ཤིས\tNOUN\t\t\t1000")
	tokens := tk.Tokenize("བཀྲ་ཤིས་ཡིན་། བཀྲ་ཤིས་ཡིན་།")

	sentences := Sentences(tokens)
	if len(sentences) == 0 {
		t.Fatal("no sentences")
	}
	paragraphs := Paragraphs(tokens)
	if len(paragraphs) == 0 {
		t.Fatal("no paragraphs")
	}

	var sb strings.Builder
	for _, s := range sentences {
		sb.WriteString(s.Text())
	}
	var all strings.Builder
	for _, tok := range tokens {
		all.WriteString(tok.Text)
	}
	if sb.String() != all.String() {
		t.Errorf("sentences lose text: %q vs %q", sb.String(), all.String())
	}
}
