package chunk

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/OpenPecha/botok-go/charcat"
)

// Chunk ranges must stay contiguous, non-empty, and in order for any
// valid UTF-8 input, no matter how mangled the script mix is.
func FuzzChunksPartition(f *testing.F) {
	f.Add("བཀྲ་ཤིས་བདེ་ལེགས།")
	f.Add("བཀྲ་ཤིས། hello 你好")
	f.Add("ཀ ཀ་ཁ ༡༢༣")
	f.Add("་་།། \t\n")
	f.Add("a࿄༪ༀ཈z")

	f.Fuzz(func(t *testing.T, text string) {
		if !utf8.ValidString(text) {
			t.Skip()
		}
		chunks := New(text).Chunks()

		pos := -1
		for i, c := range chunks {
			if c.Len <= 0 {
				t.Fatalf("chunk %d has length %d", i, c.Len)
			}
			if pos >= 0 && c.Start != pos {
				t.Fatalf("chunk %d starts at %d, previous ended at %d", i, c.Start, pos)
			}
			if c.Start+c.Len > len(text) {
				t.Fatalf("chunk %d overruns input", i)
			}
			if c.Syl != "" {
				// The cleaned syllable is the chunk bytes minus
				// transparent characters and the trailing tsek.
				cleaned := strings.Map(dropTransparent, text[c.Start:c.Start+c.Len])
				if !strings.HasPrefix(cleaned, c.Syl) {
					t.Fatalf("chunk %d syl %q not derived from range %q",
						i, c.Syl, text[c.Start:c.Start+c.Len])
				}
			}
			pos = c.Start + c.Len
		}
		if len(chunks) > 0 && pos != len(text) {
			// Only a leading transparent run may be dropped.
			if chunks[0].Start == 0 {
				t.Fatalf("chunks end at %d, want %d", pos, len(text))
			}
		}
	})
}

func dropTransparent(r rune) rune {
	if charcat.Of(r) == charcat.Transparent {
		return -1
	}
	return r
}
