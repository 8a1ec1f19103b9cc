// Package chunk segments Tibetan text into typed chunks.
//
// A chunk is a contiguous byte range of the input classified as Tibetan
// syllable text, punctuation, numerals, symbols, Latin, CJK, or other. The
// chunker is a single-pass state machine driven by per-character categories:
// each category has a fixed policy for which neighbors it swallows, so
// concatenating the chunk ranges reproduces the input bytes, except for a
// leading run of transparent characters, which is dropped.
//
// For Text chunks the cleaned syllable (no tsek, no surrounding spaces) is
// extracted while scanning, which is what the tokenizer feeds to the
// dictionary trie.
package chunk

import (
	"strings"

	"github.com/OpenPecha/botok-go/charcat"
	"github.com/OpenPecha/botok-go/token"
)

// Chunk is one segment of the input.
type Chunk struct {
	// Syl is the cleaned syllable for Text chunks: the syllable
	// characters only, without the trailing tsek or any transparent
	// characters. Empty for all other chunk types.
	Syl string
	// Type classifies the chunk.
	Type token.ChunkType
	// Start is the byte offset of the chunk in the input.
	Start int
	// Len is the byte length of the chunk.
	Len int
}

// Chunker segments one string. The zero value is not usable; construct
// with New.
type Chunker struct {
	bs *charcat.BoString
}

// New returns a chunker over text.
func New(text string) *Chunker {
	return &Chunker{bs: charcat.NewBoString(text)}
}

// NewFromBoString returns a chunker over an already-analyzed string.
func NewFromBoString(bs *charcat.BoString) *Chunker {
	return &Chunker{bs: bs}
}

// String returns the text being chunked.
func (c *Chunker) String() string {
	return c.bs.Text
}

// Chunks segments the whole input.
//
// Transparent characters between chunks extend the previous chunk; a
// leading transparent character with no chunk to attach to is dropped.
func (c *Chunker) Chunks() []Chunk {
	if c.bs.IsEmpty() {
		return nil
	}

	var chunks []Chunk
	n := c.bs.Len()
	i := 0
	for i < n {
		cat := c.bs.CategoryAt(i)
		switch {
		case cat.IsSyllablePart():
			ch, next := c.readSyllable(i)
			chunks = append(chunks, ch)
			i = next

		case cat == charcat.Tsek:
			// A tsek with no syllable before it in the current
			// chunk stands alone as punctuation.
			chunks = append(chunks, c.single(i, token.Punct))
			i++

		case cat == charcat.NormalPunct || cat == charcat.SpecialPunct:
			ch, next := c.readRun(i, token.Punct, func(cc charcat.Category) bool {
				return cc == charcat.NormalPunct || cc == charcat.SpecialPunct ||
					cc == charcat.Transparent
			})
			chunks = append(chunks, ch)
			i = next

		case cat == charcat.Numeral:
			ch, next := c.readRun(i, token.Num, func(cc charcat.Category) bool {
				return cc == charcat.Numeral || cc == charcat.Transparent
			})
			chunks = append(chunks, ch)
			i = next

		case cat == charcat.Symbol:
			ch, next := c.readRun(i, token.Sym, func(cc charcat.Category) bool {
				return cc == charcat.Symbol || cc == charcat.Transparent
			})
			chunks = append(chunks, ch)
			i = next

		case cat == charcat.Transparent:
			if len(chunks) > 0 {
				last := &chunks[len(chunks)-1]
				last.Len += c.bs.ByteOffset(i+1) - c.bs.ByteOffset(i)
			}
			i++

		case cat == charcat.Latin:
			ch, next := c.readRun(i, token.Latin, func(cc charcat.Category) bool {
				return cc == charcat.Latin || cc == charcat.Transparent
			})
			chunks = append(chunks, ch)
			i = next

		case cat == charcat.Cjk:
			ch, next := c.readRun(i, token.Cjk, func(cc charcat.Category) bool {
				return cc == charcat.Cjk || cc == charcat.Transparent
			})
			chunks = append(chunks, ch)
			i = next

		default:
			chunks = append(chunks, c.single(i, token.Other))
			i++
		}
	}
	return chunks
}

// readSyllable scans a Text chunk starting at character index start.
//
// Syllable characters accumulate into the cleaned syllable. A tsek is
// absorbed into the byte range but not the syllable and ends the chunk. A
// transparent character is absorbed; the chunk continues only if more
// syllable content follows it.
func (c *Chunker) readSyllable(start int) (Chunk, int) {
	var syl strings.Builder
	n := c.bs.Len()
	i := start
loop:
	for i < n {
		cat := c.bs.CategoryAt(i)
		switch {
		case cat.IsSyllablePart():
			lo, hi := c.bs.ByteOffset(i), c.bs.ByteOffset(i+1)
			syl.WriteString(c.bs.Text[lo:hi])
			i++

		case cat == charcat.Tsek:
			i++
			break loop

		case cat == charcat.Transparent:
			i++
			if i < n && c.bs.CategoryAt(i).IsSyllablePart() {
				continue
			}
			break loop

		default:
			break loop
		}
	}

	lo := c.bs.ByteOffset(start)
	hi := c.bs.ByteOffset(i)
	return Chunk{Syl: syl.String(), Type: token.Text, Start: lo, Len: hi - lo}, i
}

// readRun scans a maximal run of characters accepted by keep.
func (c *Chunker) readRun(start int, typ token.ChunkType, keep func(charcat.Category) bool) (Chunk, int) {
	n := c.bs.Len()
	i := start
	for i < n && keep(c.bs.CategoryAt(i)) {
		i++
	}
	lo := c.bs.ByteOffset(start)
	hi := c.bs.ByteOffset(i)
	return Chunk{Type: typ, Start: lo, Len: hi - lo}, i
}

func (c *Chunker) single(i int, typ token.ChunkType) Chunk {
	lo := c.bs.ByteOffset(i)
	hi := c.bs.ByteOffset(i + 1)
	return Chunk{Type: typ, Start: lo, Len: hi - lo}
}
