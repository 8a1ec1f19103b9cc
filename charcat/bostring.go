package charcat

// BoString pairs a string with the category of every character in it, plus
// a character-index to byte-offset table. The chunker works in character
// indices while chunk and token positions are reported in bytes; the
// offset table bridges the two without rescanning the UTF-8.
type BoString struct {
	// Text is the analyzed string.
	Text string
	// Categories holds one category per character, by character index.
	Categories []Category

	// offsets[i] is the byte offset of character i; offsets[len] is
	// len(Text).
	offsets []int
}

// NewBoString analyzes s and returns its per-character categories.
func NewBoString(s string) *BoString {
	n := 0
	for range s {
		n++
	}
	categories := make([]Category, 0, n)
	offsets := make([]int, 0, n+1)
	for i, r := range s {
		offsets = append(offsets, i)
		categories = append(categories, Of(r))
	}
	offsets = append(offsets, len(s))
	return &BoString{Text: s, Categories: categories, offsets: offsets}
}

// Len returns the number of characters.
func (b *BoString) Len() int {
	return len(b.Categories)
}

// IsEmpty reports whether the string has no characters.
func (b *BoString) IsEmpty() bool {
	return len(b.Categories) == 0
}

// CategoryAt returns the category of character i, or Other when i is out
// of range.
func (b *BoString) CategoryAt(i int) Category {
	if i < 0 || i >= len(b.Categories) {
		return Other
	}
	return b.Categories[i]
}

// ByteOffset returns the byte offset of character i. ByteOffset(Len())
// returns the total byte length.
func (b *BoString) ByteOffset(i int) int {
	return b.offsets[i]
}
