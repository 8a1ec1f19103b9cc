package trie

import (
	"strconv"
	"strings"

	"github.com/OpenPecha/botok-go/syllable"
	"github.com/OpenPecha/botok-go/token"
)

// Builder assembles a Trie from tab-separated word lists.
//
// With inflection enabled, every entry is inserted together with all
// affixed forms its final syllable admits, so that the tokenizer can match
// inflected surface forms directly and split the particle back out
// afterwards. Inflection results are cached per head word; the cache lives
// only as long as the Builder.
//
// A Builder is single-owner: it is not safe for concurrent use. The trie
// it produces is.
type Builder struct {
	trie    *Trie
	comps   *syllable.Components
	inflect bool
	cache   map[string][]inflected
}

type inflected struct {
	syls  []string
	affix *syllable.AffixData
}

// NewBuilder returns a builder with inflection disabled.
func NewBuilder() *Builder {
	return &Builder{
		trie:  New(),
		comps: syllable.NewComponents(),
		cache: make(map[string][]inflected),
	}
}

// NewInflectingBuilder returns a builder that auto-generates affixed
// forms.
func NewInflectingBuilder() *Builder {
	b := NewBuilder()
	b.inflect = true
	return b
}

// SetInflection toggles auto-inflection and returns the builder.
func (b *Builder) SetInflection(on bool) *Builder {
	b.inflect = on
	return b
}

// getInflected returns the base form of word plus every affixed variant,
// as syllable slices. The base form always comes first, with a nil affix.
func (b *Builder) getInflected(word string) []inflected {
	if cached, ok := b.cache[word]; ok {
		return cached
	}

	syls := SplitSyls(word)
	if len(syls) == 0 {
		return nil
	}

	forms := []inflected{{syls: syls}}
	last := syls[len(syls)-1]
	for _, af := range b.comps.AllAffixed(last) {
		form := make([]string, len(syls))
		copy(form, syls[:len(syls)-1])
		form[len(syls)-1] = af.Syl
		data := af.Data
		forms = append(forms, inflected{syls: form, affix: &data})
	}

	b.cache[word] = forms
	return forms
}

// LoadTSV loads dictionary entries from TSV content and returns the
// number of entries consumed.
//
// Each line is form<TAB>pos<TAB>lemma<TAB>sense<TAB>freq; trailing fields
// may be absent. Blank lines and lines starting with # are skipped, and a
// freq that does not parse as a non-negative integer is treated as absent.
func (b *Builder) LoadTSV(tsv string) int {
	loaded := 0
	for _, line := range strings.Split(tsv, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "\t")
		form := parts[0]
		if form == "" {
			continue
		}
		var pos, lemma, gloss string
		var freq int
		if len(parts) > 1 {
			pos = parts[1]
		}
		if len(parts) > 2 {
			lemma = parts[2]
		}
		if len(parts) > 3 {
			gloss = parts[3]
		}
		if len(parts) > 4 {
			if v, err := strconv.ParseUint(strings.TrimSpace(parts[4]), 10, 32); err == nil {
				freq = int(v)
			}
		}

		if b.inflect {
			for _, infl := range b.getInflected(form) {
				data := WordData{
					POS:   pos,
					Lemma: lemma,
					Freq:  freq,
				}
				if infl.affix != nil {
					data.Affixation = &token.Affixation{
						Len:  infl.affix.Len,
						Type: infl.affix.Type,
						AA:   infl.affix.AA,
					}
				}
				sense := token.Sense{
					POS:     pos,
					Freq:    freq,
					Gloss:   gloss,
					Affixed: infl.affix != nil,
				}
				b.trie.AddWordWithSense(strings.Join(infl.syls, "་"), data, sense)
			}
		} else {
			data := WordData{POS: pos, Lemma: lemma, Freq: freq}
			sense := token.Sense{POS: pos, Freq: freq, Gloss: gloss}
			b.trie.AddWordWithSense(form, data, sense)
		}
		loaded++
	}
	return loaded
}

// AddInflectedWord inserts word and, with inflection enabled, all of its
// affixed forms.
func (b *Builder) AddInflectedWord(word string, data *WordData) {
	if !b.inflect {
		b.trie.AddWord(word, data)
		return
	}
	for _, infl := range b.getInflected(word) {
		var wd WordData
		if data != nil {
			wd = *data
		}
		if infl.affix != nil {
			wd.Affixation = &token.Affixation{
				Len:  infl.affix.Len,
				Type: infl.affix.Type,
				AA:   infl.affix.AA,
			}
		} else {
			wd.Affixation = nil
		}
		b.trie.AddWord(strings.Join(infl.syls, "་"), &wd)
	}
}

// DeactivateWord deactivates word and, with inflection enabled, all of
// its affixed forms. It reports whether the base form was active.
func (b *Builder) DeactivateWord(word string) bool {
	if !b.inflect {
		return b.trie.Deactivate(SplitSyls(word))
	}
	ok := false
	for i, form := range b.getInflected(word) {
		deactivated := b.trie.Deactivate(form.syls)
		if i == 0 {
			ok = deactivated
		}
	}
	return ok
}

// Trie returns the trie under construction.
func (b *Builder) Trie() *Trie {
	return b.trie
}

// Build finalizes and returns the trie. The builder must not be used
// afterwards.
func (b *Builder) Build() *Trie {
	t := b.trie
	b.trie = nil
	b.cache = nil
	return t
}
