// Package syllable models Tibetan affixation at the single-syllable level.
//
// Tibetan grammatical particles come from a closed set of eleven written
// forms that fuse onto the final syllable of a host word. This package
// answers three questions about a syllable:
//
//   - can it host a particle at all (IsThame)
//   - is it still free to take one, i.e. not already carrying one
//     (IsAffixable)
//   - what are all of its affixed forms (AllAffixed)
//
// Host eligibility is decided by suffix shape. The closed suffix set and
// the closed particle set are each compiled once into an Aho-Corasick
// automaton; a short anchored scan then checks whether any pattern ends
// exactly at the end of the syllable.
package syllable

import (
	_ "embed"
	"strings"

	"github.com/coregx/ahocorasick"
)

// Tsek is the Tibetan intersyllabic separator U+0F0B.
const Tsek = '་'

// Affix is one entry of the closed particle table.
type Affix struct {
	// Particle is the written form fused onto the host syllable.
	Particle string
	// Len is the particle length in characters.
	Len int
	// Type names the grammatical particle.
	Type string
}

// Affixes is the closed table of fused particles, in canonical order.
var Affixes = []Affix{
	{"ར", 1, "la"},
	{"ས", 1, "gis"},
	{"འི", 2, "gi"},
	{"འམ", 2, "am"},
	{"འང", 2, "ang"},
	{"འོ", 2, "o"},
	{"འིའོ", 4, "gi+o"},
	{"འིའམ", 4, "gi+am"},
	{"འིའང", 4, "gi+ang"},
	{"འོའམ", 4, "o+am"},
	{"འོའང", 4, "o+ang"},
}

// affixParticles are the particle shapes that mark a syllable as already
// affixed. The single-letter particles ར and ས are deliberately absent:
// they are indistinguishable from ordinary suffix letters.
var affixParticles = []string{
	"འི", "འོ", "འམ", "འང",
	"འིའོ", "འིའམ", "འིའང", "འོའམ", "འོའང",
}

// AffixData describes how one affixed form was produced.
type AffixData struct {
	// Len is the particle length in characters.
	Len int
	// Type names the particle.
	Type string
	// AA records that the host's trailing འ was elided.
	AA bool
}

// Affixed is one generated inflection of a syllable.
type Affixed struct {
	Syl  string
	Data AffixData
}

// Dagdra is the closed set of suffixing particles that merge onto the
// preceding word.
var Dagdra = []string{"པ་", "པོ་", "བ་", "བོ་"}

// IsDagdra reports whether text (with or without its trailing tsek) is a
// dagdra particle.
func IsDagdra(text string) bool {
	cleaned := text
	if !strings.HasSuffix(cleaned, string(Tsek)) {
		cleaned += string(Tsek)
	}
	for _, d := range Dagdra {
		if cleaned == d {
			return true
		}
	}
	return false
}

// affixableSuffixes enumerates the syllable endings that can host a
// particle: the bare suffix letters, the four vowel signs, and every
// vowel+suffix-letter pair.
func affixableSuffixes() []string {
	bare := []string{"འ", "ག", "ང", "ད", "ན", "བ", "མ", "ལ", "ས", "ར"}
	vowels := []string{"ི", "ུ", "ེ", "ོ"}
	finals := []string{"ག", "ང", "ད", "ན", "བ", "མ", "ལ", "ས"}

	suffixes := make([]string, 0, len(bare)+len(vowels)*(1+len(finals)))
	suffixes = append(suffixes, bare...)
	for _, v := range vowels {
		suffixes = append(suffixes, v)
		for _, f := range finals {
			suffixes = append(suffixes, v+f)
		}
	}
	return suffixes
}

// The pattern sets are fixed, so a build failure is a programming error.
func mustAutomaton(patterns []string) *ahocorasick.Automaton {
	builder := ahocorasick.NewBuilder()
	for _, p := range patterns {
		builder.AddPattern([]byte(p))
	}
	auto, err := builder.Build()
	if err != nil {
		panic("syllable: building suffix automaton: " + err.Error())
	}
	return auto
}

var (
	suffixAuto   = mustAutomaton(affixableSuffixes())
	particleAuto = mustAutomaton(affixParticles)
)

// hasProperSuffix reports whether some pattern of auto matches a strict
// suffix of s: the match must end at the end of s and must not span all of
// it. The automaton finds matches by start position; advancing one byte
// past each reported start visits every candidate without missing a
// later, shorter suffix.
func hasProperSuffix(auto *ahocorasick.Automaton, s string) bool {
	b := []byte(s)
	at := 0
	for at < len(b) {
		m := auto.Find(b, at)
		if m == nil {
			return false
		}
		if m.End == len(b) && m.Start > 0 {
			return true
		}
		at = m.Start + 1
	}
	return false
}

//go:embed data/roots.txt
var rootsData string

// Components decides affixation eligibility for single syllables.
//
// A Components value is immutable and safe for concurrent use.
type Components struct {
	roots map[string]struct{}
}

// NewComponents returns a Components backed by the embedded root list.
func NewComponents() *Components {
	roots := make(map[string]struct{})
	for _, line := range strings.Split(rootsData, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		roots[line] = struct{}{}
	}
	return &Components{roots: roots}
}

// IsThame reports whether syl can host an affixed particle: it is a known
// root, or it ends in an affixable suffix, or it ends in འ (which elides
// under affixation).
func (c *Components) IsThame(syl string) bool {
	if _, ok := c.roots[syl]; ok {
		return true
	}
	if hasProperSuffix(suffixAuto, syl) {
		return true
	}
	return endsInAa(syl)
}

// IsAffixable reports whether syl can still take a particle: it is thame
// and does not already end in a fused particle.
func (c *Components) IsAffixable(syl string) bool {
	if hasProperSuffix(particleAuto, syl) {
		return false
	}
	return c.IsThame(syl)
}

// AllAffixed generates every affixed form of syl, or nil when syl is not
// affixable. When the syllable ends in འ the letter is dropped before the
// particle attaches and the elision is recorded in the AffixData.
func (c *Components) AllAffixed(syl string) []Affixed {
	if !c.IsAffixable(syl) {
		return nil
	}

	base := syl
	aa := false
	if endsInAa(syl) {
		base = strings.TrimSuffix(syl, "འ")
		aa = true
	}

	affixed := make([]Affixed, 0, len(Affixes))
	for _, a := range Affixes {
		affixed = append(affixed, Affixed{
			Syl:  base + a.Particle,
			Data: AffixData{Len: a.Len, Type: a.Type, AA: aa},
		})
	}
	return affixed
}

// endsInAa reports whether syl ends in འ without being the bare letter.
func endsInAa(syl string) bool {
	return strings.HasSuffix(syl, "འ") && len(syl) > len("འ")
}
