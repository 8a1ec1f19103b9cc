// Package wordlist assembles a dictionary trie from word-pack blobs.
//
// A word pack is a named set of TSV blobs in two roles: dictionaries,
// whose entries are loaded into the trie, and adjustments, whose entries
// are deactivated afterwards. How the blobs reach the process — files,
// archives, downloads — is the caller's business; the pack only consumes
// their contents.
package wordlist

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/OpenPecha/botok-go/trie"
)

// Logger for this package. Silent by default.
var Logger = zerolog.Nop()

// EnableDebugLogging switches the package logger to a console writer on
// stderr.
func EnableDebugLogging() {
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
}

type blob struct {
	name    string
	content string
}

// Pack accumulates dictionary and adjustment blobs and builds a trie from
// them.
type Pack struct {
	name        string
	inflect     bool
	dicts       []blob
	adjustments []blob
}

// NewPack returns an empty pack. The name is used only for logging.
func NewPack(name string) *Pack {
	return &Pack{name: name}
}

// SetInflection toggles auto-inflection for the eventual build and
// returns the pack.
func (p *Pack) SetInflection(on bool) *Pack {
	p.inflect = on
	return p
}

// AddDictionary appends a dictionary TSV blob
// (form<TAB>pos<TAB>lemma<TAB>sense<TAB>freq per line).
func (p *Pack) AddDictionary(name string, tsv []byte) *Pack {
	p.dicts = append(p.dicts, blob{name: name, content: string(tsv)})
	return p
}

// AddAdjustment appends an adjustment blob: one word form per line, each
// deactivated (together with its inflected forms) after the dictionaries
// load. Blank lines and # comments are skipped.
func (p *Pack) AddAdjustment(name string, tsv []byte) *Pack {
	p.adjustments = append(p.adjustments, blob{name: name, content: string(tsv)})
	return p
}

// Build loads every dictionary, applies every adjustment, and returns the
// finished trie.
func (p *Pack) Build() *trie.Trie {
	builder := trie.NewBuilder().SetInflection(p.inflect)

	for _, d := range p.dicts {
		n := builder.LoadTSV(d.content)
		Logger.Debug().
			Str("pack", p.name).
			Str("dictionary", d.name).
			Int("entries", n).
			Msg("loaded dictionary")
	}

	for _, a := range p.adjustments {
		removed := 0
		for _, line := range strings.Split(a.content, "\n") {
			form := strings.TrimSpace(line)
			if form == "" || strings.HasPrefix(form, "#") {
				continue
			}
			// An adjustment may also be a TSV row; only the form
			// column matters.
			if i := strings.IndexByte(form, '\t'); i >= 0 {
				form = form[:i]
			}
			if builder.DeactivateWord(form) {
				removed++
			}
		}
		Logger.Debug().
			Str("pack", p.name).
			Str("adjustment", a.name).
			Int("removed", removed).
			Msg("applied adjustment")
	}

	t := builder.Build()
	Logger.Info().
		Str("pack", p.name).
		Int("words", t.Len()).
		Msg("word pack built")
	return t
}
