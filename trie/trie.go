// Package trie stores the tokenization dictionary as a prefix tree keyed
// by syllable.
//
// Words are sequences of syllables; each terminal node carries the word's
// dictionary payload. The tokenizer descends the tree one syllable at a
// time with Walk, keeping the deepest terminal it has seen, which is what
// makes longest-match segmentation a single forward pass.
//
// A Trie built by a Builder is effectively immutable: the tokenizer only
// reads it, so one trie can back any number of concurrent tokenize calls.
// The mutating methods (Add, Merge, Deactivate, ...) exist for dictionary
// assembly and adjustment; callers that mutate a live trie must serialize
// mutation against reads themselves.
package trie

import (
	"strings"

	"github.com/OpenPecha/botok-go/token"
)

// WordData is the dictionary payload of one word.
type WordData struct {
	POS   string
	Lemma string
	Freq  int
	// Skrt marks Sanskrit loanwords.
	Skrt bool
	// Affixation is set on entries generated by auto-inflection; it
	// describes the particle fused into the final syllable.
	Affixation *token.Affixation
	// Senses collects every dictionary reading of the word.
	Senses []token.Sense
}

// Node is one trie node. Children are keyed by the next syllable.
type Node struct {
	children map[string]*Node
	leaf     bool
	// Data is the word payload; meaningful only on match nodes.
	Data *WordData
}

// CanWalk reports whether the node has any children.
func (n *Node) CanWalk() bool {
	return len(n.children) > 0
}

// IsMatch reports whether the node terminates a dictionary word.
func (n *Node) IsMatch() bool {
	return n.leaf
}

func (n *Node) child(syl string) *Node {
	return n.children[syl]
}

func (n *Node) ensureChild(syl string) *Node {
	c := n.children[syl]
	if c == nil {
		c = &Node{}
		if n.children == nil {
			n.children = make(map[string]*Node)
		}
		n.children[syl] = c
	}
	return c
}

// Trie is a syllable-keyed prefix tree.
type Trie struct {
	root      Node
	wordCount int
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{}
}

// Len returns the number of words in the trie.
func (t *Trie) Len() int {
	return t.wordCount
}

// IsEmpty reports whether the trie holds no words.
func (t *Trie) IsEmpty() bool {
	return t.wordCount == 0
}

// Root returns the root node, for external traversal.
func (t *Trie) Root() *Node {
	return &t.root
}

// Add inserts a word given as syllables. A nil data keeps any payload
// already present.
func (t *Trie) Add(syls []string, data *WordData) {
	cur := &t.root
	for _, syl := range syls {
		cur = cur.ensureChild(syl)
	}
	if !cur.leaf {
		t.wordCount++
	}
	cur.leaf = true
	if data != nil {
		cur.Data = data
	}
}

// SplitSyls splits a word on tseks, dropping empty segments.
func SplitSyls(word string) []string {
	parts := strings.Split(word, "་")
	syls := parts[:0]
	for _, p := range parts {
		if p != "" {
			syls = append(syls, p)
		}
	}
	return syls
}

// AddWord inserts a word given as a tsek-joined string.
func (t *Trie) AddWord(word string, data *WordData) {
	if syls := SplitSyls(word); len(syls) > 0 {
		t.Add(syls, data)
	}
}

// AddWordWithSense inserts word in a single traversal, installing data on
// a fresh entry or filling its missing scalar fields on an existing one,
// and always appending sense.
func (t *Trie) AddWordWithSense(word string, data WordData, sense token.Sense) {
	syls := SplitSyls(word)
	if len(syls) == 0 {
		return
	}

	cur := &t.root
	for _, syl := range syls {
		cur = cur.ensureChild(syl)
	}
	if !cur.leaf {
		t.wordCount++
	}
	cur.leaf = true

	if cur.Data == nil {
		d := data
		d.Senses = append(d.Senses, sense)
		cur.Data = &d
		return
	}
	if cur.Data.POS == "" {
		cur.Data.POS = data.POS
	}
	if cur.Data.Lemma == "" {
		cur.Data.Lemma = data.Lemma
	}
	if cur.Data.Freq == 0 {
		cur.Data.Freq = data.Freq
	}
	cur.Data.Senses = append(cur.Data.Senses, sense)
}

// Walk descends one step from the given node (nil means the root) and
// returns the child for syl, or nil.
func (t *Trie) Walk(syl string, from *Node) *Node {
	if from == nil {
		from = &t.root
	}
	return from.child(syl)
}

func (t *Trie) find(syls []string) *Node {
	cur := &t.root
	for _, syl := range syls {
		cur = cur.child(syl)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// HasWord reports whether the exact word is in the trie.
func (t *Trie) HasWord(syls []string) bool {
	n := t.find(syls)
	return n != nil && n.leaf
}

// WordData returns the payload of the exact word, or nil when the word is
// absent or carries no payload.
func (t *Trie) WordData(syls []string) *WordData {
	n := t.find(syls)
	if n == nil || !n.leaf {
		return nil
	}
	return n.Data
}

// AddData appends a sense to an existing word. It reports whether the
// word was found.
func (t *Trie) AddData(syls []string, sense token.Sense) bool {
	n := t.find(syls)
	if n == nil || !n.leaf {
		return false
	}
	if n.Data == nil {
		n.Data = &WordData{}
	}
	n.Data.Senses = append(n.Data.Senses, sense)
	return true
}

// Deactivate makes a word unfindable while keeping its subtree. It
// reports whether the word was active.
func (t *Trie) Deactivate(syls []string) bool {
	n := t.find(syls)
	if n == nil || !n.leaf {
		return false
	}
	n.leaf = false
	t.wordCount--
	return true
}

// Merge grafts every word of other into t. Terminals new to t increment
// the word count; payloads on other's terminals overwrite t's.
func (t *Trie) Merge(other *Trie) {
	t.wordCount += mergeNodes(&t.root, &other.root)
}

func mergeNodes(dst, src *Node) int {
	added := 0
	for syl, srcChild := range src.children {
		dstChild := dst.ensureChild(syl)
		if srcChild.leaf && !dstChild.leaf {
			dstChild.leaf = true
			added++
		}
		if srcChild.leaf && srcChild.Data != nil {
			dstChild.Data = srcChild.Data
		}
		added += mergeNodes(dstChild, srcChild)
	}
	return added
}
