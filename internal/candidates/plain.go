// apps/solver/internal/candidates/plain.go
//
// Plain word-list implementation of Set.
// Keeps candidates as a []string in the order they were supplied; no rank
// information. Suitable for dictionaries that are just one word per line.

package candidates

import "strings"

// Plain is a Set backed by a simple word slice, insertion order preserved.
type Plain struct {
	wordSize int
	words    []string
}

// NewPlain builds a Plain set from the supplied words.
// Words whose length differs from wordSize are silently dropped.
func NewPlain(wordSize int, words []string) *Plain {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) == wordSize {
			kept = append(kept, w)
		}
	}
	return &Plain{wordSize: wordSize, words: kept}
}

// filter keeps only the words for which keep returns true.
func (p *Plain) filter(keep func(w string) bool) {
	out := p.words[:0]
	for _, w := range p.words {
		if keep(w) {
			out = append(out, w)
		}
	}
	p.words = out
}

// Exists drops every word that does not contain c.
func (p *Plain) Exists(c byte) {
	p.filter(func(w string) bool { return strings.IndexByte(w, c) >= 0 })
}

// ExistsAt drops every word that does not have c at index pos.
func (p *Plain) ExistsAt(c byte, pos int) {
	validateIndex(pos, p.wordSize)
	p.filter(func(w string) bool { return w[pos] == c })
}

// DoesNotExist drops every word containing c anywhere.
func (p *Plain) DoesNotExist(c byte) {
	p.filter(func(w string) bool { return strings.IndexByte(w, c) < 0 })
}

// DoesNotExistAt drops every word that has c at index pos.
func (p *Plain) DoesNotExistAt(c byte, pos int) {
	validateIndex(pos, p.wordSize)
	p.filter(func(w string) bool { return w[pos] != c })
}

// RemoveIfAtLeastN drops every word with n or more occurrences of c.
func (p *Plain) RemoveIfAtLeastN(c byte, n int) {
	p.filter(func(w string) bool { return countByte(w, c) < n })
}

// Size reports how many candidate words remain.
func (p *Plain) Size() int { return len(p.words) }

// WordSize reports the fixed length of every candidate word.
func (p *Plain) WordSize() int { return p.wordSize }

// Words returns up to n remaining words in insertion order.
// A non-positive n returns an empty slice.
func (p *Plain) Words(n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(p.words) {
		n = len(p.words)
	}
	out := make([]string, n)
	copy(out, p.words[:n])
	return out
}

// AllWords returns every remaining word in insertion order.
func (p *Plain) AllWords() []string {
	return p.Words(len(p.words))
}
