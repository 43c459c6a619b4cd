// apps/solver/internal/candidates/ranked.go
//
// Frequency-ranked implementation of Set.
// Keeps candidates as word+rank pairs ordered by descending rank, so the
// first suggestion is always the most common remaining word. Word strings
// are materialized from the pairs on demand, which makes Words/AllWords an
// O(n) copy — cheap for the usual small display limits, expensive if the
// whole set is requested repeatedly.

package candidates

import (
	"sort"
	"strings"
)

// Ranked is a Set backed by word+rank pairs, highest rank first.
type Ranked struct {
	wordSize int
	entries  []Entry
}

// NewRanked builds a Ranked set from the supplied entries.
// Entries whose word length differs from wordSize are silently dropped,
// and the remainder is stably sorted by descending rank.
func NewRanked(wordSize int, entries []Entry) *Ranked {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if len(e.Word) == wordSize {
			kept = append(kept, e)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Rank > kept[j].Rank })
	return &Ranked{wordSize: wordSize, entries: kept}
}

// Entries exposes the remaining word+rank pairs (rank-descending).
func (r *Ranked) Entries() []Entry { return r.entries }

// filter keeps only the entries for which keep returns true.
func (r *Ranked) filter(keep func(w string) bool) {
	out := r.entries[:0]
	for _, e := range r.entries {
		if keep(e.Word) {
			out = append(out, e)
		}
	}
	r.entries = out
}

// Exists drops every word that does not contain c.
func (r *Ranked) Exists(c byte) {
	r.filter(func(w string) bool { return strings.IndexByte(w, c) >= 0 })
}

// ExistsAt drops every word that does not have c at index pos.
func (r *Ranked) ExistsAt(c byte, pos int) {
	validateIndex(pos, r.wordSize)
	r.filter(func(w string) bool { return w[pos] == c })
}

// DoesNotExist drops every word containing c anywhere.
func (r *Ranked) DoesNotExist(c byte) {
	r.filter(func(w string) bool { return strings.IndexByte(w, c) < 0 })
}

// DoesNotExistAt drops every word that has c at index pos.
func (r *Ranked) DoesNotExistAt(c byte, pos int) {
	validateIndex(pos, r.wordSize)
	r.filter(func(w string) bool { return w[pos] != c })
}

// RemoveIfAtLeastN drops every word with n or more occurrences of c.
func (r *Ranked) RemoveIfAtLeastN(c byte, n int) {
	r.filter(func(w string) bool { return countByte(w, c) < n })
}

// Size reports how many candidate words remain.
func (r *Ranked) Size() int { return len(r.entries) }

// WordSize reports the fixed length of every candidate word.
func (r *Ranked) WordSize() int { return r.wordSize }

// Words returns up to n remaining words, most frequent first.
// A non-positive n returns an empty slice.
func (r *Ranked) Words(n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(r.entries) {
		n = len(r.entries)
	}
	out := make([]string, 0, n)
	for _, e := range r.entries[:n] {
		out = append(out, e.Word)
	}
	return out
}

// AllWords returns every remaining word, most frequent first.
func (r *Ranked) AllWords() []string {
	return r.Words(len(r.entries))
}
