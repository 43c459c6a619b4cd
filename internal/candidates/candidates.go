// apps/solver/internal/candidates/candidates.go
//
// Candidate word storage for the solver.
// Defines:
//   - Set: the contract the solver filters through.
//   - Entry: a word paired with a usage rank (frequency).
//
// Notes:
//   - Two implementations exist: Plain (word list, insertion order) and
//     Ranked (word+frequency pairs, frequency-descending order).
//   - The rank is presentation order only; it never affects which words
//     survive filtering.
//   - A Set only ever shrinks. Words are removed by the filtering
//     operations and never added back.

package candidates

import "fmt"

// Set holds the candidate words for one solving session and applies
// letter-level elimination rules.
//
// Positional operations panic if pos >= WordSize(); callers are expected to
// validate indices first, so an out-of-range index is a programming defect
// rather than a recoverable condition.
type Set interface {
	// Exists drops every word that does not contain c.
	Exists(c byte)

	// ExistsAt drops every word that does not have c at index pos.
	ExistsAt(c byte, pos int)

	// DoesNotExist drops every word containing c anywhere.
	DoesNotExist(c byte)

	// DoesNotExistAt drops every word that has c at index pos.
	DoesNotExistAt(c byte, pos int)

	// RemoveIfAtLeastN drops every word containing n or more occurrences of c.
	RemoveIfAtLeastN(c byte, n int)

	// Size reports how many candidate words remain.
	Size() int

	// WordSize reports the fixed length of every candidate word.
	WordSize() int

	// Words returns up to n remaining words in the set's natural order.
	// If fewer than n remain, all of them are returned.
	Words(n int) []string

	// AllWords returns every remaining word in the set's natural order.
	AllWords() []string
}

// Entry is a dictionary word with its usage rank, e.g. a corpus frequency.
// Higher rank sorts earlier.
type Entry struct {
	Word string
	Rank uint64
}

// validateIndex asserts pos is a valid letter index for the given word size.
func validateIndex(pos, wordSize int) {
	if pos < 0 || pos >= wordSize {
		panic(fmt.Sprintf("candidates: index [%d] must be less than word size [%d]", pos, wordSize))
	}
}

// countByte returns the number of occurrences of c in w.
func countByte(w string, c byte) int {
	n := 0
	for i := 0; i < len(w); i++ {
		if w[i] == c {
			n++
		}
	}
	return n
}
