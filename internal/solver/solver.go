// apps/solver/internal/solver/solver.go
//
// Candidate-filtering engine for Wordle-style puzzles.
// Responsibilities:
//   - Own one candidates.Set for a solving session.
//   - Validate guess/feedback input (length, status charset) before touching
//     the set, so invalid input never partially filters.
//   - Apply the per-letter elimination rules for one guess+feedback pair,
//     including the duplicate-letter accounting: a letter marked absent after
//     other occurrences were marked present/correct caps the letter's allowed
//     count instead of eliminating it.
//
// Feedback strings use 'b' (absent), 'y' (present, wrong position) and
// 'g' (correct position), one character per letter of the guess.
//
// Notes:
//   - Filtering is strictly monotonic: candidates are only ever removed.
//   - Not safe for concurrent use; callers serialize access per session.
//   - The engine never logs. It reports failures as errors wrapping
//     ErrInvalidArgument and leaves recovery (re-prompting) to the caller.

package solver

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/apps/solver/internal/candidates"
)

// allowedStatusChars is the feedback alphabet: black, yellow, green.
const allowedStatusChars = "byg"

// ErrInvalidArgument reports a guess or feedback string that violates the
// update preconditions. The wrapped message names the offending input.
var ErrInvalidArgument = errors.New("invalid argument")

// Solver narrows a candidate set from guess feedback, one round at a time.
type Solver struct {
	wordSize int
	set      candidates.Set
}

// New constructs a Solver over an existing candidate set.
func New(wordSize int, set candidates.Set) *Solver {
	return &Solver{wordSize: wordSize, set: set}
}

// NewPlain constructs a Solver over a plain word list.
// Words of a different length are silently dropped.
func NewPlain(wordSize int, words []string) *Solver {
	return New(wordSize, candidates.NewPlain(wordSize, words))
}

// NewRanked constructs a Solver over word+frequency pairs, so suggestions
// come back most-common-first.
func NewRanked(wordSize int, entries []candidates.Entry) *Solver {
	return New(wordSize, candidates.NewRanked(wordSize, entries))
}

// Update filters the candidate set against one guessed word and its
// feedback, returning the number of candidates that remain.
//
// Each distinct letter of the guess is processed once. Correct ('g')
// positions pin the letter, present ('y') positions require the letter
// elsewhere, and an absent ('b') position resolves all occurrences of its
// letter together:
//   - no other occurrence marked y/g → the letter is excluded entirely;
//   - k occurrences marked y (or g) → words with more than k occurrences
//     of the letter are removed, the confirmed ones stay allowed.
//
// Validation happens before any filtering, so a failed Update leaves the
// set untouched.
func (s *Solver) Update(guess, feedback string) (int, error) {
	if len(guess) != s.wordSize || len(feedback) != s.wordSize {
		return s.set.Size(), fmt.Errorf(
			"%w: invalid number of characters in [%s], and/or [%s], they must contain exactly [%d] characters",
			ErrInvalidArgument, guess, feedback, s.wordSize)
	}
	for i := 0; i < len(feedback); i++ {
		switch feedback[i] {
		case 'b', 'y', 'g':
		default:
			return s.set.Size(), fmt.Errorf(
				"%w: invalid status characters in [%s], status characters must be from: [%s]",
				ErrInvalidArgument, feedback, allowedStatusChars)
		}
	}

	// handled marks positions whose letter has been fully accounted for, so
	// repeated letters are not processed twice.
	handled := make([]bool, s.wordSize)
	for i := 0; i < s.wordSize; i++ {
		if handled[i] {
			continue
		}
		c := guess[i]
		switch feedback[i] {
		case 'g':
			s.set.ExistsAt(c, i)
		case 'y':
			s.set.Exists(c)
			s.set.DoesNotExistAt(c, i)
		case 'b':
			s.set.DoesNotExistAt(c, i)

			// Resolve every other occurrence of c in the guess now. Each
			// y/g occurrence keeps its positional constraint, and the
			// y/g counts cap how many times c may appear in a candidate.
			yCount, gCount := 0, 0
			for j := 0; j < s.wordSize; j++ {
				if guess[j] != c {
					continue
				}
				switch feedback[j] {
				case 'y':
					s.set.DoesNotExistAt(c, j)
					yCount++
				case 'g':
					s.set.ExistsAt(c, j)
					gCount++
				}
				handled[j] = true
			}

			if yCount == 0 && gCount == 0 {
				s.set.DoesNotExist(c)
			}
			if yCount > 0 {
				s.set.RemoveIfAtLeastN(c, yCount+1)
			}
			if gCount > 0 {
				s.set.RemoveIfAtLeastN(c, gCount+1)
			}
		}
	}
	return s.set.Size(), nil
}

// Size reports the number of remaining candidates.
func (s *Solver) Size() int { return s.set.Size() }

// WordSize reports the fixed word length of the session.
func (s *Solver) WordSize() int { return s.wordSize }

// Words returns up to limit remaining candidates in the set's natural order.
// May be an O(n) materialization for ranked sets.
func (s *Solver) Words(limit int) []string { return s.set.Words(limit) }

// AllWords returns every remaining candidate in the set's natural order.
func (s *Solver) AllWords() []string { return s.set.AllWords() }

// Solved reports whether a feedback string marks every letter correct.
// It is a plain predicate on the feedback; it does not touch the set.
func Solved(feedback string) bool {
	if feedback == "" {
		return false
	}
	for i := 0; i < len(feedback); i++ {
		if feedback[i] != 'g' {
			return false
		}
	}
	return true
}
