// apps/solver/internal/words/words.go
//
// Dictionary loading for the solver.
//
// Responsibilities:
//   - Load ranked dictionaries ("word,frequency" per line) and plain word
//     lists (one word per line) from files.
//   - Maintain the process-wide default dictionary: an env-provided file or
//     the embedded fallback, loaded exactly once.
//
// File format:
//   - Lines are trimmed and lowercased; blank lines and '#' comments skipped.
//   - Ranked lines are "word,count" with a base-10 count. A line without the
//     separator or with a malformed count is an error.
//   - Words with non a–z characters are dropped — a guess dictionary only
//     ever holds lowercase letters.
//
// Environment variables:
//   SOLVER_WORDS_FILE=/path/to/words_freq.txt
//
// Constraints:
//   • No length filtering here; candidate-set construction drops words that
//     do not match the session's word size.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/robalobadob/wordle/apps/solver/assets"
	"github.com/robalobadob/wordle/apps/solver/internal/candidates"
)

var (
	initOnce   sync.Once
	dictionary []candidates.Entry // default ranked dictionary
	initialErr error
)

// Init loads the default dictionary exactly once: SOLVER_WORDS_FILE if set,
// otherwise the embedded frequency list. Returns an error if the resulting
// dictionary is empty.
func Init() error {
	initOnce.Do(func() {
		if path := os.Getenv("SOLVER_WORDS_FILE"); path != "" {
			dictionary, initialErr = LoadRanked(path)
		} else {
			dictionary, initialErr = parseRanked(strings.NewReader(assets.DefaultWords()))
		}
		if initialErr == nil && len(dictionary) == 0 {
			initialErr = errors.New("words: dictionary is empty")
		}
	})
	return initialErr
}

// Dictionary returns a copy of the default ranked dictionary.
// Callers own the copy; filtering one session never affects another.
func Dictionary() []candidates.Entry {
	out := make([]candidates.Entry, len(dictionary))
	copy(out, dictionary)
	return out
}

// Stats returns the size of the loaded default dictionary.
func Stats() int { return len(dictionary) }

// LoadRanked reads "word,count" lines from a file.
func LoadRanked(path string) ([]candidates.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseRanked(f)
}

// parseRanked scans ranked dictionary lines from r.
func parseRanked(r io.Reader) ([]candidates.Entry, error) {
	var out []candidates.Entry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(strings.ToLower(sc.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, count, found := strings.Cut(line, ",")
		if !found {
			return nil, fmt.Errorf("words: couldn't find separator ',' in %q", line)
		}
		rank, err := strconv.ParseUint(strings.TrimSpace(count), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("words: bad frequency in %q: %w", line, err)
		}
		word = strings.TrimSpace(word)
		if !isAlpha(word) {
			continue
		}
		out = append(out, candidates.Entry{Word: word, Rank: rank})
	}
	return out, sc.Err()
}

// LoadPlain reads one word per line from a file, keeping only lowercase
// alphabetic words.
func LoadPlain(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") || !isAlpha(w) {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// isAlpha reports whether s is non-empty and all lowercase ASCII letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
