package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/candidates"
)

func TestUpdateSimple(t *testing.T) {
	s := NewPlain(3, []string{"abc", "bcd", "pqr", "abf", "abr"})
	require.Equal(t, 5, s.Size())

	n, err := s.Update("abf", "ggb")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"abc", "abr"}, s.AllWords())

	n, err = s.Update("abc", "ggb")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"abr"}, s.AllWords())
}

func TestUpdateChain(t *testing.T) {
	dict := []string{
		"crank", "frank", "prank", "drank", "blank", "flank",
		"drunk", "stink", "swing", "about", "thick", "brick", "crane",
	}
	s := NewPlain(5, dict)

	_, err := s.Update("stink", "bbbgg")
	require.NoError(t, err)
	require.NotZero(t, s.Size())
	for _, w := range s.AllWords() {
		assert.NotContains(t, w, "s")
		assert.NotContains(t, w, "t")
		assert.NotContains(t, w, "i")
		assert.Equal(t, byte('n'), w[3])
		assert.Equal(t, byte('k'), w[4])
	}

	_, err = s.Update("drunk", "bgbgg")
	require.NoError(t, err)
	assert.Equal(t, []string{"crank", "frank", "prank"}, s.AllWords())

	_, err = s.Update("prank", "bgggg")
	require.NoError(t, err)
	assert.Equal(t, []string{"crank", "frank"}, s.AllWords())

	_, err = s.Update("frank", "bgggg")
	require.NoError(t, err)
	assert.Equal(t, []string{"crank"}, s.AllWords())

	n, err := s.Update("crank", "ggggg")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDuplicateLetterCaps(t *testing.T) {
	t.Run("green then black keeps single occurrence", func(t *testing.T) {
		// Guess "app" with the first p correct and the second absent: the
		// target has exactly one p, at index 1. Words with two or more p's
		// must go; one p at the confirmed spot stays.
		s := NewPlain(3, []string{"app", "apt", "ape", "ppp", "opp"})
		n, err := s.Update("app", "ggb")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, []string{"apt", "ape"}, s.AllWords())
	})

	t.Run("yellow then black caps occurrence count", func(t *testing.T) {
		// In "apple" the first p is present elsewhere and the second absent:
		// candidates keep exactly one p, away from both guessed positions.
		s := NewPlain(5, []string{"polly", "pollp", "spoll", "booly", "apoll", "polle"})
		n, err := s.Update("apple", "bybgb")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, []string{"polly"}, s.AllWords())
	})

	t.Run("letter fully absent removes all occurrences", func(t *testing.T) {
		s := NewPlain(3, []string{"pop", "tar", "rat"})
		_, err := s.Update("ppp", "bbb")
		require.NoError(t, err)
		assert.Equal(t, []string{"tar", "rat"}, s.AllWords())
	})
}

func TestUpdateMonotonic(t *testing.T) {
	dict := []string{"crank", "frank", "prank", "drank", "blank", "drunk", "crane", "brick"}
	s := NewPlain(5, dict)
	steps := []struct{ guess, feedback string }{
		{"stink", "bbbgg"},
		{"drunk", "bgbgg"},
		{"prank", "bgggg"},
		{"crane", "ggbby"},
	}
	prev := s.Size()
	for _, st := range steps {
		n, err := s.Update(st.guess, st.feedback)
		require.NoError(t, err)
		assert.LessOrEqual(t, n, prev, "size must never grow")
		prev = n
	}
}

// consistentWith re-derives the elimination rule for one guess+feedback pair
// independently of the Set plumbing, for cross-checking survivors.
func consistentWith(word, guess, feedback string) bool {
	handled := make([]bool, len(guess))
	for i := 0; i < len(guess); i++ {
		if handled[i] {
			continue
		}
		c := guess[i]
		switch feedback[i] {
		case 'g':
			if word[i] != c {
				return false
			}
		case 'y':
			if strings.IndexByte(word, c) < 0 || word[i] == c {
				return false
			}
		case 'b':
			if word[i] == c {
				return false
			}
			y, g := 0, 0
			for j := 0; j < len(guess); j++ {
				if guess[j] != c {
					continue
				}
				switch feedback[j] {
				case 'y':
					if word[j] == c {
						return false
					}
					y++
				case 'g':
					if word[j] != c {
						return false
					}
					g++
				}
				handled[j] = true
			}
			count := strings.Count(word, string(c))
			if y == 0 && g == 0 && count > 0 {
				return false
			}
			if y > 0 && count >= y+1 {
				return false
			}
			if g > 0 && count >= g+1 {
				return false
			}
		}
	}
	return true
}

func TestNoFalseSurvivors(t *testing.T) {
	dict := []string{
		"crank", "frank", "prank", "drank", "blank", "flank", "drunk",
		"stink", "swing", "about", "thick", "brick", "crane", "penny",
		"puppy", "apple", "ample", "maple", "plump", "spoon",
	}
	steps := []struct{ guess, feedback string }{
		{"apple", "bybgb"},
		{"crane", "ybbyb"},
		{"stink", "bbbyb"},
	}
	s := NewPlain(5, dict)
	for _, st := range steps {
		_, err := s.Update(st.guess, st.feedback)
		require.NoError(t, err)
		for _, w := range s.AllWords() {
			assert.True(t, consistentWith(w, st.guess, st.feedback),
				"word %q survived inconsistent with %q/%q", w, st.guess, st.feedback)
		}
	}
}

func TestRederivationMatchesIncremental(t *testing.T) {
	dict := []string{
		"crank", "frank", "prank", "drank", "blank", "flank", "drunk",
		"stink", "swing", "about", "thick", "brick", "crane",
	}
	steps := []struct{ guess, feedback string }{
		{"stink", "bbbgg"},
		{"drunk", "bgbgg"},
		{"prank", "bgggg"},
	}

	incremental := NewPlain(5, dict)
	for _, st := range steps {
		_, err := incremental.Update(st.guess, st.feedback)
		require.NoError(t, err)
	}

	// Filtering the original dictionary directly against the cumulative
	// history, via the independent rule checker, must land on the same set.
	expected := []string{}
	for _, w := range dict {
		keep := true
		for _, st := range steps {
			if !consistentWith(w, st.guess, st.feedback) {
				keep = false
				break
			}
		}
		if keep {
			expected = append(expected, w)
		}
	}
	require.NotEmpty(t, expected)
	assert.Equal(t, expected, incremental.AllWords())
}

func TestUpdateInvalidInput(t *testing.T) {
	t.Run("wrong lengths", func(t *testing.T) {
		s := NewPlain(3, []string{"abc", "abr"})
		before := s.AllWords()
		n, err := s.Update("abcd", "gggg")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t,
			"invalid argument: invalid number of characters in [abcd], and/or [gggg], they must contain exactly [3] characters",
			err.Error())
		assert.Equal(t, 2, n, "failed update reports the untouched size")
		assert.Equal(t, before, s.AllWords(), "failed update must not filter")
	})

	t.Run("bad status characters", func(t *testing.T) {
		s := NewPlain(3, []string{"abc", "abr"})
		before := s.AllWords()
		_, err := s.Update("abc", "abc")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t,
			"invalid argument: invalid status characters in [abc], status characters must be from: [byg]",
			err.Error())
		assert.Equal(t, before, s.AllWords())
	})

	t.Run("feedback too short", func(t *testing.T) {
		s := NewPlain(3, []string{"abc"})
		_, err := s.Update("abc", "gg")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestConstructionDropsWrongLengths(t *testing.T) {
	s := NewPlain(3, []string{"abc", "abcd", "ab", "xyz"})
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, []string{"abc", "xyz"}, s.AllWords())
}

func TestRankedOrdering(t *testing.T) {
	s := NewRanked(3, []candidates.Entry{
		{Word: "tap", Rank: 10},
		{Word: "pat", Rank: 900},
		{Word: "apt", Rank: 50},
		{Word: "toolong", Rank: 9999},
	})
	assert.Equal(t, []string{"pat", "apt", "tap"}, s.AllWords())
	assert.Equal(t, []string{"pat"}, s.Words(1))
	assert.Equal(t, []string{"pat", "apt", "tap"}, s.Words(99), "limit beyond size returns everything")
}

func TestSolved(t *testing.T) {
	assert.True(t, Solved("ggggg"))
	assert.True(t, Solved("g"))
	assert.False(t, Solved("ggggy"))
	assert.False(t, Solved("bgggg"))
	assert.False(t, Solved(""))
}
