package play

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

func runScript(t *testing.T, cfg Config, slv *solver.Solver, script string) (string, error) {
	t.Helper()
	var out strings.Builder
	c := NewClient(cfg, slv, strings.NewReader(script), &out)
	err := c.Run()
	return out.String(), err
}

func TestRunSolves(t *testing.T) {
	slv := solver.NewPlain(3, []string{"abc", "bcd", "pqr", "abf", "abr"})
	script := "abf\nggb\nabc\nggb\nabr\nggg\n"
	out, err := runScript(t, Config{WordSize: 3, DisplayLimit: 10}, slv, script)
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome! word size is: [3], display limit is: [10]")
	assert.Contains(t, out, "Only following 5 possible words remaining:")
	assert.Contains(t, out, "Congratulations! you eventually found the word!")
	assert.Equal(t, []string{"abr"}, slv.AllWords())
}

func TestRunDictionaryExhausted(t *testing.T) {
	slv := solver.NewPlain(3, []string{"abc"})
	out, err := runScript(t, Config{WordSize: 3, DisplayLimit: 10}, slv, "abd\nbbb\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Unable to find any suitable words from dictionary")
}

func TestRunAutoMode(t *testing.T) {
	slv := solver.NewRanked(5, []candidates.Entry{
		{Word: "crane", Rank: 100},
		{Word: "slate", Rank: 90},
	})
	out, err := runScript(t, Config{WordSize: 5, DisplayLimit: 10, Auto: true}, slv, "ggggg\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Guessing: crane")
	assert.Contains(t, out, "Congratulations!")
}

func TestRunStatusInsteadOfWordRecovery(t *testing.T) {
	slv := solver.NewPlain(3, []string{"bgy", "abc"})
	// User types a b/y/g-only string as the word, confirms the mistake, and
	// gets one more chance.
	script := "gyb\ny\nabc\nggg\n"
	out, err := runScript(t, Config{WordSize: 3, DisplayLimit: 10}, slv, script)
	require.NoError(t, err)
	assert.Contains(t, out, "Did you just enter status instead of words (y/n)?")
	assert.Contains(t, out, "Okay! Try again (last chance though)!")
	assert.Contains(t, out, "Congratulations!")
}

func TestRunRepromptsOnInvalidInput(t *testing.T) {
	slv := solver.NewPlain(3, []string{"abc", "abr"})
	// "toolong" and "12x" are rejected by the reader before reaching the
	// solver; then a valid round follows.
	script := "toolong\n12x\nabf\nggb\nabc\nggg\n"
	out, err := runScript(t, Config{WordSize: 3, DisplayLimit: 10}, slv, script)
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid input [toolong], try again:")
	assert.Contains(t, out, "Invalid input [12x], try again:")
	assert.Contains(t, out, "Congratulations!")
}

func TestRunEndsOnEOF(t *testing.T) {
	slv := solver.NewPlain(3, []string{"abc"})
	_, err := runScript(t, Config{WordSize: 3, DisplayLimit: 10}, slv, "")
	assert.Error(t, err)
}

func TestSampleLimits(t *testing.T) {
	slv := solver.NewPlain(3, []string{"abc", "bcd", "pqr", "abf", "abr"})
	c := NewClient(Config{WordSize: 3, DisplayLimit: 2}, slv, strings.NewReader(""), &strings.Builder{})

	got := c.sample()
	require.Len(t, got, 2)
	all := slv.AllWords()
	for _, w := range got {
		assert.Contains(t, all, w)
	}
	assert.NotEqual(t, got[0], got[1], "sampling is without replacement")
}

func TestRunNegativeDisplayLimit(t *testing.T) {
	// A bad display limit shows no suggestions but must not break the loop.
	slv := solver.NewPlain(3, []string{"abc", "abr"})
	script := "abf\nggb\nabc\nggg\n"
	out, err := runScript(t, Config{WordSize: 3, DisplayLimit: -1}, slv, script)
	require.NoError(t, err)
	assert.Contains(t, out, "There are 2 possible words")
	assert.Contains(t, out, "Congratulations!")
}
