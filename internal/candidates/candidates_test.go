package candidates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainFiltering(t *testing.T) {
	newSet := func() *Plain {
		return NewPlain(3, []string{"abc", "bcd", "pqr", "abf", "abr"})
	}

	t.Run("exists", func(t *testing.T) {
		s := newSet()
		s.Exists('a')
		assert.Equal(t, []string{"abc", "abf", "abr"}, s.AllWords())
	})

	t.Run("exists at", func(t *testing.T) {
		s := newSet()
		s.ExistsAt('b', 1)
		assert.Equal(t, []string{"abc", "abf", "abr"}, s.AllWords())
	})

	t.Run("does not exist", func(t *testing.T) {
		s := newSet()
		s.DoesNotExist('b')
		assert.Equal(t, []string{"pqr"}, s.AllWords())
	})

	t.Run("does not exist at", func(t *testing.T) {
		s := newSet()
		s.DoesNotExistAt('c', 2)
		assert.Equal(t, []string{"bcd", "pqr", "abf", "abr"}, s.AllWords())
	})

	t.Run("remove if at least n", func(t *testing.T) {
		s := NewPlain(3, []string{"app", "apt", "ppp", "opp"})
		s.RemoveIfAtLeastN('p', 2)
		assert.Equal(t, []string{"apt"}, s.AllWords())
	})
}

func TestPlainConstructionDropsWrongLengths(t *testing.T) {
	s := NewPlain(3, []string{"abc", "toolong", "ab", "xyz"})
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, 3, s.WordSize())
}

func TestPlainWordsLimit(t *testing.T) {
	s := NewPlain(3, []string{"abc", "bcd", "pqr"})
	assert.Equal(t, []string{"abc"}, s.Words(1))
	assert.Equal(t, []string{"abc", "bcd", "pqr"}, s.Words(10), "limit beyond size returns everything")
	assert.Empty(t, NewPlain(3, nil).Words(5))
}

func TestRankedOrderAndFiltering(t *testing.T) {
	entries := []Entry{
		{Word: "tap", Rank: 10},
		{Word: "pat", Rank: 900},
		{Word: "apt", Rank: 50},
		{Word: "opt", Rank: 50},
		{Word: "toolong", Rank: 9999},
	}
	s := NewRanked(3, entries)

	require.Equal(t, 4, s.Size())
	// Descending rank; equal ranks keep their input order.
	assert.Equal(t, []string{"pat", "apt", "opt", "tap"}, s.AllWords())

	s.DoesNotExist('o')
	assert.Equal(t, []string{"pat", "apt", "tap"}, s.AllWords())

	s.ExistsAt('p', 0)
	assert.Equal(t, []string{"pat"}, s.AllWords())
}

func TestRankedSurvivesFilterOrder(t *testing.T) {
	s := NewRanked(3, []Entry{
		{Word: "pop", Rank: 5},
		{Word: "pat", Rank: 100},
		{Word: "tap", Rank: 50},
	})
	s.RemoveIfAtLeastN('p', 2)
	assert.Equal(t, []string{"pat", "tap"}, s.AllWords())
	// Remaining entries still expose ranks for callers that want them.
	ranks := s.Entries()
	require.Len(t, ranks, 2)
	assert.Equal(t, uint64(100), ranks[0].Rank)
}

func TestPositionalOpsPanicOutOfRange(t *testing.T) {
	p := NewPlain(3, []string{"abc"})
	assert.Panics(t, func() { p.ExistsAt('a', 3) })
	assert.Panics(t, func() { p.DoesNotExistAt('a', -1) })

	r := NewRanked(3, []Entry{{Word: "abc", Rank: 1}})
	assert.Panics(t, func() { r.ExistsAt('a', 5) })
}

func TestWordsClampsLimit(t *testing.T) {
	p := NewPlain(3, []string{"abc", "abr"})
	assert.Empty(t, p.Words(0))
	assert.Empty(t, p.Words(-1))

	r := NewRanked(3, []Entry{{Word: "abc", Rank: 1}, {Word: "abr", Rank: 2}})
	assert.Empty(t, r.Words(0))
	assert.Empty(t, r.Words(-5))
}
