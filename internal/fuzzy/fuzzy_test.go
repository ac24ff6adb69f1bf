package fuzzy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/stormcmd/internal/fuzzy"
)

func candidates(texts ...string) []fuzzy.Candidate {
	out := make([]fuzzy.Candidate, len(texts))
	for i, t := range texts {
		out[i] = fuzzy.Candidate{Text: t, Data: i}
	}
	return out
}

func texts(matches []fuzzy.Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Text
	}
	return out
}

func TestFindSubsequence(t *testing.T) {
	got := fuzzy.Find("fs", candidates("Core: File Save", "Core: Close", "Find Selection"), 0)
	assert.ElementsMatch(t, []string{"Core: File Save", "Find Selection"}, texts(got))
}

func TestFindPrefersPrefixAndBoundaries(t *testing.T) {
	got := fuzzy.Find("save", candidates("Autosave Buffers", "Save", "Save All"), 0)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Save", "Save All", "Autosave Buffers"}, texts(got))
	assert.Greater(t, got[0].Score, got[2].Score)
}

func TestFindIgnoresCase(t *testing.T) {
	got := fuzzy.Find("RELOAD", candidates("Core: Reload Menus"), 0)
	require.Len(t, got, 1)
	// Greedy scanning takes the first "r" and "e" of "Core".
	assert.Equal(t, []int{2, 3, 8, 9, 10, 11}, got[0].Positions)
}

func TestFindEmptyQuery(t *testing.T) {
	cs := candidates("b", "a", "c")
	got := fuzzy.Find("  ", cs, 2)
	assert.Equal(t, []string{"b", "a"}, texts(got))
	assert.Zero(t, got[0].Score)
}

func TestFindLimitAndData(t *testing.T) {
	got := fuzzy.Find("a", candidates("a", "ab", "abc"), 1)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Text)
	assert.Equal(t, 0, got[0].Data)
}

func TestFindNoMatch(t *testing.T) {
	assert.Empty(t, fuzzy.Find("zz", candidates("Save"), 0))
}
