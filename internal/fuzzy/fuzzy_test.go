package fuzzy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tokyo Night", "tokyo night"},
		{"  TOKYO \t  night  ", "tokyo night"},
		{"", ""},
		{"Dracula", "dracula"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestBest(t *testing.T) {
	names := []string{"Nord", "Dracula", "Gruvbox Dark", "Gruvbox Light", "Tokyo Night", "Solarized Dark"}

	tests := []struct {
		query string
		want  string
	}{
		{"drakula", "Dracula"},
		{"DRACULA", "Dracula"},
		{"tokyo", "Tokyo Night"},
		{"gruvbox light", "Gruvbox Light"},
		{"solarized", "Solarized Dark"},
		{"nord", "Nord"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := Best(names, tt.query)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBestEmpty(t *testing.T) {
	got, ok := Best(nil, "anything")
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestBestTieKeepsFirst(t *testing.T) {
	got, ok := Best([]string{"Same", "same", "SAME"}, "same")
	assert.True(t, ok)
	assert.Equal(t, "Same", got)
}

func TestScoreExactMatchIsHighest(t *testing.T) {
	exact := Score("dracula", "Dracula")
	assert.InDelta(t, 1.05, exact, 1e-9)
	assert.Greater(t, exact, Score("dracula", "Dracula Pro"))
	assert.Greater(t, Score("dracula", "Dracula Pro"), Score("dracula", "Nord"))
}

func TestRank(t *testing.T) {
	ranked := Rank([]string{"Nord", "Dracula", "Dracula Pro"}, "dracula")
	if assert.Len(t, ranked, 3) {
		assert.Equal(t, "Dracula", ranked[0].Value)
		assert.Equal(t, "Dracula Pro", ranked[1].Value)
		assert.Equal(t, "Nord", ranked[2].Value)
		assert.Equal(t, []int{1, 2, 0}, []int{ranked[0].Index, ranked[1].Index, ranked[2].Index})
		assert.GreaterOrEqual(t, ranked[0].Score, ranked[1].Score)
	}

	assert.Empty(t, Rank(nil, "x"))
}

func TestScoreEmptyStrings(t *testing.T) {
	assert.InDelta(t, 1.0, Score("", ""), 1e-9)
	assert.InDelta(t, 1.0, Score("   ", ""), 1e-9)

	got, ok := Best([]string{"Nord", ""}, " ")
	assert.True(t, ok)
	assert.Equal(t, "", got)

	ranked := Rank([]string{"Nord", "", "Dracula"}, "")
	if assert.Len(t, ranked, 3) {
		assert.Equal(t, 1, ranked[0].Index)
		for _, m := range ranked {
			assert.False(t, math.IsNaN(m.Score), "score for %q", m.Value)
		}
	}
}
