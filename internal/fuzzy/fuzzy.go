package fuzzy

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

const (
	jaroWinklerWeight = 0.7
	levenshteinWeight = 0.3
	wordHitBonus      = 0.05
)

// Match is a scored candidate.
type Match struct {
	Value string
	Score float64
	// Index is the candidate's position in the input slice.
	Index int
}

// Normalize lowercases s, collapses whitespace runs into one space and trims it.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Score rates how well candidate matches query. Higher is better.
func Score(query, candidate string) float64 {
	q := Normalize(query)
	c := Normalize(candidate)
	if q == c {
		// Levenshtein similarity of two empty strings is NaN.
		return jaroWinklerWeight + levenshteinWeight + wordHitBonus*float64(len(strings.Fields(q)))
	}

	jw := metrics.NewJaroWinkler()
	jw.CaseSensitive = false
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false

	score := jaroWinklerWeight*strutil.Similarity(q, c, jw) +
		levenshteinWeight*strutil.Similarity(q, c, lev)

	for _, w := range strings.Fields(q) {
		if strings.Contains(c, w) {
			score += wordHitBonus
		}
	}
	return score
}

// Best returns the highest scoring candidate. Ties keep the earliest one.
func Best(candidates []string, query string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	best, bestScore := candidates[0], Score(query, candidates[0])
	for _, c := range candidates[1:] {
		if s := Score(query, c); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best, true
}

// Rank scores every candidate and orders them best first. Equal scores keep
// their input order.
func Rank(candidates []string, query string) []Match {
	out := make([]Match, len(candidates))
	for i, c := range candidates {
		out[i] = Match{Value: c, Score: Score(query, c), Index: i}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
