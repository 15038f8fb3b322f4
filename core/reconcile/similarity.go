package reconcile

import (
	"sort"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Similarity returns 1 - distance/maxLen over runes. Two empty strings are
// identical.
func Similarity(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 1.0
	}
	d := levenshtein.ComputeDistance(a, b)
	// Integer numerator keeps exact ratios such as 4/5 equal to the 0.8 literal.
	return float64(maxLen-d) / float64(maxLen)
}

type scored struct {
	value string
	score float64
}

// closest returns up to n candidates scoring at least cutoff against word,
// best first. Ties rank the lexically greater candidate first. Duplicate
// candidates are kept.
func closest(word string, candidates []string, n int, cutoff float64) []string {
	if n <= 0 {
		return nil
	}

	var hits []scored
	for _, c := range candidates {
		if s := Similarity(word, c); s >= cutoff {
			hits = append(hits, scored{value: c, score: s})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].value > hits[j].value
	})

	if len(hits) > n {
		hits = hits[:n]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.value
	}
	return out
}
