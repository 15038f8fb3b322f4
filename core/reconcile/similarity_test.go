package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1.0},
		{"demo", "demo", 1.0},
		{"demo", "demo1", 0.8},
		{"demo", "", 0.0},
		{"kitten", "sitting", 4.0 / 7.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9, "%q vs %q", tt.a, tt.b)
	}

	// An exact 4/5 ratio must clear an inclusive 0.8 cutoff.
	assert.GreaterOrEqual(t, Similarity("demo", "demo2"), 0.8)
}

func TestClosest(t *testing.T) {
	t.Run("ThresholdAndOrder", func(t *testing.T) {
		got := closest("demo", []string{"demo1", "demo2", "unrelated"}, 3, 0.8)
		assert.Equal(t, []string{"demo2", "demo1"}, got)
	})

	t.Run("BestFirst", func(t *testing.T) {
		got := closest("widget", []string{"widgets", "widget", "wodget"}, 3, 0.8)
		assert.Equal(t, "widget", got[0])
		assert.Len(t, got, 3)
	})

	t.Run("Cap", func(t *testing.T) {
		got := closest("abcd", []string{"abce", "abcf", "abcg", "abch"}, 3, 0.7)
		assert.Equal(t, []string{"abch", "abcg", "abcf"}, got)
	})

	t.Run("DuplicatesKept", func(t *testing.T) {
		got := closest("demo", []string{"demo", "demo"}, 3, 0.8)
		assert.Equal(t, []string{"demo", "demo"}, got)
	})

	t.Run("NonPositiveCap", func(t *testing.T) {
		assert.Empty(t, closest("demo", []string{"demo"}, 0, 0.8))
	})
}
