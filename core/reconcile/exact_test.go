package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchExact(t *testing.T) {
	lookup := BuildLookup([]Entry{
		{RecordID: "u1", Repo: "acme/widget"},
		{RecordID: "u2", Repo: "acme/gadget"},
	})

	primary := []Entry{
		{RecordID: "h1", RepoSource: "https://github.com/acme/widget", Repo: "acme/widget"},
		{RecordID: "h2", RepoSource: "not a repo", Repo: ""},
		{RecordID: "h3", RepoSource: "acme/missing", Repo: "acme/missing"},
		{RecordID: "", RepoSource: "acme/gadget", Repo: "acme/gadget"},
	}

	matches, unmatched := MatchExact(primary, lookup)

	assert.Equal(t, []Match{
		{HighwayID: "h1", UnifiedID: "u1", Repo: "acme/widget"},
		{HighwayID: "", UnifiedID: "u2", Repo: "acme/gadget"},
	}, matches)
	assert.Equal(t, []Unmatched{
		{RecordID: "h2", RepoURL: "not a repo", Repo: ""},
		{RecordID: "h3", RepoURL: "acme/missing", Repo: "acme/missing"},
	}, unmatched)
}

// TestMatchExact_Partition checks that every primary entry lands in exactly
// one output.
func TestMatchExact_Partition(t *testing.T) {
	lookup := BuildLookup([]Entry{
		{RecordID: "u1", Repo: "a/b"},
		{RecordID: "u2", Repo: "c/d"},
	})
	primary := []Entry{
		{RecordID: "1", Repo: "a/b"},
		{RecordID: "2", Repo: "x/y"},
		{RecordID: "3", Repo: ""},
		{RecordID: "4", Repo: "c/d"},
		{RecordID: "5", Repo: "a/b"},
	}

	matches, unmatched := MatchExact(primary, lookup)
	assert.Equal(t, len(primary), len(matches)+len(unmatched))

	seen := map[string]int{}
	for _, m := range matches {
		seen[m.HighwayID]++
	}
	for _, u := range unmatched {
		seen[u.RecordID]++
	}
	for _, e := range primary {
		assert.Equal(t, 1, seen[e.RecordID], e.RecordID)
	}
}

func TestMatchExact_IndependentOfReferenceOrder(t *testing.T) {
	reference := []Entry{
		{RecordID: "u1", Repo: "x/y"},
		{RecordID: "u2", Repo: "a/b"},
		{RecordID: "u3", Repo: "m/n"},
	}
	reversed := []Entry{reference[2], reference[1], reference[0]}
	primary := []Entry{{RecordID: "h1", Repo: "a/b"}}

	for _, ref := range [][]Entry{reference, reversed} {
		matches, unmatched := MatchExact(primary, BuildLookup(ref))
		assert.Len(t, unmatched, 0)
		assert.Equal(t, []Match{{HighwayID: "h1", UnifiedID: "u2", Repo: "a/b"}}, matches)
	}
}
