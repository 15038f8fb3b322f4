package reconcile

// Reconcile runs exact matching of highway against unified, then fuzzy
// matching of whatever stayed unmatched.
func Reconcile(highway, unified []Entry, opts FuzzyOptions) *Result {
	lookup := BuildLookup(unified)

	matches, unmatched := MatchExact(highway, lookup)
	possible := MatchFuzzy(unmatched, lookup, opts)

	unrecognized := 0
	for _, e := range highway {
		if e.Repo == "" {
			unrecognized++
		}
	}

	return &Result{
		Matches:   matches,
		Unmatched: unmatched,
		Possible:  possible,
		Summary: Summary{
			HighwayRecords: len(highway),
			UnifiedRecords: len(unified),
			UnifiedRepos:   lookup.Len(),
			Unrecognized:   unrecognized,
			Collisions:     lookup.Collisions(),
			Matches:        len(matches),
			Unmatched:      len(unmatched),
			Possible:       len(possible),
		},
	}
}
