package reconcile

// MatchExact partitions primary entries into matches and unmatched entries
// against the lookup. Order is preserved within each output.
func MatchExact(primary []Entry, lookup *Lookup) ([]Match, []Unmatched) {
	var (
		matches   []Match
		unmatched []Unmatched
	)

	for _, e := range primary {
		if e.Repo != "" {
			if id, ok := lookup.Get(e.Repo); ok {
				matches = append(matches, Match{
					HighwayID: e.RecordID,
					UnifiedID: id,
					Repo:      e.Repo,
				})
				continue
			}
		}
		unmatched = append(unmatched, Unmatched{
			RecordID: e.RecordID,
			RepoURL:  e.RepoSource,
			Repo:     e.Repo,
		})
	}

	return matches, unmatched
}
