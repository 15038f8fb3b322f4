package reconcile

import "repo-reconciler/core/repoid"

// MatchFuzzy proposes candidates for unmatched entries from every reference
// identifier in the lookup.
func MatchFuzzy(unmatched []Unmatched, lookup *Lookup, opts FuzzyOptions) []PossibleMatch {
	refs := make([]repoid.ID, 0, lookup.Len())
	refRepos := make([]string, 0, lookup.Len())
	for _, r := range lookup.Repos() {
		id, ok := repoid.Parse(r)
		if !ok {
			continue
		}
		refs = append(refs, id)
		refRepos = append(refRepos, r)
	}

	names := make([]string, len(refs))
	owners := make([]string, len(refs))
	for i, id := range refs {
		names[i] = id.Name
		owners[i] = id.Owner
	}

	var possible []PossibleMatch
	for _, u := range unmatched {
		if u.Repo == "" {
			continue
		}
		id, ok := repoid.Parse(u.Repo)
		if !ok {
			continue
		}

		emit := func(i int, reason Reason) {
			unifiedID, _ := lookup.Get(refRepos[i])
			possible = append(possible, PossibleMatch{
				HighwayID:   u.RecordID,
				HighwayURL:  u.RepoURL,
				HighwayRepo: u.Repo,
				UnifiedID:   unifiedID,
				UnifiedRepo: refRepos[i],
				Reason:      reason,
			})
		}

		for _, name := range closest(id.Name, names, opts.MaxCandidates, opts.Threshold) {
			for i, ref := range refs {
				if ref.Name == name {
					emit(i, ReasonSimilarName)
				}
			}
		}

		for _, owner := range closest(id.Owner, owners, opts.MaxCandidates, opts.Threshold) {
			for i, ref := range refs {
				if ref.Owner == owner && ref.Name == id.Name {
					emit(i, ReasonSimilarOwner)
				}
			}
		}
	}

	return possible
}
