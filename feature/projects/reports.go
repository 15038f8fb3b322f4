package projects

import (
	"repo-reconciler/core/reconcile"
	"repo-reconciler/core/tabular"
)

var (
	// MatchesHeader is the header of the exact-match and clean reports.
	MatchesHeader = []string{"Record_ID_highway", "Record_ID_unified", "normalized_repo"}

	// UnmatchedHeader is the header of the unmatched report.
	UnmatchedHeader = []string{"Record_ID", "Github_Url", "normalized_repo"}

	// PossibleHeader is the header of the fuzzy candidate report.
	PossibleHeader = []string{
		"Record_ID_highway", "Github_Url_highway", "normalized_repo_highway",
		"Record_ID_unified", "normalized_repo_unified", "match_reason",
	}
)

// WriteMatches writes the exact-match report.
func WriteMatches(path string, matches []reconcile.Match) error {
	rows := make([][]string, len(matches))
	for i, m := range matches {
		rows[i] = []string{m.HighwayID, m.UnifiedID, m.Repo}
	}
	return tabular.WriteFile(path, MatchesHeader, rows)
}

// WriteUnmatched writes the unmatched report.
func WriteUnmatched(path string, unmatched []reconcile.Unmatched) error {
	rows := make([][]string, len(unmatched))
	for i, u := range unmatched {
		rows[i] = []string{u.RecordID, u.RepoURL, u.Repo}
	}
	return tabular.WriteFile(path, UnmatchedHeader, rows)
}

// WritePossible writes the fuzzy candidate report.
func WritePossible(path string, possible []reconcile.PossibleMatch) error {
	rows := make([][]string, len(possible))
	for i, p := range possible {
		rows[i] = []string{p.HighwayID, p.HighwayURL, p.HighwayRepo, p.UnifiedID, p.UnifiedRepo, string(p.Reason)}
	}
	return tabular.WriteFile(path, PossibleHeader, rows)
}
