package reconcile

// Entry is a loaded record reduced to the fields the matcher needs.
type Entry struct {
	// RecordID is the raw record id; it may be empty.
	RecordID string

	// RepoSource is the raw value the identifier was read from.
	RepoSource string

	// Repo is the normalized "owner/name" identifier, or empty when the
	// source was not recognized.
	Repo string
}

// Match is an exact pairing of a highway record and a unified record.
type Match struct {
	HighwayID string
	UnifiedID string
	Repo      string
}

// Unmatched is a highway record with no exact counterpart.
type Unmatched struct {
	RecordID string
	RepoURL  string
	Repo     string
}

// Reason tags why a PossibleMatch was proposed.
type Reason string

const (
	// ReasonSimilarName is used when the repository names are close.
	ReasonSimilarName Reason = "similar repo name"
	// ReasonSimilarOwner is used when the names are equal and the owners are close.
	ReasonSimilarOwner Reason = "same repo name, similar username"
)

// PossibleMatch is a fuzzy candidate pairing.
type PossibleMatch struct {
	HighwayID   string
	HighwayURL  string
	HighwayRepo string
	UnifiedID   string
	UnifiedRepo string
	Reason      Reason
}

// FuzzyOptions tunes candidate selection.
type FuzzyOptions struct {
	// Threshold is the minimum similarity, inclusive, in [0, 1].
	Threshold float64 `mapstructure:"threshold" default:"0.8"`

	// MaxCandidates caps the ranked candidates kept per comparison.
	MaxCandidates int `mapstructure:"max_candidates" default:"3"`
}

// DefaultFuzzyOptions returns a 0.8 threshold and three candidates.
func DefaultFuzzyOptions() FuzzyOptions {
	return FuzzyOptions{Threshold: 0.8, MaxCandidates: 3}
}

// Result bundles the outputs of a full reconciliation.
type Result struct {
	Matches   []Match
	Unmatched []Unmatched
	Possible  []PossibleMatch
	Summary   Summary
}

// Summary provides aggregate counts.
type Summary struct {
	// HighwayRecords is the number of primary entries.
	HighwayRecords int

	// UnifiedRecords is the number of reference entries.
	UnifiedRecords int

	// UnifiedRepos is the number of distinct reference identifiers.
	UnifiedRepos int

	// Unrecognized counts primary entries without a usable identifier.
	Unrecognized int

	// Collisions counts reference entries whose identifier was already taken.
	Collisions int

	Matches   int
	Unmatched int
	Possible  int
}
