package config

// InputConfig locates the two exports.
type InputConfig struct {
	// Highway is the demo submissions export.
	Highway string `mapstructure:"highway" default:"highway_demos.csv"`
	// Unified is the project registry export.
	Unified string `mapstructure:"unified" default:"unified_projects.csv"`
}

// OutputConfig locates the generated reports.
type OutputConfig struct {
	// Matches receives exact matches.
	Matches string `mapstructure:"matches" default:"matched_pairs.csv"`
	// Unmatched receives highway records without an exact match.
	Unmatched string `mapstructure:"unmatched" default:"unmatched_highway.csv"`
	// Possible receives fuzzy candidates.
	Possible string `mapstructure:"possible" default:"possible_matches.csv"`
	// Clean receives the deduplicated exact matches.
	Clean string `mapstructure:"clean" default:"matched_pairs_clean.csv"`
}

// ColumnsConfig holds the substring hints for required columns.
type ColumnsConfig struct {
	// Record locates the record id column in both exports.
	Record string `mapstructure:"record" default:"record"`
	// Highway locates the repository URL column of the highway export.
	Highway string `mapstructure:"highway" default:"git"`
	// Playable locates the preferred repository column of the unified export.
	Playable string `mapstructure:"playable" default:"play"`
	// Code locates the fallback repository column of the unified export.
	Code string `mapstructure:"code" default:"code"`
}
