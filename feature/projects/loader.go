package projects

import (
	"fmt"

	"repo-reconciler/core/columns"
	"repo-reconciler/core/config"
	"repo-reconciler/core/reconcile"
	"repo-reconciler/core/repoid"
	"repo-reconciler/core/tabular"
)

// Source describes one export to load.
type Source struct {
	// Name labels the export in logs and errors.
	Name string
	// Path is the local file to read.
	Path string
	// RecordHint locates the record id column.
	RecordHint string
	// RepoHints locate repository columns in order of preference.
	RepoHints []string
}

// HighwaySource describes the highway demo export.
func HighwaySource(in config.InputConfig, cols config.ColumnsConfig) Source {
	return Source{
		Name:       "highway",
		Path:       in.Highway,
		RecordHint: cols.Record,
		RepoHints:  []string{cols.Highway},
	}
}

// UnifiedSource describes the unified project export.
func UnifiedSource(in config.InputConfig, cols config.ColumnsConfig) Source {
	return Source{
		Name:       "unified",
		Path:       in.Unified,
		RecordHint: cols.Record,
		RepoHints:  []string{cols.Playable, cols.Code},
	}
}

// Record is a raw row plus the fields derived while loading.
type Record struct {
	Row tabular.Row

	// RecordID is the raw value of the record column.
	RecordID string

	// RepoSource is the raw value of the first repository column.
	RepoSource string

	// Repo is the normalized identifier, empty when none was recognized.
	Repo string
}

// Entry reduces the record to what the matcher needs.
func (r Record) Entry() reconcile.Entry {
	return reconcile.Entry{RecordID: r.RecordID, RepoSource: r.RepoSource, Repo: r.Repo}
}

// Load reads the export and derives record ids and identifiers, in file order.
// Required columns are resolved once; a missing one fails the whole load.
func Load(src Source) ([]Record, error) {
	tbl, err := tabular.ReadFile(src.Path)
	if err != nil {
		return nil, err
	}
	return loadTable(src, tbl)
}

func loadTable(src Source, tbl *tabular.Table) ([]Record, error) {
	if len(src.RepoHints) == 0 {
		return nil, fmt.Errorf("%s: no repository column hints", src.Name)
	}

	resolver := columns.NewResolver(tbl.Header)
	recordCol, err := resolver.Resolve(src.RecordHint)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name, err)
	}
	repoCols, err := resolver.ResolveAll(src.RepoHints...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name, err)
	}

	rows := tbl.Records()
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := Record{
			Row:        row,
			RecordID:   row.Get(recordCol),
			RepoSource: row.Get(repoCols[0]),
		}
		for _, c := range repoCols {
			if repo := repoid.NormalizeString(row.Get(c)); repo != "" {
				rec.Repo = repo
				break
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// Entries converts loaded records for the matcher.
func Entries(records []Record) []reconcile.Entry {
	out := make([]reconcile.Entry, len(records))
	for i, r := range records {
		out[i] = r.Entry()
	}
	return out
}
