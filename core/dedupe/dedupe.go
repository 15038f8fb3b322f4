package dedupe

import (
	"errors"
	"fmt"

	"repo-reconciler/core/tabular"
)

// DefaultKeyColumn is the unified record id column of the exact-match report.
const DefaultKeyColumn = 1

// ErrNoHeader is returned for input without a header row.
var ErrNoHeader = errors.New("dedupe: input has no header row")

// ShortRowError reports a data row that has no cell at the key column.
type ShortRowError struct {
	Row       int
	KeyColumn int
	Width     int
}

func (e *ShortRowError) Error() string {
	return fmt.Sprintf("dedupe: row %d has %d columns, key column %d is out of range", e.Row, e.Width, e.KeyColumn)
}

// Stats summarizes a deduplication run.
type Stats struct {
	Input   int
	Kept    int
	Dropped int
}

// Rows deduplicates rows[1:] by keyColumn. rows[0] is the header.
func Rows(rows [][]string, keyColumn int) ([][]string, error) {
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}
	if keyColumn < 0 {
		return nil, fmt.Errorf("dedupe: invalid key column %d", keyColumn)
	}

	seen := make(map[string]struct{})
	out := [][]string{rows[0]}
	for i, row := range rows[1:] {
		if keyColumn >= len(row) {
			return nil, &ShortRowError{Row: i + 1, KeyColumn: keyColumn, Width: len(row)}
		}
		key := row[keyColumn]
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, row)
	}
	return out, nil
}

// File deduplicates the report at in and writes the result to out.
func File(in, out string, keyColumn int) (Stats, error) {
	tbl, err := tabular.ReadFile(in)
	if err != nil {
		if errors.Is(err, tabular.ErrEmpty) {
			return Stats{}, fmt.Errorf("%s: %w", in, ErrNoHeader)
		}
		return Stats{}, err
	}

	rows := append([][]string{tbl.RawHeader()}, tbl.Rows...)
	cleaned, err := Rows(rows, keyColumn)
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", in, err)
	}

	if err := tabular.WriteFile(out, cleaned[0], cleaned[1:]); err != nil {
		return Stats{}, err
	}

	return Stats{
		Input:   len(tbl.Rows),
		Kept:    len(cleaned) - 1,
		Dropped: len(tbl.Rows) - (len(cleaned) - 1),
	}, nil
}

// Config holds deduplication settings.
type Config struct {
	// KeyColumn is the zero-based column holding the key.
	KeyColumn int `mapstructure:"key_column" default:"1"`
}
