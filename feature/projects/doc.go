// Package projects reconciles the highway demo export against the unified
// project registry.
//
// It owns the record loading step (tolerant column resolution plus identifier
// normalization), hands the loaded entries to core/reconcile, and writes the
// three reports: exact matches, unmatched highway records and fuzzy
// candidates. A separate pass deduplicates the exact-match report by unified
// record id.
//
// # Sources
//
// Each export is described by a Source: a record-id hint and an ordered list
// of repository-column hints. The first hint whose value normalizes wins; the
// raw value of the first repository column is what the unmatched report shows.
//
//   - highway: record hint "record", repository hints ["git"]
//   - unified: record hint "record", repository hints ["play", "code"]
//
// # Storage
//
// When object storage is enabled, inputs are downloaded before loading and
// reports are uploaded after they are written. A run never writes a report
// before both inputs loaded successfully.
package projects
