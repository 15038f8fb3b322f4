// Package dedupe removes repeated rows from a tabular report by key column.
//
// The header is kept as-is. Data rows keep their original order; a row whose
// key cell was already seen in the same run is dropped, so the first
// occurrence wins. The matcher's exact-match report is deduplicated on its
// second column, the unified record id.
package dedupe
