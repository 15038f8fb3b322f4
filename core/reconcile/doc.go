// Package reconcile matches two record sets that reference source-code
// repositories.
//
// The reconcile system works in two passes over in-memory entries whose
// repository references have already been normalized (see core/repoid):
//
// 1. Exact: a Lookup is built once from the reference (unified) set, keyed by
//    normalized identifier. Each primary (highway) entry either matches the
//    lookup or is reported as unmatched. Every primary entry lands in exactly
//    one of the two outputs, in input order.
//
// 2. Fuzzy: each unmatched entry with a usable identifier is compared against
//    every reference identifier, including those already matched. Candidate
//    repository names and owners are ranked by normalized edit similarity and
//    cut at a threshold. Candidates are reported as PossibleMatch rows tagged
//    with a reason; duplicates are kept on purpose.
//
// # Lookup collisions
//
// When two reference entries share a normalized identifier, the later record
// id replaces the earlier one while the key keeps its first position. Whether
// first-wins was intended upstream is unconfirmed, so this behavior is kept
// as-is.
//
// # Usage Example
//
//	result := reconcile.Reconcile(highway, unified, reconcile.DefaultFuzzyOptions())
//	for _, m := range result.Matches {
//	    fmt.Println(m.HighwayID, m.UnifiedID, m.Repo)
//	}
package reconcile
