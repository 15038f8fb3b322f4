// Package repoid normalizes loosely formatted repository references into a
// canonical "owner/name" identifier.
//
// Two input shapes are recognized:
//
//   - GitHub URLs in any form that contains "github.com" followed by ':' or '/'
//     (https, ssh, scp-like "git@github.com:owner/name.git", bare host paths).
//   - Bare "owner/name" strings without whitespace in either segment.
//
// Anything else is reported as unrecognized, which routes the owning record to
// the unmatched path rather than raising an error.
//
// # Compatibility
//
// The URL path strips ".git" only as a suffix of the name, while the bare path
// removes every ".git" occurrence from the name. Existing exports depend on
// this, so both paths keep their own rule.
//
// # Usage
//
//	id, ok := repoid.Normalize("https://github.com/Foo/Bar.git")
//	// id.String() == "foo/bar", ok == true
package repoid
