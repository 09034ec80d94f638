// Package nilguard decides whether a "possibly nil dereference"
// advisory is already guarded by a preceding assertion proving the
// reference safe, and therefore should be withheld.
//
// The proof procedure is backward and block-local: starting from the
// diagnosed statement it scans earlier statements of the same block
// from nearest to farthest, then climbs to the enclosing statement and
// repeats. Matching is textual on purpose: it keeps the heuristic
// cheap and local, and it favors missed suppressions over wrong ones.
//
// Core components:
//
//   - Reference key derivation
//     Normalizes the diagnosed expression into the textual identity
//     of the reference believed to be possibly nil.
//
//   - Coverage
//     Relates an asserted expression's non-nullness proof to a
//     reference key, including optional-chaining prefixes.
//
//   - Catalog
//     The closed set of recognized assertion call shapes and
//     known-safe expression forms.
//
//   - Backward scan
//     The proof procedure itself, including invalidation by
//     reassignment, shadowing by declaration, and soft-assert scopes
//     where failed assertions do not interrupt control flow.
package nilguard
