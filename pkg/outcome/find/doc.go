// Package find adapts ambiguous value-or-absent lookups into outcome
// containers, keeping "found but nil" distinct from "not found".
//
// Highlights:
// - At/AtResult: index lookup in a sequence
// - First/FirstResult/FirstTry: first element matching a predicate
// - Key/KeyResult: map lookup by key-set membership
// - KeyIn: dynamic map lookup, panicking with ErrNotMap on a non-map
// - ByKey: first-match lookup in an ordered key-value list
package find
