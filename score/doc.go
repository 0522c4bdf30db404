// Package score implements the two independent scoring rules a candidate
// (variable, delta) move is ranked by: lift (feasible-phase, objective-only)
// and neighbor (constraint-violation-driven, used by every move generator).
//
// Both rules are plain functions of a *search.State plus a candidate; they
// never mutate state. Tie-breaking is a separate comparator selected by
// name, mirroring the "selectable by name or user callback" contract.
package score
