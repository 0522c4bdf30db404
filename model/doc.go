// Package model is the model store: Variables, Constraints, and the
// Store that owns them.
//
// Store is the sole owner of variables and constraints. It maintains dual
// indexing — every (constraint, variable) term knows its position in both
// the constraint's term list and the variable's incidence list — so that
// term deletion during preprocessing is O(1) (swap-with-last on both
// sides, then a single pointer fix-up on the surviving neighbour).
//
// Incidences are expressed as integer indices (VarID, ConID), never
// pointers: the bipartite variable/constraint graph has no reference
// cycles to reason about.
//
// Once preprocessing completes, the search writes only one field of the
// Store: the objective row's RHS, which search.State.MaybeCapture rewrites
// as the improvement threshold (see Constraint.RHS). search/State owns all
// other mutable per-step data itself.
package model
