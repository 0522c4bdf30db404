// Package search holds the mutable per-step state of a local-search run:
// current and best variable values, per-constraint activities and
// weights, the sat/unsat partition, and tabu bookkeeping.
//
// State borrows a *model.Store (bounds, incidence, coefficients), writing
// only the objective row's RHS (MaybeCapture), and owns every mutable
// array itself — there is exactly one writer (the driver's goroutine) and
// no cycles between State and Store.
//
// Within this package Apply (apply.go) updates Value and Activity move by
// move and Refresh (activity.go) recomputes Activity from scratch. Value
// is also written directly by callers that reassign it wholesale
// (restart.Apply, the driver's objective-only path).
package search
