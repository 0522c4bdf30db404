// Package restart implements the three reassignment policies a restart
// can apply to every variable (spec.md §4.6): random, best, and hybrid.
// search.State.BeginRestart/FinishRestart own the weight-reset, tabu-reset,
// and activity-refresh bookkeeping common to all three; this package only
// decides the new Value array.
package restart
