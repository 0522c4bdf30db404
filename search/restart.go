package search

// ShouldRestart reports whether the no-improvement budget has been
// exceeded (spec.md §4.6). restartStep == 0 disables restarts entirely.
func (st *State) ShouldRestart(restartStep uint64) bool {
	if restartStep == 0 {
		return false
	}
	return st.Step-st.LastImproveStep > restartStep
}

// BeginRestart performs the bookkeeping common to every restart policy:
// reset weights to 1, clear tabu, mark the current step as the new
// improvement baseline, and bump the restart counter. It does not touch
// Value or Activity: the caller (restart.Apply) writes the new Value draw
// itself, since the per-policy random/best/hybrid draw needs no
// search-internal state beyond Value/Best/Rand, which are already
// exported, and then calls FinishRestart for the full activity refresh.
func (st *State) BeginRestart() {
	for c := range st.Weight {
		st.Weight[c] = 1
	}
	st.ResetTabu()
	st.LastImproveStep = st.Step
	st.RestartCount++
}

// FinishRestart re-derives Activity/partition from the freshly reassigned
// Value array. Call once the restart policy has finished writing Value.
func (st *State) FinishRestart() {
	st.Refresh()
}
