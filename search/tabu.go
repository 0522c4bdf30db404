package search

import "github.com/shaowei-cai-group/Local-MIP/model"

// markTabu updates j's tenure bookkeeping after a committed move of the
// given (already bound-clamped) delta, per spec.md §4.7 step 5. The random
// part of the tenure is drawn from [0, TabuVariation), and is 0 when
// TabuVariation is 0.
func (st *State) markTabu(j model.VarID, delta float64) {
	switch {
	case delta > 0:
		st.LastIncStep[j] = st.Step
		st.AllowDecStep[j] = st.Step + st.TabuBase + uint64(st.Rand.Int63n(int64(max(st.TabuVariation, 1))))
		st.lastDeltaSign[j] = 1
	case delta < 0:
		st.LastDecStep[j] = st.Step
		st.AllowIncStep[j] = st.Step + st.TabuBase + uint64(st.Rand.Int63n(int64(max(st.TabuVariation, 1))))
		st.lastDeltaSign[j] = -1
	}
}

// Tabu reports whether (j, delta) is currently forbidden by tenure, per
// the predicate in spec.md §4.4:
//
//	tabu(j, δ) := (δ<0 ∧ cur_step < allow_dec_step[j]) ∨ (δ>0 ∧ cur_step < allow_inc_step[j])
func (st *State) Tabu(j model.VarID, delta float64) bool {
	switch {
	case delta < 0:
		return st.Step < st.AllowDecStep[j]
	case delta > 0:
		return st.Step < st.AllowIncStep[j]
	default:
		return false
	}
}

// ImmediateReversal reports whether delta would undo j's previous step,
// the stricter tabu form used by the random generator (unsat_mtm_bm_random).
func (st *State) ImmediateReversal(j model.VarID, delta float64) bool {
	switch st.lastDeltaSign[j] {
	case 1:
		return delta < 0
	case -1:
		return delta > 0
	default:
		return false
	}
}

// Age is max(last_inc_step[j], last_dec_step[j]), used by the lift_age and
// progress_age tie-breaks.
func (st *State) Age(j model.VarID) uint64 {
	if st.LastIncStep[j] > st.LastDecStep[j] {
		return st.LastIncStep[j]
	}
	return st.LastDecStep[j]
}

// ResetTabu zeroes every tenure array, invoked by restarts.
func (st *State) ResetTabu() {
	for i := range st.AllowIncStep {
		st.AllowIncStep[i] = 0
		st.AllowDecStep[i] = 0
		st.LastIncStep[i] = 0
		st.LastDecStep[i] = 0
		st.lastDeltaSign[i] = 0
	}
}
