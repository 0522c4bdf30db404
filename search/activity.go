package search

import "github.com/shaowei-cai-group/Local-MIP/model"

// neumaierAdd adds x to the compensated pair (sum, comp) in place,
// returning the updated pair. This is Neumaier's improvement on Kahan
// summation: it corrects for the case |x| > |sum| as well as the reverse,
// which matters here because a single large coefficient can dominate an
// otherwise-small activity.
func neumaierAdd(sum, comp, x float64) (float64, float64) {
	t := sum + x
	if abs(sum) >= abs(x) {
		comp += (sum - t) + x
	} else {
		comp += (x - t) + sum
	}
	return t, comp
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Refresh recomputes every row's activity from scratch using compensated
// summation over Value, then reseeds the sat/unsat partition. Called once
// by New's caller before the first Apply, and periodically thereafter
// (every ActivityPeriod accepted moves) as a drift backstop against the
// incremental updates Apply performs.
//
// Activity[c] always holds the raw running sum and comp[c] the pending
// correction; readers use Gap/Sat (or ActivityValue) rather than Activity
// directly, since the true value is Activity[c]+comp[c].
func (st *State) Refresh() {
	for c := range st.Activity {
		var sum, comp float64
		con := &st.Store.Cons[c]
		for k, v := range con.VarIdx {
			sum, comp = neumaierAdd(sum, comp, con.Coeffs[k]*st.Value[v])
		}
		st.Activity[c] = sum
		st.comp[c] = comp
	}
	st.activityHits = 0
	st.rebuildPartition()
}

// bump applies delta*coeff to constraint c's compensated activity
// accumulator in place, used by Apply for the incremental per-incidence
// update (spec.md §4.7 step 3).
func (st *State) bump(c model.ConID, delta float64) {
	st.Activity[c], st.comp[c] = neumaierAdd(st.Activity[c], st.comp[c], delta)
}

// ActivityValue returns constraint c's true activity, merging the pending
// compensation term into the running sum. Gap/Sat use this internally;
// other packages (score) call it directly when they need the raw value
// rather than the gap to rhs.
func (st *State) ActivityValue(c model.ConID) float64 {
	return st.Activity[c] + st.comp[c]
}
