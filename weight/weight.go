package weight

import (
	"github.com/shaowei-cai-group/Local-MIP/model"
	"github.com/shaowei-cai-group/Local-MIP/search"
)

// Update dispatches to Monotone or, with probability smoothProb/10000, to
// Smooth — the PAWS coin flip from spec.md §4.5. smoothProb is in
// [0, 10000]; 0 disables smoothing entirely.
func Update(st *search.State, smoothProb int) {
	if smoothProb > 0 && st.Rand.Intn(10000) < smoothProb {
		Smooth(st)
		return
	}
	Monotone(st)
}

// Monotone increments weight[c] for every c in the unsat list, and
// weight[0] too if the run is feasible with an empty unsat list.
func Monotone(st *search.State) {
	for _, c := range st.UnsatList() {
		st.Weight[c]++
	}
	if st.FoundFeasible && len(st.UnsatList()) == 0 {
		st.Weight[model.ObjectiveRow]++
	}
}

// Smooth decrements weight[c] (clamped at 0) for every satisfied
// non-objective row, and weight[0] too if the objective row has broken
// through.
func Smooth(st *search.State) {
	for _, c := range st.SatList() {
		if st.Weight[c] > 0 {
			st.Weight[c]--
		}
	}
	if st.FoundFeasible && st.ObjBreakthrough && st.Weight[model.ObjectiveRow] > 0 {
		st.Weight[model.ObjectiveRow]--
	}
}
