package search

import "github.com/shaowei-cai-group/Local-MIP/model"

// MaybeCapture implements spec.md §4.8: whenever the unsat list is empty
// and either no feasible solution has been found yet or the objective has
// improved past the current threshold, record a new incumbent and tighten
// the objective row's rhs so the neighbor scorer treats "no breakthrough
// yet" uniformly with every other constraint.
//
// publish, if non-nil, is called with the new best objective under the
// same call (the external objective-logger hook from the concurrency
// model); it must not block.
func (st *State) MaybeCapture(publish func(float64)) bool {
	if len(st.unsatList) != 0 {
		return false
	}
	obj := st.ActivityValue(model.ObjectiveRow)
	if st.FoundFeasible && obj > st.Store.Cons[model.ObjectiveRow].RHS {
		return false
	}

	copy(st.Best, st.Value)
	st.BestObj = obj
	st.Store.Cons[model.ObjectiveRow].RHS = obj - st.Tol.Opt
	st.ObjBreakthrough = false
	st.FoundFeasible = true
	st.LastImproveStep = st.Step

	if publish != nil {
		publish(obj)
	}

	return true
}
