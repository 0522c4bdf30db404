package neighbor

import (
	"github.com/shaowei-cai-group/Local-MIP/model"
	"github.com/shaowei-cai-group/Local-MIP/search"
)

// LiftCandidates populates ol with one candidate per non-fixed
// objective-term variable, using the admissible-interval projection
// lift_delta (spec.md §4.4). Only meaningful in the feasible phase; the
// driver checks st.FoundFeasible before calling this.
func LiftCandidates(st *search.State, ol *OpList) {
	ol.Reset()
	obj := &st.Store.Cons[model.ObjectiveRow]
	for _, v := range obj.VarIdx {
		if st.Store.Vars[v].Kind == model.Fixed {
			continue
		}
		delta := liftDelta(st, v)
		if dropNearZero(st, delta) || st.Tabu(v, delta) {
			continue
		}
		ol.Push(int(v), delta)
	}
}
