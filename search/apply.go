package search

import "github.com/shaowei-cai-group/Local-MIP/model"

// Apply commits one move, updating Value and Activity incrementally (spec
// component design §4.7). j's bound is respected defensively even though every generator
// already tries to propose an in-bounds delta.
func (st *State) Apply(j model.VarID, delta float64) {
	variable := &st.Store.Vars[j]
	target := st.Value[j] + delta
	switch {
	case target < variable.Lower:
		target = variable.Lower
	case target > variable.Upper:
		target = variable.Upper
	}
	delta = target - st.Value[j]
	st.Value[j] = target

	for p, c := range variable.ConIdx {
		k := variable.PosInCon[p]
		coeff := st.Store.Cons[c].Coeffs[k]

		wasSat := false
		if c != model.ObjectiveRow {
			wasSat = st.Sat(c)
		}

		st.bump(c, coeff*delta)

		if c != model.ObjectiveRow {
			nowSat := st.Sat(c)
			if wasSat && !nowSat {
				st.moveToUnsat(c)
			} else if !wasSat && nowSat {
				st.moveToSat(c)
			}
		}
	}

	st.activityHits++
	if st.activityHits >= st.ActivityPeriod {
		st.Refresh()
	}

	st.markTabu(j, delta)

	st.ObjBreakthrough = st.ActivityValue(model.ObjectiveRow) <= st.Store.Cons[model.ObjectiveRow].RHS

	if n := len(st.unsatList); n < st.MinUnsatCon {
		st.MinUnsatCon = n
	}
}
