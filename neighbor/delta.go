package neighbor

import (
	"math"

	"github.com/shaowei-cai-group/Local-MIP/model"
	"github.com/shaowei-cai-group/Local-MIP/search"
)

func isIntegral(k model.Kind) bool { return k != model.Real }

// clampDelta re-expresses a proposed delta for j so that value[j]+delta
// never leaves [lower, upper], matching the defensive clamp search.Apply
// performs as a backstop — generators do the same so a candidate's score
// (computed against the clamped delta) matches what Apply will actually
// do.
func clampDelta(st *search.State, j model.VarID, delta float64) float64 {
	v := &st.Store.Vars[j]
	target := st.Value[j] + delta
	switch {
	case target < v.Lower:
		return v.Lower - st.Value[j]
	case target > v.Upper:
		return v.Upper - st.Value[j]
	default:
		return delta
	}
}

// inequalityTight proposes a delta for variable j (term k of row c) aiming
// to make c just-satisfied, per spec.md §4.4. a is never zero (the
// zero-coefficient filter in model.Store.AddTerm guarantees it).
func inequalityTight(st *search.State, c model.ConID, k int, j model.VarID) float64 {
	con := &st.Store.Cons[c]
	a := con.Coeffs[k]
	gap := st.Gap(c)
	delta := -gap / a

	if isIntegral(st.Store.Vars[j].Kind) {
		target := st.Value[j] + delta
		if a > 0 {
			delta = math.Floor(target) - st.Value[j]
		} else {
			delta = math.Ceil(target) - st.Value[j]
		}
	}
	return clampDelta(st, j, delta)
}

// equalityTight is inequalityTight's equality-row counterpart: always
// round(.) rather than floor/ceil by sign of a.
func equalityTight(st *search.State, c model.ConID, k int, j model.VarID) float64 {
	con := &st.Store.Cons[c]
	a := con.Coeffs[k]
	gap := st.Gap(c)
	delta := -gap / a

	if isIntegral(st.Store.Vars[j].Kind) {
		target := st.Value[j] + delta
		delta = math.Round(target) - st.Value[j]
	}
	return clampDelta(st, j, delta)
}

// liftDelta computes the admissible-interval projection for j (spec.md
// §4.4): the widest move that keeps every non-objective row j touches
// feasible, projected onto j's bounds, then walked to the endpoint that
// decreases the objective.
func liftDelta(st *search.State, j model.VarID) float64 {
	v := &st.Store.Vars[j]
	lb, ub := v.Lower, v.Upper

	for p, c := range v.ConIdx {
		if c == model.ObjectiveRow {
			continue
		}
		k := v.PosInCon[p]
		con := &st.Store.Cons[c]
		a := con.Coeffs[k]
		gap := st.Gap(c)

		if con.Sense == model.EQ {
			if st.Sat(c) {
				lb, ub = st.Value[j], st.Value[j]
			}
			continue
		}

		bound := st.Value[j] - gap/a
		if a > 0 {
			if bound < ub {
				ub = bound
			}
		} else {
			if bound > lb {
				lb = bound
			}
		}
	}

	if isIntegral(v.Kind) {
		lb, ub = math.Ceil(lb), math.Floor(ub)
	}
	if lb > ub {
		return 0
	}

	if v.ObjCoeff > 0 {
		return lb - st.Value[j]
	}
	return ub - st.Value[j]
}

// breakthroughDelta proposes a delta for objective term (a, j) aiming to
// bring the objective row to or below its rhs (spec.md §4.4
// "Breakthrough δ"). Only meaningful when feasible and activity[obj] >
// rhs[obj]; callers check that before calling.
func breakthroughDelta(st *search.State, j model.VarID, a float64) float64 {
	gap := st.Gap(model.ObjectiveRow)
	delta := -gap / a

	if isIntegral(st.Store.Vars[j].Kind) {
		target := st.Value[j] + delta
		if a > 0 {
			delta = math.Floor(target) - st.Value[j]
		} else {
			delta = math.Ceil(target) - st.Value[j]
		}
	}
	return clampDelta(st, j, delta)
}
