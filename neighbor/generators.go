package neighbor

import (
	"math"

	"github.com/shaowei-cai-group/Local-MIP/model"
	"github.com/shaowei-cai-group/Local-MIP/search"
)

func dropNearZero(st *search.State, delta float64) bool {
	return math.Abs(delta) <= st.Tol.Zero
}

// UnsatMTMBM samples up to bmsCon rows from the unsat list, enumerates a
// tight delta per term, and — if feasible and the objective row has not
// broken through — also enumerates a breakthrough delta per objective
// term. Finishes by resampling the op list down to bmsOp entries (spec.md
// §4.4 strategy 1).
func UnsatMTMBM(st *search.State, bmsCon, bmsOp int, ol *OpList) {
	ol.Reset()
	unsat := st.UnsatList()
	for _, i := range SampleIdxs(st.Rand, len(unsat), min(bmsCon, len(unsat))) {
		c := unsat[i]
		con := &st.Store.Cons[c]
		for k, v := range con.VarIdx {
			var delta float64
			if con.Sense == model.EQ {
				delta = equalityTight(st, c, k, v)
			} else {
				delta = inequalityTight(st, c, k, v)
			}
			if dropNearZero(st, delta) || st.Tabu(v, delta) {
				continue
			}
			ol.Push(int(v), delta)
		}
	}

	if st.FoundFeasible && st.Gap(model.ObjectiveRow) > 0 {
		obj := &st.Store.Cons[model.ObjectiveRow]
		for k, v := range obj.VarIdx {
			delta := breakthroughDelta(st, v, obj.Coeffs[k])
			if dropNearZero(st, delta) || st.Tabu(v, delta) {
				continue
			}
			ol.Push(int(v), delta)
		}
	}

	SampleOp(st.Rand, ol, bmsOp)
}

// SatMTM only runs once feasible: samples bmsCon satisfied, non-equality,
// non-inferred-sat rows and enumerates an inequality-tight delta per term
// (spec.md §4.4 strategy 2).
func SatMTM(st *search.State, bmsCon, bmsOp int, ol *OpList) {
	ol.Reset()
	if !st.FoundFeasible {
		return
	}

	eligible := eligibleSatRows(st)
	for _, i := range SampleIdxs(st.Rand, len(eligible), min(bmsCon, len(eligible))) {
		c := eligible[i]
		con := &st.Store.Cons[c]
		for k, v := range con.VarIdx {
			delta := inequalityTight(st, c, k, v)
			if dropNearZero(st, delta) || st.Tabu(v, delta) {
				continue
			}
			ol.Push(int(v), delta)
		}
	}

	SampleOp(st.Rand, ol, bmsOp)
}

func eligibleSatRows(st *search.State) []model.ConID {
	var out []model.ConID
	for _, c := range st.SatList() {
		con := &st.Store.Cons[c]
		if con.Sense == model.EQ || con.InferredSat {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Flip is the pure binary-flip strategy: samples bmsOp indices from the
// binary index list and proposes δ = ±1 toward the opposite value (spec.md
// §4.4 strategy 3).
func Flip(st *search.State, idx *Indices, bmsOp int, ol *OpList) {
	ol.Reset()
	for _, i := range SampleIdxs(st.Rand, len(idx.Binary), min(bmsOp, len(idx.Binary))) {
		v := idx.Binary[i]
		delta := 1 - 2*st.Value[v] // 0 -> +1, 1 -> -1
		if st.Tabu(v, delta) {
			continue
		}
		ol.Push(int(v), delta)
	}
}

// Easy samples bmsOp non-fixed variables and, per variable, proposes a
// move to the lower bound, the upper bound, the bound sharing the current
// value's sign (0 if the interval spans zero), and — for real variables
// with a finite interval — the midpoint (spec.md §4.4 strategy 4).
func Easy(st *search.State, idx *Indices, bmsOp int, ol *OpList) {
	ol.Reset()
	for _, i := range SampleIdxs(st.Rand, len(idx.NonFixed), min(bmsOp, len(idx.NonFixed))) {
		v := idx.NonFixed[i]
		variable := &st.Store.Vars[v]
		cur := st.Value[v]

		propose := func(target float64) {
			delta := target - cur
			if dropNearZero(st, delta) || st.Tabu(v, delta) {
				return
			}
			ol.Push(int(v), delta)
		}

		if !math.IsInf(variable.Lower, -1) {
			propose(variable.Lower)
		}
		if !math.IsInf(variable.Upper, 1) {
			propose(variable.Upper)
		}
		propose(sameSignTarget(variable.Lower, variable.Upper, cur))
		if variable.Kind == model.Real && !math.IsInf(variable.Lower, -1) && !math.IsInf(variable.Upper, 1) {
			propose(variable.Midpoint())
		}
	}
}

func sameSignTarget(lower, upper, value float64) float64 {
	if lower <= 0 && upper >= 0 {
		return 0
	}
	if value >= 0 {
		return upper
	}
	return lower
}

// UnsatMTMBMRandom is UnsatMTMBM restricted to exactly one uniformly
// sampled unsat row, using the stricter immediate-reversal tabu form and
// skipping the post-resampling step (spec.md §4.4 strategy 5).
func UnsatMTMBMRandom(st *search.State, ol *OpList) {
	ol.Reset()
	unsat := st.UnsatList()
	if len(unsat) == 0 {
		return
	}
	c := unsat[st.Rand.Intn(len(unsat))]
	con := &st.Store.Cons[c]
	for k, v := range con.VarIdx {
		var delta float64
		if con.Sense == model.EQ {
			delta = equalityTight(st, c, k, v)
		} else {
			delta = inequalityTight(st, c, k, v)
		}
		if dropNearZero(st, delta) || st.ImmediateReversal(v, delta) {
			continue
		}
		ol.Push(int(v), delta)
	}
}
