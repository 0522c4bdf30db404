package restart

import (
	"math"

	"github.com/shaowei-cai-group/Local-MIP/model"
	"github.com/shaowei-cai-group/Local-MIP/search"
)

// Policy identifies one of the three restart reassignment rules.
type Policy int

const (
	Random Policy = iota
	Best
	Hybrid
)

// Apply performs a full restart: BeginRestart, reassign every variable's
// Value per policy, then FinishRestart (spec.md §4.6).
func Apply(st *search.State, policy Policy) {
	st.BeginRestart()
	for v := range st.Store.Vars {
		st.Value[model.VarID(v)] = drawValue(st, model.VarID(v), policy)
	}
	st.FinishRestart()
}

func drawValue(st *search.State, v model.VarID, policy Policy) float64 {
	switch policy {
	case Best:
		if st.FoundFeasible {
			return clamp(st, v, st.Best[v])
		}
		return randomValue(st, v)
	case Hybrid:
		if st.FoundFeasible && st.Rand.Intn(2) == 0 {
			return clamp(st, v, st.Best[v])
		}
		return randomValue(st, v)
	default:
		return randomValue(st, v)
	}
}

// randomValue implements the "random" policy's per-variable draw:
// binary -> {0,1}; bounded general integer -> uniform integer in
// [ceil(lower), floor(upper)]; real with finite bounds -> uniform in
// [lower, upper]; otherwise fall back to the best value so far (if
// feasible), else the nearest finite bound, else zero.
func randomValue(st *search.State, v model.VarID) float64 {
	variable := &st.Store.Vars[v]
	lo, hi := variable.Lower, variable.Upper

	switch variable.Kind {
	case model.Binary:
		return float64(st.Rand.Intn(2))
	case model.GeneralInteger:
		if !math.IsInf(lo, -1) && !math.IsInf(hi, 1) {
			l, h := int64(math.Ceil(lo)), int64(math.Floor(hi))
			if h < l {
				return fallbackValue(st, v)
			}
			return float64(l + st.Rand.Int63n(h-l+1))
		}
	default: // Real
		if !math.IsInf(lo, -1) && !math.IsInf(hi, 1) {
			return lo + st.Rand.Float64()*(hi-lo)
		}
	}
	return fallbackValue(st, v)
}

func fallbackValue(st *search.State, v model.VarID) float64 {
	if st.FoundFeasible {
		return st.Best[v]
	}
	variable := &st.Store.Vars[v]
	switch {
	case !math.IsInf(variable.Lower, -1):
		return variable.Lower
	case !math.IsInf(variable.Upper, 1):
		return variable.Upper
	default:
		return 0
	}
}

func clamp(st *search.State, v model.VarID, value float64) float64 {
	variable := &st.Store.Vars[v]
	switch {
	case value < variable.Lower:
		return variable.Lower
	case value > variable.Upper:
		return variable.Upper
	default:
		return value
	}
}
