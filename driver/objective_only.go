package driver

import (
	"math"

	"github.com/shaowei-cai-group/Local-MIP/model"
)

// solveObjectiveOnly implements spec.md §4.10: when the model has no
// constraints beyond the objective row, the optimum is coordinate-
// separable and can be read off each variable's bound directly.
func (s *Solver) solveObjectiveOnly() error {
	var obj float64
	unbounded := false

	for i := range s.Store.Vars {
		v := model.VarID(i)
		variable := &s.Store.Vars[v]
		c := variable.ObjCoeff

		var target float64
		switch {
		case math.Abs(c) <= s.Tol.Zero:
			target = clampToBounds(variable, 0)
		case c > 0:
			if math.IsInf(variable.Lower, -1) {
				unbounded = true
				target = 0
			} else {
				target = variable.Lower
			}
		default:
			if math.IsInf(variable.Upper, 1) {
				unbounded = true
				target = 0
			} else {
				target = variable.Upper
			}
		}

		s.State.Value[v] = target
		obj += c * target
	}

	if unbounded {
		s.State.FoundFeasible = false
		s.State.BestObj = math.Inf(-1)
		if s.Store.Maximize {
			s.State.BestObj = math.Inf(1)
		}
		s.outcome = OutcomeUnbounded
		return nil
	}

	copy(s.State.Best, s.State.Value)
	s.State.BestObj = obj
	s.State.FoundFeasible = true
	s.outcome = OutcomeFeasible
	return nil
}

func clampToBounds(v *model.Variable, target float64) float64 {
	switch {
	case target < v.Lower:
		return v.Lower
	case target > v.Upper:
		return v.Upper
	default:
		return target
	}
}
