package score

import (
	"math"

	"github.com/shaowei-cai-group/Local-MIP/model"
	"github.com/shaowei-cai-group/Local-MIP/search"
)

// Result is a neighbor score and its bonus subscore (spec.md §4.3).
type Result struct {
	Score    int64
	Subscore int64
}

// Neighbor computes the weighted constraint-violation score of applying
// delta to variable v, without mutating st. It walks every incidence of v
// and folds in each row's contribution; see spec.md §4.3 for the exact
// per-row rules.
func Neighbor(st *search.State, v model.VarID, delta float64) Result {
	var res Result
	variable := &st.Store.Vars[v]

	for p, c := range variable.ConIdx {
		k := variable.PosInCon[p]
		coeff := st.Store.Cons[c].Coeffs[k]
		w := st.Weight[c]

		if c == model.ObjectiveRow {
			if !st.FoundFeasible {
				continue
			}
			oldAct := st.ActivityValue(c)
			newAct := oldAct + coeff*delta
			if newAct < oldAct {
				res.Score += w
			} else {
				res.Score -= w
			}
			if newAct < st.BestObj {
				res.Subscore += w
			}
			continue
		}

		preGap := st.Gap(c)
		newGap := preGap + coeff*delta
		half := w / 2

		if st.Store.Cons[c].Sense == model.EQ {
			wasSat := math.Abs(preGap) <= st.Tol.Feas
			newSat := math.Abs(newGap) <= st.Tol.Feas
			switch {
			case !wasSat && newSat:
				res.Score += 2 * w
			case wasSat && !newSat:
				res.Score -= 2 * w
			case !wasSat && !newSat:
				if math.Abs(newGap) < math.Abs(preGap) {
					res.Score += w
				} else {
					res.Score -= w
				}
			}
			continue
		}

		wasSat := preGap <= st.Tol.Feas
		newSat := newGap <= st.Tol.Feas
		switch {
		case !wasSat && newSat:
			res.Score += w
		case wasSat && !newSat:
			res.Score -= w
		case !wasSat && !newSat:
			if math.Abs(newGap) < math.Abs(preGap) {
				res.Score += half
			} else {
				res.Score -= half
			}
		}
	}

	return res
}

// NeighborTieBreak selects how NeighborSelector resolves equal scores.
type NeighborTieBreak int

const (
	// ProgressBonus compares (score, subscore, -age) lexicographically.
	ProgressBonus NeighborTieBreak = iota
	// ProgressAge compares (score, -age) lexicographically.
	ProgressAge
)

// NeighborSelector accumulates the best (Candidate, Result) pair seen so
// far under one of the two tie-break rules. math.MinInt64 as the initial
// bestScore lets the driver re-seed a selector for the "lower acceptance
// threshold to any score" last-strategy behaviour (spec.md §4.4) simply by
// treating every candidate as beating the initial empty state.
type NeighborSelector struct {
	st   *search.State
	tie  NeighborTieBreak
	has  bool
	best Candidate
	res  Result
}

// NewNeighborSelector returns an empty selector for st.
func NewNeighborSelector(st *search.State, tie NeighborTieBreak) *NeighborSelector {
	return &NeighborSelector{st: st, tie: tie}
}

// Consider folds one candidate and its already-computed score into the
// running best.
func (ns *NeighborSelector) Consider(c Candidate, r Result) {
	if !ns.has {
		ns.best, ns.res, ns.has = c, r, true
		return
	}
	if better := ns.beats(c, r); better {
		ns.best, ns.res = c, r
	}
}

func (ns *NeighborSelector) beats(c Candidate, r Result) bool {
	if r.Score != ns.res.Score {
		return r.Score > ns.res.Score
	}
	switch ns.tie {
	case ProgressBonus:
		if r.Subscore != ns.res.Subscore {
			return r.Subscore > ns.res.Subscore
		}
		return ns.st.Age(c.Var) < ns.st.Age(ns.best.Var)
	case ProgressAge:
		return ns.st.Age(c.Var) < ns.st.Age(ns.best.Var)
	default:
		return false
	}
}

// Best returns the winning candidate, its score, and whether any
// candidate was seen.
func (ns *NeighborSelector) Best() (Candidate, Result, bool) {
	return ns.best, ns.res, ns.has
}

// BestScore returns the running best score, or math.MinInt64 if empty —
// used by the driver to decide whether a strategy found an improving move
// (score > 0) before falling through to the next one.
func (ns *NeighborSelector) BestScore() int64 {
	if !ns.has {
		return math.MinInt64
	}
	return ns.res.Score
}
