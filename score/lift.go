package score

import (
	"github.com/shaowei-cai-group/Local-MIP/model"
	"github.com/shaowei-cai-group/Local-MIP/search"
)

// Candidate is one proposed (variable, delta) move.
type Candidate struct {
	Var   model.VarID
	Delta float64
}

// Lift computes the lift score of a candidate: the negative of the
// objective delta it would cause, so that higher is always better. Only
// meaningful for objective-term variables in the feasible phase; callers
// filter candidates before calling this (spec.md §4.3).
func Lift(st *search.State, c Candidate) float64 {
	return -st.Store.Vars[c.Var].ObjCoeff * c.Delta
}

// LiftTieBreak selects how LiftSelector resolves near-equal scores.
type LiftTieBreak int

const (
	// LiftAge prefers the candidate touching the variable with the
	// smaller age (max(last_inc_step, last_dec_step)) on near-equality.
	LiftAge LiftTieBreak = iota
	// LiftRandom accepts the new candidate with 50% probability on exact
	// equality.
	LiftRandom
)

// LiftSelector accumulates the best-scoring lift candidate seen so far
// under one of the two tie-break rules.
type LiftSelector struct {
	st        *search.State
	tie       LiftTieBreak
	has       bool
	best      Candidate
	bestScore float64
}

// NewLiftSelector returns an empty selector for st under the given
// tie-break rule.
func NewLiftSelector(st *search.State, tie LiftTieBreak) *LiftSelector {
	return &LiftSelector{st: st, tie: tie}
}

// Consider folds one candidate into the running best.
func (ls *LiftSelector) Consider(c Candidate) {
	sc := Lift(ls.st, c)
	if !ls.has {
		ls.accept(c, sc)
		return
	}

	tau := ls.st.Tol.Opt
	switch {
	case sc > ls.bestScore+tau:
		ls.accept(c, sc)
	case sc > ls.bestScore-tau:
		// Near-equality band.
		switch ls.tie {
		case LiftAge:
			if ls.st.Age(c.Var) < ls.st.Age(ls.best.Var) {
				ls.accept(c, sc)
			}
		case LiftRandom:
			if sc == ls.bestScore && ls.st.Rand.Intn(2) == 0 {
				ls.accept(c, sc)
			}
		}
	}
}

func (ls *LiftSelector) accept(c Candidate, sc float64) {
	ls.best = c
	ls.bestScore = sc
	ls.has = true
}

// Best returns the winning candidate and whether any candidate was seen.
func (ls *LiftSelector) Best() (Candidate, bool) {
	return ls.best, ls.has
}
