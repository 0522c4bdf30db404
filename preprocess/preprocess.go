package preprocess

import (
	"fmt"
	"math"

	"github.com/shaowei-cai-group/Local-MIP/model"
	"github.com/shaowei-cai-group/Local-MIP/tolerance"
)

// BoundStrengthen selects when singleton-row bound tightening (step 4)
// applies.
type BoundStrengthen int

const (
	// StrengthenOff never tightens bounds from singleton rows.
	StrengthenOff BoundStrengthen = 0
	// StrengthenIntegerOnly tightens only when the row's sole variable is
	// not Real (GeneralInteger, Binary, or already Fixed).
	StrengthenIntegerOnly BoundStrengthen = 1
	// StrengthenAlways tightens regardless of the variable's kind.
	StrengthenAlways BoundStrengthen = 2
)

// Options configures the pipeline; field names mirror the CLI parameter
// table in spec.md §6.
type Options struct {
	SplitEq         bool
	BoundStrengthen BoundStrengthen
}

// DefaultOptions returns the documented defaults (split_eq=true,
// bound_strengthen=1).
func DefaultOptions() Options {
	return Options{SplitEq: true, BoundStrengthen: StrengthenIntegerOnly}
}

// Process runs the full normalisation pipeline over store and freezes it
// on success. On infeasibility it returns ErrInfeasible (wrapped with the
// offending row or variable name) and leaves the store unfrozen; callers
// must not search a store Process has rejected.
func Process(store *model.Store, tol tolerance.Tolerances, opts Options) error {
	if opts.SplitEq {
		splitEqualities(store, tol)
	}
	normalizeGreaterEqual(store)
	if store.Maximize {
		negateObjective(store)
	}

	conQueue := make([]model.ConID, 0, store.NumCons())
	for c := model.ConID(1); int(c) < store.NumCons(); c++ {
		conQueue = append(conQueue, c)
	}
	varQueue := make([]model.VarID, 0)

	enqueued := make(map[model.VarID]bool)
	// Variables whose bounds are already collapsed are substituted out too,
	// not only those fixed by singleton tightening below.
	for i := range store.Vars {
		v := model.VarID(i)
		if store.Vars[v].IsFixed(tol.Feas) {
			enqueued[v] = true
			varQueue = append(varQueue, v)
		}
	}
	for {
		for len(conQueue) > 0 {
			c := conQueue[len(conQueue)-1]
			conQueue = conQueue[:len(conQueue)-1]

			v, err := tightenIfSingleton(store, c, tol, opts.BoundStrengthen)
			if err != nil {
				return err
			}
			if v >= 0 && store.Vars[v].IsFixed(tol.Feas) && !enqueued[v] {
				enqueued[v] = true
				varQueue = append(varQueue, v)
			}
		}
		if len(varQueue) == 0 {
			break
		}

		v := varQueue[len(varQueue)-1]
		varQueue = varQueue[:len(varQueue)-1]
		newSingletons, err := propagateFixed(store, v, tol)
		if err != nil {
			return err
		}
		conQueue = append(conQueue, newSingletons...)
	}

	reclassifyKinds(store, tol)
	classifyStructure(store)
	store.Freeze()

	return nil
}

// splitEqualities replaces every non-objective "=" row with two "<="
// rows: the original coefficients as-is, plus a negated sibling with a
// synthesised name.
func splitEqualities(store *model.Store, tol tolerance.Tolerances) {
	n := store.NumCons()
	for c := 1; c < n; c++ {
		con := &store.Cons[c]
		if con.Sense != model.EQ {
			continue
		}

		siblingName := con.Name + "__eq_neg"
		sib, _ := store.MakeConstraint(siblingName, model.LE)
		terms := append([]model.Term(nil), termsOf(con)...)
		for _, t := range terms {
			_ = store.AddTerm(sib, t.Var, -t.Coeff, tol.Zero)
		}
		store.Cons[sib].RHS = -con.RHS

		// MakeConstraint may have reallocated store.Cons, so con can be stale.
		store.Cons[c].Sense = model.LE
	}
}

// normalizeGreaterEqual negates every surviving ">=" row in place so only
// "<=" and "=" remain.
func normalizeGreaterEqual(store *model.Store) {
	for c := 1; c < store.NumCons(); c++ {
		con := &store.Cons[c]
		if con.Sense != model.GE {
			continue
		}
		for i := range con.Coeffs {
			con.Coeffs[i] = -con.Coeffs[i]
		}
		con.RHS = -con.RHS
		con.Sense = model.LE
	}
}

// negateObjective flips every objective coefficient (and the cached
// per-variable ObjCoeff) so the engine always minimises internally;
// ObjOffset is flipped too so reported values round-trip to the user's
// original maximising sense.
func negateObjective(store *model.Store) {
	obj := &store.Cons[model.ObjectiveRow]
	for i, v := range obj.VarIdx {
		obj.Coeffs[i] = -obj.Coeffs[i]
		store.Vars[v].ObjCoeff = -store.Vars[v].ObjCoeff
	}
	store.ObjOffset = -store.ObjOffset
}

func termsOf(con *model.Constraint) []model.Term {
	out := make([]model.Term, len(con.Coeffs))
	for i := range con.Coeffs {
		out[i] = model.Term{Coeff: con.Coeffs[i], Var: con.VarIdx[i]}
	}
	return out
}

// tightenIfSingleton tightens the bounds of a row's sole variable, if the
// row has exactly one term and BoundStrengthen permits it. A singleton row
// whose implied interval is empty is reported as ErrInfeasible whatever
// BoundStrengthen says; when strengthening is skipped the variable's
// bounds are left unchanged. Returns the tightened variable (or -1 if the
// row was not a singleton, or strengthening was skipped).
func tightenIfSingleton(store *model.Store, c model.ConID, tol tolerance.Tolerances, bs BoundStrengthen) (model.VarID, error) {
	con := &store.Cons[c]
	if len(con.Coeffs) != 1 {
		return -1, nil
	}

	v := con.VarIdx[0]
	variable := &store.Vars[v]
	skip := bs == StrengthenOff || (bs == StrengthenIntegerOnly && variable.Kind == model.Real)
	lower, upper := variable.Lower, variable.Upper

	a := con.Coeffs[0]
	b := con.RHS

	switch con.Sense {
	case model.LE:
		bound := b / a
		if a > 0 {
			if bound < variable.Upper {
				variable.Upper = bound
			}
		} else {
			if bound > variable.Lower {
				variable.Lower = bound
			}
		}
	case model.EQ:
		bound := b / a
		if bound < variable.Upper {
			variable.Upper = bound
		}
		if bound > variable.Lower {
			variable.Lower = bound
		}
	}

	if variable.Lower-variable.Upper > tol.Feas {
		return -1, fmt.Errorf("%w: variable %q bounds emptied by row %q", ErrInfeasible, variable.Name, con.Name)
	}
	if skip {
		variable.Lower, variable.Upper = lower, upper
		return -1, nil
	}

	con.InferredSat = true
	return v, nil
}

// propagateFixed substitutes a now-fixed variable out of every row it
// still appears in: the term is removed and coeff*midpoint moves to the
// rhs (or ObjOffset for the objective row). Rows that become singleton as
// a result are returned for re-tightening; rows reduced to zero terms are
// checked for feasibility immediately.
func propagateFixed(store *model.Store, v model.VarID, tol tolerance.Tolerances) ([]model.ConID, error) {
	variable := &store.Vars[v]
	variable.Kind = model.Fixed
	mid := variable.Midpoint()

	var newSingletons []model.ConID

	// Copy the incidence list: RemoveTerm mutates it as we go.
	incident := append([]model.ConID(nil), variable.ConIdx...)
	for _, c := range incident {
		k := findPosInCon(store, c, v)
		if k < 0 {
			continue // already removed via an earlier swap-with-last
		}
		coeff := store.Cons[c].Coeffs[k]
		if err := store.RemoveTerm(c, k); err != nil {
			return nil, err
		}

		con := &store.Cons[c]
		if c == model.ObjectiveRow {
			store.ObjOffset += coeff * mid
			continue
		}
		con.RHS -= coeff * mid

		switch len(con.Coeffs) {
		case 0:
			if err := checkEmptyRow(con, tol); err != nil {
				return nil, err
			}
		case 1:
			newSingletons = append(newSingletons, c)
		}
	}

	return newSingletons, nil
}

func findPosInCon(store *model.Store, c model.ConID, v model.VarID) int {
	con := &store.Cons[c]
	for k, vid := range con.VarIdx {
		if vid == v {
			return k
		}
	}
	return -1
}

// checkEmptyRow validates a row reduced to zero terms: the rhs alone must
// satisfy the row's sense within τ_feas.
func checkEmptyRow(con *model.Constraint, tol tolerance.Tolerances) error {
	switch con.Sense {
	case model.EQ:
		if math.Abs(con.RHS) > tol.Feas {
			return fmt.Errorf("%w: empty equality row %q has rhs %g", ErrInfeasible, con.Name, con.RHS)
		}
	default: // LE
		if con.RHS < -tol.Feas {
			return fmt.Errorf("%w: empty row %q has rhs %g", ErrInfeasible, con.Name, con.RHS)
		}
	}
	con.InferredSat = true

	return nil
}

// reclassifyKinds promotes integer variables bounded to {0,1} to Binary,
// and marks any variable whose bounds have collapsed as Fixed (covers
// variables fixed directly by the model, not only by propagation).
func reclassifyKinds(store *model.Store, tol tolerance.Tolerances) {
	for i := range store.Vars {
		v := &store.Vars[i]
		if v.Kind == model.Fixed {
			continue
		}
		if v.IsFixed(tol.Feas) {
			v.Kind = model.Fixed
			continue
		}
		if v.Kind == model.GeneralInteger &&
			math.Abs(v.Lower) <= tol.Feas && math.Abs(v.Upper-1) <= tol.Feas {
			v.Kind = model.Binary
		}
	}
}
