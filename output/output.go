package output

import (
	"fmt"
	"io"
	"math"

	"github.com/shaowei-cai-group/Local-MIP/model"
	"github.com/shaowei-cai-group/Local-MIP/search"
	"github.com/shaowei-cai-group/Local-MIP/tolerance"
)

// activityOf recomputes con's activity from values directly, bypassing
// any cached/incremental activity state — Verify exists precisely to
// catch drift the incremental bookkeeping could have accumulated.
func activityOf(con *model.Constraint, values []float64) float64 {
	var sum float64
	for k, v := range con.VarIdx {
		sum += con.Coeffs[k] * values[v]
	}
	return sum
}

// ObjectiveValue translates an internal (post-preprocess, minimisation-
// convention) objective value into the value the user's original
// minimize/maximize sense should report, folding in the constant term
// negateObjective keeps sign-consistent with the coefficients.
func ObjectiveValue(store *model.Store, internal float64) float64 {
	reported := internal + store.ObjOffset
	if store.Maximize {
		reported = -reported
	}
	return reported
}

// Verify re-derives every constraint's activity and the objective from
// st.Best from scratch and checks them against the model's bounds and
// the incumbent's recorded objective, per the "recompute everything"
// verification pass the original solver ran before trusting a solution.
func Verify(store *model.Store, st *search.State, tol tolerance.Tolerances) error {
	if !st.FoundFeasible {
		return ErrNoFeasibleSolution
	}

	for v := range store.Vars {
		variable := &store.Vars[v]
		val := st.Best[v]
		if val < variable.Lower-tol.Feas || val > variable.Upper+tol.Feas {
			return fmt.Errorf("%w: %q = %g outside [%g, %g]",
				ErrBoundViolation, variable.Name, val, variable.Lower, variable.Upper)
		}
	}

	for c := model.ConID(1); int(c) < store.NumCons(); c++ {
		con := &store.Cons[c]
		activity := activityOf(con, st.Best)
		gap := activity - con.RHS
		sat := gap <= tol.Feas
		if con.Sense == model.EQ {
			sat = math.Abs(gap) <= tol.Feas
		}
		if !sat {
			return fmt.Errorf("%w: %q activity %g violates %s %g",
				ErrConstraintViolation, con.Name, activity, con.Sense, con.RHS)
		}
	}

	objInternal := activityOf(&store.Cons[model.ObjectiveRow], st.Best)
	if math.Abs(objInternal-st.BestObj) > tol.Opt {
		return fmt.Errorf("%w: recomputed %g, recorded %g",
			ErrObjectiveMismatch, objInternal, st.BestObj)
	}

	return nil
}

// WriteSolution writes the best-found solution as "name value" lines, one
// per non-zero value, preceded by a header naming the reported objective.
// Callers must only invoke it after Verify has returned nil.
func WriteSolution(w io.Writer, store *model.Store, st *search.State) error {
	reported := ObjectiveValue(store, st.BestObj)
	if _, err := fmt.Fprintf(w, "c best-found solution, objective %g\n", reported); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-50s%s\n", "Variable name", "Variable value"); err != nil {
		return err
	}
	for v := range store.Vars {
		val := st.Best[v]
		if val == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%-50s%g\n", store.Vars[v].Name, val); err != nil {
			return err
		}
	}
	return nil
}
