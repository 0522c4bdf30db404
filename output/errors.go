package output

import "errors"

var (
	// ErrNoFeasibleSolution is returned by Verify when the run never
	// captured an incumbent; there is nothing to verify or write.
	ErrNoFeasibleSolution = errors.New("output: no feasible solution found")
	// ErrBoundViolation means a best-found variable value lies outside its
	// declared bounds.
	ErrBoundViolation = errors.New("output: variable bound violated")
	// ErrConstraintViolation means a best-found assignment leaves some
	// non-objective row unsatisfied.
	ErrConstraintViolation = errors.New("output: constraint violated")
	// ErrObjectiveMismatch means the objective recomputed from the
	// best-found assignment disagrees with the incumbent's recorded value.
	ErrObjectiveMismatch = errors.New("output: objective value mismatch")
)
