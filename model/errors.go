package model

import "errors"

// Sentinel errors for the model package.
//
// Error policy: only these package-level sentinels are exposed; callers
// compare with errors.Is. None is ever stringified with model parameters —
// callers that need that context wrap with fmt.Errorf("...: %w", err).
var (
	// ErrEmptyName is returned when MakeVariable is given an empty name.
	// MakeConstraint resolves the empty name to the objective row instead.
	ErrEmptyName = errors.New("model: empty name")

	// ErrUnknownVariable is returned when a VarID does not index the store.
	ErrUnknownVariable = errors.New("model: unknown variable")

	// ErrUnknownConstraint is returned when a ConID does not index the store.
	ErrUnknownConstraint = errors.New("model: unknown constraint")

	// ErrZeroCoefficient is returned when AddTerm is given a coefficient
	// that is zero within the store's zero tolerance.
	ErrZeroCoefficient = errors.New("model: zero coefficient")

	// ErrMismatchedSense names an operation applied to a constraint whose
	// sense it does not handle. No function in this module returns it.
	ErrMismatchedSense = errors.New("model: mismatched constraint sense")

	// ErrMutationAfterFreeze is returned by structural mutators once the
	// store has been frozen by preprocessing.
	ErrMutationAfterFreeze = errors.New("model: store mutated after freeze")
)
