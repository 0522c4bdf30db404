package lp

import (
	"errors"
	"fmt"
)

// Sentinel errors for the lp package. Callers compare with errors.Is; all
// wrapping adds position/token context via fmt.Errorf("...: %w", err).
var (
	// ErrMalformed is returned for any input that does not match the LP
	// grammar: a missing relation operator, an unexpected token, an
	// unterminated bounds statement, and so on.
	ErrMalformed = errors.New("lp: malformed input")

	// ErrUnknownSense is returned when the objective does not start with
	// one of MIN, MINIMIZE, MINIMUM, MAX, MAXIMIZE, MAXIMUM.
	ErrUnknownSense = errors.New("lp: unknown objective sense")

	// ErrUnknownSection is returned for a top-level keyword that is not a
	// recognised section (constraints, bounds, integers, binaries, end).
	ErrUnknownSection = errors.New("lp: unknown section keyword")
)

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
