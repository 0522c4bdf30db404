package mps

import "errors"

// Sentinel errors for the mps package. Callers compare with errors.Is;
// line/content context is always added via fmt.Errorf("...: %w", err).
var (
	// ErrUnsupportedSection is returned for RANGES, SOS, or INDICATORS.
	ErrUnsupportedSection = errors.New("mps: unsupported section")

	// ErrMalformed is returned when a data line cannot be tokenized into
	// the fields its current section requires.
	ErrMalformed = errors.New("mps: malformed line")

	// ErrDuplicateObjective is returned when a second N-type row appears
	// in the ROWS section.
	ErrDuplicateObjective = errors.New("mps: duplicate objective row")

	// ErrUnknownBoundType is returned for a BOUNDS line whose type token
	// is not one of UP, LO, BV, LI, UI, FX, FR, MI, PL.
	ErrUnknownBoundType = errors.New("mps: unknown bound type")
)
