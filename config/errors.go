package config

import "errors"

// ErrInvalidParameter is returned for an unknown parameter name or a
// value that fails its type/range check, from either the parameter file
// or the merged flag/file settings. Callers compare with errors.Is; file
// source wraps it with "line %d" context via fmt.Errorf("...: %w", ...).
var ErrInvalidParameter = errors.New("config: invalid parameter")
