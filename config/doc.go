// Package config resolves the engine parameters from spec.md §6's table
// into a driver.Config, tolerance.Tolerances, and preprocess.Options,
// layering three sources in increasing precedence: the engine's built-in
// defaults, an optional "name = value" / "name value" parameter file,
// and command-line flags. Unknown parameter names or out-of-range values
// are reported with file/line context where the file is the source.
package config
