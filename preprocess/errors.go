package preprocess

import "errors"

// ErrInfeasible is returned by Process when singleton tightening or
// fixed-variable propagation proves the model has no feasible region.
// Sentinel only: wrap with %w for row/variable context at the call site.
var ErrInfeasible = errors.New("preprocess: model infeasible")
