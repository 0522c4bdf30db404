// Package weight implements the two constraint-weight update rules the
// driver invokes when its last-chance strategy runs (spec.md §4.5):
// monotone, and the PAWS-style smooth variant. Weights are read back by
// the neighbor scorer as a per-row multiplier.
package weight
