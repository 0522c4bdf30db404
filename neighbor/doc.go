// Package neighbor generates candidate (variable, delta) moves: the five
// strategies of spec.md §4.4 (unsat_mtm_bm, sat_mtm, flip, easy,
// unsat_mtm_bm_random), the lift-scoring candidate pass over objective-term
// variables, the shared delta computations (inequality_tight,
// equality_tight, lift_delta, breakthrough), and the sampling primitives
// (sample_idxs, sample_op) every strategy is built from.
//
// Generators read *search.State but never mutate it; the driver applies
// the winning candidate via search.State.Apply.
package neighbor
