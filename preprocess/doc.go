// Package preprocess runs once, after a parser has populated a
// model.Store, to normalise it for the search engine.
//
// Pipeline, in order (spec.md §4.1):
//
//  1. Equality split (optional): each "=" row becomes two "<=" rows.
//  2. Greater-to-less normalisation: any surviving ">=" row is negated.
//  3. Maximisation: if the model is a maximisation, the objective row's
//     coefficients are negated so the engine always minimises internally.
//  4. Singleton deduction: rows with exactly one term tighten that
//     variable's bounds and are marked InferredSat.
//  5. Fixed-variable propagation: variables whose bounds collapse are
//     substituted out, which can create new singleton rows — steps 4 and
//     5 run to a fixed point via two worklists.
//  6. Type reclassification: Real/GeneralInteger/Binary/Fixed.
//  7. Structural classification: informational MIPLIB-style tags.
//
// Process returns ErrInfeasible the moment any step proves the model has
// no feasible region; the caller skips the search entirely in that case
// (spec.md §7, error kind 2).
package preprocess
