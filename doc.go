// Package localmip is a stochastic local-search solver for Mixed-Integer
// Programming instances — it drives a single incumbent assignment through
// small coordinate moves instead of branch-and-bound over an LP relaxation.
//
// What is Local-MIP?
//
//	A pure-Go engine that brings together:
//		• Model store: variables & constraints with dual (var↔constraint) incidence
//		• Preprocessing: equality split, bound tightening, fixed-variable elimination
//		• Search state: incremental constraint activities, tabu bookkeeping, sat/unsat partition
//		• Scoring: lift (feasible-phase) and neighbor (violation-driven) rules
//		• Neighbor generators: unsat/sat tight moves, flips, easy moves, randomized tight moves
//		• PAWS-style dynamic constraint weighting and restart policies
//
// Why this design?
//
//   - No LP relaxation, no cuts, no branching — just scored coordinate moves
//   - Deterministic under a fixed seed — reproducible runs for the same model
//   - Single-threaded core — the only cross-thread state is a terminate flag
//     and the published best objective (see package driver)
//
// Packages:
//
//	model/      — Variable, Constraint, Store: the model, fixed during search but for the objective row's threshold RHS
//	preprocess/ — normalisation pipeline run once after parsing
//	search/     — mutable per-step state: values, activities, tabu, partitions
//	score/      — lift and neighbor scoring rules
//	neighbor/   — the five move-generator strategies ("neighbors")
//	weight/     — monotone / smooth (PAWS) constraint weighting
//	restart/    — random / best / hybrid reseeding policies
//	driver/     — the main search loop and its functional-option configuration
//	mps/, lp/   — model file ingestors (external collaborators to the core)
//	config/     — CLI flag and parameter-file merging
//	output/     — solution verification and `.sol` writing
//	runtime/    — timeout and objective-logging background goroutines
//	cmd/localmip — the command-line binary wiring everything together
package localmip
