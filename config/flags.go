package config

import (
	"time"

	"github.com/spf13/pflag"
)

// RegisterFlags adds every spec.md §6 engine parameter to fs, one flag
// per parameter name, so cmd/localmip's cobra command can simply embed
// this set. Defaults match the engine's own (driver.New, tolerance.Default,
// preprocess.DefaultOptions); Resolve only re-states them so a bare
// invocation with no parameter file still behaves identically to a
// hand-built driver.Config.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Duration("time_limit", 10*time.Second, "hard wall-clock cap")
	fs.Int64("random_seed", 0, "0 = internal fixed seed")
	fs.Float64("feas_tolerance", 1e-6, "constraint slack (tau_feas)")
	fs.Float64("opt_tolerance", 1e-4, "objective-strict-improvement threshold (tau_opt)")
	fs.Float64("zero_tolerance", 1e-9, "coefficient-is-zero threshold (tau_zero)")
	fs.Int("bound_strengthen", 1, "0=off, 1=apply only if purely integer, 2=always")
	fs.Bool("split_eq", true, "split equalities into two <= rows")
	fs.Uint64("restart_step", 1_000_000, "no-improvement budget before a restart; 0 disables")
	fs.Int("smooth_prob", 1, "PAWS smoothing probability, 0..10000 scale")
	fs.Int("bms_unsat_con", 50, "unsat_mtm_bm row sample cap")
	fs.Int("bms_unsat_op", 50, "unsat_mtm_bm operation sample cap")
	fs.Int("bms_sat_con", 50, "sat_mtm row sample cap")
	fs.Int("bms_sat_op", 50, "sat_mtm operation sample cap")
	fs.Int("bms_flip", 50, "flip generator sample cap")
	fs.Int("bms_easy", 50, "easy generator sample cap")
	fs.Uint64("tabu_base", 4, "tabu tenure base")
	fs.Uint64("tabu_variation", 7, "tabu tenure variation")
	fs.Int("activity_period", 100_000, "activity drift refresh interval")
	fs.String("start", "random", "start reassignment strategy: random, best, hybrid")
	fs.String("restart", "random", "restart reassignment strategy: random, best, hybrid")
	fs.String("weight", "paws", "weight update strategy: monotone, paws")
	fs.String("lift_scoring", "age", "lift tie-break rule: age, random")
	fs.String("neighbor_scoring", "progress_bonus", "neighbor tie-break rule: progress_bonus, progress_age")
}
