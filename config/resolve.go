package config

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/shaowei-cai-group/Local-MIP/driver"
	"github.com/shaowei-cai-group/Local-MIP/preprocess"
	"github.com/shaowei-cai-group/Local-MIP/tolerance"
)

// Settings bundles the three typed configuration values every engine
// entry point needs.
type Settings struct {
	Tolerances tolerance.Tolerances
	Preprocess preprocess.Options
	Driver     *driver.Config
}

// Resolve merges fs (already populated by RegisterFlags and parsed by
// cobra) with an optional parameter file's contents, flags taking
// precedence, and converts the result into Settings. paramFile may be
// nil when no parameter file was given.
//
// Precedence is expressed through viper.BindPFlags: a parameter-file
// value is installed as a SetDefault, and BindPFlags only lets the bound
// flag's value win once pflag records it as Changed — exactly "CLI flags
// override the file" from spec.md §6.
func Resolve(fs *pflag.FlagSet, paramFile io.Reader) (*Settings, error) {
	v := viper.New()

	if paramFile != nil {
		entries, err := parseParamFile(paramFile)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			v.SetDefault(e.Key, e.Value)
		}
	}

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: binding flags: %w", err)
	}

	start, err := normalizedEnum(v, "start")
	if err != nil {
		return nil, err
	}
	restartName, err := normalizedEnum(v, "restart")
	if err != nil {
		return nil, err
	}
	weightName, err := normalizedEnum(v, "weight")
	if err != nil {
		return nil, err
	}
	liftName, err := normalizedEnum(v, "lift_scoring")
	if err != nil {
		return nil, err
	}
	neighborName, err := normalizedEnum(v, "neighbor_scoring")
	if err != nil {
		return nil, err
	}

	boundStrengthen := v.GetInt("bound_strengthen")
	if boundStrengthen < 0 || boundStrengthen > 2 {
		return nil, fmt.Errorf("%w: bound_strengthen=%d out of range [0, 2]", ErrInvalidParameter, boundStrengthen)
	}
	smoothProb := v.GetInt("smooth_prob")
	if smoothProb < 0 || smoothProb > 10000 {
		return nil, fmt.Errorf("%w: smooth_prob=%d out of range [0, 10000]", ErrInvalidParameter, smoothProb)
	}
	if weightName == "monotone" {
		smoothProb = 0
	}

	settings := &Settings{
		Tolerances: tolerance.Tolerances{
			Feas: v.GetFloat64("feas_tolerance"),
			Opt:  v.GetFloat64("opt_tolerance"),
			Zero: v.GetFloat64("zero_tolerance"),
		},
		Preprocess: preprocess.Options{
			SplitEq:         v.GetBool("split_eq"),
			BoundStrengthen: preprocess.BoundStrengthen(boundStrengthen),
		},
		Driver: driver.New(
			driver.WithTimeLimit(v.GetDuration("time_limit")),
			driver.WithSeed(v.GetInt64("random_seed")),
			driver.WithRestartStep(v.GetUint64("restart_step")),
			driver.WithSmoothProb(smoothProb),
			driver.WithBMS(driver.BMS{
				UnsatCon: v.GetInt("bms_unsat_con"),
				UnsatOp:  v.GetInt("bms_unsat_op"),
				SatCon:   v.GetInt("bms_sat_con"),
				SatOp:    v.GetInt("bms_sat_op"),
				Flip:     v.GetInt("bms_flip"),
				Easy:     v.GetInt("bms_easy"),
			}),
			driver.WithTabu(v.GetUint64("tabu_base"), v.GetUint64("tabu_variation")),
			driver.WithActivityPeriod(v.GetInt("activity_period")),
			driver.WithStartPolicy(restartPolicyByName(start)),
			driver.WithRestartPolicy(restartPolicyByName(restartName)),
			driver.WithLiftTie(liftTieByName(liftName)),
			driver.WithNeighborTie(neighborTieByName(neighborName)),
		),
	}
	return settings, nil
}
