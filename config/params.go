package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/shaowei-cai-group/Local-MIP/restart"
	"github.com/shaowei-cai-group/Local-MIP/score"
)

// kind classifies a parameter's underlying Go type for file-entry
// validation; flags of the matching pflag type carry the same kind
// implicitly through viper's cast-on-Get.
type kind int

const (
	kindDuration kind = iota
	kindInt64
	kindFloat64
	kindInt
	kindBool
	kindUint64
	kindEnum
)

// paramSpec describes one of spec.md §6's parameter table entries: its
// Go-level kind, and, for the ranged or enumerated ones, the bounds a
// file or flag value must satisfy.
type paramSpec struct {
	kind     kind
	hasRange bool
	min, max float64
	enum     map[string]bool
}

var strategyNames = map[string]bool{"random": true, "best": true, "hybrid": true}
var weightNames = map[string]bool{"monotone": true, "paws": true}
var liftNames = map[string]bool{"age": true, "random": true}
var neighborNames = map[string]bool{"progress_bonus": true, "progress_age": true}

// paramSpecs is keyed by the exact parameter name shared by the file
// grammar and the flag name (spec.md §6: "long-form flags map one-to-one
// to engine parameters").
var paramSpecs = map[string]paramSpec{
	"time_limit":       {kind: kindDuration},
	"random_seed":      {kind: kindInt64},
	"feas_tolerance":   {kind: kindFloat64},
	"opt_tolerance":    {kind: kindFloat64},
	"zero_tolerance":   {kind: kindFloat64},
	"bound_strengthen": {kind: kindInt, hasRange: true, min: 0, max: 2},
	"split_eq":         {kind: kindBool},
	"restart_step":     {kind: kindUint64},
	"smooth_prob":      {kind: kindInt, hasRange: true, min: 0, max: 10000},
	"bms_unsat_con":    {kind: kindInt},
	"bms_unsat_op":     {kind: kindInt},
	"bms_sat_con":      {kind: kindInt},
	"bms_sat_op":       {kind: kindInt},
	"bms_flip":         {kind: kindInt},
	"bms_easy":         {kind: kindInt},
	"tabu_base":        {kind: kindUint64},
	"tabu_variation":   {kind: kindUint64},
	"activity_period":  {kind: kindInt},
	"start":            {kind: kindEnum, enum: strategyNames},
	"restart":          {kind: kindEnum, enum: strategyNames},
	"weight":           {kind: kindEnum, enum: weightNames},
	"lift_scoring":     {kind: kindEnum, enum: liftNames},
	"neighbor_scoring": {kind: kindEnum, enum: neighborNames},
}

// validate converts raw (as read from a parameter file) to the type
// paramSpecs[key] expects and range-checks it, returning ErrInvalidParameter
// (unwrapped; callers add file/line context) on any failure.
func validate(key, raw string) (any, error) {
	spec, ok := paramSpecs[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown parameter %q", ErrInvalidParameter, key)
	}

	switch spec.kind {
	case kindDuration:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a valid duration: %v", ErrInvalidParameter, raw, err)
		}
		return d, nil
	case kindInt64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidParameter, raw)
		}
		return n, nil
	case kindUint64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidParameter, raw)
		}
		return n, nil
	case kindFloat64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidParameter, raw)
		}
		return f, nil
	case kindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidParameter, raw)
		}
		if spec.hasRange && (float64(n) < spec.min || float64(n) > spec.max) {
			return nil, fmt.Errorf("%w: %s=%d out of range [%g, %g]", ErrInvalidParameter, key, n, spec.min, spec.max)
		}
		return n, nil
	case kindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a boolean", ErrInvalidParameter, raw)
		}
		return b, nil
	case kindEnum:
		v := strings.ToLower(strings.TrimSpace(raw))
		if !spec.enum[v] {
			return nil, fmt.Errorf("%w: %s=%q is not one of the recognised strategy names", ErrInvalidParameter, key, raw)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: unhandled kind for %q", ErrInvalidParameter, key)
	}
}

// normalizedEnum reads key as a string from v and validates it against
// paramSpecs, returning the lowercased/trimmed form validate produces so
// callers never compare raw, possibly mixed-case flag/file text against
// the lowercase literals restartPolicyByName and friends expect.
func normalizedEnum(v *viper.Viper, key string) (string, error) {
	raw := v.GetString(key)
	value, err := validate(key, raw)
	if err != nil {
		return "", err
	}
	return value.(string), nil
}

func restartPolicyByName(name string) restart.Policy {
	switch name {
	case "best":
		return restart.Best
	case "hybrid":
		return restart.Hybrid
	default:
		return restart.Random
	}
}

func liftTieByName(name string) score.LiftTieBreak {
	if name == "random" {
		return score.LiftRandom
	}
	return score.LiftAge
}

func neighborTieByName(name string) score.NeighborTieBreak {
	if name == "progress_age" {
		return score.ProgressAge
	}
	return score.ProgressBonus
}
