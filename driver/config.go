package driver

import (
	"time"

	"github.com/shaowei-cai-group/Local-MIP/restart"
	"github.com/shaowei-cai-group/Local-MIP/score"
)

// GeneratorKind names one of the five move generators, for use in a
// Config's Strategies list.
type GeneratorKind int

const (
	GenUnsatMTMBM GeneratorKind = iota
	GenSatMTM
	GenFlip
	GenEasy
	GenUnsatMTMBMRandom
)

// DefaultStrategies is the default generator order from spec.md §4.4:
// [unsat_mtm_bm, sat_mtm, flip, easy, unsat_mtm_bm_random].
var DefaultStrategies = []GeneratorKind{GenUnsatMTMBM, GenSatMTM, GenFlip, GenEasy, GenUnsatMTMBMRandom}

// BMS holds the per-generator sample caps (spec.md §4.4 "bms_*").
type BMS struct {
	UnsatCon int
	UnsatOp  int
	SatCon   int
	SatOp    int
	Flip     int
	Easy     int
}

// DefaultBMS returns the sample caps used when a Config is built with no
// WithBMS option.
func DefaultBMS() BMS {
	return BMS{UnsatCon: 50, UnsatOp: 50, SatCon: 50, SatOp: 50, Flip: 50, Easy: 50}
}

// Config collects every runtime search parameter from spec.md §6's
// parameter table that is not already carried by tolerance.Tolerances or
// preprocess.Options. Built via New with functional options, mirroring
// the options pattern the teacher's TSP package uses for its own
// Options type.
type Config struct {
	TimeLimit      time.Duration
	Seed           int64
	RestartStep    uint64
	SmoothProb     int
	BMS            BMS
	TabuBase       uint64
	TabuVariation  uint64
	ActivityPeriod int

	StartPolicy   restart.Policy
	RestartPolicy restart.Policy
	LiftTie       score.LiftTieBreak
	NeighborTie   score.NeighborTieBreak
	Strategies    []GeneratorKind
}

// Option mutates a Config under construction.
type Option func(*Config)

// New builds a Config from spec.md §6's stated defaults, applying opts in
// order.
func New(opts ...Option) *Config {
	c := &Config{
		TimeLimit:      10 * time.Second,
		Seed:           0,
		RestartStep:    1_000_000,
		SmoothProb:     1,
		BMS:            DefaultBMS(),
		TabuBase:       4,
		TabuVariation:  7,
		ActivityPeriod: 100_000,
		StartPolicy:    restart.Random,
		RestartPolicy:  restart.Random,
		LiftTie:        score.LiftAge,
		NeighborTie:    score.ProgressBonus,
		Strategies:     DefaultStrategies,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithTimeLimit(d time.Duration) Option { return func(c *Config) { c.TimeLimit = d } }
func WithSeed(seed int64) Option           { return func(c *Config) { c.Seed = seed } }
func WithRestartStep(n uint64) Option      { return func(c *Config) { c.RestartStep = n } }
func WithSmoothProb(p int) Option          { return func(c *Config) { c.SmoothProb = p } }
func WithBMS(b BMS) Option                 { return func(c *Config) { c.BMS = b } }
func WithTabu(base, variation uint64) Option {
	return func(c *Config) { c.TabuBase, c.TabuVariation = base, variation }
}
func WithActivityPeriod(a int) Option           { return func(c *Config) { c.ActivityPeriod = a } }
func WithStartPolicy(p restart.Policy) Option   { return func(c *Config) { c.StartPolicy = p } }
func WithRestartPolicy(p restart.Policy) Option { return func(c *Config) { c.RestartPolicy = p } }
func WithLiftTie(t score.LiftTieBreak) Option   { return func(c *Config) { c.LiftTie = t } }
func WithNeighborTie(t score.NeighborTieBreak) Option {
	return func(c *Config) { c.NeighborTie = t }
}
func WithStrategies(s []GeneratorKind) Option { return func(c *Config) { c.Strategies = s } }
