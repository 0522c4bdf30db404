package driver

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shaowei-cai-group/Local-MIP/model"
	"github.com/shaowei-cai-group/Local-MIP/neighbor"
	"github.com/shaowei-cai-group/Local-MIP/restart"
	"github.com/shaowei-cai-group/Local-MIP/score"
	"github.com/shaowei-cai-group/Local-MIP/search"
	"github.com/shaowei-cai-group/Local-MIP/tolerance"
	"github.com/shaowei-cai-group/Local-MIP/weight"
)

// Outcome classifies how a Solver.Run call ended.
type Outcome int

const (
	// OutcomeUnknown means Run has not completed (or has not been called).
	OutcomeUnknown Outcome = iota
	// OutcomeFeasible means at least one feasible incumbent was captured.
	OutcomeFeasible
	// OutcomeInfeasible means the time limit elapsed with no feasible
	// incumbent ever captured.
	OutcomeInfeasible
	// OutcomeUnbounded is only reachable from the objective-only fast path
	// (§4.10): an objective term has no finite bound on its improving side.
	OutcomeUnbounded
	// OutcomeCancelled means Terminate was called by an external caller
	// (signal handler, timeout watcher, or a test) before any feasible
	// incumbent was found, as distinct from the time limit simply
	// elapsing. Not an error (spec.md §7 kind 3).
	OutcomeCancelled
)

// String renders an Outcome for logging and CLI summaries.
func (o Outcome) String() string {
	switch o {
	case OutcomeFeasible:
		return "feasible"
	case OutcomeInfeasible:
		return "infeasible"
	case OutcomeUnbounded:
		return "unbounded"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Solver owns one search run: the frozen model, the mutable search state,
// the run's Config, and the external terminate/best-objective-publish
// handshakes the concurrency model describes. A watchdog goroutine calls
// Terminate; any goroutine may call BestObjective to read the live
// incumbent without synchronising with the search loop directly.
type Solver struct {
	Store  *model.Store
	State  *search.State
	Config *Config
	Tol    tolerance.Tolerances
	Log    *logrus.Logger

	idx *neighbor.Indices

	terminate atomic.Bool
	timedOut  bool
	bestBits  atomic.Uint64

	outcome   Outcome
	startedAt time.Time
	elapsed   time.Duration
}

// Summary is a machine-checkable snapshot of a completed Run call, the
// Go counterpart of the original solver's PrintResult stderr report.
type Summary struct {
	Outcome       Outcome
	BestObjective float64
	FoundAny      bool
	Elapsed       time.Duration
	Steps         uint64
	RestartCount  uint64
}

// Summary reports how the most recent Run call ended. BestObjective is
// translated back to the model's original minimize/maximize sense and
// only meaningful when FoundAny is true.
func (s *Solver) Summary() Summary {
	summary := Summary{
		Outcome:      s.outcome,
		FoundAny:     s.State.FoundFeasible,
		Elapsed:      s.elapsed,
		Steps:        s.State.Step,
		RestartCount: s.State.RestartCount,
	}
	if summary.FoundAny {
		reported := s.State.BestObj + s.Store.ObjOffset
		if s.Store.Maximize {
			reported = -reported
		}
		summary.BestObjective = reported
	}
	return summary
}

// NewSolver builds a Solver over an already-preprocessed store. cfg may be
// nil, in which case New()'s defaults apply.
func NewSolver(store *model.Store, tol tolerance.Tolerances, cfg *Config, log *logrus.Logger) *Solver {
	if cfg == nil {
		cfg = New()
	}
	if log == nil {
		log = logrus.New()
	}
	st := search.New(store, tol, cfg.ActivityPeriod, cfg.TabuBase, cfg.TabuVariation, cfg.Seed)
	s := &Solver{
		Store:  store,
		State:  st,
		Config: cfg,
		Tol:    tol,
		Log:    log,
		idx:    neighbor.BuildIndices(store),
	}
	s.bestBits.Store(math.Float64bits(math.Inf(1)))
	return s
}

// Terminate requests that Run stop at its next loop check. Safe to call
// from any goroutine, any number of times.
func (s *Solver) Terminate() { s.terminate.Store(true) }

// Terminated reports whether Terminate has been called.
func (s *Solver) Terminated() bool { return s.terminate.Load() }

// publish stores obj as the latest published best objective (relaxed
// ordering: readers only ever want the freshest value, not a
// happens-before guarantee against the search loop).
func (s *Solver) publish(obj float64) {
	s.bestBits.Store(math.Float64bits(obj))
}

// BestObjective reads the most recently published best objective. Safe to
// call from any goroutine; returns +Inf until the main loop captures its
// first incumbent (the objective-only fast path does not publish). The
// value is the internal minimisation-sense objective without ObjOffset;
// output.ObjectiveValue translates it to the user's sense.
func (s *Solver) BestObjective() float64 {
	return math.Float64frombits(s.bestBits.Load())
}

// Outcome reports how the most recent Run call ended.
func (s *Solver) Outcome() Outcome { return s.outcome }

// Run executes the main search loop (spec.md §4.9) until Terminate is
// called, the configured time limit elapses, or the objective-only fast
// path (§4.10) resolves the model outright.
func (s *Solver) Run() error {
	s.startedAt = time.Now()
	defer func() { s.elapsed = time.Since(s.startedAt) }()

	s.State.Refresh()

	if s.Store.NumCons() == 1 {
		return s.solveObjectiveOnly()
	}

	deadline := s.startedAt.Add(s.Config.TimeLimit)
	restart.Apply(s.State, s.Config.StartPolicy)

	ol := &neighbor.OpList{}
	liftOl := &neighbor.OpList{}

	for !s.Terminated() {
		if time.Now().After(deadline) {
			s.timedOut = true
			s.Terminate()
			break
		}

		if s.State.ShouldRestart(s.Config.RestartStep) {
			s.Log.Debugf("restart at step %d (policy=%d, %d steps since last improvement)",
				s.State.Step, s.Config.RestartPolicy, s.State.Step-s.State.LastImproveStep)
			restart.Apply(s.State, s.Config.RestartPolicy)
		}

		if len(s.State.UnsatList()) == 0 {
			if s.State.MaybeCapture(s.publish) {
				s.Log.Debugf("new incumbent %.6g at step %d", s.State.BestObj, s.State.Step)
			}

			if s.tryLiftMove(liftOl) {
				s.State.Step++
				continue
			}
		}

		s.exploreAndApply(ol)
		s.State.Step++
	}

	switch {
	case s.State.FoundFeasible:
		s.outcome = OutcomeFeasible
		s.Log.Infof("stopped at step %d, best objective %.6g", s.State.Step, s.State.BestObj)
	case !s.timedOut:
		s.outcome = OutcomeCancelled
		s.Log.Warnf("cancelled at step %d with no feasible incumbent", s.State.Step)
	default:
		s.outcome = OutcomeInfeasible
		s.Log.Warnf("stopped at step %d with no feasible incumbent", s.State.Step)
	}
	return nil
}

// tryLiftMove attempts one feasible-phase, objective-only improving move
// (spec.md §4.4's lift candidates). Reports whether a move was applied.
func (s *Solver) tryLiftMove(ol *neighbor.OpList) bool {
	if !s.State.FoundFeasible {
		return false
	}
	neighbor.LiftCandidates(s.State, ol)
	if ol.Len() == 0 {
		return false
	}

	sel := score.NewLiftSelector(s.State, s.Config.LiftTie)
	for i, v := range ol.VarIdx {
		sel.Consider(score.Candidate{Var: model.VarID(v), Delta: ol.Delta[i]})
	}
	best, ok := sel.Best()
	if !ok || score.Lift(s.State, best) <= s.Tol.Opt {
		return false
	}

	s.State.Apply(best.Var, best.Delta)
	return true
}

// exploreAndApply runs the configured generator strategies in order,
// stopping at the first one that yields a strictly-improving move
// (score.NeighborSelector.BestScore() > 0). On the last strategy the
// acceptance threshold drops to "any score" and a weight update fires
// first (spec.md §4.4's "early stop when improving").
func (s *Solver) exploreAndApply(ol *neighbor.OpList) {
	strategies := s.Config.Strategies
	for i, gen := range strategies {
		last := i == len(strategies)-1
		if last {
			weight.Update(s.State, s.Config.SmoothProb)
		}

		s.runGenerator(gen, ol)
		if ol.Len() == 0 {
			continue
		}

		sel := score.NewNeighborSelector(s.State, s.Config.NeighborTie)
		token := s.State.NextToken()
		for k, v := range ol.VarIdx {
			vid := model.VarID(v)
			if s.Store.Vars[vid].Kind == model.Binary && s.State.Stamped(vid, token) {
				continue
			}
			delta := ol.Delta[k]
			sel.Consider(score.Candidate{Var: vid, Delta: delta}, score.Neighbor(s.State, vid, delta))
		}

		best, _, ok := sel.Best()
		if !ok {
			continue
		}
		if !last && sel.BestScore() <= 0 {
			continue
		}

		s.State.Apply(best.Var, best.Delta)
		return
	}
}

// runGenerator dispatches to the concrete move generator named by kind,
// using the sample caps and cached indices the Solver holds.
func (s *Solver) runGenerator(kind GeneratorKind, ol *neighbor.OpList) {
	b := s.Config.BMS
	switch kind {
	case GenUnsatMTMBM:
		neighbor.UnsatMTMBM(s.State, b.UnsatCon, b.UnsatOp, ol)
	case GenSatMTM:
		neighbor.SatMTM(s.State, b.SatCon, b.SatOp, ol)
	case GenFlip:
		neighbor.Flip(s.State, s.idx, b.Flip, ol)
	case GenEasy:
		neighbor.Easy(s.State, s.idx, b.Easy, ol)
	case GenUnsatMTMBMRandom:
		neighbor.UnsatMTMBMRandom(s.State, ol)
	}
}
