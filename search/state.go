package search

import (
	"math"
	"math/rand"

	"github.com/shaowei-cai-group/Local-MIP/model"
	"github.com/shaowei-cai-group/Local-MIP/tolerance"
)

// defaultSeed is used whenever the caller passes seed==0, matching
// spec.md §6 ("0 = internal fixed seed").
const defaultSeed int64 = 1

// State is the mutable per-step state of one search run.
type State struct {
	Store *model.Store
	Tol   tolerance.Tolerances
	Rand  *rand.Rand

	Value []float64
	Best  []float64

	Activity []float64
	// comp holds the Neumaier compensation term paired with Activity,
	// implementing the "extended-precision accumulation" the spec calls
	// for without a wider native float type (Design Notes §9).
	comp []float64

	Weight []int64

	// unsatList and satList partition the non-objective constraints.
	// posInList[c] is c's index within whichever list membership[c] says
	// it currently lives in; both are O(1) swap-and-pop removable.
	unsatList  []model.ConID
	satList    []model.ConID
	posInList  []int
	membership []bool // true = in unsatList

	LastIncStep   []uint64
	LastDecStep   []uint64
	AllowIncStep  []uint64
	AllowDecStep  []uint64
	lastDeltaSign []int8 // for the random generator's immediate-reversal tabu

	// stamp/token implement the binary-variable dedup from spec.md §4.3:
	// the driver takes a fresh token for each generator's candidate list,
	// so a binary variable whose stamp already equals the current token
	// (it appeared earlier in the same list) is skipped.
	stamp []uint32
	token uint32

	Step            uint64
	LastImproveStep uint64
	RestartCount    uint64
	BestObj         float64
	FoundFeasible   bool
	ObjBreakthrough bool
	MinUnsatCon     int
	ActivityPeriod  int
	activityHits    int

	// TabuBase/TabuVariation parameterise the tenure computed in markTabu:
	// allow_*_step[j] = cur_step + TabuBase + U[0, TabuVariation).
	TabuBase      uint64
	TabuVariation uint64
}

// New allocates a State for store. store must already have been through
// preprocess.Process; from here on the only part of it State writes is the
// objective row's RHS (see MaybeCapture).
func New(store *model.Store, tol tolerance.Tolerances, activityPeriod int, tabuBase, tabuVariation uint64, seed int64) *State {
	n := store.NumVars()
	m := store.NumCons()

	s := int64(seed)
	if s == 0 {
		s = defaultSeed
	}

	st := &State{
		Store:         store,
		Tol:           tol,
		Rand:          rand.New(rand.NewSource(s)),
		Value:         make([]float64, n),
		Best:          make([]float64, n),
		Activity:      make([]float64, m),
		comp:          make([]float64, m),
		Weight:        make([]int64, m),
		posInList:     make([]int, m),
		membership:    make([]bool, m),
		LastIncStep:   make([]uint64, n),
		LastDecStep:   make([]uint64, n),
		AllowIncStep:  make([]uint64, n),
		AllowDecStep:   make([]uint64, n),
		lastDeltaSign:  make([]int8, n),
		stamp:          make([]uint32, n),
		ActivityPeriod: activityPeriod,
		TabuBase:       tabuBase,
		TabuVariation:  tabuVariation,
		BestObj:        math.Inf(1),
	}
	for c := range st.Weight {
		st.Weight[c] = 1
	}
	st.MinUnsatCon = m - 1 // worst case: every non-objective row unsat

	return st
}

// Sat reports whether constraint c is currently satisfied, applying the
// equality-aware gap test from spec.md §3 ("Partition" invariant).
func (st *State) Sat(c model.ConID) bool {
	gap := st.Gap(c)
	if st.Store.Cons[c].Sense == model.EQ {
		return math.Abs(gap) <= st.Tol.Feas
	}
	return gap <= st.Tol.Feas
}

// Gap returns activity[c] - rhs[c].
func (st *State) Gap(c model.ConID) float64 {
	return st.ActivityValue(c) - st.Store.Cons[c].RHS
}

// UnsatList returns the current list of violated non-objective
// constraints. Callers must not retain the slice across an Apply call.
func (st *State) UnsatList() []model.ConID { return st.unsatList }

// SatList returns the current list of satisfied non-objective
// constraints (InferredSat rows included).
func (st *State) SatList() []model.ConID { return st.satList }

// NextToken advances and returns the binary-dedup stamp token, resetting
// every variable's stamp to 0 on 32-bit wraparound (spec.md §4.3).
func (st *State) NextToken() uint32 {
	st.token++
	if st.token == 0 {
		for i := range st.stamp {
			st.stamp[i] = 0
		}
		st.token = 1
	}
	return st.token
}

// Stamped reports whether variable v already carries the current token,
// and stamps it if not (so repeated calls with the same token for the
// same v return true after the first).
func (st *State) Stamped(v model.VarID, token uint32) bool {
	if st.stamp[v] == token {
		return true
	}
	st.stamp[v] = token
	return false
}
