package neighbor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shaowei-cai-group/Local-MIP/model"
	"github.com/shaowei-cai-group/Local-MIP/neighbor"
	"github.com/shaowei-cai-group/Local-MIP/search"
	"github.com/shaowei-cai-group/Local-MIP/tolerance"
)

func TestSampleIdxsReturnsDistinctValues(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	out := neighbor.SampleIdxs(rng, 10, 4)
	require.Len(t, out, 4)
	seen := map[int]bool{}
	for _, v := range out {
		require.False(t, seen[v])
		seen[v] = true
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10)
	}
}

func TestSampleIdxsReturnsAllWhenKExceedsN(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	out := neighbor.SampleIdxs(rng, 3, 10)
	require.ElementsMatch(t, []int{0, 1, 2}, out)
}

func TestSampleOpTruncatesInPlace(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ol := &neighbor.OpList{VarIdx: []int{0, 1, 2, 3}, Delta: []float64{0, 1, 2, 3}}
	neighbor.SampleOp(rng, ol, 2)
	require.Equal(t, 2, ol.Len())
}

func buildFeasibilityStore(t *testing.T) (*model.Store, model.VarID, model.VarID, model.ConID) {
	t.Helper()
	store := model.NewStore()
	tol := tolerance.Default()

	x, err := store.MakeVariable("x", true)
	require.NoError(t, err)
	y, err := store.MakeVariable("y", true)
	require.NoError(t, err)
	store.Vars[x].Lower, store.Vars[x].Upper = 0, 1
	store.Vars[y].Lower, store.Vars[y].Upper = 0, 1

	require.NoError(t, store.AddTerm(model.ObjectiveRow, x, 1, tol.Zero))
	require.NoError(t, store.AddTerm(model.ObjectiveRow, y, 1, tol.Zero))

	c, err := store.MakeConstraint("c1", model.LE)
	require.NoError(t, err)
	require.NoError(t, store.AddTerm(c, x, 1, tol.Zero))
	require.NoError(t, store.AddTerm(c, y, 1, tol.Zero))
	store.Cons[c].RHS = 1

	store.Freeze()
	return store, x, y, c
}

func TestUnsatMTMBMProposesTighteningDelta(t *testing.T) {
	store, x, y, _ := buildFeasibilityStore(t)
	st := search.New(store, tolerance.Default(), 100000, 4, 7, 1)
	st.Value[x] = 1
	st.Value[y] = 1 // activity=2 > rhs=1: unsat
	st.Refresh()

	ol := &neighbor.OpList{}
	neighbor.UnsatMTMBM(st, 4, 4, ol)
	require.Greater(t, ol.Len(), 0)
	for i, v := range ol.VarIdx {
		require.Contains(t, []int{int(x), int(y)}, v)
		require.InDelta(t, -1, ol.Delta[i], 1e-12)
	}
}

func TestFlipProposesOppositeValue(t *testing.T) {
	store, x, y, _ := buildFeasibilityStore(t)
	// MakeVariable yields GeneralInteger and no preprocess runs here, so mark
	// the {0,1} variables Binary for Flip's index to pick them up.
	store.Vars[x].Kind, store.Vars[y].Kind = model.Binary, model.Binary
	st := search.New(store, tolerance.Default(), 100000, 4, 7, 1)
	st.Refresh()
	idx := neighbor.BuildIndices(store)

	ol := &neighbor.OpList{}
	neighbor.Flip(st, idx, 2, ol)
	require.Greater(t, ol.Len(), 0)
	for i, v := range ol.VarIdx {
		require.InDelta(t, 1, st.Value[model.VarID(v)]+ol.Delta[i], 1e-12)
	}
}

func TestEasyProposesBoundsAndMidpoint(t *testing.T) {
	store := model.NewStore()
	tol := tolerance.Default()
	x, err := store.MakeVariable("x", false)
	require.NoError(t, err)
	store.Vars[x].Lower, store.Vars[x].Upper = -4, 6
	require.NoError(t, store.AddTerm(model.ObjectiveRow, x, 1, tol.Zero))
	store.Freeze()

	st := search.New(store, tol, 100000, 4, 7, 1)
	st.Value[x] = 2 // away from 0, so the zero target is a non-zero move
	st.Refresh()
	idx := neighbor.BuildIndices(store)

	ol := &neighbor.OpList{}
	neighbor.Easy(st, idx, 1, ol)

	targets := make([]float64, len(ol.Delta))
	for i, d := range ol.Delta {
		targets[i] = st.Value[model.VarID(ol.VarIdx[i])] + d
	}
	require.Contains(t, targets, -4.0) // lower
	require.Contains(t, targets, 6.0)  // upper
	require.Contains(t, targets, 0.0)  // spans zero
	require.Contains(t, targets, 1.0)  // midpoint of [-4,6]
}

func TestUnsatMTMBMRandomUsesImmediateReversalTabu(t *testing.T) {
	store, x, y, _ := buildFeasibilityStore(t)
	st := search.New(store, tolerance.Default(), 100000, 4, 7, 1)
	st.Value[x], st.Value[y] = 0, 1
	st.Refresh()
	st.Apply(x, 1) // activity=2 > rhs=1 keeps c1 unsat; sets lastDeltaSign[x] = +1 via markTabu

	ol := &neighbor.OpList{}
	neighbor.UnsatMTMBMRandom(st, ol)
	require.Greater(t, ol.Len(), 0) // y's -1 tightening move is still proposed
	for i, v := range ol.VarIdx {
		if model.VarID(v) == x {
			require.NotEqual(t, -1.0, ol.Delta[i]) // reversing the prior +1 step is rejected
		}
	}
}
