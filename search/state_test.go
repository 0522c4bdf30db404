package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shaowei-cai-group/Local-MIP/model"
	"github.com/shaowei-cai-group/Local-MIP/search"
	"github.com/shaowei-cai-group/Local-MIP/tolerance"
)

// buildStore wires: minimize x + y, subject to x + 2y <= 10, x,y in [0,5].
func buildStore(t *testing.T) (*model.Store, model.VarID, model.VarID, model.ConID) {
	t.Helper()
	store := model.NewStore()
	tol := tolerance.Default()

	x, err := store.MakeVariable("x", false)
	require.NoError(t, err)
	y, err := store.MakeVariable("y", false)
	require.NoError(t, err)
	store.Vars[x].Lower, store.Vars[x].Upper = 0, 5
	store.Vars[y].Lower, store.Vars[y].Upper = 0, 5

	require.NoError(t, store.AddTerm(model.ObjectiveRow, x, 1, tol.Zero))
	require.NoError(t, store.AddTerm(model.ObjectiveRow, y, 1, tol.Zero))

	c, err := store.MakeConstraint("c1", model.LE)
	require.NoError(t, err)
	require.NoError(t, store.AddTerm(c, x, 1, tol.Zero))
	require.NoError(t, store.AddTerm(c, y, 2, tol.Zero))
	store.Cons[c].RHS = 10

	store.Freeze()
	return store, x, y, c
}

func TestRefreshMatchesDirectComputation(t *testing.T) {
	store, x, y, c := buildStore(t)
	st := search.New(store, tolerance.Default(), 100000, 4, 7, 1)
	st.Value[x] = 3
	st.Value[y] = 2

	st.Refresh()

	require.InDelta(t, -3, st.Gap(c), 1e-12) // activity = 3+2*2 = 7, rhs = 10
	require.True(t, st.Sat(c))
	require.Contains(t, st.SatList(), c)
	require.Empty(t, st.UnsatList())
}

func TestApplyMovesConstraintBetweenLists(t *testing.T) {
	store, x, y, c := buildStore(t)
	st := search.New(store, tolerance.Default(), 100000, 4, 7, 1)
	st.Refresh()
	require.Contains(t, st.SatList(), c)

	st.Apply(x, 8) // x: 0 -> 8, clamped to upper bound 5; activity becomes 5 > 10? no, 5 <= 10 stays sat
	require.InDelta(t, 5, st.Value[x], 1e-12)

	st.Apply(y, 5) // activity = 5 + 2*5 = 15 > 10: c moves to the unsat list
	require.Contains(t, st.UnsatList(), c)
	require.NotContains(t, st.SatList(), c)

	st.Apply(x, -10) // clamps to lower bound 0; activity = 10 <= 10: c moves back to the sat list
	require.InDelta(t, 0, st.Value[x], 1e-12)
	require.Contains(t, st.SatList(), c)
	require.NotContains(t, st.UnsatList(), c)
}

func TestApplyClampRespectsBounds(t *testing.T) {
	store, x, _, _ := buildStore(t)
	st := search.New(store, tolerance.Default(), 100000, 4, 7, 1)
	st.Refresh()

	st.Apply(x, 100)
	require.InDelta(t, store.Vars[x].Upper, st.Value[x], 1e-12)

	st.Apply(x, -100)
	require.InDelta(t, store.Vars[x].Lower, st.Value[x], 1e-12)
}

func TestApplySetsTabuTenureInRange(t *testing.T) {
	store, x, _, _ := buildStore(t)
	st := search.New(store, tolerance.Default(), 100000, 4, 7, 1)
	st.Refresh()
	st.Step = 10

	st.Apply(x, 1)

	require.GreaterOrEqual(t, st.AllowDecStep[x], st.Step+4)
	require.Less(t, st.AllowDecStep[x], st.Step+4+7)
	require.True(t, st.Tabu(x, -1))
	require.False(t, st.Tabu(x, 1))
}

func TestMaybeCaptureRecordsIncumbentAndTightensObjectiveRow(t *testing.T) {
	store, x, y, _ := buildStore(t)
	st := search.New(store, tolerance.Default(), 100000, 4, 7, 1)
	st.Refresh() // x=y=0 is feasible, obj=0

	captured := st.MaybeCapture(nil)
	require.True(t, captured)
	require.True(t, st.FoundFeasible)
	require.InDelta(t, 0, st.BestObj, 1e-12)
	require.InDelta(t, -st.Tol.Opt, store.Cons[model.ObjectiveRow].RHS, 1e-12)

	// A worse feasible point must not recapture.
	st.Apply(x, 1)
	st.Apply(y, 1)
	st.Refresh()
	require.False(t, st.MaybeCapture(nil))
	require.InDelta(t, 0, st.BestObj, 1e-12)
}

func TestRestartResetsWeightsAndTabu(t *testing.T) {
	store, x, _, c := buildStore(t)
	st := search.New(store, tolerance.Default(), 100000, 4, 7, 1)
	st.Refresh()
	st.Step = 5
	st.Apply(x, 1)
	st.Weight[c] = 9

	st.BeginRestart()
	st.Value[x] = 2
	st.FinishRestart()

	require.Equal(t, int64(1), st.Weight[c])
	require.Equal(t, uint64(0), st.AllowDecStep[x])
	require.Equal(t, uint64(1), st.RestartCount)
	require.InDelta(t, 2, st.Value[x], 1e-12)
}

func TestPartitionExclusivity(t *testing.T) {
	store, x, y, c := buildStore(t)
	st := search.New(store, tolerance.Default(), 100000, 4, 7, 1)
	st.Value[x] = 5
	st.Value[y] = 5 // activity = 15 > rhs 10: unsat
	st.Refresh()

	require.Contains(t, st.UnsatList(), c)
	require.NotContains(t, st.SatList(), c)

	st.Apply(x, -5)
	st.Apply(y, -5)
	require.Contains(t, st.SatList(), c)
	require.NotContains(t, st.UnsatList(), c)
}
