package restart_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shaowei-cai-group/Local-MIP/model"
	"github.com/shaowei-cai-group/Local-MIP/restart"
	"github.com/shaowei-cai-group/Local-MIP/search"
	"github.com/shaowei-cai-group/Local-MIP/tolerance"
)

func buildStore(t *testing.T) (*model.Store, model.VarID) {
	t.Helper()
	store := model.NewStore()
	tol := tolerance.Default()
	x, err := store.MakeVariable("x", true)
	require.NoError(t, err)
	store.Vars[x].Lower, store.Vars[x].Upper = 0, 1
	require.NoError(t, store.AddTerm(model.ObjectiveRow, x, 1, tol.Zero))
	store.Freeze()
	return store, x
}

func TestRandomRestartStaysInBounds(t *testing.T) {
	store, x := buildStore(t)
	st := search.New(store, tolerance.Default(), 100000, 4, 7, 1)
	st.Refresh()

	restart.Apply(st, restart.Random)
	require.True(t, store.Vars[x].InBound(st.Value[x]))
	require.Equal(t, uint64(1), st.RestartCount)
}

func TestBestRestartCopiesIncumbentWhenFeasible(t *testing.T) {
	store, x := buildStore(t)
	st := search.New(store, tolerance.Default(), 100000, 4, 7, 1)
	st.Value[x] = 1
	st.Refresh()
	require.True(t, st.MaybeCapture(nil))

	restart.Apply(st, restart.Best)
	require.InDelta(t, 1, st.Value[x], 1e-12)
}

func TestBestRestartFallsBackToRandomWhenInfeasible(t *testing.T) {
	store, x := buildStore(t)
	st := search.New(store, tolerance.Default(), 100000, 4, 7, 1)
	st.Refresh()

	restart.Apply(st, restart.Best)
	require.True(t, store.Vars[x].InBound(st.Value[x]))
}

func TestRestartResetsWeightAndTabuViaSearchState(t *testing.T) {
	store, x := buildStore(t)
	st := search.New(store, tolerance.Default(), 100000, 4, 7, 1)
	st.Refresh()
	st.Step = 5
	st.Apply(x, 1)

	restart.Apply(st, restart.Random)
	require.Equal(t, uint64(0), st.AllowDecStep[x])
	require.Equal(t, int64(1), st.Weight[model.ObjectiveRow])
}
