package driver_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shaowei-cai-group/Local-MIP/driver"
	"github.com/shaowei-cai-group/Local-MIP/model"
	"github.com/shaowei-cai-group/Local-MIP/tolerance"
)

// buildKnapsack builds max x+y s.t. x+y<=1, x,y binary (after the
// objective is negated to a minimisation row by hand, since these tests
// build stores directly rather than through preprocess.Process).
func buildKnapsack(t *testing.T) *model.Store {
	t.Helper()
	store := model.NewStore()
	tol := tolerance.Default()

	x, err := store.MakeVariable("x", true)
	require.NoError(t, err)
	y, err := store.MakeVariable("y", true)
	require.NoError(t, err)
	store.Vars[x].Lower, store.Vars[x].Upper = 0, 1
	store.Vars[y].Lower, store.Vars[y].Upper = 0, 1

	require.NoError(t, store.AddTerm(model.ObjectiveRow, x, -1, tol.Zero))
	require.NoError(t, store.AddTerm(model.ObjectiveRow, y, -1, tol.Zero))

	c, err := store.MakeConstraint("c1", model.LE)
	require.NoError(t, err)
	require.NoError(t, store.AddTerm(c, x, 1, tol.Zero))
	require.NoError(t, store.AddTerm(c, y, 1, tol.Zero))
	store.Cons[c].RHS = 1

	store.Freeze()
	return store
}

func TestRunFindsFeasibleIncumbentOnSmallKnapsack(t *testing.T) {
	store := buildKnapsack(t)
	cfg := driver.New(driver.WithTimeLimit(200 * time.Millisecond))
	s := driver.NewSolver(store, tolerance.Default(), cfg, nil)

	require.NoError(t, s.Run())
	require.Equal(t, driver.OutcomeFeasible, s.Outcome())
	require.True(t, s.State.FoundFeasible)
	require.LessOrEqual(t, s.State.Best[0]+s.State.Best[1], 1.0+1e-6)
}

func TestRunRespectsExternalTerminate(t *testing.T) {
	store := buildKnapsack(t)
	cfg := driver.New(driver.WithTimeLimit(10 * time.Second))
	s := driver.NewSolver(store, tolerance.Default(), cfg, nil)

	s.Terminate()
	require.NoError(t, s.Run())
	require.True(t, s.Terminated())
	require.Equal(t, driver.OutcomeCancelled, s.Outcome())
}

func buildObjectiveOnly(t *testing.T) *model.Store {
	t.Helper()
	store := model.NewStore()
	tol := tolerance.Default()
	x, err := store.MakeVariable("x", false)
	require.NoError(t, err)
	store.Vars[x].Lower, store.Vars[x].Upper = -5, 5
	require.NoError(t, store.AddTerm(model.ObjectiveRow, x, 1, tol.Zero))
	store.Freeze()
	return store
}

func TestRunTakesObjectiveOnlyFastPath(t *testing.T) {
	store := buildObjectiveOnly(t)
	cfg := driver.New(driver.WithTimeLimit(time.Second))
	s := driver.NewSolver(store, tolerance.Default(), cfg, nil)

	require.NoError(t, s.Run())
	require.Equal(t, driver.OutcomeFeasible, s.Outcome())
	require.InDelta(t, -5, s.State.Best[0], 1e-12)
	require.InDelta(t, -5, s.State.BestObj, 1e-12)
}

func TestRunObjectiveOnlyDetectsUnbounded(t *testing.T) {
	store := model.NewStore()
	tol := tolerance.Default()
	x, err := store.MakeVariable("x", false)
	require.NoError(t, err)
	// Lower stays -Inf; minimising +x with no lower bound is unbounded.
	require.NoError(t, store.AddTerm(model.ObjectiveRow, x, 1, tol.Zero))
	store.Freeze()

	cfg := driver.New(driver.WithTimeLimit(time.Second))
	s := driver.NewSolver(store, tolerance.Default(), cfg, nil)

	require.NoError(t, s.Run())
	require.Equal(t, driver.OutcomeUnbounded, s.Outcome())
}

func TestBestObjectivePublishesAfterCapture(t *testing.T) {
	store := buildKnapsack(t)
	cfg := driver.New(driver.WithTimeLimit(200 * time.Millisecond))
	s := driver.NewSolver(store, tolerance.Default(), cfg, nil)

	require.NoError(t, s.Run())
	require.NotEqual(t, math.Inf(1), s.BestObjective())
}

func TestSummaryReportsObjectiveInOriginalSense(t *testing.T) {
	store := buildKnapsack(t)
	store.Maximize = true // coefficients above are already the negated x+y
	cfg := driver.New(driver.WithTimeLimit(200 * time.Millisecond))
	s := driver.NewSolver(store, tolerance.Default(), cfg, nil)

	require.NoError(t, s.Run())
	summary := s.Summary()

	require.Equal(t, driver.OutcomeFeasible, summary.Outcome)
	require.True(t, summary.FoundAny)
	require.InDelta(t, 1.0, summary.BestObjective, 1e-6)
	require.Greater(t, summary.Elapsed, time.Duration(0))
}

func TestSummaryReflectsNoIncumbentAfterCancel(t *testing.T) {
	store := buildKnapsack(t)
	cfg := driver.New(driver.WithTimeLimit(10 * time.Second))
	s := driver.NewSolver(store, tolerance.Default(), cfg, nil)

	s.Terminate()
	require.NoError(t, s.Run())
	summary := s.Summary()

	require.Equal(t, driver.OutcomeCancelled, summary.Outcome)
	require.False(t, summary.FoundAny)
}
