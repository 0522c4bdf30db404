package lp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shaowei-cai-group/Local-MIP/lp"
	"github.com/shaowei-cai-group/Local-MIP/model"
)

func TestParseReadsObjectiveAndNamedConstraints(t *testing.T) {
	src := `\ sample problem
minimize
  obj: 2 x + 3 y

subject to
  c1: x + y <= 4;
  c2: x - y >= -1;

bounds
  0 <= x <= 10;
  y <= 5;

end
`
	store, err := lp.Parse(strings.NewReader(src), 1e-9)
	require.NoError(t, err)

	require.Equal(t, 2, store.NumVars())
	require.Equal(t, 3, store.NumCons()) // obj + c1 + c2

	x, err := store.VarByName("x")
	require.NoError(t, err)
	require.Equal(t, 2.0, store.Vars[x].ObjCoeff)
	require.Equal(t, 0.0, store.Vars[x].Lower)
	require.Equal(t, 10.0, store.Vars[x].Upper)

	y, err := store.VarByName("y")
	require.NoError(t, err)
	require.Equal(t, 3.0, store.Vars[y].ObjCoeff)
	require.Equal(t, 5.0, store.Vars[y].Upper)

	c1, err := store.ConByName("c1")
	require.NoError(t, err)
	require.Equal(t, model.LE, store.Cons[c1].Sense)
	require.Equal(t, 4.0, store.Cons[c1].RHS)

	c2, err := store.ConByName("c2")
	require.NoError(t, err)
	require.Equal(t, model.GE, store.Cons[c2].Sense)
	require.Equal(t, -1.0, store.Cons[c2].RHS)
}

func TestParseAutoNamesUnlabeledConstraints(t *testing.T) {
	src := `minimize
  x

subject to
  x + y <= 4;

end
`
	store, err := lp.Parse(strings.NewReader(src), 1e-9)
	require.NoError(t, err)

	_, err = store.ConByName("lp_auto_con_0")
	require.NoError(t, err)
}

func TestParseRecordsMaximizeWithoutNegatingObjective(t *testing.T) {
	src := `maximize
  5 x

subject to
  x <= 10;

end
`
	store, err := lp.Parse(strings.NewReader(src), 1e-9)
	require.NoError(t, err)
	require.True(t, store.Maximize)

	x, err := store.VarByName("x")
	require.NoError(t, err)
	require.Equal(t, 5.0, store.Vars[x].ObjCoeff) // preprocess.Process negates it
}

func TestParseHandlesIntegerAndBinarySections(t *testing.T) {
	src := `minimize
  x + y + z

subject to
  x + y + z <= 3;

general
  x

binary
  y
  z

end
`
	store, err := lp.Parse(strings.NewReader(src), 1e-9)
	require.NoError(t, err)

	x, err := store.VarByName("x")
	require.NoError(t, err)
	require.Equal(t, model.GeneralInteger, store.Vars[x].Kind)

	y, err := store.VarByName("y")
	require.NoError(t, err)
	require.Equal(t, model.Binary, store.Vars[y].Kind)
	require.Equal(t, 0.0, store.Vars[y].Lower)
	require.Equal(t, 1.0, store.Vars[y].Upper)
}

func TestParseHandlesFreeAndFixedBounds(t *testing.T) {
	src := `minimize
  x + y

subject to
  x + y <= 3;

bounds
  x free;
  y = 2;

end
`
	store, err := lp.Parse(strings.NewReader(src), 1e-9)
	require.NoError(t, err)

	x, err := store.VarByName("x")
	require.NoError(t, err)
	require.True(t, store.Vars[x].Lower < -1e300)
	require.True(t, store.Vars[x].Upper > 1e300)

	y, err := store.VarByName("y")
	require.NoError(t, err)
	require.Equal(t, model.Fixed, store.Vars[y].Kind)
	require.Equal(t, 2.0, store.Vars[y].Lower)
	require.Equal(t, 2.0, store.Vars[y].Upper)
}

func TestParseStripsCommentsAndContinuationLines(t *testing.T) {
	src := `minimize /* inline note */
  x // trailing comment
\ this whole line is ignored
subject to
  x <= 4;

end
`
	store, err := lp.Parse(strings.NewReader(src), 1e-9)
	require.NoError(t, err)

	x, err := store.VarByName("x")
	require.NoError(t, err)
	require.Equal(t, 1.0, store.Vars[x].ObjCoeff)
}

func TestParseRejectsMissingObjectiveSense(t *testing.T) {
	src := `x + y

subject to
  x + y <= 3;

end
`
	_, err := lp.Parse(strings.NewReader(src), 1e-9)
	require.Error(t, err)
}
