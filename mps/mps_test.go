package mps_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shaowei-cai-group/Local-MIP/model"
	"github.com/shaowei-cai-group/Local-MIP/mps"
)

const sampleMPS = `NAME          TESTPROB
ROWS
 N  COST
 L  LIM1
 G  LIM2
 E  MYEQN
COLUMNS
    MARKER                 'MARKER'                 'INTORG'
    X1        COST            1.0   LIM1             1.0
    X1        LIM2            1.0
    MARKER                 'MARKER'                 'INTEND'
    X2        COST            2.0   LIM1             1.0
    X2        MYEQN           1.0
RHS
    RHS       LIM1            4.0   LIM2             1.0
    RHS       MYEQN           3.0
BOUNDS
 UP BND       X1              10.0
 BV BND       X2
ENDATA
`

func TestParseReadsRowsColumnsRHSAndBounds(t *testing.T) {
	store, err := mps.Parse(strings.NewReader(sampleMPS), 1e-9)
	require.NoError(t, err)

	require.Equal(t, 2, store.NumVars())
	require.Equal(t, 4, store.NumCons()) // obj + LIM1 + LIM2 + MYEQN

	x1, err := store.VarByName("X1")
	require.NoError(t, err)
	require.Equal(t, model.GeneralInteger, store.Vars[x1].Kind)
	require.Equal(t, 10.0, store.Vars[x1].Upper)

	x2, err := store.VarByName("X2")
	require.NoError(t, err)
	require.Equal(t, model.Binary, store.Vars[x2].Kind)
	require.Equal(t, 0.0, store.Vars[x2].Lower)
	require.Equal(t, 1.0, store.Vars[x2].Upper)

	lim1, err := store.ConByName("LIM1")
	require.NoError(t, err)
	require.Equal(t, model.LE, store.Cons[lim1].Sense)
	require.Equal(t, 4.0, store.Cons[lim1].RHS)

	lim2, err := store.ConByName("LIM2")
	require.NoError(t, err)
	require.Equal(t, model.GE, store.Cons[lim2].Sense)
	require.Equal(t, 1.0, store.Cons[lim2].RHS)

	myeqn, err := store.ConByName("MYEQN")
	require.NoError(t, err)
	require.Equal(t, model.EQ, store.Cons[myeqn].Sense)
	require.Equal(t, 3.0, store.Cons[myeqn].RHS)
}

func TestParseRecordsMaximizeWithoutNegatingObjective(t *testing.T) {
	src := `NAME
OBJSENSE
 MAX
ROWS
 N  COST
 L  C1
COLUMNS
    X         COST            5.0   C1               1.0
RHS
    RHS       C1              10.0
ENDATA
`
	store, err := mps.Parse(strings.NewReader(src), 1e-9)
	require.NoError(t, err)
	require.True(t, store.Maximize)

	x, err := store.VarByName("X")
	require.NoError(t, err)
	require.Equal(t, 5.0, store.Vars[x].ObjCoeff) // preprocess.Process negates it
}

func TestParseRejectsRanges(t *testing.T) {
	src := `NAME
ROWS
 N  COST
 L  C1
COLUMNS
    X         COST            1.0   C1               1.0
RHS
    RHS       C1              10.0
RANGES
    RNG       C1              2.0
ENDATA
`
	_, err := mps.Parse(strings.NewReader(src), 1e-9)
	require.ErrorIs(t, err, mps.ErrUnsupportedSection)
}

func TestParseRejectsDuplicateObjectiveRow(t *testing.T) {
	src := `NAME
ROWS
 N  COST1
 N  COST2
COLUMNS
    X         COST1           1.0
ENDATA
`
	_, err := mps.Parse(strings.NewReader(src), 1e-9)
	require.ErrorIs(t, err, mps.ErrDuplicateObjective)
}
