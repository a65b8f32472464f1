package simplify

import (
	"testing"

	"github.com/ddpoly/ppl/bitrow"
	"github.com/ddpoly/ppl/integer"
	"github.com/ddpoly/ppl/linrow"
	"github.com/ddpoly/ppl/linsys"
	"github.com/ddpoly/ppl/saturation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRow(t *testing.T, vals []int64, top linrow.Topology, kind linrow.Kind) linrow.Row {
	t.Helper()
	coeffs := make([]integer.Coefficient, len(vals))
	for i, v := range vals {
		coeffs[i] = integer.FromInt64(v)
	}
	r, err := linrow.NewRow(coeffs, top, kind)
	require.NoError(t, err)
	return r
}

func satRow(bits ...uint) bitrow.Row {
	var r bitrow.Row
	for _, b := range bits {
		r.Insert(b)
	}
	return r
}

func coeffsOf(t *testing.T, r linrow.Row) []int64 {
	t.Helper()
	out := make([]int64, r.Width())
	for i, c := range r.Coeffs {
		out[i] = c.BigInt().Int64()
	}
	return out
}

// TestSimplifyPromotesGaussDropsAndBackSubstitutes exercises steps 1, 3
// and 6: two inequalities that saturate every dual (x >= 0 and its
// doubled, redundant form 2x >= 0) are promoted to equalities, the
// second is found dependent on the first by Gauss elimination and
// dropped, and the surviving equality x = 0 is then back-substituted
// into x + y <= 5, leaving y <= 5.
func TestSimplifyPromotesGaussDropsAndBackSubstitutes(t *testing.T) {
	top := linrow.Closed
	sys := linsys.New(3, top)
	require.NoError(t, sys.Insert(mustRow(t, []int64{0, 1, 0}, top, linrow.Inequality)))  // x >= 0
	require.NoError(t, sys.Insert(mustRow(t, []int64{0, 2, 0}, top, linrow.Inequality)))  // 2x >= 0 (redundant)
	require.NoError(t, sys.Insert(mustRow(t, []int64{0, 0, 1}, top, linrow.Inequality)))  // y >= 0
	require.NoError(t, sys.Insert(mustRow(t, []int64{5, -1, -1}, top, linrow.Inequality))) // x+y <= 5

	sat := saturation.New(2)
	sat.AddRow(bitrow.Row{})        // row 0 saturates every dual: promotable
	sat.AddRow(bitrow.Row{})        // row 1 saturates every dual: promotable
	sat.AddRow(satRow(0))           // y >= 0
	sat.AddRow(satRow(1))           // x+y <= 5

	rank, err := Simplify(sys, sat)
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
	require.Equal(t, 3, sys.NumRows())

	var gotEquality bool
	var gotYGe, gotYLe bool
	for i := 0; i < sys.NumRows(); i++ {
		r := *sys.Row(i)
		c := coeffsOf(t, r)
		switch {
		case r.Kind.IsLineOrEquality():
			assert.Equal(t, []int64{0, 1, 0}, c, "equality should be strongly-normalized x = 0")
			gotEquality = true
		case c[2] == 1:
			assert.Equal(t, []int64{0, 0, 1}, c, "y >= 0 is unaffected by back-substitution")
			gotYGe = true
		case c[2] == -1:
			assert.Equal(t, []int64{5, 0, -1}, c, "x eliminated from x+y<=5, leaving y<=5")
			gotYLe = true
		}
	}
	assert.True(t, gotEquality)
	assert.True(t, gotYGe)
	assert.True(t, gotYLe)
}

// TestSimplifySaturationRuleDropsLowIncidenceInequality exercises step 4:
// in 3-D with no equalities (d=3, r=0), an inequality saturated by only
// one of four generators (n_sat=1 < d-r-1=2) cannot be irredundant in
// any double-description pair and is dropped; inequalities with
// sufficient incidence survive.
func TestSimplifySaturationRuleDropsLowIncidenceInequality(t *testing.T) {
	top := linrow.Closed
	sys := linsys.New(4, top)
	require.NoError(t, sys.Insert(mustRow(t, []int64{0, 1, 0, 0}, top, linrow.Inequality))) // x >= 0
	require.NoError(t, sys.Insert(mustRow(t, []int64{0, 0, 1, 0}, top, linrow.Inequality))) // y >= 0
	require.NoError(t, sys.Insert(mustRow(t, []int64{0, 0, 0, 1}, top, linrow.Inequality))) // z >= 0 (low incidence)

	sat := saturation.New(4)
	sat.AddRow(satRow(0))          // n_sat = 3
	sat.AddRow(satRow(1))          // n_sat = 3
	sat.AddRow(satRow(0, 1, 2))    // n_sat = 1, below the d-r-1=2 bound

	rank, err := Simplify(sys, sat)
	require.NoError(t, err)
	assert.Equal(t, 0, rank)
	require.Equal(t, 2, sys.NumRows())

	for i := 0; i < sys.NumRows(); i++ {
		c := coeffsOf(t, *sys.Row(i))
		assert.NotEqual(t, []int64{0, 0, 0, 1}, c, "low-incidence z >= 0 must be dropped")
	}
}

// TestSimplifyIndependenceRuleDropsDominatedInequality exercises step 5:
// of two inequalities both passing the saturation rule, one whose
// saturation row is a strict subset of the other's is implied by it and
// dropped.
func TestSimplifyIndependenceRuleDropsDominatedInequality(t *testing.T) {
	top := linrow.Closed
	sys := linsys.New(3, top)
	require.NoError(t, sys.Insert(mustRow(t, []int64{0, 1, 0}, top, linrow.Inequality))) // x >= 0, dominated
	require.NoError(t, sys.Insert(mustRow(t, []int64{1, 1, 0}, top, linrow.Inequality))) // x >= -1, dominates

	sat := saturation.New(3)
	sat.AddRow(satRow(0))    // {0}, strict subset of {0,1}
	sat.AddRow(satRow(0, 1)) // {0,1}

	rank, err := Simplify(sys, sat)
	require.NoError(t, err)
	assert.Equal(t, 0, rank)
	require.Equal(t, 1, sys.NumRows())
	assert.Equal(t, []int64{1, 1, 0}, coeffsOf(t, *sys.Row(0)))
}

// TestSimplifyIndependenceRuleKeepsLowerIndexOnTie exercises step 5's
// tie-break: two inequalities with identical saturation rows are
// equivalent modulo the saturated generators, and the one inserted first
// survives.
func TestSimplifyIndependenceRuleKeepsLowerIndexOnTie(t *testing.T) {
	top := linrow.Closed
	sys := linsys.New(3, top)
	require.NoError(t, sys.Insert(mustRow(t, []int64{0, 1, 0}, top, linrow.Inequality))) // kept
	require.NoError(t, sys.Insert(mustRow(t, []int64{0, 2, 0}, top, linrow.Inequality))) // dropped

	sat := saturation.New(3)
	sat.AddRow(satRow(0))
	sat.AddRow(satRow(0))

	rank, err := Simplify(sys, sat)
	require.NoError(t, err)
	assert.Equal(t, 0, rank)
	require.Equal(t, 1, sys.NumRows())
	assert.Equal(t, []int64{0, 1, 0}, coeffsOf(t, *sys.Row(0)))
}

func TestSimplifyRejectsDimensionMismatch(t *testing.T) {
	sys := linsys.New(3, linrow.Closed)
	require.NoError(t, sys.Insert(mustRow(t, []int64{0, 1, 0}, linrow.Closed, linrow.Inequality)))
	sat := saturation.New(2)

	_, err := Simplify(sys, sat)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
