package conversion

import (
	"testing"

	"github.com/ddpoly/ppl/bitrow"
	"github.com/ddpoly/ppl/integer"
	"github.com/ddpoly/ppl/linrow"
	"github.com/ddpoly/ppl/linsys"
	"github.com/ddpoly/ppl/saturation"
	"github.com/ddpoly/ppl/simplify"
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

// point extracts the homogeneous coordinates of a strongly-normalized,
// divisor-1 point row of width 3, for easy comparison in tests.
func point(t *testing.T, r linrow.Row) [2]int64 {
	t.Helper()
	require.Equal(t, linrow.Point, r.Kind)
	one := integer.FromInt64(1)
	require.Equal(t, integer.Equal, r.Coeffs[0].Cmp(one), "expected divisor 1, got %s", r.Coeffs[0].String())
	return [2]int64{r.Coeffs[1].BigInt().Int64(), r.Coeffs[2].BigInt().Int64()}
}

// TestScenarioA verifies a worked example: from the constraints
// {x >= 0, y >= 0, x + y <= 2}, conversion from the 2-D universe's
// generator system must produce exactly the three points (0,0), (2,0),
// (0,2), with zero rays or lines remaining.
func TestScenarioA(t *testing.T) {
	top := linrow.Closed

	dst := linsys.New(3, top)
	require.NoError(t, dst.Insert(mustRow(t, []int64{0, 1, 0}, top, linrow.Line)))
	require.NoError(t, dst.Insert(mustRow(t, []int64{0, 0, 1}, top, linrow.Line)))
	require.NoError(t, dst.Insert(mustRow(t, []int64{1, 0, 0}, top, linrow.Point)))

	src := linsys.New(3, top)
	require.NoError(t, src.InsertPending(mustRow(t, []int64{0, 1, 0}, top, linrow.Inequality)))  // x >= 0
	require.NoError(t, src.InsertPending(mustRow(t, []int64{0, 0, 1}, top, linrow.Inequality)))  // y >= 0
	require.NoError(t, src.InsertPending(mustRow(t, []int64{2, -1, -1}, top, linrow.Inequality))) // x+y <= 2

	sat := saturation.New(3)
	for i := 0; i < 3; i++ {
		sat.AddRow(bitrow.Row{}) // the 3 initial generators saturate everything (no constraint seen yet)
	}
	require.Equal(t, 3, sat.NumRows())

	st := &State{Src: src, Dst: dst, Sat: sat, NumLinesOrEqualities: 2}

	rank, err := Convert(st, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, rank, "no lines should survive: the cone is pointed")

	require.Equal(t, 3, st.Dst.NumRows())
	got := make(map[[2]int64]bool, 3)
	for i := 0; i < st.Dst.NumRows(); i++ {
		r := *st.Dst.Row(i)
		assert.Equal(t, linrow.Point, r.Kind)
		got[point(t, r)] = true
	}
	want := map[[2]int64]bool{{0, 0}: true, {2, 0}: true, {0, 2}: true}
	assert.Equal(t, want, got)

	require.Equal(t, st.Dst.NumRows(), st.Sat.NumRows())
	for i := 0; i < st.Sat.NumRows(); i++ {
		notSat := 0
		for j := uint(0); j < st.Sat.NumCols(); j++ {
			if st.Sat.DoesNotSaturate(i, j) {
				notSat++
			}
		}
		assert.Equal(t, 1, notSat, "row %d: each vertex of a 2-D triangle saturates exactly two of its three edges", i)
	}
}

// TestScenarioBGeneratorToConstraint verifies a worked example:
// from the generators {point (0,0)} ∪ {line along x} ∪ {ray along y},
// the constraint form is exactly y >= 0: one inequality, zero equalities.
func TestScenarioBGeneratorToConstraint(t *testing.T) {
	top := linrow.Closed

	// Dst holds constraints; seed it with the dual of TestScenarioA's
	// generator seed (one unit line per axis plus the origin point): one
	// unit equality per axis pinning the origin, plus the homogeneous-cone
	// tautology "1 >= 0" (mirrors polyhedron.universeConstraintSeed).
	dst := linsys.New(3, top)
	require.NoError(t, dst.Insert(mustRow(t, []int64{0, 1, 0}, top, linrow.Equality)))   // x = 0
	require.NoError(t, dst.Insert(mustRow(t, []int64{0, 0, 1}, top, linrow.Equality)))   // y = 0
	require.NoError(t, dst.Insert(mustRow(t, []int64{1, 0, 0}, top, linrow.Inequality))) // 1 >= 0

	src := linsys.New(3, top)
	require.NoError(t, src.InsertPending(mustRow(t, []int64{1, 0, 0}, top, linrow.Point)))
	require.NoError(t, src.InsertPending(mustRow(t, []int64{0, 1, 0}, top, linrow.Line)))
	require.NoError(t, src.InsertPending(mustRow(t, []int64{0, 0, 1}, top, linrow.Ray)))

	sat := saturation.New(3)
	for i := 0; i < 3; i++ {
		sat.AddRow(bitrow.Row{}) // the 3 seed rows saturate everything (no generator seen yet)
	}

	st := &State{Src: src, Dst: dst, Sat: sat, NumLinesOrEqualities: 2}

	_, err := Convert(st, 0, nil)
	require.NoError(t, err)

	// Convert alone leaves the now-redundant tautology row in place
	// alongside y >= 0; simplify.Simplify is what a real caller runs next
	// (polyhedron.minimizeConstraints) to drop it.
	_, err = simplify.Simplify(st.Dst, st.Sat)
	require.NoError(t, err)

	require.Equal(t, 1, st.Dst.NumRows())
	r := *st.Dst.Row(0)
	assert.Equal(t, linrow.Inequality, r.Kind)
	assert.True(t, r.Coeffs[0].IsZero(), "expected inhomogeneous term 0, got %s", r.Coeffs[0].String())
	assert.True(t, r.Coeffs[1].IsZero(), "expected x coefficient 0, got %s", r.Coeffs[1].String())
	one := integer.FromInt64(1)
	assert.Equal(t, integer.Equal, r.Coeffs[2].Cmp(one), "expected y coefficient 1, got %s", r.Coeffs[2].String())
}
