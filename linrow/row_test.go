package linrow

import (
	"testing"

	"github.com/ddpoly/ppl/integer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coeffs(vals ...int64) []integer.Coefficient {
	out := make([]integer.Coefficient, len(vals))
	for i, v := range vals {
		out[i] = integer.FromInt64(v)
	}
	return out
}

func TestNewRowPointNegatesForPositiveDivisor(t *testing.T) {
	r, err := NewRow(coeffs(-2, 4, 6), Closed, Point)
	require.NoError(t, err)
	assert.Equal(t, "2", r.Inhomogeneous().String())
	assert.Equal(t, "-4", r.Coeffs[1].String())
}

func TestNewRowRejectsZeroDivisor(t *testing.T) {
	_, err := NewRow(coeffs(0, 1), Closed, Point)
	assert.ErrorIs(t, err, ErrZeroDivisor)
}

func TestNewRowLineZeroesInhomogeneous(t *testing.T) {
	r, err := NewRow(coeffs(5, 1, 2), Closed, Line)
	require.NoError(t, err)
	assert.True(t, r.Inhomogeneous().IsZero())
}

func TestNewRowClosurePointZeroesEpsilon(t *testing.T) {
	r, err := NewRow(coeffs(2, 1, 3, 99), NotNecessarilyClosed, ClosurePoint)
	require.NoError(t, err)
	assert.True(t, r.Epsilon().IsZero())
}

func TestStrongNormalize(t *testing.T) {
	r := Row{Coeffs: coeffs(4, -8, 12), Topology: Closed, Kind: Equality}
	n := r.StrongNormalize()
	assert.Equal(t, "-1", n.Coeffs[0].String())
	assert.Equal(t, "2", n.Coeffs[1].String())
	assert.Equal(t, "-3", n.Coeffs[2].String())
}

func TestCompareClassOrdering(t *testing.T) {
	eq := Row{Coeffs: coeffs(0, 1, 0), Topology: Closed, Kind: Equality}
	ineq := Row{Coeffs: coeffs(0, 0, 1), Topology: Closed, Kind: Inequality}
	assert.Equal(t, -2, eq.Compare(ineq))
	assert.Equal(t, 2, ineq.Compare(eq))
}

func TestCompareInhomogeneousOnlyDifference(t *testing.T) {
	a := Row{Coeffs: coeffs(1, 2, 3), Topology: Closed, Kind: Inequality}
	b := Row{Coeffs: coeffs(5, 2, 3), Topology: Closed, Kind: Inequality}
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
}

func TestCompareSelfIsZero(t *testing.T) {
	a := Row{Coeffs: coeffs(1, 2, 3), Topology: Closed, Kind: Inequality}
	assert.Equal(t, 0, a.Compare(a))
}

func TestScalarProduct(t *testing.T) {
	a := Row{Coeffs: coeffs(1, 2, 3)}
	b := Row{Coeffs: coeffs(0, 1, 1)}
	assert.Equal(t, "5", ScalarProduct(a, b).String())
}

func TestLinearCombineZeroesPivot(t *testing.T) {
	x := Row{Coeffs: coeffs(0, 4, 2), Topology: Closed, Kind: Ray}
	y := Row{Coeffs: coeffs(0, 6, 3), Topology: Closed, Kind: Ray}
	out, err := x.LinearCombine(y, 1)
	require.NoError(t, err)
	assert.True(t, out.Coeffs[1].IsZero())
}

func TestSetWidthMigratesEpsilon(t *testing.T) {
	r := Row{Coeffs: coeffs(1, 2, 9), Topology: NotNecessarilyClosed, Kind: Inequality}
	r.SetWidth(5)
	require.Equal(t, 5, r.Width())
	assert.Equal(t, "9", r.Coeffs[4].String())
	assert.True(t, r.Coeffs[2].IsZero())
	assert.True(t, r.Coeffs[3].IsZero())
}
