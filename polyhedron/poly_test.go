package polyhedron

import (
	"testing"

	"github.com/ddpoly/ppl/integer"
	"github.com/ddpoly/ppl/linrow"
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

// unitSquareConstraints returns the closed 2D constraints 0<=x<=1, 0<=y<=1.
func unitSquareConstraints(t *testing.T) []linrow.Row {
	t.Helper()
	return []linrow.Row{
		mustRow(t, []int64{0, 1, 0}, linrow.Closed, linrow.Inequality),
		mustRow(t, []int64{0, 0, 1}, linrow.Closed, linrow.Inequality),
		mustRow(t, []int64{1, -1, 0}, linrow.Closed, linrow.Inequality),
		mustRow(t, []int64{1, 0, -1}, linrow.Closed, linrow.Inequality),
	}
}

// unitSquareGenerators returns the closed 2D generators of the same square.
func unitSquareGenerators(t *testing.T) []linrow.Row {
	t.Helper()
	return []linrow.Row{
		mustRow(t, []int64{1, 0, 0}, linrow.Closed, linrow.Point),
		mustRow(t, []int64{1, 1, 0}, linrow.Closed, linrow.Point),
		mustRow(t, []int64{1, 0, 1}, linrow.Closed, linrow.Point),
		mustRow(t, []int64{1, 1, 1}, linrow.Closed, linrow.Point),
	}
}

func TestUniverseHasNoConstraintsAndDimUnitLines(t *testing.T) {
	p, err := Universe(3, linrow.Closed)
	require.NoError(t, err)
	assert.False(t, p.IsEmpty())
	cs, err := p.MinimizedConstraints()
	require.NoError(t, err)
	assert.Empty(t, cs)
	gs, err := p.MinimizedGenerators()
	require.NoError(t, err)
	assert.Len(t, gs, 4) // 3 lines + origin point
}

func TestEmptyIsEmpty(t *testing.T) {
	p, err := Empty(2, linrow.Closed)
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
	assert.Empty(t, p.Constraints())
	assert.Empty(t, p.Generators())
}

func TestFromConstraintsRoundTripsToGenerators(t *testing.T) {
	p, err := FromConstraints(unitSquareConstraints(t), linrow.Closed)
	require.NoError(t, err)
	gs, err := p.MinimizedGenerators()
	require.NoError(t, err)
	assert.Len(t, gs, 4)
	for _, g := range gs {
		assert.Equal(t, linrow.Point, g.Kind)
	}
}

func TestFromGeneratorsRoundTripsToConstraints(t *testing.T) {
	p, err := FromGenerators(unitSquareGenerators(t), linrow.Closed)
	require.NoError(t, err)
	cs, err := p.MinimizedConstraints()
	require.NoError(t, err)
	assert.Len(t, cs, 4)
	for _, c := range cs {
		assert.Equal(t, linrow.Inequality, c.Kind)
	}
}

func TestFromConstraintsEmptySystemIsUnsatisfiable(t *testing.T) {
	rows := []linrow.Row{
		mustRow(t, []int64{-1, 0}, linrow.Closed, linrow.Inequality), // -1 >= 0, never true
	}
	p, err := FromConstraints(rows, linrow.Closed)
	require.NoError(t, err)
	gs, err := p.MinimizedGenerators()
	require.NoError(t, err)
	assert.Empty(t, gs)
	assert.True(t, p.IsEmpty())
}

func TestCloneIsIndependent(t *testing.T) {
	p, err := FromConstraints(unitSquareConstraints(t), linrow.Closed)
	require.NoError(t, err)
	clone := p.Clone()
	require.NoError(t, clone.AddConstraint(mustRow(t, []int64{0, 1, 1}, linrow.Closed, linrow.Inequality)))

	origConstraints, err := p.MinimizedConstraints()
	require.NoError(t, err)
	assert.Len(t, origConstraints, 4)
}

func TestSpaceDimensionAndTopologyAccessors(t *testing.T) {
	p, err := Universe(5, linrow.NotNecessarilyClosed)
	require.NoError(t, err)
	assert.Equal(t, 5, p.SpaceDimension())
	assert.Equal(t, linrow.NotNecessarilyClosed, p.Topology())
}
