package polyhedron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddpoly/ppl/linrow"
)

func TestAddConstraintShrinksUniverse(t *testing.T) {
	p, err := Universe(2, linrow.Closed)
	require.NoError(t, err)
	require.NoError(t, p.AddConstraints(unitSquareConstraints(t)))

	gs, err := p.MinimizedGenerators()
	require.NoError(t, err)
	assert.Len(t, gs, 4)
}

func TestAddConstraintToEmptyStaysEmpty(t *testing.T) {
	p, err := Empty(2, linrow.Closed)
	require.NoError(t, err)
	require.NoError(t, p.AddConstraint(mustRow(t, []int64{0, 1, 0}, linrow.Closed, linrow.Inequality)))
	assert.True(t, p.IsEmpty())
}

func TestAddGeneratorLiftsEmptyPolyhedron(t *testing.T) {
	p, err := Empty(2, linrow.Closed)
	require.NoError(t, err)
	require.NoError(t, p.AddGenerators(unitSquareGenerators(t)))
	assert.False(t, p.IsEmpty())
	cs, err := p.MinimizedConstraints()
	require.NoError(t, err)
	assert.Len(t, cs, 4)
}

func TestIntersectionAssignOfTwoSquares(t *testing.T) {
	p, err := FromConstraints(unitSquareConstraints(t), linrow.Closed)
	require.NoError(t, err)

	// the second square is [1, 2] x [0, 1], which meets the first only
	// along x = 1:
	shifted := []linrow.Row{
		mustRow(t, []int64{-1, 1, 0}, linrow.Closed, linrow.Inequality), // x - 1 >= 0
		mustRow(t, []int64{0, 0, 1}, linrow.Closed, linrow.Inequality),
		mustRow(t, []int64{2, -1, 0}, linrow.Closed, linrow.Inequality), // 2 - x >= 0
		mustRow(t, []int64{1, 0, -1}, linrow.Closed, linrow.Inequality),
	}
	q, err := FromConstraints(shifted, linrow.Closed)
	require.NoError(t, err)

	require.NoError(t, p.IntersectionAssign(q))
	gs, err := p.MinimizedGenerators()
	require.NoError(t, err)
	assert.Len(t, gs, 2) // the segment x=1, 0<=y<=1
}

func TestIntersectionWithEmptyCollapses(t *testing.T) {
	p, err := FromConstraints(unitSquareConstraints(t), linrow.Closed)
	require.NoError(t, err)
	empty, err := Empty(2, linrow.Closed)
	require.NoError(t, err)

	require.NoError(t, p.IntersectionAssign(empty))
	assert.True(t, p.IsEmpty())
}

func TestPolyHullAssignOfSquareAndPoint(t *testing.T) {
	p, err := FromConstraints(unitSquareConstraints(t), linrow.Closed)
	require.NoError(t, err)
	outside, err := FromGenerators([]linrow.Row{
		mustRow(t, []int64{2, 4, 1}, linrow.Closed, linrow.Point), // (2, 0.5)
	}, linrow.Closed)
	require.NoError(t, err)

	require.NoError(t, p.PolyHullAssign(outside))
	gs, err := p.MinimizedGenerators()
	require.NoError(t, err)
	assert.Len(t, gs, 5) // the square plus the new extreme point
}

func TestPolyHullWithEmptyIsNoOp(t *testing.T) {
	p, err := FromConstraints(unitSquareConstraints(t), linrow.Closed)
	require.NoError(t, err)
	empty, err := Empty(2, linrow.Closed)
	require.NoError(t, err)

	require.NoError(t, p.PolyHullAssign(empty))
	gs, err := p.MinimizedGenerators()
	require.NoError(t, err)
	assert.Len(t, gs, 4)
}

func TestConcatenateAssignSumsDimensions(t *testing.T) {
	p, err := FromConstraints(unitSquareConstraints(t), linrow.Closed)
	require.NoError(t, err)
	line, err := FromConstraints([]linrow.Row{
		mustRow(t, []int64{0, 1}, linrow.Closed, linrow.Inequality),
		mustRow(t, []int64{1, -1}, linrow.Closed, linrow.Inequality),
	}, linrow.Closed)
	require.NoError(t, err)

	require.NoError(t, p.ConcatenateAssign(line))
	assert.Equal(t, 3, p.SpaceDimension())
	cs, err := p.MinimizedConstraints()
	require.NoError(t, err)
	assert.Len(t, cs, 6)
}

func TestTimeElapseAssignAddsDirections(t *testing.T) {
	p, err := FromGenerators([]linrow.Row{
		mustRow(t, []int64{1, 0, 0}, linrow.Closed, linrow.Point),
	}, linrow.Closed)
	require.NoError(t, err)
	ray, err := FromGenerators([]linrow.Row{
		mustRow(t, []int64{1, 0, 0}, linrow.Closed, linrow.Point),
		mustRow(t, []int64{0, 1, 0}, linrow.Closed, linrow.Ray),
	}, linrow.Closed)
	require.NoError(t, err)

	require.NoError(t, p.TimeElapseAssign(ray))
	bounded, err := p.IsBounded()
	require.NoError(t, err)
	assert.False(t, bounded)
}

func TestTopologicalClosureAssignDropsStrictness(t *testing.T) {
	open := []linrow.Row{
		mustRow(t, []int64{0, 1, 0, 1}, linrow.NotNecessarilyClosed, linrow.Inequality), // x > 0
		mustRow(t, []int64{0, 0, 1, 1}, linrow.NotNecessarilyClosed, linrow.Inequality),
		mustRow(t, []int64{1, -1, 0, 0}, linrow.NotNecessarilyClosed, linrow.Inequality),
		mustRow(t, []int64{1, 0, -1, 0}, linrow.NotNecessarilyClosed, linrow.Inequality),
	}
	p, err := FromConstraints(open, linrow.NotNecessarilyClosed)
	require.NoError(t, err)

	closed, err := p.IsTopologicallyClosed()
	require.NoError(t, err)
	assert.False(t, closed)

	require.NoError(t, p.TopologicalClosureAssign())
	closed, err = p.IsTopologicallyClosed()
	require.NoError(t, err)
	assert.True(t, closed)
}

func TestPolyDifferenceAssignRemovesOverlap(t *testing.T) {
	p, err := FromConstraints(unitSquareConstraints(t), linrow.Closed)
	require.NoError(t, err)
	right, err := FromConstraints([]linrow.Row{
		mustRow(t, []int64{0, 1, 0}, linrow.Closed, linrow.Inequality),
		mustRow(t, []int64{0, 0, 1}, linrow.Closed, linrow.Inequality),
		mustRow(t, []int64{1, 0, -1}, linrow.Closed, linrow.Inequality),
		mustRow(t, []int64{-1, 1, 0}, linrow.Closed, linrow.Inequality), // x - 1 >= 0, i.e. x >= 1
	}, linrow.Closed)
	require.NoError(t, err)

	require.NoError(t, p.PolyDifferenceAssign(right))
	assert.False(t, p.IsEmpty())

	eq, err := p.Equals(right)
	require.NoError(t, err)
	assert.False(t, eq)
}
