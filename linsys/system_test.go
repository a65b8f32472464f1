package linsys

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

func TestInsertGrowsWidthAndTracksSorted(t *testing.T) {
	s := New(3, linrow.Closed)
	require.NoError(t, s.Insert(mustRow(t, []int64{0, 1, 0}, linrow.Closed, linrow.Inequality)))
	require.NoError(t, s.Insert(mustRow(t, []int64{0, 2, 0}, linrow.Closed, linrow.Inequality)))
	assert.True(t, s.Sorted())
	assert.Equal(t, 2, s.FirstPending())
}

func TestInsertPendingDoesNotAdvanceFirstPending(t *testing.T) {
	s := New(3, linrow.Closed)
	require.NoError(t, s.Insert(mustRow(t, []int64{0, 1, 0}, linrow.Closed, linrow.Inequality)))
	require.NoError(t, s.InsertPending(mustRow(t, []int64{0, 2, 0}, linrow.Closed, linrow.Inequality)))
	assert.Equal(t, 1, s.FirstPending())
	assert.True(t, s.HasPending())
}

func TestSortPendingAndRemoveDuplicates(t *testing.T) {
	s := New(2, linrow.Closed)
	require.NoError(t, s.InsertPending(mustRow(t, []int64{0, 2}, linrow.Closed, linrow.Ray)))
	require.NoError(t, s.InsertPending(mustRow(t, []int64{0, 1}, linrow.Closed, linrow.Ray)))
	require.NoError(t, s.InsertPending(mustRow(t, []int64{0, 1}, linrow.Closed, linrow.Ray)))

	s.SortPendingAndRemoveDuplicates()
	assert.Equal(t, 2, s.NumRows())
}

func TestMergeRowsAssignRequiresSortedNoPending(t *testing.T) {
	a := New(2, linrow.Closed)
	require.NoError(t, a.InsertPending(mustRow(t, []int64{0, 1}, linrow.Closed, linrow.Ray)))
	b := New(2, linrow.Closed)

	err := a.MergeRowsAssign(b)
	assert.ErrorIs(t, err, ErrNotSorted)
}

func TestMergeRowsAssignUnion(t *testing.T) {
	a := New(2, linrow.Closed)
	require.NoError(t, a.Insert(mustRow(t, []int64{0, 1}, linrow.Closed, linrow.Ray)))
	require.NoError(t, a.Insert(mustRow(t, []int64{0, 3}, linrow.Closed, linrow.Ray)))

	b := New(2, linrow.Closed)
	require.NoError(t, b.Insert(mustRow(t, []int64{0, 2}, linrow.Closed, linrow.Ray)))
	require.NoError(t, b.Insert(mustRow(t, []int64{0, 3}, linrow.Closed, linrow.Ray)))

	require.NoError(t, a.MergeRowsAssign(b))
	assert.Equal(t, 3, a.NumRows())
	assert.True(t, a.Sorted())
}

func TestGaussFindsRankAndBackSubstituteEliminates(t *testing.T) {
	s := New(3, linrow.Closed)
	// Equalities: x = 0 (0,1,0), y = 0 (0,0,1)
	require.NoError(t, s.Insert(mustRow(t, []int64{0, 1, 0}, linrow.Closed, linrow.Equality)))
	require.NoError(t, s.Insert(mustRow(t, []int64{0, 0, 1}, linrow.Closed, linrow.Equality)))
	// Inequality: x + y >= -3  -> (3,1,1)
	require.NoError(t, s.Insert(mustRow(t, []int64{3, 1, 1}, linrow.Closed, linrow.Inequality)))

	rank := s.Gauss(2)
	assert.Equal(t, 2, rank)

	s.BackSubstitute(rank)
	ineq := s.Row(2)
	assert.True(t, ineq.Coeffs[1].IsZero())
	assert.True(t, ineq.Coeffs[2].IsZero())
}

func TestSimplifyDropsRedundantEqualities(t *testing.T) {
	s := New(3, linrow.Closed)
	require.NoError(t, s.Insert(mustRow(t, []int64{0, 1, 0}, linrow.Closed, linrow.Equality)))
	require.NoError(t, s.Insert(mustRow(t, []int64{0, 2, 0}, linrow.Closed, linrow.Equality))) // redundant: 2*row0
	require.NoError(t, s.Insert(mustRow(t, []int64{3, 0, 1}, linrow.Closed, linrow.Inequality)))

	rank := s.Simplify()
	assert.Equal(t, 1, rank)
	assert.Equal(t, 2, s.NumRows())
}

func TestSetTopologyGrowsAndShrinksWidth(t *testing.T) {
	s := New(2, linrow.Closed)
	require.NoError(t, s.Insert(mustRow(t, []int64{0, 1}, linrow.Closed, linrow.Inequality)))

	s.SetTopology(linrow.NotNecessarilyClosed)
	assert.Equal(t, 3, s.Width())
	assert.Equal(t, linrow.NotNecessarilyClosed, s.Row(0).Topology)

	s.SetTopology(linrow.Closed)
	assert.Equal(t, 2, s.Width())
}
