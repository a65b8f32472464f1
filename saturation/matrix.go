package saturation

import (
	"github.com/ddpoly/ppl/bitmatrix"
	"github.com/ddpoly/ppl/bitrow"
)

// Matrix is a saturation matrix: NumRows() generators by NumCols()
// constraints. Row i's bit j is set iff generator i does not saturate
// constraint j.
type Matrix struct {
	bm *bitmatrix.Matrix
}

// New returns an empty saturation matrix declared to have numCols columns.
func New(numCols uint) *Matrix {
	return &Matrix{bm: bitmatrix.NewMatrix(numCols)}
}

// NumRows returns the number of generator rows.
func (s *Matrix) NumRows() int { return s.bm.NumRows() }

// NumCols returns the number of constraint columns.
func (s *Matrix) NumCols() uint { return s.bm.Width() }

// AddRow appends a new generator's saturation row.
func (s *Matrix) AddRow(row bitrow.Row) { s.bm.AddRow(row) }

// RemoveRowAt deletes generator row i.
func (s *Matrix) RemoveRowAt(i int) error { return s.bm.RemoveRowAt(i) }

// Row returns a mutable reference to generator i's saturation row.
func (s *Matrix) Row(i int) *bitrow.Row { return s.bm.Row(i) }

// Set marks generator i as not saturating constraint j.
func (s *Matrix) Set(i int, j uint) { s.bm.Row(i).Insert(j) }

// Clear marks generator i as saturating constraint j.
func (s *Matrix) Clear(i int, j uint) { s.bm.Row(i).Delete(j) }

// DoesNotSaturate reports whether generator i does not saturate
// constraint j (the raw bit value).
func (s *Matrix) DoesNotSaturate(i int, j uint) bool { return s.bm.Row(i).Test(j) }

// Saturates reports whether generator i saturates constraint j.
func (s *Matrix) Saturates(i int, j uint) bool { return !s.DoesNotSaturate(i, j) }

// TruncateRows drops every generator row from index n onward.
func (s *Matrix) TruncateRows(n int) { s.bm.TruncateRows(n) }

// GrowColumns widens the matrix to newCols columns. Existing rows keep
// their bits; freshly addressable columns read as zero ("saturates" /
// "not yet tested"), which is exactly the initial state a conversion pass
// expects for constraint or generator columns it has not consumed yet.
// A no-op if newCols <= NumCols().
func (s *Matrix) GrowColumns(newCols uint) {
	if newCols <= s.NumCols() {
		return
	}
	s.bm.Resize(newCols)
}

// RemoveColumns physically drops the columns listed in cols (indices into
// the constraint dimension) from every row, renumbering the remaining
// columns to stay contiguous. cols need not be sorted.
func (s *Matrix) RemoveColumns(cols []uint) {
	if len(cols) == 0 {
		return
	}
	drop := make(map[uint]bool, len(cols))
	for _, c := range cols {
		drop[c] = true
	}
	newWidth := s.NumCols() - uint(len(cols))
	for i := 0; i < s.NumRows(); i++ {
		old := s.Row(i)
		var fresh bitrow.Row
		newIdx := uint(0)
		for j := uint(0); j < s.NumCols(); j++ {
			if drop[j] {
				continue
			}
			if old.Test(j) {
				fresh.Insert(newIdx)
			}
			newIdx++
		}
		*old = fresh
	}
	s.bm.Resize(newWidth)
}

// Transpose returns a new saturation matrix with generators and
// constraints swapped (columns become rows and vice versa).
func (s *Matrix) Transpose() *Matrix {
	return &Matrix{bm: s.bm.Transpose()}
}

// Clone returns an independent deep copy of s.
func (s *Matrix) Clone() *Matrix {
	return &Matrix{bm: s.bm.Clone()}
}
