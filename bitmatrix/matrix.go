package bitmatrix

import (
	"fmt"
	"sort"

	"github.com/ddpoly/ppl/bitrow"
)

// Matrix is a dynamic sequence of bitrow.Row sharing a declared column
// width. The zero value is an empty, zero-width matrix ready to use.
type Matrix struct {
	rows  []bitrow.Row
	width uint
}

// NewMatrix returns an empty matrix declared to have width columns.
func NewMatrix(width uint) *Matrix {
	return &Matrix{width: width}
}

// NumRows returns the number of rows currently stored.
func (m *Matrix) NumRows() int {
	return len(m.rows)
}

// Width returns the declared column width.
func (m *Matrix) Width() uint {
	return m.width
}

// Row returns a reference to row i. No bounds check is made: an i outside
// 0 <= i < NumRows() panics. It is exposed directly since bitmatrix
// rows are mutated in place by conversion/simplify hot loops.
func (m *Matrix) Row(i int) *bitrow.Row {
	return &m.rows[i]
}

// AddRow appends row to the matrix.
// Complexity: amortized O(1) (Go slice append).
func (m *Matrix) AddRow(row bitrow.Row) {
	m.rows = append(m.rows, row)
}

// RemoveRowAt deletes the row at index i, shifting subsequent rows down by
// one. Returns ErrOutOfRange if i is invalid.
// Complexity: O(NumRows() - i).
func (m *Matrix) RemoveRowAt(i int) error {
	if i < 0 || i >= len(m.rows) {
		return fmt.Errorf("bitmatrix.RemoveRowAt(%d): %w", i, ErrOutOfRange)
	}
	m.rows = append(m.rows[:i], m.rows[i+1:]...)
	return nil
}

// TruncateRows drops every row from index n onward, keeping [0, n). A
// no-op if n >= NumRows().
func (m *Matrix) TruncateRows(n int) {
	if n < len(m.rows) {
		m.rows = m.rows[:n]
	}
}

// Transpose returns a new matrix with rows and columns swapped: row count
// becomes the old width, and the new width becomes the old row count.
// Implemented by scanning each row's set bits.
func (m *Matrix) Transpose() *Matrix {
	out := NewMatrix(uint(len(m.rows)))
	out.rows = make([]bitrow.Row, m.width)
	for i := range m.rows {
		for j, ok := m.rows[i].FirstSet(); ok; j, ok = m.rows[i].NextSet(j) {
			if j >= m.width {
				break
			}
			out.rows[j].Insert(uint(i))
		}
	}
	return out
}

// SortAndDedup sorts the rows by bitrow.Row.Compare and removes adjacent
// duplicates in place.
func (m *Matrix) SortAndDedup() {
	sort.SliceStable(m.rows, func(a, b int) bool {
		return m.rows[a].Compare(m.rows[b]) < 0
	})
	out := m.rows[:0]
	for i, r := range m.rows {
		if i == 0 || !r.Equal(out[len(out)-1]) {
			out = append(out, r)
		}
	}
	m.rows = out
}

// Resize changes the declared width to newWidth. Existing rows keep their
// bits below newWidth; when shrinking, bits at indices >= newWidth are
// cleared, so columns that later become addressable again read as zero.
func (m *Matrix) Resize(newWidth uint) {
	if newWidth < m.width {
		for i := range m.rows {
			m.rows[i].ClearFrom(newWidth)
		}
	}
	m.width = newWidth
}

// SortedContains reports whether row is present, assuming the matrix is
// currently sorted by bitrow.Row.Compare (as SortAndDedup leaves it).
// Complexity: O(log NumRows() * cost-of-Compare).
func (m *Matrix) SortedContains(row bitrow.Row) bool {
	n := len(m.rows)
	idx := sort.Search(n, func(i int) bool {
		return m.rows[i].Compare(row) >= 0
	})
	return idx < n && m.rows[idx].Equal(row)
}

// ClearRowFrom clears bits at index >= from in row i.
func (m *Matrix) ClearRowFrom(i int, from uint) error {
	if i < 0 || i >= len(m.rows) {
		return fmt.Errorf("bitmatrix.ClearRowFrom(%d): %w", i, ErrOutOfRange)
	}
	m.rows[i].ClearFrom(from)
	return nil
}

// SetRowUntil sets bits in [0, until) in row i.
func (m *Matrix) SetRowUntil(i int, until uint) error {
	if i < 0 || i >= len(m.rows) {
		return fmt.Errorf("bitmatrix.SetRowUntil(%d): %w", i, ErrOutOfRange)
	}
	m.rows[i].SetUntil(until)
	return nil
}

// Clone returns an independent deep copy of m.
func (m *Matrix) Clone() *Matrix {
	out := NewMatrix(m.width)
	out.rows = make([]bitrow.Row, len(m.rows))
	for i, r := range m.rows {
		out.rows[i] = r.Clone()
	}
	return out
}
