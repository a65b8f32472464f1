package linsys

import (
	"fmt"
	"sort"

	"github.com/ddpoly/ppl/integer"
	"github.com/ddpoly/ppl/linrow"
)

// System is an ordered sequence of linrow.Row values, all sharing a width
// and topology, split into a settled prefix [0, FirstPending) and a
// pending suffix [FirstPending, len) by the first-pending index.
type System struct {
	rows         []linrow.Row
	width        int
	topology     linrow.Topology
	firstPending int
	sorted       bool
}

// New returns an empty system of the given width and topology.
func New(width int, top linrow.Topology) *System {
	return &System{width: width, topology: top, sorted: true}
}

// NumRows returns the total number of rows, settled and pending.
func (s *System) NumRows() int { return len(s.rows) }

// Width returns the declared row width.
func (s *System) Width() int { return s.width }

// Topology returns the declared topology.
func (s *System) Topology() linrow.Topology { return s.topology }

// FirstPending returns the first-pending index: rows before it are
// settled, rows from it onward are pending.
func (s *System) FirstPending() int { return s.firstPending }

// HasPending reports whether any pending rows remain.
func (s *System) HasPending() bool { return s.firstPending < len(s.rows) }

// Sorted reports whether the settled prefix is currently known sorted.
func (s *System) Sorted() bool { return s.sorted }

// Row returns a reference to row i (settled or pending).
func (s *System) Row(i int) *linrow.Row { return &s.rows[i] }

// Rows returns the full underlying row slice. Callers must not retain it
// across further mutation of s.
func (s *System) Rows() []linrow.Row { return s.rows }

func (s *System) adjustWidth(r *linrow.Row) {
	if r.Width() > s.width {
		s.width = r.Width()
	}
	if r.Width() < s.width {
		r.SetWidth(s.width)
	}
}

// Insert appends row directly into the settled prefix (no pending row is
// created): the system's width grows to accommodate row if needed,
// migrating the epsilon slack column for NNC systems, and the sorted flag
// is preserved only if row continues the existing order at the tail.
func (s *System) Insert(row linrow.Row) error {
	if row.Topology != s.topology {
		return fmt.Errorf("linsys.Insert: %w", ErrTopologyMismatch)
	}
	row = row.Clone()
	s.adjustWidth(&row)

	keepsOrder := s.sorted && (len(s.rows) == 0 || s.rows[len(s.rows)-1].Compare(row) <= 0)
	s.rows = append(s.rows, row)
	s.firstPending = len(s.rows)
	s.sorted = keepsOrder
	return nil
}

// InsertPending appends row to the pending suffix; the settled prefix and
// its sorted flag are unaffected.
func (s *System) InsertPending(row linrow.Row) error {
	if row.Topology != s.topology {
		return fmt.Errorf("linsys.InsertPending: %w", ErrTopologyMismatch)
	}
	row = row.Clone()
	s.adjustWidth(&row)
	s.rows = append(s.rows, row)
	return nil
}

// MergeRowsAssign merges other into s: both must already be sorted with no
// pending rows; the result is the sorted union with duplicates removed, in
// a single linear pass.
func (s *System) MergeRowsAssign(other *System) error {
	if !s.sorted || s.HasPending() {
		return fmt.Errorf("linsys.MergeRowsAssign: %w", ErrNotSorted)
	}
	if !other.sorted || other.HasPending() {
		return fmt.Errorf("linsys.MergeRowsAssign: %w", ErrNotSorted)
	}

	merged := make([]linrow.Row, 0, len(s.rows)+len(other.rows))
	i, j := 0, 0
	for i < len(s.rows) && j < len(other.rows) {
		c := s.rows[i].Compare(other.rows[j])
		switch {
		case c < 0:
			merged = append(merged, s.rows[i])
			i++
		case c > 0:
			merged = append(merged, other.rows[j])
			j++
		default:
			merged = append(merged, s.rows[i])
			i++
			j++
		}
	}
	merged = append(merged, s.rows[i:]...)
	merged = append(merged, other.rows[j:]...)

	s.rows = merged
	s.firstPending = len(s.rows)
	s.sorted = true
	return nil
}

// SortRows sorts the settled prefix [0, FirstPending) by linrow.Row.Compare
// and sets the sorted flag.
func (s *System) SortRows() {
	prefix := s.rows[:s.firstPending]
	sort.SliceStable(prefix, func(a, b int) bool {
		return prefix[a].Compare(prefix[b]) < 0
	})
	s.sorted = true
}

// SortPendingAndRemoveDuplicates sorts the pending suffix
// [FirstPending, len) and drops adjacent duplicates within it.
func (s *System) SortPendingAndRemoveDuplicates() {
	suffix := s.rows[s.firstPending:]
	sort.SliceStable(suffix, func(a, b int) bool {
		return suffix[a].Compare(suffix[b]) < 0
	})
	out := suffix[:0]
	for i, r := range suffix {
		if i == 0 || r.Compare(out[len(out)-1]) != 0 {
			out = append(out, r)
		}
	}
	s.rows = append(s.rows[:s.firstPending], out...)
}

// Gauss treats the first k rows as equalities/lines and reduces them to a
// triangular basis, searching pivot columns from right (width-1) to left
// (column 1 — column 0 is the inhomogeneous term/divisor and is never a
// pivot). Returns the rank. Pivot swaps invalidate the sorted flag.
func (s *System) Gauss(k int) int {
	pivotRow := 0
	for col := s.width - 1; col >= 1 && pivotRow < k; col-- {
		found := -1
		for r := pivotRow; r < k; r++ {
			if !s.rows[r].Coeffs[col].IsZero() {
				found = r
				break
			}
		}
		if found < 0 {
			continue
		}
		if found != pivotRow {
			s.rows[found], s.rows[pivotRow] = s.rows[pivotRow], s.rows[found]
			s.sorted = false
		}
		pivot := s.rows[pivotRow]
		for r := pivotRow + 1; r < k; r++ {
			if s.rows[r].Coeffs[col].IsZero() {
				continue
			}
			combined, err := s.rows[r].LinearCombine(pivot, col)
			if err != nil {
				continue
			}
			s.rows[r] = combined
		}
		pivotRow++
	}
	return pivotRow
}

// BackSubstitute uses each of the first k rows (assumed equalities) to
// eliminate its pivot column — the rightmost non-zero homogeneous column —
// from every other row, inequalities included. If a pivot coefficient is
// negative, the equality is negated for the duration of the elimination so
// the row it combines with is always scaled by a positive factor,
// preserving that row's inequality direction.
func (s *System) BackSubstitute(k int) {
	for i := 0; i < k && i < len(s.rows); i++ {
		col := -1
		for c := s.width - 1; c >= 1; c-- {
			if !s.rows[i].Coeffs[c].IsZero() {
				col = c
				break
			}
		}
		if col < 0 {
			continue
		}
		eq := s.rows[i]
		if eq.Coeffs[col].Sign() < 0 {
			eq = eq.Negate()
		}
		for j := 0; j < len(s.rows); j++ {
			if j == i || s.rows[j].Coeffs[col].IsZero() {
				continue
			}
			combined, err := s.rows[j].LinearCombine(eq, col)
			if err != nil {
				continue
			}
			s.rows[j] = combined
		}
	}
	s.sorted = false
}

// Simplify implements a self-contained simplification pass, distinct
// from the saturation-aware simplification engine in package simplify:
// it stably partitions lines/equalities to the top, Gauss-eliminates them
// to find the rank r, drops the redundant (rank..kOld) equalities, and
// back-substitutes the survivors into every remaining row. Returns the new
// equality/line count r.
func (s *System) Simplify() int {
	stablePartitionEqualitiesFirst(s.rows)
	kOld := 0
	for kOld < len(s.rows) && s.rows[kOld].Kind.IsLineOrEquality() {
		kOld++
	}

	rank := s.Gauss(kOld)
	if rank < kOld {
		s.rows = append(s.rows[:rank], s.rows[kOld:]...)
	}
	s.BackSubstitute(rank)

	s.firstPending = len(s.rows)
	s.sorted = false
	return rank
}

func stablePartitionEqualitiesFirst(rows []linrow.Row) {
	out := make([]linrow.Row, 0, len(rows))
	for _, r := range rows {
		if r.Kind.IsLineOrEquality() {
			out = append(out, r)
		}
	}
	for _, r := range rows {
		if !r.Kind.IsLineOrEquality() {
			out = append(out, r)
		}
	}
	copy(rows, out)
}

// SetTopology changes the system's (and every row's) topology. Going from
// Closed to NotNecessarilyClosed appends a zero epsilon column to every
// row and grows the width by one; the reverse drops the last column.
func (s *System) SetTopology(top linrow.Topology) {
	if top == s.topology {
		return
	}
	switch top {
	case linrow.NotNecessarilyClosed:
		// Append a fresh zero epsilon column; the existing coefficients
		// are homogeneous data, not an epsilon slack yet, so a plain
		// append is used here rather than linrow.Row.SetWidth (which
		// assumes the last column already IS the epsilon slack).
		for i := range s.rows {
			s.rows[i].Coeffs = append(s.rows[i].Coeffs, integer.Coefficient{})
			s.rows[i].Topology = top
		}
		s.width++
	case linrow.Closed:
		s.width--
		for i := range s.rows {
			s.rows[i].Topology = top
			if len(s.rows[i].Coeffs) > s.width {
				s.rows[i].Coeffs = s.rows[i].Coeffs[:s.width]
			}
		}
	}
	s.topology = top
}

// RemoveRowAt deletes row i, shifting subsequent rows down by one and
// adjusting the first-pending index if the removed row was settled.
func (s *System) RemoveRowAt(i int) {
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	if i < s.firstPending {
		s.firstPending--
	}
}

// TruncateTo drops every row from index n onward, keeping [0, n). A no-op
// if n >= NumRows(). Used by the conversion engine to discard a
// contiguous tail of superseded rays in one step.
func (s *System) TruncateTo(n int) {
	if n < len(s.rows) {
		s.rows = s.rows[:n]
	}
	if s.firstPending > n {
		s.firstPending = n
	}
}

// Clone returns an independent deep copy of s.
func (s *System) Clone() *System {
	out := &System{width: s.width, topology: s.topology, firstPending: s.firstPending, sorted: s.sorted}
	out.rows = make([]linrow.Row, len(s.rows))
	for i, r := range s.rows {
		out.rows[i] = r.Clone()
	}
	return out
}
