package simplify

import (
	"fmt"

	"github.com/ddpoly/ppl/linrow"
	"github.com/ddpoly/ppl/linsys"
	"github.com/ddpoly/ppl/saturation"
)

// promote turns a ray into a line, or an inequality into an equality;
// any other kind passes through unchanged.
func promote(k linrow.Kind) linrow.Kind {
	switch k {
	case linrow.Ray:
		return linrow.Line
	case linrow.Inequality:
		return linrow.Equality
	default:
		return k
	}
}

// swapRow exchanges rows i and j in sys and their matching rows in sat,
// keeping the two parallel sequences in lockstep.
func swapRow(sys *linsys.System, sat *saturation.Matrix, i, j int) {
	if i == j {
		return
	}
	ri, rj := sys.Row(i), sys.Row(j)
	*ri, *rj = *rj, *ri
	si, sj := sat.Row(i), sat.Row(j)
	*si, *sj = *sj, *si
}

// removeAt deletes row i from sys and sat together.
func removeAt(sys *linsys.System, sat *saturation.Matrix, i int) {
	sys.RemoveRowAt(i)
	sat.RemoveRowAt(i)
}

// removeIndices deletes the given row indices from sys and sat, highest
// index first so earlier indices stay valid. indices need not be sorted.
func removeIndices(sys *linsys.System, sat *saturation.Matrix, indices []int) {
	if len(indices) == 0 {
		return
	}
	sorted := append([]int(nil), indices...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] < sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	for _, idx := range sorted {
		removeAt(sys, sat, idx)
	}
}

// Simplify reduces sys to an irredundant form consistent with sat (rows
// indexed by sys, columns by the opposite system's rows) via the six
// steps: promote fully-saturated rows to lines/equalities, Gauss-reduce
// the equality prefix, drop inequalities that fail the minimal-face
// saturation count, drop inequalities dominated by another on the same
// saturation set, and back-substitute. sys must have no pending rows.
// Returns the new line/equality count (the Gauss-reduced rank).
func Simplify(sys *linsys.System, sat *saturation.Matrix) (int, error) {
	n := sys.NumRows()
	if sat.NumRows() != n {
		return 0, fmt.Errorf("simplify.Simplify: %w", ErrDimensionMismatch)
	}
	if n == 0 {
		return 0, nil
	}

	// Step 1: a row saturated by every dual generator (all-zero SAT row)
	// can be strengthened to a line/equality; promote, sign-normalize,
	// and swap it into the prefix.
	eqEnd := 0
	for i := 0; i < n; i++ {
		row := sys.Row(i)
		allSaturated := sat.Row(i).PopCount() == 0
		if !row.Kind.IsLineOrEquality() && !allSaturated {
			continue
		}
		if allSaturated && !row.Kind.IsLineOrEquality() {
			row.Kind = promote(row.Kind)
		}
		*row = row.StrongNormalize()
		swapRow(sys, sat, i, eqEnd)
		eqEnd++
	}

	// Step 2 (n_sat[i] = total_duals - popcount(SAT[i])) is computed on
	// demand below rather than stored: Gauss/BackSubstitute only
	// recombine equality rows, whose SAT rows are all-zero by
	// definition, so an inequality's scalar product against every dual
	// is unaffected and its SAT row — and hence n_sat — never changes.

	// Step 3: Gauss-eliminate the equality prefix; drop the rows beyond
	// the resulting rank (they reduce to the trivial 0=0 equality).
	rank := sys.Gauss(eqEnd)
	if rank < eqEnd {
		toDrop := make([]int, 0, eqEnd-rank)
		for i := rank; i < eqEnd; i++ {
			toDrop = append(toDrop, i)
		}
		removeIndices(sys, sat, toDrop)
		eqEnd = rank
	}

	// Step 4: saturation rule. An inequality whose n_sat falls below the
	// minimal-face bound cannot be irredundant in any double-description
	// pair.
	totalDuals := sat.NumCols()
	var toDrop []int
	for i := eqEnd; i < sys.NumRows(); i++ {
		nSat := int(totalDuals) - int(sat.Row(i).PopCount())
		d := sys.Row(i).Width() - 1
		if nSat < d-rank-1 {
			toDrop = append(toDrop, i)
		}
	}
	removeIndices(sys, sat, toDrop)

	// Step 5: independence rule. Among remaining inequalities, one whose
	// SAT row is a strict subset of another's is implied by it and is
	// dropped; equal SAT rows name equivalent constraints and only one
	// survives (the lower index, by convention).
	inqStart, inqEnd := eqEnd, sys.NumRows()
	drop := make(map[int]bool, inqEnd-inqStart)
	for i := inqStart; i < inqEnd; i++ {
		if drop[i] {
			continue
		}
		si := *sat.Row(i)
		for j := inqStart; j < inqEnd; j++ {
			if i == j || drop[j] {
				continue
			}
			sj := *sat.Row(j)
			switch {
			case si.StrictSubset(sj):
				drop[i] = true
			case si.Equal(sj) && i < j:
				drop[j] = true
			}
		}
	}
	if len(drop) > 0 {
		indices := make([]int, 0, len(drop))
		for i := range drop {
			indices = append(indices, i)
		}
		removeIndices(sys, sat, indices)
	}

	// Step 6: back-substitute the surviving equalities into every
	// remaining inequality.
	sys.BackSubstitute(eqEnd)
	sys.SortRows()

	return eqEnd, nil
}
