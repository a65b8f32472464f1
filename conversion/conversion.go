package conversion

import (
	"fmt"

	"github.com/ddpoly/ppl/bitrow"
	"github.com/ddpoly/ppl/integer"
	"github.com/ddpoly/ppl/linrow"
	"github.com/ddpoly/ppl/linsys"
	"github.com/ddpoly/ppl/saturation"
	"github.com/ddpoly/ppl/watchdog"
)

// State bundles the three pieces of mutable state the conversion engine
// advances together: the source system being consumed, the destination
// system being maintained, and the saturation matrix relating them (rows
// indexed by Dst, columns indexed by Src).
type State struct {
	Src *linsys.System
	Dst *linsys.System
	Sat *saturation.Matrix

	// NumLinesOrEqualities is L: how many of Dst's leading rows currently
	// represent lines (when Dst holds generators) or equalities (when Dst
	// holds constraints).
	NumLinesOrEqualities int
}

// Convert incrementally consumes Src's rows from index start onward,
// updating Dst and Sat so that (Dst, Src) remains a double description of
// the refined polyhedron after each row. Rows of Src discovered to be
// redundant are physically erased, along with the matching Sat columns,
// once the whole range has been consumed.
//
// If abandon is non-nil and becomes set during the pass, Convert stops
// and returns the referenced error unchanged (never wrapped) — the
// abandon flag is polled before each scalar-product computation, once per
// outer (source-row) iteration, and after each Case B pair-generation step.
func Convert(st *State, start int, abandon *watchdog.AbandonToken) (int, error) {
	if st.Src.Width() != st.Dst.Width() {
		return st.NumLinesOrEqualities, fmt.Errorf("conversion.Convert: %w", ErrDimensionMismatch)
	}

	var redundantSrc []int

	for k := start; k < st.Src.NumRows(); k++ {
		if err := poll(abandon); err != nil {
			return st.NumLinesOrEqualities, err
		}

		srcRow := *st.Src.Row(k)
		sp := make([]integer.Coefficient, st.Dst.NumRows())
		for i := range sp {
			if err := poll(abandon); err != nil {
				return st.NumLinesOrEqualities, err
			}
			sp[i] = linrow.ScalarProduct(srcRow, *st.Dst.Row(i))
		}

		j := -1
		for i, v := range sp {
			if !v.IsZero() {
				j = i
				break
			}
		}

		if j >= 0 && j < st.NumLinesOrEqualities {
			st.caseA(j, sp, srcRow, k)
		} else {
			if redundant := st.caseB(sp, srcRow, k); redundant {
				redundantSrc = append(redundantSrc, k)
			}
			if err := poll(abandon); err != nil {
				return st.NumLinesOrEqualities, err
			}
		}
	}

	st.dropRedundantSrc(redundantSrc)
	return st.NumLinesOrEqualities, nil
}

func poll(abandon *watchdog.AbandonToken) error {
	if abandon == nil {
		return nil
	}
	return abandon.Poll()
}

// demote turns a line into a ray, or an equality into an inequality; any
// other kind passes through unchanged.
func demote(k linrow.Kind) linrow.Kind {
	switch k {
	case linrow.Line:
		return linrow.Ray
	case linrow.Equality:
		return linrow.Inequality
	default:
		return k
	}
}

// combineRows eliminates the scalar product of x with the row currently
// being processed, using pivot's scalar product, by the same
// normalize2-then-subtract idiom linrow.Row.LinearCombine uses for a
// fixed column — here the quantity driven to zero is an externally
// supplied scalar product rather than a coefficient at a known index.
func combineRows(x, pivot linrow.Row, spX, spPivot integer.Coefficient) linrow.Row {
	a, b := integer.Normalize2Pair(spX, spPivot)
	n := x.Width()
	out := linrow.Row{Coeffs: make([]integer.Coefficient, n), Topology: x.Topology, Kind: x.Kind}
	for i := 0; i < n; i++ {
		out.Coeffs[i] = b.Mul(x.Coeffs[i]).Sub(a.Mul(pivot.Coeffs[i]))
	}
	return out.StrongNormalize()
}

// caseA handles a destination line/equality (index j < L) that does not
// saturate srcRow: it is demoted to a ray/inequality, moved to the
// boundary of the line/equality prefix, and used to cancel the scalar
// product of every other line and ray so the pair remains a double
// description.
func (st *State) caseA(j int, sp []integer.Coefficient, srcRow linrow.Row, k int) {
	dstJ := st.Dst.Row(j)
	if sp[j].Sign() < 0 {
		*dstJ = dstJ.Negate()
		sp[j] = sp[j].Neg()
	}
	dstJ.Kind = demote(dstJ.Kind)

	oldL := st.NumLinesOrEqualities
	newL := oldL - 1
	st.swapDst(j, newL, sp)
	st.NumLinesOrEqualities = newL

	pivot := *st.Dst.Row(newL)
	pivotSp := sp[newL]

	for idx := j; idx < newL; idx++ {
		st.eliminateAgainst(idx, newL, pivot, pivotSp, sp)
	}
	for idx := newL + 1; idx < st.Dst.NumRows(); idx++ {
		st.eliminateAgainst(idx, newL, pivot, pivotSp, sp)
	}

	// srcRow.Kind.IsLineOrEquality() generalizes the "src_k is an
	// equality" test to whichever system Src happens to be: a line when
	// Src holds generators, an equality when Src holds constraints.
	if srcRow.Kind.IsLineOrEquality() {
		st.Dst.RemoveRowAt(newL)
		st.Sat.RemoveRowAt(newL)
	} else {
		st.Sat.Set(newL, uint(k))
	}
}

// eliminateAgainst cancels row idx's scalar product using the pivot row,
// unless it is already zero, and folds the pivot's saturation row into
// idx's (the combined generator fails to saturate anything either parent
// failed to saturate).
func (st *State) eliminateAgainst(idx, pivotIdx int, pivot linrow.Row, pivotSp integer.Coefficient, sp []integer.Coefficient) {
	if sp[idx].IsZero() {
		return
	}
	existing := *st.Dst.Row(idx)
	*st.Dst.Row(idx) = combineRows(existing, pivot, sp[idx], pivotSp)

	row := st.Sat.Row(idx)
	*row = row.Union(*st.Sat.Row(pivotIdx))
	sp[idx] = integer.Coefficient{}
}

// swapDst exchanges Dst rows i and j together with their Sat rows and sp
// entries, keeping the three parallel sequences in lockstep.
func (st *State) swapDst(i, j int, sp []integer.Coefficient) {
	if i == j {
		return
	}
	ri, rj := st.Dst.Row(i), st.Dst.Row(j)
	*ri, *rj = *rj, *ri
	si, sj := st.Sat.Row(i), st.Sat.Row(j)
	*si, *sj = *sj, *si
	sp[i], sp[j] = sp[j], sp[i]
}

// reorderRays rewrites Dst/Sat/sp rows [lo, lo+len(order)) in the given
// permutation of their own indices (each a value in [lo, lo+len(order))),
// via a temporary copy so the in-place rewrite cannot clobber a row
// before it has been read.
func (st *State) reorderRays(lo int, order []int, sp []integer.Coefficient) {
	rows := make([]linrow.Row, len(order))
	sats := make([]bitrow.Row, len(order))
	sps := make([]integer.Coefficient, len(order))
	for i, idx := range order {
		rows[i] = *st.Dst.Row(idx)
		sats[i] = *st.Sat.Row(idx)
		sps[i] = sp[idx]
	}
	for i := range order {
		*st.Dst.Row(lo + i) = rows[i]
		*st.Sat.Row(lo + i) = sats[i]
		sp[lo+i] = sps[i]
	}
}

// adjacent reports whether no row in [lo, hi), other than the indices in
// exclude, has a saturation row that is a subset of union — the
// adjacency necessary condition for combining two rays.
func (st *State) adjacent(union bitrow.Row, exclude map[int]bool, lo, hi int) bool {
	for i := lo; i < hi; i++ {
		if exclude[i] {
			continue
		}
		if st.Sat.Row(i).Subset(union) {
			return false
		}
	}
	return true
}

// caseB handles the case where every current line/equality already
// saturates srcRow: the rays are partitioned into Q= (saturating), Q+
// (positive scalar product) and Q- (negative), new rays are generated for
// adjacent (Q+, Q-) pairs passing the minimal-face necessary condition,
// and the superseded rays are discarded. Returns true if srcRow turned
// out to be redundant and should be dropped from Src once the whole pass
// completes.
func (st *State) caseB(sp []integer.Coefficient, srcRow linrow.Row, k int) bool {
	lo := st.NumLinesOrEqualities
	hi := st.Dst.NumRows()

	var q0, qplus, qminus []int
	for i := lo; i < hi; i++ {
		switch sp[i].Sign() {
		case 0:
			q0 = append(q0, i)
		case 1:
			qplus = append(qplus, i)
		default:
			qminus = append(qminus, i)
		}
	}

	order := make([]int, 0, hi-lo)
	order = append(order, q0...)
	order = append(order, qplus...)
	order = append(order, qminus...)
	st.reorderRays(lo, order, sp)

	qPlusStart := lo + len(q0)
	qMinusStart := qPlusStart + len(qplus)

	if len(qminus) == 0 {
		if !srcRow.Kind.IsLineOrEquality() {
			return true
		}
		st.Dst.TruncateTo(qPlusStart)
		st.Sat.TruncateRows(qPlusStart)
		return false
	}

	// d is the dimension including epsilon: the row's homogeneous
	// coefficient count, i.e. width minus the leading
	// inhomogeneous-term/divisor column.
	d := srcRow.Width() - 1
	L := st.NumLinesOrEqualities

	type generatedRay struct {
		row linrow.Row
		sat bitrow.Row
	}
	var generated []generatedRay

	for pp := qPlusStart; pp < qMinusStart; pp++ {
		for mm := qMinusStart; mm < hi; mm++ {
			union := st.Sat.Row(pp).Union(*st.Sat.Row(mm))
			popcount := int(union.PopCount())
			if iabs(k-popcount) < d-L-1 {
				continue
			}
			exclude := map[int]bool{pp: true, mm: true}
			if !st.adjacent(union, exclude, lo, hi) {
				continue
			}

			rp, rm := *st.Dst.Row(pp), *st.Dst.Row(mm)
			// a, b := normalize2(sp[r+], sp[r-]); the combination a*r- - b*r+
			// cancels the scalar product (a*sp[r-] - b*sp[r+] == 0 since both
			// reduce to sp[r+]*sp[r-]/g) and, because b == sp[r-]/g is
			// negative, is the positive combination a*r- + (-b)*r+ required
			// to stay within the cone spanned by the two parents.
			a, b := integer.Normalize2Pair(sp[pp], sp[mm])
			coeffs := make([]integer.Coefficient, rp.Width())
			for i := range coeffs {
				coeffs[i] = a.Mul(rm.Coeffs[i]).Sub(b.Mul(rp.Coeffs[i]))
			}
			generated = append(generated, generatedRay{row: st.newGeneratedRow(coeffs, rp), sat: union})
		}
	}

	if !srcRow.Kind.IsLineOrEquality() {
		for pp := qPlusStart; pp < qMinusStart; pp++ {
			st.Sat.Set(pp, uint(k))
		}
	}

	dropFrom := qMinusStart
	if srcRow.Kind.IsLineOrEquality() {
		dropFrom = qPlusStart
	}
	st.Dst.TruncateTo(dropFrom)
	st.Sat.TruncateRows(dropFrom)

	for _, g := range generated {
		st.Dst.InsertPending(g.row)
		st.Sat.AddRow(g.sat)
	}
	return false
}

// newGeneratedRow builds the row resulting from combining two Q+/Q- rows,
// re-deriving its Kind from the combination's inhomogeneous term rather
// than inheriting either parent's: on the generator side a zero divisor
// makes it a Ray, a zero epsilon slack (NNC topology) makes it a
// ClosurePoint, otherwise a Point; on the constraint side (no divisor
// convention) it is always an Inequality. template supplies the parent
// Kind that decides which family applies.
func (st *State) newGeneratedRow(coeffs []integer.Coefficient, template linrow.Row) linrow.Row {
	kind := template.Kind
	switch template.Kind {
	case linrow.Ray, linrow.Point, linrow.ClosurePoint:
		switch {
		case coeffs[0].IsZero():
			kind = linrow.Ray
		case template.Topology == linrow.NotNecessarilyClosed && coeffs[len(coeffs)-1].IsZero():
			kind = linrow.ClosurePoint
		default:
			kind = linrow.Point
		}
	default:
		kind = linrow.Inequality
	}

	row, err := linrow.NewRow(coeffs, template.Topology, kind)
	if err != nil {
		// Unreachable: kind was chosen from coeffs[0]'s own zero-ness, so
		// NewRow's positive-divisor check for Point/ClosurePoint can never
		// fail here.
		panic(fmt.Sprintf("conversion: newGeneratedRow: %v", err))
	}
	return row.StrongNormalize()
}

func iabs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// dropRedundantSrc physically erases the given Src row indices (assumed
// in increasing order, as appended by Convert's loop) and the matching
// Sat columns, highest index first so earlier indices stay valid.
func (st *State) dropRedundantSrc(indices []int) {
	if len(indices) == 0 {
		return
	}
	cols := make([]uint, len(indices))
	for i, idx := range indices {
		cols[i] = uint(idx)
	}
	st.Sat.RemoveColumns(cols)
	for i := len(indices) - 1; i >= 0; i-- {
		st.Src.RemoveRowAt(indices[i])
	}
}
