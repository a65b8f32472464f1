package polyhedron

import (
	"github.com/ddpoly/ppl/integer"
	"github.com/ddpoly/ppl/linrow"
	"github.com/ddpoly/ppl/linsys"
)

// rowWidth returns the row width for a d-dimensional space under top: d+1
// homogeneous columns, plus one more for the epsilon slack under
// NotNecessarilyClosed.
func rowWidth(dim int, top linrow.Topology) int {
	if top == linrow.NotNecessarilyClosed {
		return dim + 2
	}
	return dim + 1
}

// universeGenerators returns the minimal generator system of the universe
// at the given dimension: one unit line per axis, plus a point at the
// origin — exactly the seed conversion.Convert expects as Dst when
// folding a constraint system into generators from scratch.
func universeGenerators(dim int, top linrow.Topology) *linsys.System {
	w := rowWidth(dim, top)
	sys := linsys.New(w, top)
	for axis := 0; axis < dim; axis++ {
		coeffs := make([]integer.Coefficient, w)
		coeffs[axis+1] = integer.FromInt64(1)
		row, err := linrow.NewRow(coeffs, top, linrow.Line)
		if err != nil {
			panic("polyhedron: universeGenerators: " + err.Error())
		}
		_ = sys.Insert(row)
	}
	origin := make([]integer.Coefficient, w)
	origin[0] = integer.FromInt64(1)
	if top == linrow.NotNecessarilyClosed {
		origin[w-1] = integer.FromInt64(1)
	}
	point, err := linrow.NewRow(origin, top, linrow.Point)
	if err != nil {
		panic("polyhedron: universeGenerators: " + err.Error())
	}
	_ = sys.Insert(point)
	return sys
}

// universeConstraintSeed returns the Dst seed conversion.Convert expects
// when folding a generator system into constraints from scratch: one unit
// equality x_i = 0 per axis (pinning the origin down exactly), followed by
// the homogeneous-cone tautology "1 >= 0" — the dual of universeGenerators'
// "one unit line per axis, plus the origin point" (every direction free,
// plus a point), with equality and line, inequality and point, swapped.
// NumLinesOrEqualities starts at dim: each equality is demoted to an
// inequality by caseA, or dropped outright when the violating generator is
// itself a line, as soon as a real generator shows that axis is not, in
// fact, pinned to zero. Without these equalities, every generator trivially
// saturates or satisfies the lone tautology row (it has no linear part to
// disagree with), Case B's Q+/Q- split never fires, and Dst never grows
// past the tautology — this is why the seed must mirror
// universeGenerators' structure rather than being a single row.
func universeConstraintSeed(dim int, top linrow.Topology) *linsys.System {
	w := rowWidth(dim, top)
	sys := linsys.New(w, top)
	for axis := 0; axis < dim; axis++ {
		coeffs := make([]integer.Coefficient, w)
		coeffs[axis+1] = integer.FromInt64(1)
		row, err := linrow.NewRow(coeffs, top, linrow.Equality)
		if err != nil {
			panic("polyhedron: universeConstraintSeed: " + err.Error())
		}
		_ = sys.Insert(row)
	}
	tautology := make([]integer.Coefficient, w)
	tautology[0] = integer.FromInt64(1)
	row, err := linrow.NewRow(tautology, top, linrow.Inequality)
	if err != nil {
		panic("polyhedron: universeConstraintSeed: " + err.Error())
	}
	_ = sys.Insert(row)
	return sys
}

// countLinesOrEqualities returns the length of sys's leading
// line-or-equality run, the L the conversion engine needs for its Dst
// argument.
func countLinesOrEqualities(sys *linsys.System) int {
	n := 0
	for i := 0; i < sys.NumRows(); i++ {
		if !sys.Row(i).Kind.IsLineOrEquality() {
			break
		}
		n++
	}
	return n
}
