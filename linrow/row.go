package linrow

import (
	"fmt"

	"github.com/ddpoly/ppl/integer"
)

// Topology selects whether a row belongs to a closed or
// not-necessarily-closed (NNC) system.
type Topology int

const (
	// Closed means the row carries no epsilon slack.
	Closed Topology = iota
	// NotNecessarilyClosed means the row's last coefficient is the
	// epsilon slack.
	NotNecessarilyClosed
)

// Kind selects the semantic role of a row.
type Kind int

const (
	// Line is a generator direction present with both signs.
	Line Kind = iota
	// Ray is a generator direction present with one sign only.
	Ray
	// Point is a generator with a strictly positive divisor.
	Point
	// ClosurePoint is an NNC generator with a zero epsilon slack.
	ClosurePoint
	// Equality is a constraint satisfied with equality.
	Equality
	// Inequality is a non-strict or strict constraint (topology decides
	// which, together with the epsilon slack's sign for NNC rows).
	Inequality
)

// IsLineOrEquality reports whether k represents a line (as a generator) or
// an equality (as a constraint) — the two kinds that saturate every
// matching dual.
func (k Kind) IsLineOrEquality() bool {
	return k == Line || k == Equality
}

// Row is a homogeneous vector of exact integers with a topology/kind flag
// pair.
type Row struct {
	Coeffs   []integer.Coefficient
	Topology Topology
	Kind     Kind
}

// Width returns len(Coeffs).
func (r Row) Width() int { return len(r.Coeffs) }

// SpaceDimension returns the effective vector-space dimension: Width()-1
// for closed rows, Width()-2 for NNC rows (the epsilon slack column does
// not count as a space dimension).
func (r Row) SpaceDimension() int {
	if r.Topology == NotNecessarilyClosed {
		return r.Width() - 2
	}
	return r.Width() - 1
}

// epsilonIndex returns the index of the epsilon slack column; only valid
// when Topology == NotNecessarilyClosed.
func (r Row) epsilonIndex() int { return r.Width() - 1 }

// Epsilon returns the epsilon slack coefficient of an NNC row, or the zero
// coefficient for a closed row.
func (r Row) Epsilon() integer.Coefficient {
	if r.Topology != NotNecessarilyClosed {
		return integer.Coefficient{}
	}
	return r.Coeffs[r.epsilonIndex()]
}

// Inhomogeneous returns Coeffs[0], the inhomogeneous term (constraints) or
// divisor (generators).
func (r Row) Inhomogeneous() integer.Coefficient { return r.Coeffs[0] }

// NewRow builds a Row from raw coefficients and enforces the
// kind/topology-specific invariants: positive divisor for
// points/closure points (negating the whole row if needed), a zero
// epsilon slack for NNC closure points, and a zero inhomogeneous term for
// lines/rays. Other epsilon-slack values are kept as given.
func NewRow(coeffs []integer.Coefficient, top Topology, kind Kind) (Row, error) {
	if top == NotNecessarilyClosed && len(coeffs) < 2 {
		return Row{}, ErrWidthTooSmall
	}
	out := Row{Coeffs: append([]integer.Coefficient(nil), coeffs...), Topology: top, Kind: kind}

	switch kind {
	case Line, Ray:
		out.Coeffs[0] = integer.Coefficient{}
	case Point, ClosurePoint:
		if out.Inhomogeneous().IsZero() {
			return Row{}, fmt.Errorf("linrow.NewRow: %w", ErrZeroDivisor)
		}
		if out.Inhomogeneous().Sign() < 0 {
			out = out.negated()
		}
	}

	if top == NotNecessarilyClosed {
		switch kind {
		case ClosurePoint:
			out.Coeffs[out.epsilonIndex()] = integer.Coefficient{}
		}
	}
	return out, nil
}

// negated returns a copy of r with every coefficient negated.
func (r Row) negated() Row {
	out := Row{Coeffs: make([]integer.Coefficient, len(r.Coeffs)), Topology: r.Topology, Kind: r.Kind}
	for i, c := range r.Coeffs {
		out.Coeffs[i] = c.Neg()
	}
	return out
}

// Negate returns a copy of r with every coefficient negated, without
// re-running constructor invariants — used internally by the conversion
// engine where the caller is responsible for the resulting row's validity.
func (r Row) Negate() Row { return r.negated() }

// Clone returns an independent deep copy of r.
func (r Row) Clone() Row {
	out := Row{Coeffs: make([]integer.Coefficient, len(r.Coeffs)), Topology: r.Topology, Kind: r.Kind}
	copy(out.Coeffs, r.Coeffs)
	return out
}

// SetWidth grows r to width w, appending zero coefficients. If Topology is
// NotNecessarilyClosed, the epsilon slack column is kept as the last
// coefficient by shifting it to the new last position (so the homogeneous
// columns being added land before it).
func (r *Row) SetWidth(w int) {
	if w <= len(r.Coeffs) {
		return
	}
	if r.Topology != NotNecessarilyClosed {
		for len(r.Coeffs) < w {
			r.Coeffs = append(r.Coeffs, integer.Coefficient{})
		}
		return
	}
	eps := r.Coeffs[len(r.Coeffs)-1]
	r.Coeffs = r.Coeffs[:len(r.Coeffs)-1]
	for len(r.Coeffs) < w-1 {
		r.Coeffs = append(r.Coeffs, integer.Coefficient{})
	}
	r.Coeffs = append(r.Coeffs, eps)
}

// StrongNormalize divides r by the gcd of its coefficients, then — for a
// line or equality — negates the whole row if the first non-zero
// homogeneous coefficient is negative.
func (r Row) StrongNormalize() Row {
	out := r.Clone()

	g := integer.Coefficient{}
	for _, c := range out.Coeffs {
		g = g.GCD(c)
	}
	if !g.IsZero() && g.Cmp(integer.FromInt64(1)) != integer.Equal {
		for i, c := range out.Coeffs {
			q, err := c.Div(g)
			if err != nil {
				panic(fmt.Sprintf("linrow.StrongNormalize: gcd invariant violated: %v", err))
			}
			out.Coeffs[i] = q
		}
	}

	if out.Kind.IsLineOrEquality() {
		for i := 1; i < out.Width(); i++ {
			if out.Coeffs[i].IsZero() {
				continue
			}
			if out.Coeffs[i].Sign() < 0 {
				out = out.negated()
			}
			break
		}
	}
	return out
}

// classRank returns 0 for lines/equalities and 1 for everything else, used
// by Compare to place equalities/lines before inequalities/rays/points.
func (r Row) classRank() int {
	if r.Kind.IsLineOrEquality() {
		return 0
	}
	return 1
}

// Compare implements the row ordering: equalities/lines
// precede inequalities/rays/points; within a class, coefficients are
// compared lexicographically from index 1 to width-1 (the inhomogeneous
// term at index 0 is the least significant key). The result's absolute
// value is 2 if the rows differ in any homogeneous position and 1 if they
// differ only at the inhomogeneous term.
func (r Row) Compare(other Row) int {
	if rc, oc := r.classRank(), other.classRank(); rc != oc {
		if rc < oc {
			return -2
		}
		return 2
	}

	n := r.Width()
	if other.Width() < n {
		n = other.Width()
	}
	for i := 1; i < n; i++ {
		switch r.Coeffs[i].Cmp(other.Coeffs[i]) {
		case integer.Less:
			return -2
		case integer.Greater:
			return 2
		}
	}
	switch r.Coeffs[0].Cmp(other.Coeffs[0]) {
	case integer.Less:
		return -1
	case integer.Greater:
		return 1
	}
	return 0
}

// ScalarProduct returns the dot product of r and other's coefficient
// vectors (both must share the same width), the quantity whose sign and
// zeroness the conversion and saturation algorithms pivot on throughout.
func ScalarProduct(r, other Row) integer.Coefficient {
	out := integer.Coefficient{}
	n := r.Width()
	if other.Width() < n {
		n = other.Width()
	}
	for i := 0; i < n; i++ {
		out = out.Add(r.Coeffs[i].Mul(other.Coeffs[i]))
	}
	return out
}

// LinearCombine eliminates column k from r using other: given rows r and
// other with other.Coeffs[k] != 0 != r.Coeffs[k], it computes
// (a, b) = Normalize2Pair(r[k], other[k]) and replaces r by
// b*r - a*other, zeroing column k, then re-normalizes.
func (r Row) LinearCombine(other Row, k int) (Row, error) {
	if r.Coeffs[k].IsZero() || other.Coeffs[k].IsZero() {
		return Row{}, ErrBadKindForCombine
	}
	a, b := integer.Normalize2Pair(r.Coeffs[k], other.Coeffs[k])

	n := r.Width()
	out := Row{Coeffs: make([]integer.Coefficient, n), Topology: r.Topology, Kind: r.Kind}
	for i := 0; i < n; i++ {
		out.Coeffs[i] = b.Mul(r.Coeffs[i]).Sub(a.Mul(other.Coeffs[i]))
	}
	out.Coeffs[k] = integer.Coefficient{}
	return out.StrongNormalize(), nil
}
