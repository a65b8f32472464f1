package polyhedron

import (
	"fmt"

	"github.com/ddpoly/ppl/integer"
	"github.com/ddpoly/ppl/linrow"
)

func (p *Poly) checkObjective(le linrow.Row) error {
	if le.Topology != p.topology || le.Width() != p.width() {
		return fmt.Errorf("polyhedron: objective expression: %w", ErrDimensionMismatch)
	}
	return nil
}

// compareFraction compares n1/d1 against n2/d2, assuming d1 and d2 are
// strictly positive (always true of a generator's divisor).
func compareFraction(n1, d1, n2, d2 integer.Coefficient) int {
	switch n1.Mul(d2).Cmp(n2.Mul(d1)) {
	case integer.Less:
		return -1
	case integer.Greater:
		return 1
	default:
		return 0
	}
}

// optimize finds the extreme value of le over p's minimized generators
// in direction dir (+1 to maximize, -1 to minimize). ok is false when p
// is empty or le is unbounded in that direction over p; otherwise n/d is
// the extreme value and achieved reports whether a real Point generator
// (not merely a ClosurePoint at the NNC boundary) attains it.
func (p *Poly) optimize(le linrow.Row, dir int) (n, d integer.Coefficient, achieved, ok bool, err error) {
	if err = p.checkObjective(le); err != nil {
		return
	}
	if p.status.empty {
		return
	}
	rows, err := p.MinimizedGenerators()
	if err != nil {
		return
	}

	for _, g := range rows {
		if g.Kind != linrow.Line {
			continue
		}
		if !linrow.ScalarProduct(le, g).IsZero() {
			return // a line with nonzero objective component is unbounded both ways
		}
	}
	for _, g := range rows {
		if g.Kind != linrow.Ray {
			continue
		}
		sp := linrow.ScalarProduct(le, g)
		if sp.Sign()*dir > 0 {
			return // a ray pointing further in the optimizing direction
		}
	}

	haveBest := false
	for _, g := range rows {
		if g.Kind != linrow.Point && g.Kind != linrow.ClosurePoint {
			continue
		}
		num := linrow.ScalarProduct(le, g)
		den := g.Coeffs[0]
		cmp := 0
		if haveBest {
			cmp = compareFraction(num, den, n, d)
		}
		if !haveBest || cmp*dir > 0 {
			n, d, haveBest = num, den, true
			achieved = g.Kind == linrow.Point
		} else if cmp == 0 && g.Kind == linrow.Point {
			achieved = true
		}
	}
	ok = haveBest
	return
}

// Maximize returns the supremum of le over p (numerator n, positive
// denominator d), and whether that supremum is attained by an actual
// point rather than only approached through an NNC closure point. ok is
// false when p is empty or le is unbounded above on p.
func (p *Poly) Maximize(le linrow.Row) (n, d integer.Coefficient, achieved, ok bool, err error) {
	return p.optimize(le, 1)
}

// Minimize returns the infimum of le over p, symmetric to Maximize.
func (p *Poly) Minimize(le linrow.Row) (n, d integer.Coefficient, achieved, ok bool, err error) {
	return p.optimize(le, -1)
}

// BoundsFromAbove reports whether le is bounded above on p. Vacuously
// true for the empty polyhedron.
func (p *Poly) BoundsFromAbove(le linrow.Row) (bool, error) {
	if err := p.checkObjective(le); err != nil {
		return false, err
	}
	if p.status.empty {
		return true, nil
	}
	_, _, _, ok, err := p.Maximize(le)
	return ok, err
}

// BoundsFromBelow reports whether le is bounded below on p. Vacuously
// true for the empty polyhedron.
func (p *Poly) BoundsFromBelow(le linrow.Row) (bool, error) {
	if err := p.checkObjective(le); err != nil {
		return false, err
	}
	if p.status.empty {
		return true, nil
	}
	_, _, _, ok, err := p.Minimize(le)
	return ok, err
}
