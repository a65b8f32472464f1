package polyhedron

import (
	"fmt"

	"github.com/ddpoly/ppl/integer"
	"github.com/ddpoly/ppl/linrow"
	"github.com/ddpoly/ppl/linsys"
	"github.com/ddpoly/ppl/saturation"
)

func (p *Poly) checkAffineArgs(v int, le linrow.Row, den integer.Coefficient) error {
	if v < 0 || v >= p.dim {
		return fmt.Errorf("polyhedron: variable %d out of range: %w", v, ErrInvalidArgument)
	}
	if le.Topology != p.topology || le.Width() != p.width() {
		return fmt.Errorf("polyhedron: affine expression: %w", ErrDimensionMismatch)
	}
	if den.IsZero() || den.Sign() < 0 {
		return fmt.Errorf("polyhedron: affine denominator must be positive: %w", ErrInvalidArgument)
	}
	return nil
}

// affineTransformRow computes the generator g's image under x_v :=
// le(x)/den: every coordinate other than v is rescaled by den to share
// the row's new divisor (d*den, where d is g's own divisor — zero for a
// line or ray, in which case the rescaling is simply an equivalent
// representative of the same direction); coordinate v becomes
// le.Coeffs[0]*d + Σ le.Coeffs[i]*g.Coeffs[i], which already reduces to
// the homogeneous linear part alone when d is zero.
func affineTransformRow(g, le linrow.Row, v int, den integer.Coefficient, w int) (linrow.Row, error) {
	d := g.Coeffs[0]
	sum := le.Coeffs[0].Mul(d)
	spaceDim := g.SpaceDimension()
	for i := 1; i <= spaceDim; i++ {
		sum = sum.Add(le.Coeffs[i].Mul(g.Coeffs[i]))
	}

	coeffs := make([]integer.Coefficient, w)
	coeffs[0] = d.Mul(den)
	vi := v + 1
	for j := 1; j < w; j++ {
		if j == vi {
			continue
		}
		coeffs[j] = g.Coeffs[j].Mul(den)
	}
	coeffs[vi] = sum
	return linrow.NewRow(coeffs, g.Topology, g.Kind)
}

// AffineImage replaces variable v by le(x)/den throughout p, computed by
// transforming every generator of p's current generator system; the
// constraint side is left stale and rebuilt lazily by package conversion.
func (p *Poly) AffineImage(v int, le linrow.Row, den integer.Coefficient) error {
	if err := p.checkAffineArgs(v, le, den); err != nil {
		return err
	}
	if p.status.empty {
		return nil
	}
	if err := p.ensureGenerators(nil); err != nil {
		return err
	}
	if p.status.empty {
		return nil
	}

	w := p.width()
	newGs := linsys.New(w, p.topology)
	for _, g := range p.gs.Rows() {
		transformed, err := affineTransformRow(g, le, v, den, w)
		if err != nil {
			return fmt.Errorf("polyhedron.AffineImage: %w", err)
		}
		if err := newGs.Insert(transformed); err != nil {
			return err
		}
	}
	p.gs = newGs
	p.sat = saturation.New(0)
	p.status.cUpToDate = false
	p.status.cMinimized = false
	p.status.gMinimized = false
	return nil
}

// affinePreimageTransformRow computes constraint c's pullback under
// x_v := le(x)/den: substituting v's occurrence in c(x) = c0 + Σc_i*x_i by
// le(x)/den and clearing the denominator gives, for the coefficient of
// every coordinate k != v, c_k*den + c_v*le_k (c_k's own share plus the
// share contributed through c_v's multiple of le), while the coordinate v
// itself — no longer directly present in c(x) once substituted — collects
// only c_v*le_v. This is a different computation from affineTransformRow's
// generator push-forward: there the whole row's coordinates are dotted
// with le to compute v's new value; here only c_v multiplies le, since c_v
// is the one coefficient that was actually attached to the replaced
// variable.
func affinePreimageTransformRow(c, le linrow.Row, v int, den integer.Coefficient, w int) (linrow.Row, error) {
	vi := v + 1
	cv := c.Coeffs[vi]

	coeffs := make([]integer.Coefficient, w)
	spaceDim := c.SpaceDimension()
	for k := 0; k <= spaceDim; k++ {
		if k == vi {
			continue
		}
		coeffs[k] = c.Coeffs[k].Mul(den).Add(cv.Mul(le.Coeffs[k]))
	}
	coeffs[vi] = cv.Mul(le.Coeffs[vi])
	if c.Topology == linrow.NotNecessarilyClosed {
		coeffs[w-1] = c.Epsilon().Mul(den)
	}
	return linrow.NewRow(coeffs, c.Topology, c.Kind)
}

// AffinePreimage replaces variable v by its preimage under x_v :=
// le(x)/den: a point x belongs to the result iff its image belongs to p,
// which is exactly the substitution y_v = le(x)/den applied to every
// constraint of p's current constraint system. The generator side is left
// stale.
func (p *Poly) AffinePreimage(v int, le linrow.Row, den integer.Coefficient) error {
	if err := p.checkAffineArgs(v, le, den); err != nil {
		return err
	}
	if p.status.empty {
		return nil
	}
	if err := p.ensureConstraints(nil); err != nil {
		return err
	}
	if p.status.empty {
		return nil
	}

	w := p.width()
	newCs := linsys.New(w, p.topology)
	for _, c := range p.cs.Rows() {
		transformed, err := affinePreimageTransformRow(c, le, v, den, w)
		if err != nil {
			return fmt.Errorf("polyhedron.AffinePreimage: %w", err)
		}
		if err := newCs.Insert(transformed); err != nil {
			return err
		}
	}
	p.cs = newCs
	p.sat = saturation.New(0)
	p.status.gUpToDate = false
	p.status.gMinimized = false
	p.status.cMinimized = false
	return nil
}

// GeneralizedAffineImage constrains variable v to relsym-relate to
// le(x)/den instead of replacing it outright: the old value of v is moved
// to a fresh temporary dimension, the constraint "den*v relsym le" is
// added with le read over the old values, and the temporary dimension is
// then projected away.
func (p *Poly) GeneralizedAffineImage(v int, relsym RelSym, le linrow.Row, den integer.Coefficient) error {
	if err := p.checkRelSym(relsym); err != nil {
		return err
	}
	if err := p.checkAffineArgs(v, le, den); err != nil {
		return err
	}
	if p.status.empty {
		return nil
	}
	if err := p.ensureConstraints(nil); err != nil {
		return err
	}
	if p.status.empty {
		return nil
	}

	oldDim := p.dim
	newDim := oldDim + 1
	w := p.width()
	w2 := rowWidth(newDim, p.topology)

	rename := func(c linrow.Row) (linrow.Row, error) {
		coeffs := make([]integer.Coefficient, w2)
		for i := 0; i < w; i++ {
			switch {
			case i == v+1:
				coeffs[newDim] = c.Coeffs[i]
			case p.topology == linrow.NotNecessarilyClosed && i == w-1:
				coeffs[w2-1] = c.Coeffs[i]
			default:
				coeffs[i] = c.Coeffs[i]
			}
		}
		return linrow.NewRow(coeffs, p.topology, c.Kind)
	}

	embedded := make([]linrow.Row, 0, p.cs.NumRows()+1)
	for _, c := range p.cs.Rows() {
		r, err := rename(c)
		if err != nil {
			return fmt.Errorf("polyhedron.GeneralizedAffineImage: %w", err)
		}
		embedded = append(embedded, r)
	}

	// tie links the fresh slot at v+1 (the new value of v) to le evaluated
	// at the renamed old value of v (now living at index newDim): den*v
	// relsym le(v', other coords unchanged).
	tie := make([]integer.Coefficient, w2)
	for i, val := range le.Coeffs {
		switch {
		case i == v+1:
			tie[newDim] = tie[newDim].Sub(val)
		case p.topology == linrow.NotNecessarilyClosed && i == w-1:
		default:
			tie[i] = tie[i].Sub(val)
		}
	}
	tie[v+1] = tie[v+1].Add(den)

	kind := linrow.Inequality
	if relsym == Equal {
		kind = linrow.Equality
	}
	if relsym == LessThan || relsym == LessOrEqual {
		for i := range tie {
			tie[i] = tie[i].Neg()
		}
	}
	if relsym.IsStrict() {
		tie[w2-1] = integer.FromInt64(-1)
	}
	tieRow, err := linrow.NewRow(tie, p.topology, kind)
	if err != nil {
		return fmt.Errorf("polyhedron.GeneralizedAffineImage: %w", err)
	}
	embedded = append(embedded, tieRow)

	temp, err := FromConstraints(embedded, p.topology)
	if err != nil {
		return fmt.Errorf("polyhedron.GeneralizedAffineImage: %w", err)
	}
	if err := temp.ensureGenerators(nil); err != nil {
		return err
	}
	if temp.status.empty {
		return p.becomeEmpty()
	}

	newGs := linsys.New(w, p.topology)
	for _, g := range temp.Generators() {
		projected, err := dropColumn(g, newDim, w, p.topology)
		if err != nil {
			return fmt.Errorf("polyhedron.GeneralizedAffineImage: %w", err)
		}
		if err := newGs.Insert(projected); err != nil {
			return err
		}
	}

	p.gs = newGs
	p.cs = linsys.New(w, p.topology)
	p.sat = saturation.New(0)
	p.status = status{gUpToDate: true}
	return nil
}

// dropColumn rebuilds r without its coefficient at index col, the
// projection step that eliminates an existentially-quantified dimension
// from a generator row.
func dropColumn(r linrow.Row, col, newWidth int, top linrow.Topology) (linrow.Row, error) {
	coeffs := make([]integer.Coefficient, newWidth)
	idx := 0
	for i := 0; i < r.Width(); i++ {
		if i == col {
			continue
		}
		coeffs[idx] = r.Coeffs[i]
		idx++
	}
	return linrow.NewRow(coeffs, top, r.Kind)
}
