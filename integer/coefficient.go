package integer

import (
	"fmt"
	"math/big"
)

// Sign enumerates the three-way result of Coefficient.Cmp.
type Sign int

const (
	// Less means the receiver compares strictly less than the argument.
	Less Sign = -1
	// Equal means the receiver and the argument are numerically equal.
	Equal Sign = 0
	// Greater means the receiver compares strictly greater than the argument.
	Greater Sign = 1
)

// Coefficient is an exact signed integer: the homogeneous-term and
// divisor type used throughout rows, matrices, and the conversion engine.
// The zero value is the integer zero and is ready to use.
type Coefficient struct {
	v big.Int
}

// FromInt64 builds a Coefficient from a machine integer.
func FromInt64(n int64) Coefficient {
	var c Coefficient
	c.v.SetInt64(n)
	return c
}

// FromBigInt builds a Coefficient from a *big.Int, copying its value so the
// caller's Int remains independently mutable.
func FromBigInt(n *big.Int) Coefficient {
	var c Coefficient
	c.v.Set(n)
	return c
}

// BigInt returns a copy of the underlying *big.Int, safe for the caller to
// mutate without disturbing c.
func (c Coefficient) BigInt() *big.Int {
	var out big.Int
	out.Set(&c.v)
	return &out
}

// String renders the coefficient in base 10.
func (c Coefficient) String() string {
	return c.v.String()
}

// IsZero reports whether c is exactly zero.
func (c Coefficient) IsZero() bool {
	return c.v.Sign() == 0
}

// Sign returns -1, 0, or +1 according to the sign of c.
func (c Coefficient) Sign() int {
	return c.v.Sign()
}

// Add returns c + other.
func (c Coefficient) Add(other Coefficient) Coefficient {
	var out Coefficient
	out.v.Add(&c.v, &other.v)
	return out
}

// Sub returns c - other.
func (c Coefficient) Sub(other Coefficient) Coefficient {
	var out Coefficient
	out.v.Sub(&c.v, &other.v)
	return out
}

// Mul returns c * other.
func (c Coefficient) Mul(other Coefficient) Coefficient {
	var out Coefficient
	out.v.Mul(&c.v, &other.v)
	return out
}

// Neg returns -c.
func (c Coefficient) Neg() Coefficient {
	var out Coefficient
	out.v.Neg(&c.v)
	return out
}

// Abs returns |c|.
func (c Coefficient) Abs() Coefficient {
	var out Coefficient
	out.v.Abs(&c.v)
	return out
}

// Div returns the exact quotient c / other. It returns ErrDivByZero if
// other is zero and ErrNotExact if other does not evenly divide c — the
// core never performs a silently truncating division where an exact one
// was asked for.
func (c Coefficient) Div(other Coefficient) (Coefficient, error) {
	if other.IsZero() {
		return Coefficient{}, ErrDivByZero
	}
	var q, r big.Int
	q.QuoRem(&c.v, &other.v, &r)
	if r.Sign() != 0 {
		return Coefficient{}, fmt.Errorf("integer: Div(%s, %s): %w", c, other, ErrNotExact)
	}
	return Coefficient{v: q}, nil
}

// DivRem returns the truncating quotient and remainder of c / other, with
// sign(remainder) == sign(c) (Go/C truncation semantics, not floored).
func (c Coefficient) DivRem(other Coefficient) (quo, rem Coefficient, err error) {
	if other.IsZero() {
		return Coefficient{}, Coefficient{}, ErrDivByZero
	}
	var q, r big.Int
	q.QuoRem(&c.v, &other.v, &r)
	return Coefficient{v: q}, Coefficient{v: r}, nil
}

// Cmp compares c to other.
func (c Coefficient) Cmp(other Coefficient) Sign {
	return Sign(c.v.Cmp(&other.v))
}

// GCD returns the non-negative greatest common divisor of |c| and |other|.
// GCD(0, 0) == 0, matching math/big's convention.
func (c Coefficient) GCD(other Coefficient) Coefficient {
	var out Coefficient
	a, b := c.Abs(), other.Abs()
	out.v.GCD(nil, nil, &a.v, &b.v)
	return out
}

// LCM returns the non-negative least common multiple of |c| and |other|.
// LCM(0, x) == 0.
func (c Coefficient) LCM(other Coefficient) Coefficient {
	if c.IsZero() || other.IsZero() {
		return Coefficient{}
	}
	g := c.GCD(other)
	q, _ := c.Abs().Div(g)
	return q.Mul(other.Abs())
}

// GCDExt returns (g, s, t) such that s*a + t*b == g, where g = gcd(|a|,
// |b|) and a, b are c and other respectively. Ties are broken so that s
// is favored over t: when |a| == |b|, GCDExt(a, a) yields s=1, t=0
// rather than math/big's own tie-break.
func (c Coefficient) GCDExt(other Coefficient) (g, s, t Coefficient) {
	if c.Abs().Cmp(other.Abs()) == Equal && !c.IsZero() {
		// Favor s over t on the documented tie: g = |a|, s = sign(a), t = 0.
		gAbs := c.Abs()
		one := FromInt64(1)
		if c.Sign() < 0 {
			one = one.Neg()
		}
		return gAbs, one, Coefficient{}
	}
	var gg, ss, tt big.Int
	gg.GCD(&ss, &tt, &c.v, &other.v)
	return Coefficient{v: gg}, Coefficient{v: ss}, Coefficient{v: tt}
}

// Sqrt returns the integer square root floor(sqrt(c)). It returns
// ErrNegativeSqrt if c is negative.
func (c Coefficient) Sqrt() (Coefficient, error) {
	if c.Sign() < 0 {
		return Coefficient{}, ErrNegativeSqrt
	}
	var out Coefficient
	out.v.Sqrt(&c.v)
	return out, nil
}

// Normalize2Pair returns (a/g, b/g) where g = gcd(|a|, |b|) — the
// pervasive normalize2 idiom used anywhere two scalar products are
// combined without letting intermediate magnitudes grow past a constant
// factor of their theoretical minimum. If both a and b are zero, it
// returns (0, 0) unchanged.
func Normalize2Pair(a, b Coefficient) (Coefficient, Coefficient) {
	if a.IsZero() && b.IsZero() {
		return a, b
	}
	g := a.GCD(b)
	na, err := a.Div(g)
	if err != nil {
		// g divides a and b exactly by construction of GCD; unreachable.
		panic(fmt.Sprintf("integer: Normalize2Pair invariant violated: %v", err))
	}
	nb, err := b.Div(g)
	if err != nil {
		panic(fmt.Sprintf("integer: Normalize2Pair invariant violated: %v", err))
	}
	return na, nb
}
