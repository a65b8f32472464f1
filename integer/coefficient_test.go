package integer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	a := FromInt64(14)
	b := FromInt64(-6)

	assert.Equal(t, "8", a.Add(b).String())
	assert.Equal(t, "20", a.Sub(b).String())
	assert.Equal(t, "-84", a.Mul(b).String())
	assert.Equal(t, "-14", a.Neg().String())
	assert.Equal(t, "6", b.Abs().String())
	assert.Equal(t, Greater, a.Cmp(b))
	assert.Equal(t, Equal, a.Cmp(a))
	assert.Equal(t, Less, b.Cmp(a))
}

func TestDivExactAndInexact(t *testing.T) {
	q, err := FromInt64(12).Div(FromInt64(4))
	require.NoError(t, err)
	assert.Equal(t, "3", q.String())

	_, err = FromInt64(7).Div(FromInt64(2))
	assert.ErrorIs(t, err, ErrNotExact)

	_, err = FromInt64(7).Div(FromInt64(0))
	assert.ErrorIs(t, err, ErrDivByZero)
}

func TestDivRemTruncates(t *testing.T) {
	quo, rem, err := FromInt64(-7).DivRem(FromInt64(2))
	require.NoError(t, err)
	// Truncating semantics: sign(rem) == sign(dividend).
	assert.Equal(t, "-3", quo.String())
	assert.Equal(t, "-1", rem.String())
}

func TestGCDLCM(t *testing.T) {
	assert.Equal(t, "6", FromInt64(12).GCD(FromInt64(18)).String())
	assert.Equal(t, "0", FromInt64(0).GCD(FromInt64(0)).String())
	assert.Equal(t, "36", FromInt64(12).LCM(FromInt64(18)).String())
	assert.Equal(t, "0", FromInt64(0).LCM(FromInt64(5)).String())
}

func TestGCDExtTieBreak(t *testing.T) {
	g, s, tt := FromInt64(5).GCDExt(FromInt64(5))
	assert.Equal(t, "5", g.String())
	assert.Equal(t, "1", s.String())
	assert.Equal(t, "0", tt.String())
}

func TestGCDExtBezout(t *testing.T) {
	a, b := FromInt64(35), FromInt64(15)
	g, s, tt := a.GCDExt(b)
	assert.Equal(t, "5", g.String())
	assert.True(t, s.Mul(a).Add(tt.Mul(b)).Cmp(g) == Equal)
}

func TestSqrt(t *testing.T) {
	r, err := FromInt64(26).Sqrt()
	require.NoError(t, err)
	assert.Equal(t, "5", r.String())

	_, err = FromInt64(-1).Sqrt()
	assert.ErrorIs(t, err, ErrNegativeSqrt)
}

func TestNormalize2Pair(t *testing.T) {
	a, b := Normalize2Pair(FromInt64(12), FromInt64(18))
	assert.Equal(t, "2", a.String())
	assert.Equal(t, "3", b.String())

	z1, z2 := Normalize2Pair(FromInt64(0), FromInt64(0))
	assert.True(t, z1.IsZero())
	assert.True(t, z2.IsZero())
}
