package rational_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyloop/rational"
)

func TestNew_Reduces(t *testing.T) {
	r := rational.New(6, -8)
	assert.Equal(t, rational.Rational{Num: -3, Den: 4}, r)
	assert.Equal(t, rational.Rational{Num: 0, Den: 1}, rational.New(0, -7))
	assert.Panics(t, func() { rational.New(1, 0) })
}

func TestArithmetic(t *testing.T) {
	half, third := rational.New(1, 2), rational.New(1, 3)

	assert.Equal(t, rational.New(5, 6), half.Add(third))
	assert.Equal(t, rational.New(1, 6), half.Sub(third))
	assert.Equal(t, rational.New(1, 6), half.Mul(third))
	assert.Equal(t, rational.New(3, 2), half.Div(third))
	assert.Equal(t, rational.New(-1, 2), half.Neg())
	assert.Equal(t, rational.FromInt(-3), rational.New(-1, 3).Inv())
	assert.True(t, half.Sub(half).IsZero())
	assert.True(t, half.Div(half).IsOne())
	assert.True(t, rational.New(4, 2).IsInteger())
}

func TestMul_CrossCancels(t *testing.T) {
	// 2^40/3 * 3/2^40 would overflow without cancelling first.
	big := int64(1) << 40
	p := rational.New(big, 3).Mul(rational.New(3, big))
	assert.True(t, p.IsOne())
}

func TestDivByZero(t *testing.T) {
	one := rational.FromInt(1)
	assert.Panics(t, func() { one.Div(one.Zero()) })
	assert.Panics(t, func() { one.Zero().Inv() })

	_, ok := one.Quo(one.Zero())
	assert.False(t, ok)

	_, err := one.SafeDiv(one.Zero())
	assert.ErrorIs(t, err, rational.ErrDivideByZero)
}

func TestSafeOps_Overflow(t *testing.T) {
	top := rational.FromInt(math.MaxInt64)

	_, err := top.SafeAdd(rational.FromInt(1))
	assert.ErrorIs(t, err, rational.ErrOverflow)

	_, err = top.SafeMul(rational.FromInt(2))
	assert.ErrorIs(t, err, rational.ErrOverflow)

	_, err = rational.FromInt(math.MinInt64 + 1).SafeSub(rational.FromInt(2))
	assert.ErrorIs(t, err, rational.ErrOverflow)

	s, err := rational.New(1, 4).SafeAdd(rational.New(3, 4))
	require.NoError(t, err)
	assert.True(t, s.IsOne())
}

func TestCmp(t *testing.T) {
	assert.Equal(t, -1, rational.New(1, 3).Cmp(rational.New(1, 2)))
	assert.Equal(t, 0, rational.New(2, 4).Cmp(rational.New(1, 2)))
	assert.Equal(t, 1, rational.New(-1, 3).Cmp(rational.New(-1, 2)))
	assert.True(t, rational.New(-5, 2).Less(rational.FromInt(0)))
}

func TestGCD(t *testing.T) {
	g := rational.GCD(rational.New(4, 3), rational.New(6, 5))
	assert.Equal(t, rational.Rational{Num: 2, Den: 15}, g)

	// both numerators zero: explicit marker, never normalized
	z := rational.FromInt(0)
	g = z.GCD(z)
	assert.True(t, g.IsNoGCD())
	assert.Equal(t, rational.NoGCD, g)
	assert.Equal(t, "1/0", g.String())
}

func TestString(t *testing.T) {
	assert.Equal(t, "7", rational.FromInt(7).String())
	assert.Equal(t, "-3/4", rational.New(3, -4).String())
}
