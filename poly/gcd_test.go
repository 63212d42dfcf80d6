package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyloop/poly"
)

// ux builds a univariate integer polynomial from the highest power down.
func ux(coefs ...poly.Int) poly.Terms[poly.Int, poly.Uninomial] {
	return poly.Univariate(coefs...)
}

// scenario polynomial 2x^10 + x^7 + 7x^2 + 5x
func scenarioP() poly.Terms[poly.Int, poly.Uninomial] {
	return ux(2, 0, 0, 1, 0, 0, 0, 0, 7, 5, 0)
}

func TestPseudorem_Scenarios(t *testing.T) {
	p := scenarioP()
	one := p.One()
	q0 := p.Add(one).Mul(p.AddConst(2)).Mul(p.AddConst(3))
	assertPoly(t, ux(12582912), poly.Pseudorem(q0, p))

	// divisor of higher degree: nothing to reduce
	q1 := ux(1, 0, 0, 0, 0, 0, 0, 20)
	assertPoly(t, q1, poly.Pseudorem(q1, p))

	assertPoly(t, ux(-40, 7, 5, -20), poly.Pseudorem(p, q1))

	q2 := ux(1, 0, 0, 0, 0, 0, 23)
	assertPoly(t, ux(-46, 0, 7, -18, 0), poly.Pseudorem(p, q2))
}

func TestPseudorem_ScalesByLeadingCoefficient(t *testing.T) {
	// prem(x^2 + 1, 2x + 1) = 4(x^2+1) - (2x+1)(2x-1) = 5
	assertPoly(t, ux(5), poly.Pseudorem(ux(1, 0, 1), ux(2, 1)))
}

func TestContentPrimPart(t *testing.T) {
	u := ux(6, -4, 10)
	cont, pp := poly.ContPrim(u, poly.Int.GCD)
	assert.Equal(t, poly.Int(2), cont)
	assertPoly(t, ux(3, -2, 5), pp)
	assertPoly(t, pp, poly.PrimPart(u, poly.Int.GCD))
	assert.Equal(t, poly.Int(0), poly.Content(ux(), poly.Int.GCD))
}

func TestIntGCD(t *testing.T) {
	a := ux(1, 3, 2)  // (x+1)(x+2)
	b := ux(1, 4, 3)  // (x+1)(x+3)
	g := poly.IntGCD(a, b)
	assert.True(t, g.Equal(ux(1, 1)) || g.Equal(ux(-1, -1)), "got %v", g)

	// coprime inputs reduce to a constant
	g = poly.IntGCD(ux(1, 0, 1), ux(1, 1))
	assert.Equal(t, 0, g.Degree())

	// content is carried: gcd(6x+6, 4x+4) = 2(x+1)
	g = poly.IntGCD(ux(6, 6), ux(4, 4))
	assert.True(t, g.Equal(ux(2, 2)) || g.Equal(ux(-2, -2)), "got %v", g)
}

func TestGCD_IdenticalTerm(t *testing.T) {
	assertPoly(t, x, poly.GCD(x, x))
}

func TestGCD_Basic(t *testing.T) {
	a := x.Mul(y).Add(y)
	b := y.Mul(z).Add(y)
	assertPoly(t, y, poly.GCD(a, b))

	twoxy := poly.Mono(2, 0, 1)
	twoxyPlusX := twoxy.Add(x)
	assertPoly(t, x, poly.GCD(twoxy, twoxyPlusX))
	assertPoly(t, x, poly.GCD(twoxyPlusX, twoxy))

	cc := x.Mul(y).Add(y)
	assertUpToSign(t, cc, poly.GCD(cc, cc.Neg()))
	assertUpToSign(t, cc, poly.GCD(cc.Neg(), cc))
}

func TestGCD_Constants(t *testing.T) {
	assertPoly(t, c(6), poly.GCD(c(12), c(18)))
	assertPoly(t, c(1), poly.GCD(c(1), x))
	assertPoly(t, x, poly.GCD(poly.MPoly{}, x))
	assertPoly(t, poly.Mono(2, 0), poly.GCD(poly.Mono(4, 0, 0, 1), poly.Mono(6, 0, 2)))
}

func TestGCD_SharedFactor(t *testing.T) {
	k := y.Pow(2).Add(c(1))
	cases := []struct {
		name string
		a, b poly.MPoly
	}{
		{"x·k, z·k", x.Mul(k), z.Mul(k)},
		{"z·k, x·k", z.Mul(k), x.Mul(k)},
		{"x·k, (z+1)·k", x.Mul(k), z.AddConst(1).Mul(k)},
		{"(z+1)·k, x·k", z.AddConst(1).Mul(k), x.Mul(k)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertUpToSign(t, k, poly.GCD(tc.a, tc.b))
		})
	}
}

func TestGCD_DifferenceOfSquares(t *testing.T) {
	ps := x.Pow(2).Sub(y.Pow(2))
	qs := x.Add(y)
	assertUpToSign(t, x.Sub(y), poly.DivExact(ps, poly.GCD(ps, qs)))
}

func bivariateP() (p poly.MPoly, coefs [4]poly.MPoly) {
	coefs[0] = c(10).Mul(x.Mul(z).Add(x))
	coefs[1] = c(2).Mul(x.Pow(2).Add(z))
	coefs[2] = c(2).Mul(c(2).Sub(z))
	coefs[3] = c(20).Mul(x).Mul(z.Pow(2))
	p = coefs[0].
		Add(coefs[1].Mul(y.Pow(5))).
		Add(coefs[2].Mul(y.Pow(7))).
		Add(coefs[3].Mul(y.Pow(10)))

	return p, coefs
}

func TestToUnivariate(t *testing.T) {
	p, coefs := bivariateP()
	u := poly.ToUnivariate(p, 1)
	require.Equal(t, 4, u.Len())
	wantExp := []poly.Uninomial{10, 7, 5, 0}
	for i, want := range []poly.MPoly{coefs[3], coefs[2], coefs[1], coefs[0]} {
		assertPoly(t, want, u.At(i).Coef)
		assert.Equal(t, wantExp[i], u.At(i).Exp)
	}
	assertPoly(t, p, poly.FromUnivariate(u, 1))
	assert.Equal(t, poly.VarID(0), poly.PickVar(p))
	assert.Equal(t, poly.NoVar, poly.PickVar(c(3)))
}

func TestGCD_ProductOfShifts(t *testing.T) {
	p, _ := bivariateP()
	q := p.Mul(p.AddConst(1)).Mul(p.AddConst(2)).Mul(p.AddConst(3))
	for i := int64(0); i < 4; i++ {
		f := p.AddConst(poly.Int(i))
		g := poly.GCD(f, q)
		assertUpToSign(t, f, g)
	}
}

func TestGCD_DividesBothAndCommutes(t *testing.T) {
	k := x.Add(z.Mul(c(2)))
	pairs := [][2]poly.MPoly{
		{x.Mul(k), y.Mul(k).AddConst(0)},
		{k.Pow(2).Mul(y), k.Mul(y.Pow(3))},
		{x.Mul(y).Add(c(3)), x.Sub(y)},
		{c(4).Mul(k), c(6).Mul(k).Mul(y.AddConst(1))},
	}
	for _, pr := range pairs {
		g := poly.GCD(pr[0], pr[1])
		require.False(t, g.IsZero())
		assert.NotPanics(t, func() { poly.DivExact(pr[0], g) })
		assert.NotPanics(t, func() { poly.DivExact(pr[1], g) })
		assertUpToSign(t, g, poly.GCD(pr[1], pr[0]))
	}
}
