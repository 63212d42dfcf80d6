// SPDX-License-Identifier: MIT

package poly

import "fmt"

// Pseudorem returns the pseudo-remainder of p by d: the remainder of
// lc(d)^k·p divided by d with k = 1 + deg p - deg d. Scaling by the leading
// coefficient keeps the computation free of fractions. When deg p < deg d,
// p is returned unchanged.
// It panics with ErrDivideByZero when d is zero.
func Pseudorem[C Ring[C]](p, d Terms[C, Uninomial]) Terms[C, Uninomial] {
	if d.IsZero() {
		panic(fmt.Errorf("Pseudorem: %w", ErrDivideByZero))
	}
	if p.Degree() < d.Degree() {
		return p
	}
	k := 1 + p.Degree() - d.Degree()
	l := d.LeadingCoef()
	for !p.IsZero() && p.Degree() >= d.Degree() {
		t := Term[C, Uninomial]{
			Coef: p.LeadingCoef(),
			Exp:  Uninomial(p.Degree() - d.Degree()),
		}
		p = p.Scale(l).Sub(d.MulTerm(t))
		k--
	}

	return p.Scale(Pow(l, uint(k)))
}

// Content returns the gcd of the coefficients of u, computed with gcd.
// A single-term polynomial's content is its coefficient.
func Content[C Ring[C]](u Terms[C, Uninomial], gcd func(a, b C) C) C {
	if u.IsZero() {
		var c C

		return c.Zero()
	}
	g := u.terms[0].Coef
	for _, t := range u.terms[1:] {
		if g.IsOne() {
			break
		}
		g = gcd(g, t.Coef)
	}

	return g
}

// PrimPart returns u divided by its content.
func PrimPart[C Ring[C]](u Terms[C, Uninomial], gcd func(a, b C) C) Terms[C, Uninomial] {
	_, pp := ContPrim(u, gcd)

	return pp
}

// ContPrim returns the content of u and its primitive part.
func ContPrim[C Ring[C]](u Terms[C, Uninomial], gcd func(a, b C) C) (C, Terms[C, Uninomial]) {
	c := Content(u, gcd)
	if c.IsZero() {
		return c, u
	}

	return c, divCoefs(u, c)
}

// UnivariateGCD computes gcd(x, y) with the subresultant pseudo-remainder
// sequence. Contents are split off first and recombined at the end;
// the cofactors g and h divide out the coefficient growth that plain
// pseudo-remainders would accumulate. gcd combines coefficients.
//
// The result is defined up to a unit of the coefficient domain.
func UnivariateGCD[C Ring[C]](x, y Terms[C, Uninomial], gcd func(a, b C) C) Terms[C, Uninomial] {
	if x.Degree() < y.Degree() {
		x, y = y, x
	}
	switch {
	case x.IsZero():
		return y
	case y.IsZero():
		return x
	case y.IsOne():
		return y
	}
	t0, xx := ContPrim(x, gcd)
	t1, yy := ContPrim(y, gcd)
	c := gcd(t0, t1)
	g, h := c.One(), c.One()
	for {
		r := Pseudorem(xx, yy)
		if r.IsZero() {
			break
		}
		if r.Degree() == 0 {
			return Constant[C, Uninomial](c)
		}
		d := uint(xx.Degree() - yy.Degree())
		xx, yy = yy, divCoefs(r, g.Mul(Pow(h, d)))
		g = xx.LeadingCoef()
		if d > 1 {
			q, ok := Pow(g, d).Quo(Pow(h, d-1))
			if !ok {
				panic(fmt.Errorf("UnivariateGCD: cofactor update: %w", ErrInexactDivision))
			}
			h = q
		} else {
			// d is 0 or 1: h^(1-d)·g^d
			h = Pow(h, 1-d).Mul(Pow(g, d))
		}
	}

	return PrimPart(yy, gcd).Scale(c)
}
