// SPDX-License-Identifier: MIT

package poly

import (
	"cmp"
	"slices"
)

// MPoly is a multivariate polynomial with integer coefficients: the type of
// every symbolic loop bound.
type MPoly = Terms[Int, Monomial]

// UPoly is the univariate view of an MPoly in one variable: its
// coefficients are MPoly values that no longer mention that variable.
type UPoly = Terms[MPoly, Uninomial]

// Const returns the constant polynomial c.
func Const(c int64) MPoly { return Constant[Int, Monomial](Int(c)) }

// Var returns the polynomial v.
func Var(v VarID) MPoly { return Symbol(v, 1) }

// Symbol returns c·v, the building block a host uses to express trip
// counts in terms of program parameters.
func Symbol(v VarID, c int64) MPoly {
	return FromTerms(Term[Int, Monomial]{Coef: Int(c), Exp: NewMonomial(v)})
}

// Mono returns c times the product of ids.
func Mono(c int64, ids ...VarID) MPoly {
	return FromTerms(Term[Int, Monomial]{Coef: Int(c), Exp: NewMonomial(ids...)})
}

// ConstantValue returns the value of p when p has no variables.
func ConstantValue(p MPoly) (int64, bool) {
	switch {
	case p.IsZero():
		return 0, true
	case p.Len() == 1 && p.terms[0].Exp.IsOne():
		return int64(p.terms[0].Coef), true
	default:
		return 0, false
	}
}

// PickVar returns the smallest variable that appears in p, or NoVar.
func PickVar(p MPoly) VarID {
	v := NoVar
	for _, t := range p.terms {
		if t.Exp.Degree() > 0 {
			v = min(v, t.Exp.ids[0])
		}
	}

	return v
}

// ToUnivariate regroups p as a polynomial in v whose coefficients are
// polynomials free of v.
//
// Stage 1: record the exponent of v in each term.
// Stage 2: sort term indices by that exponent, descending.
// Stage 3: sum each run of equal exponents, with v stripped, into one
// coefficient.
func ToUnivariate(p MPoly, v VarID) UPoly {
	type entry struct{ deg, idx int }
	es := make([]entry, len(p.terms))
	for i, t := range p.terms {
		es[i] = entry{deg: t.Exp.DegreeOf(v), idx: i}
	}
	slices.SortStableFunc(es, func(a, b entry) int { return cmp.Compare(b.deg, a.deg) })

	out := make([]Term[MPoly, Uninomial], 0, len(es))
	for i := 0; i < len(es); {
		var coef []Term[Int, Monomial]
		j := i
		for ; j < len(es) && es[j].deg == es[i].deg; j++ {
			t := p.terms[es[j].idx]
			coef, _ = addTermAt(coef, Term[Int, Monomial]{Coef: t.Coef, Exp: t.Exp.Without(v)}, 0)
		}
		out = append(out, Term[MPoly, Uninomial]{Coef: MPoly{terms: coef}, Exp: Uninomial(es[i].deg)})
		i = j
	}

	return UPoly{terms: out}
}

// FromUnivariate is the inverse of ToUnivariate: Σ coef_e·v^e.
func FromUnivariate(u UPoly, v VarID) MPoly {
	var acc MPoly
	for _, t := range u.terms {
		shift := Term[Int, Monomial]{Coef: 1, Exp: Monomial{}.Times(v, t.Exp.Degree())}
		acc = acc.Add(t.Coef.MulTerm(shift))
	}

	return acc
}

// GCD returns a greatest common divisor of x and y: it divides both
// exactly and every common divisor divides it. The sign is not normalized.
//
// Stage 1 (Trivial): zero, one and equal operands.
// Stage 2 (Terms): when either side is a single term, so is the gcd: it is
// the coefficient gcd times the monomial intersection over all terms. This
// also covers two constants.
// Stage 3 (Eliminate): when the smallest variables differ, the polynomial
// with the larger one cannot contain the other's, so the other is replaced
// by its content with respect to its own variable.
// Stage 4 (Shared): with a common smallest variable v, both become
// univariate in v and UnivariateGCD runs with GCD on the coefficients.
func GCD(x, y MPoly) MPoly {
	switch {
	case x.IsZero() || y.IsOne():
		return y
	case y.IsZero() || x.IsOne() || x.Equal(y):
		return x
	case x.Len() == 1 || y.Len() == 1:
		return FromTerms(termGCD(termContent(x), termContent(y)))
	}
	v1, v2 := PickVar(x), PickVar(y)
	switch {
	case v1 < v2:
		return GCD(y, Content(ToUnivariate(x, v1), GCD))
	case v1 > v2:
		return GCD(x, Content(ToUnivariate(y, v2), GCD))
	default:
		return FromUnivariate(UnivariateGCD(ToUnivariate(x, v1), ToUnivariate(y, v1), GCD), v1)
	}
}

// termContent is the largest term dividing every term of p. A single term
// is its own content, sign included.
func termContent(p MPoly) Term[Int, Monomial] {
	g := p.terms[0]
	for _, t := range p.terms[1:] {
		if g.IsOne() {
			break
		}
		g = termGCD(g, t)
	}

	return g
}

func termGCD(a, b Term[Int, Monomial]) Term[Int, Monomial] {
	return Term[Int, Monomial]{Coef: a.Coef.GCD(b.Coef), Exp: a.Exp.GCD(b.Exp)}
}

// IntGCD is the univariate gcd over integer coefficients.
func IntGCD(x, y Terms[Int, Uninomial]) Terms[Int, Uninomial] {
	return UnivariateGCD(x, y, Int.GCD)
}

// Univariate builds a univariate polynomial from coefficients listed from
// the highest power down: Univariate(2, 0, 1) is 2x² + 1.
func Univariate[C Ring[C]](coefs ...C) Terms[C, Uninomial] {
	ts := make([]Term[C, Uninomial], 0, len(coefs))
	for i, c := range coefs {
		if !c.IsZero() {
			ts = append(ts, Term[C, Uninomial]{Coef: c, Exp: Uninomial(len(coefs) - 1 - i)})
		}
	}

	return Terms[C, Uninomial]{terms: ts}
}

// Format renders p with a custom Namer.
func Format(p MPoly, name Namer) string {
	if p.IsZero() {
		return "0"
	}
	s := ""
	for i, t := range p.terms {
		c := int64(t.Coef)
		neg := c < 0
		if neg {
			c = -c
		}
		var body string
		switch {
		case t.Exp.IsOne():
			body = Int(c).String()
		case c == 1:
			body = t.Exp.Format(name)
		default:
			body = Int(c).String() + " " + t.Exp.Format(name)
		}
		switch {
		case i == 0 && neg:
			s = "-" + body
		case i == 0:
			s = body
		case neg:
			s += " - " + body
		default:
			s += " + " + body
		}
	}

	return s
}
