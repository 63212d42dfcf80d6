// SPDX-License-Identifier: MIT

package poly

import "strings"

// Term is Coef·Exp.
type Term[C Ring[C], M Exponent[M]] struct {
	Coef C
	Exp  M
}

// NewTerm builds a Term.
func NewTerm[C Ring[C], M Exponent[M]](c C, e M) Term[C, M] {
	return Term[C, M]{Coef: c, Exp: e}
}

// IsZero reports a zero coefficient.
func (t Term[C, M]) IsZero() bool { return t.Coef.IsZero() }

// IsOne reports a unit coefficient on the unit exponent.
func (t Term[C, M]) IsOne() bool { return t.Coef.IsOne() && t.Exp.IsOne() }

// Degree is the degree of the exponent.
func (t Term[C, M]) Degree() int { return t.Exp.Degree() }

// Matches reports equal exponents: such terms are merged.
func (t Term[C, M]) Matches(o Term[C, M]) bool { return t.Exp.Equal(o.Exp) }

// LexGreater compares exponents by the canonical order.
func (t Term[C, M]) LexGreater(o Term[C, M]) bool { return t.Exp.LexGreater(o.Exp) }

// Equal compares coefficient and exponent.
func (t Term[C, M]) Equal(o Term[C, M]) bool {
	return t.Coef.Equal(o.Coef) && t.Exp.Equal(o.Exp)
}

func (t Term[C, M]) Mul(o Term[C, M]) Term[C, M] {
	return Term[C, M]{Coef: t.Coef.Mul(o.Coef), Exp: t.Exp.Mul(o.Exp)}
}

// Quo divides both parts exactly; it fails if either part fails.
func (t Term[C, M]) Quo(o Term[C, M]) (Term[C, M], bool) {
	e, ok := t.Exp.Quo(o.Exp)
	if !ok {
		return Term[C, M]{}, false
	}
	c, ok := t.Coef.Quo(o.Coef)
	if !ok {
		return Term[C, M]{}, false
	}

	return Term[C, M]{Coef: c, Exp: e}, true
}

func (t Term[C, M]) Neg() Term[C, M] { return Term[C, M]{Coef: t.Coef.Neg(), Exp: t.Exp} }

// Scale multiplies the coefficient by c.
func (t Term[C, M]) Scale(c C) Term[C, M] { return Term[C, M]{Coef: t.Coef.Mul(c), Exp: t.Exp} }

// Pow raises both parts to n.
func (t Term[C, M]) Pow(n uint) Term[C, M] {
	acc := Term[C, M]{Coef: t.Coef.One(), Exp: t.Exp.One()}
	for n > 0 {
		if n&1 == 1 {
			acc = acc.Mul(t)
		}
		n >>= 1
		if n > 0 {
			t = t.Mul(t)
		}
	}

	return acc
}

// String renders "3 L^2", "-M", "(L + 1) x^2" and so on.
func (t Term[C, M]) String() string {
	cs := t.Coef.String()
	if t.Exp.IsOne() {
		return cs
	}
	es := t.Exp.String()
	switch {
	case t.Coef.IsOne():
		return es
	case t.Coef.Neg().IsOne():
		return "-" + es
	case strings.Contains(cs, " "):
		return "(" + cs + ") " + es
	default:
		return cs + " " + es
	}
}
