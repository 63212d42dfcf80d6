// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Terms is a polynomial in canonical form: terms strictly descending by the
// exponent order, no two sharing an exponent, none zero. The zero value is
// the zero polynomial.
type Terms[C Ring[C], M Exponent[M]] struct {
	terms []Term[C, M]
}

// FromTerms folds ts into canonical form in any order; zero terms vanish
// and matching exponents merge.
// Complexity: O(n²).
func FromTerms[C Ring[C], M Exponent[M]](ts ...Term[C, M]) Terms[C, M] {
	var out []Term[C, M]
	for _, t := range ts {
		out, _ = addTermAt(out, t, 0)
	}

	return Terms[C, M]{terms: out}
}

// Constant returns the degree-0 polynomial c.
func Constant[C Ring[C], M Exponent[M]](c C) Terms[C, M] {
	if c.IsZero() {
		return Terms[C, M]{}
	}
	var m M

	return Terms[C, M]{terms: []Term[C, M]{{Coef: c, Exp: m.One()}}}
}

// Zero returns the zero polynomial. The receiver is ignored.
func (Terms[C, M]) Zero() Terms[C, M] { return Terms[C, M]{} }

// One returns the unit polynomial. The receiver is ignored.
func (Terms[C, M]) One() Terms[C, M] {
	var c C

	return Constant[C, M](c.One())
}

// IsZero reports whether p has no terms.
func (p Terms[C, M]) IsZero() bool { return len(p.terms) == 0 }

// IsOne reports whether p is the single unit term.
func (p Terms[C, M]) IsOne() bool { return len(p.terms) == 1 && p.terms[0].IsOne() }

// Len is the number of terms.
func (p Terms[C, M]) Len() int { return len(p.terms) }

// At returns the i-th term in canonical order.
func (p Terms[C, M]) At(i int) Term[C, M] { return p.terms[i] }

// Slice returns a copy of the terms in canonical order.
func (p Terms[C, M]) Slice() []Term[C, M] { return slices.Clone(p.terms) }

// Each yields (index, term) in canonical order.
func (p Terms[C, M]) Each() iter.Seq2[int, Term[C, M]] {
	return func(yield func(int, Term[C, M]) bool) {
		for i, t := range p.terms {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Degree is the degree of the leading term, 0 for the zero polynomial.
func (p Terms[C, M]) Degree() int {
	if len(p.terms) == 0 {
		return 0
	}

	return p.terms[0].Degree()
}

// Leading returns the greatest term. It panics on the zero polynomial.
func (p Terms[C, M]) Leading() Term[C, M] { return p.terms[0] }

// LeadingCoef returns the coefficient of the greatest term.
func (p Terms[C, M]) LeadingCoef() C { return p.terms[0].Coef }

// Equal compares term by term.
func (p Terms[C, M]) Equal(q Terms[C, M]) bool {
	return slices.EqualFunc(p.terms, q.terms, func(a, b Term[C, M]) bool { return a.Equal(b) })
}

// AddTerm returns p + t.
func (p Terms[C, M]) AddTerm(t Term[C, M]) Terms[C, M] {
	out, _ := addTermAt(slices.Clone(p.terms), t, 0)

	return Terms[C, M]{terms: out}
}

// SubTerm returns p - t.
func (p Terms[C, M]) SubTerm(t Term[C, M]) Terms[C, M] {
	return p.AddTerm(t.Neg())
}

// AddConst returns p + c.
func (p Terms[C, M]) AddConst(c C) Terms[C, M] {
	var m M

	return p.AddTerm(Term[C, M]{Coef: c, Exp: m.One()})
}

// Add returns p + q.
func (p Terms[C, M]) Add(q Terms[C, M]) Terms[C, M] {
	out := slices.Clone(p.terms)
	off := 0
	for _, t := range q.terms {
		out, off = addTermAt(out, t, off)
	}

	return Terms[C, M]{terms: out}
}

// Sub returns p - q.
func (p Terms[C, M]) Sub(q Terms[C, M]) Terms[C, M] {
	out := slices.Clone(p.terms)
	off := 0
	for _, t := range q.terms {
		out, off = addTermAt(out, t.Neg(), off)
	}

	return Terms[C, M]{terms: out}
}

// Neg returns -p.
func (p Terms[C, M]) Neg() Terms[C, M] {
	out := make([]Term[C, M], len(p.terms))
	for i, t := range p.terms {
		out[i] = t.Neg()
	}

	return Terms[C, M]{terms: out}
}

// Scale returns c·p.
func (p Terms[C, M]) Scale(c C) Terms[C, M] {
	if c.IsZero() {
		return Terms[C, M]{}
	}
	out := make([]Term[C, M], len(p.terms))
	for i, t := range p.terms {
		out[i] = t.Scale(c)
	}

	return Terms[C, M]{terms: out}
}

// MulTerm returns p·t. Multiplying by a term keeps the order, so no
// re-sorting is needed.
func (p Terms[C, M]) MulTerm(t Term[C, M]) Terms[C, M] {
	if t.IsZero() {
		return Terms[C, M]{}
	}
	out := make([]Term[C, M], 0, len(p.terms))
	for _, s := range p.terms {
		if r := s.Mul(t); !r.IsZero() {
			out = append(out, r)
		}
	}

	return Terms[C, M]{terms: out}
}

// Mul returns p·q: the full cross product, each product folded into the
// accumulator by canonical insertion.
// Complexity: O(n·m·(n+m)).
func (p Terms[C, M]) Mul(q Terms[C, M]) Terms[C, M] {
	if p.IsZero() || q.IsZero() {
		return Terms[C, M]{}
	}
	var out []Term[C, M]
	for _, a := range p.terms {
		// products of a with descending terms descend, so each row
		// resumes the search where the previous insertion stopped
		off := 0
		for _, b := range q.terms {
			out, off = addTermAt(out, a.Mul(b), off)
		}
	}

	return Terms[C, M]{terms: out}
}

// Pow returns p^n.
func (p Terms[C, M]) Pow(n uint) Terms[C, M] { return Pow(p, n) }

// Quo returns p/d when the division is exact.
func (p Terms[C, M]) Quo(d Terms[C, M]) (Terms[C, M], bool) {
	if d.IsZero() {
		return Terms[C, M]{}, false
	}
	q, r := DivRem(p, d)

	return q, r.IsZero()
}

// String renders p with its terms' String, e.g. "2 L^2 - M + 3".
func (p Terms[C, M]) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range p.terms {
		s := t.String()
		switch {
		case i == 0:
			sb.WriteString(s)
		case strings.HasPrefix(s, "-"):
			sb.WriteString(" - ")
			sb.WriteString(s[1:])
		default:
			sb.WriteString(" + ")
			sb.WriteString(s)
		}
	}

	return sb.String()
}

// GoString helps testify print readable diffs.
func (p Terms[C, M]) GoString() string { return fmt.Sprintf("poly{%s}", p.String()) }

// addTermAt folds t into the canonical slice ts, scanning from off. It
// returns the updated slice and the index at which a smaller term should
// start its own search. ts must be owned by the caller.
func addTermAt[C Ring[C], M Exponent[M]](ts []Term[C, M], t Term[C, M], off int) ([]Term[C, M], int) {
	if t.IsZero() {
		return ts, off
	}
	for i := off; i < len(ts); i++ {
		if t.Matches(ts[i]) {
			c := ts[i].Coef.Add(t.Coef)
			if c.IsZero() {
				return slices.Delete(ts, i, i+1), i
			}
			ts[i].Coef = c

			return ts, i + 1
		}
		if t.LexGreater(ts[i]) {
			return slices.Insert(ts, i, t), i + 1
		}
	}
	ts = append(ts, t)

	return ts, len(ts)
}
