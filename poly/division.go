// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"slices"
)

// DivRem divides n by d and returns the quotient and remainder.
//
// Stage 1: take the greatest remaining term of n.
// Stage 2: if the leading term of d divides it, subtract d·qt from n and
// add qt to the quotient; otherwise move the term to the remainder.
// Stage 3: repeat until n is exhausted.
//
// Every step removes the current term and only inserts smaller ones, so
// the loop terminates. DivRem(p, p) == (1, 0).
// It panics with ErrDivideByZero when d is zero.
func DivRem[C Ring[C], M Exponent[M]](n, d Terms[C, M]) (q, r Terms[C, M]) {
	if d.IsZero() {
		panic(fmt.Errorf("DivRem: %w", ErrDivideByZero))
	}
	p := slices.Clone(n.terms)
	lead := d.terms[0]
	var qs, rs []Term[C, M]
	for off := 0; off < len(p); {
		qt, ok := p[off].Quo(lead)
		if !ok {
			// remainder terms arrive in descending order
			rs = append(rs, p[off])
			off++
			continue
		}
		p = fnmadd(p, d, qt, off)
		qs = append(qs, qt)
	}

	return Terms[C, M]{terms: qs}, Terms[C, M]{terms: rs}
}

// fnmadd returns p - d·t, searching for insertion points from off.
func fnmadd[C Ring[C], M Exponent[M]](p []Term[C, M], d Terms[C, M], t Term[C, M], off int) []Term[C, M] {
	for _, dt := range d.terms {
		p, off = addTermAt(p, dt.Mul(t).Neg(), off)
	}

	return p
}

// DivExact returns n/d and panics with ErrInexactDivision when the
// remainder is not zero.
func DivExact[C Ring[C], M Exponent[M]](n, d Terms[C, M]) Terms[C, M] {
	q, r := DivRem(n, d)
	if !r.IsZero() {
		panic(fmt.Errorf("DivExact(%v, %v): remainder %v: %w", n, d, r, ErrInexactDivision))
	}

	return q
}

// divCoefs divides every coefficient of p exactly by c.
func divCoefs[C Ring[C], M Exponent[M]](p Terms[C, M], c C) Terms[C, M] {
	if c.IsOne() {
		return p
	}
	out := make([]Term[C, M], len(p.terms))
	for i, t := range p.terms {
		q, ok := t.Coef.Quo(c)
		if !ok {
			panic(fmt.Errorf("divCoefs(%v, %v): %w", p, c, ErrInexactDivision))
		}
		out[i] = Term[C, M]{Coef: q, Exp: t.Exp}
	}

	return Terms[C, M]{terms: out}
}
