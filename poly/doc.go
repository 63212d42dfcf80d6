// SPDX-License-Identifier: MIT

// Package poly implements exact sparse polynomials in canonical form and the
// gcd machinery used to reason about symbolic loop bounds.
//
// What:
//
//   - Ring[T]: the arithmetic capability shared by every coefficient domain.
//     Int, rational.Rational and Terms itself satisfy it, so a polynomial can
//     be the coefficient of another polynomial during variable elimination.
//   - Monomial: ascending multiset of VarID (repeats are exponents).
//     Uninomial: a single exponent over one implicit variable.
//   - Term[C, M]: coefficient times exponent.
//   - Terms[C, M]: the polynomial. Terms are kept strictly descending by the
//     monomial order (total degree first; on ties the first differing
//     identifier decides and the smaller identifier is greater), with no
//     duplicate exponents and no zero coefficients.
//   - MPoly = Terms[Int, Monomial]: the bound polynomial handed to loopnest.
//
// Algorithms:
//
//   - DivRem / DivExact: single-divisor reduction by the leading term.
//   - Pseudorem: fraction-free remainder for univariate polynomials.
//   - Content / PrimPart / UnivariateGCD: subresultant remainder sequence.
//   - GCD: multivariate gcd by recursive elimination of the smallest
//     variable (PickVar, ToUnivariate, FromUnivariate).
//
// Values are immutable: every operation returns a new polynomial and never
// writes into the backing array of an argument.
//
// Complexity:
//
//   - Add/Sub:  O(n·m) worst case (linear canonical insertion), O(n+m) for
//     the common interleaved case.
//   - Mul:      O(n·m·(n+m)).
//   - DivRem:   O(q·d·(n+d)) for q quotient terms.
//
// Errors:
//
//   - ErrDivideByZero      DivRem with a zero divisor (panic)
//   - ErrInexactDivision   DivExact with a non-zero remainder (panic)
package poly
