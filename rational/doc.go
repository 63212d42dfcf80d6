// SPDX-License-Identifier: MIT

// Package rational implements exact, reduced fractions over int64.
//
// What:
//
//   - Rational{Num, Den}: a fraction kept in lowest terms with Den > 0.
//   - Add, Sub, Mul, Div, Neg, Inv: arithmetic that cancels common factors
//     before multiplying (divgcd), so intermediate values stay small.
//   - SafeAdd, SafeSub, SafeMul, SafeDiv: the same operations reporting
//     int64 overflow instead of wrapping.
//   - GCD: the domain gcd {gcd(numerators), lcm(denominators)}.
//
// Why:
//
//   - Rational is a coefficient domain for the poly package. It satisfies
//     poly.Ring[Rational], so univariate and multivariate polynomials can be
//     built over it without any adapter.
//
// The sentinel NoGCD:
//
//	GCD returns NoGCD = {1, 0} when both numerators are zero. The value breaks
//	the Den > 0 invariant on purpose and is never normalized; detect it with
//	IsNoGCD before using the result as a fraction.
//
// Complexity:
//
//   - Every operation is O(log min(|a|,|b|)) for the gcd steps.
//
// Errors:
//
//   - ErrDivideByZero  zero denominator or division by zero
//   - ErrOverflow      an int64 intermediate overflowed (Safe* only)
package rational
