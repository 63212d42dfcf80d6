// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"math/big"
)

// Rational is a fraction Num/Den. Values built through New or the
// arithmetic methods are reduced and have Den > 0. The zero value {0, 0}
// is not a valid fraction; use Zero() or FromInt(0).
type Rational struct {
	Num int64
	Den int64
}

// NoGCD is the {1, 0} marker returned by GCD when no finite gcd exists.
var NoGCD = Rational{Num: 1, Den: 0}

// New returns n/d in lowest terms with a positive denominator.
// It panics with ErrDivideByZero when d == 0.
func New(n, d int64) Rational {
	if d == 0 {
		panic(fmt.Errorf("New(%d, 0): %w", n, ErrDivideByZero))
	}

	return reduce(n, d)
}

// FromInt returns n/1.
func FromInt(n int64) Rational { return Rational{Num: n, Den: 1} }

// Zero returns 0/1. The receiver is ignored; the method form lets generic
// code obtain the additive identity from a type parameter.
func (Rational) Zero() Rational { return Rational{Num: 0, Den: 1} }

// One returns 1/1. The receiver is ignored.
func (Rational) One() Rational { return Rational{Num: 1, Den: 1} }

// reduce divides out the common factor and moves the sign to Num.
// d must be non-zero.
func reduce(n, d int64) Rational {
	if n == 0 {
		return Rational{Num: 0, Den: 1}
	}
	g := gcd64(n, d)
	n, d = n/g, d/g
	if d < 0 {
		n, d = -n, -d
	}

	return Rational{Num: n, Den: d}
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.Num == 0 }

// IsOne reports whether r == 1.
func (r Rational) IsOne() bool { return r.Num == r.Den && r.Den != 0 }

// IsInteger reports whether the denominator is 1.
func (r Rational) IsInteger() bool { return r.Den == 1 }

// IsNoGCD reports whether r is the NoGCD marker.
func (r Rational) IsNoGCD() bool { return r.Den == 0 }

// Equal compares two reduced fractions field by field.
func (r Rational) Equal(o Rational) bool { return r.Num == o.Num && r.Den == o.Den }

// Neg returns -r.
func (r Rational) Neg() Rational { return Rational{Num: -r.Num, Den: r.Den} }

// Inv returns 1/r. It panics with ErrDivideByZero when r == 0.
func (r Rational) Inv() Rational {
	if r.Num == 0 {
		panic(fmt.Errorf("Inv(%v): %w", r, ErrDivideByZero))
	}
	if r.Num < 0 {
		return Rational{Num: -r.Den, Den: -r.Num}
	}

	return Rational{Num: r.Den, Den: r.Num}
}

// Add returns r + o. Overflow wraps like int64 arithmetic; use SafeAdd
// when operands are not known to be small.
func (r Rational) Add(o Rational) Rational {
	s, _ := add(r, o)

	return s
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	s, _ := add(r, o.Neg())

	return s
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	p, _ := mul(r, o)

	return p
}

// Div returns r / o. It panics with ErrDivideByZero when o == 0.
func (r Rational) Div(o Rational) Rational {
	return r.Mul(o.Inv())
}

// Quo is the exact division used by polynomial code: it fails only
// when o is zero.
func (r Rational) Quo(o Rational) (Rational, bool) {
	if o.IsZero() {
		return Rational{}, false
	}

	return r.Div(o), true
}

// SafeAdd returns r + o or ErrOverflow.
func (r Rational) SafeAdd(o Rational) (Rational, error) {
	s, ok := add(r, o)
	if !ok {
		return Rational{}, fmt.Errorf("SafeAdd(%v, %v): %w", r, o, ErrOverflow)
	}

	return s, nil
}

// SafeSub returns r - o or ErrOverflow.
func (r Rational) SafeSub(o Rational) (Rational, error) {
	s, ok := add(r, o.Neg())
	if !ok {
		return Rational{}, fmt.Errorf("SafeSub(%v, %v): %w", r, o, ErrOverflow)
	}

	return s, nil
}

// SafeMul returns r * o or ErrOverflow.
func (r Rational) SafeMul(o Rational) (Rational, error) {
	p, ok := mul(r, o)
	if !ok {
		return Rational{}, fmt.Errorf("SafeMul(%v, %v): %w", r, o, ErrOverflow)
	}

	return p, nil
}

// SafeDiv returns r / o, ErrDivideByZero or ErrOverflow.
func (r Rational) SafeDiv(o Rational) (Rational, error) {
	if o.IsZero() {
		return Rational{}, fmt.Errorf("SafeDiv(%v, %v): %w", r, o, ErrDivideByZero)
	}
	p, ok := mul(r, o.Inv())
	if !ok {
		return Rational{}, fmt.Errorf("SafeDiv(%v, %v): %w", r, o, ErrOverflow)
	}

	return p, nil
}

// add computes a/b + c/d as (a*(d/g) + c*(b/g)) / (b/g*d) with g = gcd(b, d).
func add(x, y Rational) (Rational, bool) {
	g := gcd64(x.Den, y.Den)
	dx, dy := x.Den/g, y.Den/g
	l, ok1 := mulOK(x.Num, dy)
	rr, ok2 := mulOK(y.Num, dx)
	n, ok3 := addOK(l, rr)
	d, ok4 := mulOK(x.Den, dy)

	return reduce(n, d), ok1 && ok2 && ok3 && ok4
}

// mul cross-cancels before multiplying: (a/g1)*(c/g2) / ((b/g2)*(d/g1)).
func mul(x, y Rational) (Rational, bool) {
	g1 := gcd64(x.Num, y.Den)
	g2 := gcd64(y.Num, x.Den)
	if g1 == 0 {
		g1 = 1
	}
	if g2 == 0 {
		g2 = 1
	}
	n, ok1 := mulOK(x.Num/g1, y.Num/g2)
	d, ok2 := mulOK(x.Den/g2, y.Den/g1)

	return reduce(n, d), ok1 && ok2
}

// Cmp returns -1, 0 or +1 as r is less than, equal to or greater than o.
// The cross products are formed in arbitrary precision.
func (r Rational) Cmp(o Rational) int {
	lhs := new(big.Int).Mul(big.NewInt(r.Num), big.NewInt(o.Den))
	rhs := new(big.Int).Mul(big.NewInt(o.Num), big.NewInt(r.Den))

	return lhs.Cmp(rhs)
}

// Less reports whether r < o.
func (r Rational) Less(o Rational) bool { return r.Cmp(o) < 0 }

// GCD returns {gcd(r.Num, o.Num), lcm(r.Den, o.Den)}, or NoGCD when both
// numerators are zero.
func (r Rational) GCD(o Rational) Rational {
	return GCD(r, o)
}

// GCD is the package-level form of Rational.GCD.
func GCD(a, b Rational) Rational {
	n := gcd64(a.Num, b.Num)
	if n == 0 {
		return NoGCD
	}

	return Rational{Num: n, Den: lcm64(a.Den, b.Den)}
}

// String formats r as "n" or "n/d".
func (r Rational) String() string {
	if r.Den == 1 {
		return fmt.Sprintf("%d", r.Num)
	}

	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}
