// SPDX-License-Identifier: MIT

package poly

import "strconv"

// Ring is the arithmetic capability required of a coefficient domain.
// Zero and One ignore their receiver so generic code can reach the
// identities through a zero value of the type parameter.
type Ring[T any] interface {
	IsZero() bool
	IsOne() bool
	Equal(T) bool
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	// Quo divides exactly, reporting false when the quotient does not
	// exist in the domain.
	Quo(T) (T, bool)
	Zero() T
	One() T
	String() string
}

// Int is the integer coefficient domain. Arithmetic wraps on overflow
// like int64.
type Int int64

func (Int) Zero() Int { return 0 }
func (Int) One() Int { return 1 }
func (a Int) IsZero() bool { return a == 0 }
func (a Int) IsOne() bool { return a == 1 }
func (a Int) Equal(b Int) bool { return a == b }
func (a Int) Add(b Int) Int { return a + b }
func (a Int) Sub(b Int) Int { return a - b }
func (a Int) Mul(b Int) Int { return a * b }
func (a Int) Neg() Int { return -a }
func (a Int) String() string { return strconv.FormatInt(int64(a), 10) }
func (a Int) Quo(b Int) (Int, bool) { return quoInt(a, b) }

func quoInt(a, b Int) (Int, bool) {
	if b == 0 || a%b != 0 {
		return 0, false
	}

	return a / b, true
}

// GCD returns the non-negative gcd of a and b; GCD(0, 0) == 0.
func (a Int) GCD(b Int) Int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Pow returns x^n by repeated squaring.
// Complexity: O(log n) multiplications.
func Pow[T Ring[T]](x T, n uint) T {
	acc := x.One()
	for n > 0 {
		if n&1 == 1 {
			acc = acc.Mul(x)
		}
		n >>= 1
		if n > 0 {
			x = x.Mul(x)
		}
	}

	return acc
}
