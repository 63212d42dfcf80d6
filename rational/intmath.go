// SPDX-License-Identifier: MIT

package rational

import "math"

// gcd64 returns the non-negative greatest common divisor of a and b.
// gcd64(0, 0) == 0.
func gcd64(a, b int64) int64 {
	a, b = abs64(a), abs64(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// lcm64 returns the non-negative least common multiple of a and b.
func lcm64(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}

	return abs64(a / gcd64(a, b) * b)
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

// mulOK multiplies and reports whether the product fits in int64.
func mulOK(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return c, false
	}

	return c, c/b == a
}

// addOK adds and reports whether the sum fits in int64.
func addOK(a, b int64) (int64, bool) {
	c := a + b
	// overflow iff both operands share a sign the result does not
	return c, (a >= 0) != (b >= 0) || (c >= 0) == (a >= 0)
}
