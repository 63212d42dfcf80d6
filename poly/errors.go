// SPDX-License-Identifier: MIT

package poly

import "errors"

// Both errors are panic values: they mark caller bugs, not runtime
// conditions. Quo is the non-panicking form of exact division.
var (
	// ErrDivideByZero is raised by DivRem and DivExact for a zero divisor.
	ErrDivideByZero = errors.New("poly: division by zero polynomial")

	// ErrInexactDivision is raised by DivExact when the remainder is non-zero.
	ErrInexactDivision = errors.New("poly: division is not exact")
)
