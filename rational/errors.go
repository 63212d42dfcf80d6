// SPDX-License-Identifier: MIT

package rational

import "errors"

var (
	// ErrDivideByZero is reported by SafeDiv and used as the panic value of
	// New, Div and Inv when a zero denominator would be produced.
	ErrDivideByZero = errors.New("rational: division by zero")

	// ErrOverflow is reported by the Safe* operations when an int64
	// intermediate does not fit.
	ErrOverflow = errors.New("rational: int64 overflow")
)
