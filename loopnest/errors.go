// SPDX-License-Identifier: MIT

package loopnest

import "errors"

var (
	// ErrIndexOutOfRange indicates a loop or matrix index outside [0, n).
	ErrIndexOutOfRange = errors.New("loopnest: index out of range")

	// ErrDimensionMismatch indicates a constraint row whose length is not
	// the number of loops.
	ErrDimensionMismatch = errors.New("loopnest: dimension mismatch")

	// ErrAsymmetric indicates a coupling matrix with A[i,j] != A[j,i].
	ErrAsymmetric = errors.New("loopnest: coupling matrix is not symmetric")

	// ErrParse indicates malformed matrix text.
	ErrParse = errors.New("loopnest: cannot parse matrix")

	// ErrNotTriangular indicates affine constraints that are not zero-based
	// with one unit upper bound per loop over outer loops only.
	ErrNotTriangular = errors.New("loopnest: nest is not triangular")

	// ErrNegativeSize is the panic value of the constructors.
	ErrNegativeSize = errors.New("loopnest: negative number of loops")
)
