// SPDX-License-Identifier: MIT

package perm

import "errors"

var (
	// ErrNotPermutation indicates that a slice is not a bijection on [0, n).
	ErrNotPermutation = errors.New("perm: not a permutation")

	// ErrLevelOutOfRange is the panic value for an iterator built outside
	// the permutation.
	ErrLevelOutOfRange = errors.New("perm: level out of range")
)
