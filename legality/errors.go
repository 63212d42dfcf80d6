// SPDX-License-Identifier: MIT

package legality

import "errors"

var (
	// ErrDimensionMismatch indicates permutations, positions or nests whose
	// sizes do not agree. Compatible panics with it; LegalOrders returns it.
	ErrDimensionMismatch = errors.New("legality: dimension mismatch")

	// ErrUnsupportedNest indicates a loopnest.Nest that is neither
	// rectangular nor triangular.
	ErrUnsupportedNest = errors.New("legality: unsupported nest kind")
)

// Panic messages for nonsensical option values.
const (
	panicNegativeMaxResults = "legality: WithMaxResults(n) requires n >= 0"
)
