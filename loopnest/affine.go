// SPDX-License-Identifier: MIT

package loopnest

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/polyloop/poly"
)

// Constraint is the row Σ_k Coeffs[k]·i_k <= Bound.
type Constraint struct {
	Coeffs []int64
	Bound  poly.MPoly
}

// AffineLoopNest is a loop nest given as raw constraint rows.
type AffineLoopNest struct {
	numLoops int
	rows     []Constraint
}

// NewAffine returns an unconstrained nest of n loops.
func NewAffine(n int) *AffineLoopNest {
	if n < 0 {
		panic(fmt.Errorf("NewAffine(%d): %w", n, ErrNegativeSize))
	}

	return &AffineLoopNest{numLoops: n}
}

func (a *AffineLoopNest) NumLoops() int { return a.numLoops }

// AddConstraint appends coeffs·i <= bound.
func (a *AffineLoopNest) AddConstraint(coeffs []int64, bound poly.MPoly) error {
	if len(coeffs) != a.numLoops {
		return fmt.Errorf("AddConstraint: %d coefficients for %d loops: %w",
			len(coeffs), a.numLoops, ErrDimensionMismatch)
	}
	a.rows = append(a.rows, Constraint{Coeffs: slices.Clone(coeffs), Bound: bound})

	return nil
}

// Constraints returns the rows in insertion order.
func (a *AffineLoopNest) Constraints() []Constraint { return slices.Clone(a.rows) }

// Triangular recovers the triangular form.
//
// Stage 1 (Classify): each row belongs to its innermost loop k (the last
// non-zero coefficient). -i_k <= 0 is the lower bound of k; a row with
// coefficient +1 on k is its upper bound; rows without loops only
// constrain parameters and are skipped.
// Stage 2 (Build): i_k + Σ_{j<k} a_j·i_j <= b becomes r_k = b + 1 and
// A[j,k] = a_j.
// Stage 3 (Validate): every loop has exactly one lower and one upper bound.
func (a *AffineLoopNest) Triangular() (*TriangularLoopNest, error) {
	n := a.numLoops
	t := NewTriangular(n)
	hasLower := make([]bool, n)
	hasUpper := make([]bool, n)

	for ri, row := range a.rows {
		k := -1
		for j := n - 1; j >= 0; j-- {
			if row.Coeffs[j] != 0 {
				k = j
				break
			}
		}
		switch {
		case k < 0:
			continue
		case row.Coeffs[k] == -1 && isLowerBound(row, k):
			hasLower[k] = true
		case row.Coeffs[k] == 1:
			if hasUpper[k] {
				return nil, fmt.Errorf("Triangular: row %d: second upper bound for loop %d: %w", ri, k, ErrNotTriangular)
			}
			hasUpper[k] = true
			t.rect.bounds[k] = row.Bound.AddConst(1)
			for j := 0; j < k; j++ {
				t.a.data[k*(k+1)/2+j] = row.Coeffs[j]
			}
		default:
			return nil, fmt.Errorf("Triangular: row %d: coefficient %d on loop %d: %w",
				ri, row.Coeffs[k], k, ErrNotTriangular)
		}
	}
	for k := 0; k < n; k++ {
		if !hasLower[k] || !hasUpper[k] {
			return nil, fmt.Errorf("Triangular: loop %d lacks a zero lower bound or an upper bound: %w", k, ErrNotTriangular)
		}
	}

	return t, nil
}

// isLowerBound reports whether row is exactly -i_k <= 0.
func isLowerBound(row Constraint, k int) bool {
	for j, v := range row.Coeffs {
		if j != k && v != 0 {
			return false
		}
	}

	return row.Bound.IsZero()
}
