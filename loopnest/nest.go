// SPDX-License-Identifier: MIT

package loopnest

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/polyloop/poly"
)

// Nest is the read side shared by both nest kinds.
type Nest interface {
	NumLoops() int
	// UpperBound is the exclusive upper bound r_i of loop i before any
	// coupling is applied.
	UpperBound(i int) poly.MPoly
}

// RectangularLoopNest holds one exclusive upper bound per loop.
type RectangularLoopNest struct {
	bounds []poly.MPoly
}

// NewRectangular returns a nest of n loops with zero bounds.
func NewRectangular(n int) *RectangularLoopNest {
	if n < 0 {
		panic(fmt.Errorf("NewRectangular(%d): %w", n, ErrNegativeSize))
	}

	return &RectangularLoopNest{bounds: make([]poly.MPoly, n)}
}

// Rectangular builds a nest directly from its bounds.
func Rectangular(bounds ...poly.MPoly) *RectangularLoopNest {
	return &RectangularLoopNest{bounds: slices.Clone(bounds)}
}

func (r *RectangularLoopNest) NumLoops() int { return len(r.bounds) }

// UpperBound panics when i is out of range.
func (r *RectangularLoopNest) UpperBound(i int) poly.MPoly { return r.bounds[i] }

// SetUpperBound replaces the bound of loop i.
func (r *RectangularLoopNest) SetUpperBound(i int, b poly.MPoly) error {
	if i < 0 || i >= len(r.bounds) {
		return fmt.Errorf("SetUpperBound(%d) of %d loops: %w", i, len(r.bounds), ErrIndexOutOfRange)
	}
	r.bounds[i] = b

	return nil
}

// UpperBounds returns a copy of all bounds.
func (r *RectangularLoopNest) UpperBounds() []poly.MPoly { return slices.Clone(r.bounds) }

// TriangularLoopNest is a RectangularLoopNest plus a coupling matrix.
type TriangularLoopNest struct {
	rect *RectangularLoopNest
	a    *Coupling
}

// NewTriangular returns a nest of n loops with zero bounds and no coupling.
func NewTriangular(n int) *TriangularLoopNest {
	return &TriangularLoopNest{rect: NewRectangular(n), a: NewCoupling(n)}
}

func (t *TriangularLoopNest) NumLoops() int { return t.rect.NumLoops() }

func (t *TriangularLoopNest) UpperBound(i int) poly.MPoly { return t.rect.UpperBound(i) }

func (t *TriangularLoopNest) SetUpperBound(i int, b poly.MPoly) error {
	return t.rect.SetUpperBound(i, b)
}

// Rectangular exposes the uncoupled bounds r.
func (t *TriangularLoopNest) Rectangular() *RectangularLoopNest { return t.rect }

// Coupling exposes A for population and reading.
func (t *TriangularLoopNest) Coupling() *Coupling { return t.a }

// EffectiveUpperBounds resolves the coupling from the outside in:
// u_i = r_i - Σ_{j<i} A[j,i]·u_j. Each u_i bounds loop i over the whole
// domain once the outer loops sit at their own bounds.
// Complexity: O(n²) polynomial operations.
func (t *TriangularLoopNest) EffectiveUpperBounds() []poly.MPoly {
	n := t.NumLoops()
	u := make([]poly.MPoly, n)
	for i := 0; i < n; i++ {
		ui := t.rect.bounds[i]
		for j := 0; j < i; j++ {
			if aji := t.a.At(j, i); aji != 0 {
				ui = ui.Sub(u[j].Scale(poly.Int(aji)))
			}
		}
		u[i] = ui
	}

	return u
}
