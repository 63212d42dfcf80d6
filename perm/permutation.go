// SPDX-License-Identifier: MIT

package perm

import (
	"fmt"
	"slices"
)

// Permutation maps position -> loop (fwd) and loop -> position (inv).
type Permutation struct {
	fwd []int
	inv []int
}

// New returns the identity permutation on n loops.
func New(n int) *Permutation {
	p := &Permutation{fwd: make([]int, n), inv: make([]int, n)}
	for i := range p.fwd {
		p.fwd[i] = i
		p.inv[i] = i
	}

	return p
}

// FromSlice builds the permutation whose position i holds order[i].
// Stage 1 (Validate): every value in [0, n) appears exactly once.
// Stage 2 (Build): fill both directions.
func FromSlice(order []int) (*Permutation, error) {
	n := len(order)
	p := &Permutation{fwd: slices.Clone(order), inv: make([]int, n)}
	seen := make([]bool, n)
	for i, v := range order {
		if v < 0 || v >= n || seen[v] {
			return nil, fmt.Errorf("FromSlice(%v): position %d: %w", order, i, ErrNotPermutation)
		}
		seen[v] = true
		p.inv[v] = i
	}

	return p, nil
}

// Len is the number of loops.
func (p *Permutation) Len() int { return len(p.fwd) }

// At returns the loop placed at position i.
func (p *Permutation) At(i int) int { return p.fwd[i] }

// Inv returns the position of loop j.
func (p *Permutation) Inv(j int) int { return p.inv[j] }

// Swap exchanges the loops at positions i and j.
func (p *Permutation) Swap(i, j int) {
	xi, xj := p.fwd[i], p.fwd[j]
	p.fwd[i], p.fwd[j] = xj, xi
	p.inv[xj] = i
	p.inv[xi] = j
}

// Clone returns an independent copy.
func (p *Permutation) Clone() *Permutation {
	return &Permutation{fwd: slices.Clone(p.fwd), inv: slices.Clone(p.inv)}
}

// Equal reports whether both permutations place the same loops.
func (p *Permutation) Equal(o *Permutation) bool { return slices.Equal(p.fwd, o.fwd) }

// Slice returns a copy of the position -> loop map.
func (p *Permutation) Slice() []int { return slices.Clone(p.fwd) }

// String renders the order, e.g. "[2 0 1]".
func (p *Permutation) String() string { return fmt.Sprint(p.fwd) }
