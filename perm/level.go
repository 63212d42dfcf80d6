// SPDX-License-Identifier: MIT

package perm

import (
	"fmt"
	"iter"
)

// Subset describes the state after a LevelIterator step: positions
// [0, Level] are fixed for the subtree below, positions beyond remain free.
type Subset struct {
	Perm        *Permutation
	Level       int
	NumInterior int
}

// Child returns the iterator for the next level. numExterior is the size of
// the leading block that must stay in front; 0 means no partition.
func (s Subset) Child(numExterior int) *LevelIterator {
	return NewLevelIterator(s.Perm, s.Level+1, interiorAt(s.Perm.Len(), numExterior, s.Level+1))
}

// LevelIterator places every element of the block [level, end) at
// position level, one per Advance step, where end = n - numInterior.
type LevelIterator struct {
	perm  *Permutation
	level int
	end   int
	cur   int
}

// NewLevelIterator panics with ErrLevelOutOfRange when the block is empty.
func NewLevelIterator(p *Permutation, level, numInterior int) *LevelIterator {
	end := p.Len() - numInterior
	if level < 0 || level >= end {
		panic(fmt.Errorf("NewLevelIterator(level=%d, numInterior=%d, n=%d): %w",
			level, numInterior, p.Len(), ErrLevelOutOfRange))
	}

	return &LevelIterator{perm: p, level: level, end: end}
}

// Len is the number of Advance steps: the block size.
func (it *LevelIterator) Len() int { return it.end - it.level }

// Advance moves to step i (0 <= i < Len) and reports whether more steps
// remain. Steps must be taken in order, starting at 0, and the levels
// below must be restored before the next step.
func (it *LevelIterator) Advance(i int) (Subset, bool) {
	if i > 0 {
		// undo the previous placement, then bring element i forward
		it.perm.Swap(it.level, it.level+i-1)
		it.perm.Swap(it.level, it.level+i)
	}
	it.cur = i

	return Subset{Perm: it.perm, Level: it.level, NumInterior: it.perm.Len() - it.end}, i+1 < it.Len()
}

// Restore undoes the current step, leaving the block as it was before
// step 0.
func (it *LevelIterator) Restore() {
	it.perm.Swap(it.level, it.level+it.cur)
	it.cur = 0
}

// interiorAt is the interior size used at level lv: while lv is inside the
// exterior block the remaining loops are held back.
func interiorAt(n, numExterior, lv int) int {
	if numExterior > lv {
		return n - numExterior
	}

	return 0
}

// All yields every permutation of n loops. The yielded value is the
// enumerator's working permutation: Clone it to keep it.
func All(n int) iter.Seq[*Permutation] { return Partitioned(n, 0) }

// Partitioned yields every permutation of n loops that keeps loops
// [0, numExterior) in positions [0, numExterior).
func Partitioned(n, numExterior int) iter.Seq[*Permutation] {
	return func(yield func(*Permutation) bool) {
		Walk(New(n), numExterior, func(Subset) bool { return true }, yield)
	}
}

// Walk runs a depth-first search over the orders of p. keep is called
// after each placement and may prune the subtree by returning false; leaf
// receives every complete order and stops the walk by returning false.
// p is left as it was on entry when the walk completes.
func Walk(p *Permutation, numExterior int, keep func(Subset) bool, leaf func(*Permutation) bool) bool {
	if p.Len() == 0 {
		return leaf(p)
	}
	numExterior = min(max(numExterior, 0), p.Len())

	return walk(p, numExterior, 0, keep, leaf)
}

func walk(p *Permutation, numExterior, lv int, keep func(Subset) bool, leaf func(*Permutation) bool) bool {
	n := p.Len()
	it := NewLevelIterator(p, lv, interiorAt(n, numExterior, lv))
	for i := 0; i < it.Len(); i++ {
		s, _ := it.Advance(i)
		if !keep(s) {
			continue
		}
		var cont bool
		if lv+1 == n {
			cont = leaf(p)
		} else {
			cont = walk(p, numExterior, lv+1, keep, leaf)
		}
		if !cont {
			return false
		}
	}
	it.Restore()

	return true
}
