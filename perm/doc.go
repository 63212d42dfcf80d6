// SPDX-License-Identifier: MIT

// Package perm provides loop-order permutations and a level-structured
// enumerator for incremental legality search.
//
// What:
//
//   - Permutation maps a loop position to an original loop index and keeps
//     the inverse map alongside, so both directions are O(1). Swap updates
//     both sides at once; the inverse is never stale.
//   - LevelIterator fixes one position per level. At level lv it places each
//     element of the block [lv, n-numInterior) at position lv in turn, so a
//     caller can check position lv and skip the whole subtree when it fails.
//   - All and Partitioned drive the levels to enumerate complete orders.
//     Partitioned keeps the first numExterior loops in the first
//     numExterior positions: numExterior!·(n-numExterior)! orders.
//
// Ownership:
//
//	A Permutation is mutated in place by its enumerator. Give each concurrent
//	search its own Permutation and Clone any order that must outlive the
//	current iteration step.
//
// Errors:
//
//   - ErrNotPermutation  FromSlice input is not a bijection on [0, n)
package perm
