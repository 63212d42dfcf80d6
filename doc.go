// SPDX-License-Identifier: MIT

// Package polyloop is the algebraic core of a loop-nest optimizer: exact
// arithmetic, symbolic loop bounds and the legality test for fusing or
// reordering loops.
//
// Everything is organized under five subpackages:
//
//	rational/  exact fractions over int64 with overflow-checked variants
//	poly/      canonical sparse polynomials, division, pseudo-remainder,
//	           content and multivariate GCD
//	perm/      permutations with a maintained inverse and a pruned
//	           level-by-level enumerator
//	loopnest/  rectangular, triangular and affine loop nests with symbolic
//	           bounds
//	legality/  compatibility of loop positions across two nests and the
//	           search for legal orders
//
// Quick example: the nest
//
//	for i in 0:I-1
//	    for j in 0:i
//
// is a TriangularLoopNest with bounds [I, 1] and coupling A[0,1] = -1,
// i.e. j < 1 + i. Its outer loop can be fused with the outer loop of an
// I×I rectangle; its inner loop cannot.
//
// All values are immutable or owned by their caller; the packages hold no
// global mutable state and need no locking.
package polyloop
