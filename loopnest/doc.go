// SPDX-License-Identifier: MIT

// Package loopnest models the iteration domains that the legality checker
// compares.
//
// What:
//
//   - RectangularLoopNest: loop i runs 0 <= i_i < UpperBound(i); each bound
//     is a poly.MPoly over non-negative symbolic parameters.
//   - TriangularLoopNest: the rectangular bounds r plus a symmetric integer
//     Coupling A. Loop i runs 0 <= i_i < r_i - Σ_{j<i} A[j,i]·i_j, so a
//     non-zero A[j,i] couples the bound of the inner loop i to the outer
//     loop j.
//   - Coupling: the symmetric matrix itself. It stores one half, so
//     At(i, j) == At(j, i) holds by construction.
//   - AffineLoopNest: raw constraint rows a·i <= b as produced by bound
//     extraction, with Triangular() recovering the triangular form.
//
// Bounds are mutable while a nest is populated and read-only by convention
// once it is handed to the legality checker.
//
// Errors:
//
//   - ErrIndexOutOfRange    loop or matrix index outside [0, n)
//   - ErrDimensionMismatch  constraint row length differs from the nest depth
//   - ErrAsymmetric         parsed coupling matrix is not symmetric
//   - ErrParse              malformed coupling matrix text
//   - ErrNotTriangular      affine constraints have no triangular form
package loopnest
