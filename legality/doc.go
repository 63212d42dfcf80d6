// SPDX-License-Identifier: MIT

// Package legality decides whether two loop nests can be fused or
// reordered without changing the iteration set or its order.
//
// What:
//
//   - Compatible(a, b, pa, pb, ia, ib): loop position ia of nest a under
//     permutation pa against position ib of nest b under pb. The typed forms
//     CompatibleRR, CompatibleTR, CompatibleRT and CompatibleTT cover every
//     pairing of rectangular and triangular nests.
//   - OtherwiseIndependent, ZeroMinimum, UpperboundDominates and
//     ZeroInnerIterationsAtMaximum: the predicates the verdict is built from.
//   - Checker: the same decision with a Reason for every rejection, debug
//     logging through log/slog, and LegalOrders, a pruned search over the
//     permutations of one nest.
//
// How (triangular operand):
//
//  1. delta = r1(i1) - r2(i2).
//  2. For every outer loop j coupled to i, reject when j is already placed
//     and the other nest does not carry the same coefficient; a negative
//     coefficient folds -A[j,i]·r(j) and A[j,i] into delta (only if no other
//     loop depends on j); a positive one needs ZeroMinimum.
//  3. Coupled inner loops that are already placed must agree as well.
//  4. delta == 0 is compatible; delta == ∓1 is compatible only when
//     ZeroInnerIterationsAtMaximum holds for the nest with the extra
//     iteration; anything else is not.
//
// Every check is a pure predicate without an "unknown" answer. A missing
// proof is a rejection: the checker may forbid a legal transformation but
// never allows an illegal one.
//
// Contract violations (permutation length differs from the nest depth, a
// position out of range, an unknown Nest implementation) panic with
// ErrDimensionMismatch or ErrUnsupportedNest.
package legality
