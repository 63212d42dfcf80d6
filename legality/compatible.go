// SPDX-License-Identifier: MIT

package legality

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/polyloop/loopnest"
	"github.com/katalvlaran/polyloop/perm"
	"github.com/katalvlaran/polyloop/poly"
)

// Reason names the check that rejected a pair of loop positions.
type Reason uint8

const (
	// ReasonNone accompanies a legal verdict.
	ReasonNone Reason = iota
	// ReasonBoundMismatch: the bound difference is neither zero nor an
	// extra iteration that provably executes nothing.
	ReasonBoundMismatch
	// ReasonPlacedTooEarly: a coupled loop sits at an earlier position than
	// its bound allows.
	ReasonPlacedTooEarly
	// ReasonCouplingMismatch: a loop placed earlier in both nests carries
	// different coefficients.
	ReasonCouplingMismatch
	// ReasonDependentLoop: a lower-bound loop has further dependents.
	ReasonDependentLoop
	// ReasonNonZeroMinimum: a coupled loop may not start at zero.
	ReasonNonZeroMinimum
)

var reasonNames = [...]string{
	ReasonNone:             "none",
	ReasonBoundMismatch:    "bound mismatch",
	ReasonPlacedTooEarly:   "placed too early",
	ReasonCouplingMismatch: "coupling mismatch",
	ReasonDependentLoop:    "dependent loop",
	ReasonNonZeroMinimum:   "non-zero minimum",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}

	return fmt.Sprintf("Reason(%d)", uint8(r))
}

// Verdict is the outcome of a compatibility check.
type Verdict struct {
	Legal  bool
	Reason Reason
	// Loop is the original index of the loop that triggered the
	// rejection, or -1 when the bounds alone decided.
	Loop int
}

var legal = Verdict{Legal: true, Reason: ReasonNone, Loop: -1}

func reject(r Reason, loop int) Verdict { return Verdict{Reason: r, Loop: loop} }

// Checker answers compatibility queries. The zero value is not usable;
// construct with NewChecker. A Checker is safe for concurrent use.
type Checker struct {
	opts Options
}

// NewChecker returns a Checker configured by opts.
func NewChecker(opts ...Option) *Checker {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Checker{opts: o}
}

var defaultChecker = NewChecker()

// Compatible reports whether position ia of nest a under pa may be fused
// with position ib of nest b under pb.
//
// Panics with ErrDimensionMismatch or ErrUnsupportedNest on contract
// violations.
func (c *Checker) Compatible(a, b loopnest.Nest, pa, pb *perm.Permutation, ia, ib int) bool {
	return c.Explain(a, b, pa, pb, ia, ib).Legal
}

// Explain is Compatible with the reason for a rejection.
func (c *Checker) Explain(a, b loopnest.Nest, pa, pb *perm.Permutation, ia, ib int) Verdict {
	validate(a, pa, ia)
	validate(b, pb, ib)

	var v Verdict
	switch na := a.(type) {
	case *loopnest.RectangularLoopNest:
		switch nb := b.(type) {
		case *loopnest.RectangularLoopNest:
			v = explainRR(na, nb, pa, pb, ia, ib)
		case *loopnest.TriangularLoopNest:
			v = explainTR(nb, na, pb, pa, ib, ia)
		default:
			panic(fmt.Errorf("%T: %w", b, ErrUnsupportedNest))
		}
	case *loopnest.TriangularLoopNest:
		switch nb := b.(type) {
		case *loopnest.RectangularLoopNest:
			v = explainTR(na, nb, pa, pb, ia, ib)
		case *loopnest.TriangularLoopNest:
			v = explainTT(na, nb, pa, pb, ia, ib)
		default:
			panic(fmt.Errorf("%T: %w", b, ErrUnsupportedNest))
		}
	default:
		panic(fmt.Errorf("%T: %w", a, ErrUnsupportedNest))
	}

	if !v.Legal && c.opts.Logger != nil {
		c.opts.Logger.Debug("incompatible loop positions",
			slog.Int("posA", ia),
			slog.Int("posB", ib),
			slog.String("reason", v.Reason.String()),
			slog.Int("loop", v.Loop))
	}

	return v
}

func validate(n loopnest.Nest, p *perm.Permutation, pos int) {
	if p.Len() != n.NumLoops() {
		panic(fmt.Errorf("permutation of %d for %d loops: %w", p.Len(), n.NumLoops(), ErrDimensionMismatch))
	}
	if pos < 0 || pos >= p.Len() {
		panic(fmt.Errorf("position %d of %d: %w", pos, p.Len(), ErrDimensionMismatch))
	}
}

// Compatible dispatches on the concrete nest kinds. See Checker.Compatible.
func Compatible(a, b loopnest.Nest, pa, pb *perm.Permutation, ia, ib int) bool {
	return defaultChecker.Compatible(a, b, pa, pb, ia, ib)
}

// CompatibleRR compares two rectangular nests: the bounds must be equal.
func CompatibleRR(a, b *loopnest.RectangularLoopNest, pa, pb *perm.Permutation, ia, ib int) bool {
	return defaultChecker.Compatible(a, b, pa, pb, ia, ib)
}

// CompatibleTR compares a triangular nest with a rectangular one.
func CompatibleTR(a *loopnest.TriangularLoopNest, b *loopnest.RectangularLoopNest, pa, pb *perm.Permutation, ia, ib int) bool {
	return defaultChecker.Compatible(a, b, pa, pb, ia, ib)
}

// CompatibleRT is CompatibleTR with the operands swapped.
func CompatibleRT(a *loopnest.RectangularLoopNest, b *loopnest.TriangularLoopNest, pa, pb *perm.Permutation, ia, ib int) bool {
	return defaultChecker.Compatible(a, b, pa, pb, ia, ib)
}

// CompatibleTT compares two triangular nests.
func CompatibleTT(a, b *loopnest.TriangularLoopNest, pa, pb *perm.Permutation, ia, ib int) bool {
	return defaultChecker.Compatible(a, b, pa, pb, ia, ib)
}

func explainRR(a, b *loopnest.RectangularLoopNest, pa, pb *perm.Permutation, ia, ib int) Verdict {
	if a.UpperBound(pa.At(ia)).Equal(b.UpperBound(pb.At(ib))) {
		return legal
	}

	return reject(ReasonBoundMismatch, -1)
}

func explainTR(t *loopnest.TriangularLoopNest, r *loopnest.RectangularLoopNest, pt, pr *perm.Permutation, it, ir int) Verdict {
	i := pt.At(it)
	a := t.Coupling()
	ub := r.UpperBound(pr.At(ir))
	delta := t.UpperBound(i).Sub(ub)

	for j := 0; j < i; j++ {
		aji := a.At(j, i)
		if aji == 0 {
			continue
		}
		pj := pt.Inv(j)
		if pj < it {
			return reject(ReasonPlacedTooEarly, j)
		}
		if aji < 0 {
			if !OtherwiseIndependent(a, j, i) {
				return reject(ReasonDependentLoop, j)
			}
			delta = foldLowerBound(delta, t.UpperBound(j), aji)
		} else if !ZeroMinimum(a, j, pj, pt) {
			return reject(ReasonNonZeroMinimum, j)
		}
	}
	for j := i + 1; j < a.Size(); j++ {
		if a.At(j, i) != 0 && pt.Inv(j) < it {
			return reject(ReasonPlacedTooEarly, j)
		}
	}

	switch unitOffset(delta) {
	case 0:
		return legal
	case -1:
		if ZeroInnerIterationsAtMaximum(a, ub, t, i) {
			return legal
		}
	}

	return reject(ReasonBoundMismatch, -1)
}

func explainTT(t1, t2 *loopnest.TriangularLoopNest, p1, p2 *perm.Permutation, pos1, pos2 int) Verdict {
	i1, i2 := p1.At(pos1), p2.At(pos2)
	ub1, ub2 := t1.UpperBound(i1), t2.UpperBound(i2)

	if v := checkRemainingBound(t1, t2, p1, p2, pos1, i2); !v.Legal {
		return v
	}
	if v := checkRemainingBound(t2, t1, p2, p1, pos2, i1); !v.Legal {
		return v
	}

	delta := ub1.Sub(ub2)
	delta, v := updateBoundDifference(delta, t1, t2, p1, p2, pos1, i2, false)
	if !v.Legal {
		return v
	}
	delta, v = updateBoundDifference(delta, t2, t1, p2, p1, pos2, i1, true)
	if !v.Legal {
		return v
	}

	switch unitOffset(delta) {
	case 0:
		return legal
	case -1:
		if ZeroInnerIterationsAtMaximum(t1.Coupling(), ub2, t1, i1) {
			return legal
		}
	case 1:
		if ZeroInnerIterationsAtMaximum(t2.Coupling(), ub1, t2, i2) {
			return legal
		}
	}

	return reject(ReasonBoundMismatch, -1)
}

// checkRemainingBound walks the loops inside i1 in t1. Any of them placed
// before position pos1 must carry the same coefficient in t2.
func checkRemainingBound(t1, t2 *loopnest.TriangularLoopNest, p1, p2 *perm.Permutation, pos1, i2 int) Verdict {
	i1 := p1.At(pos1)
	a1 := t1.Coupling()
	for j := i1 + 1; j < a1.Size(); j++ {
		aji := a1.At(j, i1)
		if aji == 0 {
			continue
		}
		if pj := p1.Inv(j); pj < pos1 && !sameCoupling(t2, p2, pj, i2, aji) {
			return reject(ReasonCouplingMismatch, j)
		}
	}

	return legal
}

// updateBoundDifference folds the outer loops of i1 into delta. flip
// negates their contribution for the second operand.
func updateBoundDifference(delta poly.MPoly, t1, t2 *loopnest.TriangularLoopNest, p1, p2 *perm.Permutation, pos1, i2 int, flip bool) (poly.MPoly, Verdict) {
	i1 := p1.At(pos1)
	a1 := t1.Coupling()
	for j := 0; j < i1; j++ {
		aji := a1.At(j, i1)
		if aji == 0 {
			continue
		}
		pj := p1.Inv(j)
		if pj < pos1 && !sameCoupling(t2, p2, pj, i2, aji) {
			return delta, reject(ReasonCouplingMismatch, j)
		}
		if aji < 0 {
			if !OtherwiseIndependent(a1, j, i1) {
				return delta, reject(ReasonDependentLoop, j)
			}
			if flip {
				aji = -aji
			}
			delta = foldLowerBound(delta, t1.UpperBound(j), aji)
		} else if !ZeroMinimum(a1, j, pj, p1) {
			return delta, reject(ReasonNonZeroMinimum, j)
		}
	}

	return delta, legal
}

// sameCoupling reports whether the loop t occupies at position pos couples
// to loop i with coefficient want. A position past t's depth never matches.
func sameCoupling(t *loopnest.TriangularLoopNest, p *perm.Permutation, pos, i int, want int64) bool {
	if pos >= p.Len() {
		return false
	}

	return t.Coupling().At(p.At(pos), i) == want
}

// foldLowerBound accounts for i >= -a·j with j < ub: delta - a·ub + a.
func foldLowerBound(delta, ub poly.MPoly, a int64) poly.MPoly {
	return delta.Sub(ub.Scale(poly.Int(a))).AddConst(poly.Int(a))
}

// unitOffset classifies delta: 0 for zero, ±1 for that constant, 2 for
// anything else.
func unitOffset(delta poly.MPoly) int {
	if delta.IsZero() {
		return 0
	}
	if c, ok := poly.ConstantValue(delta); ok && (c == 1 || c == -1) {
		return int(c)
	}

	return 2
}
