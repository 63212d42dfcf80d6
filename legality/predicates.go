// SPDX-License-Identifier: MIT

package legality

import (
	"github.com/katalvlaran/polyloop/loopnest"
	"github.com/katalvlaran/polyloop/perm"
	"github.com/katalvlaran/polyloop/poly"
)

// OtherwiseIndependent reports whether no loop other than i and j itself
// couples to loop j.
func OtherwiseIndependent(a *loopnest.Coupling, j, i int) bool {
	for k := 0; k < a.Size(); k++ {
		if k != i && k != j && a.At(k, j) != 0 {
			return false
		}
	}

	return true
}

// ZeroMinimum reports whether loop j, placed at position pj of p, provably
// starts at zero. A negative A[k,j] with k > j gives j a lower bound in k;
// that is harmless only if k is not placed before j and has a zero minimum
// itself.
func ZeroMinimum(a *loopnest.Coupling, j, pj int, p *perm.Permutation) bool {
	for k := j + 1; k < a.Size(); k++ {
		if a.At(k, j) >= 0 {
			continue
		}
		pk := p.Inv(k)
		if pk < pj {
			return false
		}
		if !ZeroMinimum(a, k, pk, p) {
			return false
		}
	}

	return true
}

// UpperboundDominates reports whether ubi - ubj has no negative
// coefficient, i.e. ubi >= ubj for all non-negative parameters.
func UpperboundDominates(ubi, ubj poly.MPoly) bool {
	for _, t := range ubi.Sub(ubj).Each() {
		if t.Coef < 0 {
			return false
		}
	}

	return true
}

// ZeroInnerIterationsAtMaximum reports whether loop i of the nest (a, r)
// has a coupled loop whose bound ub dominates: at the iteration where the
// bounds disagree by one, that loop then runs zero times, so the extra
// iteration executes nothing.
func ZeroInnerIterationsAtMaximum(a *loopnest.Coupling, ub poly.MPoly, r loopnest.Nest, i int) bool {
	for j := 0; j < i; j++ {
		if a.At(i, j) >= 0 {
			continue
		}
		if UpperboundDominates(ub, r.UpperBound(j)) {
			return true
		}
	}
	for j := i + 1; j < a.Size(); j++ {
		if a.At(i, j) <= 0 {
			continue
		}
		if UpperboundDominates(ub, r.UpperBound(j)) {
			return true
		}
	}

	return false
}
