package legality_test

import (
	"testing"

	"github.com/katalvlaran/polyloop/legality"
	"github.com/katalvlaran/polyloop/loopnest"
	"github.com/katalvlaran/polyloop/perm"
	"github.com/katalvlaran/polyloop/poly"
)

// chain builds i_k < 1 + i_{k-1} below i_0 < N.
func chain(n int) *loopnest.TriangularLoopNest {
	t := loopnest.NewTriangular(n)
	_ = t.SetUpperBound(0, poly.Var(0))
	for k := 1; k < n; k++ {
		_ = t.SetUpperBound(k, poly.Const(1))
		_ = t.Coupling().Set(k-1, k, -1)
	}

	return t
}

func BenchmarkCompatibleTT(b *testing.B) {
	nest := chain(6)
	p := perm.New(6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		legality.CompatibleTT(nest, nest, p, p, 5, 5)
	}
}

func BenchmarkLegalOrders(b *testing.B) {
	bounds := make([]poly.MPoly, 7)
	for k := range bounds {
		bounds[k] = poly.Var(poly.VarID(k % 3))
	}
	r := loopnest.Rectangular(bounds...)
	p := perm.New(len(bounds))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = legality.LegalOrders(r, r, p)
	}
}
