package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polyloop/poly"
)

// Variable fixtures: x, y, z print as L, M, N.
var (
	x = poly.Var(0)
	y = poly.Var(1)
	z = poly.Var(2)
)

func c(v int64) poly.MPoly { return poly.Const(v) }

// assertPoly compares canonical forms and prints both sides on mismatch.
func assertPoly[C poly.Ring[C], M poly.Exponent[M]](t *testing.T, want, got poly.Terms[C, M]) {
	t.Helper()
	assert.Truef(t, want.Equal(got), "want %v, got %v", want, got)
}

// assertUpToSign accepts got == want or got == -want.
func assertUpToSign(t *testing.T, want, got poly.MPoly) {
	t.Helper()
	assert.Truef(t, want.Equal(got) || want.Neg().Equal(got), "want ±(%v), got %v", want, got)
}

// assertCanonical checks strict descending order without repeated exponents.
func assertCanonical[C poly.Ring[C], M poly.Exponent[M]](t *testing.T, p poly.Terms[C, M]) {
	t.Helper()
	for i := 0; i+1 < p.Len(); i++ {
		assert.Truef(t, p.At(i).LexGreater(p.At(i+1)), "terms %d,%d out of order in %v", i, i+1, p)
	}
	for i := 0; i < p.Len(); i++ {
		assert.False(t, p.At(i).IsZero(), "zero term in %v", p)
	}
}
