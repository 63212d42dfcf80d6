package legality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyloop/legality"
	"github.com/katalvlaran/polyloop/loopnest"
	"github.com/katalvlaran/polyloop/perm"
	"github.com/katalvlaran/polyloop/poly"
)

var (
	pI = poly.Var(0)
	pJ = poly.Var(1)
)

func coupling(t *testing.T, s string) *loopnest.Coupling {
	t.Helper()
	a, err := loopnest.ParseCoupling(s)
	require.NoError(t, err)

	return a
}

func permutation(t *testing.T, order ...int) *perm.Permutation {
	t.Helper()
	p, err := perm.FromSlice(order)
	require.NoError(t, err)

	return p
}

func TestOtherwiseIndependent(t *testing.T) {
	a := coupling(t, "[0 0 -1; 0 0 0; -1 0 0]")
	assert.True(t, legality.OtherwiseIndependent(a, 0, 2))

	a = coupling(t, "[0 2 -1; 2 0 0; -1 0 0]")
	assert.False(t, legality.OtherwiseIndependent(a, 0, 2))
	assert.False(t, legality.OtherwiseIndependent(a, 0, 1), "loop 2 still couples to 0")
}

func TestZeroMinimum(t *testing.T) {
	// A[2,1] < 0: loop 1 has a lower bound in loop 2.
	a := coupling(t, "[0 0 0; 0 0 -1; 0 -1 0]")

	id := perm.New(3)
	assert.True(t, legality.ZeroMinimum(a, 1, id.Inv(1), id))

	p := permutation(t, 0, 2, 1)
	assert.False(t, legality.ZeroMinimum(a, 1, p.Inv(1), p), "loop 2 placed before loop 1")

	assert.True(t, legality.ZeroMinimum(coupling(t, "[0 1; 1 0]"), 0, 0, perm.New(2)),
		"positive couplings are upper bounds")
}

func TestZeroMinimum_Chain(t *testing.T) {
	// 0 <- 1 <- 2: loop 2 placed before loop 1 breaks the chain from 0.
	a := coupling(t, "[0 -1 0; -1 0 -1; 0 -1 0]")
	assert.True(t, legality.ZeroMinimum(a, 0, 0, perm.New(3)))

	p := permutation(t, 0, 2, 1)
	assert.False(t, legality.ZeroMinimum(a, 0, 0, p))
}

func TestUpperboundDominates(t *testing.T) {
	assert.True(t, legality.UpperboundDominates(pI.AddConst(1), pI))
	assert.True(t, legality.UpperboundDominates(pI, pI))
	assert.True(t, legality.UpperboundDominates(pI.Scale(2), pI))
	assert.False(t, legality.UpperboundDominates(pI, pI.AddConst(1)))
	assert.False(t, legality.UpperboundDominates(pI, pJ))
}

func TestZeroInnerIterationsAtMaximum(t *testing.T) {
	a := coupling(t, "[0 -1; -1 0]")

	assert.True(t, legality.ZeroInnerIterationsAtMaximum(a, pI, loopnest.Rectangular(pI, pI), 1))
	assert.False(t, legality.ZeroInnerIterationsAtMaximum(a, pI, loopnest.Rectangular(pI.AddConst(1), pI), 1))
	assert.False(t, legality.ZeroInnerIterationsAtMaximum(a, pI, loopnest.Rectangular(pI, pI), 0),
		"a negative coupling to an inner loop is a lower bound")

	b := coupling(t, "[0 1; 1 0]")
	assert.True(t, legality.ZeroInnerIterationsAtMaximum(b, pI, loopnest.Rectangular(pI, pI), 0))
}
