package perm_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyloop/perm"
)

func assertInverse(t *testing.T, p *perm.Permutation) {
	t.Helper()
	for i := 0; i < p.Len(); i++ {
		assert.Equal(t, i, p.Inv(p.At(i)), "inverse stale at %d in %v", i, p)
	}
}

func TestPermutation_SwapKeepsInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := perm.New(7)
	assertInverse(t, p)
	for k := 0; k < 200; k++ {
		p.Swap(rng.Intn(7), rng.Intn(7))
		assertInverse(t, p)
	}
}

func TestFromSlice(t *testing.T) {
	p, err := perm.FromSlice([]int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, p.At(0))
	assert.Equal(t, 0, p.Inv(2))
	assert.Equal(t, "[2 0 1]", p.String())
	assertInverse(t, p)

	for _, bad := range [][]int{{0, 0}, {1, 2}, {-1, 0}} {
		_, err := perm.FromSlice(bad)
		assert.ErrorIs(t, err, perm.ErrNotPermutation, "%v", bad)
	}
}

func TestClone_Independent(t *testing.T) {
	p := perm.New(3)
	q := p.Clone()
	q.Swap(0, 2)
	assert.Equal(t, []int{0, 1, 2}, p.Slice())
	assert.Equal(t, []int{2, 1, 0}, q.Slice())
	assert.False(t, p.Equal(q))
}
