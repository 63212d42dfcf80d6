package fixture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyloop/internal/fixture"
	"github.com/katalvlaran/polyloop/loopnest"
	"github.com/katalvlaran/polyloop/poly"
)

var vars = []string{"I", "J"}

func TestParseBound(t *testing.T) {
	pI, pJ := poly.Var(0), poly.Var(1)
	cases := []struct {
		in   string
		want poly.MPoly
	}{
		{"I", pI},
		{"-1", poly.Const(-1)},
		{"I + 1", pI.AddConst(1)},
		{"2 I J - I^2", poly.Mono(2, 0, 1).Sub(poly.Mono(1, 0, 0))},
		{"I - I", poly.MPoly{}},
		{"3 J 2", pJ.Scale(6)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := fixture.ParseBound(tc.in, vars)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %v want %v", got, tc.want)
		})
	}
}

func TestParseBound_Errors(t *testing.T) {
	for _, in := range []string{"", "K", "I +", "+ I", "I^0", "I^x"} {
		_, err := fixture.ParseBound(in, vars)
		assert.ErrorIs(t, err, fixture.ErrFixture, "%q", in)
	}
}

func TestParse(t *testing.T) {
	doc := []byte(`
name: doc
vars: [I]
nests:
  t:
    kind: triangular
    bounds: ["I", "1"]
    coupling: "[0 -1; -1 0]"
  r:
    kind: rectangular
    bounds: ["I", "I"]
cases:
  - {a: t, b: r, pa: [1, 0], pb: [0, 1], ia: 0, ib: 1, want: true}
  - {name: named, a: r, b: r, pa: [0, 1], pb: [0, 1]}
`)
	got, err := fixture.Parse(doc)
	require.NoError(t, err)
	require.Len(t, got, 2)

	s := got[0]
	assert.Equal(t, "doc/0", s.Name)
	tri, ok := s.A.(*loopnest.TriangularLoopNest)
	require.True(t, ok)
	assert.Equal(t, int64(-1), tri.Coupling().At(1, 0))
	assert.Equal(t, []int{1, 0}, s.PA.Slice())
	assert.Equal(t, 1, s.IB)
	assert.True(t, s.Want)

	assert.Equal(t, "doc/named", got[1].Name)
	assert.False(t, got[1].Want)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"kind":     "nests: {x: {kind: affine, bounds: [\"1\"]}}",
		"coupling": "nests: {x: {kind: rectangular, bounds: [\"1\"], coupling: \"[0]\"}}",
		"size":     "nests: {x: {kind: triangular, bounds: [\"1\"], coupling: \"[0 0; 0 0]\"}}",
		"nest":     "cases: [{a: x, b: x, pa: [0], pb: [0]}]",
		"yaml":     "nests: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := fixture.Parse([]byte(doc))
			assert.ErrorIs(t, err, fixture.ErrFixture)
		})
	}

	_, err := fixture.Parse([]byte("nests: {x: {kind: triangular, bounds: [\"1\", \"1\"], coupling: \"[0 1; 2 0]\"}}"))
	assert.ErrorIs(t, err, loopnest.ErrAsymmetric)
}

func TestLoad_Missing(t *testing.T) {
	_, err := fixture.Load("testdata/missing.yaml")
	assert.Error(t, err)
}
