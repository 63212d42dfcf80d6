// SPDX-License-Identifier: MIT

// Package fixture loads loop nest scenarios from YAML files.
//
// A file names its parameters, declares nests by kind and lists the queries
// to run against them:
//
//	name: triangle
//	vars: [I]
//	nests:
//	  tri:
//	    kind: triangular
//	    bounds: ["I", "1"]
//	    coupling: "[0 -1; -1 0]"
//	cases:
//	  - {a: tri, b: tri, pa: [0, 1], pb: [0, 1], ia: 0, ib: 0, want: true}
//
// Bounds are sums of terms such as "2 I J", "I^2" or "-1".
package fixture

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polyloop/loopnest"
	"github.com/katalvlaran/polyloop/perm"
	"github.com/katalvlaran/polyloop/poly"
)

// ErrFixture reports a malformed scenario file.
var ErrFixture = errors.New("fixture: malformed scenario")

// Nest kinds accepted in a file.
const (
	KindRectangular = "rectangular"
	KindTriangular  = "triangular"
)

// File mirrors the YAML document.
type File struct {
	Name  string              `yaml:"name"`
	Vars  []string            `yaml:"vars"`
	Nests map[string]NestSpec `yaml:"nests"`
	Cases []CaseSpec          `yaml:"cases"`
}

// NestSpec declares one nest.
type NestSpec struct {
	Kind     string   `yaml:"kind"`
	Bounds   []string `yaml:"bounds"`
	Coupling string   `yaml:"coupling"`
}

// CaseSpec is one compatibility query.
type CaseSpec struct {
	Name string `yaml:"name"`
	A    string `yaml:"a"`
	B    string `yaml:"b"`
	PA   []int  `yaml:"pa"`
	PB   []int  `yaml:"pb"`
	IA   int    `yaml:"ia"`
	IB   int    `yaml:"ib"`
	Want bool   `yaml:"want"`
}

// Scenario is a resolved query ready to run.
type Scenario struct {
	Name   string
	A, B   loopnest.Nest
	PA, PB *perm.Permutation
	IA, IB int
	Want   bool
}

// Load reads and resolves the scenarios in path.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: reading %s: %w", path, err)
	}
	out, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return out, nil
}

// Parse resolves the scenarios of one YAML document.
func Parse(data []byte) ([]Scenario, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshaling YAML: %v: %w", err, ErrFixture)
	}

	nests := make(map[string]loopnest.Nest, len(f.Nests))
	for name, spec := range f.Nests {
		n, err := buildNest(spec, f.Vars)
		if err != nil {
			return nil, fmt.Errorf("nest %q: %w", name, err)
		}
		nests[name] = n
	}

	out := make([]Scenario, 0, len(f.Cases))
	for i, c := range f.Cases {
		s, err := resolveCase(c, nests)
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", i, err)
		}
		if s.Name == "" {
			s.Name = fmt.Sprintf("%s/%d", f.Name, i)
		} else {
			s.Name = f.Name + "/" + s.Name
		}
		out = append(out, s)
	}

	return out, nil
}

func buildNest(spec NestSpec, vars []string) (loopnest.Nest, error) {
	bounds := make([]poly.MPoly, len(spec.Bounds))
	for i, b := range spec.Bounds {
		p, err := ParseBound(b, vars)
		if err != nil {
			return nil, err
		}
		bounds[i] = p
	}

	switch spec.Kind {
	case KindRectangular:
		if spec.Coupling != "" {
			return nil, fmt.Errorf("rectangular nest with coupling: %w", ErrFixture)
		}
		return loopnest.Rectangular(bounds...), nil
	case KindTriangular:
		a, err := loopnest.ParseCoupling(spec.Coupling)
		if err != nil {
			return nil, err
		}
		if a.Size() != len(bounds) {
			return nil, fmt.Errorf("coupling of size %d for %d bounds: %w", a.Size(), len(bounds), ErrFixture)
		}
		t := loopnest.NewTriangular(len(bounds))
		for i, b := range bounds {
			if err = t.SetUpperBound(i, b); err != nil {
				return nil, err
			}
			for j := 0; j < i; j++ {
				if err = t.Coupling().Set(i, j, a.At(i, j)); err != nil {
					return nil, err
				}
			}
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unknown kind %q: %w", spec.Kind, ErrFixture)
	}
}

func resolveCase(c CaseSpec, nests map[string]loopnest.Nest) (Scenario, error) {
	a, ok := nests[c.A]
	if !ok {
		return Scenario{}, fmt.Errorf("unknown nest %q: %w", c.A, ErrFixture)
	}
	b, ok := nests[c.B]
	if !ok {
		return Scenario{}, fmt.Errorf("unknown nest %q: %w", c.B, ErrFixture)
	}
	pa, err := perm.FromSlice(c.PA)
	if err != nil {
		return Scenario{}, err
	}
	pb, err := perm.FromSlice(c.PB)
	if err != nil {
		return Scenario{}, err
	}

	return Scenario{Name: c.Name, A: a, B: b, PA: pa, PB: pb, IA: c.IA, IB: c.IB, Want: c.Want}, nil
}

// ParseBound reads a polynomial such as "2 I J - I^2 + 1". Every factor is
// an integer or a name from vars, optionally raised with ^; vars[k] becomes
// variable k.
func ParseBound(s string, vars []string) (poly.MPoly, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return poly.MPoly{}, fmt.Errorf("empty bound: %w", ErrFixture)
	}

	var (
		sum    poly.MPoly
		coef   int64 = 1
		ids    []poly.VarID
		inTerm bool
	)
	flush := func() {
		sum = sum.Add(poly.Mono(coef, ids...))
		coef, ids, inTerm = 1, nil, false
	}
	for _, f := range fields {
		switch f {
		case "+", "-":
			if !inTerm {
				return poly.MPoly{}, fmt.Errorf("bound %q: dangling %q: %w", s, f, ErrFixture)
			}
			flush()
			if f == "-" {
				coef = -1
			}
			continue
		}
		if err := factor(f, vars, &coef, &ids); err != nil {
			return poly.MPoly{}, fmt.Errorf("bound %q: %w", s, err)
		}
		inTerm = true
	}
	if !inTerm {
		return poly.MPoly{}, fmt.Errorf("bound %q: trailing operator: %w", s, ErrFixture)
	}
	flush()

	return sum, nil
}

func factor(f string, vars []string, coef *int64, ids *[]poly.VarID) error {
	if v, err := strconv.ParseInt(f, 10, 64); err == nil {
		*coef *= v
		return nil
	}

	name, exp := f, 1
	if k := strings.IndexByte(f, '^'); k >= 0 {
		e, err := strconv.Atoi(f[k+1:])
		if err != nil || e < 1 {
			return fmt.Errorf("exponent in %q: %w", f, ErrFixture)
		}
		name, exp = f[:k], e
	}
	k := slices.Index(vars, name)
	if k < 0 {
		return fmt.Errorf("unknown variable %q: %w", name, ErrFixture)
	}
	for ; exp > 0; exp-- {
		*ids = append(*ids, poly.VarID(k))
	}

	return nil
}
