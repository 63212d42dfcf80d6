// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// VarID identifies a symbolic program variable.
type VarID uint32

// NoVar is returned by PickVar for a polynomial without variables.
const NoVar VarID = math.MaxUint32

// Exponent is the capability required of the exponent part of a Term.
type Exponent[M any] interface {
	Degree() int
	IsOne() bool
	Equal(M) bool
	// LexGreater is the canonical order used to sort Terms.
	LexGreater(M) bool
	Mul(M) M
	Quo(M) (M, bool)
	GCD(M) M
	One() M
	String() string
}

// Monomial is a product of variables stored as an ascending multiset of
// identifiers: x0²·x2 is [0 0 2]. The zero value is the unit monomial.
type Monomial struct {
	ids []VarID
}

// NewMonomial returns the product of the given variables in any order.
func NewMonomial(ids ...VarID) Monomial {
	if len(ids) == 0 {
		return Monomial{}
	}
	s := slices.Clone(ids)
	slices.Sort(s)

	return Monomial{ids: s}
}

// One returns the unit monomial. The receiver is ignored.
func (Monomial) One() Monomial { return Monomial{} }

// Degree is the total degree.
func (m Monomial) Degree() int { return len(m.ids) }

// IsOne reports whether m has no variables.
func (m Monomial) IsOne() bool { return len(m.ids) == 0 }

// IDs returns a copy of the sorted identifier multiset.
func (m Monomial) IDs() []VarID { return slices.Clone(m.ids) }

// DegreeOf returns the exponent of v in m.
// Complexity: O(log n + k).
func (m Monomial) DegreeOf(v VarID) int {
	lo, found := slices.BinarySearch(m.ids, v)
	if !found {
		return 0
	}
	hi := lo
	for hi < len(m.ids) && m.ids[hi] == v {
		hi++
	}

	return hi - lo
}

// Equal compares the identifier sequences.
func (m Monomial) Equal(o Monomial) bool { return slices.Equal(m.ids, o.ids) }

// LexGreater orders by total degree, then by the first differing position,
// where the smaller identifier is the greater monomial.
func (m Monomial) LexGreater(o Monomial) bool {
	if len(m.ids) != len(o.ids) {
		return len(m.ids) > len(o.ids)
	}
	for i := range m.ids {
		if m.ids[i] != o.ids[i] {
			return m.ids[i] < o.ids[i]
		}
	}

	return false
}

// Mul merges the two sorted multisets.
// Complexity: O(n+m).
func (m Monomial) Mul(o Monomial) Monomial {
	if len(o.ids) == 0 {
		return m
	}
	if len(m.ids) == 0 {
		return o
	}
	out := make([]VarID, 0, len(m.ids)+len(o.ids))
	i, j := 0, 0
	for i < len(m.ids) && j < len(o.ids) {
		if m.ids[i] <= o.ids[j] {
			out = append(out, m.ids[i])
			i++
		} else {
			out = append(out, o.ids[j])
			j++
		}
	}
	out = append(out, m.ids[i:]...)
	out = append(out, o.ids[j:]...)

	return Monomial{ids: out}
}

// Quo removes o's identifiers from m. It fails when o is not a
// sub-multiset of m.
// Complexity: O(n+m).
func (m Monomial) Quo(o Monomial) (Monomial, bool) {
	if len(o.ids) > len(m.ids) {
		return Monomial{}, false
	}
	out := make([]VarID, 0, len(m.ids)-len(o.ids))
	j := 0
	for _, a := range m.ids {
		switch {
		case j < len(o.ids) && a == o.ids[j]:
			j++
		case j < len(o.ids) && a > o.ids[j]:
			// o.ids[j] can no longer be matched
			return Monomial{}, false
		default:
			out = append(out, a)
		}
	}
	if j != len(o.ids) {
		return Monomial{}, false
	}
	if len(out) == 0 {
		return Monomial{}, true
	}

	return Monomial{ids: out}, true
}

// GCD is the multiset intersection.
func (m Monomial) GCD(o Monomial) Monomial {
	var out []VarID
	i, j := 0, 0
	for i < len(m.ids) && j < len(o.ids) {
		switch {
		case m.ids[i] == o.ids[j]:
			out = append(out, m.ids[i])
			i++
			j++
		case m.ids[i] < o.ids[j]:
			i++
		default:
			j++
		}
	}

	return Monomial{ids: out}
}

// Pow returns m^n by repeated squaring.
func (m Monomial) Pow(n uint) Monomial {
	acc := Monomial{}
	for n > 0 {
		if n&1 == 1 {
			acc = acc.Mul(m)
		}
		n >>= 1
		if n > 0 {
			m = m.Mul(m)
		}
	}

	return acc
}

// Without drops every occurrence of v.
func (m Monomial) Without(v VarID) Monomial {
	if m.DegreeOf(v) == 0 {
		return m
	}
	out := make([]VarID, 0, len(m.ids))
	for _, id := range m.ids {
		if id != v {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return Monomial{}
	}

	return Monomial{ids: out}
}

// Times returns m·v^e.
func (m Monomial) Times(v VarID, e int) Monomial {
	if e <= 0 {
		return m
	}
	add := make([]VarID, e)
	for i := range add {
		add[i] = v
	}

	return m.Mul(Monomial{ids: add})
}

// Namer maps a variable to its printed name.
type Namer func(VarID) string

// VarName is the default Namer: L, M, N, ... Z for the first fifteen
// identifiers, then v15, v16, ...
func VarName(v VarID) string {
	if v < 15 {
		return string(rune('L' + v))
	}

	return fmt.Sprintf("v%d", v)
}

// String renders m with VarName, e.g. "L^2 N". The unit monomial is "1".
func (m Monomial) String() string { return m.Format(VarName) }

// Format renders m with the given Namer.
func (m Monomial) Format(name Namer) string {
	if len(m.ids) == 0 {
		return "1"
	}
	var sb strings.Builder
	for i := 0; i < len(m.ids); {
		j := i
		for j < len(m.ids) && m.ids[j] == m.ids[i] {
			j++
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(name(m.ids[i]))
		if j-i > 1 {
			fmt.Fprintf(&sb, "^%d", j-i)
		}
		i = j
	}

	return sb.String()
}

// Uninomial is x^e over one implicit variable.
type Uninomial uint

// One returns x^0. The receiver is ignored.
func (Uninomial) One() Uninomial { return 0 }

func (u Uninomial) Degree() int { return int(u) }
func (u Uninomial) IsOne() bool { return u == 0 }
func (u Uninomial) Equal(o Uninomial) bool { return u == o }
func (u Uninomial) LexGreater(o Uninomial) bool { return u > o }
func (u Uninomial) Mul(o Uninomial) Uninomial { return u + o }
func (u Uninomial) GCD(o Uninomial) Uninomial { return min(u, o) }

// Quo fails when o > u.
func (u Uninomial) Quo(o Uninomial) (Uninomial, bool) {
	if o > u {
		return 0, false
	}

	return u - o, true
}

func (u Uninomial) String() string {
	switch u {
	case 0:
		return "1"
	case 1:
		return "x"
	default:
		return fmt.Sprintf("x^%d", uint(u))
	}
}
