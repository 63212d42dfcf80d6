// SPDX-License-Identifier: MIT

package loopnest

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Coupling is a symmetric n×n integer matrix. Only the lower half
// (including the diagonal) is stored, packed row by row.
type Coupling struct {
	n    int
	data []int64
}

// NewCoupling returns the n×n zero matrix.
// Complexity: O(n²) memory.
func NewCoupling(n int) *Coupling {
	if n < 0 {
		panic(fmt.Errorf("NewCoupling(%d): %w", n, ErrNegativeSize))
	}

	return &Coupling{n: n, data: make([]int64, n*(n+1)/2)}
}

// Size is n.
func (c *Coupling) Size() int { return c.n }

// indexOf maps (i, j) to the packed offset of (max, min).
func (c *Coupling) indexOf(i, j int) (int, error) {
	if i < 0 || i >= c.n || j < 0 || j >= c.n {
		return 0, fmt.Errorf("Coupling(%d,%d) of size %d: %w", i, j, c.n, ErrIndexOutOfRange)
	}
	if i < j {
		i, j = j, i
	}

	return i*(i+1)/2 + j, nil
}

// At returns A[i,j] == A[j,i]. It panics on out-of-range indices, like
// slice indexing.
func (c *Coupling) At(i, j int) int64 {
	k, err := c.indexOf(i, j)
	if err != nil {
		panic(err)
	}

	return c.data[k]
}

// Set stores v at both (i, j) and (j, i).
func (c *Coupling) Set(i, j int, v int64) error {
	k, err := c.indexOf(i, j)
	if err != nil {
		return err
	}
	c.data[k] = v

	return nil
}

// Clone returns an independent copy.
func (c *Coupling) Clone() *Coupling {
	return &Coupling{n: c.n, data: slices.Clone(c.data)}
}

// Equal compares size and entries.
func (c *Coupling) Equal(o *Coupling) bool {
	return c.n == o.n && slices.Equal(c.data, o.data)
}

// String renders the full matrix as "[a b; c d]", the format read by
// ParseCoupling.
func (c *Coupling) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < c.n; i++ {
		if i > 0 {
			sb.WriteString("; ")
		}
		for j := 0; j < c.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatInt(c.At(i, j), 10))
		}
	}
	sb.WriteByte(']')

	return sb.String()
}

// ParseCoupling reads "[a b; c d]": rows separated by ';', entries by
// white space.
// Stage 1 (Tokenize): strip brackets, split rows and fields.
// Stage 2 (Validate): square shape, integer entries, symmetry.
// Stage 3 (Build): store the lower half.
func ParseCoupling(s string) (*Coupling, error) {
	body := strings.TrimSpace(s)
	if !strings.HasPrefix(body, "[") || !strings.HasSuffix(body, "]") {
		return nil, fmt.Errorf("ParseCoupling(%q): missing brackets: %w", s, ErrParse)
	}
	body = strings.TrimSpace(body[1 : len(body)-1])
	if body == "" {
		return NewCoupling(0), nil
	}

	rows := strings.Split(body, ";")
	n := len(rows)
	full := make([][]int64, n)
	for i, row := range rows {
		fields := strings.Fields(row)
		if len(fields) != n {
			return nil, fmt.Errorf("ParseCoupling(%q): row %d has %d entries, want %d: %w",
				s, i, len(fields), n, ErrParse)
		}
		full[i] = make([]int64, n)
		for j, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("ParseCoupling(%q): entry (%d,%d): %w", s, i, j, ErrParse)
			}
			full[i][j] = v
		}
	}

	c := NewCoupling(n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			if full[i][j] != full[j][i] {
				return nil, fmt.Errorf("ParseCoupling(%q): (%d,%d): %w", s, i, j, ErrAsymmetric)
			}
			c.data[i*(i+1)/2+j] = full[i][j]
		}
	}

	return c, nil
}
