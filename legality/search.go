// SPDX-License-Identifier: MIT

package legality

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/polyloop/loopnest"
	"github.com/katalvlaran/polyloop/perm"
)

// LegalOrders enumerates the orders of nest a that are compatible with b
// under pb at every position. Positions are checked as they are placed,
// so an incompatible prefix prunes its whole subtree; every complete order
// is checked again before it is reported. Orders are returned as
// independent permutations in enumeration order, at most MaxResults of
// them when a cap is configured.
func (c *Checker) LegalOrders(a, b loopnest.Nest, pb *perm.Permutation) ([]*perm.Permutation, error) {
	n := a.NumLoops()
	if b.NumLoops() != n || pb.Len() != n {
		return nil, fmt.Errorf("orders of %d loops against %d loops under %d: %w",
			n, b.NumLoops(), pb.Len(), ErrDimensionMismatch)
	}
	if n == 0 {
		return []*perm.Permutation{perm.New(0)}, nil
	}

	var (
		out    []*perm.Permutation
		pruned int
	)
	keep := func(s perm.Subset) bool {
		if c.Compatible(a, b, s.Perm, pb, s.Level, s.Level) {
			return true
		}
		pruned++

		return false
	}
	leaf := func(p *perm.Permutation) bool {
		for pos := 0; pos < n; pos++ {
			if !c.Compatible(a, b, p, pb, pos, pos) {
				return true
			}
		}
		out = append(out, p.Clone())

		return c.opts.MaxResults == 0 || len(out) < c.opts.MaxResults
	}
	perm.Walk(perm.New(n), 0, keep, leaf)

	if c.opts.Logger != nil {
		c.opts.Logger.Debug("legal orders",
			slog.Int("loops", n),
			slog.Int("found", len(out)),
			slog.Int("pruned", pruned))
	}

	return out, nil
}

// LegalOrders runs Checker.LegalOrders with default options.
func LegalOrders(a, b loopnest.Nest, pb *perm.Permutation) ([]*perm.Permutation, error) {
	return defaultChecker.LegalOrders(a, b, pb)
}
