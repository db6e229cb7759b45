// SPDX-License-Identifier: MIT
// Package: socialreach/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Index 0 is the hub; leaves are 1..n-1.
//   - Emits hub → leaf[i] for i = 1..n-1, then leaf[i] → hub, so the hub has
//     out-degree n-1 and every leaf out-degree 1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star whose hub follows everyone
// and is followed back.
func Star(n int) Constructor {
	return func(ds *Dataset, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		addNodes(ds, cfg, n)
		hub := cfg.id(0)
		for i := 1; i < n; i++ {
			ds.AddEdge(hub, cfg.id(i))
		}
		for i := 1; i < n; i++ {
			ds.AddEdge(cfg.id(i), hub)
		}

		return nil
	}
}
