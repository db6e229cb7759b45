// SPDX-License-Identifier: MIT
// Package: socialreach/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds nodes in ascending index order (0..n-1).
//   - Emits edges (i-1) → i for i=1..n-1 in increasing order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the directed chain 0→1→…→n-1.
func Path(n int) Constructor {
	return func(ds *Dataset, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addNodes(ds, cfg, n)
		for i := 1; i < n; i++ {
			ds.AddEdge(cfg.id(i-1), cfg.id(i))
		}

		return nil
	}
}
