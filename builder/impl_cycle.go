// SPDX-License-Identifier: MIT
// Package: socialreach/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i → (i+1) mod n for i = 0..n-1; every node has out-degree 1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the directed ring 0→1→…→n-1→0.
func Cycle(n int) Constructor {
	return func(ds *Dataset, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addNodes(ds, cfg, n)
		for i := 0; i < n; i++ {
			ds.AddEdge(cfg.id(i), cfg.id((i+1)%n))
		}

		return nil
	}
}
