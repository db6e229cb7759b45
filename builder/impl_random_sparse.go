// SPDX-License-Identifier: MIT
// Package: socialreach/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like directed generator: each ordered pair (i,j), i≠j, is
//     kept independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//
// Determinism:
//   - Trial order is i asc, then j asc; fixed seed ⇒ fixed edge list.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed random graph
// over n nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(ds *Dataset, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addNodes(ds, cfg, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if keep(cfg, p) {
					ds.AddEdge(cfg.id(i), cfg.id(j))
				}
			}
		}

		return nil
	}
}

// keep draws one Bernoulli trial; p ∈ {0,1} needs no RNG.
func keep(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}
	return cfg.rng.Float64() < p
}
