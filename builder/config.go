// SPDX-License-Identifier: MIT
// Package: socialreach/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • nameFn   = DefaultNameFn   ("Person 0","Person 1",...)
//   • rng      = nil             (pure/deterministic unless seeded)
//   • idOffset = 0               (index i ↦ NodeID i)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/socialreach/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Display-name strategy: index -> raw name.
	nameFn NameFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Added to every index to form the NodeID.
	idOffset uint64
}

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nameFn: DefaultNameFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor index to its NodeID.
func (c builderConfig) id(i int) core.NodeID {
	return core.NodeID(c.idOffset + uint64(i))
}
