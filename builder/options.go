// SPDX-License-Identifier: MIT
// Package: socialreach/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes dataset construction by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithNameScheme sets the display-name generator: idx -> name.
// Panics on nil.
func WithNameScheme(fn NameFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) {
		c.nameFn = fn
	}
}

// WithDuplicateNames makes only k distinct base names ("Person 0".."Person k-1"),
// repeated cyclically, so the registry has to suffix collisions.
// Panics if k < 1.
func WithDuplicateNames(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithDuplicateNames(k<1)")
	}
	return func(c *builderConfig) {
		c.nameFn = func(i int) string { return DefaultNameFn(i % k) }
	}
}

// WithIDOffset shifts every generated NodeID by off, so several datasets can
// be merged without id clashes.
func WithIDOffset(off uint64) BuilderOption {
	return func(c *builderConfig) {
		c.idOffset = off
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
