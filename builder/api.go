// SPDX-License-Identifier: MIT
// Package: socialreach/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildDataset(bopts, cons...). Resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical datasets.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socialreach/core"
	"github.com/katalvlaran/socialreach/ingest"
)

// Constructor applies a deterministic mutation to the dataset under
// construction. Constructors validate parameters first and return sentinel
// errors instead of panicking.
type Constructor func(ds *Dataset, cfg builderConfig) error

// Dataset accumulates node rows and edges while constructors run.
type Dataset struct {
	nodes []core.NodeRow
	index map[core.NodeID]struct{}
	edges []core.Edge
}

// AddNode appends a node row unless id was already added (idempotent).
func (d *Dataset) AddNode(id core.NodeID, name string) {
	if _, ok := d.index[id]; ok {
		return
	}
	d.index[id] = struct{}{}
	d.nodes = append(d.nodes, core.NodeRow{ID: id, RawName: name})
}

// AddEdge appends a directed edge. Parallel edges are kept.
func (d *Dataset) AddEdge(from, to core.NodeID) {
	d.edges = append(d.edges, core.Edge{From: from, To: to})
}

// BuildDataset resolves bopts and applies all constructors in order.
// Any constructor error is wrapped with "BuildDataset: %w" and returned
// immediately; no partial dataset is returned.
func BuildDataset(bopts []BuilderOption, cons ...Constructor) (*ingest.Dataset, error) {
	cfg := newBuilderConfig(bopts...)
	ds := &Dataset{index: make(map[core.NodeID]struct{})}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildDataset: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(ds, cfg); err != nil {
			return nil, fmt.Errorf("BuildDataset: %w", err)
		}
	}

	return &ingest.Dataset{Nodes: ds.nodes, Edges: ds.edges}, nil
}

// addNodes adds indices 0..n-1 through cfg.
func addNodes(ds *Dataset, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		ds.AddNode(cfg.id(i), cfg.nameFn(i))
	}
}
