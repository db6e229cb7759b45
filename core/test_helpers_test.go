// Package core_test contains test helpers for socialreach/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by registry and adjacency tests.
//   - Avoid magic numbers in test bodies.
package core_test

import (
	"github.com/katalvlaran/socialreach/core"
)

// Common node ids used across core tests.
const (
	IDAlice   core.NodeID = 0
	IDBob     core.NodeID = 1
	IDCharlie core.NodeID = 2
	IDDave    core.NodeID = 3
	IDEve     core.NodeID = 4

	IDStranger core.NodeID = 99
)

// Common concurrency sizes.
const (
	NReaders = 50
	NRounds  = 100
)

// chainRows returns the five-person fixture Alice..Eve with ids 0..4.
func chainRows() []core.NodeRow {
	return []core.NodeRow{
		{ID: IDAlice, RawName: "Alice"},
		{ID: IDBob, RawName: "Bob"},
		{ID: IDCharlie, RawName: "Charlie"},
		{ID: IDDave, RawName: "Dave"},
		{ID: IDEve, RawName: "Eve"},
	}
}

// chainEdges returns 0→1→2→3→4.
func chainEdges() []core.Edge {
	return []core.Edge{
		{From: IDAlice, To: IDBob},
		{From: IDBob, To: IDCharlie},
		{From: IDCharlie, To: IDDave},
		{From: IDDave, To: IDEve},
	}
}

// mustAdjacency builds an adjacency or panics; for fixtures only.
func mustAdjacency(reg *core.Registry, edges []core.Edge) *core.Adjacency {
	adj, err := core.BuildAdjacency(reg, edges)
	if err != nil {
		panic(err)
	}
	return adj
}
