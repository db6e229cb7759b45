// Package core defines the central NodeID, NodeRow and Edge types together
// with the Registry and Adjacency structures built from them.
//
// Errors:
//
//	ErrNilRegistry  - a nil *Registry was passed where one is required.
//	ErrNilAdjacency - a nil *Adjacency was passed where one is required.
package core

import (
	"errors"
	"strconv"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilRegistry indicates that a required Registry pointer is nil.
	ErrNilRegistry = errors.New("core: registry is nil")

	// ErrNilAdjacency indicates that a required Adjacency pointer is nil.
	ErrNilAdjacency = errors.New("core: adjacency is nil")
)

// UnknownName is the display name reported for ids that have no registry entry.
const UnknownName = "Unknown"

// NodeID identifies a node. It is supplied by the node table, never generated.
type NodeID uint64

// String renders the id in decimal.
func (id NodeID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseNodeID parses a non-negative decimal integer into a NodeID.
// Surrounding whitespace must already be trimmed by the caller.
func ParseNodeID(s string) (NodeID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}

	return NodeID(v), nil
}

// NodeRow is one parsed node-table row.
type NodeRow struct {
	// ID is the node identifier.
	ID NodeID

	// RawName is the display name exactly as read; BuildRegistry trims it.
	RawName string
}

// Edge is one directed relationship From→To.
// Self-loops and duplicates are legal and preserved.
type Edge struct {
	// From is the source node.
	From NodeID

	// To is the destination node.
	To NodeID
}
