// File: adjacency.go
// Role: Adjacency Builder (NodeID → ordered successor list).
//
// Determinism:
//   - Successor order equals edge-table order.
//   - Keys() returns ids in first-seen From order.
//
// Concurrency:
//   - Immutable after BuildAdjacency; safe for concurrent readers.
package core

import "slices"

// Adjacency is a directed successor mapping built from an edge table.
// Only registered From ids have an entry.
type Adjacency struct {
	succ    map[NodeID][]NodeID
	order   []NodeID
	edges   int
	dropped int
}

// BuildAdjacency appends every edge's To id to the list keyed by its From id,
// creating the list on first use. Edges whose From id is absent from reg are
// skipped and counted in Dropped. To ids are not checked.
//
// Complexity: O(E) time, O(E) memory.
func BuildAdjacency(reg *Registry, edges []Edge) (*Adjacency, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	a := &Adjacency{succ: make(map[NodeID][]NodeID)}
	for _, e := range edges {
		if !reg.Has(e.From) {
			a.dropped++
			continue
		}
		list, ok := a.succ[e.From]
		if !ok {
			a.order = append(a.order, e.From)
		}
		a.succ[e.From] = append(list, e.To)
		a.edges++
	}

	return a, nil
}

// Len returns the number of nodes with at least one outgoing edge.
func (a *Adjacency) Len() int { return len(a.order) }

// EdgeCount returns the number of edges kept in the mapping.
func (a *Adjacency) EdgeCount() int { return a.edges }

// Dropped returns the number of edges skipped because their From id was unregistered.
func (a *Adjacency) Dropped() int { return a.dropped }

// Has reports whether id has an entry (at least one outgoing edge).
func (a *Adjacency) Has(id NodeID) bool {
	_, ok := a.succ[id]
	return ok
}

// Keys returns the ids with outgoing edges in first-seen order.
func (a *Adjacency) Keys() []NodeID {
	return slices.Clone(a.order)
}

// OutDegree returns the length of id's successor list (0 when absent).
func (a *Adjacency) OutDegree(id NodeID) int {
	return len(a.succ[id])
}

// Successors returns a copy of id's successor list, or nil when absent.
func (a *Adjacency) Successors(id NodeID) []NodeID {
	list, ok := a.succ[id]
	if !ok {
		return nil
	}

	return slices.Clone(list)
}

// EachSuccessor calls fn for every successor of id in list order until fn
// returns false. It does not allocate.
func (a *Adjacency) EachSuccessor(id NodeID, fn func(to NodeID) bool) {
	for _, to := range a.succ[id] {
		if !fn(to) {
			return
		}
	}
}
