// Package core defines the social-graph data model shared by every stage of the
// pipeline: node identifiers, parsed node rows, directed edges, the node Registry
// and the Adjacency map.
//
// The two structures are built once and treated as read-only afterwards:
//
//	rows  ──BuildRegistry──▶ Registry   (NodeID → unique display name)
//	edges ──BuildAdjacency─▶ Adjacency  (NodeID → ordered successor list)
//
// Registry
//
//   - Display names are trimmed of surrounding whitespace.
//   - Every emitted name is unique: the k-th occurrence (k > 1) of a base name
//     becomes "<base>_<k>", counted in row order, not id order.
//   - A repeated NodeID overwrites the earlier name but keeps its position.
//   - Iteration (IDs, Each, FindContaining) follows insertion order, so the
//     first substring match is stable across runs.
//
// Adjacency
//
//   - Only edges whose From id is registered produce an entry; the rest are
//     counted in Dropped. To ids are never checked and may have no name.
//   - Successor lists keep edge-table order and keep parallel edges and
//     self-loops as-is.
//   - Keys iterate in first-seen order.
//
// Complexity (N = node rows, E = edge rows)
//
//   - BuildRegistry:  O(N) time, O(N) memory.
//   - BuildAdjacency: O(E) time, O(E) memory.
//   - FindContaining: O(N·L) worst case, L = name length; no index.
//
// Concurrency
//
//	Neither type is mutated after construction, so concurrent readers are safe.
//	Accessors that hand out slices return copies.
package core
