// Package popularity selects the node with the highest out-degree from a
// core.Adjacency and resolves its display name through a core.Registry.
//
// What
//
//   - MostPopular scans every adjacency key, keeps the largest successor-list
//     length seen so far and compares with a strict ">": the first id to reach
//     the maximum wins.
//   - "First" is defined by an explicit TieBreak policy, never by map iteration:
//   - LowestID  (default): keys are scanned in ascending NodeID order.
//   - FirstSeen:           keys are scanned in first-seen edge-table order.
//   - The result carries the id, its out-degree and its name; an empty
//     adjacency or an unregistered winner yields core.UnknownName.
//
// Usage
//
//	res, err := popularity.MostPopular(adj, reg)
//	res, err := popularity.MostPopular(adj, reg, popularity.WithTieBreak(popularity.FirstSeen))
//	name := popularity.Name(adj, reg)
//
// Errors
//
//   - ErrNilGraph         if the adjacency or registry is nil.
//   - ErrOptionViolation  if an unknown TieBreak is supplied.
//
// Complexity: O(K log K) for LowestID, O(K) for FirstSeen, K = adj.Len().
package popularity
