// Package reach answers bounded reachability queries over a core.Adjacency:
// how many distinct nodes a start node reaches within a hop limit.
//
// What
//
//   - Resolve finds the start node: the first registry entry, in registry
//     order, whose display name contains the given substring. There is no
//     index; the scan is linear.
//   - FromID runs a FIFO breadth-first search seeded with the start at depth 0.
//     A node is marked visited when first enqueued and never enqueued again.
//     A node is expanded only while its depth is strictly below maxHops; nodes
//     at exactly maxHops are counted but not expanded.
//   - BoundedReach is Resolve followed by FromID.
//   - Result.Reached excludes the start node, so maxHops == 0 always yields 0.
//   - Engine wraps a fixed adjacency and registry with an LRU cache of results
//     keyed by (substring, maxHops).
//
// Determinism
//
//	Siblings are enqueued in adjacency-list order, which is edge-table order,
//	so Order and Parent are reproducible for the same inputs.
//
// Complexity (V = reached nodes, E = edges leaving them)
//
//   - Time:   O(N) for Resolve, O(V + E) for the traversal.
//   - Memory: O(V) for queue, visited set, Depth and Parent.
//
// Usage
//
//	res, err := reach.BoundedReach(adj, reg, "Alice", 3)
//	switch {
//	case errors.Is(err, reach.ErrStartNotFound):
//	    // report "no such person"
//	case err != nil:
//	    // cancellation, hook error, bad arguments
//	}
//	fmt.Println(res.Reached)
//
// Options
//
//   - WithContext(ctx):       cancellation, checked per dequeue and per neighbour.
//   - WithOnEnqueue(fn):      called for every enqueued node, start included.
//   - WithOnVisit(fn):        called on dequeue; a returned error aborts the search.
//   - WithFilterNeighbor(fn): skip edges for which fn(curr, nbr) is false.
//
// Errors
//
//   - ErrNilGraph         adjacency or registry is nil.
//   - ErrStartNotFound    no registered name contains the substring.
//   - ErrInvalidHops      maxHops is negative.
//   - Wrapped hook errors from OnVisit, or ctx.Err() on cancellation.
package reach
