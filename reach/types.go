// Package reach provides tunable options, result types and error definitions
// for bounded breadth-first reachability over a core.Adjacency.
package reach

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/socialreach/core"
)

// Sentinel errors for reachability queries.
var (
	// ErrStartNotFound is returned when no registered name contains the start substring.
	ErrStartNotFound = errors.New("reach: no node name contains the start substring")

	// ErrNilGraph is returned if the adjacency or registry is nil.
	ErrNilGraph = errors.New("reach: adjacency or registry is nil")

	// ErrInvalidHops is returned for a negative hop limit.
	ErrInvalidHops = errors.New("reach: hop limit cannot be negative")
)

// Option configures traversal behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is first discovered, with its depth.
	OnEnqueue func(id core.NodeID, depth int)

	// OnVisit is called when a node is dequeued. A returned error aborts the search.
	OnVisit func(id core.NodeID, depth int) error

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor core.NodeID) bool
}

// DefaultOptions returns background context, no-op hooks and no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(core.NodeID, int) {},
		OnVisit:        func(core.NodeID, int) error { return nil },
		FilterNeighbor: func(_, _ core.NodeID) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id core.NodeID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.NodeID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of one bounded traversal.
type Result struct {
	// Start is the resolved start node.
	Start core.NodeID

	// StartName is the start node's display name (core.UnknownName if unregistered).
	StartName string

	// MaxHops is the hop limit the traversal ran with.
	MaxHops int

	// Reached is the number of distinct visited nodes, start excluded.
	Reached int

	// Order lists visited nodes in BFS order, start first.
	Order []core.NodeID

	// Depth maps every visited node to its hop distance from Start.
	Depth map[core.NodeID]int

	// Parent maps every visited node except Start to its BFS-tree predecessor.
	Parent map[core.NodeID]core.NodeID
}

// PathTo reconstructs the BFS-tree path from Start to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("reach: no path to %d within %d hops", dest, r.MaxHops)
	}
	path := []core.NodeID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Levels groups visited nodes by depth; Levels()[0] is [Start].
func (r *Result) Levels() [][]core.NodeID {
	levels := make([][]core.NodeID, 0, r.MaxHops+1)
	for _, id := range r.Order {
		d := r.Depth[id]
		for len(levels) <= d {
			levels = append(levels, nil)
		}
		levels[d] = append(levels[d], id)
	}

	return levels
}
