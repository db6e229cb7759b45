package reach

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/socialreach/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable traversal state for one query.
type walker struct {
	adj     *core.Adjacency
	opts    Options
	ctx     context.Context
	maxHops int
	queue   *arrayqueue.Queue
	visited *hashset.Set
	res     *Result
}

// Resolve returns the first registry entry whose name contains substr.
func Resolve(reg *core.Registry, substr string) (core.NodeID, error) {
	if reg == nil {
		return 0, ErrNilGraph
	}
	id, ok := reg.FindContaining(substr)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrStartNotFound, substr)
	}

	return id, nil
}

// BoundedReach resolves the start node by substring and counts the distinct
// nodes reachable from it within maxHops hops, start excluded.
// A failed resolution returns an error wrapping ErrStartNotFound.
func BoundedReach(adj *core.Adjacency, reg *core.Registry, substr string, maxHops int, opts ...Option) (*Result, error) {
	if adj == nil || reg == nil {
		return nil, ErrNilGraph
	}
	start, err := Resolve(reg, substr)
	if err != nil {
		return nil, err
	}
	res, err := FromID(adj, start, maxHops, opts...)
	if err != nil {
		return nil, err
	}
	res.StartName = reg.NameOrUnknown(start)

	return res, nil
}

// FromID runs the bounded BFS from start. The start node need not have
// outgoing edges; it is always visited at depth 0.
func FromID(adj *core.Adjacency, start core.NodeID, maxHops int, opts ...Option) (*Result, error) {
	if adj == nil {
		return nil, ErrNilGraph
	}
	if maxHops < 0 {
		return nil, fmt.Errorf("%w (%d)", ErrInvalidHops, maxHops)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		adj:     adj,
		opts:    o,
		ctx:     o.Ctx,
		maxHops: maxHops,
		queue:   arrayqueue.New(),
		visited: hashset.New(),
		res: &Result{
			Start:     start,
			StartName: core.UnknownName,
			MaxHops:   maxHops,
			Depth:     make(map[core.NodeID]int),
			Parent:    make(map[core.NodeID]core.NodeID),
		},
	}

	w.enqueue(start, 0, start, true)
	if err := w.loop(); err != nil {
		return nil, err
	}
	// visited always holds the start, so this never underflows.
	w.res.Reached = w.visited.Size() - 1

	return w.res, nil
}

// enqueue marks id visited at depth d, records its parent and queues it.
func (w *walker) enqueue(id core.NodeID, d int, parent core.NodeID, root bool) {
	w.visited.Add(id)
	w.res.Depth[id] = d
	if !root {
		w.res.Parent[id] = parent
	}
	w.res.Order = append(w.res.Order, id)
	w.opts.OnEnqueue(id, d)
	w.queue.Enqueue(queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v, _ := w.queue.Dequeue()
		item := v.(queueItem)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("reach: OnVisit error at %d: %w", item.id, err)
		}
		if item.depth >= w.maxHops {
			continue
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues every unseen, unfiltered successor of item at depth+1.
func (w *walker) expand(item queueItem) error {
	var err error
	w.adj.EachSuccessor(item.id, func(nbr core.NodeID) bool {
		select {
		case <-w.ctx.Done():
			err = w.ctx.Err()
			return false
		default:
		}
		if !w.opts.FilterNeighbor(item.id, nbr) {
			return true
		}
		if !w.visited.Contains(nbr) {
			w.enqueue(nbr, item.depth+1, item.id, false)
		}
		return true
	})

	return err
}
