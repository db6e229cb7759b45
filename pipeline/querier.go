package pipeline

import (
	"context"
	"time"

	"github.com/katalvlaran/socialreach/internal/logging"
	"github.com/katalvlaran/socialreach/metrics"
	"github.com/katalvlaran/socialreach/reach"
)

// Querier answers repeated reach queries over one Graph through a cached
// reach.Engine, recording cache and latency metrics.
type Querier struct {
	engine  *reach.Engine
	metrics *metrics.Metrics
}

// NewQuerier wraps g in an engine with cacheSize cached results.
func NewQuerier(g *Graph, cacheSize int, m *metrics.Metrics) (*Querier, error) {
	eng, err := reach.NewEngine(g.Adjacency, g.Registry, cacheSize)
	if err != nil {
		return nil, err
	}
	return &Querier{engine: eng, metrics: m}, nil
}

// Reach answers one query. Errors are returned unchanged so callers can
// test for reach.ErrStartNotFound.
func (q *Querier) Reach(ctx context.Context, substr string, maxHops int) (*reach.Result, error) {
	t0 := time.Now()
	res, cached, err := q.engine.Reach(ctx, substr, maxHops)
	if err != nil {
		return nil, err
	}
	q.metrics.CacheLookup(cached)
	if !cached {
		q.metrics.ObserveReach(time.Since(t0), res.Reached)
	}
	logging.FromContext(ctx).Debug("reach query",
		"start", substr, "max_hops", maxHops, "reached", res.Reached, "cached", cached)

	return res, nil
}
