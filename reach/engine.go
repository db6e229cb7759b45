package reach

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/socialreach/core"
)

// DefaultCacheSize is the number of results an Engine keeps when none is given.
const DefaultCacheSize = 128

// queryKey identifies a cached query.
type queryKey struct {
	substr  string
	maxHops int
}

// Engine answers repeated reachability queries over one fixed graph and
// caches their results. It is safe for concurrent use.
//
// Cached *Result values are shared between callers and must not be modified.
type Engine struct {
	adj   *core.Adjacency
	reg   *core.Registry
	cache *lru.Cache[queryKey, *Result]
}

// NewEngine returns an Engine over adj and reg with an LRU of cacheSize
// entries (DefaultCacheSize when cacheSize <= 0).
func NewEngine(adj *core.Adjacency, reg *core.Registry, cacheSize int) (*Engine, error) {
	if adj == nil || reg == nil {
		return nil, ErrNilGraph
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[queryKey, *Result](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("reach: create cache: %w", err)
	}

	return &Engine{adj: adj, reg: reg, cache: cache}, nil
}

// Reach runs BoundedReach, serving repeated (substr, maxHops) pairs from the
// cache. cached reports whether the result came from the cache. Failed
// queries are not cached.
func (e *Engine) Reach(ctx context.Context, substr string, maxHops int) (res *Result, cached bool, err error) {
	key := queryKey{substr: substr, maxHops: maxHops}
	if res, ok := e.cache.Get(key); ok {
		return res, true, nil
	}

	res, err = BoundedReach(e.adj, e.reg, substr, maxHops, WithContext(ctx))
	if err != nil {
		return nil, false, err
	}
	e.cache.Add(key, res)

	return res, false, nil
}

// Len returns the number of cached results.
func (e *Engine) Len() int {
	return e.cache.Len()
}
