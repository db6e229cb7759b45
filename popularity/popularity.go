package popularity

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/socialreach/core"
)

// MostPopular returns the adjacency key with the largest out-degree, scanning
// keys in the order defined by the TieBreak option and keeping the first id
// that reaches the maximum.
func MostPopular(adj *core.Adjacency, reg *core.Registry, opts ...Option) (Result, error) {
	if adj == nil || reg == nil {
		return Result{Name: core.UnknownName}, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{Name: core.UnknownName}, o.err
	}

	var (
		best Result
		deg  int
	)
	for _, id := range scanOrder(adj, o.TieBreak) {
		if deg = adj.OutDegree(id); deg > best.OutDegree {
			best = Result{ID: id, OutDegree: deg, Found: true}
		}
	}
	if !best.Found {
		return Result{Name: core.UnknownName}, nil
	}
	best.Name = reg.NameOrUnknown(best.ID)

	return best, nil
}

// Name is MostPopular with default options, reduced to the display name.
// It returns core.UnknownName for nil or empty inputs.
func Name(adj *core.Adjacency, reg *core.Registry) string {
	res, err := MostPopular(adj, reg)
	if err != nil {
		return core.UnknownName
	}

	return res.Name
}

// scanOrder lists adjacency keys in the policy's order.
func scanOrder(adj *core.Adjacency, t TieBreak) []core.NodeID {
	keys := adj.Keys()
	if t == FirstSeen {
		return keys
	}

	sorted := treemap.NewWith(utils.UInt64Comparator)
	for _, id := range keys {
		sorted.Put(uint64(id), struct{}{})
	}
	out := make([]core.NodeID, 0, len(keys))
	it := sorted.Iterator()
	for it.Next() {
		out = append(out, core.NodeID(it.Key().(uint64)))
	}

	return out
}
