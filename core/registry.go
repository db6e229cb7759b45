// File: registry.go
// Role: Node Registry (NodeID → unique display name).
//
// Determinism:
//   - Suffixes depend only on row order.
//   - Iteration follows first insertion of each id.
//
// Concurrency:
//   - Immutable after BuildRegistry; safe for concurrent readers.
package core

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// nameSuffixSep joins a base name and its occurrence counter.
const nameSuffixSep = "_"

// Registry maps node ids to display names that are unique within the registry.
// The zero value is not usable; build one with BuildRegistry.
type Registry struct {
	// names holds NodeID → string in insertion order.
	names *linkedhashmap.Map
}

// BuildRegistry trims every raw name, resolves base-name collisions by appending
// "_<occurrence>" and indexes the result by id. A repeated id overwrites the
// previous name.
//
// Complexity: O(N) time, O(N) memory.
func BuildRegistry(rows []NodeRow) *Registry {
	r := &Registry{names: linkedhashmap.New()}
	seen := make(map[string]int, len(rows))

	for _, row := range rows {
		base := strings.TrimSpace(row.RawName)
		seen[base]++
		r.names.Put(row.ID, uniqueName(base, seen[base]))
	}

	return r
}

// uniqueName returns base for the first occurrence and base_n afterwards.
func uniqueName(base string, occurrence int) string {
	if occurrence <= 1 {
		return base
	}

	return base + nameSuffixSep + strconv.Itoa(occurrence)
}

// Name returns the display name of id.
func (r *Registry) Name(id NodeID) (string, bool) {
	v, ok := r.names.Get(id)
	if !ok {
		return "", false
	}

	return v.(string), true
}

// NameOrUnknown returns the display name of id, or UnknownName.
func (r *Registry) NameOrUnknown(id NodeID) string {
	if name, ok := r.Name(id); ok {
		return name
	}

	return UnknownName
}

// Has reports whether id is registered.
func (r *Registry) Has(id NodeID) bool {
	_, ok := r.names.Get(id)
	return ok
}

// Len returns the number of registered ids.
func (r *Registry) Len() int {
	return r.names.Size()
}

// IDs returns all registered ids in insertion order.
func (r *Registry) IDs() []NodeID {
	keys := r.names.Keys()
	out := make([]NodeID, len(keys))
	for i, k := range keys {
		out[i] = k.(NodeID)
	}

	return out
}

// Each calls fn for every entry in insertion order until fn returns false.
func (r *Registry) Each(fn func(id NodeID, name string) bool) {
	it := r.names.Iterator()
	for it.Next() {
		if !fn(it.Key().(NodeID), it.Value().(string)) {
			return
		}
	}
}

// FindContaining returns the first id, in insertion order, whose display name
// contains substr. An empty substr matches the first entry.
//
// Complexity: O(N·L) time; there is no name index.
func (r *Registry) FindContaining(substr string) (NodeID, bool) {
	var (
		found NodeID
		ok    bool
	)
	r.Each(func(id NodeID, name string) bool {
		if strings.Contains(name, substr) {
			found, ok = id, true
			return false
		}
		return true
	})

	return found, ok
}
