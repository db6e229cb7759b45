// Package metrics holds the Prometheus instruments for one socialreach
// process. A batch run has no scrape endpoint, so the collected values are
// exported with WriteTextfile for the node_exporter textfile collector.
//
// Every method is safe on a nil *Metrics and then does nothing.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "socialreach"

// Cache outcomes used as the "result" label.
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Metrics groups every instrument on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	rowsIngested  *prometheus.CounterVec
	edgesDropped  prometheus.Counter
	stageDuration *prometheus.HistogramVec
	reachDuration prometheus.Histogram
	reachedNodes  prometheus.Gauge
	cacheLookups  *prometheus.CounterVec
	graphNodes    prometheus.Gauge
}

// New registers all instruments on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		rowsIngested: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingest",
			Name:      "rows_total",
			Help:      "Rows parsed from the input tables",
		}, []string{"table"}),
		edgesDropped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "graph",
			Name:      "edges_dropped_total",
			Help:      "Edges skipped because their source id is not registered",
		}),
		stageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Wall time of each pipeline stage",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}, []string{"stage"}),
		reachDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "reach",
			Name:      "duration_seconds",
			Help:      "Bounded BFS query latency",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		reachedNodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "reach",
			Name:      "reached_nodes",
			Help:      "Nodes reached by the most recent query, start excluded",
		}),
		cacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reach",
			Name:      "cache_lookups_total",
			Help:      "Reach engine cache lookups by result",
		}, []string{"result"}),
		graphNodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "graph",
			Name:      "nodes_with_edges",
			Help:      "Nodes with at least one outgoing edge",
		}),
	}
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RowsIngested adds n rows for table.
func (m *Metrics) RowsIngested(table string, n int) {
	if m == nil {
		return
	}
	m.rowsIngested.WithLabelValues(table).Add(float64(n))
}

// EdgesDropped adds n dropped edges.
func (m *Metrics) EdgesDropped(n int) {
	if m == nil {
		return
	}
	m.edgesDropped.Add(float64(n))
}

// GraphNodes sets the adjacency key count.
func (m *Metrics) GraphNodes(n int) {
	if m == nil {
		return
	}
	m.graphNodes.Set(float64(n))
}

// ObserveStage records how long stage took.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// ObserveReach records one query's latency and reach count.
func (m *Metrics) ObserveReach(d time.Duration, reached int) {
	if m == nil {
		return
	}
	m.reachDuration.Observe(d.Seconds())
	m.reachedNodes.Set(float64(reached))
}

// CacheLookup counts one engine lookup.
func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := CacheMiss
	if hit {
		result = CacheHit
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// WriteTextfile writes all collected samples to path in the text exposition
// format. The file is written atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
