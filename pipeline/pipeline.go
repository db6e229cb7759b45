// Package pipeline wires the stages of a socialreach run together:
// ingest → core.BuildRegistry + core.BuildAdjacency → popularity.MostPopular
// → reach → report.Summary.
//
// Every stage is timed into metrics and logged through the logger carried by
// the context (see internal/logging).
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/socialreach/config"
	"github.com/katalvlaran/socialreach/core"
	"github.com/katalvlaran/socialreach/ingest"
	"github.com/katalvlaran/socialreach/internal/logging"
	"github.com/katalvlaran/socialreach/metrics"
	"github.com/katalvlaran/socialreach/popularity"
	"github.com/katalvlaran/socialreach/reach"
	"github.com/katalvlaran/socialreach/report"
)

// Stage names used in logs and the stage_duration_seconds metric.
const (
	StageLoad    = "load"
	StageBuild   = "build"
	StagePopular = "popular"
	StageReach   = "reach"
)

// Graph is the immutable in-memory graph shared by every query of a run.
type Graph struct {
	Registry  *core.Registry
	Adjacency *core.Adjacency
}

// Outcome is everything one Run produced.
type Outcome struct {
	Graph   *Graph
	Popular popularity.Result

	// Reach is nil when the graph is empty or the start was not found.
	Reach   *reach.Result
	Summary report.Summary
}

// Load reads both tables named by cfg and builds the graph.
func Load(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (*Graph, error) {
	if err := cfg.RequireInputs(); err != nil {
		return nil, err
	}
	log := logging.FromContext(ctx)

	t0 := time.Now()
	ds, err := ingest.LoadFiles(ctx, cfg.Nodes, cfg.Edges, cfg.Layout)
	if err != nil {
		return nil, fmt.Errorf("pipeline: load: %w", err)
	}
	m.ObserveStage(StageLoad, time.Since(t0))
	m.RowsIngested(ingest.TableNodes, len(ds.Nodes))
	m.RowsIngested(ingest.TableEdges, len(ds.Edges))
	log.Info("tables loaded", "nodes", len(ds.Nodes), "edges", len(ds.Edges), "elapsed", time.Since(t0))

	return FromDataset(ctx, ds, m)
}

// FromDataset builds the registry and adjacency from already parsed rows.
func FromDataset(ctx context.Context, ds *ingest.Dataset, m *metrics.Metrics) (*Graph, error) {
	if ds == nil {
		return nil, errors.New("pipeline: nil dataset")
	}
	log := logging.FromContext(ctx)

	t0 := time.Now()
	reg := core.BuildRegistry(ds.Nodes)
	adj, err := core.BuildAdjacency(reg, ds.Edges)
	if err != nil {
		return nil, fmt.Errorf("pipeline: build: %w", err)
	}
	m.ObserveStage(StageBuild, time.Since(t0))
	m.GraphNodes(adj.Len())
	m.EdgesDropped(adj.Dropped())

	if adj.Dropped() > 0 {
		log.Warn("edges with unregistered source dropped", "dropped", adj.Dropped())
	}
	log.Info("graph built",
		"registered", reg.Len(), "with_edges", adj.Len(), "edges", adj.EdgeCount())

	return &Graph{Registry: reg, Adjacency: adj}, nil
}

// Popular runs the selector with the configured tie-break policy.
func Popular(ctx context.Context, g *Graph, tieBreak string, m *metrics.Metrics) (popularity.Result, error) {
	tb, err := popularity.ParseTieBreak(tieBreak)
	if err != nil {
		return popularity.Result{Name: core.UnknownName}, err
	}

	t0 := time.Now()
	top, err := popularity.MostPopular(g.Adjacency, g.Registry, popularity.WithTieBreak(tb))
	if err != nil {
		return top, fmt.Errorf("pipeline: popular: %w", err)
	}
	m.ObserveStage(StagePopular, time.Since(t0))
	logging.FromContext(ctx).Info("most popular selected",
		"name", top.Name, "id", top.ID, "out_degree", top.OutDegree, "tie_break", tb)

	return top, nil
}

// Run executes the whole pipeline. With cfg.Start empty the traversal starts
// at the popular node itself; otherwise the start is resolved by substring.
//
// A start that matches no name still yields an Outcome (with
// Summary.StartNotFound set) together with an error wrapping
// reach.ErrStartNotFound, so callers can print the popularity line first.
func Run(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (*Outcome, error) {
	g, err := Load(ctx, cfg, m)
	if err != nil {
		return nil, err
	}
	return RunGraph(ctx, g, cfg, m)
}

// RunGraph is Run over an already built graph.
func RunGraph(ctx context.Context, g *Graph, cfg *config.Config, m *metrics.Metrics) (*Outcome, error) {
	log := logging.FromContext(ctx)

	top, err := Popular(ctx, g, cfg.TieBreak, m)
	if err != nil {
		return nil, err
	}
	out := &Outcome{Graph: g, Popular: top}
	total := g.Adjacency.Len()

	if total == 0 && cfg.Start == "" {
		log.Warn("graph has no edges; reachability skipped")
		out.Summary = report.NewSummary(top, nil, total)
		out.Summary.MaxHops = cfg.MaxHops
		return out, nil
	}

	t0 := time.Now()
	var res *reach.Result
	if cfg.Start == "" {
		res, err = reach.FromID(g.Adjacency, top.ID, cfg.MaxHops, reach.WithContext(ctx))
		if err == nil {
			res.StartName = top.Name
		}
	} else {
		res, err = reach.BoundedReach(g.Adjacency, g.Registry, cfg.Start, cfg.MaxHops, reach.WithContext(ctx))
	}
	switch {
	case errors.Is(err, reach.ErrStartNotFound):
		log.Warn("start not found", "start", cfg.Start)
		out.Summary = report.NewSummary(top, nil, total)
		out.Summary.StartNotFound = cfg.Start
		return out, err
	case err != nil:
		return nil, fmt.Errorf("pipeline: reach: %w", err)
	}
	elapsed := time.Since(t0)
	m.ObserveStage(StageReach, elapsed)
	m.ObserveReach(elapsed, res.Reached)
	log.Info("reach computed",
		"start", res.StartName, "max_hops", res.MaxHops, "reached", res.Reached, "total", total)

	out.Reach = res
	out.Summary = report.NewSummary(top, res, total)

	return out, nil
}
