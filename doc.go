// Package socialreach finds the most popular person in a directed social
// graph and measures how much of the graph that person reaches within a
// bounded number of hops.
//
// What is inside?
//
//	core/        — NodeID, Registry (unique display names), Adjacency (ordered successor lists)
//	popularity/  — max out-degree selection with an explicit tie-break policy
//	reach/       — bounded BFS from a substring-matched start, plus a cached Engine
//	ingest/      — CSV node/edge tables: parallel loading, malformed-row errors, writers
//	report/      — reach ratio, text and JSON summaries
//	builder/     — deterministic synthetic datasets (path, cycle, star, random)
//	pipeline/    — ingest → registry/adjacency → popularity → reach → report
//	metrics/     — Prometheus instruments with textfile export
//	config/      — YAML + .env + SOCIALREACH_* environment configuration
//	cmd/socialreach — the command-line tool
//
// Quick start
//
//	reg := core.BuildRegistry(rows)
//	adj, _ := core.BuildAdjacency(reg, edges)
//	top, _ := popularity.MostPopular(adj, reg)
//	res, err := reach.BoundedReach(adj, reg, top.Name, 3)
//	if errors.Is(err, reach.ErrStartNotFound) {
//	    // no such person
//	}
//	pct, _ := report.Ratio(res.Reached, adj.Len())
//
// All graph structures are immutable after construction and safe for
// concurrent readers.
package socialreach
