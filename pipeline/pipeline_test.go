package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialreach/builder"
	"github.com/katalvlaran/socialreach/config"
	"github.com/katalvlaran/socialreach/core"
	"github.com/katalvlaran/socialreach/ingest"
	"github.com/katalvlaran/socialreach/internal/logging"
	"github.com/katalvlaran/socialreach/metrics"
	"github.com/katalvlaran/socialreach/pipeline"
	"github.com/katalvlaran/socialreach/reach"
)

const (
	chainNodes = "id,name,new_id\n" +
		"a,Alice,0\n" +
		"b,Bob,1\n" +
		"c,Charlie,2\n" +
		"d,Dave,3\n" +
		"e,Eve,4\n"
	chainEdges = "node_1,node_2\n0,1\n1,2\n2,3\n3,4\n"
)

// fixture writes the two tables and returns a config pointing at them.
func fixture(t *testing.T, nodes, edges string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Nodes = filepath.Join(dir, "nodes.csv")
	cfg.Edges = filepath.Join(dir, "edges.csv")
	require.NoError(t, os.WriteFile(cfg.Nodes, []byte(nodes), 0o600))
	require.NoError(t, os.WriteFile(cfg.Edges, []byte(edges), 0o600))
	return &cfg
}

// quietCtx carries a logger that discards output below error.
func quietCtx(t *testing.T) context.Context {
	t.Helper()
	l, err := logging.New(logging.Options{Level: "error", Writer: &bytes.Buffer{}})
	require.NoError(t, err)
	return logging.WithLogger(context.Background(), l)
}

func TestRun_Chain(t *testing.T) {
	cfg := fixture(t, chainNodes, chainEdges)
	m := metrics.New()

	out, err := pipeline.Run(quietCtx(t), cfg, m)
	require.NoError(t, err)

	assert.Equal(t, "Alice", out.Popular.Name)
	require.NotNil(t, out.Reach)
	assert.Equal(t, 3, out.Reach.Reached)
	assert.Equal(t, 4, out.Summary.Total)
	assert.InDelta(t, 75.0, out.Summary.Ratio, 1e-9)
	assert.True(t, out.Summary.RatioAvailable)

	n, err := testutil.GatherAndCount(m.Registry(), "socialreach_ingest_rows_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRun_ExplicitStart(t *testing.T) {
	cfg := fixture(t, chainNodes, chainEdges)
	cfg.Start = "harl"
	cfg.MaxHops = 1

	out, err := pipeline.Run(quietCtx(t), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "Charlie", out.Reach.StartName)
	assert.Equal(t, 1, out.Reach.Reached)
}

func TestRun_StartNotFound(t *testing.T) {
	cfg := fixture(t, chainNodes, chainEdges)
	cfg.Start = "Mallory"

	out, err := pipeline.Run(quietCtx(t), cfg, nil)
	require.True(t, errors.Is(err, reach.ErrStartNotFound))
	require.NotNil(t, out)
	assert.Equal(t, "Alice", out.Summary.Popular)
	assert.Equal(t, "Mallory", out.Summary.StartNotFound)
	assert.Nil(t, out.Reach)
}

func TestRun_EmptyGraph(t *testing.T) {
	cfg := fixture(t, chainNodes, "node_1,node_2\n")

	out, err := pipeline.Run(quietCtx(t), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, core.UnknownName, out.Popular.Name)
	assert.Nil(t, out.Reach)
	assert.False(t, out.Summary.RatioAvailable)
}

func TestRun_MalformedInput(t *testing.T) {
	cfg := fixture(t, chainNodes, "node_1,node_2\n0,x\n")

	_, err := pipeline.Run(quietCtx(t), cfg, nil)
	assert.True(t, errors.Is(err, ingest.ErrMalformedRow))
}

func TestRun_MissingInputs(t *testing.T) {
	cfg := config.Default()
	_, err := pipeline.Run(quietCtx(t), &cfg, nil)
	assert.ErrorIs(t, err, config.ErrMissingInput)
}

// TestRun_PopularDominates: Alice follows two, Bob one.
func TestRun_PopularDominates(t *testing.T) {
	cfg := fixture(t,
		"id,name,new_id\nx,Alice,0\nx,Bob,1\nx,Charlie,2\n",
		"node_1,node_2\n1,2\n0,1\n0,2\n")
	cfg.TieBreak = "first-seen"

	out, err := pipeline.Run(quietCtx(t), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "Alice", out.Popular.Name)
	assert.Equal(t, 2, out.Popular.OutDegree)
}

func TestRunGraph_GeneratedStar(t *testing.T) {
	ds, err := builder.BuildDataset(nil, builder.Star(10))
	require.NoError(t, err)
	ctx := quietCtx(t)
	g, err := pipeline.FromDataset(ctx, ds, nil)
	require.NoError(t, err)

	cfg := config.Default()
	out, err := pipeline.RunGraph(ctx, g, &cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "Person 0", out.Popular.Name)
	assert.InDelta(t, 90.0, out.Summary.Ratio, 1e-9)
}

func TestQuerier_Caches(t *testing.T) {
	ctx := quietCtx(t)
	cfg := fixture(t, chainNodes, chainEdges)
	m := metrics.New()
	g, err := pipeline.Load(ctx, cfg, m)
	require.NoError(t, err)

	q, err := pipeline.NewQuerier(g, 4, m)
	require.NoError(t, err)

	first, err := q.Reach(ctx, "Bob", 2)
	require.NoError(t, err)
	second, err := q.Reach(ctx, "Bob", 2)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 2, first.Reached)

	_, err = q.Reach(ctx, "Zed", 2)
	assert.True(t, errors.Is(err, reach.ErrStartNotFound))

	n, err := testutil.GatherAndCount(m.Registry(), "socialreach_reach_cache_lookups_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
