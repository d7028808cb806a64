package bench_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstbench/bench"
	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/prim_kruskal"
)

var smallCfg = bench.Config{Warmup: 1, Iterations: 3, InnerRuns: 4}

func triangle(id int) *core.Graph {
	return core.NewGraph(id, []string{"A", "B", "C"}, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "C", Weight: 4},
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := bench.DefaultConfig()
	assert.Equal(t, bench.Config{Warmup: 5, Iterations: 30, InnerRuns: 50}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	for _, cfg := range []bench.Config{
		{Warmup: -1, Iterations: 1, InnerRuns: 1},
		{Warmup: 0, Iterations: 0, InnerRuns: 1},
		{Warmup: 0, Iterations: 1, InnerRuns: 0},
	} {
		assert.ErrorIs(t, cfg.Validate(), bench.ErrInvalidConfig, "%+v", cfg)
	}
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	res, err := bench.Run(context.Background(), triangle(9), smallCfg, bench.WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, 9, res.GraphID)
	assert.Equal(t, 3, res.Vertices)
	assert.Equal(t, 3, res.Edges)
	// Operation counts are deterministic, so the means are exact.
	assert.Equal(t, 2.0, res.Prim.AvgOps)
	assert.Equal(t, 3.0, res.Kruskal.AvgOps)
	assert.GreaterOrEqual(t, res.Prim.AvgMs, 0.0)
	assert.GreaterOrEqual(t, res.Kruskal.AvgMs, 0.0)
	assert.Contains(t, buf.String(), "benchmarked graph")
	assert.Contains(t, buf.String(), "graph_id=9")
}

func TestRun_Errors(t *testing.T) {
	_, err := bench.Run(context.Background(), nil, smallCfg)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	_, err = bench.Run(context.Background(), core.NewGraph(1, nil, nil), smallCfg)
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyGraph)

	_, err = bench.Run(context.Background(), triangle(1), bench.Config{})
	assert.ErrorIs(t, err, bench.ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bench.Run(ctx, triangle(1), smallCfg)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunAll(t *testing.T) {
	graphs := []*core.Graph{triangle(1), core.NewGraph(2, nil, nil), triangle(3)}

	results, err := bench.RunAll(context.Background(), graphs, smallCfg)
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyGraph)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].GraphID)
	assert.Equal(t, 3, results[1].GraphID)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err = bench.RunAll(ctx, graphs, smallCfg)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}
