// Package bench measures Prim and Kruskal over repeated runs.
//
// One benchmark of a graph is:
//
//   - Warmup passes of both engines, discarded.
//   - Iterations rounds. In each round every engine runs InnerRuns times back to
//     back; the round's time is the wall time of those runs divided by
//     InnerRuns, and its operation count is the integer mean of theirs.
//   - The reported figures are the means over all rounds.
//
// Wall time here covers the whole engine call, setup included, unlike the
// per-run ExecutionTime of metrics.Metrics which covers the selection loop only.
package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/metrics"
	"github.com/katalvlaran/mstbench/prim_kruskal"
)

// ErrInvalidConfig indicates a non-positive iteration or inner-run count, or a negative warmup.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Config sets the repetition counts.
type Config struct {
	Warmup     int
	Iterations int
	InnerRuns  int
}

// DefaultConfig returns 5 warmup passes, 30 rounds and 50 inner runs per round.
func DefaultConfig() Config {
	return Config{Warmup: 5, Iterations: 30, InnerRuns: 50}
}

// Validate checks the repetition counts.
func (c Config) Validate() error {
	if c.Warmup < 0 || c.Iterations < 1 || c.InnerRuns < 1 {
		return fmt.Errorf("%w: warmup=%d iterations=%d inner_runs=%d",
			ErrInvalidConfig, c.Warmup, c.Iterations, c.InnerRuns)
	}

	return nil
}

// Stats holds one engine's averages for one graph.
type Stats struct {
	AvgMs  float64
	AvgOps float64
}

// Result is the benchmark outcome of one graph.
type Result struct {
	GraphID  int
	Vertices int
	Edges    int
	Prim     Stats
	Kruskal  Stats
}

// Option configures a benchmark.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger for per-graph progress lines. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func resolve(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// engine is the shape shared by prim_kruskal.Prim and prim_kruskal.Kruskal.
type engine func(*core.Graph, ...prim_kruskal.Option) (metrics.Metrics, error)

// Run benchmarks g with cfg. The context is checked between rounds.
func Run(ctx context.Context, g *core.Graph, cfg Config, opts ...Option) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if g == nil {
		return Result{}, fmt.Errorf("bench: %w", prim_kruskal.ErrNilGraph)
	}
	o := resolve(opts)

	for i := 0; i < cfg.Warmup; i++ {
		if _, err := prim_kruskal.Prim(g); err != nil {
			return Result{}, fmt.Errorf("bench: graph %d: %w", g.ID(), err)
		}
		if _, err := prim_kruskal.Kruskal(g); err != nil {
			return Result{}, fmt.Errorf("bench: graph %d: %w", g.ID(), err)
		}
	}

	var primMs, primOps, kruskalMs, kruskalOps float64
	for i := 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		ms, ops, err := round(g, prim_kruskal.Prim, cfg.InnerRuns)
		if err != nil {
			return Result{}, fmt.Errorf("bench: graph %d: %w", g.ID(), err)
		}
		primMs += ms
		primOps += float64(ops)

		ms, ops, err = round(g, prim_kruskal.Kruskal, cfg.InnerRuns)
		if err != nil {
			return Result{}, fmt.Errorf("bench: graph %d: %w", g.ID(), err)
		}
		kruskalMs += ms
		kruskalOps += float64(ops)
	}

	n := float64(cfg.Iterations)
	res := Result{
		GraphID:  g.ID(),
		Vertices: g.NodeCount(),
		Edges:    g.EdgeCount(),
		Prim:     Stats{AvgMs: primMs / n, AvgOps: primOps / n},
		Kruskal:  Stats{AvgMs: kruskalMs / n, AvgOps: kruskalOps / n},
	}
	o.logger.Info("benchmarked graph",
		"graph_id", res.GraphID,
		"vertices", res.Vertices,
		"edges", res.Edges,
		"prim_ms", res.Prim.AvgMs,
		"prim_ops", res.Prim.AvgOps,
		"kruskal_ms", res.Kruskal.AvgMs,
		"kruskal_ops", res.Kruskal.AvgOps,
	)

	return res, nil
}

// round runs fn inner times and returns the mean milliseconds per run and the
// integer mean operation count.
func round(g *core.Graph, fn engine, inner int) (float64, int64, error) {
	var total int64
	start := time.Now()
	for j := 0; j < inner; j++ {
		m, err := fn(g)
		if err != nil {
			return 0, 0, err
		}
		total += m.Operations()
	}
	elapsed := time.Since(start)

	return float64(elapsed.Nanoseconds()) / 1e6 / float64(inner), total / int64(inner), nil
}

// RunAll benchmarks graphs in order. A graph that fails is logged and skipped;
// the joined errors of all skipped graphs are returned with the other results.
// Cancellation stops the loop and is returned as is.
func RunAll(ctx context.Context, graphs []*core.Graph, cfg Config, opts ...Option) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := resolve(opts)

	results := make([]Result, 0, len(graphs))
	var errs []error
	for _, g := range graphs {
		res, err := Run(ctx, g, cfg, opts...)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return results, ctxErr
			}
			o.logger.Warn("benchmark failed", "error", err)
			errs = append(errs, err)
			continue
		}
		results = append(results, res)
	}

	return results, errors.Join(errs...)
}
