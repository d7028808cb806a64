// Package runner executes Prim and Kruskal over a batch of graphs.
//
// Graphs are processed on a bounded pool of goroutines. Each graph is handled
// by exactly one goroutine, which runs both engines one after the other, so
// the engines themselves stay single-threaded and share nothing across graphs.
// Results keep the input order regardless of completion order.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/metrics"
	"github.com/katalvlaran/mstbench/prim_kruskal"
	"github.com/katalvlaran/mstbench/verify"
)

// Result holds both engine records for one graph.
//
// Err is set when either engine rejected the graph or the batch was cancelled
// before the graph was scheduled; the records are nil in that case.
// VerifyErr is set when the records were produced but failed an independent check.
type Result struct {
	Graph     *core.Graph
	Prim      *metrics.Metrics
	Kruskal   *metrics.Metrics
	Err       error
	VerifyErr error
}

// Report is the outcome of one batch.
type Report struct {
	RunID    string
	Results  []Result
	Failed   int
	Invalid  int
	Duration time.Duration
}

// Records returns every produced record, all Prim records first, then all
// Kruskal records, each group in input order.
func (r Report) Records() []metrics.Metrics {
	var prim, kruskal []metrics.Metrics
	for _, res := range r.Results {
		if res.Prim != nil {
			prim = append(prim, *res.Prim)
		}
		if res.Kruskal != nil {
			kruskal = append(kruskal, *res.Kruskal)
		}
	}

	return append(prim, kruskal...)
}

// Runner runs batches. A Runner is safe to reuse; each Run is independent.
type Runner struct {
	workers  int
	logger   *slog.Logger
	recorder *metrics.Recorder
	verify   bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds the number of graphs processed at once. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n >= 1 {
			r.workers = n
		}
	}
}

// WithLogger sets the batch logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRecorder publishes every run to rec.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(r *Runner) {
		r.recorder = rec
	}
}

// WithVerify enables or disables the independent result checks.
func WithVerify(enabled bool) Option {
	return func(r *Runner) {
		r.verify = enabled
	}
}

// New returns a Runner with GOMAXPROCS workers, a discarding logger, no
// recorder and verification enabled, then applies opts.
func New(opts ...Option) *Runner {
	r := &Runner{
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.New(slog.DiscardHandler),
		verify:  true,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run processes graphs and returns a report with one Result per graph.
//
// A graph that an engine rejects does not stop the batch; its error is kept
// on its Result and counted in Report.Failed. When ctx is cancelled no new
// graphs are scheduled, graphs already running finish, the remaining Results
// carry the context error, and Run returns that error with the partial report.
func (r *Runner) Run(ctx context.Context, graphs []*core.Graph) (Report, error) {
	started := time.Now()
	report := Report{RunID: uuid.NewString(), Results: make([]Result, len(graphs))}
	log := r.logger.With("run_id", report.RunID)
	log.Info("batch started", "graphs", len(graphs), "workers", r.workers, "verify", r.verify)

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)

	scheduled := 0
	for i, g := range graphs {
		if egctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			report.Results[i] = r.process(log, g)
			return nil
		})
		scheduled++
	}
	_ = eg.Wait() // process never returns an error

	err := ctx.Err()
	for i := scheduled; i < len(graphs); i++ {
		report.Results[i] = Result{Graph: graphs[i], Err: err}
	}
	for _, res := range report.Results {
		if res.Err != nil {
			report.Failed++
		}
		if res.VerifyErr != nil {
			report.Invalid++
		}
	}
	report.Duration = time.Since(started)

	log.Info("batch finished",
		"graphs", len(graphs),
		"failed", report.Failed,
		"invalid", report.Invalid,
		"duration", report.Duration,
	)
	if err != nil {
		return report, fmt.Errorf("runner: %w", err)
	}

	return report, nil
}

// process runs both engines on one graph and applies the checks.
func (r *Runner) process(log *slog.Logger, g *core.Graph) Result {
	res := Result{Graph: g}

	prim, err := prim_kruskal.Prim(g)
	if err != nil {
		r.recorder.RecordFailure(metrics.Prim)
		res.Err = err
	}
	kruskal, kerr := prim_kruskal.Kruskal(g)
	if kerr != nil {
		r.recorder.RecordFailure(metrics.Kruskal)
		if res.Err == nil {
			res.Err = kerr
		}
	}
	if res.Err != nil {
		log.Warn("graph failed", "graph_id", graphID(g), "error", res.Err)
		return res
	}

	res.Prim, res.Kruskal = &prim, &kruskal
	r.recorder.Record(prim)
	r.recorder.Record(kruskal)
	log.Debug("graph done",
		"graph_id", g.ID(),
		"vertices", g.NodeCount(),
		"edges", g.EdgeCount(),
		"cost", prim.TotalCost(),
		"connected", prim.Connected(),
		"prim_ops", prim.Operations(),
		"kruskal_ops", kruskal.Operations(),
	)

	if r.verify {
		res.VerifyErr = check(g, prim, kruskal)
		if res.VerifyErr != nil {
			log.Warn("verification failed", "graph_id", g.ID(), "error", res.VerifyErr)
		}
	}

	return res
}

// check runs the per-record checks and the cross-engine comparison; the
// first failure wins.
func check(g *core.Graph, prim, kruskal metrics.Metrics) error {
	if err := verify.Check(g, prim); err != nil {
		return err
	}
	if err := verify.Check(g, kruskal); err != nil {
		return err
	}

	return verify.Compare(prim, kruskal)
}

// graphID tolerates nil graphs in log lines.
func graphID(g *core.Graph) int {
	if g == nil {
		return -1
	}

	return g.ID()
}
