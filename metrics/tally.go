package metrics

import (
	"time"

	"github.com/katalvlaran/mstbench/core"
)

// Tally accumulates the counters of a single engine run.
//
// Usage contract:
//   - Start right before the selection loop and Stop right after it, so setup
//     work (sorting, adjacency, queue seeding) stays out of the timing window.
//   - Op once per primitive step, Select once per chosen edge.
//   - Finish once, after Stop.
//
// A Tally is owned by one run and is not safe for concurrent use.
type Tally struct {
	edges   []core.Edge
	cost    float64
	ops     int64
	started time.Time
	elapsed time.Duration
}

// NewTally returns a Tally whose edge buffer is pre-sized for capacity edges.
func NewTally(capacity int) *Tally {
	if capacity < 0 {
		capacity = 0
	}

	return &Tally{edges: make([]core.Edge, 0, capacity)}
}

// Start samples the monotonic clock at the beginning of the selection loop.
func (t *Tally) Start() { t.started = time.Now() }

// Stop samples the clock at the end of the selection loop.
// time.Since uses the monotonic reading taken by Start, so the result is never negative.
func (t *Tally) Stop() { t.elapsed = time.Since(t.started) }

// Op counts one primitive step.
func (t *Tally) Op() { t.ops++ }

// Select appends e to the tree and adds its weight to the running cost.
func (t *Tally) Select(e core.Edge) {
	t.edges = append(t.edges, e)
	t.cost += e.Weight
}

// Selected returns how many edges have been chosen so far.
func (t *Tally) Selected() int { return len(t.edges) }

// Finish freezes the tally into a Metrics record for graph g.
// The Tally must not be used afterwards.
func (t *Tally) Finish(alg Algorithm, g *core.Graph) Metrics {
	return Metrics{
		algorithm:  alg,
		graphID:    g.ID(),
		vertices:   g.NodeCount(),
		edgeCount:  g.EdgeCount(),
		totalCost:  t.cost,
		operations: t.ops,
		elapsed:    t.elapsed,
		mstEdges:   t.edges,
	}
}
