// Package metrics defines the per-run result record of the MST engines, the
// Tally an engine fills while it runs, and a Prometheus Recorder that
// aggregates many records for batch reporting.
//
// A Metrics value is created once per (graph, algorithm) run and never changes
// afterwards. All fields are read through accessors; MSTEdges returns a copy.
package metrics

import (
	"time"

	"github.com/katalvlaran/mstbench/core"
)

// Algorithm names the engine that produced a Metrics record.
type Algorithm string

const (
	// Prim tags records produced by Prim's algorithm.
	Prim Algorithm = "Prim"

	// Kruskal tags records produced by Kruskal's algorithm.
	Kruskal Algorithm = "Kruskal"
)

// String returns the algorithm name.
func (a Algorithm) String() string { return string(a) }

// Metrics is the immutable result of one MST run.
type Metrics struct {
	algorithm  Algorithm
	graphID    int
	vertices   int
	edgeCount  int
	totalCost  float64
	operations int64
	elapsed    time.Duration
	mstEdges   []core.Edge
}

// Algorithm returns the engine tag.
func (m Metrics) Algorithm() Algorithm { return m.algorithm }

// GraphID returns the ID of the input graph.
func (m Metrics) GraphID() int { return m.graphID }

// Vertices returns the node count of the input graph.
func (m Metrics) Vertices() int { return m.vertices }

// EdgeCount returns the number of input edges (not the MST size).
func (m Metrics) EdgeCount() int { return m.edgeCount }

// TotalCost returns the sum of selected edge weights.
func (m Metrics) TotalCost() float64 { return m.totalCost }

// Operations returns the number of primitive steps of the selection loop.
// Kruskal counts examined edges, Prim counts queue pops.
func (m Metrics) Operations() int64 { return m.operations }

// ExecutionTime returns the wall-clock duration of the selection loop only.
func (m Metrics) ExecutionTime() time.Duration { return m.elapsed }

// ExecutionTimeMs returns ExecutionTime in fractional milliseconds.
func (m Metrics) ExecutionTimeMs() float64 {
	return float64(m.elapsed) / float64(time.Millisecond)
}

// Connected reports whether the run selected exactly Vertices()-1 edges.
func (m Metrics) Connected() bool { return len(m.mstEdges) == m.vertices-1 }

// MSTEdges returns a copy of the selected edges in selection order.
func (m Metrics) MSTEdges() []core.Edge {
	out := make([]core.Edge, len(m.mstEdges))
	copy(out, m.mstEdges)

	return out
}

// MSTSize returns the number of selected edges without copying them.
func (m Metrics) MSTSize() int { return len(m.mstEdges) }
