// Package verify checks MST results independently of the engines that produced them.
//
// The checks re-derive structure from the selected edges alone: a fresh
// disjoint-set pass for cycles, a breadth-first traversal for coverage, and a
// tolerant float comparison for costs. They are used by the batch runner
// after every run and by the property tests.
package verify

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mstbench/bfs"
	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/dsu"
	"github.com/katalvlaran/mstbench/metrics"
)

// Tolerances for comparing MST costs: two costs agree when they differ by at
// most AbsTolerance, or by at most RelTolerance of the larger magnitude.
const (
	AbsTolerance = 1e-3
	RelTolerance = 1e-6
)

var (
	// ErrCycle indicates the selected edges contain a cycle.
	ErrCycle = errors.New("verify: selected edges contain a cycle")

	// ErrNotSpanning indicates a run claims connectivity but its edges miss a vertex.
	ErrNotSpanning = errors.New("verify: selected edges do not span the graph")

	// ErrEdgeCount indicates more edges were selected than a tree can hold.
	ErrEdgeCount = errors.New("verify: too many selected edges")

	// ErrCostMismatch indicates a reported cost disagrees with the edges or with the other engine.
	ErrCostMismatch = errors.New("verify: total cost mismatch")

	// ErrConnectivityMismatch indicates Prim and Kruskal disagree on connectivity.
	ErrConnectivityMismatch = errors.New("verify: connectivity mismatch")
)

// CostsAgree reports whether a and b are equal within AbsTolerance or RelTolerance.
// Equal infinities agree; an infinity never agrees with a different value.
func CostsAgree(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	diff := math.Abs(a - b)
	if diff <= AbsTolerance {
		return true
	}

	return diff <= RelTolerance*math.Max(math.Abs(a), math.Abs(b))
}

// Acyclic reports whether edges form a forest, using its own disjoint-set.
// Complexity: O(E log E) amortized.
func Acyclic(edges []core.Edge) bool {
	set := dsu.New(nil)
	for _, e := range edges {
		if !set.Union(e.From, e.To) {
			return false
		}
	}

	return true
}

// Spanning reports whether edges connect every label in nodes, by a
// breadth-first traversal from the first node. No nodes is vacuously spanning.
// Complexity: O(V + E).
func Spanning(nodes []string, edges []core.Edge) bool {
	if len(nodes) == 0 {
		return true
	}
	res, err := bfs.BFS(core.NewGraph(0, nodes, edges), nodes[0])
	if err != nil {
		return false
	}
	for _, n := range nodes {
		if !res.Reached(n) {
			return false
		}
	}

	return true
}

// Check validates one record against the graph it was computed from.
// All failed checks are joined into the returned error.
func Check(g *core.Graph, m metrics.Metrics) error {
	edges := m.MSTEdges()
	var errs []error

	if !Acyclic(edges) {
		errs = append(errs, ErrCycle)
	}
	if len(edges) > g.NodeCount()-1 {
		errs = append(errs, fmt.Errorf("%w: %d for %d vertices", ErrEdgeCount, len(edges), g.NodeCount()))
	}
	if m.Connected() && !Spanning(g.Nodes(), edges) {
		errs = append(errs, ErrNotSpanning)
	}

	var sum float64
	for _, e := range edges {
		sum += e.Weight
	}
	if !CostsAgree(sum, m.TotalCost()) {
		errs = append(errs, fmt.Errorf("%w: edges sum to %g, record says %g", ErrCostMismatch, sum, m.TotalCost()))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%s graph %d: %w", m.Algorithm(), m.GraphID(), errors.Join(errs...))
}

// Compare cross-checks a Prim record against a Kruskal record of the same graph:
// both must agree on connectivity, and on a connected graph on the total cost.
func Compare(prim, kruskal metrics.Metrics) error {
	if prim.Connected() != kruskal.Connected() {
		return fmt.Errorf("%w: graph %d prim=%t kruskal=%t",
			ErrConnectivityMismatch, prim.GraphID(), prim.Connected(), kruskal.Connected())
	}
	if prim.Connected() && !CostsAgree(prim.TotalCost(), kruskal.TotalCost()) {
		return fmt.Errorf("%w: graph %d prim=%g kruskal=%g",
			ErrCostMismatch, prim.GraphID(), prim.TotalCost(), kruskal.TotalCost())
	}

	return nil
}
