package prim_kruskal

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/dsu"
	"github.com/katalvlaran/mstbench/metrics"
)

// Kruskal computes the Minimum Spanning Tree (or forest) of graph by scanning
// its edges in ascending weight order with a disjoint-set.
//
// Error Conditions:
//   - ErrNilGraph   : graph == nil.
//   - ErrEmptyGraph : graph has no nodes.
//
// Steps:
//  1. Validate the graph.
//  2. Copy the edges and sort them ascending by weight with a stable sort, so
//     equal weights keep their input order.
//  3. Create a fresh DisjointSet over all nodes.
//  4. Start the timer; for every sorted edge (u,v): count one operation, compare
//     Find(u) and Find(v); if they differ, select the edge and Union the roots,
//     otherwise discard it because it would close a cycle.
//  5. Stop the timer and build the record; Connected() is derived from the
//     number of selected edges.
//
// Complexity: O(E log E + E log V) time, O(V + E) memory.
func Kruskal(graph *core.Graph, opts ...Option) (metrics.Metrics, error) {
	// 1. Preconditions.
	if err := validate(graph); err != nil {
		return metrics.Metrics{}, err
	}
	o := resolveOptions(opts)

	// 2. Sort a private copy of the edges; SortStableFunc keeps tie order.
	edges := graph.Edges()
	slices.SortStableFunc(edges, func(a, b core.Edge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	// 3. Fresh union-find for this run only.
	set := dsu.New(graph.Nodes())

	need := graph.NodeCount() - 1
	tally := metrics.NewTally(need)

	// 4. Timed selection scan.
	tally.Start()
	for _, e := range edges {
		if o.EarlyExit && tally.Selected() == need {
			break
		}
		tally.Op() // every examined edge counts
		rootFrom := set.Find(e.From)
		rootTo := set.Find(e.To)
		if rootFrom == rootTo {
			continue // same component: e would close a cycle
		}
		tally.Select(e)
		set.Union(rootFrom, rootTo)
	}
	tally.Stop()

	// 5. Freeze the record.
	return tally.Finish(metrics.Kruskal, graph), nil
}
