package prim_kruskal

import (
	"cmp"
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/metrics"
)

// Prim computes the Minimum Spanning Tree of the start vertex's component by
// growing a single tree with a lazily pruned min-heap of candidate edges.
//
// Error Conditions:
//   - ErrNilGraph      : graph == nil.
//   - ErrEmptyGraph    : graph has no nodes.
//   - ErrStartNotFound : WithStart names a label that is not a node.
//
// Steps:
//  1. Validate the graph and pick the start vertex: the first node unless WithStart is given.
//  2. Build the adjacency view.
//  3. Mark the start vertex visited and push all of its incident edges.
//  4. Start the timer; while the heap is non-empty and fewer than |V|-1 edges are selected:
//     a. Pop the lightest edge (u→v) and count one operation.
//     b. If v is already visited, drop the entry (lazy deletion).
//     c. Otherwise mark v visited, select the edge, and push every edge
//     leaving v whose target is not yet visited.
//  5. Stop the timer and build the record.
//
// State per vertex: Unvisited → Frontier (some edge to it is queued) → Visited.
// A vertex becomes Visited once; an edge may be queued more than once but is
// selected at most once because of the check in 4b.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, opts ...Option) (metrics.Metrics, error) {
	// 1. Preconditions and start vertex.
	if err := validate(graph); err != nil {
		return metrics.Metrics{}, err
	}
	o := resolveOptions(opts)
	start := graph.Node(0)
	if o.Start != "" {
		if !graph.HasNode(o.Start) {
			return metrics.Metrics{}, fmt.Errorf("%w: %q", ErrStartNotFound, o.Start)
		}
		start = o.Start
	}

	// 2. Ordered adjacency view, built for this run only.
	adj := graph.Adjacency()

	// 3. Seed: the start vertex is in the tree, all its edges are candidates.
	need := graph.NodeCount() - 1
	visited := make(map[string]bool, adj.Len())
	visited[start] = true
	pq := &edgePQ{}
	for _, e := range adj.Incident(start) {
		pq.push(e)
	}
	tally := metrics.NewTally(need)

	// 4. Timed pop loop.
	tally.Start()
	for pq.Len() > 0 && tally.Selected() < need {
		e := heap.Pop(pq).(pqItem).edge
		tally.Op() // stale pops count too
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		tally.Select(e)
		for _, next := range adj.Incident(e.To) {
			if !visited[next.To] {
				pq.push(next)
			}
		}
	}
	tally.Stop()

	// 5. Freeze the record.
	return tally.Finish(metrics.Prim, graph), nil
}

// pqItem is a queued candidate edge with its push sequence number.
type pqItem struct {
	edge core.Edge
	seq  uint64
}

// edgePQ implements heap.Interface as a min-heap ordered by (Weight, seq).
// The sequence number makes equal weights pop in push order.
type edgePQ struct {
	items []pqItem
	next  uint64
}

// push enqueues e with the next sequence number.
// Complexity: O(log N).
func (pq *edgePQ) push(e core.Edge) {
	heap.Push(pq, pqItem{edge: e, seq: pq.next})
	pq.next++
}

// Len returns the number of queued entries.
func (pq *edgePQ) Len() int { return len(pq.items) }

// Less orders by weight, then by push order.
func (pq *edgePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if c := cmp.Compare(a.edge.Weight, b.edge.Weight); c != 0 {
		return c < 0
	}

	return a.seq < b.seq
}

// Swap swaps entries i and j.
func (pq *edgePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends x; called by heap.Push.
func (pq *edgePQ) Push(x any) { pq.items = append(pq.items, x.(pqItem)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *edgePQ) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
