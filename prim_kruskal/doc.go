// Package prim_kruskal computes Minimum Spanning Trees (MST) of an immutable
// *core.Graph with Prim's and Kruskal's algorithms and reports each run as a
// metrics.Metrics record.
//
// What & Why
//
//   - An MST of a connected, weighted, undirected graph G = (V, E) is a subset
//     T ⊆ E that connects every vertex with |V|-1 edges of minimum total weight.
//   - On a disconnected graph both engines return the spanning forest (Kruskal)
//     or the tree of the start vertex's component (Prim) and report
//     Connected() == false. This is not an error.
//   - Both engines record how many primitive steps they performed and how long
//     their selection loop ran, so the two strategies can be compared per graph.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph, opts ...Option) (metrics.Metrics, error)
//
//   - Strategy: copy the edges, stable-sort them by weight, and scan them with
//     a fresh dsu.DisjointSet, keeping every edge whose endpoints lie in
//     different components.
//
//   - Operations: one per examined edge, selected or not. The scan visits
//     every edge unless WithEarlyExit is given.
//
//   - Timing: the scan only. Sorting and disjoint-set setup are excluded.
//
//   - Complexity: O(E log E) for the sort plus O(E log V) amortized union-find.
//
//   - Prim(g *core.Graph, opts ...Option) (metrics.Metrics, error)
//
//   - Strategy: start from the first node (or WithStart), seed a min-heap with
//     its incident edges and repeatedly pop the lightest edge. Stale entries
//     whose target is already in the tree are dropped when popped (lazy deletion).
//
//   - Operations: one per heap pop, including dropped stale entries.
//
//   - Timing: the pop loop only. Adjacency construction and heap seeding are excluded.
//
//   - Complexity: O(E log E) heap work, O(V + E) memory.
//
// Determinism
//
//   - Kruskal breaks weight ties by input edge order (stable sort).
//   - Prim breaks weight ties by push order, which follows the adjacency view's
//     enumeration order, which in turn follows input edge order.
//   - Running either engine twice on the same Graph yields the same edges in
//     the same order.
//
// Error Conditions
//
//   - ErrNilGraph      : graph == nil.
//   - ErrEmptyGraph    : the graph has no nodes (wraps core.ErrEmptyGraph).
//   - ErrStartNotFound : Prim's WithStart names a label that is not a node.
//   - ErrUnknownMethod : Compute received an unrecognized method name.
//
// Concurrency
//
//   - Each call owns its sort buffer, disjoint set, visited set and heap, and
//     never mutates the Graph. Calls on the same or different graphs may run
//     in parallel without synchronization.
//
// Input tolerance
//
//   - Self-loops, parallel edges, negative weights and duplicate labels are not
//     rejected. A self-loop is always skipped (Kruskal: same root; Prim: the
//     target is already visited when it is popped). Duplicate labels make the
//     result quality undefined but never crash a run.
package prim_kruskal
