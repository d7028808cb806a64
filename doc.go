// Package mstbench computes Minimum Spanning Trees of weighted undirected
// graphs with Prim's and Kruskal's algorithms and measures how each one
// performs on the same input.
//
// What is mstbench?
//
//	A small toolkit and CLI that brings together:
//		• An immutable graph model with an ordered adjacency view
//		• A disjoint-set (union-find) with iterative path compression
//		• Kruskal and Prim engines that report cost, operations and loop timing
//		• Independent checks: acyclicity, coverage, cost agreement
//		• Deterministic graph generators for fixtures and benchmarks
//		• JSON/YAML input, JSON/CSV results, Prometheus textfile metrics
//
// Packages:
//
//	core/         - Graph, Edge and the Adjacency view
//	dsu/          - DisjointSet
//	prim_kruskal/ - Prim, Kruskal and Compute
//	metrics/      - the per-run Metrics record, Tally and the Prometheus Recorder
//	verify/       - result checks used by the runner and the property tests
//	builder/      - deterministic generators (path, cycle, star, grid, random)
//	graphio/      - document readers and writers
//	runner/       - concurrent batch execution
//	bench/        - repeated-run benchmark harness
//	bfs/          - breadth-first walker used for coverage checks
//	cmd/mstbench/ - the run, bench and generate commands
//
// Quick ASCII example:
//
//	A──1──B
//	│     │
//	4     2
//	│     │
//	D──3──C
//
// has the MST {A–B, B–C, C–D} of cost 6; the heaviest edge A–D is left out.
//
// Disconnected inputs are not errors: both engines return what they can reach
// and report Connected() == false.
//
//	go install github.com/katalvlaran/mstbench/cmd/mstbench@latest
package mstbench
