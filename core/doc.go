// Package core defines the immutable Graph and Edge types consumed by the MST
// engines, and the ordered Adjacency view derived from a Graph on demand.
//
// What & Why
//
//   - A Graph is a batch input: an externally assigned integer ID, an ordered
//     sequence of node labels and a sequence of weighted, undirected edges.
//   - The node order is part of the contract: Prim starts from the first node.
//   - Edges are stored exactly as given. Parallel edges, self-loops, negative
//     weights and duplicate labels pass through untouched; the engines tolerate
//     them mechanically.
//
// Immutability
//
//   - NewGraph copies the node and edge slices it receives.
//   - Nodes() and Edges() return fresh copies, so callers can sort or mutate the
//     result without affecting the Graph.
//   - A Graph is therefore safe for concurrent readers without locking.
//
// Adjacency view
//
//   - Adjacency() mirrors every edge (u, v, w) into (v, u, w) and lists, per node,
//     the incident edges in input edge order.
//   - The view is backed by slices indexed by node position; the label lookup map
//     is never iterated, so enumeration order is deterministic.
//   - Endpoints that are not declared nodes get their own entries after the
//     declared nodes instead of causing a panic.
//
// Complexity:
//
//   - NewGraph: O(V + E) time and space.
//   - Adjacency: O(V + E) time and space, built fresh per call.
package core
