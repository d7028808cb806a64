// Package bfs provides breadth-first search over a core.Graph, returning hop
// distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex to distance (edges) from start
//   - Parent: map from vertex to its predecessor in the BFS tree
//   - OnVisit hook, which may abort the walk with an error.
//   - Neighbor filtering via WithFilterNeighbor and a MaxDepth limit.
//   - Edge weights are ignored: only the presence of an edge matters.
//
// Determinism
//
//	Neighbors are taken from core.Adjacency, which lists incident edges in
//	input edge order, so the visit sequence is fully reproducible.
//
// Self-loops and parallel edges are harmless: a vertex is enqueued only the
// first time it is seen.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (adjacency view, queue, Depth and Parent maps)
//
// Usage
//
//	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//		// a context error, or a wrapped OnVisit error
//	}
//	path, _ := res.PathTo("C")
//
// verify.Spanning uses BFS to check that an MST reaches every vertex.
package bfs
