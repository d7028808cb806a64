package core

import (
	"errors"
	"fmt"
)

// ErrEmptyGraph indicates an operation needs at least one node but the Graph has none.
var ErrEmptyGraph = errors.New("core: graph has no nodes")

// Edge is a weighted, undirected connection between two node labels.
//
// Weight carries no sign constraint; negative and zero weights are processed as-is.
type Edge struct {
	// From is one endpoint label.
	From string

	// To is the other endpoint label.
	To string

	// Weight is the cost of the edge.
	Weight float64
}

// Reverse returns the mirrored edge (To, From, Weight).
// Complexity: O(1).
func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From, Weight: e.Weight}
}

// IsLoop reports whether both endpoints are the same label.
func (e Edge) IsLoop() bool { return e.From == e.To }

// String renders the edge as "From-To:Weight".
func (e Edge) String() string {
	return fmt.Sprintf("%s-%s:%g", e.From, e.To, e.Weight)
}

// Graph is an immutable weighted undirected graph.
//
// id is assigned by whoever constructs the Graph; nodes keeps the caller's
// order; edges keeps the caller's order and may contain parallel edges and loops.
type Graph struct {
	id    int
	nodes []string
	edges []Edge
}
