package core

// NewGraph creates a Graph from an ID, an ordered node sequence and an edge sequence.
// Both slices are copied; later changes to the arguments do not reach the Graph.
// No validation is performed.
//
// Complexity: O(V + E).
func NewGraph(id int, nodes []string, edges []Edge) *Graph {
	g := &Graph{
		id:    id,
		nodes: make([]string, len(nodes)),
		edges: make([]Edge, len(edges)),
	}
	copy(g.nodes, nodes)
	copy(g.edges, edges)

	return g
}

// ID returns the externally assigned graph identifier.
func (g *Graph) ID() int { return g.id }

// Nodes returns a copy of the node labels in their original order.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of the edges in their original order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns the number of node labels, duplicates included.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of input edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns the i-th node label. It panics if i is out of range, like a slice index.
func (g *Graph) Node(i int) string { return g.nodes[i] }

// FirstNode returns the first node label, or ErrEmptyGraph when there are no nodes.
func (g *Graph) FirstNode() (string, error) {
	if len(g.nodes) == 0 {
		return "", ErrEmptyGraph
	}

	return g.nodes[0], nil
}

// HasNode reports whether label is one of the declared nodes.
// Complexity: O(V).
func (g *Graph) HasNode(label string) bool {
	for _, n := range g.nodes {
		if n == label {
			return true
		}
	}

	return false
}
