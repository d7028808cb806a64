package core

// Adjacency is an ordered, per-node listing of incident edges derived from a Graph.
//
// Entry i belongs to the i-th distinct label: declared nodes first, in node
// order, then any undeclared edge endpoints in order of first appearance.
// Each entry lists edges oriented away from its node (From == node), in
// input edge order.
type Adjacency struct {
	labels []string       // label of entry i
	index  map[string]int // label -> entry index; lookup only, never iterated
	lists  [][]Edge       // incident edges of entry i
}

// Adjacency builds a fresh adjacency view of g.
//
// Steps:
//  1. Register every declared node; a repeated label keeps its first entry.
//  2. For each edge (u, v, w) in input order, append (u, v, w) to u's entry and
//     (v, u, w) to v's entry. A self-loop therefore appears twice in its entry.
//
// Complexity: O(V + E) time and space.
func (g *Graph) Adjacency() *Adjacency {
	a := &Adjacency{
		labels: make([]string, 0, len(g.nodes)),
		index:  make(map[string]int, len(g.nodes)),
		lists:  make([][]Edge, 0, len(g.nodes)),
	}
	for _, n := range g.nodes {
		a.entry(n)
	}
	for _, e := range g.edges {
		from := a.entry(e.From)
		a.lists[from] = append(a.lists[from], e)
		to := a.entry(e.To)
		a.lists[to] = append(a.lists[to], e.Reverse())
	}

	return a
}

// entry returns the index for label, registering it if needed.
func (a *Adjacency) entry(label string) int {
	if i, ok := a.index[label]; ok {
		return i
	}
	i := len(a.labels)
	a.index[label] = i
	a.labels = append(a.labels, label)
	a.lists = append(a.lists, nil)

	return i
}

// Incident returns the edges leaving label, in enumeration order.
// The returned slice belongs to the view and must not be modified.
// Unknown labels yield nil.
// Complexity: O(1).
func (a *Adjacency) Incident(label string) []Edge {
	i, ok := a.index[label]
	if !ok {
		return nil
	}

	return a.lists[i]
}

// Degree returns the number of incident entries of label (loops count twice).
func (a *Adjacency) Degree(label string) int { return len(a.Incident(label)) }

// Labels returns the entry labels in enumeration order.
func (a *Adjacency) Labels() []string {
	out := make([]string, len(a.labels))
	copy(out, a.labels)

	return out
}

// Len returns the number of entries in the view.
func (a *Adjacency) Len() int { return len(a.labels) }
