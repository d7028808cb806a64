package core_test

import (
	"testing"

	"github.com/katalvlaran/mstbench/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewGraph_CopiesInputs verifies that the Graph does not alias caller slices.
func TestNewGraph_CopiesInputs(t *testing.T) {
	nodes := []string{"A", "B"}
	edges := []core.Edge{{From: "A", To: "B", Weight: 1}}
	g := core.NewGraph(7, nodes, edges)

	// Mutate the originals after construction.
	nodes[0] = "Z"
	edges[0].Weight = 99

	assert.Equal(t, 7, g.ID())
	assert.Equal(t, []string{"A", "B"}, g.Nodes())
	assert.Equal(t, 1.0, g.Edges()[0].Weight)

	// Mutating accessor results must not reach the Graph either.
	got := g.Edges()
	got[0].From = "X"
	assert.Equal(t, "A", g.Edges()[0].From)
}

// TestGraph_Counts checks counters, duplicates and pass-through of odd edges.
func TestGraph_Counts(t *testing.T) {
	g := core.NewGraph(1,
		[]string{"A", "B", "A"},
		[]core.Edge{
			{From: "A", To: "B", Weight: 2},
			{From: "A", To: "B", Weight: 2},  // parallel
			{From: "B", To: "B", Weight: -1}, // loop with negative weight
		})

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, "B", g.Node(1))
	assert.True(t, g.HasNode("B"))
	assert.False(t, g.HasNode("C"))
	assert.True(t, g.Edges()[2].IsLoop())
}

// TestGraph_FirstNode checks the empty-graph precondition.
func TestGraph_FirstNode(t *testing.T) {
	_, err := core.NewGraph(0, nil, nil).FirstNode()
	require.ErrorIs(t, err, core.ErrEmptyGraph)

	first, err := core.NewGraph(0, []string{"Q", "R"}, nil).FirstNode()
	require.NoError(t, err)
	assert.Equal(t, "Q", first)
}

// TestAdjacency_MirrorsInInputOrder verifies mirroring and deterministic enumeration.
func TestAdjacency_MirrorsInInputOrder(t *testing.T) {
	g := core.NewGraph(1,
		[]string{"A", "B", "C"},
		[]core.Edge{
			{From: "A", To: "B", Weight: 4},
			{From: "C", To: "A", Weight: 3},
			{From: "B", To: "C", Weight: 2},
		})
	adj := g.Adjacency()

	assert.Equal(t, []string{"A", "B", "C"}, adj.Labels())
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 4},
		{From: "A", To: "C", Weight: 3},
	}, adj.Incident("A"))
	assert.Equal(t, []core.Edge{
		{From: "B", To: "A", Weight: 4},
		{From: "B", To: "C", Weight: 2},
	}, adj.Incident("B"))
	assert.Equal(t, []core.Edge{
		{From: "C", To: "A", Weight: 3},
		{From: "C", To: "B", Weight: 2},
	}, adj.Incident("C"))
	assert.Nil(t, adj.Incident("missing"))
}

// TestAdjacency_OddInputs covers loops, duplicate labels and undeclared endpoints.
func TestAdjacency_OddInputs(t *testing.T) {
	g := core.NewGraph(1,
		[]string{"A", "A"},
		[]core.Edge{
			{From: "A", To: "A", Weight: 1},
			{From: "A", To: "X", Weight: 5}, // X is not a declared node
		})
	adj := g.Adjacency()

	assert.Equal(t, 2, adj.Len())
	assert.Equal(t, []string{"A", "X"}, adj.Labels())
	assert.Equal(t, 3, adj.Degree("A")) // loop counted twice plus A-X
	assert.Equal(t, []core.Edge{{From: "X", To: "A", Weight: 5}}, adj.Incident("X"))
}
