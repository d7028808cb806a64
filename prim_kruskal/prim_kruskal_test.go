package prim_kruskal_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mstbench/builder"
	"github.com/katalvlaran/mstbench/core"         // core.Graph and core.Edge
	"github.com/katalvlaran/mstbench/metrics"      // run records
	"github.com/katalvlaran/mstbench/prim_kruskal" // package under test
	"github.com/katalvlaran/mstbench/verify"       // independent result checks
	"github.com/stretchr/testify/assert"           // assertion library
	"github.com/stretchr/testify/require"
)

// buildPentagon constructs the five-vertex reference graph:
//
//	A-B (4), A-C (3), B-C (2), B-D (5), C-D (7), C-E (8), D-E (6).
//
// Its MST is {B-C, A-C, B-D, D-E} with total weight 16.
func buildPentagon() *core.Graph {
	return core.NewGraph(1, []string{"A", "B", "C", "D", "E"}, []core.Edge{
		{From: "A", To: "B", Weight: 4},
		{From: "A", To: "C", Weight: 3},
		{From: "B", To: "C", Weight: 2},
		{From: "B", To: "D", Weight: 5},
		{From: "C", To: "D", Weight: 7},
		{From: "C", To: "E", Weight: 8},
		{From: "D", To: "E", Weight: 6},
	})
}

// buildMediumGraph creates a connected graph with n vertices "V0".."V(n-1)" and
// exactly edgesCount distinct edges with weights in [1,100), seeded for reproducibility.
func buildMediumGraph(tb testing.TB, n, edgesCount int) *core.Graph {
	tb.Helper()
	g, err := builder.BuildGraph(1,
		[]builder.BuilderOption{
			builder.WithSeed(42),
			builder.WithSymbNumb("V"),
			builder.WithUniformWeight(1, 100),
		},
		builder.RandomConnected(n, edgesCount))
	require.NoError(tb, err)

	return g
}

// pairs renders edges as "From-To" strings for order-sensitive comparisons.
func pairs(edges []core.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.From + "-" + e.To
	}

	return out
}

// TestReferenceGraph checks both engines on the pentagon: cost, selected
// edges in selection order, and exact operation counts.
func TestReferenceGraph(t *testing.T) {
	g := buildPentagon()

	k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, metrics.Kruskal, k.Algorithm())
	assert.Equal(t, 16.0, k.TotalCost())
	assert.Equal(t, []string{"B-C", "A-C", "B-D", "D-E"}, pairs(k.MSTEdges()))
	assert.EqualValues(t, 7, k.Operations(), "Kruskal examines every edge")
	assert.True(t, k.Connected())
	assert.Equal(t, 5, k.Vertices())
	assert.Equal(t, 7, k.EdgeCount())
	assert.Equal(t, 1, k.GraphID())

	p, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Equal(t, metrics.Prim, p.Algorithm())
	assert.Equal(t, 16.0, p.TotalCost())
	assert.Equal(t, []string{"A-C", "C-B", "B-D", "D-E"}, pairs(p.MSTEdges()))
	// Pops: A-C, C-B, A-B (stale), B-D, D-E.
	assert.EqualValues(t, 5, p.Operations())
	assert.True(t, p.Connected())
	assert.GreaterOrEqual(t, p.ExecutionTimeMs(), 0.0)
}

// TestDisconnected verifies that a missing component is reported, not failed.
func TestDisconnected(t *testing.T) {
	g := core.NewGraph(2, []string{"A", "B", "C"}, []core.Edge{{From: "A", To: "B", Weight: 5}})

	for _, method := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
		m, err := prim_kruskal.Compute(g, method)
		require.NoError(t, err, method)
		assert.Equal(t, 5.0, m.TotalCost(), method)
		assert.Equal(t, 1, m.MSTSize(), method)
		assert.EqualValues(t, 1, m.Operations(), method)
		assert.False(t, m.Connected(), method)
	}
}

// TestSingleVertex verifies the trivial tree: no edges, zero cost, connected.
func TestSingleVertex(t *testing.T) {
	g := core.NewGraph(3, []string{"X"}, nil)

	for _, method := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
		m, err := prim_kruskal.Compute(g, method)
		require.NoError(t, err, method)
		assert.Empty(t, m.MSTEdges(), method)
		assert.Zero(t, m.TotalCost(), method)
		assert.Zero(t, m.Operations(), method)
		assert.True(t, m.Connected(), method)
	}
}

// TestTieBreaking pins the order in which equal weights are taken.
func TestTieBreaking(t *testing.T) {
	g := core.NewGraph(4, []string{"A", "B", "C"}, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 1},
		{From: "A", To: "C", Weight: 1},
	})

	k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A-B", "B-C"}, pairs(k.MSTEdges()), "stable sort keeps input order")
	assert.EqualValues(t, 3, k.Operations())

	p, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A-B", "A-C"}, pairs(p.MSTEdges()), "earlier pushes pop first")
	assert.EqualValues(t, 2, p.Operations())
}

// TestLoopsParallelNegative covers self-loops, parallel edges and negative weights.
func TestLoopsParallelNegative(t *testing.T) {
	g := core.NewGraph(5, []string{"A", "B", "C"}, []core.Edge{
		{From: "A", To: "A", Weight: -10},
		{From: "A", To: "B", Weight: 5},
		{From: "A", To: "B", Weight: 2},
		{From: "B", To: "C", Weight: -1},
	})

	k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 1.0, k.TotalCost())
	assert.Equal(t, []string{"B-C", "A-B"}, pairs(k.MSTEdges()))
	assert.EqualValues(t, 4, k.Operations())

	p, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.TotalCost())
	assert.Equal(t, []string{"A-B", "B-C"}, pairs(p.MSTEdges()))
	// The loop is queued twice from the seed and both copies pop stale.
	assert.EqualValues(t, 4, p.Operations())
	for _, e := range p.MSTEdges() {
		assert.False(t, e.IsLoop())
	}
}

// TestOptions covers WithStart and WithEarlyExit.
func TestOptions(t *testing.T) {
	g := buildPentagon()

	p, err := prim_kruskal.Prim(g, prim_kruskal.WithStart("E"))
	require.NoError(t, err)
	assert.Equal(t, 16.0, p.TotalCost())
	assert.Equal(t, "E", p.MSTEdges()[0].From)

	k, err := prim_kruskal.Kruskal(g, prim_kruskal.WithEarlyExit())
	require.NoError(t, err)
	assert.Equal(t, 16.0, k.TotalCost())
	assert.EqualValues(t, 5, k.Operations(), "scan stops after D-E completes the tree")

	// Nil options are skipped.
	k2, err := prim_kruskal.Kruskal(g, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 7, k2.Operations())

	assert.Equal(t, prim_kruskal.MSTOptions{}, prim_kruskal.DefaultOptions())
}

// TestErrors covers all sentinel errors.
func TestErrors(t *testing.T) {
	empty := core.NewGraph(0, nil, nil)

	_, err := prim_kruskal.Prim(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)
	_, err = prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	_, err = prim_kruskal.Prim(empty)
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyGraph)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
	_, err = prim_kruskal.Kruskal(empty)
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyGraph)

	_, err = prim_kruskal.Prim(buildPentagon(), prim_kruskal.WithStart("Z"))
	assert.ErrorIs(t, err, prim_kruskal.ErrStartNotFound)

	_, err = prim_kruskal.Compute(buildPentagon(), "boruvka")
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestDeterminism verifies identical records across repeated runs, ignoring timing.
func TestDeterminism(t *testing.T) {
	g := buildMediumGraph(t, 200, 800)

	for _, method := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
		first, err := prim_kruskal.Compute(g, method)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			again, err := prim_kruskal.Compute(g, method)
			require.NoError(t, err)
			assert.Equal(t, first.MSTEdges(), again.MSTEdges())
			assert.Equal(t, first.TotalCost(), again.TotalCost())
			assert.Equal(t, first.Operations(), again.Operations())
		}
	}
}

// TestGraphUnchanged verifies that runs never reorder or mutate the input.
func TestGraphUnchanged(t *testing.T) {
	g := buildPentagon()
	before := g.Edges()

	_, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	_, err = prim_kruskal.Prim(g)
	require.NoError(t, err)

	assert.Equal(t, before, g.Edges())
}

// TestInfiniteWeight runs both engines over an edge of weight -Inf and checks
// that the records pass verification against the graph and each other.
func TestInfiniteWeight(t *testing.T) {
	g := core.NewGraph(4, []string{"A", "B", "C"}, []core.Edge{
		{From: "A", To: "B", Weight: math.Inf(-1)},
		{From: "B", To: "C", Weight: 3},
	})

	k, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	p, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.True(t, math.IsInf(k.TotalCost(), -1))

	assert.NoError(t, verify.Check(g, k))
	assert.NoError(t, verify.Check(g, p))
	assert.NoError(t, verify.Compare(p, k))
}
