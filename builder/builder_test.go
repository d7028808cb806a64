// Package builder_test verifies topology counts, determinism and parameter
// validation for every constructor.
package builder_test

import (
	"testing"

	"github.com/katalvlaran/mstbench/builder"
	"github.com/katalvlaran/mstbench/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairKey normalizes an undirected edge to a comparable key.
func pairKey(e core.Edge) [2]string {
	if e.From > e.To {
		return [2]string{e.To, e.From}
	}
	return [2]string{e.From, e.To}
}

// TestBuilders_Functional checks vertex and edge counts for fixed shapes.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cons      builder.Constructor
		wantNodes int
		wantEdges int
	}{
		{"Path5", builder.Path(5), 5, 4},
		{"Cycle4", builder.Cycle(4), 4, 4},
		{"Star6", builder.Star(6), 6, 5},
		{"Complete5", builder.Complete(5), 5, 10},
		{"Grid2x3", builder.Grid(2, 3), 6, 7},
		{"SparseFull", builder.RandomSparse(4, 1.0), 4, 6},
		{"SparseEmpty", builder.RandomSparse(4, 0.0), 4, 0},
		{"Isolated3", builder.Isolated("x", 3), 3, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(1, nil, tt.cons)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNodes, g.NodeCount())
			assert.Equal(t, tt.wantEdges, g.EdgeCount())
			for _, e := range g.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
			}
		})
	}
}

// TestBuildGraph_Overlay verifies that constructors sharing an ID scheme reuse vertices.
func TestBuildGraph_Overlay(t *testing.T) {
	g, err := builder.BuildGraph(2,
		[]builder.BuilderOption{builder.WithSymbolIDs()},
		builder.Path(3), builder.Star(3), builder.Isolated("iso", 1))
	require.NoError(t, err)

	assert.Equal(t, 2, g.ID())
	assert.Equal(t, []string{"A", "B", "C", "iso0"}, g.Nodes())
	assert.Equal(t, 4, g.EdgeCount())
}

// TestRandomConnected_Determinism checks exact edge count, distinctness, and seed stability.
func TestRandomConnected_Determinism(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithSeed(42),
		builder.WithSymbNumb("V"),
		builder.WithUniformWeight(1, 100),
	}
	for _, size := range []struct{ n, m int }{{10, 20}, {8, 27}, {1, 0}, {6, 5}} {
		g1, err := builder.BuildGraph(1, opts, builder.RandomConnected(size.n, size.m))
		require.NoError(t, err)
		g2, err := builder.BuildGraph(1,
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithSymbNumb("V"), builder.WithUniformWeight(1, 100)},
			builder.RandomConnected(size.n, size.m))
		require.NoError(t, err)

		assert.Equal(t, size.n, g1.NodeCount())
		assert.Equal(t, size.m, g1.EdgeCount())
		assert.Equal(t, g1.Edges(), g2.Edges())

		seen := make(map[[2]string]bool, size.m)
		for _, e := range g1.Edges() {
			assert.False(t, e.IsLoop())
			assert.False(t, seen[pairKey(e)], "duplicate pair %v", e)
			seen[pairKey(e)] = true
			assert.GreaterOrEqual(t, e.Weight, 1.0)
			assert.Less(t, e.Weight, 100.0)
		}
	}
}

// TestBuilders_Errors covers parameter validation sentinels.
func TestBuilders_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []builder.BuilderOption
		cons builder.Constructor
		want error
	}{
		{"PathTooSmall", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"CycleTooSmall", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"StarTooSmall", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"CompleteTooSmall", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"GridTooSmall", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"SparseBadP", nil, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"SparseNoRNG", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"ConnectedFewEdges", nil, builder.RandomConnected(5, 3), builder.ErrTooFewVertices},
		{"ConnectedManyEdges", nil, builder.RandomConnected(4, 7), builder.ErrTooManyEdges},
		{"ConnectedNoRNG", nil, builder.RandomConnected(4, 5), builder.ErrNeedRandSource},
		{"NilConstructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := builder.BuildGraph(1, tt.opts, tt.cons)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// TestIDFns checks the label schemes.
func TestIDFns(t *testing.T) {
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "C", builder.SymbolIDFn(2))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Equal(t, "v7", builder.SymbolNumberIDFn("v")(7))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
}

// TestWeightFns checks nil-RNG fallbacks and panics.
func TestWeightFns(t *testing.T) {
	assert.Equal(t, -2.5, builder.ConstantWeightFn(-2.5)(nil))
	assert.Equal(t, 3.0, builder.UniformWeightFn(3, 9)(nil))
	assert.Equal(t, 4.0, builder.IntegerWeightFn(4, 6)(nil))
	assert.Equal(t, 10.0, builder.NormalWeightFn(10, 2)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.ExponentialWeightFn(1)(nil))

	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	assert.Panics(t, func() { builder.IntegerWeightFn(5, 1) })
	assert.Panics(t, func() { builder.NormalWeightFn(0, -1) })
	assert.Panics(t, func() { builder.ExponentialWeightFn(0) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}
