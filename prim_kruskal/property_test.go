package prim_kruskal_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/mstbench/builder"
	"github.com/katalvlaran/mstbench/prim_kruskal"
	"github.com/katalvlaran/mstbench/verify"
)

// TestEnginesAgree_Property generates random connected graphs and checks that
// both engines produce valid trees of equal cost.
func TestEnginesAgree_Property(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 100
	properties := gopter.NewProperties(params)

	properties.Property("prim and kruskal agree on random connected graphs", prop.ForAll(
		func(n, extra int, seed int64) bool {
			maxExtra := n*(n-1)/2 - (n - 1)
			if extra > maxExtra {
				extra = maxExtra
			}
			g, err := builder.BuildGraph(1,
				[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntegerWeight(1, 20)},
				builder.RandomConnected(n, n-1+extra))
			if err != nil {
				return false
			}

			p, err := prim_kruskal.Prim(g)
			if err != nil {
				return false
			}
			k, err := prim_kruskal.Kruskal(g)
			if err != nil {
				return false
			}

			return p.Connected() && k.Connected() &&
				verify.Check(g, p) == nil &&
				verify.Check(g, k) == nil &&
				verify.Compare(p, k) == nil &&
				k.Operations() == int64(g.EdgeCount())
		},
		gen.IntRange(1, 40),
		gen.IntRange(0, 120),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

// TestForest_Property checks that disconnected inputs are reported consistently.
func TestForest_Property(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("isolated vertices make both engines report a forest", prop.ForAll(
		func(n, isolated int) bool {
			g, err := builder.BuildGraph(1, nil, builder.Path(n), builder.Isolated("iso", isolated))
			if err != nil {
				return false
			}
			p, err := prim_kruskal.Prim(g)
			if err != nil {
				return false
			}
			k, err := prim_kruskal.Kruskal(g)
			if err != nil {
				return false
			}

			return !p.Connected() && !k.Connected() &&
				p.MSTSize() == n-1 && k.MSTSize() == n-1 &&
				verify.Compare(p, k) == nil
		},
		gen.IntRange(2, 30),
		gen.IntRange(1, 5),
	))

	properties.TestingRun(t)
}
