// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// impl_random.go - RandomSparse(n, p), RandomConnected(n, m) and Isolated(prefix, n).
//
// RandomSparse:
//   • Erdős–Rényi-like: include each unordered pair {i,j}, i<j, with probability p.
//   • n ≥ 1, 0 ≤ p ≤ 1; cfg.rng required when 0 < p < 1.
//   • Trial order: i asc, j asc (j>i) ⇒ deterministic for a fixed seed.
//
// RandomConnected:
//   • A chain 0-1-…-(n-1) guarantees connectivity, then m-(n-1) extra distinct
//     non-loop pairs are drawn at random. Total edge count is exactly m.
//   • n ≥ 1, n-1 ≤ m ≤ n(n-1)/2; cfg.rng required when extra edges are requested.
//
// Isolated:
//   • Adds n vertices prefix0..prefix(n-1) with no edges; used to make inputs disconnected.
//
// Complexity: RandomSparse O(n²) trials; RandomConnected O(n + m) expected;
// Isolated O(n).

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomConnected   = "RandomConnected"
	methodIsolated          = "Isolated"
	minRandomSparseVertices = 1
	minConnectedVertices    = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples each admissible pair over n
// vertices independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			d.AddNode(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				// p ∈ {0,1} needs no randomness; otherwise one Bernoulli trial per pair.
				include := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					include = cfg.rng.Float64() < p
				}
				if include {
					d.AddEdge(u, cfg.idFn(j), cfg.weight())
				}
			}
		}

		return nil
	}
}

// RandomConnected returns a Constructor that builds a connected graph with n
// vertices and exactly m distinct edges.
func RandomConnected(n, m int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minConnectedVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomConnected, n, minConnectedVertices, ErrTooFewVertices)
		}
		if m < n-1 {
			return fmt.Errorf("%s: m=%d < n-1=%d: %w", methodRandomConnected, m, n-1, ErrTooFewVertices)
		}
		maxEdges := n * (n - 1) / 2
		if m > maxEdges {
			return fmt.Errorf("%s: m=%d > n(n-1)/2=%d: %w", methodRandomConnected, m, maxEdges, ErrTooManyEdges)
		}
		extra := m - (n - 1)
		if extra > 0 && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomConnected, ErrNeedRandSource)
		}

		// 1) Chain for connectivity; remember used pairs as (low, high) indices.
		used := make(map[[2]int]struct{}, m)
		for i := 0; i < n; i++ {
			d.AddNode(cfg.idFn(i))
		}
		for i := 1; i < n; i++ {
			d.AddEdge(cfg.idFn(i-1), cfg.idFn(i), cfg.weight())
			used[[2]int{i - 1, i}] = struct{}{}
		}
		if extra == 0 {
			return nil
		}

		// 2a) Dense request: enumerate the free pairs and take a shuffled prefix.
		free := maxEdges - (n - 1)
		if 2*extra > free {
			pairs := make([][2]int, 0, free)
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					if _, ok := used[[2]int{i, j}]; !ok {
						pairs = append(pairs, [2]int{i, j})
					}
				}
			}
			cfg.rng.Shuffle(len(pairs), func(a, b int) { pairs[a], pairs[b] = pairs[b], pairs[a] })
			for _, pr := range pairs[:extra] {
				d.AddEdge(cfg.idFn(pr[0]), cfg.idFn(pr[1]), cfg.weight())
			}

			return nil
		}

		// 2b) Sparse request: rejection-sample distinct non-loop pairs.
		for added := 0; added < extra; {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v {
				continue
			}
			key := [2]int{min(u, v), max(u, v)}
			if _, ok := used[key]; ok {
				continue
			}
			used[key] = struct{}{}
			d.AddEdge(cfg.idFn(u), cfg.idFn(v), cfg.weight())
			added++
		}

		return nil
	}
}

// Isolated returns a Constructor that adds n edge-less vertices labeled prefix+index.
func Isolated(prefix string, n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < 0: %w", methodIsolated, n, ErrTooFewVertices)
		}
		label := SymbolNumberIDFn(prefix)
		for i := 0; i < n; i++ {
			d.AddNode(label(i))
		}

		return nil
	}
}
