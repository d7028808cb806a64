// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// impl_star.go - Star(n) and Complete(n) constructors.
//
// Contract:
//   • Star: n ≥ 2; vertex 0 is the hub, edges 0-i for i=1..n-1.
//   • Complete: n ≥ 1; every unordered pair {i,j}, i<j, exactly once,
//     lexicographic by (i,j).
//   • Vertices via cfg.idFn in ascending index order; weights via cfg.weightFn.
//
// Complexity: Star O(n); Complete O(n²) edges.

package builder

import "fmt"

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Star returns a Constructor that builds a star with hub cfg.idFn(0) and n-1 leaves.
func Star(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.idFn(0)
		d.AddNode(hub)
		for i := 1; i < n; i++ {
			d.AddEdge(hub, cfg.idFn(i), cfg.weight())
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
			d.AddNode(ids[i])
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.AddEdge(ids[i], ids[j], cfg.weight())
			}
		}

		return nil
	}
}
