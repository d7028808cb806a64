// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   • Path: n ≥ 2; edges (i-1)-i for i=1..n-1.
//   • Cycle: n ≥ 3; the path edges plus the closing edge (n-1)-0.
//   • Vertices via cfg.idFn in ascending index order; weights via cfg.weightFn.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import "fmt"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addChain(d, cfg, n)

		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addChain(d, cfg, n)
		// Close the ring: last vertex back to the first.
		d.AddEdge(cfg.idFn(n-1), cfg.idFn(0), cfg.weight())

		return nil
	}
}

// addChain adds vertices 0..n-1 and the chain edges between consecutive indices.
func addChain(d *Draft, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		d.AddNode(cfg.idFn(i))
	}
	for i := 1; i < n; i++ {
		d.AddEdge(cfg.idFn(i-1), cfg.idFn(i), cfg.weight())
	}
}
