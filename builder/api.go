// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// api.go - the BuildGraph orchestrator and the Draft accumulator.
//
// Design contract:
//   - One orchestrator: BuildGraph(id, bopts, cons...). Resolves cfg, runs cons in order, freezes.
//   - Constructors mutate a Draft only; the resulting core.Graph is immutable.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

// Constructor applies a deterministic mutation to a Draft using the resolved
// builderConfig. Constructors MUST validate parameters before touching the
// Draft and return sentinel errors instead of panicking.
type Constructor func(d *Draft, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order to an empty Draft, and freezes it into a Graph with
// the given id. Any constructor error is wrapped as "BuildGraph: %w".
//
// Complexity: O(len(bopts)) plus the sum of the constructor costs.
func BuildGraph(id int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	d := NewDraft()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return d.Graph(id), nil
}

// Draft accumulates nodes and edges in insertion order.
type Draft struct {
	nodes []string
	seen  map[string]struct{}
	edges []core.Edge
}

// NewDraft returns an empty Draft.
func NewDraft() *Draft {
	return &Draft{seen: make(map[string]struct{})}
}

// AddNode appends label unless it is already present; it reports whether it was added.
func (d *Draft) AddNode(label string) bool {
	if _, ok := d.seen[label]; ok {
		return false
	}
	d.seen[label] = struct{}{}
	d.nodes = append(d.nodes, label)

	return true
}

// AddEdge appends the undirected edge u-v with weight w, registering missing endpoints as nodes.
func (d *Draft) AddEdge(u, v string, w float64) {
	d.AddNode(u)
	d.AddNode(v)
	d.edges = append(d.edges, core.Edge{From: u, To: v, Weight: w})
}

// NodeCount returns the number of distinct nodes added so far.
func (d *Draft) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges added so far.
func (d *Draft) EdgeCount() int { return len(d.edges) }

// Graph freezes the Draft into a Graph. The Draft may keep being used; the
// Graph holds its own copies.
func (d *Draft) Graph(id int) *core.Graph {
	return core.NewGraph(id, d.nodes, d.edges)
}
