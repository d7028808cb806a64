package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/metrics"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to an engine.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrEmptyGraph indicates that the graph has no nodes. Prim has no start vertex
// to seed from, and Kruskal follows the same precondition for symmetry.
var ErrEmptyGraph = fmt.Errorf("prim_kruskal: %w", core.ErrEmptyGraph)

// ErrStartNotFound indicates that the WithStart label is not a node of the graph.
var ErrStartNotFound = errors.New("prim_kruskal: start vertex not found")

// ErrUnknownMethod indicates that Compute received a method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a start vertex using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions tunes a single engine run. The zero value is the default behavior.
//
// Fields:
//
//	Start     string - Prim start vertex; "" means the graph's first node. Ignored by Kruskal.
//	EarlyExit bool   - Kruskal stops once |V|-1 edges are selected, so Operations()
//	                   counts only the edges examined up to that point. Ignored by Prim,
//	                   whose loop always stops at |V|-1 edges.
type MSTOptions struct {
	Start     string
	EarlyExit bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithStart returns an Option that makes Prim grow its tree from label.
func WithStart(label string) Option {
	return func(o *MSTOptions) {
		o.Start = label
	}
}

// WithEarlyExit returns an Option that lets Kruskal stop scanning as soon as
// the tree is complete.
func WithEarlyExit() Option {
	return func(o *MSTOptions) {
		o.EarlyExit = true
	}
}

// DefaultOptions returns the options used when none are given:
//
//	– Start     = "" (first node)
//	– EarlyExit = false (scan every edge)
func DefaultOptions() MSTOptions {
	return MSTOptions{}
}

func resolveOptions(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// validate applies the preconditions shared by both engines.
func validate(graph *core.Graph) error {
	if graph == nil {
		return ErrNilGraph
	}
	if graph.NodeCount() == 0 {
		return ErrEmptyGraph
	}

	return nil
}

// Compute selects and runs the MST algorithm named by method.
//
//	– MethodKruskal: Kruskal(graph, opts...).
//	– MethodPrim:    Prim(graph, opts...).
//	– Otherwise:     ErrUnknownMethod.
func Compute(graph *core.Graph, method string, opts ...Option) (metrics.Metrics, error) {
	switch method {
	case MethodKruskal:
		return Kruskal(graph, opts...)
	case MethodPrim:
		return Prim(graph, opts...)
	default:
		return metrics.Metrics{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}
