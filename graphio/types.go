package graphio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/mstbench/core"
)

var (
	// ErrUnsupportedFormat indicates a format name or file extension other than JSON or YAML.
	ErrUnsupportedFormat = errors.New("graphio: unsupported format")

	// ErrInvalidDocument indicates a document that is neither an envelope nor an array of graphs,
	// or a graph that fails field validation.
	ErrInvalidDocument = errors.New("graphio: invalid document")

	// ErrUnknownNode indicates an edge endpoint that is not among the graph's declared nodes.
	ErrUnknownNode = errors.New("graphio: edge references unknown node")
)

// Format names a document encoding.
type Format string

const (
	// FormatJSON is encoding/json, selected by the ".json" extension.
	FormatJSON Format = "json"
	// FormatYAML is YAML, selected by ".yaml" or ".yml".
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-facing name ("json", "yaml", "yml") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath picks the Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}

	return ParseFormat(ext)
}

// EdgeDoc is one serialized edge. Weight is a pointer so a missing weight is
// told apart from an explicit zero.
type EdgeDoc struct {
	From   string   `json:"from" yaml:"from" validate:"required"`
	To     string   `json:"to" yaml:"to" validate:"required"`
	Weight *float64 `json:"weight" yaml:"weight" validate:"required"`
}

// GraphDoc is one serialized graph.
type GraphDoc struct {
	ID    int       `json:"id" yaml:"id"`
	Nodes []string  `json:"nodes" yaml:"nodes" validate:"dive,required"`
	Edges []EdgeDoc `json:"edges" yaml:"edges" validate:"dive"`
}

// envelope is the wrapped document form. Graphs is a pointer so a missing key
// is detected.
type envelope struct {
	Graphs *[]GraphDoc `json:"graphs" yaml:"graphs"`
}

// NewGraphDoc converts g into its serialized form.
func NewGraphDoc(g *core.Graph) GraphDoc {
	edges := g.Edges()
	doc := GraphDoc{ID: g.ID(), Nodes: g.Nodes(), Edges: make([]EdgeDoc, len(edges))}
	for i, e := range edges {
		w := e.Weight
		doc.Edges[i] = EdgeDoc{From: e.From, To: e.To, Weight: &w}
	}

	return doc
}

// Graph converts a validated document into an immutable core.Graph.
func (d GraphDoc) Graph() *core.Graph {
	edges := make([]core.Edge, len(d.Edges))
	for i, e := range d.Edges {
		var w float64
		if e.Weight != nil {
			w = *e.Weight
		}
		edges[i] = core.Edge{From: e.From, To: e.To, Weight: w}
	}

	return core.NewGraph(d.ID, d.Nodes, edges)
}
