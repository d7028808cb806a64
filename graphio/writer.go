package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/metrics"
)

// Pair carries both engine records for one graph. Err is set instead of the
// records when the graph could not be processed.
type Pair struct {
	Graph   *core.Graph
	Prim    *metrics.Metrics
	Kruskal *metrics.Metrics
	Err     error
}

// EdgeRecord is a selected edge in the results document.
type EdgeRecord struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// AlgorithmBlock is one engine's record in the results document.
type AlgorithmBlock struct {
	MSTEdges        []EdgeRecord `json:"mst_edges"`
	TotalCost       float64      `json:"total_cost"`
	OperationsCount int64        `json:"operations_count"`
	ExecutionTimeMs float64      `json:"execution_time_ms"`
	Connected       bool         `json:"connected"`
}

// InputStats summarizes the input graph.
type InputStats struct {
	Vertices int `json:"vertices"`
	Edges    int `json:"edges"`
}

// ResultEntry is the per-graph element of ResultsDoc.Results.
type ResultEntry struct {
	GraphID    int             `json:"graph_id"`
	InputStats InputStats      `json:"input_stats"`
	Prim       *AlgorithmBlock `json:"prim,omitempty"`
	Kruskal    *AlgorithmBlock `json:"kruskal,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// ResultsDoc is the top-level results document.
type ResultsDoc struct {
	RunID   string        `json:"run_id"`
	Results []ResultEntry `json:"results"`
}

// NewAlgorithmBlock converts a run record into its document form.
func NewAlgorithmBlock(m metrics.Metrics) *AlgorithmBlock {
	edges := m.MSTEdges()
	block := &AlgorithmBlock{
		MSTEdges:        make([]EdgeRecord, len(edges)),
		TotalCost:       m.TotalCost(),
		OperationsCount: m.Operations(),
		ExecutionTimeMs: m.ExecutionTimeMs(),
		Connected:       m.Connected(),
	}
	for i, e := range edges {
		block.MSTEdges[i] = EdgeRecord{From: e.From, To: e.To, Weight: e.Weight}
	}

	return block
}

// NewResultsDoc assembles the results document; entries keep the order of pairs.
func NewResultsDoc(runID string, pairs []Pair) ResultsDoc {
	doc := ResultsDoc{RunID: runID, Results: make([]ResultEntry, 0, len(pairs))}
	for _, p := range pairs {
		var entry ResultEntry
		if p.Graph != nil {
			entry.GraphID = p.Graph.ID()
			entry.InputStats = InputStats{Vertices: p.Graph.NodeCount(), Edges: p.Graph.EdgeCount()}
		}
		if p.Prim != nil {
			entry.Prim = NewAlgorithmBlock(*p.Prim)
		}
		if p.Kruskal != nil {
			entry.Kruskal = NewAlgorithmBlock(*p.Kruskal)
		}
		if p.Err != nil {
			entry.Error = p.Err.Error()
		}
		doc.Results = append(doc.Results, entry)
	}

	return doc
}

// WriteResults encodes the results document as indented JSON.
func WriteResults(w io.Writer, runID string, pairs []Pair) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewResultsDoc(runID, pairs)); err != nil {
		return fmt.Errorf("WriteResults: %w", err)
	}

	return nil
}

// WriteGraphs encodes graphs in the enveloped input format.
func WriteGraphs(w io.Writer, format Format, graphs []*core.Graph) error {
	docs := make([]GraphDoc, len(graphs))
	for i, g := range graphs {
		docs[i] = NewGraphDoc(g)
	}
	env := envelope{Graphs: &docs}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(env); err != nil {
			return fmt.Errorf("WriteGraphs: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(env); err != nil {
			return fmt.Errorf("WriteGraphs: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("WriteGraphs: %w", err)
		}
	default:
		return fmt.Errorf("WriteGraphs: %w: %q", ErrUnsupportedFormat, format)
	}

	return nil
}

// CreateFile creates path and any missing parent directories, then hands the
// file to write. The file is closed before CreateFile returns.
func CreateFile(path string, write func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("CreateFile: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("CreateFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("CreateFile: %w", cerr)
		}
	}()

	return write(f)
}
