package graphio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstbench/core"
)

// validate is shared; validator.Validate caches struct metadata and is safe for concurrent use.
var validate = validator.New()

// ReadFile reads every graph from path, choosing the format by extension.
func ReadFile(path string) ([]*core.Graph, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	graphs, err := ReadGraphs(f, format)
	if err != nil {
		return nil, fmt.Errorf("ReadFile %s: %w", path, err)
	}

	return graphs, nil
}

// ReadGraphs decodes a document of the given format and converts each graph.
//
// Steps:
//  1. Decode the envelope or bare array.
//  2. Validate each graph's fields by struct tags.
//  3. Reject edges whose endpoints are not declared nodes.
//  4. Freeze each document into a core.Graph, in document order.
func ReadGraphs(r io.Reader, format Format) ([]*core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ReadGraphs: %w", err)
	}

	var docs []GraphDoc
	switch format {
	case FormatJSON:
		docs, err = decodeJSON(data)
	case FormatYAML:
		docs, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("ReadGraphs: %w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadGraphs: %w", err)
	}

	graphs := make([]*core.Graph, 0, len(docs))
	for i := range docs {
		if err := checkDoc(&docs[i]); err != nil {
			return nil, fmt.Errorf("ReadGraphs: graph #%d (id=%d): %w", i, docs[i].ID, err)
		}
		graphs = append(graphs, docs[i].Graph())
	}

	return graphs, nil
}

// decodeJSON accepts either {"graphs": [...]} or [...].
func decodeJSON(data []byte) ([]GraphDoc, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}

	switch trimmed[0] {
	case '[':
		var docs []GraphDoc
		if err := json.Unmarshal(trimmed, &docs); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return docs, nil
	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		if env.Graphs == nil {
			return nil, fmt.Errorf("%w: object without %q", ErrInvalidDocument, "graphs")
		}
		return *env.Graphs, nil
	default:
		return nil, fmt.Errorf("%w: expected object with %q or array", ErrInvalidDocument, "graphs")
	}
}

// decodeYAML accepts the same two shapes as decodeJSON.
func decodeYAML(data []byte) ([]GraphDoc, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}

	body := root.Content[0]
	switch body.Kind {
	case yaml.SequenceNode:
		var docs []GraphDoc
		if err := body.Decode(&docs); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return docs, nil
	case yaml.MappingNode:
		var env envelope
		if err := body.Decode(&env); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		if env.Graphs == nil {
			return nil, fmt.Errorf("%w: mapping without %q", ErrInvalidDocument, "graphs")
		}
		return *env.Graphs, nil
	default:
		return nil, fmt.Errorf("%w: expected mapping with %q or sequence", ErrInvalidDocument, "graphs")
	}
}

// checkDoc validates struct tags, then edge endpoints against declared nodes.
func checkDoc(d *GraphDoc) error {
	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed on %q", ErrInvalidDocument, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	declared := make(map[string]struct{}, len(d.Nodes))
	for _, n := range d.Nodes {
		declared[n] = struct{}{}
	}
	for i, e := range d.Edges {
		if _, ok := declared[e.From]; !ok {
			return fmt.Errorf("%w: edge #%d from %q", ErrUnknownNode, i, e.From)
		}
		if _, ok := declared[e.To]; !ok {
			return fmt.Errorf("%w: edge #%d to %q", ErrUnknownNode, i, e.To)
		}
	}

	return nil
}
