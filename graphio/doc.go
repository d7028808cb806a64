// Package graphio moves graphs and MST results between files and the
// in-memory types of core and metrics.
//
// Input documents are JSON or YAML, either wrapped in an envelope or given as
// a bare array:
//
//	{"graphs": [{"id": 1, "nodes": ["A", "B"], "edges": [{"from": "A", "to": "B", "weight": 4}]}]}
//	[{"id": 1, "nodes": ["A", "B"], "edges": [{"from": "A", "to": "B", "weight": 4}]}]
//
// Every graph is checked before it reaches the engines: edge endpoints must be
// declared nodes, labels must be non-empty and every edge needs a weight.
// Duplicate labels, self-loops, parallel edges and negative weights pass
// through unchanged.
//
// Outputs:
//
//   - WriteResults: one JSON document per batch, pairing the Prim and Kruskal
//     records of each graph under a run identifier.
//   - ExportCSV: one row per run record.
//   - ExportBenchCSV: one row per benchmarked graph.
//   - WriteGraphs: the input document format, used to save generated graphs.
package graphio
