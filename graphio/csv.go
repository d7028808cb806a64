package graphio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/mstbench/bench"
	"github.com/katalvlaran/mstbench/metrics"
)

// Column headers of the two tabular exports.
var (
	RunHeader   = []string{"algorithm", "graph_id", "vertices", "edges", "total_cost", "operations", "execution_time_ms"}
	BenchHeader = []string{"GraphID", "Nodes", "Edges", "PrimAvgMs", "KruskalAvgMs", "PrimOps", "KruskalOps"}
)

// ExportCSV writes one row per record: cost with two decimals, time in
// milliseconds with three.
func ExportCSV(w io.Writer, records []metrics.Metrics) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(RunHeader); err != nil {
		return fmt.Errorf("ExportCSV: %w", err)
	}
	for _, m := range records {
		row := []string{
			m.Algorithm().String(),
			strconv.Itoa(m.GraphID()),
			strconv.Itoa(m.Vertices()),
			strconv.Itoa(m.EdgeCount()),
			strconv.FormatFloat(m.TotalCost(), 'f', 2, 64),
			strconv.FormatInt(m.Operations(), 10),
			strconv.FormatFloat(m.ExecutionTimeMs(), 'f', 3, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("ExportCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("ExportCSV: %w", err)
	}

	return nil
}

// ExportBenchCSV writes one row per benchmarked graph: average times with four
// decimals, average operations rounded to whole steps.
func ExportBenchCSV(w io.Writer, results []bench.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(BenchHeader); err != nil {
		return fmt.Errorf("ExportBenchCSV: %w", err)
	}
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.GraphID),
			strconv.Itoa(r.Vertices),
			strconv.Itoa(r.Edges),
			strconv.FormatFloat(r.Prim.AvgMs, 'f', 4, 64),
			strconv.FormatFloat(r.Kruskal.AvgMs, 'f', 4, 64),
			strconv.FormatFloat(r.Prim.AvgOps, 'f', 0, 64),
			strconv.FormatFloat(r.Kruskal.AvgOps, 'f', 0, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("ExportBenchCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("ExportBenchCSV: %w", err)
	}

	return nil
}
