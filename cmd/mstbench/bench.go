package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstbench/bench"
	"github.com/katalvlaran/mstbench/graphio"
)

var benchCmd = &cobra.Command{
	Use:   "bench [files...]",
	Short: "Benchmark Prim and Kruskal with repeated runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("warmup") {
			cfg.Bench.Warmup, _ = cmd.Flags().GetInt("warmup")
		}
		if cmd.Flags().Changed("iterations") {
			cfg.Bench.Iterations, _ = cmd.Flags().GetInt("iterations")
		}
		if cmd.Flags().Changed("inner-runs") {
			cfg.Bench.InnerRuns, _ = cmd.Flags().GetInt("inner-runs")
		}
		if cmd.Flags().Changed("output-csv") {
			cfg.Bench.OutputCSV, _ = cmd.Flags().GetString("output-csv")
		}
		if len(args) > 0 {
			cfg.Inputs = args
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		graphs, err := readInputs(cfg.Inputs)
		if err != nil {
			return err
		}

		bc := bench.Config{Warmup: cfg.Bench.Warmup, Iterations: cfg.Bench.Iterations, InnerRuns: cfg.Bench.InnerRuns}
		results, err := bench.RunAll(cmd.Context(), graphs, bc, bench.WithLogger(logger))
		if err != nil && len(results) == 0 {
			return err
		}

		out := cmd.OutOrStdout()
		for _, r := range results {
			fmt.Fprintf(out, "Graph #%d (V=%d, E=%d) Prim: %.4f ms (ops=%.0f) | Kruskal: %.4f ms (ops=%.0f)\n",
				r.GraphID, r.Vertices, r.Edges, r.Prim.AvgMs, r.Prim.AvgOps, r.Kruskal.AvgMs, r.Kruskal.AvgOps)
		}
		if err := graphio.CreateFile(cfg.Bench.OutputCSV, func(w io.Writer) error {
			return graphio.ExportBenchCSV(w, results)
		}); err != nil {
			return err
		}
		fmt.Fprintf(out, "Benchmark results saved to %s\n", cfg.Bench.OutputCSV)
		return err
	},
}

func init() {
	benchCmd.Flags().Int("warmup", 5, "discarded passes per graph")
	benchCmd.Flags().Int("iterations", 30, "measured rounds per graph")
	benchCmd.Flags().Int("inner-runs", 50, "engine runs per round")
	benchCmd.Flags().String("output-csv", "", "benchmark CSV path")
}
