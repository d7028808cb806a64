package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/graphio"
	"github.com/katalvlaran/mstbench/metrics"
	"github.com/katalvlaran/mstbench/runner"
)

var runCmd = &cobra.Command{
	Use:   "run [files...]",
	Short: "Run Prim and Kruskal on every graph and write the results",
	Long: `Reads graphs from the given JSON or YAML files (or the configured inputs),
runs both engines on each graph and writes a JSON results document and a CSV
with one row per run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("workers") {
			cfg.Workers, _ = cmd.Flags().GetInt("workers")
		}
		if cmd.Flags().Changed("verify") {
			cfg.Verify, _ = cmd.Flags().GetBool("verify")
		}
		if cmd.Flags().Changed("output-json") {
			cfg.OutputJSON, _ = cmd.Flags().GetString("output-json")
		}
		if cmd.Flags().Changed("output-csv") {
			cfg.OutputCSV, _ = cmd.Flags().GetString("output-csv")
		}
		if cmd.Flags().Changed("metrics-textfile") {
			cfg.MetricsTextfile, _ = cmd.Flags().GetString("metrics-textfile")
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

		rec := metrics.NewRecorder()
		rep, err := runner.New(
			runner.WithWorkers(cfg.Workers),
			runner.WithLogger(logger),
			runner.WithRecorder(rec),
			runner.WithVerify(cfg.Verify),
		).Run(cmd.Context(), graphs)
		if err != nil {
			return err
		}

		if err := graphio.CreateFile(cfg.OutputJSON, func(w io.Writer) error {
			return graphio.WriteResults(w, rep.RunID, pairs(rep))
		}); err != nil {
			return err
		}
		if err := graphio.CreateFile(cfg.OutputCSV, func(w io.Writer) error {
			return graphio.ExportCSV(w, rep.Records())
		}); err != nil {
			return err
		}
		if cfg.MetricsTextfile != "" {
			if err := rec.WriteTextfile(cfg.MetricsTextfile); err != nil {
				return fmt.Errorf("metrics textfile: %w", err)
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Processed %d graphs (%d failed, %d invalid) in %s\n",
			len(rep.Results), rep.Failed, rep.Invalid, rep.Duration)
		fmt.Fprintf(out, "Output saved to %s\n", cfg.OutputJSON)
		fmt.Fprintf(out, "Metrics saved to %s\n", cfg.OutputCSV)
		return nil
	},
}

func init() {
	runCmd.Flags().Int("workers", 1, "graphs processed concurrently")
	runCmd.Flags().Bool("verify", true, "check every result independently")
	runCmd.Flags().String("output-json", "", "results JSON path")
	runCmd.Flags().String("output-csv", "", "results CSV path")
	runCmd.Flags().String("metrics-textfile", "", "write Prometheus metrics to this file")
}

// readInputs reads every file in order. A file that cannot be read is logged
// and skipped; it is an error only when no file could be read.
func readInputs(paths []string) ([]*core.Graph, error) {
	var (
		graphs []*core.Graph
		errs   []error
	)
	for _, path := range paths {
		logger.Info("reading graphs", "path", path)
		gs, err := graphio.ReadFile(path)
		if err != nil {
			logger.Error("failed to read graphs", "path", path, "error", err)
			errs = append(errs, err)
			continue
		}
		graphs = append(graphs, gs...)
	}
	if len(graphs) == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return graphs, nil
}

// pairs converts a runner report into the results document input.
func pairs(rep runner.Report) []graphio.Pair {
	out := make([]graphio.Pair, len(rep.Results))
	for i, res := range rep.Results {
		out[i] = graphio.Pair{Graph: res.Graph, Prim: res.Prim, Kruskal: res.Kruskal, Err: res.Err}
	}

	return out
}
