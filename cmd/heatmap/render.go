// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	renderRecords string
	renderOut     string
	renderMetrics string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Compute the clustered heat matrix and write it as JSON",
	Long: `Runs aggregation, diffusion, smoothing and clustering, then writes the
final matrix, reordered labels and original-index maps as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runPipeline(renderRecords, renderMetrics, cmd.InOrStdin())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if renderOut != "" && renderOut != "-" {
			f, err := os.Create(renderOut)
			if err != nil {
				return fmt.Errorf("failed to create output: %w", err)
			}
			defer f.Close()
			out = f
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
		logger.Info("Wrote heat map", zap.String("run_id", res.RunID), zap.String("out", renderOut))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderRecords, "records", "r", "", "change records JSON file (- for stdin)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "-", "output file (- for stdout)")
	renderCmd.Flags().StringVar(&renderMetrics, "metrics-file", "", "write Prometheus metrics here when metrics are enabled")
	rootCmd.AddCommand(renderCmd)
}
