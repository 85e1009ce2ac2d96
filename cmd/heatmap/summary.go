// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/heatfield/cluster"
	"github.com/katalvlaran/heatfield/pipeline"
)

var (
	summaryRecords string
	summaryTop     int
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a coloured risk summary of the heat map",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runPipeline(summaryRecords, "", cmd.InOrStdin())
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), res, summaryTop)
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryRecords, "records", "r", "", "change records JSON file (- for stdin)")
	summaryCmd.Flags().IntVarP(&summaryTop, "top", "n", 10, "number of rows to list")
	rootCmd.AddCommand(summaryCmd)
}

// tierColor returns the SprintFunc used for a row tier.
func tierColor(t cluster.Tier) func(a ...interface{}) string {
	switch t {
	case cluster.TierHigh:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case cluster.TierMedium:
		return color.New(color.FgYellow).SprintFunc()
	default:
		return color.New(color.FgGreen).SprintFunc()
	}
}

func printSummary(w io.Writer, res *pipeline.Result, top int) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintf(w, "\n%s\n", cyan("=== Change Heat Map ==="))
	fmt.Fprintf(w, "Run:        %s\n", res.RunID)
	fmt.Fprintf(w, "Shape:      %d × %d\n", len(res.RowLabels), len(res.ColumnLabels))
	fmt.Fprintf(w, "Thresholds: high > %.3f, medium > %.3f", res.Thresholds.High, res.Thresholds.Medium)
	if res.Thresholds.Degenerate {
		fmt.Fprintf(w, " %s", gray("(fallback)"))
	}
	fmt.Fprintln(w)

	s := res.Stats.Summary
	fmt.Fprintf(w, "\n%s\n", yellow("Cells:"))
	fmt.Fprintf(w, "  %s %d  %s %d  %s %d\n",
		tierColor(cluster.TierHigh)("high"), s.High,
		tierColor(cluster.TierMedium)("medium"), s.Medium,
		tierColor(cluster.TierLow)("low"), s.Low)
	fmt.Fprintf(w, "  avg %.3f  min %.3f  max %.3f\n", s.Average, s.Min, s.Max)
	fmt.Fprintf(w, "  coherence %.3f  diagonal %.1f%%  hot blocks %d  hotspots %d\n",
		res.Stats.Coherence, res.Stats.DiagonalQuality, res.Stats.HotBlocks.Count, res.Stats.Hotspots)

	fmt.Fprintf(w, "\n%s\n", yellow("Rows (display order):"))
	n := min(top, len(res.RowLabels))
	for i := 0; i < n; i++ {
		tier := res.RowTiers[i]
		badge := ""
		if res.Reordered(i) {
			badge = gray(fmt.Sprintf(" ↕ was #%d", res.RowOriginalIndex[i]+1))
		}
		fmt.Fprintf(w, "  %2d. %-12s %s%s\n", i+1, res.RowLabels[i], tierColor(tier)(tier.String()), badge)
	}
	if n < len(res.RowLabels) {
		fmt.Fprintf(w, "  %s\n", gray(fmt.Sprintf("... %d more", len(res.RowLabels)-n)))
	}

	fmt.Fprintf(w, "\n%s\n  %s\n", yellow("Columns (display order):"), strings.Join(res.ColumnLabels, " | "))

	if c := res.Corrections; c.Total() > 0 {
		fmt.Fprintf(w, "\n%s\n", yellow("Corrections:"))
		fmt.Fprintf(w, "  dropped records %d, padded rows %d, repaired permutations %d\n",
			c.DroppedRecords, c.PaddedRows, c.RepairedPermutations)
	}
	fmt.Fprintln(w)
}
