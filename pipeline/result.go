// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/heatfield/analysis"
	"github.com/katalvlaran/heatfield/cluster"
	"github.com/katalvlaran/heatfield/matrix"
)

// Result is the presentation-ready output of one run.
type Result struct {
	RunID string `json:"run_id,omitempty"`

	FinalMatrix  [][]float64 `json:"final_matrix"`
	RowLabels    []string    `json:"row_labels"`
	ColumnLabels []string    `json:"column_labels"`
	// RowOriginalIndex[i] is the original row shown at display row i.
	RowOriginalIndex []int `json:"row_original_index"`
	// ColumnOriginalIndex[j] is the original column shown at display column j.
	ColumnOriginalIndex []int `json:"column_original_index"`

	// RowTiers is in display order.
	RowTiers    []cluster.Tier `json:"row_tiers,omitempty"`
	Thresholds  Thresholds     `json:"thresholds"`
	Stats       Stats          `json:"stats"`
	Corrections Corrections    `json:"corrections"`

	// Final is FinalMatrix as a Dense; read-only.
	Final *matrix.Dense `json:"-"`
}

// Thresholds are the row-tier cutoffs actually used.
type Thresholds struct {
	High       float64 `json:"high"`
	Medium     float64 `json:"medium"`
	Degenerate bool    `json:"degenerate"`
}

// Stats are informational scores of the final matrix.
type Stats struct {
	Summary         analysis.Summary      `json:"summary"`
	Coherence       float64               `json:"coherence"`
	DiagonalQuality float64               `json:"diagonal_quality"`
	HotBlocks       analysis.Blocks       `json:"hot_blocks"`
	Hotspots        int                   `json:"hotspots"`
	Coldspots       int                   `json:"coldspots"`
	ColumnScores    []cluster.ColumnScore `json:"column_scores,omitempty"`
}

// Corrections counts the non-fatal repairs applied during a run.
type Corrections struct {
	DroppedRecords       int `json:"dropped_records"`
	PaddedRows           int `json:"padded_rows"`
	PaddedCells          int `json:"padded_cells"`
	TruncatedRows        int `json:"truncated_rows"`
	TruncatedCells       int `json:"truncated_cells"`
	RepairedPermutations int `json:"repaired_permutations"`
}

// Total returns the sum of all correction counts.
func (c Corrections) Total() int {
	return c.DroppedRecords + c.PaddedRows + c.PaddedCells +
		c.TruncatedRows + c.TruncatedCells + c.RepairedPermutations
}

// Assemble applies rowPerm to the rows of m, then colPerm to each resulting
// row, and reorders the labels to match. m is not modified.
//
// Errors: matrix.ErrNilMatrix, cluster.ErrNotPermutation, ErrLabelMismatch.
//
// Complexity: O(R·C).
func Assemble(m *matrix.Dense, rowPerm, colPerm []int, rowLabels, colLabels []string) (Result, error) {
	var res Result
	if err := matrix.ValidateNotNil(m); err != nil {
		return res, err
	}
	r, c := m.Shape()
	if len(rowLabels) != r || len(colLabels) != c {
		return res, fmt.Errorf("%w: %d×%d labels for %d×%d matrix",
			ErrLabelMismatch, len(rowLabels), len(colLabels), r, c)
	}
	if err := cluster.ValidatePermutation(rowPerm, r); err != nil {
		return res, fmt.Errorf("rows: %w", err)
	}
	if err := cluster.ValidatePermutation(colPerm, c); err != nil {
		return res, fmt.Errorf("columns: %w", err)
	}

	final, err := m.Permute(rowPerm, colPerm)
	if err != nil {
		return res, err
	}
	res.Final = final
	res.FinalMatrix = final.ToRows()
	res.RowOriginalIndex = append([]int(nil), rowPerm...)
	res.ColumnOriginalIndex = append([]int(nil), colPerm...)
	res.RowLabels = make([]string, r)
	for i, p := range rowPerm {
		res.RowLabels[i] = rowLabels[p]
	}
	res.ColumnLabels = make([]string, c)
	for j, p := range colPerm {
		res.ColumnLabels[j] = colLabels[p]
	}

	return res, nil
}

// Reordered reports whether display row i shows a different original row.
// Dashboards use it for the "reordered" badge.
func (r *Result) Reordered(i int) bool {
	return i >= 0 && i < len(r.RowOriginalIndex) && r.RowOriginalIndex[i] != i
}
