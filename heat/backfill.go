// SPDX-License-Identifier: MIT

package heat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heatfield/matrix"
)

// BackfillReport counts the corrections Backfill applied.
type BackfillReport struct {
	PaddedRows     int `json:"padded_rows"`
	PaddedCells    int `json:"padded_cells"`
	TruncatedRows  int `json:"truncated_rows"`
	TruncatedCells int `json:"truncated_cells"`
}

// Corrections returns the total number of corrections.
func (r BackfillReport) Corrections() int {
	return r.PaddedRows + r.PaddedCells + r.TruncatedRows + r.TruncatedCells
}

// Backfill builds an exact R×C matrix from a possibly short or ragged row set.
// Missing rows and missing trailing cells take the base value; rows or cells
// beyond the declared shape are discarded. Non-finite values are rejected.
//
// Complexity: O(R·C).
func Backfill(rows [][]float64, r, c int, base float64) (*matrix.Dense, BackfillReport, error) {
	var rep BackfillReport
	m, err := matrix.NewFilled(r, c, base)
	if err != nil {
		return nil, rep, fmt.Errorf("heat: backfill: %w", err)
	}

	for i, row := range rows {
		if i >= r {
			rep.TruncatedRows++
			continue
		}
		if len(row) > c {
			rep.TruncatedCells += len(row) - c
		} else {
			rep.PaddedCells += c - len(row)
		}
		dst, _ := m.RowView(i)
		for j := 0; j < len(row) && j < c; j++ {
			if math.IsNaN(row[j]) || math.IsInf(row[j], 0) {
				return nil, rep, fmt.Errorf("heat: backfill cell (%d,%d): %w", i, j, matrix.ErrNaNInf)
			}
			dst[j] = row[j]
		}
	}
	if len(rows) < r {
		rep.PaddedRows = r - len(rows)
	}

	return m, rep, nil
}
