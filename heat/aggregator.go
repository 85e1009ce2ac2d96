// SPDX-License-Identifier: MIT

package heat

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/heatfield/config"
	"github.com/katalvlaran/heatfield/matrix"
)

// Drop reasons reported in AggregateReport.
const (
	ReasonRowOutOfRange    = "row out of range"
	ReasonColumnOutOfRange = "column out of range"
	ReasonUnknownColumn    = "unknown column name"
	ReasonNoColumn         = "no column"
	ReasonNegativeCount    = "negative change count"
)

// DroppedRecord identifies a record rejected during aggregation.
type DroppedRecord struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// AggregateReport summarises one aggregation.
type AggregateReport struct {
	Accepted  int             `json:"accepted"`
	Dropped   []DroppedRecord `json:"dropped,omitempty"`
	RowTotals []int           `json:"row_totals"`
	Cells     int             `json:"cells"` // distinct cells written
}

// Aggregator converts change records into a heat matrix.
// It is immutable after construction and safe for concurrent use.
type Aggregator struct {
	rows, cols int
	base, cap  float64
	bands      []config.Band // descending by Above
	minimal    config.Band
	critical   []bool
	bonus      float64
	colIndex   map[string]int
	logger     *zap.Logger
}

// NewAggregator builds an Aggregator from cfg. Critical column names that do
// not resolve to a label are ignored with a warning. A nil logger is replaced
// by zap.NewNop().
func NewAggregator(cfg *config.Config, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Aggregator{
		rows:     cfg.Rows,
		cols:     cfg.Cols,
		base:     cfg.BaseHeat,
		cap:      cfg.Cap,
		bands:    cfg.SortedBands(),
		minimal:  cfg.MinimalBand,
		critical: make([]bool, cfg.Cols),
		bonus:    cfg.CriticalBonus,
		colIndex: cfg.ColumnIndex(),
		logger:   logger.Named("aggregate"),
	}
	for _, name := range cfg.CriticalColumns {
		if j, ok := a.colIndex[name]; ok && j < a.cols {
			a.critical[j] = true
			continue
		}
		a.logger.Warn("Ignoring unknown critical column", zap.String("column", name))
	}

	return a
}

// Band returns the (base_heat, diff_weight) pair for a row total.
// Bands are checked in descending order of their threshold; the first whose
// threshold is strictly exceeded wins, else the minimal band applies.
func (a *Aggregator) Band(total int) config.Band {
	for _, b := range a.bands {
		if total > b.Above {
			return b
		}
	}

	return a.minimal
}

// Aggregate builds the R×C heat matrix.
//
// Implementation:
//   - Stage 1: Fill an R×C matrix with base heat.
//   - Stage 2: Resolve and validate every record; drop and log malformed ones.
//   - Stage 3: Sum change counts per row over accepted records.
//   - Stage 4: For each accepted record, write min(cap, band.base + band.diff + bonus).
//
// Complexity: O(R·C + N).
func (a *Aggregator) Aggregate(records []ChangeRecord) (*matrix.Dense, AggregateReport, error) {
	m, err := matrix.NewFilled(a.rows, a.cols, a.base)
	if err != nil {
		return nil, AggregateReport{}, err
	}
	report := AggregateReport{RowTotals: make([]int, a.rows)}

	type cell struct{ row, col int }
	accepted := make([]cell, 0, len(records))
	for i, rec := range records {
		col, reason := a.resolve(rec)
		if reason != "" {
			report.Dropped = append(report.Dropped, DroppedRecord{Index: i, Reason: reason})
			a.logger.Warn("Dropping change record",
				zap.Int("record", i),
				zap.Int("row", rec.Table),
				zap.Int("col", col),
				zap.String("column_name", rec.ColumnName),
				zap.String("reason", reason))
			continue
		}
		report.RowTotals[rec.Table] += rec.Count
		accepted = append(accepted, cell{row: rec.Table, col: col})
	}
	report.Accepted = len(accepted)

	written := make(map[cell]struct{}, len(accepted))
	for _, c := range accepted {
		band := a.Band(report.RowTotals[c.row])
		weight := band.DiffWeight
		if a.critical[c.col] {
			weight += a.bonus
		}
		v := band.BaseHeat + weight
		if v > a.cap {
			v = a.cap
		}
		if err = m.Set(c.row, c.col, v); err != nil {
			return nil, report, err
		}
		written[c] = struct{}{}
	}
	report.Cells = len(written)

	a.logger.Debug("Aggregated change records",
		zap.Int("accepted", report.Accepted),
		zap.Int("dropped", len(report.Dropped)),
		zap.Int("cells", report.Cells))

	return m, report, nil
}

// resolve returns the column index for rec, or a drop reason.
func (a *Aggregator) resolve(rec ChangeRecord) (int, string) {
	if rec.Table < 0 || rec.Table >= a.rows {
		return -1, ReasonRowOutOfRange
	}
	if rec.Count < 0 {
		return -1, ReasonNegativeCount
	}
	switch {
	case rec.Column != nil:
		if *rec.Column < 0 || *rec.Column >= a.cols {
			return *rec.Column, ReasonColumnOutOfRange
		}
		return *rec.Column, ""
	case rec.ColumnName != "":
		j, ok := a.colIndex[rec.ColumnName]
		if !ok || j >= a.cols {
			return -1, ReasonUnknownColumn
		}
		return j, ""
	default:
		return -1, ReasonNoColumn
	}
}
