// SPDX-License-Identifier: MIT

package cluster

import (
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/heatfield/config"
	"github.com/katalvlaran/heatfield/matrix"
)

// ColumnScore reports how many rows are high/medium in one column.
// Score = 2·High + Medium.
type ColumnScore struct {
	Column int `json:"column"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Score  int `json:"score"`
}

// RowOrdering is the result of RowClusterer.Order.
type RowOrdering struct {
	// Permutation lists original row indices, most alarming first.
	Permutation []int `json:"permutation"`
	// Tiers is indexed by ORIGINAL row.
	Tiers           []Tier  `json:"tiers"`
	HighThreshold   float64 `json:"high_threshold"`
	MediumThreshold float64 `json:"medium_threshold"`
	// ColumnScores is sorted by Score descending, then column ascending.
	ColumnScores []ColumnScore `json:"column_scores"`
	// Degenerate is set when a threshold fell back to a fraction of the max.
	Degenerate bool `json:"degenerate"`
	// PaddedRows counts base-heat rows added to reach the declared height.
	PaddedRows int `json:"padded_rows"`
	// Repairs counts permutation entries fixed by the final repair step.
	Repairs int `json:"repairs"`
}

// RowClusterer orders rows by statistically tiered intensity.
type RowClusterer struct {
	rows   int
	base   float64
	cfg    config.ClusteringConfig
	logger *zap.Logger
}

// NewRowClusterer builds a RowClusterer from cfg. A nil logger is replaced by zap.NewNop().
func NewRowClusterer(cfg *config.Config, logger *zap.Logger) *RowClusterer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &RowClusterer{
		rows:   cfg.Rows,
		base:   cfg.BaseHeat,
		cfg:    cfg.Clustering,
		logger: logger.Named("rows"),
	}
}

// Thresholds returns (high, medium, degenerate) for the descending-sorted
// values above base heat.
//
//	high   = vals[int(n·HighPercentile)]   if n ≥ MinHighSamples   else max·HighFallback
//	medium = vals[int(n·MediumPercentile)] if n ≥ MinMediumSamples else max·MediumFallback
func (rc *RowClusterer) Thresholds(desc []float64) (high, medium float64, degenerate bool) {
	n := len(desc)
	if n == 0 {
		return rc.base, rc.base, true
	}
	peak := desc[0]
	if n >= rc.cfg.MinHighSamples {
		high = desc[min(int(float64(n)*rc.cfg.HighPercentile), n-1)]
	} else {
		high, degenerate = peak*rc.cfg.HighFallback, true
	}
	if n >= rc.cfg.MinMediumSamples {
		medium = desc[min(int(float64(n)*rc.cfg.MediumPercentile), n-1)]
	} else {
		medium, degenerate = peak*rc.cfg.MediumFallback, true
	}

	return high, medium, degenerate
}

// Order computes the row permutation.
//
// Implementation:
//   - Stage 1: Pad to the declared row count with base-heat rows.
//   - Stage 2: Collect values > base, sort descending, derive thresholds.
//   - Stage 3: Tier every row and score every column.
//   - Stage 4: Three passes (high by (max,sum), medium by sum, rest by sum),
//     each stable so ties keep the lower original index first.
//   - Stage 5: Repair the permutation if its length or content is off.
//
// Errors: ErrEmptyMatrix, matrix validation errors.
// Complexity: O(R·C·log(R·C)).
func (rc *RowClusterer) Order(m matrix.Matrix) (RowOrdering, error) {
	var out RowOrdering
	if err := matrix.ValidateNotNil(m); err != nil {
		return out, err
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return out, ErrEmptyMatrix
	}

	d, padded, err := rc.pad(m)
	if err != nil {
		return out, err
	}
	out.PaddedRows = padded
	if padded > 0 {
		rc.logger.Warn("Padded matrix with base-heat rows",
			zap.Int("have", m.Rows()),
			zap.Int("want", d.Rows()),
			zap.String("reason", "incomplete matrix"))
	}

	rows, cols := d.Shape()
	grid := d.ToRows()

	vals := make([]float64, 0, rows*cols)
	for _, row := range grid {
		for _, v := range row {
			if v > rc.base {
				vals = append(vals, v)
			}
		}
	}
	out.Tiers = make([]Tier, rows)
	if len(vals) == 0 {
		out.Permutation = matrix.Identity(rows)
		out.HighThreshold, out.MediumThreshold, out.Degenerate = rc.base, rc.base, true
		out.ColumnScores = make([]ColumnScore, cols)
		for j := range out.ColumnScores {
			out.ColumnScores[j].Column = j
		}
		rc.logger.Info("No values above base heat, keeping row order",
			zap.Float64("base_heat", rc.base),
			zap.String("reason", "degenerate statistics"))
		return out, nil
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))
	high, medium, degenerate := rc.Thresholds(vals)
	out.HighThreshold, out.MediumThreshold, out.Degenerate = high, medium, degenerate
	if degenerate {
		rc.logger.Info("Too few values for percentile thresholds, using max-derived fallback",
			zap.Int("samples", len(vals)),
			zap.Float64("high", high),
			zap.Float64("medium", medium),
			zap.String("reason", "degenerate statistics"))
	}

	// Tiers and column scores.
	out.ColumnScores = make([]ColumnScore, cols)
	for j := range out.ColumnScores {
		out.ColumnScores[j].Column = j
	}
	sums := make([]float64, rows)
	maxes := make([]float64, rows)
	for i, row := range grid {
		maxes[i] = row[0]
		for j, v := range row {
			sums[i] += v
			if v > maxes[i] {
				maxes[i] = v
			}
			switch {
			case v > high:
				out.ColumnScores[j].High++
				out.Tiers[i] = TierHigh
			case v > medium:
				out.ColumnScores[j].Medium++
				if out.Tiers[i] < TierMedium {
					out.Tiers[i] = TierMedium
				}
			}
		}
	}
	for j := range out.ColumnScores {
		cs := &out.ColumnScores[j]
		cs.Score = 2*cs.High + cs.Medium
	}
	sort.SliceStable(out.ColumnScores, func(a, b int) bool {
		return out.ColumnScores[a].Score > out.ColumnScores[b].Score
	})

	// Passes.
	var hi, mid, low []int
	for i, t := range out.Tiers {
		switch t {
		case TierHigh:
			hi = append(hi, i)
		case TierMedium:
			mid = append(mid, i)
		default:
			low = append(low, i)
		}
	}
	sort.SliceStable(hi, func(a, b int) bool {
		ra, rb := hi[a], hi[b]
		if maxes[ra] != maxes[rb] {
			return maxes[ra] > maxes[rb]
		}
		return sums[ra] > sums[rb]
	})
	bySum := func(s []int) func(a, b int) bool {
		return func(a, b int) bool { return sums[s[a]] > sums[s[b]] }
	}
	sort.SliceStable(mid, bySum(mid))
	sort.SliceStable(low, bySum(low))

	perm := make([]int, 0, rows)
	perm = append(perm, hi...)
	perm = append(perm, mid...)
	perm = append(perm, low...)

	if err = ValidatePermutation(perm, rows); err != nil {
		perm, out.Repairs = RepairPermutation(perm, rows)
		rc.logger.Warn("Repaired row permutation", zap.Int("fixes", out.Repairs))
	}
	out.Permutation = perm

	rc.logger.Debug("Ordered rows",
		zap.Int("high", len(hi)),
		zap.Int("medium", len(mid)),
		zap.Int("low", len(low)),
		zap.Float64("high_threshold", high),
		zap.Float64("medium_threshold", medium))

	return out, nil
}

// pad returns m as a Dense with at least rc.rows rows; missing rows hold base heat.
func (rc *RowClusterer) pad(m matrix.Matrix) (*matrix.Dense, int, error) {
	r, c := m.Rows(), m.Cols()
	want := max(r, rc.rows)
	d, err := matrix.NewFilled(want, c, rc.base)
	if err != nil {
		return nil, 0, err
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, 0, err
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, 0, err
			}
		}
	}

	return d, want - r, nil
}
