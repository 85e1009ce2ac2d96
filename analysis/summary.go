// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/heatfield/matrix"
)

// Default risk-band thresholds used by dashboards.
const (
	DefaultHighThreshold   = 0.7
	DefaultMediumThreshold = 0.4

	// DistributionBins is the number of equal-width histogram bins in Summary.
	DistributionBins = 10
)

// Summary describes the value distribution of a heat matrix.
type Summary struct {
	High   int `json:"high"`   // cells > high threshold
	Medium int `json:"medium"` // cells > medium threshold and ≤ high
	Low    int `json:"low"`    // the rest

	Average float64 `json:"average"`
	StdDev  float64 `json:"std_dev"` // population standard deviation
	Max     float64 `json:"max"`
	Min     float64 `json:"min"`

	// Distribution counts cells per bin over [0, 1), widened to cover
	// values outside the unit interval when present.
	Distribution []int `json:"distribution"`
}

// Summarize computes a Summary of every cell in m.
//
// Errors: ErrBadParameter when medium > high or either is not finite,
// matrix validation errors.
//
// Complexity: O(n log n) for n = R·C (the histogram needs sorted input).
func Summarize(m matrix.Matrix, high, medium float64) (Summary, error) {
	var s Summary
	if math.IsNaN(high) || math.IsNaN(medium) || math.IsInf(high, 0) || math.IsInf(medium, 0) || medium > high {
		return s, fmt.Errorf("%w: thresholds high=%v medium=%v", ErrBadParameter, high, medium)
	}
	vals, err := flatten(m)
	if err != nil {
		return s, err
	}

	for _, v := range vals {
		switch {
		case v > high:
			s.High++
		case v > medium:
			s.Medium++
		default:
			s.Low++
		}
	}
	s.Average, s.StdDev = stat.PopMeanStdDev(vals, nil)
	s.Max, s.Min = floats.Max(vals), floats.Min(vals)

	lo, hi := 0.0, 1.0
	if s.Min < lo {
		lo = s.Min
	}
	if s.Max >= hi {
		hi = math.Nextafter(s.Max, math.Inf(1))
	}
	dividers := floats.Span(make([]float64, DistributionBins+1), lo, hi)
	sort.Float64s(vals)
	counts := stat.Histogram(make([]float64, DistributionBins), dividers, vals, nil)
	s.Distribution = make([]int, len(counts))
	for i, c := range counts {
		s.Distribution[i] = int(c)
	}

	return s, nil
}

// flatten copies m into a row-major slice.
func flatten(m matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrBadParameter)
	}
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}

	return out, nil
}
