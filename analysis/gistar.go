// SPDX-License-Identifier: MIT

package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/heatfield/gridgraph"
	"github.com/katalvlaran/heatfield/matrix"
)

// GiStarCritical is the two-sided 95% critical value for Gi* z-scores.
const GiStarCritical = 1.96

// GiStarResult holds per-cell z-scores and the significant-cell counts.
type GiStarResult struct {
	Z         *matrix.Dense `json:"-"`
	Hotspots  int           `json:"hotspots"`
	Coldspots int           `json:"coldspots"`
}

// GiStar computes the Getis-Ord Gi* statistic with unit weights over each
// cell's in-bounds 3×3 neighbourhood (centre included):
//
//	Gi* = (Σw·x - x̄·W) / sqrt(s²·(n·W - W²)/(n-1))
//
// where x̄ and s² are the population mean and variance of all n cells and W is
// the neighbourhood size. Cells with zero variance (uniform matrix) or no
// neighbours score 0.
//
// Implementation:
//   - Stage 1: Flatten; global mean/variance via stat.PopMeanVariance.
//   - Stage 2: For each cell sum the 8-neighbour offsets of gridgraph plus itself.
//   - Stage 3: Count |z| > GiStarCritical split by sign.
//
// Complexity: O(R·C·9).
func GiStar(m matrix.Matrix) (GiStarResult, error) {
	var res GiStarResult
	vals, err := flatten(m)
	if err != nil {
		return res, err
	}
	r, c := m.Rows(), m.Cols()
	if res.Z, err = matrix.NewDense(r, c); err != nil {
		return res, err
	}
	n := float64(len(vals))
	if len(vals) < 2 {
		return res, nil
	}
	mean, variance := stat.PopMeanVariance(vals, nil)

	offsets := gridgraph.Offsets(gridgraph.Conn8)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum, w := vals[i*c+j], 1.0
			for _, off := range offsets {
				y, x := i+off[1], j+off[0]
				if y < 0 || y >= r || x < 0 || x >= c {
					continue
				}
				sum += vals[y*c+x]
				w++
			}
			if w < 2 {
				continue
			}
			v := variance * (n*w - w*w) / (n - 1)
			if v <= 0 {
				continue
			}
			z := (sum - mean*w) / math.Sqrt(v)
			if err = res.Z.Set(i, j, z); err != nil {
				return res, err
			}
			switch {
			case z > GiStarCritical:
				res.Hotspots++
			case z < -GiStarCritical:
				res.Coldspots++
			}
		}
	}

	return res, nil
}
