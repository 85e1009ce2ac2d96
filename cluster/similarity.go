// SPDX-License-Identifier: MIT

package cluster

import (
	"math"

	"github.com/katalvlaran/heatfield/matrix"
)

// Similarity returns the C×C matrix of |pearson| correlations between the
// columns of m. Pairs involving a zero-variance column score 0; the diagonal
// is exactly 1. With fewer than two rows every column is degenerate.
//
// Row order does not affect the result.
//
// Complexity: O(R·C²).
func Similarity(m matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	c := m.Cols()
	if m.Rows() == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}

	var sim *matrix.Dense
	var err error
	if m.Rows() < 2 {
		if sim, err = matrix.NewDense(c, c); err != nil {
			return nil, err
		}
	} else {
		if sim, _, _, err = matrix.Correlation(m); err != nil {
			return nil, err
		}
	}
	err = sim.Apply(func(i, j int, v float64) float64 {
		if i == j {
			return 1
		}
		return math.Min(1, math.Abs(v))
	})
	if err != nil {
		return nil, err
	}

	return sim, nil
}
