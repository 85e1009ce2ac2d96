// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heatfield/matrix"
)

// DefaultDiagonalBlocks splits the matrix into three diagonal blocks.
const DefaultDiagonalBlocks = 3

// Coherence returns the mean of 1-|a-b| over all right and down neighbour
// pairs. Matrices with no pairs (1×1) score 0.
//
// Complexity: O(R·C).
func Coherence(m matrix.Matrix) (float64, error) {
	vals, err := flatten(m)
	if err != nil {
		return 0, err
	}
	r, c := m.Rows(), m.Cols()
	pairs := r*(c-1) + c*(r-1)
	if pairs == 0 {
		return 0, nil
	}
	var score float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := vals[i*c+j]
			if j+1 < c {
				score += 1 - math.Abs(v-vals[i*c+j+1])
			}
			if i+1 < r {
				score += 1 - math.Abs(v-vals[(i+1)*c+j])
			}
		}
	}

	return score / float64(pairs), nil
}

// DiagonalQuality returns 100·(heat inside the diagonal blocks)/(total heat).
// Block k spans rows and columns [k·s, (k+1)·s) with s = min(R, C)/blocks.
// A zero total or a zero block size scores 0.
//
// Errors: ErrBadParameter when blocks < 1.
func DiagonalQuality(m matrix.Matrix, blocks int) (float64, error) {
	if blocks < 1 {
		return 0, fmt.Errorf("%w: blocks=%d", ErrBadParameter, blocks)
	}
	vals, err := flatten(m)
	if err != nil {
		return 0, err
	}
	r, c := m.Rows(), m.Cols()
	var total float64
	for _, v := range vals {
		total += v
	}
	size := min(r, c) / blocks
	if total == 0 || size == 0 {
		return 0, nil
	}

	var diag float64
	for k := 0; k < blocks; k++ {
		for i := k * size; i < min((k+1)*size, r); i++ {
			for j := k * size; j < min((k+1)*size, c); j++ {
				diag += vals[i*c+j]
			}
		}
	}

	return diag / total * 100, nil
}
