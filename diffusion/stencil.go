// SPDX-License-Identifier: MIT

package diffusion

import (
	"math"

	"github.com/katalvlaran/heatfield/matrix"
)

// Tap is one stencil offset (DR rows, DC cols) with its weight.
type Tap struct {
	DR, DC int
	Weight float64
}

// Stencil is a fixed set of taps, precomputed once and reused for every cell.
type Stencil []Tap

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// Chebyshev returns every offset with max(|dr|,|dc|) ≤ radius, weighted
// exp(-sqrt(dr²+dc²)·decay). The centre tap has weight 1.
// Taps are ordered row-major from (-radius,-radius).
//
// Complexity: O((2r+1)²).
func Chebyshev(radius int, decay float64) (Stencil, error) {
	if radius < 0 || radius > MaxRadius {
		return nil, paramErrorf("radius %d outside [0,%d]", radius, MaxRadius)
	}
	if !(decay > 0) || isNonFinite(decay) {
		return nil, paramErrorf("decay %g must be > 0", decay)
	}
	side := 2*radius + 1
	s := make(Stencil, 0, side*side)
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			d := math.Sqrt(float64(dr*dr + dc*dc))
			s = append(s, Tap{DR: dr, DC: dc, Weight: math.Exp(-d * decay)})
		}
	}

	return s, nil
}

// Convolve writes into dst, for every cell of src, the weighted mean over the
// in-bounds taps with weights renormalised to those taps only.
// dst and src must have the same shape and must not alias.
//
// Complexity: O(R·C·K), K = len(s).
func (s Stencil) Convolve(dst, src *matrix.Dense) error {
	if dst == nil || src == nil {
		return ErrNilMatrix
	}
	if err := matrix.ValidateSameShape(dst, src); err != nil {
		return err
	}
	rows, cols := src.Shape()
	var (
		i, j, ni, nj int
		sum, wsum    float64
	)
	for i = 0; i < rows; i++ {
		out, _ := dst.RowView(i)
		for j = 0; j < cols; j++ {
			sum, wsum = 0, 0
			for _, t := range s {
				ni, nj = i+t.DR, j+t.DC
				if ni < 0 || ni >= rows || nj < 0 || nj >= cols {
					continue
				}
				row, _ := src.RowView(ni)
				sum += row[nj] * t.Weight
				wsum += t.Weight
			}
			if wsum > 0 {
				out[j] = sum / wsum
			} else {
				v, _ := src.At(i, j)
				out[j] = v
			}
		}
	}

	return nil
}
