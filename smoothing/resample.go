// SPDX-License-Identifier: MIT

package smoothing

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heatfield/matrix"
)

// Resample blurs m in place through a resolution round trip.
//
// Implementation:
//   - Stage 1: Up-sample to int(R·scale)×int(C·scale). Target cell (i,j) maps to
//     source (i/scale, j/scale) and is the bilinear blend of the 4 nearest cells
//     (indices clamped at the last row/column).
//   - Stage 2: Down-sample back: m[i,j] = up[int(i·scale), int(j·scale)].
//   - Stage 3: Clamp into range.
//
// scale == 1 is an exact identity (before clamping).
//
// Errors: ErrNilMatrix, ErrBadParameter (scale < 1, > MaxScale or non-finite).
// Complexity: O(R·C·scale²).
func Resample(m *matrix.Dense, scale float64, opts ...Option) error {
	if m == nil {
		return ErrNilMatrix
	}
	if math.IsNaN(scale) || scale < 1 || scale > MaxScale {
		return fmt.Errorf("%w: scale %g outside [1,%g]", ErrBadParameter, scale, MaxScale)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return err
	}
	rows, cols := m.Shape()
	src := m.ToRows()

	upR, upC := int(float64(rows)*scale), int(float64(cols)*scale)
	up := make([][]float64, upR)
	var (
		i, j, x1, y1, x2, y2 int
		x, y, fx, fy         float64
	)
	for i = 0; i < upR; i++ {
		up[i] = make([]float64, upC)
		x = float64(i) / scale
		x1 = min(int(x), rows-1)
		x2 = min(x1+1, rows-1)
		fx = x - float64(x1)
		for j = 0; j < upC; j++ {
			y = float64(j) / scale
			y1 = min(int(y), cols-1)
			y2 = min(y1+1, cols-1)
			fy = y - float64(y1)
			up[i][j] = src[x1][y1]*(1-fx)*(1-fy) +
				src[x2][y1]*fx*(1-fy) +
				src[x1][y2]*(1-fx)*fy +
				src[x2][y2]*fx*fy
		}
	}

	for i = 0; i < rows; i++ {
		dst, _ := m.RowView(i)
		si := min(int(float64(i)*scale), upR-1)
		for j = 0; j < cols; j++ {
			dst[j] = up[si][min(int(float64(j)*scale), upC-1)]
		}
	}

	return matrix.Clamp(m, o.clampMin, o.clampMax)
}

