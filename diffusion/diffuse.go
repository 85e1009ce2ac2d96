// SPDX-License-Identifier: MIT

package diffusion

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/heatfield/matrix"
)

// Diffuse runs `iterations` diffusion sweeps over m in place.
//
// Implementation:
//   - Stage 1: Validate knobs (iterations ≥ 0, rate ∈ [0,1], options).
//   - Stage 2: Precompute the Chebyshev stencil once.
//   - Stage 3: Per sweep: snapshot m, convolve the snapshot into avg, then
//     m[i,j] = clamp(snap[i,j]·(1-rate) + avg[i,j]·rate).
//
// Behavior highlights:
//   - Shape is preserved; a uniform matrix is a fixpoint (up to rounding).
//   - iterations == 0 still clamps m into range.
//
// Errors:
//   - ErrNilMatrix, ErrBadParameter.
//
// Complexity:
//   - Time O(iterations·R·C·K), Space O(R·C).
func Diffuse(m *matrix.Dense, iterations int, rate float64, opts ...Option) error {
	if m == nil {
		return ErrNilMatrix
	}
	if iterations < 0 {
		return paramErrorf("iterations %d must be >= 0", iterations)
	}
	if isNonFinite(rate) || rate < 0 || rate > 1 {
		return paramErrorf("rate %g outside [0,1]", rate)
	}
	o := gatherOptions(opts)
	if err := o.validate(); err != nil {
		return err
	}
	stencil, err := Chebyshev(o.radius, o.decay)
	if err != nil {
		return err
	}

	snap := m.CloneDense()
	avg := m.CloneDense()
	rows, cols := m.Shape()
	keep := 1 - rate
	for it := 0; it < iterations; it++ {
		if err = snap.CopyFrom(m); err != nil {
			return err
		}
		if err = stencil.Convolve(avg, snap); err != nil {
			return err
		}
		changed := 0
		for i := 0; i < rows; i++ {
			cur, _ := m.RowView(i)
			old, _ := snap.RowView(i)
			nb, _ := avg.RowView(i)
			for j := 0; j < cols; j++ {
				v := matrix.ClampValue(old[j]*keep+nb[j]*rate, o.clampMin, o.clampMax)
				if math.Abs(v-old[j]) > changedEpsilon {
					changed++
				}
				cur[j] = v
			}
		}
		if ce := o.logger.Check(zap.DebugLevel, "Diffusion sweep"); ce != nil {
			ce.Write(
				zap.Int("iteration", it),
				zap.Float64("mean_heat", m.Sum()/float64(rows*cols)),
				zap.Int("changed_cells", changed))
		}
	}

	return matrix.Clamp(m, o.clampMin, o.clampMax)
}
