// SPDX-License-Identifier: MIT

package smoothing

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heatfield/diffusion"
	"github.com/katalvlaran/heatfield/matrix"
)

// GaussianStencil builds a square kernel of side int(2·radius)+1 centred on the
// cell, with weight exp(-d²/(2·radius²)). For radius < 0.5 the kernel is the
// single centre tap and the pass reduces to a clamp.
//
// Errors: ErrBadParameter (radius ≤ 0 or non-finite).
func GaussianStencil(radius float64) (diffusion.Stencil, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: radius %g must be > 0", ErrBadParameter, radius)
	}
	size := int(2*radius) + 1
	half := size / 2
	twoR2 := 2 * radius * radius
	s := make(diffusion.Stencil, 0, size*size)
	for dr := -half; dr < size-half; dr++ {
		for dc := -half; dc < size-half; dc++ {
			d2 := float64(dr*dr + dc*dc)
			s = append(s, diffusion.Tap{DR: dr, DC: dc, Weight: math.Exp(-d2 / twoR2)})
		}
	}

	return s, nil
}

// Gaussian smooths m in place with a Gaussian kernel of the given radius,
// then clamps into range.
//
// Complexity: O(R·C·K), K = (int(2r)+1)².
func Gaussian(m *matrix.Dense, radius float64, opts ...Option) error {
	if m == nil {
		return ErrNilMatrix
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return err
	}
	s, err := GaussianStencil(radius)
	if err != nil {
		return err
	}
	src := m.CloneDense()
	if err = s.Convolve(m, src); err != nil {
		return err
	}

	return matrix.Clamp(m, o.clampMin, o.clampMax)
}
