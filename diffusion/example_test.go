// SPDX-License-Identifier: MIT

package diffusion_test

import (
	"fmt"

	"github.com/katalvlaran/heatfield/diffusion"
	"github.com/katalvlaran/heatfield/matrix"
)

func ExampleDiffuse() {
	m, _ := matrix.NewFilled(3, 3, 0.05)
	_ = m.Set(1, 1, 0.9)

	_ = diffusion.Diffuse(m, 1, 0.5, diffusion.WithRadius(1))
	v, row, col := m.Max()
	fmt.Printf("max %.3f at (%d,%d)\n", v, row, col)
	// Output:
	// max 0.540 at (1,1)
}
