// SPDX-License-Identifier: MIT

package diffusion_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/heatfield/diffusion"
	"github.com/katalvlaran/heatfield/matrix"
)

func BenchmarkDiffuse(b *testing.B) {
	b.ReportAllocs()
	for _, r := range []int{1, 2, 3} {
		b.Run(fmt.Sprintf("radius=%d", r), func(b *testing.B) {
			m, _ := matrix.NewFilled(30, 19, 0.05)
			_ = m.Set(0, 2, 0.9)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := diffusion.Diffuse(m, 3, 0.08, diffusion.WithRadius(r)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
