// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatfield/matrix"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 1, 4, []float64{-1, 0.5, 0.99, 0.01})
	require.NoError(t, matrix.Clamp(m, 0.01, 0.98))
	CompareExact(t, [][]float64{{0.01, 0.5, 0.98, 0.01}}, m)

	AssertErrorIs(t, matrix.Clamp(m, 0.9, 0.1), matrix.ErrDimensionMismatch)
	AssertErrorIs(t, matrix.Clamp(m, math.NaN(), 1), matrix.ErrNaNInf)
	AssertErrorIs(t, matrix.Clamp(nil, 0, 1), matrix.ErrNilMatrix)
}

func TestClampValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.01, matrix.ClampValue(-3, 0.01, 0.98))
	assert.Equal(t, 0.98, matrix.ClampValue(3, 0.01, 0.98))
	assert.Equal(t, 0.5, matrix.ClampValue(0.5, 0.01, 0.98))
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4 + 1e-10})

	tests := []struct {
		name string
		x, y matrix.Matrix
		atol float64
		want bool
	}{
		{"fast within", a, b, 1e-9, true},
		{"fast outside", a, b, 1e-12, false},
		{"fallback within", hide{a}, b, 1e-9, true},
		{"fallback outside", a, hide{b}, 1e-12, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.AllClose(tc.x, tc.y, 0, tc.atol)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := matrix.AllClose(a, MustDense(t, 3, 2), 0, 0)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}
