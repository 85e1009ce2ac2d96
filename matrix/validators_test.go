// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatfield/matrix"
)

func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	AssertErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	AssertErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := NewFilledDense(t, 2, 2, []float64{1, 0.5, 0.5, 1})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	asym := NewFilledDense(t, 2, 2, []float64{1, 0.5, 0.4, 1})
	AssertErrorIs(t, matrix.ValidateSymmetric(asym, 1e-3), matrix.ErrAsymmetry)
	AssertErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrNonSquare)
}

func TestValidatePermutation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		perm []int
		n    int
		ok   bool
	}{
		{"identity", []int{0, 1, 2}, 3, true},
		{"shuffled", []int{2, 0, 1}, 3, true},
		{"empty", nil, 0, true},
		{"duplicate", []int{0, 0, 1}, 3, false},
		{"out of range", []int{0, 1, 3}, 3, false},
		{"negative", []int{-1, 0, 1}, 3, false},
		{"short", []int{0, 1}, 3, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidatePermutation(tc.perm, tc.n)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			AssertErrorIs(t, err, matrix.ErrBadPermutation)
		})
	}
}
