// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise sanitisation and comparison used by the heat stages.
//   - Clamp keeps heat inside the configured range after every diffusion/smoothing pass.
//   - AllClose is the numeric-equality primitive for invariance tests.
//
// Determinism:
//   - Flat row-major loops only; results are bitwise reproducible.

package matrix

import "math"

const (
	opClamp    = "Clamp"
	opAllClose = "AllClose"
)

// Clamp limits every element of m into [lo, hi] in place.
//
//	m[i,j] = min(max(m[i,j], lo), hi)
//
// Policy: lo and hi must be finite and lo <= hi, otherwise ErrNaNInf /
// ErrDimensionMismatch is returned and m is untouched.
//
// Time: O(r*c). Space: O(1).
func Clamp(m *Dense, lo, hi float64) error {
	if m == nil {
		return matrixErrorf(opClamp, ErrNilMatrix)
	}
	if isNonFinite(lo) || isNonFinite(hi) {
		return matrixErrorf(opClamp, ErrNaNInf)
	}
	if lo > hi {
		return matrixErrorf(opClamp, ErrDimensionMismatch)
	}
	for k, v := range m.data {
		if v < lo {
			m.data[k] = lo
		} else if v > hi {
			m.data[k] = hi
		}
	}

	return nil
}

// ClampValue limits a single value into [lo, hi].
func ClampValue(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
//
// AI-Hints:
//   - AllClose with small atol is ideal for "uniform input stays uniform" tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// Dense fast-path over flat slices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := range da.data {
				if math.Abs(da.data[k]-db.data[k]) > atol+rtol*math.Abs(db.data[k]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At.
	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
