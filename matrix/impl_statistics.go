// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column/row statistics the clusterers need (means, sample stds,
//     Pearson correlation, row sums and maxima) as deterministic flat-slice loops.
//
// Exposed API:
//   - ColumnMeans(X)  -> means                  // Σ_i X[i,j] / r
//   - ColumnStds(X)   -> (stds, means)          // sample std, denominator r-1
//   - Correlation(X)  -> (Corr, means, stds)    // Pearson corr of columns; std==0 → zero row/col
//   - RowSums(X), RowMaxes(X)                   // per-row aggregates for tier ordering
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops.
//   - Dense fast-paths read the row-major buffer; other Matrix values go through At.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opColumnMeans = "ColumnMeans"
	opColumnStds  = "ColumnStds"
	opCorrelation = "Correlation"
	opRowSums     = "RowSums"
	opRowMaxes    = "RowMaxes"
)

// toDense returns X as *Dense, materialising a copy through At for other implementations.
func toDense(tag string, X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if d, ok := X.(*Dense); ok {
		return d, nil
	}
	r, c := X.Rows(), X.Cols()
	d, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}

// ColumnMeans returns the per-column arithmetic mean.
// Complexity: O(r*c).
func ColumnMeans(X Matrix) ([]float64, error) {
	d, err := toDense(opColumnMeans, X)
	if err != nil {
		return nil, err
	}

	return columnMeans(d), nil
}

func columnMeans(d *Dense) []float64 {
	means := make([]float64, d.c)
	var i, j int
	for i = 0; i < d.r; i++ {
		base := i * d.c
		for j = 0; j < d.c; j++ {
			means[j] += d.data[base+j]
		}
	}
	inv := 1.0 / float64(d.r)
	for j = 0; j < d.c; j++ {
		means[j] *= inv
	}

	return means
}

// ColumnStds returns the per-column sample standard deviation and the means used.
//
// Errors:
//   - ErrDimensionMismatch when r < 2 (sample denominator undefined).
//
// Complexity: O(r*c).
func ColumnStds(X Matrix) ([]float64, []float64, error) {
	d, err := toDense(opColumnStds, X)
	if err != nil {
		return nil, nil, err
	}
	if d.r < 2 {
		return nil, nil, matrixErrorf(opColumnStds, ErrDimensionMismatch)
	}
	means := columnMeans(d)

	return columnStds(d, means), means, nil
}

func columnStds(d *Dense, means []float64) []float64 {
	sumsq := make([]float64, d.c)
	var i, j int
	var v float64
	for i = 0; i < d.r; i++ {
		base := i * d.c
		for j = 0; j < d.c; j++ {
			v = d.data[base+j] - means[j]
			sumsq[j] += v * v
		}
	}
	inv := 1.0 / float64(d.r-1)
	for j = 0; j < d.c; j++ {
		sumsq[j] = math.Sqrt(sumsq[j] * inv)
	}

	return sumsq
}

// Correlation computes the Pearson correlation of columns via z-scoring:
//
//	Z = (X - mean) / std,  Corr = (Zᵀ Z)/(r-1),  std==0 ⇒ column zeroed.
//
// Implementation:
//   - Stage 1: Validate X, require r>=2.
//   - Stage 2: Means and sample stds per column; invStd = 0 for degenerate columns.
//   - Stage 3: Accumulate the upper triangle of ZᵀZ with fixed k→i→j loops, mirror it.
//   - Stage 4: Clamp into [-1, 1] to absorb rounding drift.
//
// Behavior highlights:
//   - Symmetric; diagonal is 1 for non-degenerate columns, 0 for degenerate (std==0).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2).
//
// Complexity:
//   - Time O(r*c²), Space O(c² + r*c).
//
// AI-Hints:
//   - Scale-invariant: Corr(α*X) == Corr(X) for α>0 on non-degenerate columns.
func Correlation(X Matrix) (*Dense, []float64, []float64, error) {
	d, err := toDense(opCorrelation, X)
	if err != nil {
		return nil, nil, nil, err
	}
	r, c := d.r, d.c
	if r < 2 {
		return nil, nil, nil, matrixErrorf(opCorrelation, ErrDimensionMismatch)
	}

	means := columnMeans(d)
	stds := columnStds(d, means)
	invStd := make([]float64, c)
	var i, j, k int
	for j = 0; j < c; j++ {
		if stds[j] > 0 {
			invStd[j] = 1.0 / stds[j]
		}
	}

	// Z-scored copy (row-major), degenerate columns become zeros.
	z := make([]float64, r*c)
	for k = 0; k < r; k++ {
		base := k * c
		for j = 0; j < c; j++ {
			z[base+j] = (d.data[base+j] - means[j]) * invStd[j]
		}
	}

	corr, err := NewDense(c, c)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	inv := 1.0 / float64(r-1)
	var s float64
	for i = 0; i < c; i++ {
		for j = i; j < c; j++ {
			s = 0
			for k = 0; k < r; k++ {
				s += z[k*c+i] * z[k*c+j]
			}
			s = ClampValue(s*inv, -1, 1)
			corr.data[i*c+j] = s
			corr.data[j*c+i] = s
		}
	}

	return corr, means, stds, nil
}

// RowSums returns r[i] = Σ_j X[i,j].
// Complexity: O(r*c).
func RowSums(X Matrix) ([]float64, error) {
	d, err := toDense(opRowSums, X)
	if err != nil {
		return nil, err
	}
	out := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		base := i * d.c
		for j := 0; j < d.c; j++ {
			out[i] += d.data[base+j]
		}
	}

	return out, nil
}

// RowMaxes returns r[i] = max_j X[i,j].
// Complexity: O(r*c).
func RowMaxes(X Matrix) ([]float64, error) {
	d, err := toDense(opRowMaxes, X)
	if err != nil {
		return nil, err
	}
	out := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		base := i * d.c
		best := d.data[base]
		for j := 1; j < d.c; j++ {
			if d.data[base+j] > best {
				best = d.data[base+j]
			}
		}
		out[i] = best
	}

	return out, nil
}
