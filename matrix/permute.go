// SPDX-License-Identifier: MIT

// Package matrix - index-driven copies (submatrix extraction & permutation).
//
// Purpose:
//   - Induced materialises an arbitrary rows×cols selection as an independent Dense.
//   - Permute applies a row permutation and a column permutation in one pass; it is the
//     kernel behind the final assembly of a clustered heatmap.
//
// Determinism:
//   - Fixed i→j loops with direct offset math in source and destination.

package matrix

import "fmt"

const (
	ctxInduce  = "Induced"
	ctxPermute = "Permute"
)

// Induced returns a copy of the rows×cols selection given by rowsIdx and colsIdx.
// Duplicates are allowed (repeated rows/cols in the result).
//
// Errors:
//   - ErrInvalidDimensions (empty selection), ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
//
// AI-Hints:
//   - The column clusterer uses Induced on the similarity matrix to drop pinned columns
//     before handing the sub-problem to a Reorderer.
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	res, err := NewDense(rp, cp)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduce, err)
	}

	var i, j, ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// Permute returns a new matrix with out[i][j] = m[rowPerm[i]][colPerm[j]].
// Rows are reordered first, then the columns of each resulting row; because the
// result is a pure gather the order of application is not observable in the values.
//
// Errors:
//   - ErrBadPermutation when rowPerm/colPerm are not bijections of the matching size.
//
// Complexity: O(r*c) time and space (+O(r+c) validation).
func (m *Dense) Permute(rowPerm, colPerm []int) (*Dense, error) {
	if err := ValidatePermutation(rowPerm, m.r); err != nil {
		return nil, fmt.Errorf("Dense.%s: rows: %w", ctxPermute, err)
	}
	if err := ValidatePermutation(colPerm, m.c); err != nil {
		return nil, fmt.Errorf("Dense.%s: cols: %w", ctxPermute, err)
	}

	return m.Induced(rowPerm, colPerm)
}

// PermuteRows is Permute with the identity column order.
func (m *Dense) PermuteRows(rowPerm []int) (*Dense, error) {
	return m.Permute(rowPerm, Identity(m.c))
}

// PermuteCols is Permute with the identity row order.
func (m *Dense) PermuteCols(colPerm []int) (*Dense, error) {
	return m.Permute(Identity(m.r), colPerm)
}

// Identity returns the identity permutation [0, 1, ..., n-1].
func Identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
