// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Keep heat values finite: Set and the slice constructors reject NaN/±Inf.
//
// AI-Hints:
//   - Hot stencils (diffusion, gaussian) should read rows through RowView and write
//     through Set-free flat loops; At/Set are for the public surface and tests.
//   - CopyFrom lets iterative kernels reuse one snapshot buffer across iterations.
//
// Complexity quicksheet:
//   - NewDense/NewFilled: O(r*c); At/Set/RowView: O(1); Clone/CopyFrom/ToRows: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"       // method tag used in error wrappers
	ctxSet     = "Set"      // method tag used in error wrappers
	ctxRow     = "RowView"  // method tag used in error wrappers
	ctxApply   = "Apply"    // method tag used in error wrappers
	ctxCopy    = "CopyFrom" // method tag used in error wrappers
	ctxFromRow = "NewFromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable through %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Errors:
//   - ErrInvalidDimensions (rows<=0 or cols<=0).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFilled creates an r×c matrix where every cell holds v.
// This is the canonical way to build a heat matrix pre-filled with the base heat.
//
// Errors:
//   - ErrInvalidDimensions, ErrNaNInf (v not finite).
//
// Complexity: O(r*c).
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	if isNonFinite(v) {
		return nil, matrixErrorf("NewFilled", ErrNaNInf)
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.Fill(v)

	return m, nil
}

// NewFromRows copies a rectangular [][]float64 into a new Dense.
// Implementation:
//   - Stage 1: reject empty input and ragged rows.
//   - Stage 2: copy row by row, rejecting non-finite values.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row), ErrRagged, ErrNaNInf.
//
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxFromRow, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, denseErrorf(ctxFromRow, i, len(rows[i]), ErrRagged)
		}
		base := i * c
		for j = 0; j < c; j++ {
			if isNonFinite(rows[i][j]) {
				return nil, denseErrorf(ctxFromRow, i, j, ErrNaNInf)
			}
			m.data[base+j] = rows[i][j]
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[idx], nil
}

// Set writes v at (row, col).
// Errors:
//   - ErrOutOfRange for invalid indices, ErrNaNInf for non-finite v.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// RowView returns the backing slice of row i (len == Cols()).
// The slice ALIASES the matrix: writes through it mutate m. Callers that need an
// independent copy should use ToRows or copy() themselves.
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) RowView(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c], nil
}

// Clone returns a deep copy of the matrix as the Matrix interface.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.CloneDense() }

// CloneDense returns a deep copy with the concrete type preserved.
// Complexity: O(r*c).
func (m *Dense) CloneDense() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// CopyFrom overwrites m with the contents of src; shapes must match.
// Iterative kernels use this to publish a finished iteration without reallocating.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func (m *Dense) CopyFrom(src *Dense) error {
	if src == nil {
		return matrixErrorf(ctxCopy, ErrNilMatrix)
	}
	if src.r != m.r || src.c != m.c {
		return matrixErrorf(ctxCopy, ErrDimensionMismatch)
	}
	copy(m.data, src.data)

	return nil
}

// Fill sets every cell to v. The caller guarantees v is finite.
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) {
	for k := range m.data {
		m.data[k] = v
	}
}

// ToRows returns an independent [][]float64 copy, one slice per row.
// This is the exchange format handed to presentation layers.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Max returns the largest value and its first (row-major) position.
// Complexity: O(r*c).
func (m *Dense) Max() (v float64, row, col int) {
	best := 0
	for k := 1; k < len(m.data); k++ {
		if m.data[k] > m.data[best] {
			best = k
		}
	}

	return m.data[best], best / m.c, best % m.c
}

// Sum returns the sum of all cells in row-major order.
// Complexity: O(r*c).
func (m *Dense) Sum() float64 {
	var s float64
	for _, v := range m.data {
		s += v
	}

	return s
}

// Apply replaces every element with f(i, j, v) in row-major order.
// A non-finite result aborts with ErrNaNInf; cells written before the failure keep
// their new values.
//
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			nv := f(i, j, m.data[base+j])
			if isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%.4g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
