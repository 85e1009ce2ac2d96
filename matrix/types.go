// SPDX-License-Identifier: MIT

// Package matrix: the read/write surface shared by Dense and test doubles.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Dense is the only production implementation; the interface exists so that
// kernels can be exercised against wrappers that hide the concrete type and
// force the generic At/Set paths.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf for non-finite v.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
