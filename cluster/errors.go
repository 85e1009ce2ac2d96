// SPDX-License-Identifier: MIT

package cluster

import "errors"

var (
	// ErrNotPermutation indicates an index slice that is not a bijection over 0..n-1.
	ErrNotPermutation = errors.New("cluster: not a permutation")

	// ErrEmptyMatrix indicates a matrix with no cells to cluster.
	ErrEmptyMatrix = errors.New("cluster: empty matrix")

	// ErrBadPinned indicates a pinned column index out of range or repeated.
	ErrBadPinned = errors.New("cluster: bad pinned column")

	// ErrUnknownReorderer indicates an unrecognised reorder strategy name.
	ErrUnknownReorderer = errors.New("cluster: unknown reorderer")
)
