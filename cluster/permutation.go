// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"

	"github.com/katalvlaran/heatfield/matrix"
)

// ValidatePermutation checks that perm is a bijection over {0..n-1}.
// The returned error matches both ErrNotPermutation and matrix.ErrBadPermutation.
//
// Complexity: O(n).
func ValidatePermutation(perm []int, n int) error {
	if err := matrix.ValidatePermutation(perm, n); err != nil {
		return fmt.Errorf("%w: %w", ErrNotPermutation, err)
	}

	return nil
}

// RepairPermutation returns a bijection over {0..n-1} that keeps the first
// occurrence of every valid index of perm in order and appends the missing
// indices ascending. fixes counts dropped entries plus appended indices.
//
// Complexity: O(n + len(perm)).
func RepairPermutation(perm []int, n int) (out []int, fixes int) {
	seen := make([]bool, n)
	out = make([]int, 0, n)
	for _, v := range perm {
		if v < 0 || v >= n || seen[v] {
			fixes++
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	for v := 0; v < n; v++ {
		if !seen[v] {
			out = append(out, v)
			fixes++
		}
	}

	return out, fixes
}

// Invert returns inv with inv[perm[i]] = i. perm must be a valid permutation.
func Invert(perm []int) []int {
	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}

	return inv
}
