// SPDX-License-Identifier: MIT

package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatfield/cluster"
	"github.com/katalvlaran/heatfield/matrix"
)

var chainSim = [][]float64{
	{1.0, 0.9, 0.1, 0.0},
	{0.9, 1.0, 0.2, 0.8},
	{0.1, 0.2, 1.0, 0.0},
	{0.0, 0.8, 0.0, 1.0},
}

func TestGreedyChain(t *testing.T) {
	tests := []struct {
		name string
		sim  [][]float64
		want []int
	}{
		// head 1 (total 1.9) → 0 (0.9) → 2 (0.1) → 3 appended (no positive link from 2)
		{"chain", chainSim, []int{1, 0, 2, 3}},
		{"all zero", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, []int{0, 1, 2}},
		{"tie picks lowest", [][]float64{{1, 0.5, 0.5}, {0.5, 1, 0.5}, {0.5, 0.5, 1}}, []int{0, 1, 2}},
		{"single", [][]float64{{1}}, []int{0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cluster.GreedyChain{}.Reorder(dense(t, tc.sim))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReverseCuthillMcKee(t *testing.T) {
	// edges at ≥0.5: 0-1, 1-3; node 2 isolated.
	got, err := cluster.ReverseCuthillMcKee{Threshold: 0.5}.Reorder(dense(t, chainSim))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1, 0}, got)

	// threshold above every link: all isolated, index order.
	got, err = cluster.ReverseCuthillMcKee{Threshold: 0.95}.Reorder(dense(t, chainSim))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestReorderers_RejectNonSquare(t *testing.T) {
	m, _ := matrix.NewDense(2, 3)
	_, err := cluster.GreedyChain{}.Reorder(m)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = cluster.ReverseCuthillMcKee{}.Reorder(m)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestNewReorderer(t *testing.T) {
	r, err := cluster.NewReorderer("greedy", 0)
	require.NoError(t, err)
	assert.IsType(t, cluster.GreedyChain{}, r)

	r, err = cluster.NewReorderer("rcm", 0.4)
	require.NoError(t, err)
	assert.Equal(t, cluster.ReverseCuthillMcKee{Threshold: 0.4}, r)

	_, err = cluster.NewReorderer("spectral", 0)
	assert.ErrorIs(t, err, cluster.ErrUnknownReorderer)
}
