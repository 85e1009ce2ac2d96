// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatfield/cluster"
	"github.com/katalvlaran/heatfield/matrix"
	"github.com/katalvlaran/heatfield/pipeline"
)

func TestAssemble(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{
		{0.1, 0.2, 0.3},
		{0.4, 0.5, 0.6},
	})
	require.NoError(t, err)
	before := m.ToRows()

	res, err := pipeline.Assemble(m, []int{1, 0}, []int{2, 0, 1}, []string{"r0", "r1"}, []string{"a", "b", "c"})
	require.NoError(t, err)

	want := [][]float64{
		{0.6, 0.4, 0.5},
		{0.3, 0.1, 0.2},
	}
	if diff := cmp.Diff(want, res.FinalMatrix); diff != "" {
		t.Fatalf("final matrix (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"r1", "r0"}, res.RowLabels)
	assert.Equal(t, []string{"c", "a", "b"}, res.ColumnLabels)
	assert.Equal(t, []int{1, 0}, res.RowOriginalIndex)
	assert.Equal(t, []int{2, 0, 1}, res.ColumnOriginalIndex)
	assert.Equal(t, before, m.ToRows(), "input untouched")
	assert.True(t, res.Reordered(0))
	assert.False(t, res.Reordered(5))
}

func TestAssemble_Errors(t *testing.T) {
	m, _ := matrix.NewFilled(2, 2, 0.05)
	labels := []string{"x", "y"}

	_, err := pipeline.Assemble(m, []int{0, 1}, []int{0, 1}, labels, []string{"x"})
	assert.ErrorIs(t, err, pipeline.ErrLabelMismatch)

	_, err = pipeline.Assemble(m, []int{0, 0}, []int{0, 1}, labels, labels)
	assert.ErrorIs(t, err, cluster.ErrNotPermutation)

	_, err = pipeline.Assemble(m, []int{0, 1}, []int{1}, labels, labels)
	assert.ErrorIs(t, err, cluster.ErrNotPermutation)

	_, err = pipeline.Assemble(nil, nil, nil, nil, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
