// SPDX-License-Identifier: MIT

package metrics_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatfield/metrics"
)

func TestCollector_Counts(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	c, err := metrics.NewCollector(reg, "test")
	require.NoError(t, err)

	c.StageDone("diffuse", 2*time.Millisecond, nil)
	c.StageDone("diffuse", 3*time.Millisecond, nil)
	c.StageDone("cluster_rows", time.Millisecond, errors.New("boom"))
	c.Correction("dropped_record", 2)
	c.Correction("padded_row", 1)
	c.Correction("padded_row", 0)
	c.RunDone(nil)

	expected := `
# HELP test_corrections_total Input corrections applied (dropped records, padded rows, repaired permutations).
# TYPE test_corrections_total counter
test_corrections_total{kind="dropped_record"} 2
test_corrections_total{kind="padded_row"} 1
# HELP test_stage_errors_total Heat pipeline stages that failed.
# TYPE test_stage_errors_total counter
test_stage_errors_total{stage="cluster_rows"} 1
# HELP test_runs_total Completed pipeline runs by outcome.
# TYPE test_runs_total counter
test_runs_total{success="true"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"test_corrections_total", "test_stage_errors_total", "test_runs_total"))

	n, err := testutil.GatherAndCount(reg, "test_stage_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one series per (stage, status)")
}

func TestCollector_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := metrics.NewCollector(reg, "")
	require.NoError(t, err)
	b, err := metrics.NewCollector(reg, "")
	require.NoError(t, err)

	a.Correction("padded_row", 1)
	b.Correction("padded_row", 1)

	n, err := testutil.GatherAndCount(reg, "heatfield_corrections_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	expected := `
# HELP heatfield_corrections_total Input corrections applied (dropped records, padded rows, repaired permutations).
# TYPE heatfield_corrections_total counter
heatfield_corrections_total{kind="padded_row"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "heatfield_corrections_total"))
}

func TestCollector_Unregistered(t *testing.T) {
	c, err := metrics.NewCollector(nil, "x")
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		c.StageDone("smooth", time.Microsecond, nil)
		c.Correction("padded_row", 3)
		c.RunDone(errors.New("x"))
	})
}
