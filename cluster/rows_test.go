// SPDX-License-Identifier: MIT

package cluster_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/heatfield/cluster"
	"github.com/katalvlaran/heatfield/config"
	"github.com/katalvlaran/heatfield/matrix"
)

func rowsCfg(rows int) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Rows = rows
	return cfg
}

func dense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

// hide masks *matrix.Dense so the generic At path is exercised.
type hide struct{ matrix.Matrix }

func TestRowClusterer_TieredOrder(t *testing.T) {
	m := dense(t, [][]float64{
		{0.05, 0.05, 0.05}, // 0: low, sum .15
		{0.55, 0.50, 0.45}, // 1: medium (warm everywhere)
		{0.05, 0.30, 0.05}, // 2: low, sum .40
		{0.20, 0.20, 0.20}, // 3: low, sum .60
		{0.90, 0.05, 0.05}, // 4: high (single spike)
		{0.05, 0.05, 0.60}, // 5: high
	})
	ord, err := cluster.NewRowClusterer(rowsCfg(6), nil).Order(m)
	require.NoError(t, err)

	if diff := cmp.Diff([]int{4, 5, 1, 3, 2, 0}, ord.Permutation); diff != "" {
		t.Fatalf("permutation (-want +got):\n%s", diff)
	}
	assert.Equal(t, []cluster.Tier{
		cluster.TierLow, cluster.TierMedium, cluster.TierLow,
		cluster.TierLow, cluster.TierHigh, cluster.TierHigh,
	}, ord.Tiers)
	assert.Equal(t, 0.55, ord.HighThreshold)
	assert.Equal(t, 0.45, ord.MediumThreshold)
	assert.False(t, ord.Degenerate)

	assert.Equal(t, []cluster.ColumnScore{
		{Column: 0, High: 1, Medium: 1, Score: 3},
		{Column: 2, High: 1, Medium: 0, Score: 2},
		{Column: 1, High: 0, Medium: 1, Score: 1},
	}, ord.ColumnScores)
}

func TestRowClusterer_TiesKeepLowerIndexFirst(t *testing.T) {
	m := dense(t, [][]float64{
		{0.05, 0.05},
		{0.70, 0.10},
		{0.70, 0.10},
		{0.05, 0.05},
	})
	ord, err := cluster.NewRowClusterer(rowsCfg(4), nil).Order(m)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0, 3}, ord.Permutation)
}

func TestRowClusterer_PadsMissingLastRow(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	rows := make([][]float64, 29)
	rng := rand.New(rand.NewSource(29))
	for i := range rows {
		rows[i] = make([]float64, 19)
		for j := range rows[i] {
			rows[i][j] = 0.05 + rng.Float64()*0.9
		}
	}
	ord, err := cluster.NewRowClusterer(rowsCfg(30), zap.New(core)).Order(dense(t, rows))
	require.NoError(t, err)

	require.Len(t, ord.Permutation, 30)
	require.NoError(t, cluster.ValidatePermutation(ord.Permutation, 30))
	assert.Equal(t, 1, ord.PaddedRows)
	assert.Equal(t, cluster.TierLow, ord.Tiers[29])
	assert.Equal(t, 29, ord.Permutation[29], "base-heat row sorts last")
	assert.Equal(t, 1, logs.FilterMessage("Padded matrix with base-heat rows").Len())
}

func TestRowClusterer_DegenerateFallback(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m, _ := matrix.NewFilled(5, 4, 0.05)
	require.NoError(t, m.Set(3, 1, 0.5))

	ord, err := cluster.NewRowClusterer(rowsCfg(5), zap.New(core)).Order(hide{m})
	require.NoError(t, err)
	assert.True(t, ord.Degenerate)
	assert.InDelta(t, 0.4, ord.HighThreshold, 1e-12)
	assert.InDelta(t, 0.3, ord.MediumThreshold, 1e-12)
	assert.Equal(t, 3, ord.Permutation[0])
	assert.Equal(t, cluster.TierHigh, ord.Tiers[3])
	assert.Equal(t, 1, logs.FilterField(zap.String("reason", "degenerate statistics")).Len())
}

func TestRowClusterer_AllBaseIsIdentity(t *testing.T) {
	m, _ := matrix.NewFilled(4, 3, 0.05)
	ord, err := cluster.NewRowClusterer(rowsCfg(4), nil).Order(m)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, ord.Permutation)
	for _, tier := range ord.Tiers {
		assert.Equal(t, cluster.TierLow, tier)
	}
	assert.True(t, ord.Degenerate)
}

func TestRowClusterer_AlwaysPermutation(t *testing.T) {
	rc := cluster.NewRowClusterer(rowsCfg(30), nil)
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		m, _ := matrix.NewDense(30, 19)
		for i := 0; i < 30; i++ {
			for j := 0; j < 19; j++ {
				_ = m.Set(i, j, 0.01+rng.Float64()*0.97)
			}
		}
		ord, err := rc.Order(m)
		require.NoError(t, err)
		require.NoError(t, cluster.ValidatePermutation(ord.Permutation, 30), "seed %d", seed)
		assert.Zero(t, ord.Repairs)
	}
}

func TestRowClusterer_Thresholds(t *testing.T) {
	rc := cluster.NewRowClusterer(config.DefaultConfig(), nil)
	tests := []struct {
		name         string
		desc         []float64
		high, medium float64
		degenerate   bool
	}{
		{"percentiles", []float64{0.9, 0.8, 0.7, 0.6, 0.5, 0.4, 0.3, 0.2}, 0.7, 0.5, false},
		{"four values", []float64{0.9, 0.8, 0.7, 0.6}, 0.72, 0.7, true},
		{"two values", []float64{0.5, 0.4}, 0.4, 0.3, true},
		{"empty", nil, 0.05, 0.05, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, m, d := rc.Thresholds(tc.desc)
			assert.InDelta(t, tc.high, h, 1e-12)
			assert.InDelta(t, tc.medium, m, 1e-12)
			assert.Equal(t, tc.degenerate, d)
		})
	}
}

func TestRowClusterer_Errors(t *testing.T) {
	rc := cluster.NewRowClusterer(config.DefaultConfig(), nil)
	_, err := rc.Order(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
