// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"encoding/json"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/heatfield/cluster"
	"github.com/katalvlaran/heatfield/config"
	"github.com/katalvlaran/heatfield/heat"
	"github.com/katalvlaran/heatfield/matrix"
	"github.com/katalvlaran/heatfield/pipeline"
)

// recorder is an Observer that keeps everything it is told.
type recorder struct {
	mu          sync.Mutex
	stages      []string
	failed      map[string]error
	corrections map[string]int
	runs        []error
}

func newRecorder() *recorder {
	return &recorder{failed: map[string]error{}, corrections: map[string]int{}}
}

func (r *recorder) StageDone(stage string, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stages = append(r.stages, stage)
	if err != nil {
		r.failed[stage] = err
	}
}

func (r *recorder) Correction(kind string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.corrections[kind] += n
}

func (r *recorder) RunDone(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, err)
}

func newPipeline(t *testing.T, cfg *config.Config, opts ...pipeline.Option) *pipeline.Pipeline {
	t.Helper()
	p, err := pipeline.New(cfg, opts...)
	require.NoError(t, err)
	return p
}

func TestRun_SingleRecordScenario(t *testing.T) {
	rec := newRecorder()
	p := newPipeline(t, nil, pipeline.WithObserver(rec))

	res, err := p.Run([]heat.ChangeRecord{{Table: 0, Column: heat.Col(2), Count: 25}})
	require.NoError(t, err)

	require.Len(t, res.FinalMatrix, 30)
	for _, row := range res.FinalMatrix {
		require.Len(t, row, 19)
		for _, v := range row {
			require.True(t, v >= 0.01 && v <= 0.98, "value %v out of clamp range", v)
		}
	}
	require.NoError(t, cluster.ValidatePermutation(res.RowOriginalIndex, 30))
	require.NoError(t, cluster.ValidatePermutation(res.ColumnOriginalIndex, 19))

	// the hot row leads, the pinned sequence column trails
	assert.Equal(t, 0, res.RowOriginalIndex[0])
	assert.Equal(t, "table-01", res.RowLabels[0])
	assert.Equal(t, cluster.TierHigh, res.RowTiers[0])
	assert.Equal(t, 0, res.ColumnOriginalIndex[18])
	assert.Equal(t, "Seq No.", res.ColumnLabels[18])

	// the record's cell is still the matrix maximum
	pos := cluster.Invert(res.ColumnOriginalIndex)
	peak, pr, pc := res.Final.Max()
	assert.Equal(t, 0, pr)
	assert.Equal(t, pos[2], pc)
	assert.Greater(t, peak, 0.7)

	_, err = uuid.Parse(res.RunID)
	assert.NoError(t, err)
	assert.Zero(t, res.Corrections.Total())
	assert.Equal(t, []string{
		pipeline.StageAggregate, pipeline.StageDiffuse, pipeline.StageSmooth,
		pipeline.StageClusterRows, pipeline.StageClusterColumns,
		pipeline.StageAssemble, pipeline.StageAnalyze,
	}, rec.stages)
	assert.Equal(t, []error{nil}, rec.runs)
}

func TestRun_DropsMalformedRecords(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	rec := newRecorder()
	p := newPipeline(t, nil, pipeline.WithObserver(rec), pipeline.WithLogger(zap.New(core)))

	res, err := p.Run([]heat.ChangeRecord{
		{Table: 3, Column: heat.Col(4), Count: 12},
		{Table: 99, Column: heat.Col(1), Count: 1},
		{Table: 1, ColumnName: "No Such Column", Count: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Corrections.DroppedRecords)
	assert.Equal(t, 2, rec.corrections[pipeline.CorrectionDroppedRecord])

	dropped := logs.FilterMessage("Dropping change record").All()
	require.Len(t, dropped, 2)
	for _, e := range dropped {
		assert.Equal(t, res.RunID, e.ContextMap()["run_id"])
	}
}

func TestRunMatrix_BackfillsMissingRow(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	rec := newRecorder()
	p := newPipeline(t, nil, pipeline.WithObserver(rec), pipeline.WithLogger(zap.New(core)))

	rng := rand.New(rand.NewSource(29))
	rows := make([][]float64, 29)
	for i := range rows {
		rows[i] = make([]float64, 19)
		for j := range rows[i] {
			rows[i][j] = 0.05 + 0.9*rng.Float64()
		}
	}
	res, err := p.RunMatrix(rows)
	require.NoError(t, err)

	require.Len(t, res.RowOriginalIndex, 30)
	require.NoError(t, cluster.ValidatePermutation(res.RowOriginalIndex, 30))
	assert.Equal(t, 1, res.Corrections.PaddedRows)
	assert.Equal(t, 1, rec.corrections[pipeline.CorrectionPaddedRow])
	assert.Equal(t, 1, logs.FilterMessage("Backfilled incomplete matrix").Len())
	assert.Equal(t, 0, res.ColumnOriginalIndex[18])
}

type failingReorderer struct{ err error }

func (f failingReorderer) Reorder(matrix.Matrix) ([]int, error) { return nil, f.err }

type panickingReorderer struct{}

func (panickingReorderer) Reorder(matrix.Matrix) ([]int, error) { panic("index out of range") }

func TestRun_StageFailureAborts(t *testing.T) {
	errBoom := errors.New("boom")
	tests := []struct {
		name      string
		reorderer cluster.Reorderer
		is        []error
	}{
		{"error", failingReorderer{err: errBoom}, []error{pipeline.ErrComputationFailure, errBoom}},
		{"bad permutation", failingReorderer{}, []error{pipeline.ErrComputationFailure, cluster.ErrNotPermutation}},
		{"panic", panickingReorderer{}, []error{pipeline.ErrComputationFailure}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := newRecorder()
			p := newPipeline(t, nil, pipeline.WithObserver(rec), pipeline.WithReorderer(tc.reorderer))

			res, err := p.Run([]heat.ChangeRecord{{Table: 0, Column: heat.Col(2), Count: 25}})
			require.Error(t, err)
			assert.Nil(t, res)
			for _, target := range tc.is {
				assert.ErrorIs(t, err, target)
			}
			assert.Contains(t, err.Error(), pipeline.StageClusterColumns)
			assert.Contains(t, rec.failed, pipeline.StageClusterColumns)
			assert.NotContains(t, rec.stages, pipeline.StageAssemble)
			require.Len(t, rec.runs, 1)
			assert.ErrorIs(t, rec.runs[0], pipeline.ErrComputationFailure)
		})
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Clamp.Min = 0.9
	_, err := pipeline.New(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRun_RCMAndResample(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Columns.Reorder = config.ReorderRCM
	cfg.Columns.PinPosition = config.PinFirst
	cfg.Resample.Enabled = true
	rec := newRecorder()
	p := newPipeline(t, cfg, pipeline.WithObserver(rec))

	res, err := p.Run([]heat.ChangeRecord{
		{Table: 2, Column: heat.Col(8), Count: 30},
		{Table: 2, ColumnName: "Priority", Count: 4},
		{Table: 17, Column: heat.Col(13), Count: 7},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ColumnOriginalIndex[0], "pinned first")
	assert.Contains(t, rec.stages, pipeline.StageResample)
	require.NoError(t, cluster.ValidatePermutation(res.ColumnOriginalIndex, 19))
}

func TestRun_ConcurrentRunsAreIndependent(t *testing.T) {
	p := newPipeline(t, nil)
	records := []heat.ChangeRecord{{Table: 5, Column: heat.Col(3), Count: 15}}
	want, err := p.Run(records)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*pipeline.Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = p.Run(records)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		require.NotNil(t, got, "run %d", i)
		if diff := cmp.Diff(want.FinalMatrix, got.FinalMatrix); diff != "" {
			t.Fatalf("run %d matrix differs (-want +got):\n%s", i, diff)
		}
		assert.NotEqual(t, want.RunID, got.RunID)
	}
}

func TestResult_JSONKeys(t *testing.T) {
	res, err := newPipeline(t, nil).Run(nil)
	require.NoError(t, err)
	b, err := json.Marshal(res)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &doc))
	for _, key := range []string{
		"final_matrix", "row_labels", "column_labels", "row_original_index",
		"column_original_index", "row_tiers", "thresholds", "stats", "run_id",
	} {
		assert.Contains(t, doc, key)
	}
	assert.NotContains(t, doc, "Final")
}
