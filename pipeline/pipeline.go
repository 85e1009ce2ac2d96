// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/heatfield/analysis"
	"github.com/katalvlaran/heatfield/cluster"
	"github.com/katalvlaran/heatfield/config"
	"github.com/katalvlaran/heatfield/diffusion"
	"github.com/katalvlaran/heatfield/heat"
	"github.com/katalvlaran/heatfield/matrix"
	"github.com/katalvlaran/heatfield/smoothing"
)

// Pipeline runs the heat stages for one configuration.
type Pipeline struct {
	cfg       *config.Config
	logger    *zap.Logger
	observer  Observer
	reorderer cluster.Reorderer

	pinned    []int
	pinAt     cluster.PinPosition
	rowLabels []string
	colLabels []string
}

// New validates cfg and builds a Pipeline. A nil cfg means config.DefaultConfig().
//
// Errors: config.ErrInvalidConfig, cluster.ErrUnknownReorderer.
func New(cfg *config.Config, opts ...Option) (*Pipeline, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Pipeline{
		cfg:      cfg,
		logger:   zap.NewNop(),
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(p)
	}

	var err error
	if p.reorderer == nil {
		if p.reorderer, err = cluster.NewReorderer(cfg.Columns.Reorder, cfg.Columns.RCMThreshold); err != nil {
			return nil, err
		}
	}
	if p.pinAt, err = cluster.ParsePinPosition(cfg.Columns.PinPosition); err != nil {
		return nil, err
	}
	if p.pinned, err = cfg.PinnedIndices(); err != nil {
		return nil, err
	}
	p.rowLabels = cfg.RowLabelsOrDefault()
	p.colLabels = cfg.ColumnLabelsOrDefault()

	return p, nil
}

// Config returns the validated configuration. Callers must not modify it.
func (p *Pipeline) Config() *config.Config { return p.cfg }

// Run aggregates records into a heat matrix and processes it.
//
// Implementation:
//   - Stage 1: Aggregate (malformed records are dropped and counted).
//   - Stage 2..: see process.
//
// Errors: ErrComputationFailure wrapping the failing stage's error.
func (p *Pipeline) Run(records []heat.ChangeRecord) (res *Result, err error) {
	runID := uuid.NewString()
	log := p.logger.With(zap.String("run_id", runID))
	defer func() { p.observer.RunDone(err) }()

	var (
		m   *matrix.Dense
		rep heat.AggregateReport
	)
	err = p.runStage(log, StageAggregate, func() (e error) {
		m, rep, e = heat.NewAggregator(p.cfg, log).Aggregate(records)
		return e
	})
	if err != nil {
		return nil, err
	}
	corr := Corrections{DroppedRecords: len(rep.Dropped)}
	p.observer.Correction(CorrectionDroppedRecord, corr.DroppedRecords)

	return p.process(log, runID, m, corr)
}

// RunMatrix processes an already-aggregated heat matrix. Short or ragged
// input is backfilled with base heat to the configured shape; excess rows or
// cells are truncated. Both are logged and counted as corrections.
//
// Errors: ErrComputationFailure wrapping the failing stage's error.
func (p *Pipeline) RunMatrix(rows [][]float64) (res *Result, err error) {
	runID := uuid.NewString()
	log := p.logger.With(zap.String("run_id", runID))
	defer func() { p.observer.RunDone(err) }()

	var (
		m   *matrix.Dense
		rep heat.BackfillReport
	)
	err = p.runStage(log, StageBackfill, func() (e error) {
		m, rep, e = heat.Backfill(rows, p.cfg.Rows, p.cfg.Cols, p.cfg.BaseHeat)
		return e
	})
	if err != nil {
		return nil, err
	}
	corr := Corrections{
		PaddedRows:     rep.PaddedRows,
		PaddedCells:    rep.PaddedCells,
		TruncatedRows:  rep.TruncatedRows,
		TruncatedCells: rep.TruncatedCells,
	}
	if rep.Corrections() > 0 {
		log.Warn("Backfilled incomplete matrix",
			zap.Int("padded_rows", rep.PaddedRows),
			zap.Int("padded_cells", rep.PaddedCells),
			zap.Int("truncated_rows", rep.TruncatedRows),
			zap.Int("truncated_cells", rep.TruncatedCells),
			zap.String("reason", "incomplete matrix"))
	}
	p.observer.Correction(CorrectionPaddedRow, rep.PaddedRows)
	p.observer.Correction(CorrectionPaddedCell, rep.PaddedCells)
	p.observer.Correction(CorrectionTruncated, rep.TruncatedRows+rep.TruncatedCells)

	return p.process(log, runID, m, corr)
}

// process runs the field stages, both clusterers, assembly and analysis on m,
// mutating m in place up to assembly.
func (p *Pipeline) process(log *zap.Logger, runID string, m *matrix.Dense, corr Corrections) (*Result, error) {
	start := time.Now()
	cfg := p.cfg
	clampLo, clampHi := cfg.Clamp.Min, cfg.Clamp.Max

	err := p.runStage(log, StageDiffuse, func() error {
		return diffusion.Diffuse(m, cfg.Diffusion.Iterations, cfg.Diffusion.Rate,
			diffusion.WithRadius(cfg.Diffusion.Radius),
			diffusion.WithDecay(cfg.Diffusion.Decay),
			diffusion.WithClamp(clampLo, clampHi),
			diffusion.WithLogger(log))
	})
	if err != nil {
		return nil, err
	}
	err = p.runStage(log, StageSmooth, func() error {
		return smoothing.Gaussian(m, cfg.Smoothing.Radius, smoothing.WithClamp(clampLo, clampHi))
	})
	if err != nil {
		return nil, err
	}
	if cfg.Resample.Enabled {
		err = p.runStage(log, StageResample, func() error {
			return smoothing.Resample(m, cfg.Resample.Scale, smoothing.WithClamp(clampLo, clampHi))
		})
		if err != nil {
			return nil, err
		}
	}

	var rows cluster.RowOrdering
	err = p.runStage(log, StageClusterRows, func() (e error) {
		rows, e = cluster.NewRowClusterer(cfg, log).Order(m)
		return e
	})
	if err != nil {
		return nil, err
	}
	corr.PaddedRows += rows.PaddedRows
	corr.RepairedPermutations += rows.Repairs
	p.observer.Correction(CorrectionPaddedRow, rows.PaddedRows)
	p.observer.Correction(CorrectionRepairedPerm, rows.Repairs)

	// Similarity uses the pre-reordering matrix.
	var colPerm []int
	err = p.runStage(log, StageClusterColumns, func() (e error) {
		colPerm, _, e = cluster.NewColumnClusterer(p.reorderer, p.pinned, p.pinAt, log).Order(m)
		return e
	})
	if err != nil {
		return nil, err
	}

	var res Result
	err = p.runStage(log, StageAssemble, func() (e error) {
		res, e = Assemble(m, rows.Permutation, colPerm, p.rowLabels, p.colLabels)
		return e
	})
	if err != nil {
		return nil, err
	}
	res.RunID = runID
	res.Corrections = corr
	res.Thresholds = Thresholds{High: rows.HighThreshold, Medium: rows.MediumThreshold, Degenerate: rows.Degenerate}
	res.RowTiers = make([]cluster.Tier, len(rows.Permutation))
	for i, orig := range rows.Permutation {
		res.RowTiers[i] = rows.Tiers[orig]
	}

	err = p.runStage(log, StageAnalyze, func() (e error) {
		res.Stats, e = analyze(res.Final)
		return e
	})
	if err != nil {
		return nil, err
	}
	res.Stats.ColumnScores = rows.ColumnScores

	log.Info("Heat map computed",
		zap.Int("rows", len(res.RowLabels)),
		zap.Int("cols", len(res.ColumnLabels)),
		zap.Int("hot_blocks", res.Stats.HotBlocks.Count),
		zap.Int("corrections", corr.Total()),
		zap.Duration("duration", time.Since(start)))

	return &res, nil
}

// analyze scores the final (display-ordered) matrix.
func analyze(m *matrix.Dense) (Stats, error) {
	var (
		st  Stats
		err error
	)
	if st.Summary, err = analysis.Summarize(m, analysis.DefaultHighThreshold, analysis.DefaultMediumThreshold); err != nil {
		return st, err
	}
	if st.Coherence, err = analysis.Coherence(m); err != nil {
		return st, err
	}
	if st.DiagonalQuality, err = analysis.DiagonalQuality(m, analysis.DefaultDiagonalBlocks); err != nil {
		return st, err
	}
	if st.HotBlocks, err = analysis.HotBlocks(m, analysis.DefaultHighThreshold); err != nil {
		return st, err
	}
	gi, err := analysis.GiStar(m)
	if err != nil {
		return st, err
	}
	st.Hotspots, st.Coldspots = gi.Hotspots, gi.Coldspots

	return st, nil
}

// runStage times fn, converts a panic into an error, wraps any failure in
// ErrComputationFailure and reports the outcome to the observer.
func (p *Pipeline) runStage(log *zap.Logger, stage string, fn func() error) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		d := time.Since(start)
		if err != nil {
			err = stageErrorf(stage, err)
			log.Error("Stage failed", zap.String("stage", stage), zap.Duration("duration", d), zap.Error(err))
		} else {
			log.Debug("Stage done", zap.String("stage", stage), zap.Duration("duration", d))
		}
		p.observer.StageDone(stage, d, err)
	}()

	return fn()
}
