// SPDX-License-Identifier: MIT

package pipeline

import "time"

// Stage names reported to the Observer and in logs.
const (
	StageAggregate      = "aggregate"
	StageBackfill       = "backfill"
	StageDiffuse        = "diffuse"
	StageSmooth         = "smooth"
	StageResample       = "resample"
	StageClusterRows    = "cluster_rows"
	StageClusterColumns = "cluster_columns"
	StageAssemble       = "assemble"
	StageAnalyze        = "analyze"
)

// Correction kinds reported to the Observer.
const (
	CorrectionDroppedRecord = "dropped_record"
	CorrectionPaddedRow     = "padded_row"
	CorrectionPaddedCell    = "padded_cell"
	CorrectionTruncated     = "truncated"
	CorrectionRepairedPerm  = "repaired_permutation"
)

// Observer receives stage timings and correction counts.
// metrics.Collector is the Prometheus implementation.
type Observer interface {
	StageDone(stage string, d time.Duration, err error)
	Correction(kind string, n int)
	RunDone(err error)
}

// NopObserver discards everything.
type NopObserver struct{}

func (NopObserver) StageDone(string, time.Duration, error) {}
func (NopObserver) Correction(string, int)                 {}
func (NopObserver) RunDone(error)                          {}

var _ Observer = NopObserver{}
