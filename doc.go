// Package heatfield turns sparse document-change records into a dense,
// visually clustered heat matrix for a heatmap dashboard.
//
// 🚀 What is heatfield?
//
//	A small, deterministic, CPU-bound pipeline:
//		• Aggregation: change records → discrete R×C heat via activity bands
//		• Diffusion: distance-weighted local averaging spreads point heat
//		• Smoothing: a light Gaussian pass (and optional bilinear resample)
//		• Row clustering: percentile tiers surface hot rows first
//		• Column clustering: |pearson| similarity + greedy chain (or RCM)
//		• Assembly: permuted matrix, labels and original-index maps
//		• Analysis: risk bands, coherence, Gi* hotspots, hot blocks
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/    : row-major Dense, validators, statistics, permutations
//	config/    : YAML configuration with validated defaults
//	heat/      : ChangeRecord decoding, aggregation, backfill
//	diffusion/ : Chebyshev stencil and iterative diffusion
//	smoothing/ : Gaussian kernel and bilinear resample
//	cluster/   : row tiers, column similarity, reorder strategies
//	gridgraph/ : hot-cell components and cold-gap bridging
//	analysis/  : summary and clustering-quality scores
//	metrics/   : Prometheus observer for stage timings and corrections
//	pipeline/  : stage wiring, error policy, Result
//	cmd/heatmap : CLI: render, summary, config
//
// Quick ASCII example (one record, row 0 / col 2, after diffusion):
//
//	. ░ ▒ ░ .
//	. ░ ░ ░ .
//	. . . . .
//
// Dive into pipeline.New for the full flow.
package heatfield
