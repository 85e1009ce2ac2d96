// SPDX-License-Identifier: MIT

// Package analysis scores a finished heat matrix.
//
// What:
//
//   - Summarize: risk-band counts (high/medium/low), mean, spread, range and a
//     ten-bin histogram of cell values.
//   - Coherence: mean similarity 1-|a-b| between right/down neighbours. A
//     value near 1 means smooth contiguous blocks, near 0 means speckle.
//   - DiagonalQuality: share of total heat inside the block diagonal, ×100.
//   - GiStar: Getis-Ord Gi* z-scores over each cell's 3×3 neighbourhood,
//     counting significant hotspots and coldspots (|z| > 1.96).
//   - HotBlocks: 8-connected regions at or above a threshold, built on gridgraph.
//
// None of these functions mutate their input. Global statistics come from
// gonum/stat and gonum/floats.
package analysis
