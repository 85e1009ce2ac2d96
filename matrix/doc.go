// Package matrix provides the dense row-major grid that carries heat values
// through every stage of the heatfield pipeline.
//
// The package provides:
//
//   - Dense: a fixed-shape R×C float64 grid with bounds-checked At/Set and
//     zero-copy row access for hot loops.
//   - Element-wise helpers (Clamp, Fill, AllClose) used by diffusion and
//     smoothing to keep values inside the configured clamp range.
//   - Permutation helpers (PermuteRows, PermuteCols) used by the assembler.
//   - Column statistics (ColumnMeans, ColumnStds, Correlation) used by the
//     column clusterer to build the similarity matrix.
//
// Shapes never change after construction: every kernel either mutates a
// matrix in place with identical shape or returns a fresh matrix.
package matrix
