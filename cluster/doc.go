// SPDX-License-Identifier: MIT

// Package cluster computes the row and column permutations that make a heat
// matrix read as contiguous blocks instead of speckle.
//
// Rows (RowClusterer):
//
//	Cell values above the base heat define two percentile thresholds. Rows with
//	any cell above the high threshold come first (by row max, then row sum),
//	then rows with any cell above the medium threshold (by row sum), then the
//	rest (by row sum). Rows with a single extreme spike therefore surface even
//	when their average is low.
//
// Columns (ColumnClusterer):
//
//	Similarity is |pearson| between column vectors. A Reorderer turns the
//	similarity matrix into an order; GreedyChain (nearest-neighbour chaining)
//	and ReverseCuthillMcKee (bandwidth reduction on a thresholded graph) are
//	provided. Pinned columns skip reordering and sit at a fixed end.
//
// Every permutation returned by this package is validated as a bijection.
package cluster
