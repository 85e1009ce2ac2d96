// Package gridgraph treats a heat grid as a graph of cells, enabling
// detection of contiguous hot regions and the cost of joining them.
//
// What:
//
//   - GridGraph wraps a rectangular [][]float64 grid with a tunable HotThreshold.
//   - Identifies connected components ("hot blocks") of cells with value ≥ HotThreshold.
//   - Computes the minimal number of cold cells (0-1 BFS) separating two hot blocks.
//
// Why:
//
//   - A well-clustered heatmap shows few, large hot blocks; a speckled one shows
//     many small blocks separated by thin cold gaps.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Bridge:              O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.HotThreshold: minimum value considered "hot".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no path exists between specified components.
package gridgraph
