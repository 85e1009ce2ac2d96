// Package gridgraph defines core types and options for hot-region analysis.
package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// Cell represents a single grid cell with its coordinates and stored value.
// X is the column, Y the row.
type Cell struct {
	X, Y  int
	Value float64
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// HotThreshold specifies the minimum cell value considered "hot".
	HotThreshold float64
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns HotThreshold=0.7 (the "high" heat cut) and Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		HotThreshold: 0.7,
		Conn:         Conn8,
	}
}

// GridGraph treats a 2D heat grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]float64
	Conn            Connectivity
	HotThreshold    float64
	neighborOffsets [][2]int
}
