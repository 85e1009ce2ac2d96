package gridgraph

import "github.com/katalvlaran/heatfield/matrix"

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]float64, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]float64, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]float64, w)
		copy(cells[y], values[y])
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		HotThreshold:    opts.HotThreshold,
		neighborOffsets: Offsets(opts.Conn),
	}, nil
}

// FromDense builds a GridGraph over a heat matrix (rows become Y, columns X).
func FromDense(m *matrix.Dense, opts GridOptions) (*GridGraph, error) {
	if m == nil {
		return nil, ErrEmptyGrid
	}

	return NewGridGraph(m.ToRows(), opts)
}

// Offsets returns the (dx, dy) neighbor offsets for the given connectivity,
// in a fixed clockwise order starting north.
func Offsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// IsHot reports whether the cell at (x,y) reaches HotThreshold.
func (gg *GridGraph) IsHot(x, y int) bool {
	return gg.CellValues[y][x] >= gg.HotThreshold
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Cell returns the Cell at row-major index idx.
func (gg *GridGraph) Cell(idx int) Cell {
	x, y := gg.Coordinate(idx)

	return Cell{X: x, Y: y, Value: gg.CellValues[y][x]}
}
