// SPDX-License-Identifier: MIT

package analysis

import (
	"sort"

	"github.com/katalvlaran/heatfield/gridgraph"
	"github.com/katalvlaran/heatfield/matrix"
)

// Blocks describes the 8-connected hot regions of a heat matrix.
type Blocks struct {
	Count   int   `json:"count"`
	Sizes   []int `json:"sizes"`   // descending
	Largest int   `json:"largest"` // 0 when Count == 0
	// Gap is the number of cold cells separating the two largest blocks;
	// valid only when HasGap is true.
	Gap    int  `json:"gap"`
	HasGap bool `json:"has_gap"`
}

// HotBlocks finds 8-connected regions of cells with value ≥ threshold.
//
// Complexity: O(R·C·8).
func HotBlocks(m *matrix.Dense, threshold float64) (Blocks, error) {
	var b Blocks
	if err := matrix.ValidateNotNil(m); err != nil {
		return b, err
	}
	gg, err := gridgraph.FromDense(m, gridgraph.GridOptions{HotThreshold: threshold, Conn: gridgraph.Conn8})
	if err != nil {
		return b, err
	}
	comps := gg.ConnectedComponents()
	b.Count = len(comps)
	b.Sizes = gridgraph.ComponentSizes(comps)
	sort.Sort(sort.Reverse(sort.IntSlice(b.Sizes)))
	if b.Count > 0 {
		b.Largest = b.Sizes[0]
	}
	if b.Gap, b.HasGap, err = gg.LargestGap(); err != nil {
		return b, err
	}

	return b, nil
}
