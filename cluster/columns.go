// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/heatfield/config"
	"github.com/katalvlaran/heatfield/matrix"
)

// PinPosition places pinned columns at one end of the column order.
type PinPosition int

const (
	// PinLast appends pinned columns after the reordered ones.
	PinLast PinPosition = iota
	// PinFirst prepends pinned columns before the reordered ones.
	PinFirst
)

// ParsePinPosition maps "last"/"first" to a PinPosition.
func ParsePinPosition(s string) (PinPosition, error) {
	switch s {
	case config.PinLast, "":
		return PinLast, nil
	case config.PinFirst:
		return PinFirst, nil
	default:
		return PinLast, fmt.Errorf("cluster: unknown pin position %q", s)
	}
}

// ColumnClusterer orders columns by similarity, keeping pinned columns fixed.
type ColumnClusterer struct {
	reorderer Reorderer
	pinned    []int
	position  PinPosition
	logger    *zap.Logger
}

// NewColumnClusterer builds a ColumnClusterer. A nil reorderer means GreedyChain;
// a nil logger means zap.NewNop(). pinned is copied.
func NewColumnClusterer(reorderer Reorderer, pinned []int, position PinPosition, logger *zap.Logger) *ColumnClusterer {
	if reorderer == nil {
		reorderer = GreedyChain{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ColumnClusterer{
		reorderer: reorderer,
		pinned:    append([]int(nil), pinned...),
		position:  position,
		logger:    logger.Named("columns"),
	}
}

// Order returns the column permutation and the full C×C similarity matrix.
//
// Implementation:
//   - Stage 1: Similarity over all columns of m.
//   - Stage 2: Validate pinned indices; collect the free columns ascending.
//   - Stage 3: Reorder the free sub-problem (Induced similarity) and map back.
//   - Stage 4: Place pinned columns, in the given order, at the configured end.
//
// Errors: ErrBadPinned, ErrNotPermutation (misbehaving Reorderer), ErrEmptyMatrix.
func (cc *ColumnClusterer) Order(m matrix.Matrix) ([]int, *matrix.Dense, error) {
	sim, err := Similarity(m)
	if err != nil {
		return nil, nil, err
	}
	c := sim.Rows()

	isPinned := make([]bool, c)
	for _, p := range cc.pinned {
		if p < 0 || p >= c || isPinned[p] {
			return nil, nil, fmt.Errorf("%w: %d (cols=%d)", ErrBadPinned, p, c)
		}
		isPinned[p] = true
	}
	free := make([]int, 0, c-len(cc.pinned))
	for j := 0; j < c; j++ {
		if !isPinned[j] {
			free = append(free, j)
		}
	}

	var ordered []int
	if len(free) > 0 {
		sub, err := sim.Induced(free, free)
		if err != nil {
			return nil, nil, err
		}
		local, err := cc.reorderer.Reorder(sub)
		if err != nil {
			return nil, nil, err
		}
		if err = ValidatePermutation(local, len(free)); err != nil {
			return nil, nil, err
		}
		ordered = make([]int, len(local))
		for k, l := range local {
			ordered[k] = free[l]
		}
	}

	perm := make([]int, 0, c)
	if cc.position == PinFirst {
		perm = append(perm, cc.pinned...)
		perm = append(perm, ordered...)
	} else {
		perm = append(perm, ordered...)
		perm = append(perm, cc.pinned...)
	}
	if err = ValidatePermutation(perm, c); err != nil {
		return nil, nil, err
	}

	cc.logger.Debug("Ordered columns",
		zap.Ints("permutation", perm),
		zap.Ints("pinned", cc.pinned))

	return perm, sim, nil
}
