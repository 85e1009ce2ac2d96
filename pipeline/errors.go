// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrComputationFailure wraps any stage failure. The stage's own error
	// stays reachable through errors.Is/As.
	ErrComputationFailure = errors.New("pipeline: computation failure")

	// ErrLabelMismatch indicates label slices that do not match the matrix shape.
	ErrLabelMismatch = errors.New("pipeline: label count does not match matrix shape")
)

// stageErrorf tags err with the stage name and ErrComputationFailure.
func stageErrorf(stage string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrComputationFailure, stage, err)
}
