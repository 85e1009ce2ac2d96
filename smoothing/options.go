// SPDX-License-Identifier: MIT

package smoothing

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadParameter indicates an out-of-range radius, scale or clamp range.
var ErrBadParameter = errors.New("smoothing: bad parameter")

// ErrNilMatrix indicates a nil heat matrix.
var ErrNilMatrix = errors.New("smoothing: nil matrix")

const (
	// DefaultRadius is the Gaussian radius used by the pipeline.
	DefaultRadius = 0.3

	// DefaultScale is the resample factor when resampling is enabled.
	DefaultScale = 1.5

	// MaxScale bounds the temporary up-sampled grid.
	MaxScale = 4.0

	// DefaultClampMin and DefaultClampMax bound every cell after a pass.
	DefaultClampMin = 0.01
	DefaultClampMax = 0.98
)

// Option mutates internal options.
type Option func(*options)

type options struct {
	clampMin, clampMax float64
}

// WithClamp sets the value range enforced after the pass.
func WithClamp(lo, hi float64) Option {
	return func(o *options) { o.clampMin, o.clampMax = lo, hi }
}

func gatherOptions(opts []Option) (options, error) {
	o := options{clampMin: DefaultClampMin, clampMax: DefaultClampMax}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if math.IsNaN(o.clampMin) || math.IsNaN(o.clampMax) || o.clampMin >= o.clampMax {
		return o, fmt.Errorf("%w: clamp [%g,%g]", ErrBadParameter, o.clampMin, o.clampMax)
	}

	return o, nil
}
