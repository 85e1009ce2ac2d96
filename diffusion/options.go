// SPDX-License-Identifier: MIT

package diffusion

import "go.uber.org/zap"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultIterations is the number of diffusion sweeps.
	DefaultIterations = 3

	// DefaultRate is the blend factor between a cell and its neighbourhood mean.
	DefaultRate = 0.08

	// DefaultRadius is the Chebyshev radius of the neighbourhood (5×5 taps).
	DefaultRadius = 2

	// MaxRadius bounds the neighbourhood at 7×7 taps.
	MaxRadius = 3

	// DefaultDecay is the exponential fall-off per unit of euclidean distance.
	DefaultDecay = 0.3

	// DefaultClampMin and DefaultClampMax bound every cell after each sweep.
	DefaultClampMin = 0.01
	DefaultClampMax = 0.98

	// changedEpsilon is the per-cell delta counted as "changed" in sweep traces.
	changedEpsilon = 1e-3
)

// Option mutates internal options.
type Option func(*Options)

// Options holds the resolved diffusion settings. Fields are read-only for callers.
type Options struct {
	radius   int
	decay    float64
	clampMin float64
	clampMax float64
	logger   *zap.Logger
}

// WithRadius sets the Chebyshev neighbourhood radius (1..MaxRadius).
func WithRadius(r int) Option { return func(o *Options) { o.radius = r } }

// WithDecay sets the exponential distance decay (> 0).
func WithDecay(d float64) Option { return func(o *Options) { o.decay = d } }

// WithClamp sets the value range enforced after every sweep.
func WithClamp(lo, hi float64) Option {
	return func(o *Options) { o.clampMin, o.clampMax = lo, hi }
}

// WithLogger enables per-sweep debug traces (mean heat, changed cells).
func WithLogger(l *zap.Logger) Option { return func(o *Options) { o.logger = l } }

func gatherOptions(opts []Option) Options {
	o := Options{
		radius:   DefaultRadius,
		decay:    DefaultDecay,
		clampMin: DefaultClampMin,
		clampMax: DefaultClampMax,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return o
}

func (o Options) validate() error {
	if o.radius < 1 || o.radius > MaxRadius {
		return paramErrorf("radius %d outside [1,%d]", o.radius, MaxRadius)
	}
	if !(o.decay > 0) || isNonFinite(o.decay) {
		return paramErrorf("decay %g must be > 0", o.decay)
	}
	if isNonFinite(o.clampMin) || isNonFinite(o.clampMax) || o.clampMin >= o.clampMax {
		return paramErrorf("clamp [%g,%g] invalid", o.clampMin, o.clampMax)
	}

	return nil
}
