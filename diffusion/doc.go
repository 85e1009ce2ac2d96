// SPDX-License-Identifier: MIT

// Package diffusion spreads discrete heat into a continuous field.
//
// The engine repeatedly replaces every cell by a blend of its own value and
// the distance-weighted mean of its neighbourhood:
//
//	new = old·(1-rate) + avg·rate,    clamped to [min, max]
//
// The neighbourhood is a Chebyshev square of the configured radius with tap
// weights exp(-euclidean·decay). Taps falling outside the grid are skipped and
// the remaining weights renormalised, so border cells never see zero padding;
// they simply receive relatively less diffusion.
//
// Stencil is the shared convolution primitive: the smoothing package builds a
// Gaussian Stencil and runs it through the same Convolve loop.
//
// Every iteration reads a full snapshot of the previous one, so results do not
// depend on sweep order.
package diffusion
