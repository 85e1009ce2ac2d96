// SPDX-License-Identifier: MIT

// Package smoothing provides the finishing passes that run after diffusion:
//
//   - Gaussian: a light convolution (small radius) that removes single-cell
//     aliasing. It reuses diffusion.Stencil, so border handling is identical:
//     out-of-bounds taps are skipped and weights renormalised.
//   - Resample: an optional bilinear up-sample followed by a nearest-cell
//     down-sample back to the original shape. The round trip blurs slightly.
//
// Both passes work in place and never change the matrix shape.
package smoothing
