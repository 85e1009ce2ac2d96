// SPDX-License-Identifier: MIT

// Package pipeline wires the heat stages into one synchronous request:
//
//	records ─► aggregate ─► diffuse ─► smooth ─► [resample] ─► cluster rows
//	                                                         └► cluster columns ─► assemble ─► analyze
//
// Every stage runs through a single helper that times it, reports it to an
// Observer and turns both returned errors and panics into
// ErrComputationFailure. A failed stage aborts the run; no partial Result is
// returned because a mismatched matrix/label pairing would corrupt the view.
//
// Non-fatal input problems (dropped records, padded rows, repaired
// permutations) are logged, counted in Result.Corrections and reported to the
// Observer as corrections.
//
// A Pipeline is immutable after New and safe for concurrent use; every Run
// works on its own matrix.
package pipeline
