// SPDX-License-Identifier: MIT

// Package heat builds the discrete R×C heat matrix from per-cell change records.
//
// Each source row's total change count selects an activity band; the band's
// (base_heat, diff_weight) pair, plus a bonus for critical columns, gives the
// value written into every cell that row touched. Writes overwrite, so repeated
// records for the same cell never compound. Malformed records are dropped and
// reported; they never fail the aggregation.
//
// Backfill turns a short or ragged row set into a complete matrix padded with
// the base heat, so downstream stages always see exactly R×C cells.
package heat
