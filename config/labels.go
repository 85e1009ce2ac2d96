// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"sort"
)

// RowLabelsOrDefault returns RowLabels, or "table-01".."table-NN" when unset.
func (c *Config) RowLabelsOrDefault() []string {
	if len(c.RowLabels) > 0 {
		return append([]string(nil), c.RowLabels...)
	}
	out := make([]string, c.Rows)
	for i := range out {
		out[i] = fmt.Sprintf("table-%02d", i+1)
	}

	return out
}

// ColumnLabelsOrDefault returns ColumnLabels, or "col-01".."col-NN" when unset.
func (c *Config) ColumnLabelsOrDefault() []string {
	if len(c.ColumnLabels) > 0 {
		return append([]string(nil), c.ColumnLabels...)
	}
	out := make([]string, c.Cols)
	for i := range out {
		out[i] = fmt.Sprintf("col-%02d", i+1)
	}

	return out
}

// ColumnIndex maps each column label to its position.
func (c *Config) ColumnIndex() map[string]int {
	labels := c.ColumnLabelsOrDefault()
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, dup := idx[l]; !dup {
			idx[l] = i
		}
	}

	return idx
}

// PinnedIndices resolves Columns.Pinned to column positions, preserving order.
func (c *Config) PinnedIndices() ([]int, error) {
	return c.resolve(c.Columns.Pinned, "pinned")
}

// CriticalIndices resolves CriticalColumns to column positions.
func (c *Config) CriticalIndices() ([]int, error) {
	return c.resolve(c.CriticalColumns, "critical")
}

func (c *Config) resolve(names []string, what string) ([]int, error) {
	idx := c.ColumnIndex()
	out := make([]int, 0, len(names))
	for _, n := range names {
		i, ok := idx[n]
		if !ok {
			return nil, fmt.Errorf("%w: unknown %s column %q", ErrInvalidConfig, what, n)
		}
		out = append(out, i)
	}

	return out, nil
}

// SortedBands returns a copy of Bands ordered by Above, descending.
func (c *Config) SortedBands() []Band {
	out := append([]Band(nil), c.Bands...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Above > out[j].Above })

	return out
}
