// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// configValidate is the shared validator instance for configuration structs.
var configValidate = validator.New()

// Validate checks field ranges via struct tags, then the cross-field rules:
// label counts match the shape, clamp_min < clamp_max, base heat inside the
// clamp range, percentiles ordered and pinned/critical names known.
func (c *Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if n := len(c.RowLabels); n > 0 && n != c.Rows {
		return fmt.Errorf("%w: %d row labels for %d rows", ErrInvalidConfig, n, c.Rows)
	}
	if n := len(c.ColumnLabels); n > 0 && n != c.Cols {
		return fmt.Errorf("%w: %d column labels for %d cols", ErrInvalidConfig, n, c.Cols)
	}
	if c.Clamp.Min >= c.Clamp.Max {
		return fmt.Errorf("%w: clamp.min %g must be < clamp.max %g", ErrInvalidConfig, c.Clamp.Min, c.Clamp.Max)
	}
	if c.BaseHeat < c.Clamp.Min || c.BaseHeat > c.Clamp.Max {
		return fmt.Errorf("%w: base_heat %g outside clamp range", ErrInvalidConfig, c.BaseHeat)
	}
	if c.Clustering.HighPercentile >= c.Clustering.MediumPercentile {
		return fmt.Errorf("%w: high_percentile must be < medium_percentile", ErrInvalidConfig)
	}
	if c.Clustering.MediumFallback > c.Clustering.HighFallback {
		return fmt.Errorf("%w: medium_fallback must be <= high_fallback", ErrInvalidConfig)
	}
	seen := make(map[int]bool, len(c.Bands))
	for _, b := range c.Bands {
		if seen[b.Above] {
			return fmt.Errorf("%w: duplicate band above=%d", ErrInvalidConfig, b.Above)
		}
		seen[b.Above] = true
	}
	pinned, err := c.PinnedIndices()
	if err != nil {
		return err
	}
	dup := make(map[int]bool, len(pinned))
	for _, p := range pinned {
		if dup[p] {
			return fmt.Errorf("%w: column %q pinned twice", ErrInvalidConfig, c.ColumnLabelsOrDefault()[p])
		}
		dup[p] = true
	}
	if _, err := c.CriticalIndices(); err != nil {
		return err
	}

	return nil
}
