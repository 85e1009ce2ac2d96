// SPDX-License-Identifier: MIT

// Package config holds the tunable constants of the heat pipeline: matrix
// dimensions, activity bands, diffusion/smoothing knobs, row-tier percentiles
// and the pinned column identifiers. Values come from DefaultConfig and are
// optionally overridden by a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all heatfield configuration.
type Config struct {
	// Matrix shape.
	Rows int `yaml:"rows" validate:"gte=1,lte=10000"`
	Cols int `yaml:"cols" validate:"gte=1,lte=10000"`

	// Heat value policy.
	BaseHeat float64     `yaml:"base_heat" validate:"gte=0,lt=1"`
	Cap      float64     `yaml:"cap" validate:"gt=0,lte=1"`
	Clamp    ClampConfig `yaml:"clamp"`

	// Axis labels; empty means generated defaults (see RowLabelsOrDefault).
	RowLabels    []string `yaml:"row_labels" validate:"dive,required"`
	ColumnLabels []string `yaml:"column_labels" validate:"dive,required"`

	// Aggregation.
	CriticalColumns []string `yaml:"critical_columns" validate:"dive,required"`
	CriticalBonus   float64  `yaml:"critical_bonus" validate:"gte=0,lte=1"`
	Bands           []Band   `yaml:"bands" validate:"dive"`
	MinimalBand     Band     `yaml:"minimal_band"`

	// Stages.
	Diffusion  DiffusionConfig  `yaml:"diffusion"`
	Smoothing  SmoothingConfig  `yaml:"smoothing"`
	Resample   ResampleConfig   `yaml:"resample"`
	Clustering ClusteringConfig `yaml:"clustering"`
	Columns    ColumnsConfig    `yaml:"columns"`

	// Ambient.
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ClampConfig bounds every cell after diffusion and smoothing.
type ClampConfig struct {
	Min float64 `yaml:"min" validate:"gte=0,lte=1"`
	Max float64 `yaml:"max" validate:"gte=0,lte=1"`
}

// Band maps a row's total change count to a (base_heat, diff_weight) pair.
// A band applies when the row total is strictly greater than Above.
type Band struct {
	Above      int     `yaml:"above,omitempty" validate:"gte=0"`
	BaseHeat   float64 `yaml:"base_heat" validate:"gte=0,lte=1"`
	DiffWeight float64 `yaml:"diff_weight" validate:"gte=0,lte=1"`
}

// DiffusionConfig configures the iterative neighbourhood averaging.
type DiffusionConfig struct {
	Iterations int     `yaml:"iterations" validate:"gte=0,lte=100"`
	Rate       float64 `yaml:"rate" validate:"gte=0,lte=1"`
	Radius     int     `yaml:"radius" validate:"gte=1,lte=3"`
	Decay      float64 `yaml:"decay" validate:"gt=0"`
}

// SmoothingConfig configures the Gaussian finishing pass.
type SmoothingConfig struct {
	Radius float64 `yaml:"radius" validate:"gt=0,lte=5"`
}

// ResampleConfig configures the optional bilinear up/down-sample pass.
type ResampleConfig struct {
	Enabled bool    `yaml:"enabled"`
	Scale   float64 `yaml:"scale" validate:"gte=1,lte=4"`
}

// ClusteringConfig configures row-tier thresholds.
type ClusteringConfig struct {
	HighPercentile   float64 `yaml:"high_percentile" validate:"gt=0,lt=1"`
	MediumPercentile float64 `yaml:"medium_percentile" validate:"gt=0,lt=1"`
	MinHighSamples   int     `yaml:"min_high_samples" validate:"gte=1"`
	MinMediumSamples int     `yaml:"min_medium_samples" validate:"gte=1"`
	HighFallback     float64 `yaml:"high_fallback" validate:"gt=0,lte=1"`
	MediumFallback   float64 `yaml:"medium_fallback" validate:"gt=0,lte=1"`
}

// ColumnsConfig configures column reordering.
type ColumnsConfig struct {
	// Pinned lists column labels excluded from similarity reordering.
	Pinned       []string `yaml:"pinned" validate:"dive,required"`
	PinPosition  string   `yaml:"pin_position" validate:"oneof=last first"`
	Reorder      string   `yaml:"reorder" validate:"oneof=greedy rcm"`
	RCMThreshold float64  `yaml:"rcm_threshold" validate:"gte=0,lte=1"`
}

// LoggingConfig configures the zap logger built by the CLI.
type LoggingConfig struct {
	Level    string `yaml:"level" validate:"oneof=debug info warn error"`
	Encoding string `yaml:"encoding" validate:"oneof=json console"`
}

// MetricsConfig configures the prometheus collector.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace" validate:"required"`
}

// Reorder strategies.
const (
	ReorderGreedy = "greedy"
	ReorderRCM    = "rcm"
)

// Pin positions.
const (
	PinLast  = "last"
	PinFirst = "first"
)

// DefaultColumnLabels are the 19 columns of the standard tracking sheet.
var DefaultColumnLabels = []string{
	"Seq No.", "Project Type", "Source", "Task Start Time", "Goal Alignment",
	"Key KR Alignment", "Plan Details", "Leadership Guidance", "Owner",
	"Assistant", "Supervisor", "Priority", "Expected Completion", "Progress",
	"Plan Checklist", "Review Cycle", "Review Time", "Upward Report", "Progress Analysis",
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Rows:     30,
		Cols:     19,
		BaseHeat: 0.05,
		Cap:      0.95,
		Clamp:    ClampConfig{Min: 0.01, Max: 0.98},

		ColumnLabels:    append([]string(nil), DefaultColumnLabels...),
		CriticalColumns: []string{"Owner", "Priority", "Progress", "Upward Report"},
		CriticalBonus:   0.3,
		Bands: []Band{
			{Above: 20, BaseHeat: 0.4, DiffWeight: 0.5},
			{Above: 10, BaseHeat: 0.25, DiffWeight: 0.4},
			{Above: 5, BaseHeat: 0.15, DiffWeight: 0.3},
		},
		MinimalBand: Band{BaseHeat: 0.05, DiffWeight: 0.2},

		Diffusion: DiffusionConfig{Iterations: 3, Rate: 0.08, Radius: 2, Decay: 0.3},
		Smoothing: SmoothingConfig{Radius: 0.3},
		Resample:  ResampleConfig{Enabled: false, Scale: 1.5},
		Clustering: ClusteringConfig{
			HighPercentile:   0.25,
			MediumPercentile: 0.5,
			MinHighSamples:   5,
			MinMediumSamples: 3,
			HighFallback:     0.8,
			MediumFallback:   0.6,
		},
		Columns: ColumnsConfig{
			Pinned:       []string{"Seq No."},
			PinPosition:  PinLast,
			Reorder:      ReorderGreedy,
			RCMThreshold: 0.5,
		},

		Logging: LoggingConfig{Level: "info", Encoding: "json"},
		Metrics: MetricsConfig{Enabled: false, Namespace: "heatfield"},
	}
}

// Load loads configuration from a YAML file on top of the defaults.
// A missing file yields the defaults. The result is validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return data, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
