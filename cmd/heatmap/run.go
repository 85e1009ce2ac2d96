// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/heatfield/heat"
	"github.com/katalvlaran/heatfield/metrics"
	"github.com/katalvlaran/heatfield/pipeline"
)

// loadRecords reads a JSON record array from path ("-" is stdin).
func loadRecords(path string, stdin io.Reader) ([]heat.ChangeRecord, error) {
	if path == "" {
		return nil, fmt.Errorf("--records is required")
	}
	if path == "-" {
		return heat.DecodeRecords(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open records: %w", err)
	}
	defer f.Close()

	return heat.DecodeRecords(f)
}

// runPipeline loads records and runs them through a pipeline built from the
// global config. With metrics enabled and metricsFile set, the collected
// series are written there in the Prometheus text format.
func runPipeline(recordsPath, metricsFile string, stdin io.Reader) (*pipeline.Result, error) {
	records, err := loadRecords(recordsPath, stdin)
	if err != nil {
		return nil, err
	}

	opts := []pipeline.Option{pipeline.WithLogger(logger)}
	var reg *prometheus.Registry
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		col, err := metrics.NewCollector(reg, cfg.Metrics.Namespace)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pipeline.WithObserver(col))
	}
	p, err := pipeline.New(cfg, opts...)
	if err != nil {
		return nil, err
	}

	res, runErr := p.Run(records)
	if reg != nil && metricsFile != "" {
		if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
			logger.Warn("Failed to write metrics", zap.String("path", metricsFile), zap.Error(err))
		}
	}

	return res, runErr
}
