// SPDX-License-Identifier: MIT

// Package metrics exports pipeline stage timings, failures and input
// corrections as Prometheus collectors.
//
// Collectors are registered on a caller-supplied prometheus.Registerer; the
// package keeps no global state.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Status label values for the stage duration histogram.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// DefaultNamespace prefixes every metric name when none is configured.
const DefaultNamespace = "heatfield"

// stageBuckets cover 10µs .. ~1.3s; stages on a 30×19 matrix finish in microseconds.
var stageBuckets = prometheus.ExponentialBuckets(1e-5, 4, 9)

// Collector records per-stage observations.
type Collector struct {
	stageDuration *prometheus.HistogramVec
	stageErrors   *prometheus.CounterVec
	corrections   *prometheus.CounterVec
	runs          *prometheus.CounterVec
}

// NewCollector builds the collectors and registers them on reg. A nil reg
// leaves them unregistered, which is useful in tests. An empty namespace
// falls back to DefaultNamespace.
//
// Errors: registration failures from reg (e.g. duplicate registration). A
// prometheus.AlreadyRegisteredError is not an error: the existing collectors
// are reused so two pipelines may share one registry.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	c := &Collector{
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of heat pipeline stages.",
			Buckets:   stageBuckets,
		}, []string{"stage", "status"}),
		stageErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_errors_total",
			Help:      "Heat pipeline stages that failed.",
		}, []string{"stage"}),
		corrections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "corrections_total",
			Help:      "Input corrections applied (dropped records, padded rows, repaired permutations).",
		}, []string{"kind"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed pipeline runs by outcome.",
		}, []string{"success"}),
	}
	if reg == nil {
		return c, nil
	}

	var err error
	if c.stageDuration, err = register(reg, c.stageDuration); err != nil {
		return nil, err
	}
	if c.stageErrors, err = register(reg, c.stageErrors); err != nil {
		return nil, err
	}
	if c.corrections, err = register(reg, c.corrections); err != nil {
		return nil, err
	}
	if c.runs, err = register(reg, c.runs); err != nil {
		return nil, err
	}

	return c, nil
}

// register adds col to reg, returning the already-registered instance when
// an identical collector exists.
func register[T prometheus.Collector](reg prometheus.Registerer, col T) (T, error) {
	if err := reg.Register(col); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, err
	}

	return col, nil
}

// StageDone records one stage execution.
func (c *Collector) StageDone(stage string, d time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
		c.stageErrors.WithLabelValues(stage).Inc()
	}
	c.stageDuration.WithLabelValues(stage, status).Observe(d.Seconds())
}

// Correction adds n to the correction counter for kind. n ≤ 0 is ignored.
func (c *Collector) Correction(kind string, n int) {
	if n <= 0 {
		return
	}
	c.corrections.WithLabelValues(kind).Add(float64(n))
}

// RunDone counts one finished pipeline run.
func (c *Collector) RunDone(err error) {
	c.runs.WithLabelValues(strconv.FormatBool(err == nil)).Inc()
}
