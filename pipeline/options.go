// SPDX-License-Identifier: MIT

package pipeline

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/heatfield/cluster"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the structured logger. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithObserver sets the stage observer. nil keeps NopObserver.
func WithObserver(o Observer) Option {
	return func(p *Pipeline) {
		if o != nil {
			p.observer = o
		}
	}
}

// WithReorderer overrides the column reorder strategy named in the config.
func WithReorderer(r cluster.Reorderer) Option {
	return func(p *Pipeline) { p.reorderer = r }
}
