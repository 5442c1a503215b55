// Package slog provides logging decorators for corpus services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/corpus"
)

// Ensure LoggingSource implements corpus.Source.
var _ corpus.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source with fetch logging.
type LoggingSource struct {
	next   corpus.Source
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next corpus.Source, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Name delegates to the wrapped source.
func (s *LoggingSource) Name() string {
	return s.next.Name()
}

// Fetch delegates to the wrapped source and logs the outcome.
func (s *LoggingSource) Fetch(ctx context.Context) (items []*corpus.Item, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "source fetch",
			"source", s.next.Name(),
			"count", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Fetch(ctx)
}
