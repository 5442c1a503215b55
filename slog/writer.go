package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/corpus"
)

// Ensure LoggingIndexWriter implements corpus.IndexWriter.
var _ corpus.IndexWriter = (*LoggingIndexWriter)(nil)

// LoggingIndexWriter wraps an IndexWriter with logging.
type LoggingIndexWriter struct {
	next   corpus.IndexWriter
	name   string
	logger *slog.Logger
}

// NewLoggingIndexWriter creates a new LoggingIndexWriter. The name
// identifies the output in log records, e.g. "json" or "sqlite".
func NewLoggingIndexWriter(next corpus.IndexWriter, name string, logger *slog.Logger) *LoggingIndexWriter {
	return &LoggingIndexWriter{next: next, name: name, logger: logger}
}

// WriteIndex delegates to the wrapped writer and logs the operation.
func (w *LoggingIndexWriter) WriteIndex(ctx context.Context, items []*corpus.Item) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("index write",
			"output", w.name,
			"count", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteIndex(ctx, items)
}
