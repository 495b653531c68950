package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/skim"
)

// Ensure LoggingLoader implements skim.Loader.
var _ skim.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with timing and size logging.
type LoggingLoader struct {
	next   skim.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next skim.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped Loader and logs the result.
func (l *LoggingLoader) Load(ctx context.Context, path string) (*skim.Document, error) {
	begin := time.Now()
	doc, err := l.next.Load(ctx, path)
	if err != nil {
		l.logger.Error("load failed",
			"path", path,
			"error", skim.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	l.logger.Info("load",
		"path", path,
		"title", doc.Title,
		"bytes", len(doc.Content),
		"duration", time.Since(begin),
	)
	return doc, nil
}
