// Package slog provides logging decorators for skim domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/skim"
)

// Ensure LoggingSummarizer implements skim.Summarizer.
var _ skim.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with timing and outcome logging.
type LoggingSummarizer struct {
	next   skim.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next skim.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped Summarizer and logs the result.
func (s *LoggingSummarizer) Summarize(ctx context.Context, doc *skim.Document) (*skim.Summary, error) {
	begin := time.Now()
	summary, err := s.next.Summarize(ctx, doc)
	if err != nil {
		s.logger.Error("summarize failed",
			"title", doc.Title,
			"source", doc.SourcePath,
			"error", skim.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	s.logger.Info("summarize",
		"title", summary.Title,
		"source", doc.SourcePath,
		"sentences", len(summary.Ranks),
		"ratio", summary.Ratio,
		"duration", time.Since(begin),
	)
	return summary, nil
}
