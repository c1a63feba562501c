// Package slog provides logging decorators for docsum services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsum"
)

// Ensure LoggingSummarizer implements docsum.Summarizer.
var _ docsum.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with structured logging.
type LoggingSummarizer struct {
	next   docsum.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next docsum.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the outcome.
func (s *LoggingSummarizer) Summarize(ctx context.Context, text string, maxSentences int) (*docsum.Summary, error) {
	begin := time.Now()
	summary, err := s.next.Summarize(ctx, text, maxSentences)
	if err != nil {
		s.logger.Error("summarize",
			"code", docsum.ErrorCode(err),
			"err", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}

	s.logger.Info("summarize",
		"sentences", summary.TotalSentences,
		"selected", summary.SentenceCount,
		"unchanged", summary.Unchanged,
		"iterations", summary.Iterations,
		"converged", summary.Converged,
		"duration", time.Since(begin),
	)
	return summary, nil
}
