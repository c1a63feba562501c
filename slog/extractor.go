package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsum"
)

// Ensure LoggingExtractor implements docsum.TextExtractor.
var _ docsum.TextExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a TextExtractor with structured logging.
type LoggingExtractor struct {
	next   docsum.TextExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next docsum.TextExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, name string, data []byte) (string, error) {
	begin := time.Now()
	text, err := e.next.Extract(ctx, name, data)
	if err != nil {
		e.logger.Error("extract",
			"name", name,
			"code", docsum.ErrorCode(err),
			"err", err,
			"duration", time.Since(begin),
		)
		return "", err
	}

	e.logger.Info("extract",
		"name", name,
		"bytes", len(data),
		"chars", len(text),
		"duration", time.Since(begin),
	)
	return text, nil
}
