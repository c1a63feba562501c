package ingest

import (
	"context"

	"github.com/fwojciec/docsum"
)

// Ensure type implements interface.
var _ docsum.TextExtractor = (*FallbackExtractor)(nil)

// FallbackExtractor tries a primary extractor and falls back to a
// secondary one when the primary fails.
type FallbackExtractor struct {
	Primary  docsum.TextExtractor
	Fallback docsum.TextExtractor
}

// Extract implements docsum.TextExtractor.
func (e *FallbackExtractor) Extract(ctx context.Context, name string, data []byte) (string, error) {
	text, err := e.Primary.Extract(ctx, name, data)
	if err == nil {
		return text, nil
	}
	return e.Fallback.Extract(ctx, name, data)
}
