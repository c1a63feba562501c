package mock

import (
	"context"

	"github.com/fwojciec/docsum"
)

var _ docsum.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of docsum.TextExtractor.
type TextExtractor struct {
	ExtractFn func(ctx context.Context, name string, data []byte) (string, error)
}

func (e *TextExtractor) Extract(ctx context.Context, name string, data []byte) (string, error) {
	return e.ExtractFn(ctx, name, data)
}
