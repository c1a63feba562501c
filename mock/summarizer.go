package mock

import (
	"context"

	"github.com/fwojciec/docsum"
)

var _ docsum.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of docsum.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, text string, maxSentences int) (*docsum.Summary, error)
}

func (s *Summarizer) Summarize(ctx context.Context, text string, maxSentences int) (*docsum.Summary, error) {
	return s.SummarizeFn(ctx, text, maxSentences)
}
