package docsum

import (
	"context"
	"time"
)

// Summary represents the outcome of summarizing a single document.
type Summary struct {
	ID         string `json:"id"`
	DocumentID string `json:"documentId"`

	// Text is the summary text: the selected sentences in original
	// document order, or the unmodified input when Unchanged is true.
	Text string `json:"text"`

	// Unchanged reports the short-circuit case: the document had no more
	// sentences than were requested, so the original text was returned
	// verbatim and no ranking took place.
	Unchanged bool `json:"unchanged"`

	// SentenceCount is the number of sentences in Text.
	SentenceCount int `json:"sentenceCount"`

	// TotalSentences is the number of sentences detected in the input.
	TotalSentences int `json:"totalSentences"`

	// Iterations is the number of ranking iterations performed.
	// Zero when Unchanged is true.
	Iterations int `json:"iterations"`

	// Converged reports whether the ranking stabilized before hitting
	// the iteration cap. Always false when Unchanged is true.
	Converged bool `json:"converged"`

	CreatedAt time.Time `json:"createdAt"`
}

// Summarizer produces an extractive summary from raw text.
type Summarizer interface {
	// Summarize returns a summary of at most maxSentences sentences.
	//
	// Returns EEMPTYINPUT if no sentences can be detected in text, and
	// EINSUFFICIENT if the text yields no usable vocabulary after
	// stop-word removal (e.g. stop words or symbols only).
	Summarize(ctx context.Context, text string, maxSentences int) (*Summary, error)
}

// SummaryService represents a service for persisting summaries.
type SummaryService interface {
	// CreateSummary stores a summary for a document.
	CreateSummary(ctx context.Context, summary *Summary) error

	// FindSummaryByID retrieves a summary by ID.
	// Returns ENOTFOUND if summary does not exist.
	FindSummaryByID(ctx context.Context, id string) (*Summary, error)

	// FindSummaries retrieves summaries matching the filter.
	FindSummaries(ctx context.Context, filter SummaryFilter) ([]*Summary, error)

	// DeleteSummariesByDocument removes all summaries for a document.
	DeleteSummariesByDocument(ctx context.Context, documentID string) error
}

// SummaryFilter represents a filter for FindSummaries.
type SummaryFilter struct {
	ID         *string `json:"id"`
	DocumentID *string `json:"documentId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
