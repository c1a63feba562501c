package mock

import (
	"context"

	"github.com/fwojciec/docsum"
)

var _ docsum.SummaryService = (*SummaryService)(nil)

// SummaryService is a mock implementation of docsum.SummaryService.
type SummaryService struct {
	CreateSummaryFn             func(ctx context.Context, summary *docsum.Summary) error
	FindSummaryByIDFn           func(ctx context.Context, id string) (*docsum.Summary, error)
	FindSummariesFn             func(ctx context.Context, filter docsum.SummaryFilter) ([]*docsum.Summary, error)
	DeleteSummariesByDocumentFn func(ctx context.Context, documentID string) error
}

func (s *SummaryService) CreateSummary(ctx context.Context, summary *docsum.Summary) error {
	return s.CreateSummaryFn(ctx, summary)
}

func (s *SummaryService) FindSummaryByID(ctx context.Context, id string) (*docsum.Summary, error) {
	return s.FindSummaryByIDFn(ctx, id)
}

func (s *SummaryService) FindSummaries(ctx context.Context, filter docsum.SummaryFilter) ([]*docsum.Summary, error) {
	return s.FindSummariesFn(ctx, filter)
}

func (s *SummaryService) DeleteSummariesByDocument(ctx context.Context, documentID string) error {
	return s.DeleteSummariesByDocumentFn(ctx, documentID)
}
