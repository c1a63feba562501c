package mock

import (
	"context"

	"github.com/fwojciec/docsum"
)

var _ docsum.UsageService = (*UsageService)(nil)

// UsageService is a mock implementation of docsum.UsageService.
type UsageService struct {
	AddUsageFn func(ctx context.Context, n int) (int, error)
	UsageFn    func(ctx context.Context) (int, error)
}

func (s *UsageService) AddUsage(ctx context.Context, n int) (int, error) {
	return s.AddUsageFn(ctx, n)
}

func (s *UsageService) Usage(ctx context.Context) (int, error) {
	return s.UsageFn(ctx)
}
