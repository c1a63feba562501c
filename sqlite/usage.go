package sqlite

import (
	"context"

	"github.com/fwojciec/docsum"
)

// Compile-time interface verification.
var _ docsum.UsageService = (*UsageService)(nil)

// UsageService implements docsum.UsageService using SQLite. The running
// total lives in a single-row table so it survives restarts.
type UsageService struct {
	db *DB
}

// NewUsageService creates a new UsageService.
func NewUsageService(db *DB) *UsageService {
	return &UsageService{db: db}
}

// AddUsage records n additional documents checked and returns the new
// running total.
func (s *UsageService) AddUsage(ctx context.Context, n int) (int, error) {
	if n < 0 {
		return 0, docsum.Errorf(docsum.EINVALID, "usage increment must be non-negative")
	}

	var total int
	err := s.db.QueryRowContext(ctx, `
		UPDATE usage
		SET documents_checked = documents_checked + ?
		WHERE id = 1
		RETURNING documents_checked
	`, n).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

// Usage returns the running total of documents checked.
func (s *UsageService) Usage(ctx context.Context) (int, error) {
	var total int
	err := s.db.QueryRowContext(ctx,
		"SELECT documents_checked FROM usage WHERE id = 1").Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}
