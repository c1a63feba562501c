package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/docsum"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docsum.SummaryService = (*SummaryService)(nil)

// SummaryService implements docsum.SummaryService using SQLite.
type SummaryService struct {
	db *DB
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(db *DB) *SummaryService {
	return &SummaryService{db: db}
}

// CreateSummary stores a summary for a document.
func (s *SummaryService) CreateSummary(ctx context.Context, summary *docsum.Summary) error {
	if summary.DocumentID == "" {
		return docsum.Errorf(docsum.EINVALID, "summary document ID required")
	}

	summary.ID = uuid.New().String()
	summary.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO summaries (id, document_id, text, unchanged, sentence_count, total_sentences, iterations, converged, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, summary.ID, summary.DocumentID, summary.Text, summary.Unchanged,
		summary.SentenceCount, summary.TotalSentences, summary.Iterations,
		summary.Converged, summary.CreatedAt.Format(time.RFC3339))

	return err
}

// FindSummaryByID retrieves a summary by ID.
func (s *SummaryService) FindSummaryByID(ctx context.Context, id string) (*docsum.Summary, error) {
	var summary docsum.Summary
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, document_id, text, unchanged, sentence_count, total_sentences, iterations, converged, created_at
		FROM summaries
		WHERE id = ?
	`, id).Scan(&summary.ID, &summary.DocumentID, &summary.Text, &summary.Unchanged,
		&summary.SentenceCount, &summary.TotalSentences, &summary.Iterations,
		&summary.Converged, &createdAt)

	if err == sql.ErrNoRows {
		return nil, docsum.Errorf(docsum.ENOTFOUND, "summary not found")
	}
	if err != nil {
		return nil, err
	}

	summary.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &summary, nil
}

// FindSummaries retrieves summaries matching the filter.
func (s *SummaryService) FindSummaries(ctx context.Context, filter docsum.SummaryFilter) ([]*docsum.Summary, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, document_id, text, unchanged, sentence_count, total_sentences, iterations, converged, created_at FROM summaries WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.DocumentID != nil {
		query.WriteString(" AND document_id = ?")
		args = append(args, *filter.DocumentID)
	}

	query.WriteString(" ORDER BY created_at DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*docsum.Summary
	for rows.Next() {
		var summary docsum.Summary
		var createdAt string

		if err := rows.Scan(&summary.ID, &summary.DocumentID, &summary.Text,
			&summary.Unchanged, &summary.SentenceCount, &summary.TotalSentences,
			&summary.Iterations, &summary.Converged, &createdAt); err != nil {
			return nil, err
		}

		summary.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, &summary)
	}

	return summaries, rows.Err()
}

// DeleteSummariesByDocument removes all summaries for a document.
func (s *SummaryService) DeleteSummariesByDocument(ctx context.Context, documentID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM summaries WHERE document_id = ?", documentID)
	return err
}
