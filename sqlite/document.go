package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docsum"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docsum.DocumentService = (*DocumentService)(nil)

// DocumentService implements docsum.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateDocument creates a new document.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *docsum.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.UploadedAt = time.Now().UTC()
	doc.ContentHash = hashContent(doc.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, name, format, content, content_hash, size, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Name, string(doc.Format), doc.Content, doc.ContentHash,
		doc.Size, doc.UploadedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*docsum.Document, error) {
	var doc docsum.Document
	var uploadedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, format, content, content_hash, size, uploaded_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.Name, &doc.Format, &doc.Content, &doc.ContentHash,
		&doc.Size, &uploadedAt)

	if err == sql.ErrNoRows {
		return nil, docsum.Errorf(docsum.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	doc.UploadedAt, err = parseRFC3339(uploadedAt, "uploaded_at")
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter docsum.DocumentFilter) ([]*docsum.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, format, content, content_hash, size, uploaded_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	switch filter.SortBy {
	case docsum.SortByName:
		query.WriteString(" ORDER BY name ASC")
	default:
		query.WriteString(" ORDER BY uploaded_at DESC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*docsum.Document
	for rows.Next() {
		var doc docsum.Document
		var uploadedAt string

		if err := rows.Scan(&doc.ID, &doc.Name, &doc.Format, &doc.Content,
			&doc.ContentHash, &doc.Size, &uploadedAt); err != nil {
			return nil, err
		}

		doc.UploadedAt, err = parseRFC3339(uploadedAt, "uploaded_at")
		if err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document. Associated summaries are
// removed by the foreign key cascade.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docsum.Errorf(docsum.ENOTFOUND, "document not found")
	}

	return nil
}
