package docsum

import (
	"context"
	"time"
)

// Document represents an uploaded document after text extraction.
type Document struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Format      Format    `json:"format"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "document name required")
	}
	if !d.Format.Valid() {
		return Errorf(EINVALID, "unsupported document format %q", d.Format)
	}
	return nil
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document and all associated summaries.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// SortOrder represents the sort order for document queries.
type SortOrder string

// SortOrder constants for DocumentFilter.
const (
	SortByUploadedAt SortOrder = "uploaded_at"
	SortByName       SortOrder = "name"
)

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}
