package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docsum"
	"github.com/fwojciec/docsum/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDocument(t *testing.T, db *sqlite.DB, name, content string) *docsum.Document {
	t.Helper()
	svc := sqlite.NewDocumentService(db)
	doc := &docsum.Document{
		Name:    name,
		Format:  docsum.FormatText,
		Content: content,
	}
	require.NoError(t, svc.CreateDocument(context.Background(), doc))
	return doc
}

func TestDocumentService_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("creates document with generated ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &docsum.Document{
			Name:    "notes.txt",
			Format:  docsum.FormatText,
			Content: "Some document content.",
		}

		err := svc.CreateDocument(ctx, doc)
		require.NoError(t, err)

		assert.NotEmpty(t, doc.ID, "ID should be generated")
		assert.NotEmpty(t, doc.ContentHash, "ContentHash should be generated")
		assert.False(t, doc.UploadedAt.IsZero(), "UploadedAt should be set")
	})

	t.Run("returns error for invalid document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		doc := &docsum.Document{} // missing required fields

		err := svc.CreateDocument(ctx, doc)
		require.Error(t, err)
		assert.Equal(t, docsum.EINVALID, docsum.ErrorCode(err))
	})

	t.Run("identical content yields identical hashes", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		a := createTestDocument(t, db, "a.txt", "Same content.")
		b := createTestDocument(t, db, "b.txt", "Same content.")
		c := createTestDocument(t, db, "c.txt", "Different content.")

		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ContentHash, c.ContentHash)
	})
}

func TestDocumentService_FindDocumentByID(t *testing.T) {
	t.Parallel()

	t.Run("finds existing document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		created := createTestDocument(t, db, "notes.txt", "Some content.")

		found, err := svc.FindDocumentByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "notes.txt", found.Name)
		assert.Equal(t, docsum.FormatText, found.Format)
		assert.Equal(t, "Some content.", found.Content)
	})

	t.Run("returns ENOTFOUND for missing document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		_, err := svc.FindDocumentByID(ctx, "does-not-exist")
		require.Error(t, err)
		assert.Equal(t, docsum.ENOTFOUND, docsum.ErrorCode(err))
	})
}

func TestDocumentService_FindDocuments(t *testing.T) {
	t.Parallel()

	t.Run("filters by name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		createTestDocument(t, db, "a.txt", "First.")
		createTestDocument(t, db, "b.txt", "Second.")

		name := "a.txt"
		docs, err := svc.FindDocuments(ctx, docsum.DocumentFilter{Name: &name})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "a.txt", docs[0].Name)
	})

	t.Run("filters by content hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		created := createTestDocument(t, db, "a.txt", "Shared content.")
		createTestDocument(t, db, "b.txt", "Other content.")

		docs, err := svc.FindDocuments(ctx, docsum.DocumentFilter{ContentHash: &created.ContentHash})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, created.ID, docs[0].ID)
	})

	t.Run("sorts by name when requested", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		createTestDocument(t, db, "b.txt", "Second.")
		createTestDocument(t, db, "a.txt", "First.")

		docs, err := svc.FindDocuments(ctx, docsum.DocumentFilter{SortBy: docsum.SortByName})
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "a.txt", docs[0].Name)
		assert.Equal(t, "b.txt", docs[1].Name)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		createTestDocument(t, db, "a.txt", "First.")
		createTestDocument(t, db, "b.txt", "Second.")
		createTestDocument(t, db, "c.txt", "Third.")

		docs, err := svc.FindDocuments(ctx, docsum.DocumentFilter{
			SortBy: docsum.SortByName,
			Limit:  2,
			Offset: 1,
		})
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "b.txt", docs[0].Name)
		assert.Equal(t, "c.txt", docs[1].Name)
	})
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		created := createTestDocument(t, db, "notes.txt", "Some content.")

		require.NoError(t, svc.DeleteDocument(ctx, created.ID))

		_, err := svc.FindDocumentByID(ctx, created.ID)
		assert.Equal(t, docsum.ENOTFOUND, docsum.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		err := svc.DeleteDocument(ctx, "does-not-exist")
		require.Error(t, err)
		assert.Equal(t, docsum.ENOTFOUND, docsum.ErrorCode(err))
	})

	t.Run("cascades to summaries", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		docSvc := sqlite.NewDocumentService(db)
		sumSvc := sqlite.NewSummaryService(db)
		ctx := context.Background()

		doc := createTestDocument(t, db, "notes.txt", "Some content.")
		summary := &docsum.Summary{DocumentID: doc.ID, Text: "Some content."}
		require.NoError(t, sumSvc.CreateSummary(ctx, summary))

		require.NoError(t, docSvc.DeleteDocument(ctx, doc.ID))

		summaries, err := sumSvc.FindSummaries(ctx, docsum.SummaryFilter{DocumentID: &doc.ID})
		require.NoError(t, err)
		assert.Empty(t, summaries)
	})
}
