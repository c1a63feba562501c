package ingest_test

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/docsum"
	"github.com/fwojciec/docsum/ingest"
	"github.com/fwojciec/docsum/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestor_Ingest(t *testing.T) {
	t.Parallel()

	t.Run("extracts a single text file", func(t *testing.T) {
		t.Parallel()

		ing := &ingest.Ingestor{Extractors: passthroughExtractors()}

		docs, skipped, err := ing.Ingest(context.Background(), []ingest.File{
			{Name: "notes.txt", Data: []byte("Hello world.")},
		})
		require.NoError(t, err)
		assert.Empty(t, skipped)
		require.Len(t, docs, 1)
		assert.Equal(t, "notes.txt", docs[0].Name)
		assert.Equal(t, docsum.FormatText, docs[0].Format)
		assert.Equal(t, "Hello world.", docs[0].Content)
		assert.Equal(t, int64(len("Hello world.")), docs[0].Size)
	})

	t.Run("skips files with unsupported formats", func(t *testing.T) {
		t.Parallel()

		ing := &ingest.Ingestor{Extractors: passthroughExtractors()}

		docs, skipped, err := ing.Ingest(context.Background(), []ingest.File{
			{Name: "notes.txt", Data: []byte("Hello world.")},
			{Name: "image.png", Data: []byte{0x89, 0x50}},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"image.png"}, skipped)
		require.Len(t, docs, 1)
	})

	t.Run("rejects an empty batch", func(t *testing.T) {
		t.Parallel()

		ing := &ingest.Ingestor{Extractors: passthroughExtractors()}

		_, _, err := ing.Ingest(context.Background(), nil)
		require.Error(t, err)
		assert.Equal(t, docsum.EINVALID, docsum.ErrorCode(err))
	})

	t.Run("rejects a batch above the document limit", func(t *testing.T) {
		t.Parallel()

		ing := &ingest.Ingestor{Extractors: passthroughExtractors()}

		files := []ingest.File{
			{Name: "a.txt", Data: []byte("a")},
			{Name: "b.txt", Data: []byte("b")},
			{Name: "c.txt", Data: []byte("c")},
			{Name: "d.txt", Data: []byte("d")},
		}
		_, _, err := ing.Ingest(context.Background(), files)
		require.Error(t, err)
		assert.Equal(t, docsum.EINVALID, docsum.ErrorCode(err))
	})

	t.Run("expands a zip archive", func(t *testing.T) {
		t.Parallel()

		ing := &ingest.Ingestor{Extractors: passthroughExtractors()}

		data := buildZip(t, map[string]string{
			"a.txt":       "First document.",
			"docs/b.html": "Second document.",
		})
		docs, skipped, err := ing.Ingest(context.Background(), []ingest.File{
			{Name: "batch.zip", Data: data},
		})
		require.NoError(t, err)
		assert.Empty(t, skipped)
		require.Len(t, docs, 2)

		names := []string{docs[0].Name, docs[1].Name}
		assert.ElementsMatch(t, []string{"a.txt", "b.html"}, names)
	})

	t.Run("skips duplicate archive members by content", func(t *testing.T) {
		t.Parallel()

		ing := &ingest.Ingestor{Extractors: passthroughExtractors()}

		data := buildZip(t, map[string]string{
			"a.txt":      "Same content.",
			"copy/a.txt": "Same content.",
		})
		docs, skipped, err := ing.Ingest(context.Background(), []ingest.File{
			{Name: "batch.zip", Data: data},
		})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		require.Len(t, skipped, 1)
		assert.Contains(t, skipped[0], "batch.zip:")
	})

	t.Run("skips oversized archive members", func(t *testing.T) {
		t.Parallel()

		ing := &ingest.Ingestor{
			Extractors:    passthroughExtractors(),
			MaxMemberSize: 8,
		}

		data := buildZip(t, map[string]string{
			"small.txt": "tiny",
			"large.txt": "this member is larger than eight bytes",
		})
		docs, skipped, err := ing.Ingest(context.Background(), []ingest.File{
			{Name: "batch.zip", Data: data},
		})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "small.txt", docs[0].Name)
		assert.Equal(t, []string{"batch.zip:large.txt"}, skipped)
	})

	t.Run("skips unsupported archive members", func(t *testing.T) {
		t.Parallel()

		ing := &ingest.Ingestor{Extractors: passthroughExtractors()}

		data := buildZip(t, map[string]string{
			"a.txt":     "First document.",
			"image.png": "not text",
		})
		docs, skipped, err := ing.Ingest(context.Background(), []ingest.File{
			{Name: "batch.zip", Data: data},
		})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, []string{"batch.zip:image.png"}, skipped)
	})

	t.Run("rejects a corrupted zip archive", func(t *testing.T) {
		t.Parallel()

		ing := &ingest.Ingestor{Extractors: passthroughExtractors()}

		_, _, err := ing.Ingest(context.Background(), []ingest.File{
			{Name: "bad.zip", Data: []byte("definitely not a zip")},
		})
		require.Error(t, err)
		assert.Equal(t, docsum.EINVALID, docsum.ErrorCode(err))
	})

	t.Run("propagates extractor errors", func(t *testing.T) {
		t.Parallel()

		want := docsum.Errorf(docsum.EINVALID, "broken document")
		ing := &ingest.Ingestor{
			Extractors: map[docsum.Format]docsum.TextExtractor{
				docsum.FormatText: &mock.TextExtractor{
					ExtractFn: func(_ context.Context, _ string, _ []byte) (string, error) {
						return "", want
					},
				},
			},
		}

		_, _, err := ing.Ingest(context.Background(), []ingest.File{
			{Name: "notes.txt", Data: []byte("Hello.")},
		})
		assert.Equal(t, want, err)
	})
}

func TestTextExtractor(t *testing.T) {
	t.Parallel()

	t.Run("returns valid UTF-8 unchanged", func(t *testing.T) {
		t.Parallel()

		e := &ingest.TextExtractor{}
		text, err := e.Extract(context.Background(), "notes.txt", []byte("héllo wörld"))
		require.NoError(t, err)
		assert.Equal(t, "héllo wörld", text)
	})

	t.Run("decodes non-UTF-8 input as Latin-1", func(t *testing.T) {
		t.Parallel()

		e := &ingest.TextExtractor{}
		// "café" with a Latin-1 encoded e-acute (0xE9), invalid as UTF-8.
		text, err := e.Extract(context.Background(), "notes.txt", []byte{'c', 'a', 'f', 0xE9})
		require.NoError(t, err)
		assert.Equal(t, "café", text)
	})
}

func TestFallbackExtractor(t *testing.T) {
	t.Parallel()

	t.Run("uses the primary extractor when it succeeds", func(t *testing.T) {
		t.Parallel()

		e := &ingest.FallbackExtractor{
			Primary: &mock.TextExtractor{
				ExtractFn: func(_ context.Context, _ string, _ []byte) (string, error) {
					return "primary", nil
				},
			},
			Fallback: &mock.TextExtractor{
				ExtractFn: func(_ context.Context, _ string, _ []byte) (string, error) {
					t.Fatal("fallback should not be called")
					return "", nil
				},
			},
		}

		text, err := e.Extract(context.Background(), "page.html", []byte("<html></html>"))
		require.NoError(t, err)
		assert.Equal(t, "primary", text)
	})

	t.Run("falls back when the primary fails", func(t *testing.T) {
		t.Parallel()

		e := &ingest.FallbackExtractor{
			Primary: &mock.TextExtractor{
				ExtractFn: func(_ context.Context, _ string, _ []byte) (string, error) {
					return "", docsum.Errorf(docsum.EINVALID, "nope")
				},
			},
			Fallback: &mock.TextExtractor{
				ExtractFn: func(_ context.Context, _ string, _ []byte) (string, error) {
					return "fallback", nil
				},
			},
		}

		text, err := e.Extract(context.Background(), "page.html", []byte("<html></html>"))
		require.NoError(t, err)
		assert.Equal(t, "fallback", text)
	})
}

// passthroughExtractors returns extractors that treat content as
// already-extracted text for every supported format.
func passthroughExtractors() map[docsum.Format]docsum.TextExtractor {
	passthrough := &mock.TextExtractor{
		ExtractFn: func(_ context.Context, _ string, data []byte) (string, error) {
			return string(data), nil
		},
	}
	return map[docsum.Format]docsum.TextExtractor{
		docsum.FormatText: passthrough,
		docsum.FormatDocx: passthrough,
		docsum.FormatPDF:  passthrough,
		docsum.FormatHTML: passthrough,
	}
}

func buildZip(t *testing.T, members map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range members {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
