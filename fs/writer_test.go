package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/docsum"
	"github.com/fwojciec/docsum/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() *docsum.Report {
	return &docsum.Report{
		GeneratedAt:      time.Date(2026, 8, 30, 15, 30, 4, 0, time.UTC),
		DocumentsChecked: 5,
		Entries: []docsum.ReportEntry{
			{
				DocumentName: "notes.txt",
				OriginalText: "First sentence. Second sentence. Third sentence.",
				SummaryText:  "First sentence. Third sentence.",
			},
			{
				DocumentName: "report.docx",
				OriginalText: "The original document text.",
				SummaryText:  "The original document text.",
			},
		},
	}
}

func TestFormatReport(t *testing.T) {
	t.Parallel()

	got := fs.FormatReport(testReport())

	assert.Contains(t, got, "--- Multi-Document Summary Report ---")
	assert.Contains(t, got, "Number of docs checked: 5")
	assert.Contains(t, got, "Billing summary: 50 INR")
	assert.Contains(t, got, "--- Document 1: notes.txt ---")
	assert.Contains(t, got, "--- Document 2: report.docx ---")
	assert.Contains(t, got, "--- Original Text ---")
	assert.Contains(t, got, "--- Generated Summary ---")
	assert.Contains(t, got, "First sentence. Third sentence.")
}

func TestReportWriter_WriteReport(t *testing.T) {
	t.Parallel()

	t.Run("writes a timestamped report file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewReportWriter(dir)

		path, err := w.WriteReport(context.Background(), testReport())
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "report_20260830_153004.txt"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "Number of docs checked: 5")
	})

	t.Run("creates the base directory if missing", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "reports")
		w := fs.NewReportWriter(dir)

		path, err := w.WriteReport(context.Background(), testReport())
		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("returns error for an empty report", func(t *testing.T) {
		t.Parallel()

		w := fs.NewReportWriter(t.TempDir())

		_, err := w.WriteReport(context.Background(), &docsum.Report{GeneratedAt: time.Now()})
		require.Error(t, err)
		assert.Equal(t, docsum.EINVALID, docsum.ErrorCode(err))
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewReportWriter(dir)

		_, err := w.WriteReport(context.Background(), testReport())
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})
}
