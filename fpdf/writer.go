// Package fpdf renders reports as PDF files.
package fpdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/docsum"
	"github.com/go-pdf/fpdf"
)

const reportTimestampFormat = "20060102_150405"

// Ensure ReportWriter implements docsum.ReportWriter at compile time.
var _ docsum.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes reports as timestamped PDF files to a directory.
type ReportWriter struct {
	baseDir string
}

// NewReportWriter creates a new ReportWriter that writes to the given base directory.
func NewReportWriter(baseDir string) *ReportWriter {
	return &ReportWriter{baseDir: baseDir}
}

// WriteReport renders the report as a PDF and returns the created file's
// path. The render goes through a temp file so a partially written report
// is never left behind under the final name.
func (w *ReportWriter) WriteReport(ctx context.Context, report *docsum.Report) (string, error) {
	if err := report.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts only cover CP1252, so translate the UTF-8 input.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, "Document Summary Report", "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, fmt.Sprintf("Date & Time: %s", report.GeneratedAt.Format("2006-01-02 15:04:05")), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Number of docs checked: %d", report.DocumentsChecked), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("Billing summary: %d %s", report.BillingAmount(), docsum.BillingCurrency), "", "L", false)
	pdf.Ln(6)

	for i, entry := range report.Entries {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.MultiCell(0, 7, tr(fmt.Sprintf("Document %d: %s", i+1, entry.DocumentName)), "", "L", false)
		pdf.Ln(2)

		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, "Original Text:", "", "L", false)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(entry.OriginalText), "", "L", false)
		pdf.Ln(2)

		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, "Generated Summary:", "", "L", false)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(entry.SummaryText), "", "L", false)
		pdf.Ln(6)
	}

	name := fmt.Sprintf("report_%s.pdf", report.GeneratedAt.Format(reportTimestampFormat))
	fullPath := filepath.Join(w.baseDir, name)

	tmp, err := os.CreateTemp(w.baseDir, "report-*.tmp")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpName)

	if err := pdf.OutputFileAndClose(tmpName); err != nil {
		return "", err
	}

	if err := os.Rename(tmpName, fullPath); err != nil {
		return "", err
	}

	return fullPath, nil
}
