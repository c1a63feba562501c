// Package fs provides file-based report output.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docsum"
)

// reportTimestampFormat names report files by generation time,
// e.g. report_20260830_153004.txt.
const reportTimestampFormat = "20060102_150405"

// FormatReport renders a report as plain text.
func FormatReport(report *docsum.Report) string {
	separator := strings.Repeat("=", 40)

	var b strings.Builder
	b.WriteString("--- Multi-Document Summary Report ---\n\n")
	fmt.Fprintf(&b, "Number of docs checked: %d\n", report.DocumentsChecked)
	fmt.Fprintf(&b, "Billing summary: %d %s\n", report.BillingAmount(), docsum.BillingCurrency)
	b.WriteString("\n" + separator + "\n")

	for i, entry := range report.Entries {
		fmt.Fprintf(&b, "\n--- Document %d: %s ---\n", i+1, entry.DocumentName)
		b.WriteString("\n--- Original Text ---\n")
		b.WriteString(entry.OriginalText)
		b.WriteString("\n\n--- Generated Summary ---\n")
		b.WriteString(entry.SummaryText)
		b.WriteString("\n" + separator + "\n")
	}

	return b.String()
}

// Ensure ReportWriter implements docsum.ReportWriter at compile time.
var _ docsum.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes reports as timestamped text files to a directory.
type ReportWriter struct {
	baseDir string
}

// NewReportWriter creates a new ReportWriter that writes to the given base directory.
func NewReportWriter(baseDir string) *ReportWriter {
	return &ReportWriter{baseDir: baseDir}
}

// WriteReport writes the report to disk and returns the created file's path.
// The write goes through a temp file so a partially written report is never
// left behind under the final name.
func (w *ReportWriter) WriteReport(ctx context.Context, report *docsum.Report) (string, error) {
	if err := report.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("report_%s.txt", report.GeneratedAt.Format(reportTimestampFormat))
	fullPath := filepath.Join(w.baseDir, name)

	tmp, err := os.CreateTemp(w.baseDir, "report-*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(FormatReport(report)); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", err
	}

	return fullPath, nil
}
