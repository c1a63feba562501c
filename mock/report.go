package mock

import (
	"context"

	"github.com/fwojciec/docsum"
)

var _ docsum.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of docsum.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, report *docsum.Report) (string, error)
}

func (w *ReportWriter) WriteReport(ctx context.Context, report *docsum.Report) (string, error) {
	return w.WriteReportFn(ctx, report)
}
