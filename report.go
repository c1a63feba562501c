package docsum

import (
	"context"
	"time"
)

// BillingRatePerDocument is the amount billed for each document checked,
// in BillingCurrency.
const BillingRatePerDocument = 10

// BillingCurrency is the currency billing amounts are denominated in.
const BillingCurrency = "INR"

// Report represents a multi-document summary report.
type Report struct {
	GeneratedAt time.Time `json:"generatedAt"`

	// DocumentsChecked is the running usage total at report time, not the
	// number of entries in this report.
	DocumentsChecked int `json:"documentsChecked"`

	Entries []ReportEntry `json:"entries"`
}

// ReportEntry pairs a document with its generated summary.
type ReportEntry struct {
	DocumentName string `json:"documentName"`
	OriginalText string `json:"originalText"`
	SummaryText  string `json:"summaryText"`
}

// BillingAmount returns the billing total for the documents checked so far.
func (r *Report) BillingAmount() int {
	return r.DocumentsChecked * BillingRatePerDocument
}

// Validate returns an error if the report contains invalid fields.
func (r *Report) Validate() error {
	if len(r.Entries) == 0 {
		return Errorf(EINVALID, "report requires at least one entry")
	}
	return nil
}

// ReportWriter renders a report to a downloadable artifact.
type ReportWriter interface {
	// WriteReport writes the report and returns the path of the created file.
	WriteReport(ctx context.Context, report *Report) (string, error)
}
