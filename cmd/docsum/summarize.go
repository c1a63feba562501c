package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/docsum"
	"github.com/fwojciec/docsum/ingest"
	"golang.org/x/sync/errgroup"
)

// summarizeConcurrency bounds how many documents are ranked at once.
const summarizeConcurrency = 3

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	files, err := readFiles(c.File)
	if err != nil {
		return err
	}

	docs, skipped, err := deps.Ingestor.Ingest(deps.Ctx, files)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsum.ErrorMessage(err))
		return err
	}

	for _, name := range skipped {
		fmt.Fprintf(deps.Stderr, "skip %s: unsupported, oversized or duplicate\n", name)
	}

	// Rank documents concurrently. Indexed writes keep the results aligned
	// with the document order.
	summaries := make([]*docsum.Summary, len(docs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(summarizeConcurrency)
	for i, doc := range docs {
		g.Go(func() error {
			summary, err := deps.Summarizer.Summarize(ctx, doc.Content, c.Sentences)
			if err != nil {
				return fmt.Errorf("%s: %s", doc.Name, docsum.ErrorMessage(err))
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	// Persist documents and their summaries.
	for i, doc := range docs {
		if err := deps.Documents.CreateDocument(deps.Ctx, doc); err != nil {
			return fmt.Errorf("failed to save %s: %w", doc.Name, err)
		}
		summaries[i].DocumentID = doc.ID
		if err := deps.Summaries.CreateSummary(deps.Ctx, summaries[i]); err != nil {
			return fmt.Errorf("failed to save summary for %s: %w", doc.Name, err)
		}
	}

	total, err := deps.Usage.AddUsage(deps.Ctx, len(docs))
	if err != nil {
		return fmt.Errorf("failed to record usage: %w", err)
	}

	report := &docsum.Report{
		GeneratedAt:      time.Now(),
		DocumentsChecked: total,
	}
	for i, doc := range docs {
		report.Entries = append(report.Entries, docsum.ReportEntry{
			DocumentName: doc.Name,
			OriginalText: doc.Content,
			SummaryText:  summaries[i].Text,
		})
	}

	path, err := deps.Reports.WriteReport(deps.Ctx, report)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	for i, doc := range docs {
		fmt.Fprintf(deps.Stdout, "--- %s ---\n", doc.Name)
		fmt.Fprintln(deps.Stdout, summaries[i].Text)
		fmt.Fprintln(deps.Stdout)
	}

	fmt.Fprintf(deps.Stdout, "Checked %d documents (%d total)\n", len(docs), total)
	fmt.Fprintf(deps.Stdout, "Billing summary: %d %s\n", report.BillingAmount(), docsum.BillingCurrency)
	fmt.Fprintf(deps.Stdout, "Report written to %s\n", path)

	return nil
}

// readFiles loads the named files from disk.
func readFiles(paths []string) ([]ingest.File, error) {
	files := make([]ingest.File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
		files = append(files, ingest.File{Name: filepath.Base(p), Data: data})
	}
	return files, nil
}
