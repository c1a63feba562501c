package main

import (
	"context"
	"io"

	"github.com/fwojciec/docsum"
	"github.com/fwojciec/docsum/ingest"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB    string `default:"docsum.db" help:"Path to the SQLite database file"`
	Quiet bool   `short:"q" help:"Only log errors"`

	Summarize SummarizeCmd `cmd:"" help:"Summarize documents and generate a report"`
	Usage     UsageCmd     `cmd:"" help:"Show the running usage total and billing amount"`
}

// SummarizeCmd handles the main summarize operation.
type SummarizeCmd struct {
	Sentences int      `short:"n" default:"2" help:"Number of sentences to keep per document"`
	Format    string   `short:"f" enum:"txt,pdf" default:"txt" help:"Report output format"`
	ReportDir string   `default:"reports" help:"Directory for generated reports"`
	File      []string `arg:"" required:"" type:"existingfile" help:"Documents to summarize (txt, docx, pdf, html or zip)"`
}

// UsageCmd reports the usage total.
type UsageCmd struct{}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Summarizer docsum.Summarizer
	Ingestor   *ingest.Ingestor

	Documents docsum.DocumentService
	Summaries docsum.SummaryService
	Usage     docsum.UsageService
	Reports   docsum.ReportWriter
}
