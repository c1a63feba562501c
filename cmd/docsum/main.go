package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsum"
	"github.com/fwojciec/docsum/docx"
	"github.com/fwojciec/docsum/fpdf"
	"github.com/fwojciec/docsum/fs"
	"github.com/fwojciec/docsum/goquery"
	"github.com/fwojciec/docsum/ingest"
	"github.com/fwojciec/docsum/pdf"
	docslog "github.com/fwojciec/docsum/slog"
	"github.com/fwojciec/docsum/sqlite"
	"github.com/fwojciec/docsum/textrank"
	"github.com/fwojciec/docsum/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsum"),
		kong.Description("Summarize documents using extractive sentence ranking"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsum --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The resolved command, independent of where global flags appeared.
	// kong renders it with argument placeholders ("summarize <file>"), so
	// take the leading word.
	cmd := strings.Fields(kongCtx.Command())[0]

	logLevel := slog.LevelInfo
	if cli.Quiet {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	// Open database
	db := sqlite.NewDB(cli.DB)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
	}
	defer db.Close()

	// Wire core services into dependencies
	deps.Documents = sqlite.NewDocumentService(db)
	deps.Summaries = sqlite.NewSummaryService(db)
	deps.Usage = sqlite.NewUsageService(db)

	// Wire command-specific dependencies based on command
	if cmd == "summarize" {
		summarizer, err := textrank.New()
		if err != nil {
			return fmt.Errorf("failed to create summarizer: %w", err)
		}
		deps.Summarizer = docslog.NewLoggingSummarizer(summarizer, logger)

		htmlExtractor := &ingest.FallbackExtractor{
			Primary:  trafilatura.NewExtractor(),
			Fallback: goquery.NewExtractor(),
		}
		deps.Ingestor = &ingest.Ingestor{
			Extractors: map[docsum.Format]docsum.TextExtractor{
				docsum.FormatText: docslog.NewLoggingExtractor(&ingest.TextExtractor{}, logger),
				docsum.FormatDocx: docslog.NewLoggingExtractor(docx.NewExtractor(), logger),
				docsum.FormatPDF:  docslog.NewLoggingExtractor(pdf.NewExtractor(), logger),
				docsum.FormatHTML: docslog.NewLoggingExtractor(htmlExtractor, logger),
			},
		}

		if cli.Summarize.Format == "pdf" {
			deps.Reports = fpdf.NewReportWriter(cli.Summarize.ReportDir)
		} else {
			deps.Reports = fs.NewReportWriter(cli.Summarize.ReportDir)
		}
	}

	return kongCtx.Run(deps)
}
