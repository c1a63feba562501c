// Package goquery extracts raw visible text from HTML documents. It
// serves as the fallback behind the trafilatura extractor for pages
// where main-content detection finds nothing.
package goquery

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsum"
)

// Ensure Extractor implements docsum.TextExtractor at compile time.
var _ docsum.TextExtractor = (*Extractor)(nil)

// Extractor returns the visible text of the whole document body, with
// scripts and styles removed and whitespace normalized.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the document's visible text.
func (e *Extractor) Extract(_ context.Context, name string, data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", docsum.Errorf(docsum.EINVALID, "could not parse %s: %v", name, err)
	}

	doc.Find("script, style, noscript").Remove()

	text := doc.Find("body").Text()
	if text == "" {
		text = doc.Text()
	}

	// Collapse runs of whitespace; block boundaries already carry
	// newlines in the parsed text.
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return "", docsum.Errorf(docsum.EINSUFFICIENT, "no extractable content in %s", name)
	}
	return text, nil
}
