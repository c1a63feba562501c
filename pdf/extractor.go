// Package pdf extracts plain text from PDF documents using
// github.com/ledongthuc/pdf.
package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/fwojciec/docsum"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements docsum.TextExtractor at compile time.
var _ docsum.TextExtractor = (*Extractor)(nil)

// Extractor reads the text content of a PDF file, concatenated across
// pages in document order.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the text of all pages.
func (e *Extractor) Extract(_ context.Context, name string, data []byte) (text string, err error) {
	// The underlying parser panics on some malformed files; surface those
	// as invalid-input errors instead of crashing the caller.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = docsum.Errorf(docsum.EINVALID, "%s is not a valid PDF file", name)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", docsum.Errorf(docsum.EINVALID, "%s is not a valid PDF file", name)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", docsum.Errorf(docsum.EINVALID, "could not extract text from %s: %v", name, err)
	}

	b, err := io.ReadAll(plain)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
