// Package trafilatura extracts the main text content from HTML documents,
// removing boilerplate such as navigation, footers and sidebars.
package trafilatura

import (
	"bytes"
	"context"
	"strings"

	"github.com/fwojciec/docsum"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements docsum.TextExtractor at compile time.
var _ docsum.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main text content of an HTML document.
func (e *Extractor) Extract(_ context.Context, name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", docsum.Errorf(docsum.EINVALID, "%s is empty", name)
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(bytes.NewReader(data), opts)
	if err != nil {
		return "", docsum.Errorf(docsum.EINVALID, "could not extract content from %s: %v", name, err)
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return "", docsum.Errorf(docsum.EINSUFFICIENT, "no extractable content in %s", name)
	}
	return text, nil
}
