package ingest

import (
	"context"
	"unicode/utf8"

	"github.com/fwojciec/docsum"
	"golang.org/x/text/encoding/charmap"
)

// Ensure type implements interface.
var _ docsum.TextExtractor = (*TextExtractor)(nil)

// TextExtractor extracts text from plain text files. Files that are not
// valid UTF-8 are decoded as Latin-1.
type TextExtractor struct{}

// Extract implements docsum.TextExtractor.
func (e *TextExtractor) Extract(_ context.Context, name string, data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", docsum.Errorf(docsum.EINVALID, "could not decode %q as text", name)
	}
	return string(decoded), nil
}
