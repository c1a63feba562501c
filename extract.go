package docsum

import (
	"context"
	"path"
	"strings"
)

// Format identifies a supported document format.
type Format string

// Supported document formats.
const (
	FormatUnknown Format = ""
	FormatText    Format = "txt"
	FormatDocx    Format = "docx"
	FormatPDF     Format = "pdf"
	FormatHTML    Format = "html"
	FormatZip     Format = "zip"
)

// Valid reports whether the format is one a document can be stored as.
// FormatZip is a container, not a document format.
func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatDocx, FormatPDF, FormatHTML:
		return true
	}
	return false
}

// DetectFormat returns the format implied by a file name's extension.
// Returns FormatUnknown for unsupported extensions.
func DetectFormat(name string) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".txt":
		return FormatText
	case ".docx":
		return FormatDocx
	case ".pdf":
		return FormatPDF
	case ".html", ".htm":
		return FormatHTML
	case ".zip":
		return FormatZip
	}
	return FormatUnknown
}

// TextExtractor extracts plain text from a document in a specific format.
// Implementations hide the container and markup details of each format.
type TextExtractor interface {
	// Extract returns the document's text content, decoded to UTF-8.
	Extract(ctx context.Context, name string, data []byte) (string, error)
}
