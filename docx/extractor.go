// Package docx extracts plain text from DOCX documents using etree to
// parse the WordprocessingML body.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docsum"
)

// documentPart is the archive member holding the document body.
const documentPart = "word/document.xml"

// Ensure Extractor implements docsum.TextExtractor at compile time.
var _ docsum.TextExtractor = (*Extractor)(nil)

// Extractor reads the text of a DOCX file. A DOCX file is a ZIP container
// with the document body stored as XML in word/document.xml.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the document's paragraphs joined by newlines.
func (e *Extractor) Extract(_ context.Context, name string, data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", docsum.Errorf(docsum.EINVALID, "%s is not a valid DOCX file", name)
	}

	body, err := readPart(zr, documentPart)
	if err != nil {
		return "", docsum.Errorf(docsum.EINVALID, "%s has no document body: %v", name, err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return "", docsum.Errorf(docsum.EINVALID, "%s has a malformed document body: %v", name, err)
	}

	root := doc.Root()
	if root == nil {
		return "", docsum.Errorf(docsum.EINVALID, "%s has an empty document body", name)
	}

	var paragraphs []string
	collectParagraphs(root, &paragraphs)
	return strings.Join(paragraphs, "\n"), nil
}

// readPart returns the contents of a named archive member.
func readPart(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, docsum.Errorf(docsum.ENOTFOUND, "missing %s", name)
}

// collectParagraphs walks the element tree appending the text of each
// w:p paragraph element. Runs inside a paragraph (w:t elements) are
// concatenated; tabs and line breaks become whitespace.
func collectParagraphs(el *etree.Element, out *[]string) {
	if el.Tag == "p" {
		var b strings.Builder
		collectRunText(el, &b)
		*out = append(*out, b.String())
		return
	}
	for _, child := range el.ChildElements() {
		collectParagraphs(child, out)
	}
}

func collectRunText(el *etree.Element, b *strings.Builder) {
	switch el.Tag {
	case "t":
		b.WriteString(el.Text())
		return
	case "tab":
		b.WriteString("\t")
		return
	case "br":
		b.WriteString("\n")
		return
	}
	for _, child := range el.ChildElements() {
		collectRunText(child, b)
	}
}
