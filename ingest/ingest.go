// Package ingest turns uploaded files into documents ready for
// summarization. It routes files to format-specific text extractors,
// expands ZIP archives, and enforces the batch limits of the host
// application.
package ingest

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docsum"
	"github.com/fwojciec/docsum/bloom"
)

// Batch and archive limits, matching the host application's upload rules.
const (
	// DefaultMaxDocuments bounds how many documents one batch may contain.
	DefaultMaxDocuments = 3

	// DefaultMaxMemberSize is the largest archive member that will be
	// expanded (10 MiB).
	DefaultMaxMemberSize = 10 * 1024 * 1024

	// expectedArchiveMembers sizes the deduplication Bloom filter.
	expectedArchiveMembers = 10000
	// memberFalsePositiveRate is the acceptable false positive rate for
	// archive member deduplication.
	memberFalsePositiveRate = 0.01
)

// File is an uploaded file before extraction.
type File struct {
	Name string
	Data []byte
}

// Ingestor converts uploaded files into documents.
type Ingestor struct {
	// Extractors maps each supported format to its text extractor.
	Extractors map[docsum.Format]docsum.TextExtractor

	// MaxDocuments bounds the batch size after archive expansion.
	// Defaults to DefaultMaxDocuments.
	MaxDocuments int

	// MaxMemberSize bounds the size of expanded archive members.
	// Defaults to DefaultMaxMemberSize.
	MaxMemberSize int64
}

// Ingest expands archives, extracts text, and returns the resulting
// documents along with the names of files that were skipped (unsupported
// formats, oversized or duplicate archive members).
//
// Returns EINVALID if the batch holds fewer than one or more than
// MaxDocuments documents after expansion.
func (ing *Ingestor) Ingest(ctx context.Context, files []File) ([]*docsum.Document, []string, error) {
	maxDocs := ing.MaxDocuments
	if maxDocs <= 0 {
		maxDocs = DefaultMaxDocuments
	}
	maxMember := ing.MaxMemberSize
	if maxMember <= 0 {
		maxMember = DefaultMaxMemberSize
	}

	var pending []File
	var skipped []string

	seen := bloom.NewFilter(expectedArchiveMembers, memberFalsePositiveRate)

	for _, f := range files {
		switch docsum.DetectFormat(f.Name) {
		case docsum.FormatZip:
			members, memberSkipped, err := expandArchive(f, maxMember, seen)
			if err != nil {
				return nil, nil, err
			}
			pending = append(pending, members...)
			skipped = append(skipped, memberSkipped...)
		case docsum.FormatUnknown:
			skipped = append(skipped, f.Name)
		default:
			pending = append(pending, f)
		}
	}

	if len(pending) < 1 || len(pending) > maxDocs {
		return nil, nil, docsum.Errorf(docsum.EINVALID,
			"found %d documents; upload between 1 and %d supported documents", len(pending), maxDocs)
	}

	docs := make([]*docsum.Document, 0, len(pending))
	for _, f := range pending {
		format := docsum.DetectFormat(f.Name)

		extractor, ok := ing.Extractors[format]
		if !ok {
			return nil, nil, docsum.Errorf(docsum.EINTERNAL, "no extractor registered for format %q", format)
		}

		content, err := extractor.Extract(ctx, f.Name, f.Data)
		if err != nil {
			return nil, nil, err
		}

		docs = append(docs, &docsum.Document{
			Name:    f.Name,
			Format:  format,
			Content: content,
			Size:    int64(len(f.Data)),
		})
	}

	return docs, skipped, nil
}

// expandArchive extracts supported members of a ZIP archive. Members are
// deduplicated by content hash: an archive that contains the same file
// twice yields it once.
func expandArchive(f File, maxMember int64, seen *bloom.Filter) (members []File, skipped []string, err error) {
	zr, err := zip.NewReader(bytes.NewReader(f.Data), int64(len(f.Data)))
	if err != nil {
		return nil, nil, docsum.Errorf(docsum.EINVALID, "the uploaded ZIP file %q is corrupted", f.Name)
	}

	for _, member := range zr.File {
		if member.FileInfo().IsDir() {
			continue
		}

		name := path.Base(member.Name)
		format := docsum.DetectFormat(name)
		if !format.Valid() {
			skipped = append(skipped, memberRef(f.Name, member.Name))
			continue
		}

		if int64(member.UncompressedSize64) > maxMember {
			skipped = append(skipped, memberRef(f.Name, member.Name))
			continue
		}

		rc, err := member.Open()
		if err != nil {
			return nil, nil, docsum.Errorf(docsum.EINVALID,
				"could not read %s: %v", memberRef(f.Name, member.Name), err)
		}
		data, err := io.ReadAll(io.LimitReader(rc, maxMember+1))
		rc.Close()
		if err != nil {
			return nil, nil, docsum.Errorf(docsum.EINVALID,
				"could not read %s: %v", memberRef(f.Name, member.Name), err)
		}
		if int64(len(data)) > maxMember {
			skipped = append(skipped, memberRef(f.Name, member.Name))
			continue
		}

		hash := fmt.Sprintf("%016x", xxhash.Sum64(data))
		if seen.Test(hash) {
			skipped = append(skipped, memberRef(f.Name, member.Name))
			continue
		}
		seen.Add(hash)

		members = append(members, File{Name: name, Data: data})
	}

	return members, skipped, nil
}

func memberRef(archive, member string) string {
	return archive + ":" + member
}
