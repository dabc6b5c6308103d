// Package extract locates raw table candidates in PDF statements. Several
// independent strategies run against the same document; each may fail on its
// own without aborting the others, and the extractor returns whatever the
// surviving strategies produced.
package extract

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// Document is an open PDF statement shared by all extraction strategies.
type Document struct {
	Path string

	file   *os.File
	reader *pdf.Reader
}

// Open parses the PDF at path. The caller owns the handle and must Close it.
func Open(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf %q: %w", path, err)
	}
	return &Document{Path: path, file: f, reader: r}, nil
}

// Close releases the underlying file.
func (d *Document) Close() error {
	return d.file.Close()
}

// NumPages returns the page count.
func (d *Document) NumPages() int {
	return d.reader.NumPage()
}

// Page returns the 1-based page. The returned page may be null for damaged
// documents; strategies check with p.V.IsNull().
func (d *Document) Page(n int) pdf.Page {
	return d.reader.Page(n)
}
