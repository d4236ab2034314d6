package tei

import (
	"fmt"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// newDocument returns an empty document that decodes any encoding declared
// in the prolog (ISO-8859-1, windows-1252, ...) to UTF-8.
func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	return doc
}

// ParseFile reads and parses the XML document at path. No schema
// validation is performed.
func ParseFile(path string) (*etree.Document, error) {
	doc := newDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoRoot, path)
	}
	return doc, nil
}

// ParseBytes parses an in-memory XML document.
func ParseBytes(data []byte) (*etree.Document, error) {
	doc := newDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	if doc.Root() == nil {
		return nil, ErrNoRoot
	}
	return doc, nil
}
