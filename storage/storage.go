// Package storage reads and writes parsed documents, the parser output that
// is analyzed later. Analyses themselves are never stored.
package storage

import (
	sent "github.com/revelaction/cadete/sentence"
)

// DocReader defines read operations for document storage
type DocReader interface {
	// List returns the metadata (Id, Title, Labels) of documents.
	// Content (Tokens) is not loaded.
	List() ([]sent.Doc, error)

	// Read returns a document by ID
	Read(id int) (sent.Doc, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document and its sentences to storage
	Write(doc sent.Doc) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}

// Sentences returns a Doc with only the sentences of doc in [start,
// start+count). A negative count means up to the end.
func Sentences(doc sent.Doc, start, count int) sent.Doc {
	if start < 0 {
		start = 0
	}

	if start >= len(doc.Tokens) {
		doc.Tokens = nil
		return doc
	}

	tokens := doc.Tokens[start:]
	if count >= 0 && count < len(tokens) {
		tokens = tokens[:count]
	}

	doc.Tokens = tokens
	return doc
}
