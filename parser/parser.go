// Package parser provides the parsing capability the analyzer depends on:
// turning text into sentences of POS tagged tokens with dependency edges.
package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	sent "github.com/revelaction/cadete/sentence"
)

// Parser tokenizes, tags and dependency parses text. Implementations must be
// safe to reuse across calls.
type Parser interface {
	Parse(ctx context.Context, text string) (sent.Doc, error)
}

// Func adapts a function to the Parser interface.
type Func func(ctx context.Context, text string) (sent.Doc, error)

func (f Func) Parse(ctx context.Context, text string) (sent.Doc, error) {
	return f(ctx, text)
}

// Static always returns the same Doc. Used for already parsed documents.
type Static sent.Doc

func (s Static) Parse(ctx context.Context, text string) (sent.Doc, error) {
	return sent.Doc(s), nil
}

// Decode reads a Doc in the segrob JSON token format.
func Decode(r io.Reader) (sent.Doc, error) {
	var doc sent.Doc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return sent.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}

	return doc, nil
}
