// Package analyze runs the extraction pipeline on the output of a parser.
package analyze

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/revelaction/cadete/extract"
	"github.com/revelaction/cadete/normalize"
	"github.com/revelaction/cadete/parser"
	sent "github.com/revelaction/cadete/sentence"
	"github.com/revelaction/cadete/syntax"

	"github.com/rs/zerolog"
)

// ErrInvalidInput is returned when the value to analyze is not text.
var ErrInvalidInput = errors.New("invalid input: not text")

// Result is the analysis of one sentence. When Err is not nil (a malformed
// dependency tree) Sentence may be nil, and the other results are still
// valid.
type Result struct {
	// Index is the position of the sentence in the analyzed text.
	Index    int
	Sentence *syntax.Sentence
	Err      error
}

// Analyzer classifies sentences and extracts their SVOs. The parser is
// supplied by the caller, who decides its lifetime.
type Analyzer struct {
	parser parser.Parser
	logger zerolog.Logger
}

type Option func(*Analyzer)

// WithLogger sets the logger used to report malformed sentences.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = l
	}
}

func New(p parser.Parser, opts ...Option) *Analyzer {
	a := &Analyzer{
		parser: p,
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Analyze parses text with the parser and analyzes every sentence.
func (a *Analyzer) Analyze(ctx context.Context, text string) ([]Result, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidInput
	}

	if a.parser == nil {
		return nil, errors.New("no parser configured")
	}

	doc, err := a.parser.Parse(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	return a.Doc(doc), nil
}

// Doc analyzes an already parsed document. A malformed sentence gets its
// own error and does not stop the others.
func (a *Analyzer) Doc(doc sent.Doc) []Result {
	return a.DocAt(doc, 0)
}

// DocAt is Doc for a window of a larger document whose first sentence has
// index offset. Result indices and log lines use the document index.
func (a *Analyzer) DocAt(doc sent.Doc, offset int) []Result {
	normalized := normalize.Doc(doc)

	results := make([]Result, 0, len(normalized))
	malformed := 0
	for i, n := range normalized {
		res := Result{Index: offset + i, Sentence: n.Sentence, Err: n.Err}
		if res.Err == nil {
			res.Err = extract.Sentence(n.Sentence)
		}

		if res.Err != nil {
			malformed++
			a.logger.Warn().Err(res.Err).Int("sentence", res.Index).Msg("Skipping malformed sentence")
		}

		results = append(results, res)
	}

	a.logger.Debug().
		Int("doc", doc.Id).
		Int("sentences", len(results)).
		Int("malformed", malformed).
		Msg("Analyzed doc")

	return results
}
