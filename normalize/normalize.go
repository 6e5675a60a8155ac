// Package normalize converts the parser output into syntax sentences.
package normalize

import (
	"fmt"

	sent "github.com/revelaction/cadete/sentence"
	"github.com/revelaction/cadete/syntax"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Result is the outcome of normalizing one parser sentence. A malformed
// sentence has a nil Sentence and a non nil Err; it does not affect its
// siblings.
type Result struct {
	Sentence *syntax.Sentence
	Err      error
}

// Doc normalizes every sentence of doc, in order.
func Doc(doc sent.Doc) []Result {
	results := make([]Result, 0, len(doc.Tokens))
	for _, tokens := range doc.Tokens {
		s, err := Sentence(tokens)
		results = append(results, Result{Sentence: s, Err: err})
	}

	return results
}

// Sentence assigns sequential indices to tokens in surface order and
// resolves each head Id to the index of the head inside the same sentence.
// The token that is its own head becomes the root.
func Sentence(tokens []sent.Token) (*syntax.Sentence, error) {
	// Caser keeps state, one per call
	lower := cases.Lower(language.English)

	ids := make(map[int]int, len(tokens))
	for i, t := range tokens {
		if _, ok := ids[t.Id]; ok {
			return nil, fmt.Errorf("%w: duplicated token id %d", syntax.ErrMalformedTree, t.Id)
		}
		ids[t.Id] = i
	}

	normalized := make([]*syntax.Token, len(tokens))
	for i, t := range tokens {
		token := &syntax.Token{
			Index: i,
			Text:  lower.String(t.Text),
			Pos:   t.Pos,
			Tag:   t.Tag,
			Lemma: t.Lemma,
		}

		if !t.IsRoot() {
			head, ok := ids[t.Head]
			if !ok {
				return nil, fmt.Errorf("%w: token %d has head %d outside the sentence", syntax.ErrMalformedTree, i, t.Head)
			}

			token.Dep = &syntax.Dependency{Rel: t.Dep, Head: head}
		}

		normalized[i] = token
	}

	s := syntax.NewSentence(normalized)
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}
