package extract

import (
	"strings"

	"github.com/revelaction/cadete/syntax"
)

// tk describes a token for tests. head -1 marks the root.
type tk struct {
	text string
	pos  string
	rel  string
	head int
}

func newSentence(tks ...tk) *syntax.Sentence {
	tokens := make([]*syntax.Token, len(tks))
	for i, d := range tks {
		t := &syntax.Token{Index: i, Text: d.text, Pos: d.pos, Lemma: d.text}
		if d.head >= 0 {
			t.Dep = &syntax.Dependency{Rel: d.rel, Head: d.head}
		}
		tokens[i] = t
	}

	return syntax.NewSentence(tokens)
}

// words joins the token texts of p, or returns "<nil>" for an absent phrase.
func words(p syntax.Phrase) string {
	if p == nil {
		return "<nil>"
	}

	s := make([]string, len(p))
	for i, t := range p {
		s[i] = t.Text
	}

	return strings.Join(s, " ")
}
