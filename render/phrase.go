package render

import (
	"strings"

	"github.com/revelaction/cadete/syntax"
)

// Phrase renders the tokens of p in ascending index order, separated by one
// space. A punctuation token takes no separator and attaches to the previous
// token.
func Phrase(p syntax.Phrase) string {
	var str strings.Builder
	for i, t := range p.Sorted() {
		if i > 0 && t.Pos != syntax.PosPunctuation {
			str.WriteString(" ")
		}

		str.WriteString(t.Text)
	}

	return str.String()
}

// Optional renders p, or none when the phrase is absent.
func Optional(p syntax.Phrase, none string) string {
	if p == nil {
		return none
	}

	return Phrase(p)
}
