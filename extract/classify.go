package extract

import "github.com/revelaction/cadete/syntax"

// Classify labels a sentence Conditional when it opens with an adposition
// that is "if", or that is followed by "case" (as in "in case").
func Classify(s *syntax.Sentence) syntax.Type {
	if s.Len() < 2 {
		return syntax.Declarative
	}

	first, second := s.Tokens[0], s.Tokens[1]
	if first.Pos != syntax.PosAdposition {
		return syntax.Declarative
	}

	if first.Text == "if" || second.Text == "case" {
		return syntax.Conditional
	}

	return syntax.Declarative
}
