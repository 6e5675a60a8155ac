package extract

import "github.com/revelaction/cadete/syntax"

var (
	// DirectObjectRelations select the direct object of a verb.
	DirectObjectRelations = []string{syntax.RelDirectObject}

	// IndirectObjectRelations select the indirect object of a verb.
	IndirectObjectRelations = []string{syntax.RelIndirectObject, syntax.RelDative}
)

// Objects returns the object of the verb phrase for the given relations. All
// matching object tokens at or right of the head verb, with their subtrees,
// are merged into one phrase. It returns nil when nothing matches.
func Objects(s *syntax.Sentence, verb syntax.Phrase, relations []string) (syntax.Phrase, error) {
	head := verb.First(func(t *syntax.Token) bool {
		return t.Pos == syntax.PosVerb
	})
	if head == nil {
		return nil, nil
	}

	candidates, err := s.RightwardDescendants(head)
	if err != nil {
		return nil, err
	}

	var objects syntax.Phrase
	for _, t := range candidates {
		if t.HasRel(relations) {
			objects = append(objects, t)
		}
	}

	if len(objects) == 0 {
		return nil, nil
	}

	phrase := append(syntax.Phrase{}, objects...)
	for _, o := range objects {
		descendants, err := s.Descendants(o)
		if err != nil {
			return nil, err
		}

		for _, d := range descendants {
			if !phrase.Contains(d.Index) {
				phrase = append(phrase, d)
			}
		}
	}

	return phrase.Sorted(), nil
}
