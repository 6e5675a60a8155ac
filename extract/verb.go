package extract

import "github.com/revelaction/cadete/syntax"

// ObjectRelations are stripped from the verb phrase; they belong to the
// objects.
var ObjectRelations = []string{syntax.RelDirectObject, syntax.RelIndirectObject, syntax.RelDative}

// Verb resolves the verb governing the subject phrase: the nearest VERB
// ancestor of the subject token, plus its rightward complements that are not
// objects. It returns nil when the subject has no verb ancestor.
func Verb(s *syntax.Sentence, subject syntax.Phrase) (syntax.Phrase, error) {
	// the phrase is sorted, the anchor is not necessarily first
	anchor := subject.First((*syntax.Token).IsSubject)
	if anchor == nil {
		return nil, nil
	}

	verb, err := s.AscendToPOS(anchor, syntax.PosVerb)
	if err != nil {
		return nil, err
	}

	if verb == nil {
		return nil, nil
	}

	complements, err := s.ComplementDescendants(verb, ObjectRelations)
	if err != nil {
		return nil, err
	}

	phrase := append(syntax.Phrase{verb}, complements...)
	return phrase.Sorted(), nil
}
