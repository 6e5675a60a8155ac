package extract

import "github.com/revelaction/cadete/syntax"

// Assemble builds one SVO per subject of the sentence. The verb and object
// fields are nil when they can not be resolved.
func Assemble(s *syntax.Sentence) ([]syntax.SVO, error) {
	subjects, err := Subjects(s)
	if err != nil {
		return nil, err
	}

	svos := make([]syntax.SVO, 0, len(subjects))
	for _, subject := range subjects {
		svo := syntax.SVO{Subject: subject}

		svo.Verb, err = Verb(s, subject)
		if err != nil {
			return nil, err
		}

		if svo.Verb != nil {
			svo.DirectObject, err = Objects(s, svo.Verb, DirectObjectRelations)
			if err != nil {
				return nil, err
			}

			svo.IndirectObject, err = Objects(s, svo.Verb, IndirectObjectRelations)
			if err != nil {
				return nil, err
			}
		}

		svos = append(svos, svo)
	}

	return svos, nil
}

// Sentence classifies s and, when declarative, fills its SVOs.
func Sentence(s *syntax.Sentence) error {
	s.Type = Classify(s)
	if s.Type != syntax.Declarative {
		return nil
	}

	svos, err := Assemble(s)
	if err != nil {
		return err
	}

	s.SVOs = svos
	return nil
}
