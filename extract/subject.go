// Package extract finds the Subject-Verb-Object structures of a normalized
// sentence by walking its dependency tree.
package extract

import "github.com/revelaction/cadete/syntax"

// Subjects returns one phrase per nominal subject of the sentence: the
// subject token and its whole subtree, in index order. Coordinated subjects
// are not merged.
func Subjects(s *syntax.Sentence) ([]syntax.Phrase, error) {
	var subjects []syntax.Phrase
	for _, t := range s.Tokens {
		if !t.IsSubject() {
			continue
		}

		descendants, err := s.Descendants(t)
		if err != nil {
			return nil, err
		}

		phrase := append(syntax.Phrase{t}, descendants...)
		subjects = append(subjects, phrase.Sorted())
	}

	return subjects, nil
}
