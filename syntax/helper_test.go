package syntax

// tk describes a token for tests. head -1 marks the root.
type tk struct {
	text string
	pos  string
	rel  string
	head int
}

func newSentence(tks ...tk) *Sentence {
	tokens := make([]*Token, len(tks))
	for i, d := range tks {
		t := &Token{Index: i, Text: d.text, Pos: d.pos, Lemma: d.text}
		if d.head >= 0 {
			t.Dep = &Dependency{Rel: d.rel, Head: d.head}
		}
		tokens[i] = t
	}

	return NewSentence(tokens)
}

func texts(p Phrase) []string {
	s := []string{}
	for _, t := range p {
		s = append(s, t.Text)
	}

	return s
}

// the cat eats fresh fish .
func catSentence() *Sentence {
	return newSentence(
		tk{"the", "DET", "det", 1},
		tk{"cat", "NOUN", "nsubj", 2},
		tk{"eats", "VERB", "ROOT", -1},
		tk{"fresh", "ADJ", "amod", 4},
		tk{"fish", "NOUN", "dobj", 2},
		tk{".", "PUNCT", "punct", 2},
	)
}
