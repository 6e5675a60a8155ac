package extract

import (
	"testing"

	"github.com/revelaction/cadete/syntax"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		s    *syntax.Sentence
		want syntax.Type
	}{
		{
			name: "if",
			s: newSentence(
				tk{"if", "ADP", "mark", 2},
				tk{"it", "PRON", "nsubj", 2},
				tk{"rains", "VERB", "ROOT", -1},
			),
			want: syntax.Conditional,
		},
		{
			name: "in case",
			s: newSentence(
				tk{"in", "ADP", "prep", 3},
				tk{"case", "NOUN", "pobj", 0},
				tk{"it", "PRON", "nsubj", 3},
				tk{"fails", "VERB", "ROOT", -1},
			),
			want: syntax.Conditional,
		},
		{
			name: "if not adposition",
			s: newSentence(
				tk{"if", "SCONJ", "mark", 2},
				tk{"it", "PRON", "nsubj", 2},
				tk{"rains", "VERB", "ROOT", -1},
			),
			want: syntax.Declarative,
		},
		{
			name: "adposition without trigger",
			s: newSentence(
				tk{"on", "ADP", "prep", 2},
				tk{"monday", "PROPN", "pobj", 0},
				tk{"rains", "VERB", "ROOT", -1},
			),
			want: syntax.Declarative,
		},
		{
			name: "declarative",
			s: newSentence(
				tk{"he", "PRON", "nsubj", 1},
				tk{"runs", "VERB", "ROOT", -1},
			),
			want: syntax.Declarative,
		},
		{
			name: "one token",
			s:    newSentence(tk{"if", "ADP", "ROOT", -1}),
			want: syntax.Declarative,
		},
		{
			name: "empty",
			s:    syntax.NewSentence(nil),
			want: syntax.Declarative,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Classify(c.s); got != c.want {
				t.Errorf("expected %s, got %s", c.want, got)
			}
		})
	}
}
