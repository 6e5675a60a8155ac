package render

import (
	"fmt"

	"github.com/revelaction/cadete/analyze"
	"github.com/revelaction/cadete/syntax"
)

// SentenceView is the serializable form of one analyzed sentence.
type SentenceView struct {
	Index  int         `json:"index" yaml:"index"`
	Text   string      `json:"text,omitempty" yaml:"text,omitempty"`
	Type   string      `json:"type,omitempty" yaml:"type,omitempty"`
	Error  string      `json:"error,omitempty" yaml:"error,omitempty"`
	Tokens []TokenView `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	SVOs   []SVOView   `json:"svos" yaml:"svos"`
}

type TokenView struct {
	Index int    `json:"index" yaml:"index"`
	Text  string `json:"text" yaml:"text"`
	Pos   string `json:"pos" yaml:"pos"`
	Tag   string `json:"tag" yaml:"tag"`
	Lemma string `json:"lemma" yaml:"lemma"`
	Dep   string `json:"dep,omitempty" yaml:"dep,omitempty"`
	Head  *int   `json:"head" yaml:"head"`
}

// SVOView holds the rendered phrases. Absent phrases are nil.
type SVOView struct {
	Subject        string  `json:"subject" yaml:"subject"`
	Verb           *string `json:"verb" yaml:"verb"`
	DirectObject   *string `json:"direct_object" yaml:"direct_object"`
	IndirectObject *string `json:"indirect_object" yaml:"indirect_object"`
}

// Views converts analysis results. Tokens are included when withTokens is
// set.
func Views(results []analyze.Result, withTokens bool) []SentenceView {
	views := make([]SentenceView, 0, len(results))
	for _, res := range results {
		views = append(views, View(res, withTokens))
	}

	return views
}

func View(res analyze.Result, withTokens bool) SentenceView {
	v := SentenceView{Index: res.Index, SVOs: []SVOView{}}
	if res.Err != nil {
		v.Error = res.Err.Error()
	}

	s := res.Sentence
	if s == nil {
		return v
	}

	v.Text = Phrase(s.Phrase())
	v.Type = s.Type.String()

	if withTokens {
		for _, t := range s.Tokens {
			v.Tokens = append(v.Tokens, tokenView(t))
		}
	}

	for _, svo := range s.SVOs {
		v.SVOs = append(v.SVOs, SVOView{
			Subject:        Phrase(svo.Subject),
			Verb:           optional(svo.Verb),
			DirectObject:   optional(svo.DirectObject),
			IndirectObject: optional(svo.IndirectObject),
		})
	}

	return v
}

func tokenView(t *syntax.Token) TokenView {
	tv := TokenView{Index: t.Index, Text: t.Text, Pos: t.Pos, Tag: t.Tag, Lemma: t.Lemma}
	if t.Dep != nil {
		head := t.Dep.Head
		tv.Dep = t.Dep.Rel
		tv.Head = &head
	}

	return tv
}

func optional(p syntax.Phrase) *string {
	if p == nil {
		return nil
	}

	s := Phrase(p)
	return &s
}

// dependency renders the edge of t like (nsubj, 2), or None for the root.
func dependency(t *syntax.Token) string {
	if t.Dep == nil {
		return none
	}

	return fmt.Sprintf("(%s, %d)", t.Dep.Rel, t.Dep.Head)
}
