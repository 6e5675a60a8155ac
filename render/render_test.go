package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/revelaction/cadete/analyze"
	"github.com/revelaction/cadete/syntax"

	"gopkg.in/yaml.v3"
)

func analyzed() []analyze.Result {
	tokens := []*syntax.Token{
		{Index: 0, Text: "the", Pos: "DET", Tag: "DT", Lemma: "the", Dep: &syntax.Dependency{Rel: "det", Head: 1}},
		{Index: 1, Text: "cat", Pos: "NOUN", Tag: "NN", Lemma: "cat", Dep: &syntax.Dependency{Rel: "nsubj", Head: 2}},
		{Index: 2, Text: "eats", Pos: "VERB", Tag: "VBZ", Lemma: "eat"},
		{Index: 3, Text: "fish", Pos: "NOUN", Tag: "NN", Lemma: "fish", Dep: &syntax.Dependency{Rel: "dobj", Head: 2}},
		{Index: 4, Text: ".", Pos: "PUNCT", Tag: ".", Lemma: ".", Dep: &syntax.Dependency{Rel: "punct", Head: 2}},
	}
	s := syntax.NewSentence(tokens)
	s.SVOs = []syntax.SVO{{
		Subject:      syntax.Phrase{tokens[0], tokens[1]},
		Verb:         syntax.Phrase{tokens[2]},
		DirectObject: syntax.Phrase{tokens[3]},
	}}

	return []analyze.Result{
		{Index: 0, Sentence: s},
		{Index: 1, Err: syntax.ErrMalformedTree},
	}
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := &TextRenderer{W: &buf}
	if err := r.Render(analyzed()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"✍  0 the cat eats fish.\n",
		"Type: Declarative",
		"Subject: the cat\n",
		"Verb: eats\n",
		"Direct object: fish\n",
		"Indirect object: None\n",
		"❌ 1 malformed dependency tree",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "\033[") {
		t.Errorf("no color expected")
	}
}

func TestTextRendererTokens(t *testing.T) {
	var buf bytes.Buffer
	r := &TextRenderer{W: &buf, HasTokens: true}
	if err := r.Render(analyzed()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), "(nsubj, 2)") {
		t.Errorf("token table missing:\n%s", buf.String())
	}
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONRenderer(&buf).Render(analyzed()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var views []SentenceView
	if err := json.Unmarshal(buf.Bytes(), &views); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}

	svo := views[0].SVOs[0]
	if svo.Subject != "the cat" || svo.Verb == nil || *svo.Verb != "eats" {
		t.Errorf("unexpected svo %+v", svo)
	}

	if svo.IndirectObject != nil {
		t.Errorf("indirect object should be null")
	}

	if views[1].Error == "" || len(views[1].SVOs) != 0 {
		t.Errorf("unexpected malformed view %+v", views[1])
	}
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewYAMLRenderer(&buf)
	r.HasTokens = true
	if err := r.Render(analyzed()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var views []SentenceView
	if err := yaml.Unmarshal(buf.Bytes(), &views); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if views[0].Type != "Declarative" || len(views[0].Tokens) != 5 {
		t.Errorf("unexpected view %+v", views[0])
	}

	if views[0].Tokens[2].Head != nil {
		t.Errorf("root has no head")
	}
}

func TestNew(t *testing.T) {
	for _, f := range SupportedFormats() {
		if _, err := New(&bytes.Buffer{}, Options{Format: f}); err != nil {
			t.Errorf("format %s: %v", f, err)
		}
	}

	if _, err := New(&bytes.Buffer{}, Options{Format: "xml"}); err == nil {
		t.Errorf("expected error for unsupported format")
	}
}

func TestNextFormat(t *testing.T) {
	o := Options{Format: "text"}
	o.NextFormat()
	if o.Format != "json" {
		t.Errorf("got %s", o.Format)
	}

	o.NextFormat()
	o.NextFormat()
	if o.Format != "text" {
		t.Errorf("expected wrap around, got %s", o.Format)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestTextRendererWriteError(t *testing.T) {
	r := &TextRenderer{W: failingWriter{}}
	if err := r.Render(analyzed()); err == nil {
		t.Errorf("expected write error")
	}
}
