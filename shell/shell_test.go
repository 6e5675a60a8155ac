package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/revelaction/cadete/analyze"
	"github.com/revelaction/cadete/parser"
	"github.com/revelaction/cadete/render"
	sent "github.com/revelaction/cadete/sentence"
)

func TestContinue(t *testing.T) {
	for _, a := range []string{"y", "Yes", " s ", "SIM"} {
		if !Continue(a) {
			t.Errorf("%q should continue", a)
		}
	}

	for _, a := range []string{"", "n", "no", "quit"} {
		if Continue(a) {
			t.Errorf("%q should stop", a)
		}
	}
}

func TestAnalyze(t *testing.T) {
	doc := sent.Doc{Tokens: [][]sent.Token{{
		{Id: 0, Head: 1, Dep: "nsubj", Pos: "PRON", Text: "He", Lemma: "he"},
		{Id: 1, Head: 1, Dep: "ROOT", Pos: "VERB", Text: "runs", Lemma: "run"},
	}}}

	var out bytes.Buffer
	h := NewHandler(analyze.New(parser.Static(doc)), &render.Options{Format: "text"}, &out)

	if err := h.Analyze(context.Background(), "He runs"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "Subject: he") || !strings.Contains(out.String(), "Verb: runs") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestAnalyzeBadFormat(t *testing.T) {
	var out bytes.Buffer
	h := NewHandler(analyze.New(parser.Static(sent.Doc{})), &render.Options{Format: "xml"}, &out)

	if err := h.Analyze(context.Background(), "text"); err == nil {
		t.Errorf("expected error")
	}
}

func TestSuggest(t *testing.T) {
	h := &Handler{history: []string{
		"the system shall log users",
		"the cat eats fish",
		"the system shall log users",
	}}

	s := h.suggest("the sys")
	if len(s) != 1 || s[0].Text != "the system shall log users" {
		t.Errorf("unexpected suggestions %v", s)
	}

	if len(h.suggest("t")) != 0 {
		t.Errorf("no suggestions for one character")
	}

	if len(h.suggest("the cat eats fish")) != 0 {
		t.Errorf("no suggestion for a complete entry")
	}
}
