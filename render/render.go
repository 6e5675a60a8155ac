package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/cadete/analyze"
	"github.com/revelaction/cadete/syntax"
)

const (
	Defaultformat = "text"

	none = "None"
)

var (
	Red       = "\033[1;31m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{"text", "json", "yaml"}
}

// Renderer writes analysis results.
type Renderer interface {
	Render(results []analyze.Result) error
}

// Options selects and configures a Renderer.
type Options struct {
	// Format determines the output
	//
	// text: human readable tree of sentences and SVOs
	// json: array of sentence views
	// yaml: sequence of sentence views
	Format string

	HasColor bool

	// HasTokens adds the token table (POS, tag, lemma, dependency) of
	// each sentence.
	HasTokens bool
}

// New returns the Renderer for opts.Format, writing to w.
func New(w io.Writer, opts Options) (Renderer, error) {
	switch opts.Format {
	case "", Defaultformat:
		return &TextRenderer{W: w, HasColor: opts.HasColor, HasTokens: opts.HasTokens}, nil
	case "json":
		return &JSONRenderer{W: w, HasTokens: opts.HasTokens}, nil
	case "yaml":
		return &YAMLRenderer{W: w, HasTokens: opts.HasTokens}, nil
	}

	return nil, fmt.Errorf("unsupported format %q, allowed values are %s", opts.Format, strings.Join(SupportedFormats(), ", "))
}

// NextFormat sets the Format option to a different one, following the
// SupportedFormats() order.
func (o *Options) NextFormat() {
	supported := SupportedFormats()
	for i, format := range supported {
		if format == o.Format {
			o.Format = supported[(i+1)%len(supported)]
			return
		}
	}

	o.Format = supported[0]
}

// NextTokens toggles the token table.
func (o *Options) NextTokens() {
	o.HasTokens = !o.HasTokens
}

// TextRenderer writes a human readable analysis.
type TextRenderer struct {
	W io.Writer

	HasColor  bool
	HasTokens bool
}

func (r *TextRenderer) Render(results []analyze.Result) error {
	var str strings.Builder
	for _, res := range results {
		r.result(&str, res)
	}

	_, err := io.WriteString(r.W, str.String())
	return err
}

func (r *TextRenderer) result(str *strings.Builder, res analyze.Result) {
	if res.Err != nil {
		text := ""
		if res.Sentence != nil {
			text = Phrase(res.Sentence.Phrase()) + " "
		}
		fmt.Fprintf(str, "❌ %d %s%s\n\n", res.Index, text, r.color(Red, res.Err.Error()))
		return
	}

	s := res.Sentence
	fmt.Fprintf(str, "✍  %d %s\n", res.Index, Phrase(s.Phrase()))
	fmt.Fprintf(str, "   Type: %s\n", r.color(Yellow256, s.Type.String()))

	if r.HasTokens {
		str.WriteString("\n")
		for _, t := range s.Tokens {
			fmt.Fprintf(str, "   %20q %15q %8s %8s %6d %s\n", t.Text, t.Lemma, t.Pos, t.Tag, t.Index, dependency(t))
		}
	}

	for i, svo := range s.SVOs {
		fmt.Fprintf(str, "\n   SVO %d\n", i+1)
		fmt.Fprintf(str, "      Subject: %s\n", r.color(Green256, Phrase(svo.Subject)))
		fmt.Fprintf(str, "      Verb: %s\n", r.phrase(svo.Verb))
		fmt.Fprintf(str, "      Direct object: %s\n", r.phrase(svo.DirectObject))
		fmt.Fprintf(str, "      Indirect object: %s\n", r.phrase(svo.IndirectObject))
	}

	str.WriteString("\n")
}

func (r *TextRenderer) phrase(p syntax.Phrase) string {
	if p == nil {
		return r.color(Grey256, none)
	}

	return r.color(Green256, Phrase(p))
}

func (r *TextRenderer) color(c, text string) string {
	if !r.HasColor {
		return text
	}

	return c + text + Off
}
