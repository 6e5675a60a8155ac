// Package shell is the interactive loop: read a specification, analyze it,
// print the result, repeat until the operator declines.
package shell

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/cadete/analyze"
	"github.com/revelaction/cadete/render"

	"github.com/c-bata/go-prompt"
)

const (
	quit = "quit"

	maxSuggestions = 12
)

type Handler struct {
	Analyzer *analyze.Analyzer
	Options  *render.Options
	Out      io.Writer

	history []string
}

func NewHandler(a *analyze.Analyzer, opts *render.Options, out io.Writer) *Handler {
	return &Handler{
		Analyzer: a,
		Options:  opts,
		Out:      out,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	fmt.Fprintln(h.Out, "🔑 Ctrl+F: next Format, Ctrl+T: toggle tokens, 🔧 quit")

	for {
		in := prompt.Input("      📝 ", h.completer,
			prompt.OptionTitle("cadete"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(maxSuggestions),
			prompt.OptionHistory(h.history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Options.NextFormat()
					fmt.Fprintln(h.Out, "Format set to: "+h.Options.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlT,
				Fn: func(buf *prompt.Buffer) {
					h.Options.NextTokens()
					fmt.Fprintf(h.Out, "Tokens set to %t\n", h.Options.HasTokens)
				}}),
		)

		in = strings.TrimSpace(in)
		if in == quit {
			return nil
		}

		if in == "" {
			continue
		}

		h.history = append(h.history, in)

		if err := h.Analyze(ctx, in); err != nil {
			fmt.Fprintf(h.Out, "❌ %s\n", err)
		}

		answer := prompt.Input("      ❓ Analyze another specification? [y/n] ", noSuggestions,
			prompt.OptionPrefixTextColor(prompt.Yellow),
		)
		if !Continue(answer) {
			return nil
		}
	}
}

// Analyze analyzes text and renders it with the current options.
func (h *Handler) Analyze(ctx context.Context, text string) error {
	results, err := h.Analyzer.Analyze(ctx, text)
	if err != nil {
		return err
	}

	r, err := render.New(h.Out, *h.Options)
	if err != nil {
		return err
	}

	return r.Render(results)
}

// Continue reports whether the answer to the continue question is
// affirmative.
func Continue(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "sim":
		return true
	}

	return false
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	return h.suggest(in.TextBeforeCursor())
}

// suggest proposes previous specifications starting with before.
func (h *Handler) suggest(before string) []prompt.Suggest {
	s := []prompt.Suggest{}

	// Only one character in line
	if len(before) < 2 {
		return s
	}

	seen := map[string]bool{}
	for i := len(h.history) - 1; i >= 0; i-- {
		prev := h.history[i]
		if seen[prev] || len(prev) <= len(before) {
			continue
		}

		if strings.HasPrefix(prev, before) {
			seen[prev] = true
			s = append(s, prompt.Suggest{Text: prev, Description: "📝"})
		}
	}

	return s
}

func noSuggestions(in prompt.Document) []prompt.Suggest {
	return []prompt.Suggest{}
}
