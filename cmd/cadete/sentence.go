package main

import (
	"fmt"
	"strconv"

	"github.com/revelaction/cadete/render"
	"github.com/revelaction/cadete/storage"

	"github.com/urfave/cli/v2"
)

func sentenceCommand(c *cli.Context, cfg Config, ui UI) error {
	if c.NArg() != 2 {
		return fmt.Errorf("sentence requires <file_path|doc_id> <sentence_id>")
	}

	sentId, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("invalid sentence id %q: %w", c.Args().Get(1), err)
	}

	doc, err := readSource(c, c.Args().First())
	if err != nil {
		return err
	}

	if sentId < 0 || sentId >= len(doc.Tokens) {
		return fmt.Errorf("sentence index %d out of bounds (doc has %d sentences)", sentId, len(doc.Tokens))
	}

	doc = storage.Sentences(doc, sentId, 1)
	results := newAnalyzer(nil, cfg, ui).DocAt(doc, sentId)

	opts := renderOptions(c)
	opts.HasTokens = true
	r, err := render.New(ui.Out, opts)
	if err != nil {
		return err
	}
	return r.Render(results)
}
