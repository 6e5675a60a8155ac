package main

import (
	"fmt"
	"strings"

	"github.com/revelaction/cadete/storage"

	"github.com/urfave/cli/v2"
)

func docCommand(c *cli.Context, cfg Config, ui UI) error {
	if c.NArg() == 0 {
		return lsDocCommand(c, ui)
	}

	doc, err := readSource(c, c.Args().First())
	if err != nil {
		return err
	}

	start := max(c.Int(flagStart), 0)
	doc = storage.Sentences(doc, start, c.Int(flagCount))
	results := newAnalyzer(nil, cfg, ui).DocAt(doc, start)
	return printResults(c, ui, results)
}

func lsDocCommand(c *cli.Context, ui UI) error {
	repo, closeRepo, err := NewDocRepository(c.String(flagDocPath))
	if err != nil {
		return err
	}
	defer closeRepo()

	docs, err := repo.List()
	if err != nil {
		return err
	}

	for _, doc := range docs {
		labels := ""
		if len(doc.Labels) > 0 {
			labels = " [" + strings.Join(doc.Labels, ", ") + "]"
		}
		fmt.Fprintf(ui.Out, "%d %s%s\n", doc.Id, doc.Title, labels)
	}

	return nil
}
