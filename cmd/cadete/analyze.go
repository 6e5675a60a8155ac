package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"
)

// analyzeCommand analyzes the arguments joined by spaces, or stdin when no
// argument is given.
func analyzeCommand(c *cli.Context, cfg Config, ui UI) error {
	text := strings.Join(c.Args().Slice(), " ")
	if c.NArg() == 0 {
		b, err := io.ReadAll(ui.In)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(b)
	}

	p, closeParser, err := newParser(c, cfg, ui)
	if err != nil {
		return err
	}
	defer closeParser()

	results, err := newAnalyzer(p, cfg, ui).Analyze(c.Context, text)
	if err != nil {
		return err
	}

	return printResults(c, ui, results)
}
