package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/revelaction/cadete/stat"

	"github.com/urfave/cli/v2"
)

func statCommand(c *cli.Context, cfg Config, ui UI) error {
	if c.NArg() != 1 {
		return fmt.Errorf("stat requires <file_path|doc_id>")
	}

	doc, err := readSource(c, c.Args().First())
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(newAnalyzer(nil, cfg, ui).Doc(doc))

	s := hdl.Get()
	fmt.Fprintf(ui.Out, "Num sentences %d, num tokens per sentence %d\n", s.NumSentences, s.TokensPerSentenceMean)
	fmt.Fprintf(ui.Out, "Conditional %d, malformed %d\n", s.NumConditional, s.NumMalformed)
	fmt.Fprintf(ui.Out, "SVOs %d, with verb %d, with direct object %d, with indirect object %d\n",
		s.NumSVOs, s.NumVerbs, s.NumDirectObjects, s.NumIndirectObject)

	for _, n := range slices.Sorted(maps.Keys(s.TokensPerSentenceDis)) {
		fmt.Fprintf(ui.Out, "%4d tokens: %d\n", n, s.TokensPerSentenceDis[n])
	}

	return nil
}
