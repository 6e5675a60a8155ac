package main

import (
	"github.com/revelaction/cadete/shell"

	"github.com/urfave/cli/v2"
)

func shellCommand(c *cli.Context, cfg Config, ui UI) error {
	p, closeParser, err := newParser(c, cfg, ui)
	if err != nil {
		return err
	}
	defer closeParser()

	opts := renderOptions(c)
	hdl := shell.NewHandler(newAnalyzer(p, cfg, ui), &opts, ui.Out)
	return hdl.Run(c.Context)
}
