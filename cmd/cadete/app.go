package main

import (
	"fmt"
	"strings"

	"github.com/revelaction/cadete/render"

	"github.com/urfave/cli/v2"
)

// Set at build time with -ldflags
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

const (
	flagParserCmd = "parser-cmd"
	flagParserURL = "parser-url"
	flagRedisURL  = "redis-url"
	flagFormat    = "format"
	flagNoColor   = "no-color"
	flagTokens    = "tokens"
	flagDocPath   = "doc-path"
	flagStart     = "start"
	flagCount     = "n"
	flagFrom      = "from"
	flagTo        = "to"
)

func newApp(cfg Config, ui UI) *cli.App {
	docPath := &cli.StringFlag{
		Name:    flagDocPath,
		Aliases: []string{"d"},
		Value:   cfg.DocPath,
		Usage:   "Path to parsed docs directory or SQLite file",
	}

	return &cli.App{
		Name:            "cadete",
		Usage:           "Extract Subject-Verb-Object structures from specifications",
		Version:         BuildTag,
		Reader:          ui.In,
		Writer:          ui.Out,
		ErrWriter:       ui.Err,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagParserCmd,
				Value: cfg.ParserCmd,
				Usage: "Parser program: reads text on stdin, writes the parsed doc JSON on stdout",
			},
			&cli.StringFlag{
				Name:  flagParserURL,
				Value: cfg.ParserURL,
				Usage: "Parser service URL, takes precedence over --" + flagParserCmd,
			},
			&cli.StringFlag{
				Name:  flagRedisURL,
				Value: cfg.RedisURL,
				Usage: "Redis URL of the parser output cache (redis://host:port/db)",
			},
			&cli.StringFlag{
				Name:    flagFormat,
				Aliases: []string{"f"},
				Value:   cfg.Format,
				Usage:   "Output format: " + strings.Join(render.SupportedFormats(), ", "),
			},
			&cli.BoolFlag{
				Name:    flagNoColor,
				Aliases: []string{"c"},
				Usage:   "Show results without formatting (color)",
			},
			&cli.BoolFlag{
				Name:    flagTokens,
				Aliases: []string{"t"},
				Usage:   "Show the tokens of each sentence",
			},
		},
		Action: func(c *cli.Context) error {
			return shellCommand(c, cfg, ui)
		},
		Commands: []*cli.Command{
			{
				Name:  "shell",
				Usage: "Read and analyze specifications interactively (default)",
				Action: func(c *cli.Context) error {
					return shellCommand(c, cfg, ui)
				},
			},
			{
				Name:      "analyze",
				Usage:     "Analyze the text given as arguments, or stdin",
				ArgsUsage: "[text...]",
				Action: func(c *cli.Context) error {
					return analyzeCommand(c, cfg, ui)
				},
			},
			{
				Name:      "doc",
				Usage:     "List parsed docs, or analyze a doc file or stored doc",
				ArgsUsage: "[file_path|doc_id]",
				Flags: []cli.Flag{
					docPath,
					&cli.IntFlag{Name: flagStart, Value: 0, Usage: "Index of the first sentence to analyze"},
					&cli.IntFlag{Name: flagCount, Value: -1, Usage: "Number of sentences to analyze (-1 for all)"},
				},
				Action: func(c *cli.Context) error {
					return docCommand(c, cfg, ui)
				},
			},
			{
				Name:      "sentence",
				Usage:     "Show the tokens and the analysis of one sentence",
				ArgsUsage: "<file_path|doc_id> <sentence_id>",
				Flags:     []cli.Flag{docPath},
				Action: func(c *cli.Context) error {
					return sentenceCommand(c, cfg, ui)
				},
			},
			{
				Name:      "stat",
				Usage:     "Show analysis statistics of a doc",
				ArgsUsage: "<file_path|doc_id>",
				Flags:     []cli.Flag{docPath},
				Action: func(c *cli.Context) error {
					return statCommand(c, cfg, ui)
				},
			},
			{
				Name:  "import",
				Usage: "Import a directory of parsed JSON docs into a SQLite file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagFrom, Required: true, Usage: "Directory of parsed JSON docs"},
					&cli.StringFlag{Name: flagTo, Required: true, Usage: "SQLite file"},
				},
				Action: func(c *cli.Context) error {
					return importDocCommand(c.String(flagFrom), c.String(flagTo), ui)
				},
			},
			{
				Name:  "bash",
				Usage: "Print the bash completion script",
				Action: func(c *cli.Context) error {
					return bashCommand(ui)
				},
			},
			{
				Name:            "complete",
				Hidden:          true,
				SkipFlagParsing: true,
				Action: func(c *cli.Context) error {
					return completeCommand(c, ui)
				},
			},
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(c *cli.Context) error {
					return versionCommand(ui)
				},
			},
		},
	}
}

func renderOptions(c *cli.Context) render.Options {
	return render.Options{
		Format:    c.String(flagFormat),
		HasColor:  !c.Bool(flagNoColor),
		HasTokens: c.Bool(flagTokens),
	}
}

func versionCommand(ui UI) error {
	_, err := fmt.Fprintf(ui.Out, "cadete version %s (commit: %s)\n", BuildTag, BuildCommit)
	return err
}
