package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/revelaction/cadete/analyze"
	"github.com/revelaction/cadete/logger"
	"github.com/revelaction/cadete/parser"
	"github.com/revelaction/cadete/render"
	sent "github.com/revelaction/cadete/sentence"
	"github.com/revelaction/cadete/storage"
	"github.com/revelaction/cadete/storage/filesystem"
	"github.com/revelaction/cadete/storage/redis"
	"github.com/revelaction/cadete/storage/sqlite/zombiezen"

	"github.com/urfave/cli/v2"
)

var errNoParser = errors.New("no parser configured: set --" + flagParserURL + " or --" + flagParserCmd)

// newParser builds the configured parser, behind the Redis cache when
// --redis-url is set. The returned function releases the cache.
func newParser(c *cli.Context, cfg Config, ui UI) (parser.Parser, func() error, error) {
	var p parser.Parser
	switch {
	case c.String(flagParserURL) != "":
		p = parser.NewHTTP(c.String(flagParserURL))
	case c.String(flagParserCmd) != "":
		cmd, err := parser.NewCommand(c.String(flagParserCmd))
		if err != nil {
			return nil, nil, err
		}
		p = cmd
	default:
		return nil, nil, errNoParser
	}

	url := c.String(flagRedisURL)
	if url == "" {
		return p, func() error { return nil }, nil
	}

	cache, err := redis.NewCache(url, cfg.CacheTTL)
	if err != nil {
		return nil, nil, err
	}
	l := logger.New(ui.Err, "parser", cfg.LogLevel)
	return parser.NewCached(p, cache, l), cache.Close, nil
}

// newAnalyzer builds an analyzer for p. A nil parser is valid for commands
// that only analyze already parsed docs.
func newAnalyzer(p parser.Parser, cfg Config, ui UI) *analyze.Analyzer {
	l := logger.New(ui.Err, "analyze", cfg.LogLevel)
	return analyze.New(p, analyze.WithLogger(l))
}

// NewDocRepository opens the doc store at path: a directory of JSON docs or
// a SQLite file. The returned function releases the store.
func NewDocRepository(path string) (storage.DocRepository, func() error, error) {
	if path == "" {
		return nil, nil, errors.New("no doc path: set --" + flagDocPath)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		repo, err := filesystem.NewDocStore(path)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() error { return nil }, nil
	}

	pool, err := zombiezen.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return zombiezen.NewDocStore(pool), pool.Close, nil
}

// readSource reads a doc given either as a JSON file path or as a doc id
// of the store at --doc-path.
func readSource(c *cli.Context, source string) (sent.Doc, error) {
	if info, err := os.Stat(source); err == nil && !info.IsDir() {
		return filesystem.ReadDoc(source)
	}

	id, err := strconv.Atoi(source)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("invalid source %q: not a file nor a doc id", source)
	}

	repo, closeRepo, err := NewDocRepository(c.String(flagDocPath))
	if err != nil {
		return sent.Doc{}, err
	}
	defer closeRepo()

	return repo.Read(id)
}

func printResults(c *cli.Context, ui UI, results []analyze.Result) error {
	r, err := render.New(ui.Out, renderOptions(c))
	if err != nil {
		return err
	}
	return r.Render(results)
}
