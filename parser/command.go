package parser

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	sent "github.com/revelaction/cadete/sentence"
)

// Command runs an external program for every text. The program reads the
// text from stdin and writes the parsed Doc as JSON to stdout, f.ex. a
// small spacy script.
type Command struct {
	Path string
	Args []string
}

// NewCommand splits a command line like "python3 parse.py --model en" into
// a Command.
func NewCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty parser command")
	}

	return &Command{Path: fields[0], Args: fields[1:]}, nil
}

func (c *Command) Parse(ctx context.Context, text string) (sent.Doc, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Stdin = strings.NewReader(text)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return sent.Doc{}, fmt.Errorf("%s: %w: %s", c.Path, err, strings.TrimSpace(stderr.String()))
	}

	return Decode(&stdout)
}
