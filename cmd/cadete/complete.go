package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

// completeCommand handles the autocompletion requests triggered by the bash
// completion script. The arguments are the words of the command line, the
// binary name first.
func completeCommand(c *cli.Context, ui UI) error {
	args := c.Args().Slice()
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}

	var names []string
	for _, cmd := range c.App.VisibleCommands() {
		names = append(names, cmd.Name)
	}

	for _, s := range getCompletions(names, args) {
		_, _ = fmt.Fprintln(ui.Out, s)
	}
	return nil
}

func getCompletions(commands, args []string) []string {
	// args[0] is the binary name
	commandIndex := 1
	cursorIndex := len(args) - 1

	if cursorIndex != commandIndex {
		return nil
	}

	lastWord := args[cursorIndex]
	var completions []string
	for _, c := range commands {
		if strings.HasPrefix(c, lastWord) {
			completions = append(completions, c)
		}
	}
	return completions
}
