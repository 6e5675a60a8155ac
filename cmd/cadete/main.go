package main

import (
	"fmt"
	"io"
	"os"

	"github.com/revelaction/cadete/logger"
)

// UI contains the input and output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}

	cfg, err := loadConfig()
	if err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}

	logger.SetupLogging()

	if err := newApp(cfg, ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "cadete: %v\n", err)
}
