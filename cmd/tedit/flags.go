// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Accepts --version and at most one positional file path

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

type cliArgs struct {
	version bool
	path    string
}

// parseFlags parses argv (without the program name). It returns a usage
// error when more than one positional argument is given.
func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("tedit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&args.version, "version", false, "Show version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: tedit [--version] [file]\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(argv); err != nil {
		return args, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		args.path = fs.Arg(0)
	default:
		fs.Usage()
		return args, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	return args, nil
}

// exitCodeFor maps a flag parsing error to the process exit code.
func exitCodeFor(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 2
}
