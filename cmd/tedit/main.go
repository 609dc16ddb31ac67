// ABOUTME: CLI entry point for tedit with terminal crash recovery
// ABOUTME: Loads config, opens the file, wires keybindings and logging, runs the editor loop

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mauromedda/tedit/internal/config"
	"github.com/mauromedda/tedit/internal/document"
	"github.com/mauromedda/tedit/internal/editor"
	"github.com/mauromedda/tedit/internal/keybindings"
	"github.com/mauromedda/tedit/internal/log"
	"github.com/mauromedda/tedit/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(exitCodeFor(err))
	}

	if args.version {
		fmt.Printf("tedit %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	term := terminal.NewProcessTerminal(os.Stdin, os.Stdout)
	defer terminal.RestoreOnPanic(term)

	if err := run(args, term); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the initialization sequence and drives the editor until quit.
func run(args cliArgs, term terminal.Terminal) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	settings, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if lvl, err := log.ParseLevel(settings.LogLevel); err != nil {
		log.Warn("ignoring log level %q: %v", settings.LogLevel, err)
	} else {
		log.SetLevel(lvl)
	}

	doc, err := document.Open(args.path)
	if err != nil {
		log.Warn("%v; starting with an empty buffer", err)
	}

	bindings, err := config.KeybindingsFromSettings(settings)
	if err != nil {
		log.Warn("%v", err)
	}
	mgr := keybindings.NewFromBindings(bindings)
	for _, c := range mgr.Conflicts() {
		log.Warn("key %q is bound to %v", c.Key, c.Actions)
	}

	closeLog, err := redirectLog(settings.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ed := editor.New(term, doc, editor.Options{
		Title:    settings.Title,
		Bindings: mgr,
	})
	return ed.Run()
}

// redirectLog sends log output to path for the duration of the raw-mode
// session, or discards it when no path is set. The returned func restores
// the previous writer and closes the file.
func redirectLog(path string) (func(), error) {
	if path == "" {
		prev := log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	prev := log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		_ = f.Close()
	}, nil
}
