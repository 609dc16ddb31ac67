// ABOUTME: Editor loop: render, decode one key, apply it, until the quit binding fires
// ABOUTME: Owns all session state and runs inside a raw-mode guard that always restores the terminal

package editor

import (
	"errors"
	"fmt"
	"io"

	"github.com/mauromedda/tedit/internal/config"
	"github.com/mauromedda/tedit/internal/document"
	"github.com/mauromedda/tedit/internal/keybindings"
	"github.com/mauromedda/tedit/internal/log"
	"github.com/mauromedda/tedit/pkg/tui/key"
	"github.com/mauromedda/tedit/pkg/tui/terminal"
)

// State is the editor loop state.
type State int

const (
	Running State = iota
	Quitting
)

func (s State) String() string {
	if s == Quitting {
		return "Quitting"
	}
	return "Running"
}

// motions maps positioning actions to cursor motions.
var motions = map[config.KeyAction]Motion{
	config.ActionCursorUp:    MoveUp,
	config.ActionCursorDown:  MoveDown,
	config.ActionCursorLeft:  MoveLeft,
	config.ActionCursorRight: MoveRight,
	config.ActionHome:        MoveLineStart,
	config.ActionEnd:         MoveLineEnd,
}

// Options configures an Editor.
type Options struct {
	// Title is the status bar text. Empty means config.DefaultTitle.
	Title string
	// Bindings resolves keys to actions. Nil means the default bindings.
	Bindings *keybindings.Manager
}

// Editor is a read-only, single-buffer terminal viewer.
type Editor struct {
	term     terminal.Terminal
	doc      *document.Buffer
	title    string
	bindings *keybindings.Manager
	decoder  *key.Decoder

	cursor   *Cursor
	renderer *Renderer
	state    State
}

// New returns an Editor over doc that talks to t.
func New(t terminal.Terminal, doc *document.Buffer, opts Options) *Editor {
	if doc == nil {
		doc = document.Empty()
	}
	if opts.Title == "" {
		opts.Title = config.DefaultTitle
	}
	if opts.Bindings == nil {
		opts.Bindings = keybindings.New()
	}
	return &Editor{
		term:     t,
		doc:      doc,
		title:    opts.Title,
		bindings: opts.Bindings,
		decoder:  key.NewDecoder(),
		state:    Running,
	}
}

// State returns the current loop state.
func (e *Editor) State() State {
	return e.state
}

// Cursor returns the cursor, or nil before Run has queried the viewport.
func (e *Editor) Cursor() *Cursor {
	return e.cursor
}

// Run enters raw mode, drives the loop until quit or end of input, clears
// the screen and restores the terminal. The terminal is restored on every
// return path, including setup failures after raw mode was entered. Input
// stream failures end the session like a quit and are only logged.
func (e *Editor) Run() error {
	return terminal.WithRawMode(e.term, func() error {
		if err := e.setup(); err != nil {
			return err
		}

		for e.state == Running {
			if err := e.Step(); err != nil {
				e.state = Quitting
				clearErr := Clear(e.term)
				var ie inputError
				if errors.As(err, &ie) {
					if errors.Is(ie.err, io.EOF) {
						log.Info("input closed, quitting")
					} else {
						log.Error("input failed, quitting: %v", ie.err)
					}
					return clearErr
				}
				return errors.Join(err, clearErr)
			}
		}

		log.Debug("quit requested")
		return Clear(e.term)
	})
}

// setup queries the viewport and builds the cursor and renderer.
func (e *Editor) setup() error {
	w, h, err := e.term.Size()
	if err != nil {
		return fmt.Errorf("querying viewport size: %w", err)
	}
	vp, err := NewViewport(h, w)
	if err != nil {
		return err
	}
	log.Debug("viewport %dx%d, %d lines", vp.Columns, vp.Rows, e.doc.Len())

	e.cursor = NewCursor(vp)
	e.renderer = NewRenderer(vp, e.title)
	return nil
}

// Step performs one cycle: draw the current state, wait for one key and
// apply it. Read timeouts are polled through without redrawing.
func (e *Editor) Step() error {
	if err := e.renderer.Draw(e.term, e.doc, e.cursor); err != nil {
		return fmt.Errorf("drawing frame: %w", err)
	}

	k, err := e.readKey()
	if err != nil {
		return inputError{err: err}
	}
	e.Handle(k)
	return nil
}

// inputError marks a failure of the input stream. The loop treats it as a
// quit request rather than a fatal error.
type inputError struct {
	err error
}

func (e inputError) Error() string { return e.err.Error() }
func (e inputError) Unwrap() error { return e.err }

func (e *Editor) readKey() (key.Key, error) {
	for {
		k, err := e.decoder.Next(e.term)
		if errors.Is(err, terminal.ErrTimeout) {
			continue
		}
		return k, err
	}
}

// Handle applies one decoded key to the editor state.
func (e *Editor) Handle(k key.Key) {
	action := e.bindings.ActionForKey(k)
	log.Debug("key %v -> %q", k, action)

	switch action {
	case config.ActionQuit:
		e.state = Quitting
	case config.ActionPageUp, config.ActionPageDown, config.ActionDeleteForward:
		// No-ops in a read-only view.
	case "":
	default:
		if m, ok := motions[action]; ok && e.cursor != nil {
			e.cursor.Move(m)
		}
	}
}
