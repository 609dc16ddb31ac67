// ABOUTME: Keybinding actions, defaults, and overrides from the keybindings settings section
// ABOUTME: Unknown action names are reported so typos in config.yaml do not go unnoticed

package config

import (
	"fmt"
	"slices"
	"strings"
)

// KeyAction represents an action that can be bound to keys
type KeyAction string

const (
	ActionQuit          KeyAction = "quit"
	ActionCursorUp      KeyAction = "cursorUp"
	ActionCursorDown    KeyAction = "cursorDown"
	ActionCursorLeft    KeyAction = "cursorLeft"
	ActionCursorRight   KeyAction = "cursorRight"
	ActionHome          KeyAction = "home"
	ActionEnd           KeyAction = "end"
	ActionPageUp        KeyAction = "pageUp"
	ActionPageDown      KeyAction = "pageDown"
	ActionDeleteForward KeyAction = "deleteForward"
)

// Keybindings maps actions to the key names that trigger them.
type Keybindings struct {
	Bindings map[KeyAction][]string
}

// NewKeybindings creates a new Keybindings with default bindings
func NewKeybindings() *Keybindings {
	kb := &Keybindings{
		Bindings: make(map[KeyAction][]string),
	}
	kb.setDefaultBindings()
	return kb
}

func (kb *Keybindings) setDefaultBindings() {
	kb.Bindings[ActionQuit] = []string{"q"}
	kb.Bindings[ActionCursorUp] = []string{"up"}
	kb.Bindings[ActionCursorDown] = []string{"down"}
	kb.Bindings[ActionCursorLeft] = []string{"left"}
	kb.Bindings[ActionCursorRight] = []string{"right"}
	kb.Bindings[ActionHome] = []string{"home"}
	kb.Bindings[ActionEnd] = []string{"end"}
	kb.Bindings[ActionPageUp] = []string{"pgup"}
	kb.Bindings[ActionPageDown] = []string{"pgdown"}
	kb.Bindings[ActionDeleteForward] = []string{"delete"}
}

// KeybindingsFromSettings returns the defaults with the settings' overrides
// applied. An override replaces every default key of its action.
func KeybindingsFromSettings(s *Settings) (*Keybindings, error) {
	kb := NewKeybindings()
	if s == nil {
		return kb, nil
	}

	var unknown []string
	for name, keys := range s.Keybindings {
		action := KeyAction(name)
		if _, ok := kb.Bindings[action]; !ok {
			unknown = append(unknown, name)
			continue
		}
		normalized := make([]string, 0, len(keys))
		for _, k := range keys {
			normalized = append(normalized, normalizeKeyName(k))
		}
		kb.Bindings[action] = normalized
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return kb, fmt.Errorf("unknown keybinding actions: %s", strings.Join(unknown, ", "))
	}
	return kb, nil
}

// GetBindings returns the bindings for an action
func (kb *Keybindings) GetBindings(action KeyAction) []string {
	if kb == nil {
		return nil
	}
	return kb.Bindings[action]
}

// normalizeKeyName lower-cases named keys while keeping single characters
// as typed, so "Q" and "q" stay distinct but "Up" matches "up".
func normalizeKeyName(k string) string {
	if len(k) == 1 {
		return k
	}
	return strings.ToLower(strings.TrimSpace(k))
}
